package numbers

import (
	"math/big"
	"strings"
	"sync"
)

// suffixed is a number word that carries an ordinal or plural suffix.
type suffixed struct {
	value  int
	suffix string
}

// suffixedMultiplier is a scale word that carries an ordinal or plural suffix.
type suffixedMultiplier struct {
	value  *big.Int
	suffix string
}

// suffixer maps a word to a trailing symbol. When next is set the word only
// becomes the symbol if the following word equals next ("per cent").
type suffixer struct {
	next   string
	symbol string
}

// lexicon holds the word tables consulted by the scanner. It is built once per
// process and never mutated afterwards, so scans may share it freely.
type lexicon struct {
	zeros               map[string]int
	ones                map[string]int
	onesSuffixed        map[string]suffixed
	tens                map[string]int
	tensSuffixed        map[string]suffixed
	multipliers         map[string]*big.Int
	multipliersSuffixed map[string]suffixedMultiplier
	decimals            map[string]int
	precedingPrefixers  map[string]string
	followingPrefixers  map[string]string
	prefixSymbols       map[rune]bool
	suffixers           map[string]suffixer
	specials            map[string]bool
	words               map[string]bool
}

var onesNames = []string{
	"one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
	"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen",
	"seventeen", "eighteen", "nineteen",
}

var tensNames = []string{
	"twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety",
}

var multiplierNames = []string{
	"hundred", "thousand", "million", "billion", "trillion", "quadrillion",
	"quintillion", "sextillion", "septillion", "octillion", "nonillion",
	"decillion",
}

// sharedLexicon returns the process-wide tables.
var sharedLexicon = sync.OnceValue(newLexicon)

func newLexicon() *lexicon {
	lx := &lexicon{
		zeros:               map[string]int{"o": 0, "oh": 0, "zero": 0},
		ones:                make(map[string]int),
		onesSuffixed:        make(map[string]suffixed),
		tens:                make(map[string]int),
		tensSuffixed:        make(map[string]suffixed),
		multipliers:         make(map[string]*big.Int),
		multipliersSuffixed: make(map[string]suffixedMultiplier),
		decimals:            make(map[string]int),
		precedingPrefixers: map[string]string{
			"minus":    "-",
			"negative": "-",
			"plus":     "+",
			"positive": "+",
		},
		followingPrefixers: map[string]string{
			"pound":   "£",
			"pounds":  "£",
			"euro":    "€",
			"euros":   "€",
			"dollar":  "$",
			"dollars": "$",
			"cent":    "¢",
			"cents":   "¢",
		},
		prefixSymbols: make(map[rune]bool),
		suffixers: map[string]suffixer{
			"per":     {next: "cent", symbol: "%"},
			"percent": {symbol: "%"},
		},
		specials: map[string]bool{"and": true, "double": true, "triple": true, "point": true},
		words:    make(map[string]bool),
	}

	// Irregular ordinals first; the regular rule below never overwrites them.
	irregular := map[string]suffixed{
		"zeroth":  {0, "th"},
		"first":   {1, "st"},
		"second":  {2, "nd"},
		"third":   {3, "rd"},
		"fifth":   {5, "th"},
		"ninth":   {9, "th"},
		"twelfth": {12, "th"},
	}
	for word, s := range irregular {
		lx.onesSuffixed[word] = s
	}

	for i, name := range onesNames {
		value := i + 1
		lx.ones[name] = value

		plural := name + "s"
		if name == "six" {
			plural = "sixes"
		}
		lx.onesSuffixed[plural] = suffixed{value, "s"}

		if value > 3 && value != 5 && value != 12 {
			ordinal := name + "th"
			if strings.HasSuffix(name, "t") {
				ordinal = name + "h"
			}
			lx.onesSuffixed[ordinal] = suffixed{value, "th"}
		}
	}

	for i, name := range tensNames {
		value := (i + 2) * 10
		lx.tens[name] = value
		lx.tensSuffixed[strings.Replace(name, "y", "ies", 1)] = suffixed{value, "s"}
		lx.tensSuffixed[strings.Replace(name, "y", "ieth", 1)] = suffixed{value, "th"}
	}

	for i, name := range multiplierNames {
		exp := int64(3 * i)
		if i == 0 {
			exp = 2
		}
		value := new(big.Int).Exp(big.NewInt(10), big.NewInt(exp), nil)
		lx.multipliers[name] = value
		lx.multipliersSuffixed[name+"s"] = suffixedMultiplier{value, "s"}
		lx.multipliersSuffixed[name+"th"] = suffixedMultiplier{value, "th"}
	}

	for _, table := range []map[string]int{lx.ones, lx.tens, lx.zeros} {
		for word, value := range table {
			lx.decimals[word] = value
		}
	}

	for _, symbols := range []map[string]string{lx.precedingPrefixers, lx.followingPrefixers} {
		for _, symbol := range symbols {
			for _, r := range symbol {
				lx.prefixSymbols[r] = true
			}
		}
	}

	for word := range lx.zeros {
		lx.words[word] = true
	}
	for word := range lx.ones {
		lx.words[word] = true
	}
	for word := range lx.onesSuffixed {
		lx.words[word] = true
	}
	for word := range lx.tens {
		lx.words[word] = true
	}
	for word := range lx.tensSuffixed {
		lx.words[word] = true
	}
	for word := range lx.multipliers {
		lx.words[word] = true
	}
	for word := range lx.multipliersSuffixed {
		lx.words[word] = true
	}
	for word := range lx.precedingPrefixers {
		lx.words[word] = true
	}
	for word := range lx.followingPrefixers {
		lx.words[word] = true
	}
	for word := range lx.suffixers {
		lx.words[word] = true
	}
	for word := range lx.specials {
		lx.words[word] = true
	}

	return lx
}

func (lx *lexicon) isWord(w string) bool {
	return lx.words[w]
}

func (lx *lexicon) isOnes(w string) bool {
	_, ok := lx.ones[w]
	return ok
}

func (lx *lexicon) isZero(w string) bool {
	_, ok := lx.zeros[w]
	return ok
}

func (lx *lexicon) isTens(w string) bool {
	_, ok := lx.tens[w]
	return ok
}

func (lx *lexicon) isMultiplier(w string) bool {
	_, ok := lx.multipliers[w]
	return ok
}

func (lx *lexicon) isDecimal(w string) bool {
	_, ok := lx.decimals[w]
	return ok
}

// startsNumber reports whether w can open or continue a spoken number, which
// is what prefixers and special words look for in their lookahead.
func (lx *lexicon) startsNumber(w string) bool {
	if isLiteral(w) {
		return true
	}
	if lx.isDecimal(w) || lx.isMultiplier(w) {
		return true
	}
	if _, ok := lx.onesSuffixed[w]; ok {
		return true
	}
	if _, ok := lx.tensSuffixed[w]; ok {
		return true
	}
	if _, ok := lx.multipliersSuffixed[w]; ok {
		return true
	}
	return w == "double" || w == "triple" || w == "point"
}
