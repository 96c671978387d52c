// Package symbols removes punctuation, symbols and, optionally, diacritics
// from text, replacing them with spaces.
package symbols

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrUnknownStrategy is returned by ParseStrategy for an unrecognised name.
var ErrUnknownStrategy = errors.New("symbols: unknown strategy")

// Strategy selects what a Stripper removes. It is fixed when the Stripper is
// built.
type Strategy int

const (
	// StrategySymbols applies NFKC and replaces marks, symbols and
	// punctuation with spaces.
	StrategySymbols Strategy = iota

	// StrategySymbolsAndDiacritics applies NFKD, drops combining marks, folds
	// letters such as "ø" and "ß" that do not decompose, and replaces the
	// remaining marks, symbols and punctuation with spaces.
	StrategySymbolsAndDiacritics

	// StrategyTransliterate is StrategySymbolsAndDiacritics followed by ASCII
	// transliteration of any letter still outside ASCII.
	StrategyTransliterate
)

var strategyNames = map[Strategy]string{
	StrategySymbols:              "symbols",
	StrategySymbolsAndDiacritics: "diacritics",
	StrategyTransliterate:        "transliterate",
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy returns the strategy named by String.
func ParseStrategy(name string) (Strategy, error) {
	for s, n := range strategyNames {
		if strings.EqualFold(n, name) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// additionalDiacritics folds letters that carry a diacritic but have no
// canonical decomposition.
var additionalDiacritics = map[rune]string{
	'œ': "oe",
	'Œ': "OE",
	'ø': "o",
	'Ø': "O",
	'æ': "ae",
	'Æ': "AE",
	'ß': "ss",
	'ẞ': "SS",
	'đ': "d",
	'Đ': "D",
	'ð': "d",
	'Ð': "D",
	'þ': "th",
	'Þ': "th",
	'ł': "l",
	'Ł': "L",
}

// Stripper removes symbols from text. It is safe for concurrent use.
type Stripper struct {
	strategy Strategy
	keep     map[rune]bool
}

// New returns a Stripper using strategy. Runes in keep are never removed,
// folded or transliterated.
func New(strategy Strategy, keep string) *Stripper {
	s := &Stripper{
		strategy: strategy,
		keep:     make(map[rune]bool, len(keep)),
	}
	for _, r := range keep {
		s.keep[r] = true
	}
	return s
}

// Strategy returns the strategy the Stripper was built with.
func (s *Stripper) Strategy() Strategy {
	return s.strategy
}

// Strip returns text with its symbols replaced by spaces. Whitespace is not
// collapsed.
func (s *Stripper) Strip(text string) string {
	if s.strategy == StrategySymbols {
		return s.replace(norm.NFKC.String(text), false)
	}

	t := transform.Chain(norm.NFKD, runes.Remove(runes.Predicate(s.isDroppedMark)))
	decomposed, _, err := transform.String(t, text)
	if err != nil {
		// transform only fails on invalid UTF-8; strip what we have instead
		decomposed = norm.NFKD.String(text)
	}
	return s.replace(decomposed, true)
}

func (s *Stripper) isDroppedMark(r rune) bool {
	return !s.keep[r] && unicode.Is(unicode.Mn, r)
}

func (s *Stripper) replace(text string, fold bool) string {
	var b strings.Builder
	b.Grow(len(text))

	for _, r := range text {
		switch {
		case s.keep[r]:
			b.WriteRune(r)
		case fold && additionalDiacritics[r] != "":
			b.WriteString(additionalDiacritics[r])
		case unicode.In(r, unicode.M, unicode.S, unicode.P):
			b.WriteByte(' ')
		case s.strategy == StrategyTransliterate && r > unicode.MaxASCII && unicode.IsLetter(r):
			b.WriteString(unidecode.Unidecode(string(r)))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
