package numbers

import (
	"iter"
	"log/slog"
	"math/big"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	bigTen      = big.NewInt(10)
	bigHundred  = big.NewInt(100)
	bigThousand = big.NewInt(1000)
)

// scanState is the value carried across the window during one scan.
type scanState struct {
	value string

	// group marks digits produced by "double"/"triple" that have not yet been
	// merged with the following word.
	group bool

	// prefix is the sign or currency symbol prepended on the next flush.
	// prefixWord is the spoken word it came from, if any.
	prefix     string
	prefixWord string

	skip bool
}

type scanner struct {
	lex    *lexicon
	logger *slog.Logger
	state  scanState
	out    []string
}

// Scan converts a sequence of pre-shaped words into output tokens. Each token
// is either an input word passed through or a finished number such as "525",
// "31st", "$20" or "7%". The sequence is lazy and single use.
func (c *Converter) Scan(words []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		s := &scanner{lex: c.lex, logger: c.logger}
		for i, current := range words {
			if s.state.skip {
				s.state.skip = false
				continue
			}
			s.out = s.out[:0]
			s.step(at(words, i-1), current, at(words, i+1))
			for _, tok := range s.out {
				if !yield(tok) {
					return
				}
			}
		}
		if s.state.value != "" {
			if !yield(s.flush(s.state.value)) {
				return
			}
		}
		if s.state.prefixWord != "" {
			yield(s.state.prefixWord)
		}
	}
}

func at(words []string, i int) string {
	if i < 0 || i >= len(words) {
		return ""
	}
	return words[i]
}

// flush finalizes result with the pending prefix and clears the carried value.
func (s *scanner) flush(result string) string {
	if s.state.prefix != "" {
		result = s.state.prefix + result
	}
	s.state.value = ""
	s.state.group = false
	s.state.prefix = ""
	s.state.prefixWord = ""
	return result
}

func (s *scanner) emit(tok string) {
	s.out = append(s.out, tok)
}

// emitValue flushes the accumulating number, if any.
func (s *scanner) emitValue() {
	if s.state.value != "" {
		s.emit(s.flush(s.state.value))
	}
}

// emitWord passes a word through unchanged. A sign word that never got its
// number is released first.
func (s *scanner) emitWord(word string) {
	s.emitValue()
	if s.state.prefixWord != "" {
		s.emit(s.state.prefixWord)
	}
	s.state.prefix = ""
	s.state.prefixWord = ""
	s.emit(word)
}

// numeric reports whether the carried value is a plain digit string that may
// take part in arithmetic merges.
func (s *scanner) numeric() bool {
	return !s.state.group && isDigits(s.state.value)
}

func isDigits(v string) bool {
	if v == "" {
		return false
	}
	for i := 0; i < len(v); i++ {
		if v[i] < '0' || v[i] > '9' {
			return false
		}
	}
	return true
}

func (s *scanner) step(prev, current, next string) {
	lx := s.lex

	if s.literal(current) {
		return
	}

	if !lx.isWord(current) {
		s.emitWord(current)
		return
	}

	if _, ok := lx.zeros[current]; ok {
		s.state.value += "0"
		return
	}

	if ones, ok := lx.ones[current]; ok {
		s.state.value = s.mergeOnes(prev, ones)
		return
	}

	if sx, ok := lx.onesSuffixed[current]; ok {
		s.emit(s.flush(s.mergeOnes(prev, sx.value) + sx.suffix))
		return
	}

	if tens, ok := lx.tens[current]; ok {
		s.state.value = s.mergeTens(tens)
		return
	}

	if sx, ok := lx.tensSuffixed[current]; ok {
		s.emit(s.flush(s.mergeTens(sx.value) + sx.suffix))
		return
	}

	if m, ok := lx.multipliers[current]; ok {
		s.multiply(m, "")
		return
	}

	if sx, ok := lx.multipliersSuffixed[current]; ok {
		s.multiply(sx.value, sx.suffix)
		return
	}

	if sign, ok := lx.precedingPrefixers[current]; ok {
		s.emitValue()
		if lx.startsNumber(next) {
			s.state.prefix = sign
			s.state.prefixWord = current
		} else {
			s.emitWord(current)
		}
		return
	}

	if currency, ok := lx.followingPrefixers[current]; ok {
		if s.state.value != "" {
			s.state.prefix = currency
			s.state.prefixWord = ""
			s.emitValue()
		} else {
			s.emitWord(current)
		}
		return
	}

	if sx, ok := lx.suffixers[current]; ok {
		switch {
		case s.state.value == "":
			s.emitWord(current)
		case sx.next == "":
			s.emit(s.flush(s.state.value + sx.symbol))
		case next == sx.next:
			s.emit(s.flush(s.state.value + sx.symbol))
			s.state.skip = true
		default:
			s.emitValue()
			s.emitWord(current)
		}
		return
	}

	s.special(prev, current, next)
}

// literal handles arabic numerals, optionally fused with a sign or currency
// symbol. It reports false when current is not a numeral.
func (s *scanner) literal(current string) bool {
	body := current
	symbol := ""
	if r, size := utf8.DecodeRuneInString(current); size > 0 && s.lex.prefixSymbols[r] {
		body = current[size:]
		symbol = string(r)
	}
	if !isLiteral(body) {
		return false
	}
	if _, err := ParseDecimal(body); err != nil {
		s.logger.Debug("numbers: literal treated as word", "token", current, "error", err)
		return false
	}

	if s.state.value != "" {
		if strings.HasSuffix(s.state.value, ".") {
			s.state.value += body
			return true
		}
		s.emitValue()
	}
	if symbol != "" {
		s.state.prefix = symbol
		s.state.prefixWord = ""
	}
	s.state.value = body
	return true
}

// mergeOnes returns the carried value extended by a 1-19 word.
func (s *scanner) mergeOnes(prev string, ones int) string {
	value := s.state.value
	digits := strconv.Itoa(ones)

	switch {
	case value == "":
		return digits
	case !s.numeric() || s.lex.isOnes(prev):
		s.state.group = false
		if s.lex.isTens(prev) && ones < 10 {
			if strings.HasSuffix(value, "0") {
				return value[:len(value)-1] + digits
			}
			s.violation("tens value does not end in zero", value, prev)
		}
		return value + digits
	case ones < 10:
		return s.addOrAppend(value, ones, bigTen)
	default:
		return s.addOrAppend(value, ones, bigHundred)
	}
}

// mergeTens returns the carried value extended by a 20-90 word.
func (s *scanner) mergeTens(tens int) string {
	value := s.state.value
	switch {
	case value == "":
		return strconv.Itoa(tens)
	case !s.numeric():
		s.state.group = false
		return value + strconv.Itoa(tens)
	default:
		return s.addOrAppend(value, tens, bigHundred)
	}
}

// addOrAppend adds n to value when value is a multiple of base, and appends
// n as a new digit group otherwise: "twenty five" is 25 but "five twenty
// five" is 525.
func (s *scanner) addOrAppend(value string, n int, base *big.Int) string {
	v, ok := new(big.Int).SetString(value, 10)
	if !ok {
		s.violation("numeric value does not parse", value, "")
		return value + strconv.Itoa(n)
	}
	if new(big.Int).Mod(v, base).Sign() == 0 {
		return v.Add(v, big.NewInt(int64(n))).String()
	}
	return value + strconv.Itoa(n)
}

// multiply applies a scale word. With a suffix the result is finished at once.
func (s *scanner) multiply(m *big.Int, suffix string) {
	value := s.state.value
	finish := func(v string) {
		if suffix == "" {
			s.state.value = v
			return
		}
		s.emit(s.flush(v + suffix))
	}

	switch {
	case value == "":
		finish(m.String())
	case !s.numeric() || isZeros(value):
		s.state.group = false
		if f, err := ParseDecimal(value); err == nil {
			if p := f.MulInt(m); p.IsInteger() {
				finish(p.Num().String())
				return
			}
		}
		s.emitValue()
		finish(m.String())
	default:
		v, ok := new(big.Int).SetString(value, 10)
		if !ok {
			s.violation("numeric value does not parse", value, "")
			s.emitValue()
			finish(m.String())
			return
		}
		before := new(big.Int).Div(v, bigThousand)
		before.Mul(before, bigThousand)
		residual := new(big.Int).Mod(v, bigThousand)
		residual.Mul(residual, m)
		finish(before.Add(before, residual).String())
	}
}

func isZeros(v string) bool {
	return strings.Trim(v, "0") == ""
}

// special handles "and", "double", "triple" and "point".
func (s *scanner) special(prev, current, next string) {
	lx := s.lex
	if !lx.startsNumber(next) {
		s.emitWord(current)
		return
	}

	switch current {
	case "and":
		// "one hundred and five"
		if lx.isMultiplier(prev) {
			return
		}
		s.emitWord(current)
	case "double", "triple":
		digit, isOnes := lx.ones[next]
		if !isOnes && !lx.isZero(next) {
			s.emitWord(current)
			return
		}
		repeats := 2
		if current == "triple" {
			repeats = 3
		}
		s.state.value += strings.Repeat(strconv.Itoa(digit), repeats)
		s.state.group = true
		s.state.skip = true
	case "point":
		if lx.isDecimal(next) || isLiteral(next) {
			s.state.value += "."
		}
	}
}
