package numbers

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	andAHalfPattern    = regexp.MustCompile(`\band\s+a\s+half\b`)
	letterDigitPattern = regexp.MustCompile(`([a-z])([0-9])`)
	digitLetterPattern = regexp.MustCompile(`([0-9])([a-z])`)
	digitSuffixPattern = regexp.MustCompile(`([0-9])\s+(st|nd|rd|th|s)\b`)

	combineCentsPattern = regexp.MustCompile(`([€£$])([0-9]+) (?:and )?¢([0-9]{1,2})\b`)
	extractCentsPattern = regexp.MustCompile(`[€£$]0\.([0-9]{1,2})\b`)
)

// preprocess prepares text for scanning: "two and a half" becomes "two point
// five", and digits are split from adjacent letters unless the letters are an
// ordinal or plural suffix.
func (c *Converter) preprocess(s string) string {
	s = c.expandHalves(s)
	s = letterDigitPattern.ReplaceAllString(s, "$1 $2")
	s = digitLetterPattern.ReplaceAllString(s, "$1 $2")
	return digitSuffixPattern.ReplaceAllString(s, "$1$2")
}

// expandHalves rewrites "and a half" only after a word that can carry a
// decimal, so prose like "an hour and a half" is left alone.
func (c *Converter) expandHalves(s string) string {
	matches := andAHalfPattern.FindAllStringIndex(s, -1)
	if matches == nil {
		return s
	}

	var b strings.Builder
	last := 0
	for _, m := range matches {
		before := strings.Fields(s[:m[0]])
		b.WriteString(s[last:m[0]])
		if n := len(before); n > 0 && (c.lex.isDecimal(before[n-1]) || c.lex.isMultiplier(before[n-1])) {
			b.WriteString("point five")
		} else {
			b.WriteString(s[m[0]:m[1]])
		}
		last = m[1]
	}
	b.WriteString(s[last:])
	return b.String()
}

// postprocess merges currency amounts with their cents, turns sub-unit
// amounts into cents and spells out a lone "1".
func postprocess(s string) string {
	s = combineCentsPattern.ReplaceAllStringFunc(s, func(m string) string {
		g := combineCentsPattern.FindStringSubmatch(m)
		cents, err := strconv.Atoi(g[3])
		if err != nil {
			return m
		}
		return fmt.Sprintf("%s%s.%02d", g[1], g[2], cents)
	})

	s = extractCentsPattern.ReplaceAllStringFunc(s, func(m string) string {
		g := extractCentsPattern.FindStringSubmatch(m)
		cents, err := strconv.Atoi(g[1])
		if err != nil {
			return m
		}
		return "¢" + strconv.Itoa(cents)
	})

	return spellOnes(s)
}

// spellOnes rewrites the standalone tokens "1" and "1s", which read better as
// words.
func spellOnes(s string) string {
	if !strings.Contains(s, "1") {
		return s
	}
	words := strings.Split(s, " ")
	for i, w := range words {
		switch w {
		case "1":
			words[i] = "one"
		case "1s":
			words[i] = "ones"
		}
	}
	return strings.Join(words, " ")
}
