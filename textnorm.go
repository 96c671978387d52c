package textnorm

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalizer maps text to its normalized form.
type Normalizer interface {
	Normalize(text string) string
}

var (
	_ Normalizer = (*English)(nil)
	_ Normalizer = (*Basic)(nil)
)

var (
	bracketedPattern     = regexp.MustCompile(`[<\[][^>\]]*[>\]]`)
	parenthesizedPattern = regexp.MustCompile(`\(([^)]+?)\)`)
	whitespacePattern    = regexp.MustCompile(`\s+`)
)

// lower lowercases with English casing rules. A Caser holds state, so one is
// made per call.
func lower(s string) string {
	return cases.Lower(language.English).String(s)
}

// removeBracketed drops "[...]", "<...>" and "(...)" asides.
func removeBracketed(s string) string {
	s = bracketedPattern.ReplaceAllString(s, "")
	return parenthesizedPattern.ReplaceAllString(s, "")
}

func collapseSpaces(s string) string {
	return whitespacePattern.ReplaceAllString(s, " ")
}

// clean collapses whitespace and trims the ends.
func clean(s string) string {
	return strings.TrimSpace(collapseSpaces(s))
}
