// Package numbers converts spoken English number phrases into digits.
//
//	c := numbers.New()
//	c.Normalize("three euros and sixty five cents") // "€3.65"
//	c.Normalize("august twenty sixth twenty twenty one") // "august 26th 2021"
//
// The input is expected to be lowercased with punctuation already removed,
// except for the symbols . % $ ¢ € £ which the converter understands.
//
// # Thread Safety
//
// A Converter holds no per-call state and is safe for concurrent use. The word
// tables behind it are built once per process and shared.
package numbers

import (
	"errors"
	"log/slog"
	"strings"
)

// Sentinel errors returned by the exact arithmetic helpers.
var (
	// ErrInvalidDecimal indicates a string is not a plain decimal literal.
	ErrInvalidDecimal = errors.New("numbers: invalid decimal literal")

	// ErrZeroDenominator indicates a fraction with a zero denominator.
	ErrZeroDenominator = errors.New("numbers: zero denominator")
)

// Option configures a Converter.
type Option func(*config)

type config struct {
	logger *slog.Logger
}

func defaultConfig() config {
	return config{logger: slog.Default()}
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// Converter rewrites spoken numbers as digits.
type Converter struct {
	lex    *lexicon
	logger *slog.Logger
}

// New returns a Converter.
func New(opts ...Option) *Converter {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Converter{
		lex:    sharedLexicon(),
		logger: cfg.logger,
	}
}

// Normalize converts every spoken number in s. Words that are not part of a
// number pass through unchanged and runs of whitespace collapse to one space.
func (c *Converter) Normalize(s string) string {
	s = c.preprocess(s)

	var b strings.Builder
	for tok := range c.Scan(strings.Fields(s)) {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok)
	}

	return postprocess(b.String())
}
