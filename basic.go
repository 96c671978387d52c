package textnorm

import (
	"log/slog"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/jamesainslie/go-textnorm/symbols"
)

// Basic is a language-agnostic normalizer: it lowercases, removes bracketed
// asides and strips symbols. It is safe for concurrent use.
type Basic struct {
	stripper     *symbols.Stripper
	splitLetters bool
	workers      int
	logger       *slog.Logger
}

// NewBasic returns a Basic normalizer.
func NewBasic(opts ...Option) *Basic {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Basic{
		stripper:     symbols.New(cfg.strategy, ""),
		splitLetters: cfg.splitLetters,
		workers:      cfg.workers,
		logger:       cfg.logger,
	}
}

// Normalize returns the normalized form of s.
func (b *Basic) Normalize(s string) string {
	s = lower(s)
	s = removeBracketed(s)
	s = lower(b.stripper.Strip(s))

	if b.splitLetters {
		s = splitGraphemes(s)
	}

	return clean(s)
}

// splitGraphemes puts a space between user-perceived characters, so "naïve"
// with a combining diaeresis still yields five letters.
func splitGraphemes(s string) string {
	var sb strings.Builder
	sb.Grow(2 * len(s))

	g := uniseg.NewGraphemes(s)
	for g.Next() {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(g.Str())
	}
	return sb.String()
}
