package textnorm

import (
	"log/slog"
	"runtime"

	"github.com/jamesainslie/go-textnorm/spelling"
	"github.com/jamesainslie/go-textnorm/symbols"
)

// Option configures a normalizer. Options that do not apply to a normalizer
// are ignored by it.
type Option func(*config)

type config struct {
	workers      int
	logger       *slog.Logger
	keepBrackets bool
	punctuation  bool
	spellingPath string
	spelling     *spelling.Mapping
	strategy     symbols.Strategy
	splitLetters bool
}

func defaultConfig() config {
	return config{
		workers:  runtime.NumCPU(),
		logger:   slog.Default(),
		strategy: symbols.StrategySymbols,
	}
}

// WithWorkers sets how many texts NormalizeAll processes at once
// (default: runtime.NumCPU()).
func WithWorkers(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithBracketedText keeps the words inside (), [] and <> instead of removing
// them (default: false). English only.
func WithBracketedText(keep bool) Option {
	return func(c *config) {
		c.keepBrackets = keep
	}
}

// WithSentencePunctuation keeps sentence periods and commas in the output as
// ". " and ", " (default: false). English only.
func WithSentencePunctuation(keep bool) Option {
	return func(c *config) {
		c.punctuation = keep
	}
}

// WithSpellingFile loads the British to American mapping from a
// "british=american" file instead of the embedded list. A missing file
// disables spelling normalization. English only.
func WithSpellingFile(path string) Option {
	return func(c *config) {
		c.spellingPath = path
		c.spelling = nil
	}
}

// WithSpellingMapping sets the spelling mapping directly. English only.
func WithSpellingMapping(m *spelling.Mapping) Option {
	return func(c *config) {
		if m != nil {
			c.spelling = m
			c.spellingPath = ""
		}
	}
}

// WithStrategy sets how Basic strips symbols (default: symbols.StrategySymbols).
func WithStrategy(s symbols.Strategy) Option {
	return func(c *config) {
		c.strategy = s
	}
}

// WithSplitLetters makes Basic separate every grapheme cluster with a space
// (default: false). Useful for scoring languages written without spaces.
func WithSplitLetters(split bool) Option {
	return func(c *config) {
		c.splitLetters = split
	}
}
