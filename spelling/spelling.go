// Package spelling maps British English spellings to American ones.
//
// A mapping is read from a text resource holding one "british=american" pair
// per line. The package embeds a default English list, returned by English.
package spelling

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"sync"
)

//go:embed english.txt
var englishList string

// Option configures Load.
type Option func(*config)

type config struct {
	logger *slog.Logger
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// Mapping is an immutable word to word substitution table. It is safe for
// concurrent use.
type Mapping struct {
	words map[string]string
}

// Identity returns a Mapping that changes nothing.
func Identity() *Mapping {
	return &Mapping{words: map[string]string{}}
}

var english = sync.OnceValue(func() *Mapping {
	m, err := Parse(strings.NewReader(englishList))
	if err != nil {
		panic(fmt.Sprintf("spelling: embedded list: %v", err))
	}
	return m
})

// English returns the embedded British to American list.
func English() *Mapping {
	return english()
}

// Parse reads "key=value" lines from r. Lines that do not split into exactly
// two parts around "=" are ignored. Later duplicates win.
func Parse(r io.Reader) (*Mapping, error) {
	m := Identity()

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		parts := strings.Split(strings.TrimSpace(sc.Text()), "=")
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		if key == "" {
			continue
		}
		m.words[key] = strings.TrimSpace(parts[1])
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading spelling mapping: %w", err)
	}

	return m, nil
}

// Load reads a mapping file. A missing file is not an error: it yields the
// identity mapping and a warning.
func Load(path string, opts ...Option) (*Mapping, error) {
	cfg := config{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg.logger.Warn("spelling mapping not found, spelling is left unchanged", "path", path)
			return Identity(), nil
		}
		return nil, fmt.Errorf("opening spelling mapping: %w", err)
	}
	defer func() { _ = f.Close() }()

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.logger.Debug("loaded spelling mapping", "path", path, "entries", m.Len())
	return m, nil
}

// Len returns the number of entries.
func (m *Mapping) Len() int {
	return len(m.words)
}

// Lookup returns the replacement for word, if any.
func (m *Mapping) Lookup(word string) (string, bool) {
	v, ok := m.words[word]
	return v, ok
}

// Normalize replaces every whitespace-separated word found in the mapping.
// The result is joined with single spaces.
func (m *Mapping) Normalize(text string) string {
	words := strings.Fields(text)
	for i, w := range words {
		if v, ok := m.words[w]; ok {
			words[i] = v
		}
	}
	return strings.Join(words, " ")
}
