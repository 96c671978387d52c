package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jamesainslie/go-textnorm/symbols"
)

func TestBasicNormalize(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		in   string
		want string
	}{
		{"symbols", nil, "Hello, World! (aside) [noise]", "hello world"},
		{"keeps diacritics by default", nil, "Café", "café"},
		{"keeps numbers as words", nil, "Twenty-five", "twenty five"},
		{"diacritics", []Option{WithStrategy(symbols.StrategySymbolsAndDiacritics)}, "Ærøskøbing café", "aeroskobing cafe"},
		{"transliterate", []Option{WithStrategy(symbols.StrategyTransliterate)}, "Привет, мир", "privet mir"},
		{"split letters", []Option{WithSplitLetters(true)}, "ab c", "a b c"},
		{"split graphemes", []Option{WithSplitLetters(true)}, "日本語", "日 本 語"},
		{"whitespace", nil, "  a \t\n b  ", "a b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBasic(append([]Option{WithLogger(discardLogger())}, tt.opts...)...)
			assert.Equal(t, tt.want, b.Normalize(tt.in))
		})
	}
}

func TestSplitGraphemes(t *testing.T) {
	// "e" followed by a combining acute accent stays one cluster
	assert.Equal(t, "e\u0301 t", splitGraphemes("e\u0301t"))
	assert.Equal(t, "", splitGraphemes(""))
}
