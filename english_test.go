package textnorm

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jamesainslie/go-textnorm/spelling"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEnglish(t *testing.T, opts ...Option) *English {
	t.Helper()
	en, err := NewEnglish(append([]Option{WithLogger(discardLogger())}, opts...)...)
	require.NoError(t, err)
	return en
}

func TestEnglishNormalize(t *testing.T) {
	en := newTestEnglish(t)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"appended digit group", "five twenty five", "525"},
		{"tens ordinal", "thirty first", "31st"},
		{"currency with cents", "three euros and sixty five cents", "€3.65"},
		{"fractional base", "14.1 million yuan", "14100000 yuan"},
		{"fused currency", "$20 million", "$20000000"},
		{"double zero", "double zero seven", "007"},
		{"digit sequence", "nine one one", "911"},
		{"date", "august twenty sixth twenty twenty one", "august 26th 2021"},
		{"titles", "Mr. Park visited Assoc. Prof. Kim Jr.", "mister park visited associate professor kim junior"},
		{"possessive", "Chagee's founder said", "chagee is founder said"},
		{"quoted contraction", "He's like 'Let's go'", "he is like let us go"},
		{"contractions", "I won't, you can't, they'd been there", "i will not you can not they had been there"},
		{"slang", "we're gonna wanna go", "we are going to want to go"},
		{"uppercase", "By the end of the year, Among its most successful innovations", "by the end of the year among its most successful innovations"},
		{"hesitations", "um so uh yeah hmm", "so yeah"},
		{"brackets", "hello [inaudible] there <noise> (laughs) friend", "hello there friend"},
		{"digit commas", "1,000,000 people", "1000000 people"},
		{"sentence periods", "it ended. then 3.5 more", "it ended then 3.5 more"},
		{"stray symbols", "pay in $ or € now", "pay in or now"},
		{"stray percent", "100% sure, % of what", "100% sure of what"},
		{"diacritics", "Café naïve Ærøskøbing", "cafe naive aeroskobing"},
		{"spelling", "my favourite colour", "my favorite color"},
		{"spelling after numbers", "two centres", "2 centers"},
		{"percent", "Twenty percent off", "20% off"},
		{"saint", "St. Louis", "saint louis"},
		{"lone one", "one of us", "one of us"},
		{"empty", "", ""},
		{"only noise", "[music]", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, en.Normalize(tt.in))
		})
	}
}

func TestEnglishSentencePunctuation(t *testing.T) {
	en := newTestEnglish(t, WithSentencePunctuation(true))

	tests := []struct {
		in   string
		want string
	}{
		{"($14.1 million yuan ), three years ago", ", 3 years ago"},
		{"100 million yuan,,,, [$14.1 million yuan],,,", "100000000 yuan,"},
		{"By the end of the year, Among its most successful innovations", "by the end of the year, among its most successful innovations"},
		{"Mr. Park visited Assoc. Prof. Kim Jr.", "mister park visited associate professor kim junior"},
		{"It rained. We left, quickly.", "it rained. we left, quickly."},
		{"He paid $3.50.", "he paid $3.50."},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, en.Normalize(tt.in))
		})
	}
}

func TestEnglishBracketedText(t *testing.T) {
	en := newTestEnglish(t, WithBracketedText(true))
	assert.Equal(t, "hello inaudible there", en.Normalize("hello [inaudible] there"))

	en = newTestEnglish(t, WithBracketedText(true), WithSentencePunctuation(true))
	assert.Equal(t, "hello[inaudible]there, friend", en.Normalize("hello [inaudible] there, friend"))
}

func TestEnglishSpellingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spelling.txt")
	require.NoError(t, os.WriteFile(path, []byte("lorry=truck\n"), 0o600))

	en := newTestEnglish(t, WithSpellingFile(path))
	assert.Equal(t, "a red truck", en.Normalize("a red lorry"))
	assert.Equal(t, "colour", en.Normalize("colour"))
}

func TestEnglishMissingSpellingFile(t *testing.T) {
	en := newTestEnglish(t, WithSpellingFile(filepath.Join(t.TempDir(), "missing.txt")))
	assert.Equal(t, "favourite", en.Normalize("favourite"))
}

func TestEnglishUnreadableSpellingFile(t *testing.T) {
	_, err := NewEnglish(WithLogger(discardLogger()), WithSpellingFile(t.TempDir()))
	require.ErrorIs(t, err, ErrSpellingResource)
}

func TestEnglishSpellingMapping(t *testing.T) {
	en := newTestEnglish(t, WithSpellingMapping(spelling.Identity()))
	assert.Equal(t, "colour", en.Normalize("colour"))
}

func TestEnglishIdempotent(t *testing.T) {
	en := newTestEnglish(t)

	for _, in := range []string{
		"three euros and sixty five cents",
		"Mr. Park visited Assoc. Prof. Kim Jr.",
		"august twenty sixth twenty twenty one",
		"$3 and 65 cents",
		"my favourite colour is grey",
	} {
		t.Run(in, func(t *testing.T) {
			once := en.Normalize(in)
			assert.Equal(t, once, en.Normalize(once))
		})
	}
}
