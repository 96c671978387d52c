package bench

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	textnorm "github.com/jamesainslie/go-textnorm"
)

func TestCompare(t *testing.T) {
	en, err := textnorm.NewEnglish(textnorm.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	require.NoError(t, err)

	transcripts := []*Transcript{{
		ID: "t1",
		Utterances: []Utterance{
			{Reference: "It costs three euros and sixty five cents.", Hypothesis: "it costs €3.65"},
			{Reference: "My favourite colour", Hypothesis: "my favorite color"},
		},
	}}

	raw := NormalizerFunc(func(s string) string { return s })
	results, err := Compare(context.Background(), transcripts, []Candidate{
		{Name: "raw", Normalizer: raw},
		{Name: "english", Normalizer: en},
	})
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "english", results[0].Name)
	assert.Zero(t, results[0].Metrics.WER)
	assert.Contains(t, results[0].PerTranscript, "t1")

	assert.Equal(t, "raw", results[1].Name)
	assert.Greater(t, results[1].Metrics.WER, 0.5)
}

func TestCompareTiesSortByName(t *testing.T) {
	transcripts := []*Transcript{{ID: "t", Utterances: []Utterance{{Reference: "a", Hypothesis: "a"}}}}
	upper := NormalizerFunc(strings.ToUpper)

	results, err := Compare(context.Background(), transcripts, []Candidate{
		{Name: "zeta", Normalizer: upper},
		{Name: "alpha", Normalizer: upper},
	})
	require.NoError(t, err)
	assert.Equal(t, "alpha", results[0].Name)
	assert.Equal(t, "zeta", results[1].Name)
}

func TestCompareRejectsNilNormalizer(t *testing.T) {
	_, err := Compare(context.Background(), nil, []Candidate{{Name: "none"}})
	require.ErrorIs(t, err, ErrNoNormalizer)
}

func TestCompareCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	transcripts := []*Transcript{{ID: "t", Utterances: []Utterance{{Reference: "a", Hypothesis: "b"}}}}
	_, err := Compare(ctx, transcripts, []Candidate{{Name: "id", Normalizer: NormalizerFunc(strings.TrimSpace)}})
	require.ErrorIs(t, err, context.Canceled)
}
