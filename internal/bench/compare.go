package bench

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	textnorm "github.com/jamesainslie/go-textnorm"
)

// ErrNoNormalizer is returned when a candidate has no normalizer.
var ErrNoNormalizer = errors.New("bench: candidate has no normalizer")

// NormalizerFunc adapts a function to textnorm.Normalizer.
type NormalizerFunc func(string) string

// Normalize calls f(text).
func (f NormalizerFunc) Normalize(text string) string {
	return f(text)
}

// Candidate is a named normalizer to score.
type Candidate struct {
	Name       string
	Normalizer textnorm.Normalizer
}

// CompareResult holds the scores of one candidate.
type CompareResult struct {
	Name          string
	Metrics       Metrics            // over the whole corpus
	PerTranscript map[string]Metrics // keyed by Transcript.ID
}

// EvaluateTranscript normalizes both sides of every utterance with n and
// returns the merged metrics.
func EvaluateTranscript(ctx context.Context, n textnorm.Normalizer, tr *Transcript) (Metrics, error) {
	ms := make([]Metrics, 0, len(tr.Utterances))
	for _, u := range tr.Utterances {
		if err := ctx.Err(); err != nil {
			return Metrics{}, err
		}
		ref := strings.Fields(n.Normalize(u.Reference))
		hyp := strings.Fields(n.Normalize(u.Hypothesis))
		ms = append(ms, Evaluate(ref, hyp))
	}
	return Merge(ms...), nil
}

// Compare scores every candidate over the corpus concurrently and returns
// results sorted by WER ascending, ties broken by name.
func Compare(ctx context.Context, transcripts []*Transcript, candidates []Candidate) ([]CompareResult, error) {
	for _, c := range candidates {
		if c.Normalizer == nil {
			return nil, fmt.Errorf("%s: %w", c.Name, ErrNoNormalizer)
		}
	}

	results := make([]CompareResult, len(candidates))

	g, ctx := errgroup.WithContext(ctx)
	for i, c := range candidates {
		g.Go(func() error {
			per := make(map[string]Metrics, len(transcripts))
			all := make([]Metrics, 0, len(transcripts))
			for _, tr := range transcripts {
				m, err := EvaluateTranscript(ctx, c.Normalizer, tr)
				if err != nil {
					return fmt.Errorf("%s: %s: %w", c.Name, tr.ID, err)
				}
				per[tr.ID] = m
				all = append(all, m)
			}
			results[i] = CompareResult{
				Name:          c.Name,
				Metrics:       Merge(all...),
				PerTranscript: per,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Metrics.WER != results[j].Metrics.WER {
			return results[i].Metrics.WER < results[j].Metrics.WER
		}
		return results[i].Name < results[j].Name
	})

	return results, nil
}
