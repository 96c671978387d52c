package textnorm

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

// NormalizeAll normalizes texts concurrently and returns the results in
// input order. It stops early and returns the context error if ctx is
// cancelled.
func (e *English) NormalizeAll(ctx context.Context, texts []string) ([]string, error) {
	return normalizeAll(ctx, e, texts, e.workers, e.logger)
}

// NormalizeAll normalizes texts concurrently and returns the results in
// input order. It stops early and returns the context error if ctx is
// cancelled.
func (b *Basic) NormalizeAll(ctx context.Context, texts []string) ([]string, error) {
	return normalizeAll(ctx, b, texts, b.workers, b.logger)
}

func normalizeAll(ctx context.Context, n Normalizer, texts []string, workers int, logger *slog.Logger) ([]string, error) {
	start := time.Now()
	out := make([]string, len(texts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, text := range texts {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = n.Normalize(text)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("normalizing batch: %w", err)
	}
	// the loop may have stopped before any goroutine saw the cancellation
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("normalizing batch: %w", err)
	}

	logger.Debug("normalized batch", "texts", len(texts), "workers", workers, "elapsed", time.Since(start))
	return out, nil
}
