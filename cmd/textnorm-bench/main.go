// Command textnorm-bench reports the word error rate of a transcript corpus
// under several normalizers.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"

	textnorm "github.com/jamesainslie/go-textnorm"
	"github.com/jamesainslie/go-textnorm/internal/bench"
	"github.com/jamesainslie/go-textnorm/internal/logging"
	"github.com/jamesainslie/go-textnorm/symbols"
)

func main() {
	var (
		corpusDir    = flag.String("corpus", "testdata/transcripts", "Directory containing transcript files")
		spellingPath = flag.String("spelling", "", "Path to a british=american spelling file (default: built-in list)")
		workers      = flag.Int("workers", 0, "Concurrency used when normalizing (default: number of CPUs)")
		perFile      = flag.Bool("per-file", false, "Also print the WER of every transcript")
		logLevel     = flag.String("log-level", "warn", "Log level: debug, info, warn or error")
	)
	flag.Parse()

	logger, closer, err := logging.New(*logLevel, "", os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = closer.Close() }()

	transcripts, err := bench.LoadCorpus(*corpusDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading corpus: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Loaded %d transcripts from %s\n\n", len(transcripts), *corpusDir)

	opts := []textnorm.Option{textnorm.WithLogger(logger), textnorm.WithWorkers(*workers)}
	if *spellingPath != "" {
		opts = append(opts, textnorm.WithSpellingFile(*spellingPath))
	}
	english, err := textnorm.NewEnglish(opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error creating normalizer: %v\n", err)
		os.Exit(1)
	}

	candidates := []bench.Candidate{
		{Name: "raw", Normalizer: bench.NormalizerFunc(func(s string) string { return s })},
		{Name: "basic", Normalizer: textnorm.NewBasic(opts...)},
		{Name: "basic-diacritics", Normalizer: textnorm.NewBasic(append(opts, textnorm.WithStrategy(symbols.StrategySymbolsAndDiacritics))...)},
		{Name: "english", Normalizer: english},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := bench.Compare(ctx, transcripts, candidates)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error comparing normalizers: %v\n", err)
		os.Exit(1)
	}

	printResults(os.Stdout, results, *perFile)
}

func printResults(w io.Writer, results []bench.CompareResult, perFile bool) {
	fmt.Fprintln(w, "Normalizer Comparison")
	fmt.Fprintln(w, strings.Repeat("-", 64))
	fmt.Fprintf(w, "%-18s %-8s %-6s %-6s %-6s %-6s\n", "Normalizer", "WER", "Sub", "Del", "Ins", "Words")

	for _, r := range results {
		m := r.Metrics
		fmt.Fprintf(w, "%-18s %-8.4f %-6d %-6d %-6d %-6d\n",
			r.Name, m.WER, m.Substitutions, m.Deletions, m.Insertions, m.ReferenceWords)
	}
	fmt.Fprintln(w, strings.Repeat("-", 64))

	if len(results) > 0 {
		best := results[0]
		fmt.Fprintf(w, "Best: %s (WER: %.4f)\n", best.Name, best.Metrics.WER)
	}

	if !perFile {
		return
	}
	for _, r := range results {
		fmt.Fprintf(w, "\n%s\n", r.Name)
		ids := make([]string, 0, len(r.PerTranscript))
		for id := range r.PerTranscript {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			fmt.Fprintf(w, "  %-30s %.4f\n", id, r.PerTranscript[id].WER)
		}
	}
}
