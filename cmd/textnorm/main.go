// Command textnorm normalizes transcript text for speech-recognition scoring.
//
// Usage:
//
//	textnorm [flags] [TEXT...]
//
// With no TEXT, every line of standard input is normalized.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	textnorm "github.com/jamesainslie/go-textnorm"
	"github.com/jamesainslie/go-textnorm/internal/logging"
	"github.com/jamesainslie/go-textnorm/numbers"
	"github.com/jamesainslie/go-textnorm/spelling"
	"github.com/jamesainslie/go-textnorm/symbols"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Getenv, os.Stdin, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// batcher is implemented by normalizers that can process many texts at once.
type batcher interface {
	NormalizeAll(ctx context.Context, texts []string) ([]string, error)
}

func run(ctx context.Context, args []string, env func(string) string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := newFlagSet()
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: textnorm [OPTIONS] [TEXT...]")
		fs.PrintDefaults()
	}

	s, rest, err := loadSettings(fs, args, env)
	if err != nil {
		return err
	}

	logger, closer, err := logging.New(s.LogLevel, s.LogFile, stderr)
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }() // Cleanup error ignored in CLI

	n, err := newNormalizer(s, logger)
	if err != nil {
		return err
	}

	if len(rest) > 0 {
		_, err := fmt.Fprintln(stdout, n.Normalize(strings.Join(rest, " ")))
		return err
	}

	var lines []string
	sc := bufio.NewScanner(stdin)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	var out []string
	if b, ok := n.(batcher); ok {
		out, err = b.NormalizeAll(ctx, lines)
		if err != nil {
			return err
		}
	} else {
		out = make([]string, len(lines))
		for i, line := range lines {
			out[i] = n.Normalize(line)
		}
	}

	logger.Info("normalized input", "mode", s.Mode, "lines", len(out))

	w := bufio.NewWriter(stdout)
	for _, line := range out {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return w.Flush()
}

func newNormalizer(s settings, logger *slog.Logger) (textnorm.Normalizer, error) {
	opts := []textnorm.Option{
		textnorm.WithLogger(logger),
		textnorm.WithWorkers(s.Workers),
	}

	switch s.Mode {
	case "basic":
		strategy, err := symbols.ParseStrategy(s.Strategy)
		if err != nil {
			return nil, err
		}
		opts = append(opts, textnorm.WithStrategy(strategy), textnorm.WithSplitLetters(s.SplitLetters))
		return textnorm.NewBasic(opts...), nil

	case "numbers":
		return numbers.New(numbers.WithLogger(logger)), nil

	case "spelling":
		if s.Spelling == "" {
			return spelling.English(), nil
		}
		m, err := spelling.Load(s.Spelling, spelling.WithLogger(logger))
		if err != nil {
			return nil, err
		}
		return m, nil

	default:
		if s.Spelling != "" {
			opts = append(opts, textnorm.WithSpellingFile(s.Spelling))
		}
		opts = append(opts,
			textnorm.WithSentencePunctuation(s.Punctuation),
			textnorm.WithBracketedText(s.KeepBrackets),
		)
		en, err := textnorm.NewEnglish(opts...)
		if err != nil {
			return nil, err
		}
		return en, nil
	}
}
