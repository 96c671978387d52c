//go:build ignore

// Convert tab-separated recognizer output into benchmark corpus files.
// Each input row needs a reference and a hypothesis column; the header row
// names them ("sentence" or "reference", and "hypothesis" or "prediction").
// Rows are grouped into one corpus file per input file and a JSON index of the
// generated files is written alongside them.
// Usage: go run ./scripts/process-tsv.go [-system NAME] FILE.tsv...
package main

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// IndexEntry describes one generated corpus file.
type IndexEntry struct {
	File       string `json:"file"`
	Source     string `json:"source"`
	Utterances int    `json:"utterances"`
	Skipped    int    `json:"skipped"`
}

func main() {
	outDir := flag.String("out", "testdata/transcripts", "Output directory")
	system := flag.String("system", "unknown", "Recognizer that produced the hypotheses")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Usage: go run ./scripts/process-tsv.go [-out DIR] [-system NAME] FILE.tsv...")
		os.Exit(1)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", *outDir, err)
		os.Exit(1)
	}

	var index []IndexEntry
	for _, inFile := range flag.Args() {
		fmt.Printf("Processing %s...\n", inFile)

		pairs, skipped, err := readPairs(inFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", inFile, err)
			continue
		}

		base := strings.TrimSuffix(filepath.Base(inFile), filepath.Ext(inFile))
		outFile := filepath.Join(*outDir, base+".txt")
		if err := writeTranscript(outFile, inFile, *system, base, pairs); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", outFile, err)
			continue
		}

		index = append(index, IndexEntry{
			File:       filepath.Base(outFile),
			Source:     inFile,
			Utterances: len(pairs),
			Skipped:    skipped,
		})
		fmt.Printf("  -> %s (%d utterances, %d skipped)\n", outFile, len(pairs), skipped)
	}

	if err := writeIndex(filepath.Join(*outDir, "index.json"), index); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing index: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nDone! Corpus files created in %s/\n", *outDir)
}

type pair struct {
	ref, hyp string
}

func readPairs(path string) ([]pair, int, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.Comma = '\t'
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("reading header: %w", err)
	}
	refCol, hypCol := column(header, "reference", "sentence"), column(header, "hypothesis", "prediction")
	if refCol < 0 || hypCol < 0 {
		return nil, 0, errors.New("header needs reference and hypothesis columns")
	}

	var pairs []pair
	skipped := 0
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("reading row: %w", err)
		}
		if len(row) <= max(refCol, hypCol) {
			skipped++
			continue
		}

		ref := oneLine(row[refCol])
		if ref == "" {
			skipped++
			continue
		}
		pairs = append(pairs, pair{ref: ref, hyp: oneLine(row[hypCol])})
	}

	return pairs, skipped, nil
}

func column(header []string, names ...string) int {
	for i, h := range header {
		for _, name := range names {
			if strings.EqualFold(strings.TrimSpace(h), name) {
				return i
			}
		}
	}
	return -1
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func writeTranscript(path, source, system, title string, pairs []pair) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(file, "# Source: %s\n# System: %s\n# Title: %s\n\n", source, system, title)
	for _, p := range pairs {
		fmt.Fprintf(file, "ref: %s\nhyp: %s\n", p.ref, p.hyp)
	}
	return file.Sync()
}

func writeIndex(path string, index []IndexEntry) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(index)
}
