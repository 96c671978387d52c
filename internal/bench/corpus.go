// Package bench scores speech-recognition transcripts by word error rate
// under different text normalizers.
package bench

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Errors returned while parsing corpus files.
var (
	ErrMissingSource = errors.New("bench: missing Source in header")
	ErrUnpaired      = errors.New("bench: reference without hypothesis")
	ErrMalformedLine = errors.New("bench: line is neither ref: nor hyp:")
)

// Header contains metadata parsed from transcript file header.
type Header struct {
	Source string
	System string // recognizer that produced the hypotheses
	Title  string
}

// ParseHeader extracts metadata from transcript header comments.
// Returns the header, remaining text after header, and any error.
func ParseHeader(text string) (Header, string, error) {
	var h Header
	scanner := bufio.NewScanner(strings.NewReader(text))
	var bodyStart int
	var lineEnd int
	inBody := false

	for scanner.Scan() {
		line := scanner.Text()
		lineEnd += len(line) + 1 // +1 for newline

		if !strings.HasPrefix(line, "#") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			bodyStart = lineEnd - len(line) - 1
			inBody = true
			break
		}

		line = strings.TrimPrefix(line, "# ")
		if value, ok := strings.CutPrefix(line, "Source:"); ok {
			h.Source = strings.TrimSpace(value)
		} else if value, ok := strings.CutPrefix(line, "System:"); ok {
			h.System = strings.TrimSpace(value)
		} else if value, ok := strings.CutPrefix(line, "Title:"); ok {
			h.Title = strings.TrimSpace(value)
		}
	}

	if err := scanner.Err(); err != nil {
		return Header{}, "", fmt.Errorf("scan header: %w", err)
	}

	if h.Source == "" {
		return Header{}, "", ErrMissingSource
	}

	if !inBody {
		return h, "", nil
	}
	return h, strings.TrimSpace(text[bodyStart:]), nil
}

// Utterance is one reference transcript line and the recognizer's output for
// it.
type Utterance struct {
	Reference  string
	Hypothesis string
	Line       int // line of the "ref:" entry within the body, from 1
}

// ParseUtterances reads "ref: ..." / "hyp: ..." line pairs. Blank lines and
// "#" comments are skipped.
func ParseUtterances(body string) ([]Utterance, error) {
	var utterances []Utterance
	var pending *Utterance

	scanner := bufio.NewScanner(strings.NewReader(body))
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if ref, ok := strings.CutPrefix(line, "ref:"); ok {
			if pending != nil {
				return nil, fmt.Errorf("line %d: %w", pending.Line, ErrUnpaired)
			}
			pending = &Utterance{Reference: strings.TrimSpace(ref), Line: n}
			continue
		}

		hyp, ok := strings.CutPrefix(line, "hyp:")
		if !ok {
			return nil, fmt.Errorf("line %d: %w", n, ErrMalformedLine)
		}
		if pending == nil {
			return nil, fmt.Errorf("line %d: hypothesis without reference: %w", n, ErrMalformedLine)
		}
		pending.Hypothesis = strings.TrimSpace(hyp)
		utterances = append(utterances, *pending)
		pending = nil
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan utterances: %w", err)
	}
	if pending != nil {
		return nil, fmt.Errorf("line %d: %w", pending.Line, ErrUnpaired)
	}

	return utterances, nil
}

// Transcript represents a loaded corpus file.
type Transcript struct {
	ID         string // filename without extension
	Source     string
	System     string
	Title      string
	Utterances []Utterance
}

// LoadTranscript loads and parses a transcript file.
func LoadTranscript(path string) (*Transcript, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	header, body, err := ParseHeader(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse header: %w", err)
	}

	utterances, err := ParseUtterances(body)
	if err != nil {
		return nil, fmt.Errorf("parse utterances: %w", err)
	}

	base := filepath.Base(path)
	id := strings.TrimSuffix(base, filepath.Ext(base))

	return &Transcript{
		ID:         id,
		Source:     header.Source,
		System:     header.System,
		Title:      header.Title,
		Utterances: utterances,
	}, nil
}

// LoadCorpus loads all .txt transcript files from a directory.
func LoadCorpus(dir string) ([]*Transcript, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	var transcripts []*Transcript
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if filepath.Ext(entry.Name()) != ".txt" {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		tr, err := LoadTranscript(path)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", entry.Name(), err)
		}
		transcripts = append(transcripts, tr)
	}

	return transcripts, nil
}
