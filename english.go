package textnorm

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/jamesainslie/go-textnorm/numbers"
	"github.com/jamesainslie/go-textnorm/spelling"
	"github.com/jamesainslie/go-textnorm/symbols"
)

// Sentence punctuation is carried through symbol stripping and number
// conversion as private-use runes, which neither step touches.
const (
	periodMarker = "\ue000"
	commaMarker  = "\ue001"
)

// numericSymbols survive symbol stripping because the number converter reads
// them.
const numericSymbols = ".%$¢€£"

type replacer struct {
	pattern *regexp.Regexp
	with    string
}

func replacers(pairs ...string) []replacer {
	rs := make([]replacer, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		rs = append(rs, replacer{regexp.MustCompile(pairs[i]), pairs[i+1]})
	}
	return rs
}

// contractions are applied in order; the specific forms must run before the
// general "'s" and "n't" rules.
var contractions = replacers(
	`\bwon't\b`, "will not",
	`\bcan't\b`, "can not",
	`\blet's\b`, "let us",
	`\bain't\b`, "aint",
	`\by'all\b`, "you all",
	`\bwanna\b`, "want to",
	`\bgotta\b`, "got to",
	`\bgonna\b`, "going to",
	`\bi'ma\b`, "i am going to",
	`\bimma\b`, "i am going to",
	`\bwoulda\b`, "would have",
	`\bcoulda\b`, "could have",
	`\bshoulda\b`, "should have",
	`\bma'am\b`, "madam",

	`\bmr\b`, "mister ",
	`\bmrs\b`, "missus ",
	`\bst\b`, "saint ",
	`\bdr\b`, "doctor ",
	`\bprof\b`, "professor ",
	`\bcapt\b`, "captain ",
	`\bgov\b`, "governor ",
	`\bald\b`, "alderman ",
	`\bgen\b`, "general ",
	`\bsen\b`, "senator ",
	`\brep\b`, "representative ",
	`\bpres\b`, "president ",
	`\brev\b`, "reverend ",
	`\bhon\b`, "honorable ",
	`\basst\b`, "assistant ",
	`\bassoc\b`, "associate ",
	`\blt\b`, "lieutenant ",
	`\bcol\b`, "colonel ",
	`\bjr\b`, "junior ",
	`\bsr\b`, "senior ",
	`\besq\b`, "esquire ",

	// perfect tenses; "'s done" is ambiguous
	`'d been\b`, " had been",
	`'s been\b`, " has been",
	`'d gone\b`, " had gone",
	`'s gone\b`, " has gone",
	`'d done\b`, " had done",
	`'s got\b`, " has got",

	`n't\b`, " not",
	`'re\b`, " are",
	`'s\b`, " is",
	`'d\b`, " would",
	`'ll\b`, " will",
	`'t\b`, " not",
	`'ve\b`, " have",
	`'m\b`, " am",
)

var (
	hesitationPattern     = regexp.MustCompile(`\b(hmm|mm|mhm|mmm|uh|um)\b`)
	spacedApostrophe      = regexp.MustCompile(`\s+'`)
	digitCommaPattern     = regexp.MustCompile(`(\d),(\d)`)
	sentencePeriodPattern = regexp.MustCompile(`\.([^0-9]|$)`)
	bracketPattern        = regexp.MustCompile(`\s*([<>\[\]()])\s*`)
	strayPrefixPattern    = regexp.MustCompile(`[.$¢€£]([^0-9]|$)`)
	straySuffixPattern    = regexp.MustCompile(`(^|[^0-9])%`)

	commaMarkerPattern  = regexp.MustCompile(`\s*` + commaMarker + `\s*`)
	periodMarkerPattern = regexp.MustCompile(`\s*` + periodMarker + `\s*`)
	commaRunPattern     = regexp.MustCompile(`\s*,[\s,]*`)
)

// English is the full transcript normalizer. It is safe for concurrent use.
type English struct {
	numbers      *numbers.Converter
	spelling     *spelling.Mapping
	stripper     *symbols.Stripper
	keepBrackets bool
	punctuation  bool
	workers      int
	logger       *slog.Logger
}

// NewEnglish returns an English normalizer. It fails only when a spelling
// file given with WithSpellingFile exists but cannot be read.
func NewEnglish(opts ...Option) (*English, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	m := cfg.spelling
	if m == nil && cfg.spellingPath != "" {
		var err error
		m, err = spelling.Load(cfg.spellingPath, spelling.WithLogger(cfg.logger))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSpellingResource, err)
		}
	}
	if m == nil {
		m = spelling.English()
	}

	keep := numericSymbols
	if cfg.punctuation {
		keep += periodMarker + commaMarker
		if cfg.keepBrackets {
			keep += "<>[]()"
		}
	}

	return &English{
		numbers:      numbers.New(numbers.WithLogger(cfg.logger)),
		spelling:     m,
		stripper:     symbols.New(symbols.StrategySymbolsAndDiacritics, keep),
		keepBrackets: cfg.keepBrackets,
		punctuation:  cfg.punctuation,
		workers:      cfg.workers,
		logger:       cfg.logger,
	}, nil
}

// Normalize returns the normalized form of s.
func (e *English) Normalize(s string) string {
	s = lower(s)

	if e.keepBrackets {
		s = bracketPattern.ReplaceAllString(s, " $1 ")
	} else {
		s = removeBracketed(s)
	}

	s = hesitationPattern.ReplaceAllString(s, "")
	s = spacedApostrophe.ReplaceAllString(s, "'")
	for _, r := range contractions {
		s = r.pattern.ReplaceAllString(s, r.with)
	}

	s = digitCommaPattern.ReplaceAllString(s, "$1$2")
	if e.punctuation {
		s = sentencePeriodPattern.ReplaceAllString(s, periodMarker+"$1")
		s = strings.ReplaceAll(s, ",", " "+commaMarker+" ")
	} else {
		s = sentencePeriodPattern.ReplaceAllString(s, " $1")
	}

	s = e.stripper.Strip(s)

	if e.punctuation {
		// A period right after an expanded title ("mr." became "mister .")
		// belonged to the abbreviation.
		s = strings.ReplaceAll(s, " "+periodMarker, " ")
		s = strings.ReplaceAll(s, periodMarker, " "+periodMarker+" ")
	}

	s = e.numbers.Normalize(s)
	s = e.spelling.Normalize(s)

	s = strayPrefixPattern.ReplaceAllString(s, " $1")
	s = straySuffixPattern.ReplaceAllString(s, "$1 ")
	s = collapseSpaces(s)

	if e.punctuation {
		s = commaMarkerPattern.ReplaceAllString(s, ", ")
		s = periodMarkerPattern.ReplaceAllString(s, ". ")
		s = bracketPattern.ReplaceAllString(s, "$1")
		s = commaRunPattern.ReplaceAllString(s, ", ")
	}

	return strings.TrimSpace(s)
}
