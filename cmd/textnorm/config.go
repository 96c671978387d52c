package main

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// settings are resolved from defaults, an optional config file, TEXTNORM_*
// environment variables and flags, later sources winning.
type settings struct {
	Mode         string `mapstructure:"mode"`
	Spelling     string `mapstructure:"spelling"`
	Punctuation  bool   `mapstructure:"punctuation"`
	KeepBrackets bool   `mapstructure:"keep_brackets"`
	Strategy     string `mapstructure:"strategy"`
	SplitLetters bool   `mapstructure:"split_letters"`
	Workers      int    `mapstructure:"workers"`
	LogLevel     string `mapstructure:"log_level"`
	LogFile      string `mapstructure:"log_file"`
}

var errUnknownMode = errors.New("unknown mode")

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("textnorm", flag.ContinueOnError)
	fs.String("config", "", "Path to a config file (yaml, json or toml)")
	fs.String("mode", "english", "Normalizer: english, basic, numbers or spelling")
	fs.String("spelling", "", "Path to a british=american spelling file (default: built-in list)")
	fs.Bool("punctuation", false, "Keep sentence periods and commas (english)")
	fs.Bool("keep-brackets", false, "Keep words inside brackets (english)")
	fs.String("strategy", "symbols", "Symbol stripping: symbols, diacritics or transliterate (basic)")
	fs.Bool("split-letters", false, "Separate every character with a space (basic)")
	fs.Int("workers", 0, "Lines normalized concurrently (default: number of CPUs)")
	fs.String("log-level", "warn", "Log level: debug, info, warn or error")
	fs.String("log-file", "", "Write JSON logs to a rotated file instead of stderr")
	return fs
}

// loadSettings parses args and merges every configuration source. It returns
// the positional arguments left after the flags.
func loadSettings(fs *flag.FlagSet, args []string, env func(string) string) (settings, []string, error) {
	if err := fs.Parse(args); err != nil {
		return settings{}, nil, err
	}

	v := viper.New()
	v.SetEnvPrefix("TEXTNORM")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	fs.VisitAll(func(f *flag.Flag) {
		if f.Name != "config" {
			v.SetDefault(key(f.Name), f.DefValue)
		}
	})

	path := fs.Lookup("config").Value.String()
	if path == "" && env != nil {
		path = env("TEXTNORM_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return settings{}, nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	// only flags given on the command line override the other sources
	fs.Visit(func(f *flag.Flag) {
		if f.Name != "config" {
			v.Set(key(f.Name), f.Value.String())
		}
	})

	var s settings
	if err := v.Unmarshal(&s); err != nil {
		return settings{}, nil, fmt.Errorf("decoding settings: %w", err)
	}

	switch s.Mode {
	case "english", "basic", "numbers", "spelling":
	default:
		return settings{}, nil, fmt.Errorf("%w: %q", errUnknownMode, s.Mode)
	}

	return s, fs.Args(), nil
}

func key(flagName string) string {
	return strings.ReplaceAll(flagName, "-", "_")
}
