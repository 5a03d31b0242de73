// Package config reads the command line settings. Values come from flags,
// WORDTOP_* environment variables and an optional YAML file, in that order of
// precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/klimenkoOleg/top-words-go/internal/domain/wordfreq"
)

var ErrInvalidConfig = errors.New("invalid config")

const envPrefix = "WORDTOP"

type Config struct {
	Input       string
	K           int
	MinLength   int
	Output      string
	Format      wordfreq.Format
	Encoding    string
	BestEffort  bool
	Lowercase   bool
	StopWords   []string
	Progress    bool
	MaxLineSize int
}

func newFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", "", "path to a YAML config file")
	fs.StringP("input", "i", "", "text file to analyze (or first positional argument)")
	fs.IntP("top", "k", 10, "number of most frequent words to report")
	fs.IntP("min-length", "m", 0, "ignore words shorter than this")
	fs.StringP("output", "o", "", "write the report to this file instead of stdout")
	fs.StringP("format", "f", string(wordfreq.FormatTSV), "report format: tsv or yaml")
	fs.String("encoding", "utf-8", "charset of the input file")
	fs.Bool("best-effort", false, "report words counted before a read error instead of failing")
	fs.Bool("lowercase", false, "fold ASCII letters to lower case")
	fs.StringSlice("stop-words", nil, "words to skip")
	fs.Bool("progress", false, "show a progress bar on stderr")
	fs.Int("max-line-size", 1024*1024, "longest accepted input line in bytes")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [options] FILE\nprints the most frequent words of FILE\n\noptions:\n", name)
		fs.PrintDefaults()
	}

	return fs
}

// Load parses args (without the program name). It returns pflag.ErrHelp when
// help was requested.
func Load(name string, args []string) (*Config, error) {
	fs := newFlagSet(name)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("bind flags failed, error=%w", err)
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file failed, error=%w", err)
		}
	}

	format, err := wordfreq.ParseFormat(v.GetString("format"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	cfg := &Config{
		Input:       v.GetString("input"),
		K:           v.GetInt("top"),
		MinLength:   v.GetInt("min-length"),
		Output:      v.GetString("output"),
		Format:      format,
		Encoding:    v.GetString("encoding"),
		BestEffort:  v.GetBool("best-effort"),
		Lowercase:   v.GetBool("lowercase"),
		StopWords:   splitList(v.GetStringSlice("stop-words")),
		Progress:    v.GetBool("progress"),
		MaxLineSize: v.GetInt("max-line-size"),
	}
	if cfg.Input == "" && fs.NArg() > 0 {
		cfg.Input = fs.Arg(0)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// splitList splits comma separated entries, so env and config file values
// read as a single string behave like the repeated or comma separated flag.
func splitList(values []string) []string {
	var res []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				res = append(res, part)
			}
		}
	}

	return res
}

func (c *Config) Validate() error {
	switch {
	case c.Input == "":
		return fmt.Errorf("%w: input file is required", ErrInvalidConfig)
	case c.K <= 0:
		return fmt.Errorf("%w: top must be positive, got %d", ErrInvalidConfig, c.K)
	case c.MinLength < 0:
		return fmt.Errorf("%w: min-length must not be negative, got %d", ErrInvalidConfig, c.MinLength)
	case c.MaxLineSize <= 0:
		return fmt.Errorf("%w: max-line-size must be positive, got %d", ErrInvalidConfig, c.MaxLineSize)
	}

	return nil
}

// AnalyzerOptions maps the settings onto analyzer options.
func (c *Config) AnalyzerOptions() []wordfreq.Option {
	var opts []wordfreq.Option
	if c.BestEffort {
		opts = append(opts, wordfreq.WithReadPolicy(wordfreq.BestEffort))
	}
	if c.Lowercase {
		opts = append(opts, wordfreq.WithLowercase())
	}
	if len(c.StopWords) > 0 {
		opts = append(opts, wordfreq.WithStopWords(c.StopWords...))
	}

	return opts
}
