package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/klimenkoOleg/top-words-go/internal/config"
	"github.com/klimenkoOleg/top-words-go/internal/domain/wordfreq"
)

func writeConfig(t *testing.T, values map[string]interface{}) string {
	t.Helper()
	data, err := yaml.Marshal(values)
	require.NoError(t, err)
	name := filepath.Join(t.TempDir(), "wordtop.yaml")
	require.NoError(t, os.WriteFile(name, data, 0o644))
	return name
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := config.Load("wordtop", []string{"input.txt"})
		require.NoError(t, err)

		require.Equal(t, "input.txt", cfg.Input)
		require.Equal(t, 10, cfg.K)
		require.Equal(t, 0, cfg.MinLength)
		require.Equal(t, wordfreq.FormatTSV, cfg.Format)
		require.Equal(t, "utf-8", cfg.Encoding)
		require.False(t, cfg.BestEffort)
		require.Empty(t, cfg.StopWords)
		require.Empty(t, cfg.AnalyzerOptions())
	})

	t.Run("flags", func(t *testing.T) {
		cfg, err := config.Load("wordtop", []string{
			"-k", "3", "--min-length=4", "-f", "yaml", "-o", "out.yaml",
			"--best-effort", "--lowercase", "--stop-words", "the,and", "--input", "book.txt",
		})
		require.NoError(t, err)

		require.Equal(t, "book.txt", cfg.Input)
		require.Equal(t, 3, cfg.K)
		require.Equal(t, 4, cfg.MinLength)
		require.Equal(t, wordfreq.FormatYAML, cfg.Format)
		require.Equal(t, "out.yaml", cfg.Output)
		require.True(t, cfg.BestEffort)
		require.True(t, cfg.Lowercase)
		require.Equal(t, []string{"the", "and"}, cfg.StopWords)
		require.Len(t, cfg.AnalyzerOptions(), 3)
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("WORDTOP_TOP", "7")
		t.Setenv("WORDTOP_MIN_LENGTH", "2")

		cfg, err := config.Load("wordtop", []string{"input.txt"})
		require.NoError(t, err)
		require.Equal(t, 7, cfg.K)
		require.Equal(t, 2, cfg.MinLength)
	})

	t.Run("stop words from env and config file split on commas", func(t *testing.T) {
		t.Setenv("WORDTOP_STOP_WORDS", "the, and")
		cfg, err := config.Load("wordtop", []string{"input.txt"})
		require.NoError(t, err)
		require.Equal(t, []string{"the", "and"}, cfg.StopWords)

		name := writeConfig(t, map[string]interface{}{"stop-words": "of,a"})
		t.Setenv("WORDTOP_STOP_WORDS", "")
		cfg, err = config.Load("wordtop", []string{"--config", name, "input.txt"})
		require.NoError(t, err)
		require.Equal(t, []string{"of", "a"}, cfg.StopWords)
	})

	t.Run("config file below env and flags", func(t *testing.T) {
		name := writeConfig(t, map[string]interface{}{
			"top":        5,
			"min-length": 3,
			"format":     "yaml",
			"encoding":   "latin1",
		})
		t.Setenv("WORDTOP_MIN_LENGTH", "6")

		cfg, err := config.Load("wordtop", []string{"--config", name, "-k", "2", "input.txt"})
		require.NoError(t, err)
		require.Equal(t, 2, cfg.K)
		require.Equal(t, 6, cfg.MinLength)
		require.Equal(t, wordfreq.FormatYAML, cfg.Format)
		require.Equal(t, "latin1", cfg.Encoding)
	})

	t.Run("missing config file", func(t *testing.T) {
		_, err := config.Load("wordtop", []string{"--config", filepath.Join(t.TempDir(), "none.yaml"), "input.txt"})
		require.Error(t, err)
	})

	t.Run("help", func(t *testing.T) {
		_, err := config.Load("wordtop", []string{"--help"})
		require.ErrorIs(t, err, pflag.ErrHelp)
	})
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string][]string{
		"no input":       {"-k", "3"},
		"zero k":         {"-k", "0", "input.txt"},
		"negative k":     {"--top=-2", "input.txt"},
		"negative min":   {"--min-length=-1", "input.txt"},
		"unknown format": {"-f", "csv", "input.txt"},
		"zero line size": {"--max-line-size=0", "input.txt"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load("wordtop", args)
			require.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}
