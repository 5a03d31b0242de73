package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/klimenkoOleg/top-words-go/internal/config"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.txt")
	output := filepath.Join(dir, "output.tsv")
	require.NoError(t, os.WriteFile(input, []byte("The cat, the hat.\nthe end of THE story\n"), 0o644))

	cfg, err := config.Load("wordtop", []string{"-k", "1", "--lowercase", "-o", output, input})
	require.NoError(t, err)
	require.NoError(t, run(context.Background(), cfg))

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	require.Equal(t, "the\t4\n", string(data))
}

func TestRun_BestEffort(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.txt")
	output := filepath.Join(dir, "output.tsv")
	require.NoError(t, os.WriteFile(input, []byte("go go\n"+strings.Repeat("z", 300)+"\n"), 0o644))

	cfg, err := config.Load("wordtop", []string{"--max-line-size=64", "-o", output, input})
	require.NoError(t, err)
	require.Error(t, run(context.Background(), cfg))

	cfg.BestEffort = true
	require.NoError(t, run(context.Background(), cfg))
	data, err := os.ReadFile(output)
	require.NoError(t, err)
	require.Equal(t, "go\t2\n", string(data))
}

func TestRun_MissingInput(t *testing.T) {
	cfg, err := config.Load("wordtop", []string{filepath.Join(t.TempDir(), "absent.txt")})
	require.NoError(t, err)
	require.Error(t, run(context.Background(), cfg))
}
