package wordfreq_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/klimenkoOleg/top-words-go/internal/domain/wordfreq"
)

func TestWriteReport(t *testing.T) {
	res, err := wordfreq.FindTopK(context.Background(), newSliceSource("beta alpha beta", "gamma beta alpha delta"), 3)
	require.NoError(t, err)

	t.Run("tsv", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, wordfreq.WriteReport(&buf, res, wordfreq.FormatTSV))
		require.Contains(t, buf.String(), "beta\t3\nalpha\t2\n")
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, wordfreq.WriteReport(&buf, res, wordfreq.FormatYAML))

		var got struct {
			TotalWords    int                  `yaml:"total_words"`
			DistinctWords int                  `yaml:"distinct_words"`
			Top           []wordfreq.WordCount `yaml:"top"`
		}
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
		require.Equal(t, 7, got.TotalWords)
		require.Equal(t, 4, got.DistinctWords)
		require.Len(t, got.Top, 3)
		require.Equal(t, wordfreq.WordCount{Word: "beta", Count: 3}, got.Top[0])
		require.Equal(t, wordfreq.WordCount{Word: "alpha", Count: 2}, got.Top[1])
	})

	t.Run("unknown format", func(t *testing.T) {
		var buf bytes.Buffer
		err := wordfreq.WriteReport(&buf, res, wordfreq.Format("xml"))
		require.ErrorIs(t, err, wordfreq.ErrUnknownFormat)
		require.Zero(t, buf.Len())
	})
}

func TestWriteReport_TiesOrderedByWord(t *testing.T) {
	res, err := wordfreq.FindTopK(context.Background(), newSliceSource("pear fig apple"), 3)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, wordfreq.WriteReport(&buf, res, wordfreq.FormatTSV))
	require.Equal(t, "apple\t1\nfig\t1\npear\t1\n", buf.String())
}

func TestParseFormat(t *testing.T) {
	f, err := wordfreq.ParseFormat("TSV")
	require.NoError(t, err)
	require.Equal(t, wordfreq.FormatTSV, f)

	f, err = wordfreq.ParseFormat(" yml ")
	require.NoError(t, err)
	require.Equal(t, wordfreq.FormatYAML, f)

	_, err = wordfreq.ParseFormat("json")
	require.ErrorIs(t, err, wordfreq.ErrUnknownFormat)
}
