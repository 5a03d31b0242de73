package wordfreq

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatTSV  Format = "tsv"
	FormatYAML Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTSV, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

type report struct {
	TotalWords    int         `yaml:"total_words"`
	DistinctWords int         `yaml:"distinct_words"`
	Top           []WordCount `yaml:"top"`
}

// WriteReport writes the ranked result to w.
func WriteReport(w io.Writer, res *Result, format Format) error {
	lines, err := encodeReport(res, format)
	if err != nil {
		return err
	}
	for _, line := range lines {
		if _, err := io.WriteString(w, line); err != nil {
			return fmt.Errorf("write report failed, error=%w", err)
		}
	}

	return nil
}

func encodeReport(res *Result, format Format) ([]string, error) {
	ranked := res.Ranked()

	switch format {
	case FormatTSV:
		lines := make([]string, 0, len(ranked))
		for _, wc := range ranked {
			lines = append(lines, fmt.Sprintf("%s\t%d\n", wc.Word, wc.Count))
		}
		return lines, nil
	case FormatYAML:
		out, err := yaml.Marshal(report{
			TotalWords:    res.TotalWords(),
			DistinctWords: res.DistinctWords(),
			Top:           ranked,
		})
		if err != nil {
			return nil, fmt.Errorf("yaml marshal failed, error=%w", err)
		}
		return []string{string(out)}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
