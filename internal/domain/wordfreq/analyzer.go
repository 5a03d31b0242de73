package wordfreq

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

type LineSource interface {
	Scan() bool
	ReadLine() string
	Err() error
}

// Result is the outcome of one analysis.
type Result struct {
	top      *TopWords
	total    int
	distinct int
}

// Top gives access to the underlying container.
func (r *Result) Top() *TopWords { return r.top }

func (r *Result) Len() int { return r.top.Len() }

// TotalWords is the number of tokens that passed the filters.
func (r *Result) TotalWords() int { return r.total }

// DistinctWords is the number of different words counted, including those
// that did not make it into the top.
func (r *Result) DistinctWords() int { return r.distinct }

// Ranked returns a snapshot of the top words, most frequent first. Equal
// counts are ordered by word to keep reports stable.
func (r *Result) Ranked() []WordCount {
	items := r.top.Items()
	ranked := make([]WordCount, 0, len(items))
	for _, wc := range items {
		ranked = append(ranked, *wc)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Word < ranked[j].Word
	})

	return ranked
}

// FindTopKWithMinLength counts the words produced by source and keeps the k
// most frequent. Words shorter than minimumLength are ignored; a
// minimumLength of zero or less disables the filter.
func FindTopKWithMinLength(ctx context.Context, source LineSource, k, minimumLength int, opts ...Option) (*Result, error) {
	o := newOptions(opts)
	top, err := NewTopWords(k)
	if err != nil {
		return nil, fmt.Errorf("create top words failed, error=%w", err)
	}

	res := &Result{top: top}
	wordCount := make(map[string]*WordCount)

	for source.Scan() {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("context cancelled, err if any=%w", ctx.Err())
		default: // just continue
		}

		for _, token := range strings.Fields(source.ReadLine()) {
			word := Sanitize(token)
			if o.lowercase {
				word = strings.ToLower(word)
			}
			if !o.accept(word, minimumLength) {
				continue
			}

			wc, ok := wordCount[word]
			if !ok {
				wc = &WordCount{Word: word}
				wordCount[word] = wc
			}
			wc.Increment()
			res.total++
			top.InsertOrUpdate(wc)
		}
	}
	res.distinct = len(wordCount)

	if err := source.Err(); err != nil {
		readErr := fmt.Errorf("%w: %w", ErrInputRead, err)
		if o.readPolicy == BestEffort {
			return res, readErr
		}
		return nil, readErr
	}

	return res, nil
}

func FindTopK(ctx context.Context, source LineSource, k int, opts ...Option) (*Result, error) {
	return FindTopKWithMinLength(ctx, source, k, 0, opts...)
}

func FindTop1WithMinLength(ctx context.Context, source LineSource, minimumLength int, opts ...Option) (*Result, error) {
	return FindTopKWithMinLength(ctx, source, 1, minimumLength, opts...)
}

// Sanitize drops every byte that is not an ASCII letter or digit.
func Sanitize(token string) string {
	clean := true
	for i := 0; i < len(token); i++ {
		if !isAlnum(token[i]) {
			clean = false
			break
		}
	}
	if clean {
		return token
	}

	var b strings.Builder
	b.Grow(len(token))
	for i := 0; i < len(token); i++ {
		if isAlnum(token[i]) {
			b.WriteByte(token[i])
		}
	}

	return b.String()
}

func isAlnum(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}
