package wordfreq

import (
	"github.com/klimenkoOleg/top-words-go/internal/domain/topk"
)

// WordCount is a distinct word and how many times it has been seen so far.
// Ordering is by Count only.
type WordCount struct {
	Word  string `yaml:"word"`
	Count int    `yaml:"count"`
}

func (w *WordCount) Increment() int {
	w.Count++
	return w.Count
}

func Less(a, b *WordCount) bool { return a.Count < b.Count }

func wordOf(w *WordCount) string { return w.Word }

// TopWords is the bounded container the analyzer feeds.
type TopWords = topk.BoundedTopK[string, *WordCount]

// NewTopWords returns an empty container holding at most k words.
func NewTopWords(k int) (*TopWords, error) {
	return topk.New(k, wordOf, Less)
}
