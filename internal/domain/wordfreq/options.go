package wordfreq

import "strings"

// ReadPolicy decides what the analyzer returns when the source fails mid-read.
// The read error is reported in both cases.
type ReadPolicy int

const (
	// FailFast drops everything counted so far.
	FailFast ReadPolicy = iota
	// BestEffort returns the words counted before the failure along with the error.
	BestEffort
)

func (p ReadPolicy) String() string {
	switch p {
	case FailFast:
		return "fail-fast"
	case BestEffort:
		return "best-effort"
	default:
		return "unknown"
	}
}

type options struct {
	readPolicy ReadPolicy
	lowercase  bool
	stopWords  map[string]struct{}
}

type Option func(*options)

func WithReadPolicy(p ReadPolicy) Option {
	return func(o *options) {
		o.readPolicy = p
	}
}

// WithLowercase folds ASCII letters so "The" and "the" count as one word.
func WithLowercase() Option {
	return func(o *options) {
		o.lowercase = true
	}
}

// WithStopWords skips the given words. They are matched against sanitized
// tokens, after lowercasing when WithLowercase is set.
func WithStopWords(words ...string) Option {
	return func(o *options) {
		if o.stopWords == nil {
			o.stopWords = make(map[string]struct{}, len(words))
		}
		for _, w := range words {
			o.stopWords[w] = struct{}{}
		}
	}
}

func newOptions(opts []Option) *options {
	o := &options{readPolicy: FailFast}
	for _, opt := range opts {
		opt(o)
	}
	if o.lowercase && len(o.stopWords) > 0 {
		folded := make(map[string]struct{}, len(o.stopWords))
		for w := range o.stopWords {
			folded[strings.ToLower(w)] = struct{}{}
		}
		o.stopWords = folded
	}

	return o
}

func (o *options) accept(word string, minimumLength int) bool {
	if word == "" || len(word) < minimumLength {
		return false
	}
	_, stop := o.stopWords[word]

	return !stop
}
