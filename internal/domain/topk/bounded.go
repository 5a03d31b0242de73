// Package topk keeps the k highest ranked items out of a stream of inserts and
// rank updates.
package topk

import (
	"container/heap"
	"errors"
	"fmt"
	"sort"
)

var ErrInvalidCapacity = errors.New("capacity must be positive")

// BoundedTopK holds at most Cap() occupants, evicting the lowest ranked one
// whenever an insert pushes it over capacity.
//
// Occupants are identified by key: inserting an item whose key is already
// present re-ranks that occupant instead of adding a second one. Rank is
// decided by less only, so two occupants may have equal rank and different
// keys. Which of several equal minimums gets evicted is not specified.
type BoundedTopK[K comparable, T any] struct {
	maxSize int
	key     func(T) K
	h       *entryHeap[K, T]
	index   map[K]*entry[K, T]

	// entries pushed by InsertAllOrUpdate whose key was already indexed
	shadowed int
}

// New returns an empty container. less reports whether a ranks below b.
func New[K comparable, T any](maxSize int, key func(T) K, less func(a, b T) bool) (*BoundedTopK[K, T], error) {
	if maxSize <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, maxSize)
	}

	h := &entryHeap[K, T]{
		entries: make([]*entry[K, T], 0, maxSize+1),
		less:    less,
	}
	heap.Init(h)

	return &BoundedTopK[K, T]{
		maxSize: maxSize,
		key:     key,
		h:       h,
		index:   make(map[K]*entry[K, T], maxSize),
	}, nil
}

// InsertOrUpdate inserts item, or replaces and re-ranks the occupant with the
// same key. If the container is then over capacity the minimum is evicted,
// which may be item itself.
func (b *BoundedTopK[K, T]) InsertOrUpdate(item T) bool {
	k := b.key(item)
	if e, ok := b.index[k]; ok {
		e.item = item
		if b.shadowed > 0 {
			// duplicates of k may share a mutated pointee, so a single Fix is not enough
			heap.Init(b.h)
		} else {
			heap.Fix(b.h, e.index)
		}
		return true
	}

	b.push(k, item)
	if b.h.Len() > b.maxSize {
		b.evictMin()
	}

	return true
}

// InsertAllOrUpdate pushes every item and only then evicts minimums until the
// container fits its capacity again.
//
// Unlike InsertOrUpdate it does not look for occupants with the same key:
// a key repeated inside items, or already present, ends up as more than one
// occupant. Callers that need one occupant per key should use InsertOrUpdate.
// While such duplicates exist, InsertOrUpdate re-heapifies the whole
// container instead of fixing a single slot.
func (b *BoundedTopK[K, T]) InsertAllOrUpdate(items []T) bool {
	for _, item := range items {
		b.push(b.key(item), item)
	}
	for b.h.Len() > b.maxSize {
		b.evictMin()
	}

	return len(items) > 0
}

// PeekMin returns the lowest ranked occupant without removing it.
func (b *BoundedTopK[K, T]) PeekMin() (T, bool) {
	if b.h.Len() == 0 {
		var zero T
		return zero, false
	}

	return b.h.entries[0].item, true
}

// Contains reports whether an occupant with item's key is present.
func (b *BoundedTopK[K, T]) Contains(item T) bool {
	_, ok := b.index[b.key(item)]
	return ok
}

func (b *BoundedTopK[K, T]) Len() int { return b.h.Len() }
func (b *BoundedTopK[K, T]) Cap() int { return b.maxSize }

// Items returns the occupants in heap order, which is not a ranking.
func (b *BoundedTopK[K, T]) Items() []T {
	items := make([]T, 0, b.h.Len())
	for _, e := range b.h.entries {
		items = append(items, e.item)
	}

	return items
}

// Sorted returns the occupants highest rank first. The relative order of
// occupants with equal rank is not guaranteed.
func (b *BoundedTopK[K, T]) Sorted() []T {
	items := b.Items()
	sort.SliceStable(items, func(i, j int) bool {
		return b.h.less(items[j], items[i])
	})

	return items
}

func (b *BoundedTopK[K, T]) push(k K, item T) {
	e := &entry[K, T]{item: item, key: k}
	if _, ok := b.index[k]; ok {
		b.shadowed++
	}
	heap.Push(b.h, e)
	b.index[k] = e
}

func (b *BoundedTopK[K, T]) evictMin() {
	e := heap.Pop(b.h).(*entry[K, T])
	if b.index[e.key] != e {
		b.shadowed--
		return
	}

	delete(b.index, e.key)
	if b.shadowed == 0 {
		return
	}
	// a duplicate left behind by InsertAllOrUpdate takes over the key
	for _, other := range b.h.entries {
		if other.key == e.key {
			b.index[e.key] = other
			b.shadowed--
			return
		}
	}
}
