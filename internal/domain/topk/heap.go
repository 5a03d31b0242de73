package topk

// entry is a heap slot. index is kept in sync by Swap/Push/Pop so that an
// occupant can be fixed or removed without a linear scan.
type entry[K comparable, T any] struct {
	item  T
	key   K
	index int
}

// min-heap of entries ordered by less
type entryHeap[K comparable, T any] struct {
	entries []*entry[K, T]
	less    func(a, b T) bool
}

func (h *entryHeap[K, T]) Len() int { return len(h.entries) }
func (h *entryHeap[K, T]) Less(i, j int) bool {
	return h.less(h.entries[i].item, h.entries[j].item)
}

func (h *entryHeap[K, T]) Swap(i, j int) {
	h.entries[i], h.entries[j] = h.entries[j], h.entries[i]
	h.entries[i].index = i
	h.entries[j].index = j
}

func (h *entryHeap[K, T]) Push(x interface{}) {
	e := x.(*entry[K, T])
	e.index = len(h.entries)
	h.entries = append(h.entries, e)
}

func (h *entryHeap[K, T]) Pop() interface{} {
	old := h.entries
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	h.entries = old[0 : n-1]
	return e
}
