package heap

import (
	"cmp"
	stdheap "container/heap"
	"errors"

	"github.com/katalvlaran/hollowmaze/keyed"
)

// Sentinel errors for heap operations.
var (
	// ErrEmptyHeap indicates PopMax or Peek was called on an empty heap.
	ErrEmptyHeap = errors.New("heap: empty heap")
)

// entrySlice adapts a dense entry slice to container/heap.Interface with
// max-first ordering. Index i's children live at 2i+1 and 2i+2; the
// slice has no gaps and its length equals the item count.
type entrySlice[K cmp.Ordered, I any] []keyed.Entry[K, I]

func (s entrySlice[K, I]) Len() int           { return len(s) }
func (s entrySlice[K, I]) Less(i, j int) bool { return s[i].Key > s[j].Key } // max first
func (s entrySlice[K, I]) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

func (s *entrySlice[K, I]) Push(x any) {
	*s = append(*s, x.(keyed.Entry[K, I]))
}

func (s *entrySlice[K, I]) Pop() any {
	old := *s
	n := len(old)
	e := old[n-1]
	old[n-1] = keyed.Entry[K, I]{} // drop the reference
	*s = old[:n-1]

	return e
}

// MaxHeap is an array-backed binary max-heap over keyed entries. The
// zero value is an empty heap ready for PushEntry; use Heapify for O(n)
// bulk construction.
type MaxHeap[K cmp.Ordered, I any] struct {
	entries entrySlice[K, I]
}

// Heapify builds a max-heap containing every entry of src. src itself is
// copied and left untouched.
// Complexity: O(n) time (bottom-up sift via container/heap.Init).
func Heapify[K cmp.Ordered, I any](src []keyed.Entry[K, I]) *MaxHeap[K, I] {
	h := &MaxHeap[K, I]{entries: make(entrySlice[K, I], len(src))}
	copy(h.entries, src)
	stdheap.Init(&h.entries)

	return h
}

// Len returns the number of entries currently held.
// Complexity: O(1).
func (h *MaxHeap[K, I]) Len() int {
	return len(h.entries)
}

// PushEntry inserts e, restoring the max-heap invariant.
// Complexity: O(log n) time.
func (h *MaxHeap[K, I]) PushEntry(e keyed.Entry[K, I]) {
	stdheap.Push(&h.entries, e)
}

// PopMax removes and returns the entry with the greatest key. Popping an
// empty heap is a broken precondition and yields ErrEmptyHeap.
// Complexity: O(log n) time.
func (h *MaxHeap[K, I]) PopMax() (keyed.Entry[K, I], error) {
	if len(h.entries) == 0 {
		return keyed.Entry[K, I]{}, ErrEmptyHeap
	}

	return stdheap.Pop(&h.entries).(keyed.Entry[K, I]), nil
}

// Peek returns the entry with the greatest key without removing it.
// Complexity: O(1) time.
func (h *MaxHeap[K, I]) Peek() (keyed.Entry[K, I], error) {
	if len(h.entries) == 0 {
		return keyed.Entry[K, I]{}, ErrEmptyHeap
	}

	return h.entries[0], nil
}
