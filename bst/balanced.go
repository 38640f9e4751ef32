package bst

import (
	"cmp"

	"github.com/katalvlaran/hollowmaze/keyed"
	"github.com/katalvlaran/hollowmaze/mergesort"
)

// NewBalanced builds a tree from an unsorted entry slice in guaranteed
// O(n log n): the entries are merge-sorted, then inserted midpoint-first
// so the resulting shape approximates a complete binary tree with height
// ⌈log2(n+1)⌉. The sort is stable, so equal keys enter the build in
// input order; their final in-order position among the tie is structural.
//
// The logarithmic height claim covers the build and the deletes that
// follow it; interleaving ad hoc inserts afterwards can degrade height.
// Complexity: O(n log n) time, O(n) memory.
func NewBalanced[K cmp.Ordered, I any](entries []keyed.Entry[K, I]) *Tree[K, I] {
	// 1. Stable O(n log n) sort; the input slice is left untouched.
	sorted := mergesort.Sort(entries)

	// 2. Midpoint-first insertion over the sorted range.
	t := New[K, I]()
	t.insertRange(sorted, 0, len(sorted)-1)

	return t
}

// insertRange inserts the middle entry of sorted[start..end] (inclusive),
// then recurses on the two halves. The midpoint is (start+end)/2 with
// floor division, favoring the lower half on even-length ranges; this
// exact tie-break is what yields the documented height bound.
func (t *Tree[K, I]) insertRange(sorted []keyed.Entry[K, I], start, end int) {
	// 1. Base case: empty range.
	if start > end {
		return
	}

	// 2. Insert the midpoint via the ordinary insert path.
	mid := (start + end) / 2
	t.Insert(sorted[mid].Key, sorted[mid].Item)

	// 3. Recurse on the lower and upper halves.
	t.insertRange(sorted, start, mid-1)
	t.insertRange(sorted, mid+1, end)
}
