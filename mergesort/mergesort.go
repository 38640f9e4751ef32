package mergesort

import (
	"cmp"

	"github.com/katalvlaran/hollowmaze/keyed"
)

// Sort returns a new slice containing the entries of src in non-decreasing
// key order. The sort is stable: entries with equal keys appear in the same
// relative order as in src. src itself is never modified.
// Complexity: O(n log n) time for all inputs, O(n) extra memory.
func Sort[K cmp.Ordered, I any](src []keyed.Entry[K, I]) []keyed.Entry[K, I] {
	// 1. Copy the input so the caller's slice stays untouched.
	out := make([]keyed.Entry[K, I], len(src))
	copy(out, src)

	// 2. Trivially sorted inputs need no work.
	if len(out) < 2 {
		return out
	}

	// 3. One scratch buffer is shared by every merge step.
	scratch := make([]keyed.Entry[K, I], len(out))
	sortRange(out, scratch, 0, len(out))

	return out
}

// sortRange sorts s[lo:hi) using scratch as merge space.
// The recursion depth is ⌈log2(hi-lo)⌉.
func sortRange[K cmp.Ordered, I any](s, scratch []keyed.Entry[K, I], lo, hi int) {
	// 1. Base case: zero or one entry is already sorted.
	if hi-lo < 2 {
		return
	}

	// 2. Split at the midpoint and sort each half.
	mid := lo + (hi-lo)/2
	sortRange(s, scratch, lo, mid)
	sortRange(s, scratch, mid, hi)

	// 3. Merge the two sorted halves back into s[lo:hi).
	merge(s, scratch, lo, mid, hi)
}

// merge combines the sorted runs s[lo:mid) and s[mid:hi) into s[lo:hi).
// On equal keys the left run wins, which is what makes the sort stable.
func merge[K cmp.Ordered, I any](s, scratch []keyed.Entry[K, I], lo, mid, hi int) {
	// 1. Stage both runs in the scratch buffer.
	copy(scratch[lo:hi], s[lo:hi])

	// 2. Walk the runs, always taking the smaller head (left on ties).
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if scratch[j].Key < scratch[i].Key {
			s[k] = scratch[j]
			j++
		} else {
			s[k] = scratch[i]
			i++
		}
		k++
	}

	// 3. Drain whichever run is left over.
	for i < mid {
		s[k] = scratch[i]
		i++
		k++
	}
	for j < hi {
		s[k] = scratch[j]
		j++
		k++
	}
}
