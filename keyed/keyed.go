// Package keyed defines the key/item pair shared by the container
// subpackages (mergesort, bst, heap) of github.com/katalvlaran/hollowmaze.
//
// What:
//
//   - Entry[K, I] couples a totally-ordered key with an opaque item.
//
// Why:
//
//   - One vocabulary type lets the sorter, the tree, and the heap exchange
//     data without conversions: sort entries, build a tree from them, or
//     heapify them directly.
//
// Keys need not be unique; containers break ties by insertion or
// structural order, never by item identity.
package keyed

import "cmp"

// Entry is an ordered (key, item) pair. The key drives every comparison;
// the item is carried along untouched.
type Entry[K cmp.Ordered, I any] struct {
	// Key is the totally-ordered sort/priority key.
	Key K
	// Item is the opaque payload associated with Key.
	Item I
}
