package bst

import "cmp"

// InOrder walks the tree in ascending key order, calling fn for each
// entry. Returning false from fn stops the walk immediately; the tree
// may then be mutated safely (the hollow package deletes the entry it
// stopped on). Mutating the tree from inside fn is not supported.
// Complexity: O(n) time worst case, O(h) stack.
func (t *Tree[K, I]) InOrder(fn func(key K, item I) bool) {
	inOrder(t.root, fn)
}

func inOrder[K cmp.Ordered, I any](n *node[K, I], fn func(key K, item I) bool) bool {
	if n == nil {
		return true
	}
	if !inOrder(n.left, fn) {
		return false
	}
	if !fn(n.key, n.item) {
		return false
	}

	return inOrder(n.right, fn)
}

// Iterator is a lazy, restartable in-order cursor over a Tree. It keeps
// an explicit stack of pending nodes, so traversal depth never grows the
// native call stack. Any mutation of the tree invalidates the iterator;
// create a fresh one with NewIterator.
type Iterator[K cmp.Ordered, I any] struct {
	stack []*node[K, I]
}

// NewIterator returns an in-order iterator positioned before the first
// (smallest-key) entry.
// Complexity: O(h) time and memory.
func (t *Tree[K, I]) NewIterator() *Iterator[K, I] {
	it := &Iterator[K, I]{stack: make([]*node[K, I], 0, 8)}
	it.pushLeftSpine(t.root)

	return it
}

// pushLeftSpine stacks n and all its left descendants, so the deepest
// stacked node is the next in-order entry.
func (it *Iterator[K, I]) pushLeftSpine(n *node[K, I]) {
	for n != nil {
		it.stack = append(it.stack, n)
		n = n.left
	}
}

// Next yields the next entry in ascending key order. The third result is
// false once the traversal is exhausted.
// Complexity: amortized O(1) per call, O(n) across a full traversal.
func (it *Iterator[K, I]) Next() (K, I, bool) {
	// 1. Exhausted: nothing left on the stack.
	if len(it.stack) == 0 {
		var (
			zeroK K
			zeroI I
		)

		return zeroK, zeroI, false
	}

	// 2. Pop the pending node and stage its right subtree's left spine.
	n := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	it.pushLeftSpine(n.right)

	return n.key, n.item, true
}
