package bst

import "cmp"

// Insert adds (key, item) to the tree. Duplicate keys are allowed; an
// equal key descends into the right subtree, so among ties the
// earliest-inserted entry is encountered first in-order.
// Complexity: O(h) time, h = tree height.
func (t *Tree[K, I]) Insert(key K, item I) {
	t.root = insertNode(t.root, key, item)
	t.size++
}

// insertNode descends to the insertion point and links the new leaf.
func insertNode[K cmp.Ordered, I any](n *node[K, I], key K, item I) *node[K, I] {
	// 1. Empty slot: attach the new leaf here.
	if n == nil {
		return &node[K, I]{key: key, item: item}
	}

	// 2. Strictly smaller keys go left; equal or greater go right.
	if key < n.key {
		n.left = insertNode(n.left, key, item)
	} else {
		n.right = insertNode(n.right, key, item)
	}

	return n
}

// Get returns the item stored under key and whether it was found.
// With duplicate keys the topmost (earliest-inserted) match is returned.
// Complexity: O(h) time.
func (t *Tree[K, I]) Get(key K) (I, bool) {
	n := t.root
	for n != nil {
		switch {
		case key < n.key:
			n = n.left
		case key > n.key:
			n = n.right
		default:
			return n.item, true
		}
	}

	var zero I
	return zero, false
}

// Contains reports whether key is present in the tree.
// Complexity: O(h) time.
func (t *Tree[K, I]) Contains(key K) bool {
	_, ok := t.Get(key)
	return ok
}

// Delete removes one entry with the given key and returns its item.
// Removing an absent key is a broken precondition and yields
// ErrKeyNotFound with the tree unchanged.
// Complexity: O(h) time.
func (t *Tree[K, I]) Delete(key K) (I, error) {
	return t.DeleteWhere(key, nil)
}

// DeleteWhere removes the first in-order entry whose key equals key and
// whose item satisfies match (a nil match accepts any item), returning
// the removed item. Because equal keys route right on insert, the
// candidates form a chain along right children and are probed in
// in-order (insertion) order. Returns ErrKeyNotFound if no entry
// qualifies; the tree is left unchanged in that case.
// Complexity: O(h) time.
func (t *Tree[K, I]) DeleteWhere(key K, match func(I) bool) (I, error) {
	root, removed, ok := deleteNode(t.root, key, match)
	if !ok {
		var zero I
		return zero, ErrKeyNotFound
	}
	t.root = root
	t.size--

	return removed, nil
}

// deleteNode removes a qualifying node from the subtree rooted at n and
// returns the new subtree root, the removed item, and whether a removal
// happened.
func deleteNode[K cmp.Ordered, I any](n *node[K, I], key K, match func(I) bool) (*node[K, I], I, bool) {
	var zero I

	// 1. Fell off the tree: nothing to remove.
	if n == nil {
		return nil, zero, false
	}

	// 2. Descend by key; on an equal key that fails the match, keep
	//    descending right, where any further duplicates live.
	switch {
	case key < n.key:
		left, removed, ok := deleteNode(n.left, key, match)
		if !ok {
			return n, zero, false
		}
		n.left = left

		return n, removed, true
	case key > n.key || (match != nil && !match(n.item)):
		right, removed, ok := deleteNode(n.right, key, match)
		if !ok {
			return n, zero, false
		}
		n.right = right

		return n, removed, true
	}

	// 3. This node matches: splice it out.
	removed := n.item
	switch {
	case n.left == nil:
		return n.right, removed, true
	case n.right == nil:
		return n.left, removed, true
	default:
		// 3a. Two children: promote the in-order successor (minimum of
		//     the right subtree), then splice that successor out below.
		//     The successor holds the minimal key of the right subtree,
		//     so an unmatched delete there hits exactly that node.
		succ := n.right
		for succ.left != nil {
			succ = succ.left
		}
		n.key, n.item = succ.key, succ.item
		right, _, _ := deleteNode(n.right, succ.key, nil)
		n.right = right

		return n, removed, true
	}
}

// Height returns the number of nodes on the longest root-to-leaf chain
// (0 for an empty tree).
// Complexity: O(n) time.
func (t *Tree[K, I]) Height() int {
	return height(t.root)
}

func height[K cmp.Ordered, I any](n *node[K, I]) int {
	if n == nil {
		return 0
	}

	return 1 + max(height(n.left), height(n.right))
}
