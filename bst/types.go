// Package bst defines core types and sentinel errors for the bst
// subpackage of github.com/katalvlaran/hollowmaze.
package bst

import (
	"cmp"
	"errors"
)

// Sentinel errors for bst operations.
var (
	// ErrKeyNotFound indicates Delete was called with a key (or key+match
	// combination) not present in the tree.
	ErrKeyNotFound = errors.New("bst: key not found")
)

// node is a single tree node. Subtrees are exclusively owned: nodes are
// never shared between trees and carry no parent pointer.
type node[K cmp.Ordered, I any] struct {
	key         K
	item        I
	left, right *node[K, I]
}

// Tree is a binary search tree keyed by a totally-ordered key K and
// carrying opaque items I. The zero value is not usable; call New or
// NewBalanced.
//
// Invariant: for every node, keys in the left subtree are strictly less
// than the node key and keys in the right subtree are greater or equal
// (equal keys route right on insert).
type Tree[K cmp.Ordered, I any] struct {
	root *node[K, I]
	size int
}

// New returns an empty tree.
func New[K cmp.Ordered, I any]() *Tree[K, I] {
	return &Tree[K, I]{}
}

// Len returns the number of entries currently stored.
// Complexity: O(1).
func (t *Tree[K, I]) Len() int {
	return t.size
}
