// Package bst implements a generic binary search tree with a balanced
// construction from unsorted data.
//
// What:
//
//   - Tree[K, I] supports Insert, Get, Delete, Len, Height, and lazy
//     in-order traversal (callback or restartable Iterator).
//   - NewBalanced sorts the input (mergesort) and inserts midpoints
//     recursively, yielding height ⌈log2(n+1)⌉ regardless of input order.
//
// Why:
//
//   - Inserting in arrival order degenerates to O(n²) on sorted or
//     adversarial input. Sort-then-midpoint-build pins construction at
//     O(n log n) and every subsequent search/delete at O(height).
//   - The hollow package keys trees by negated value/weight ratio, so an
//     ascending in-order walk yields treasures in descending ratio order.
//
// Semantics:
//
//   - Keys need not be unique. Equal keys are routed to the right subtree
//     on insert, so the earliest-inserted of a tie is first in-order.
//   - Delete of an absent key is a precondition violation and returns
//     ErrKeyNotFound rather than silently doing nothing.
//   - Traversal may stop early; deleting the node last yielded is safe
//     once the traversal has stopped. An Iterator is invalidated by any
//     mutation and must be discarded.
//
// Complexity:
//
//   - NewBalanced:        O(n log n) time, O(n) memory.
//   - Insert/Get/Delete:  O(h) time, h = tree height (O(log n) right
//     after a balanced build).
//   - In-order traversal: O(n) total, O(h) memory for the iterator stack.
//
// Errors:
//
//   - ErrKeyNotFound: Delete was asked to remove a key the tree does not hold.
package bst
