// Package mergesort implements a stable merge sort over keyed entries.
//
// What:
//
//   - Sort returns a new slice with the same entries in non-decreasing
//     key order, leaving the input untouched.
//   - Equal keys keep their relative input order (stability).
//
// Why:
//
//   - The bst package builds balanced trees from sorted input; a sort with
//     a guaranteed O(n log n) worst case keeps the whole construction
//     deterministic. A partition-based in-place sort is ruled out by its
//     quadratic worst case.
//
// Complexity:
//
//   - Time:   O(n log n) for all inputs (divide-and-conquer with merge).
//   - Memory: O(n) for the output and merge scratch space.
//
// See: bst.NewBalanced for the downstream consumer.
package mergesort
