// Package hollow implements the two treasure-selection strategies placed
// inside maze cells: Spooky (exclusive, tree-backed) and Mystical
// (shared, heap-backed).
//
// What:
//
//   - Both satisfy the Hollow capability contract:
//     TakeBestFitting(capacity) removes and returns the highest-ratio
//     treasure whose weight fits the budget; Len reports the remaining
//     count.
//   - Spooky restructures its treasures into a balanced BST keyed by the
//     negated value/weight ratio, so an ascending in-order walk yields
//     descending ratios. The first fitting node is deleted, nothing else
//     is touched.
//   - Mystical restructures into a max-heap keyed by the positive ratio.
//     Non-fitting maxima are parked in a side buffer and reinserted after
//     the hunt, so only the accepted treasure is net-removed. One
//     Mystical instance is typically aliased from several grid cells;
//     removal through any reference is visible through all of them.
//
// Invariants (both strategies):
//
//   - A successful take decreases Len by exactly one.
//   - A failed take (nothing fits, or the hollow is empty) leaves the
//     size and the contained multiset observably unchanged.
//
// Complexity:
//
//   - NewSpooky:   O(n log n).  Spooky take:   best O(log n), worst O(n).
//   - NewMystical: O(n).        Mystical take: best O(log n), worst O(n log n).
//
// Errors:
//
//   - ErrNoTreasures: construction from an empty treasure list. "No
//     fitting treasure" is a normal outcome and is reported by the
//     ok-bool, never as an error.
package hollow
