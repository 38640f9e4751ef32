// Package heap implements a generic array-backed binary max-heap over
// keyed entries.
//
// What:
//
//   - MaxHeap[K, I] supports O(n) bulk construction (Heapify), O(log n)
//     PushEntry and PopMax, plus Peek and Len.
//   - The heap order is by Key only: the parent key dominates both child
//     keys (max-heap invariant). Items ride along untouched.
//
// Why:
//
//   - The mystical hollow ranks treasures by value/weight ratio and wants
//     the best ratio first; a max-heap exposes it directly, with cheap
//     restore-on-reject reinsertion.
//   - Mechanics delegate to the standard library's container/heap, the
//     same way every heap in this codebase's lineage does; the generic
//     wrapper only adds typed keys and loud empty-pop errors.
//
// Complexity:
//
//   - Heapify: O(n) time, O(n) memory (entries are copied in).
//   - PushEntry / PopMax: O(log n) time.
//   - Peek / Len: O(1).
//
// Errors:
//
//   - ErrEmptyHeap: PopMax or Peek on an empty heap (broken precondition,
//     reported loudly rather than silently ignored).
package heap
