package hollow

import (
	"github.com/katalvlaran/hollowmaze/heap"
	"github.com/katalvlaran/hollowmaze/keyed"
	"github.com/katalvlaran/hollowmaze/treasure"
)

// Mystical is the shared selection strategy: a max-heap keyed by the
// positive value/weight ratio. All mystical placements in a maze alias
// one *Mystical instance, so a treasure taken through any placement
// disappears from every placement. The collection lives as long as the
// maze that references it.
type Mystical struct {
	heap *heap.MaxHeap[float64, treasure.Treasure]
}

// compile-time contract check
var _ Hollow = (*Mystical)(nil)

// NewMystical restructures ts into the heap form. Ratios are computed
// once here. Returns ErrNoTreasures for an empty list.
// Complexity: O(n) time (bulk heapify).
func NewMystical(ts []treasure.Treasure) (*Mystical, error) {
	// 1. A hollow without treasures is a broken precondition.
	if len(ts) == 0 {
		return nil, ErrNoTreasures
	}

	// 2. Key every treasure by its positive ratio; the heap exposes the
	//    maximum directly, so no negation is needed.
	entries := make([]keyed.Entry[float64, treasure.Treasure], len(ts))
	for i, t := range ts {
		entries[i] = keyed.Entry[float64, treasure.Treasure]{Key: t.Ratio(), Item: t}
	}

	return &Mystical{heap: heap.Heapify(entries)}, nil
}

// TakeBestFitting repeatedly extracts the maximum-ratio treasure until
// one fits capacity or the heap runs dry. Rejected extractions are held
// in a side buffer and reinserted afterwards (reinsertion order is
// irrelevant to the heap invariant), so only the accepted treasure is
// net-removed; a miss restores the heap to its exact prior multiset.
// Complexity: best O(log n) (the maximum fits), worst O(n log n) (every
// treasure rejected once, each extraction and reinsertion O(log n)).
func (m *Mystical) TakeBestFitting(capacity int) (treasure.Treasure, bool) {
	// 1. Hunt: extract maxima, parking the ones that do not fit.
	var (
		rejected []keyed.Entry[float64, treasure.Treasure]
		hit      treasure.Treasure
		found    bool
	)
	for m.heap.Len() > 0 {
		e, err := m.heap.PopMax()
		if err != nil {
			// Len was just checked; an empty pop means the heap is corrupt.
			panic("hollow: mystical pop after length check: " + err.Error())
		}
		if e.Item.Weight <= capacity {
			hit, found = e.Item, true

			break
		}
		rejected = append(rejected, e)
	}

	// 2. Restore every rejected treasure; the transient extraction is
	//    not observable once this loop finishes.
	for _, e := range rejected {
		m.heap.PushEntry(e)
	}

	return hit, found
}

// Len returns the number of treasures currently in the shared collection.
// Complexity: O(1).
func (m *Mystical) Len() int {
	return m.heap.Len()
}
