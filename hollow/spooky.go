package hollow

import (
	"fmt"

	"github.com/katalvlaran/hollowmaze/bst"
	"github.com/katalvlaran/hollowmaze/keyed"
	"github.com/katalvlaran/hollowmaze/treasure"
)

// Spooky is the exclusive selection strategy: it privately owns a
// balanced BST keyed by the negated value/weight ratio, so ascending key
// order is descending ratio order. Each Spooky holds treasures found
// nowhere else in the maze.
type Spooky struct {
	tree *bst.Tree[float64, treasure.Treasure]
}

// compile-time contract check
var _ Hollow = (*Spooky)(nil)

// NewSpooky restructures ts into the tree form. Ratios are computed once
// here, never per comparison. Returns ErrNoTreasures for an empty list.
// Complexity: O(n log n) time (stable sort + midpoint build).
func NewSpooky(ts []treasure.Treasure) (*Spooky, error) {
	// 1. A hollow without treasures is a broken precondition.
	if len(ts) == 0 {
		return nil, ErrNoTreasures
	}

	// 2. Key every treasure by its negated ratio.
	entries := make([]keyed.Entry[float64, treasure.Treasure], len(ts))
	for i, t := range ts {
		entries[i] = keyed.Entry[float64, treasure.Treasure]{Key: -t.Ratio(), Item: t}
	}

	// 3. Sort + balanced build in guaranteed O(n log n).
	return &Spooky{tree: bst.NewBalanced(entries)}, nil
}

// TakeBestFitting walks the tree in ascending key (descending ratio)
// order, stops at the first treasure whose weight fits capacity, and
// deletes exactly that node. On a miss the tree is left untouched.
// Complexity: best O(log n) (leftmost descent), worst O(n) (full scan).
func (s *Spooky) TakeBestFitting(capacity int) (treasure.Treasure, bool) {
	// 1. In-order scan with early termination on the first fit.
	var (
		hitKey float64
		hit    treasure.Treasure
		found  bool
	)
	s.tree.InOrder(func(key float64, t treasure.Treasure) bool {
		if t.Weight <= capacity {
			hitKey, hit, found = key, t, true

			return false // stop: no other node is touched
		}

		return true
	})
	if !found {
		return treasure.Treasure{}, false
	}

	// 2. Delete the exact node the scan stopped on. Equal ratios are
	//    disambiguated by the item match, so a tie never removes a
	//    heavier sibling.
	if _, err := s.tree.DeleteWhere(hitKey, func(t treasure.Treasure) bool { return t == hit }); err != nil {
		// The node was just visited; failing to find it again means the
		// tree is corrupt.
		panic(fmt.Sprintf("hollow: spooky delete after visit: %v", err))
	}

	return hit, true
}

// Len returns the number of treasures left in this hollow.
// Complexity: O(1).
func (s *Spooky) Len() int {
	return s.tree.Len()
}
