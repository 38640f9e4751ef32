package maze

import "github.com/katalvlaran/hollowmaze/treasure"

// CollectTreasures walks path in order with an initial weight budget.
// Each hollow-bearing cell is asked once for its best-fitting treasure
// under the remaining capacity; a success is accumulated and the
// capacity shrinks by the taken weight, a miss is skipped. The walk
// never revisits a hollow after leaving its cell and never looks ahead.
// Returns nil when nothing was collected. Positions outside the grid
// are ignored; FindWayOut paths are always in bounds.
// Complexity: O(p) hollow queries, p = path length; each query costs
// the strategy's take bound.
func (m *Maze) CollectTreasures(path []Position, capacity int) []treasure.Treasure {
	var taken []treasure.Treasure
	for _, pos := range path {
		// 1. Only hollow cells can yield treasure.
		if !m.inBounds(pos) {
			continue
		}
		cell := &m.grid[pos.Row][pos.Col]
		if cell.Tile != TileHollow {
			continue
		}

		// 2. Greedy extraction under the remaining budget.
		t, ok := cell.Hollow.TakeBestFitting(capacity)
		if !ok {
			continue
		}
		taken = append(taken, t)
		capacity -= t.Weight
	}

	return taken
}
