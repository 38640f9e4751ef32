package maze

// pathWalker carries the in-progress path during a depth-first search.
type pathWalker struct {
	m    *Maze
	path []Position
}

// FindWayOut searches for one route from the start cell to any exit
// using depth-first search with backtracking. Neighbors are probed in
// the fixed order UP, DOWN, LEFT, RIGHT; a cell is marked visited before
// recursing and stays marked after backtracking (see the package note on
// this quirk). Visited flags are reset first, so repeated calls are
// independent runs. "No path" is a normal outcome: the second result is
// false and no error is involved.
// Complexity: worst O(n) time (every cell visited once, O(1) work plus
// a fixed 4-way scan per visit); best O(path length).
func (m *Maze) FindWayOut() ([]Position, bool) {
	// 1. Independent run: clear visited state from any previous search.
	m.ResetVisited()

	// 2. Recurse from the start with a path buffer sized for the worst
	//    case, so appends never reallocate mid-recursion.
	w := &pathWalker{m: m, path: make([]Position, 0, m.rows*m.cols)}
	if !w.visit(m.start) {
		return nil, false
	}

	// 3. Hand out a copy; the walker buffer dies with this call.
	out := make([]Position, len(w.path))
	copy(out, w.path)

	return out, true
}

// visit explores cur depth-first, appending to the in-progress path.
// Returns true once an exit is reached; the successful path then
// unwinds intact through every frame.
func (w *pathWalker) visit(cur Position) bool {
	cell := &w.m.grid[cur.Row][cur.Col]

	// 1. An exit terminates the search; exit cells are never marked
	//    visited, they only complete the path.
	if cell.Tile == TileExit {
		w.path = append(w.path, cur)

		return true
	}

	// 2. Cycle avoidance: never re-enter a cell this run has seen.
	if cell.Visited {
		return false
	}

	// 3. Mark before recursing, then take the step.
	cell.Visited = true
	w.path = append(w.path, cur)

	// 4. Probe neighbors in UP, DOWN, LEFT, RIGHT order.
	for _, next := range w.m.AvailablePositions(cur) {
		if w.visit(next) {
			return true
		}
	}

	// 5. Dead end: pop this cell from the path. The visited mark stays,
	//    so sibling branches never retry this cell in the same run.
	w.path = w.path[:len(w.path)-1]

	return false
}
