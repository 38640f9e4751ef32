package maze

import (
	"fmt"
	"strings"
)

// Maze is a rectangular grid of Cells with one start position and any
// number of exits, walls, and hollow placements. The grid shape is fixed
// at construction; searches mutate only the Visited flags and the
// hollows' contents.
type Maze struct {
	rows, cols int
	start      Position
	grid       [][]Cell
}

// New constructs a maze from explicit geometry. Walls, exits, and hollow
// placements overwrite empty cells; the start cell is placed last so it
// is never buried. Returns ErrEmptyGrid for non-positive dimensions,
// ErrOutOfBounds for any position outside rows×cols, and ErrNilHollow
// for a placement without a strategy.
// Complexity: O(n) time and memory, n = rows·cols.
func New(start Position, exits, walls []Position, hollows []Placement, rows, cols int) (*Maze, error) {
	// 1. Geometry checks.
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	m := &Maze{rows: rows, cols: cols, start: start}
	if !m.inBounds(start) {
		return nil, fmt.Errorf("%w: start %v", ErrOutOfBounds, start)
	}

	// 2. Allocate the grid of empty cells.
	m.grid = make([][]Cell, rows)
	for r := range m.grid {
		m.grid[r] = make([]Cell, cols)
		for c := range m.grid[r] {
			m.grid[r][c] = Cell{Tile: TileEmpty, Pos: Position{Row: r, Col: c}}
		}
	}

	// 3. Place walls, hollows, and exits, validating bounds as we go.
	for _, w := range walls {
		if !m.inBounds(w) {
			return nil, fmt.Errorf("%w: wall %v", ErrOutOfBounds, w)
		}
		m.grid[w.Row][w.Col].Tile = TileWall
	}
	for _, p := range hollows {
		if !m.inBounds(p.Pos) {
			return nil, fmt.Errorf("%w: hollow %v", ErrOutOfBounds, p.Pos)
		}
		if p.Hollow == nil {
			return nil, fmt.Errorf("%w: at %v", ErrNilHollow, p.Pos)
		}
		m.grid[p.Pos.Row][p.Pos.Col].Tile = TileHollow
		m.grid[p.Pos.Row][p.Pos.Col].Hollow = p.Hollow
	}
	for _, e := range exits {
		if !m.inBounds(e) {
			return nil, fmt.Errorf("%w: exit %v", ErrOutOfBounds, e)
		}
		m.grid[e.Row][e.Col].Tile = TileExit
	}

	// 4. The start tile goes in last.
	m.grid[start.Row][start.Col].Tile = TileStart
	m.grid[start.Row][start.Col].Hollow = nil

	return m, nil
}

// Dims returns the grid dimensions (rows, cols).
// Complexity: O(1).
func (m *Maze) Dims() (rows, cols int) {
	return m.rows, m.cols
}

// Start returns the search entry position.
// Complexity: O(1).
func (m *Maze) Start() Position {
	return m.start
}

// CellAt returns a pointer to the cell at pos, or ErrOutOfBounds.
// Complexity: O(1).
func (m *Maze) CellAt(pos Position) (*Cell, error) {
	if !m.inBounds(pos) {
		return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, pos)
	}

	return &m.grid[pos.Row][pos.Col], nil
}

// IsPassable reports whether pos is inside the grid and not a wall.
// Complexity: O(1).
func (m *Maze) IsPassable(pos Position) bool {
	return m.inBounds(pos) && m.grid[pos.Row][pos.Col].Tile != TileWall
}

// inBounds reports whether pos lies within the grid boundaries.
func (m *Maze) inBounds(pos Position) bool {
	return pos.Row >= 0 && pos.Row < m.rows && pos.Col >= 0 && pos.Col < m.cols
}

// AvailablePositions returns the passable neighbors of pos, probed in
// the fixed order UP, DOWN, LEFT, RIGHT.
// Complexity: O(1) (four probes).
func (m *Maze) AvailablePositions(pos Position) []Position {
	out := make([]Position, 0, len(directionOffsets))
	for _, d := range directionOffsets {
		next := Position{Row: pos.Row + d.Row, Col: pos.Col + d.Col}
		if m.IsPassable(next) {
			out = append(out, next)
		}
	}

	return out
}

// ResetVisited clears every cell's Visited flag so an independent search
// run starts from a clean state.
// Complexity: O(n).
func (m *Maze) ResetVisited() {
	for r := range m.grid {
		for c := range m.grid[r] {
			m.grid[r][c].Visited = false
		}
	}
}

// String renders the grid one row per line using the text tile set
// ('.', '#', 'P', 'E', 'S', 'M').
// Complexity: O(n).
func (m *Maze) String() string {
	var b strings.Builder
	b.Grow(m.rows * (m.cols + 1))
	for r := range m.grid {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := range m.grid[r] {
			b.WriteRune(tileRune(&m.grid[r][c]))
		}
	}

	return b.String()
}
