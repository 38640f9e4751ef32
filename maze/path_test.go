package maze_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hollowmaze/maze"
	"github.com/katalvlaran/hollowmaze/treasure"
)

// fixedSource feeds Parse a deterministic treasure list per hollow.
func fixedSource(ts ...treasure.Treasure) maze.Option {
	return maze.WithTreasureSource(func() []treasure.Treasure {
		out := make([]treasure.Treasure, len(ts))
		copy(out, ts)

		return out
	})
}

// parseMaze is a test shorthand with one cheap treasure per hollow.
func parseMaze(t *testing.T, lines ...string) *maze.Maze {
	t.Helper()
	m, err := maze.Parse(lines, fixedSource(treasure.Treasure{Value: 1, Weight: 1}))
	require.NoError(t, err)

	return m
}

// requireContiguous asserts the path starts at start, ends on an exit,
// and every step moves to an orthogonal neighbor.
func requireContiguous(t *testing.T, m *maze.Maze, path []maze.Position) {
	t.Helper()
	require.NotEmpty(t, path)
	require.Equal(t, m.Start(), path[0], "path must begin at the start cell")
	last, err := m.CellAt(path[len(path)-1])
	require.NoError(t, err)
	require.Equal(t, maze.TileExit, last.Tile, "path must end on an exit")
	for i := 1; i < len(path); i++ {
		dr := path[i].Row - path[i-1].Row
		dc := path[i].Col - path[i-1].Col
		require.Equal(t, 1, dr*dr+dc*dc, "step %d is not an orthogonal move: %v -> %v", i, path[i-1], path[i])
		require.True(t, m.IsPassable(path[i]))
	}
}

// TestFindWayOut_AdjacentExit verifies the minimal two-cell path when
// the exit is the only move available.
func TestFindWayOut_AdjacentExit(t *testing.T) {
	m := parseMaze(t, "PES")
	path, ok := m.FindWayOut()
	require.True(t, ok)
	require.Equal(t, []maze.Position{{Row: 0, Col: 0}, {Row: 0, Col: 1}}, path)
}

// TestFindWayOut_OpenGrid verifies some valid path exists on an open
// 3×3 grid with start (0,0) and exit (2,2).
func TestFindWayOut_OpenGrid(t *testing.T) {
	m := parseMaze(t,
		"P.S",
		"...",
		"..E",
	)
	path, ok := m.FindWayOut()
	require.True(t, ok)
	require.LessOrEqual(t, len(path), 9)
	requireContiguous(t, m, path)
}

// TestFindWayOut_IsolatedStart verifies walls at (0,1) and (1,0) cut
// the (0,0) start off entirely.
func TestFindWayOut_IsolatedStart(t *testing.T) {
	m := parseMaze(t,
		"P#S",
		"#..",
		"..E",
	)
	path, ok := m.FindWayOut()
	require.False(t, ok)
	require.Nil(t, path)
}

// TestFindWayOut_EnclosedExit verifies an exit boxed in by walls is
// unreachable.
func TestFindWayOut_EnclosedExit(t *testing.T) {
	m := parseMaze(t,
		"P..S#",
		"..###",
		"..#E#",
		"..###",
	)
	_, ok := m.FindWayOut()
	require.False(t, ok)
}

// TestFindWayOut_DeterministicOrder verifies the UP, DOWN, LEFT, RIGHT
// probe order: with UP walled off and exits both below and to the
// right, DOWN wins.
func TestFindWayOut_DeterministicOrder(t *testing.T) {
	m := parseMaze(t,
		"###",
		"P.E",
		"E.S",
	)
	path, ok := m.FindWayOut()
	require.True(t, ok)
	require.Equal(t, []maze.Position{{Row: 1, Col: 0}, {Row: 2, Col: 0}}, path)
}

// TestFindWayOut_RepeatedRuns verifies visited state is reset between
// independent runs, so a second search succeeds identically.
func TestFindWayOut_RepeatedRuns(t *testing.T) {
	m := parseMaze(t,
		"P.S",
		".#.",
		"..E",
	)
	first, ok := m.FindWayOut()
	require.True(t, ok)
	second, ok := m.FindWayOut()
	require.True(t, ok)
	require.Equal(t, first, second)
}

// TestFindWayOut_BacktrackKeepsVisited documents the kept limitation:
// backtracking pops a dead-end cell off the path but leaves it marked
// visited for the rest of the run, so sibling branches never retry it.
func TestFindWayOut_BacktrackKeepsVisited(t *testing.T) {
	m := parseMaze(t,
		"P.E",
		".#S",
	)
	path, ok := m.FindWayOut()
	require.True(t, ok)
	require.Equal(t, []maze.Position{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}, path)

	// (1,0) was explored first (DOWN precedes RIGHT), dead-ended, and
	// was popped from the path, yet its visited mark remains.
	deadEnd, err := m.CellAt(maze.Position{Row: 1, Col: 0})
	require.NoError(t, err)
	require.True(t, deadEnd.Visited, "dead-end cell stays visited after backtrack")

	m.ResetVisited()
	deadEnd, err = m.CellAt(maze.Position{Row: 1, Col: 0})
	require.NoError(t, err)
	require.False(t, deadEnd.Visited)
}
