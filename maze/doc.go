// Package maze models a 2-D cell grid with typed tiles, depth-first path
// discovery, and a path-order treasure walk.
//
// What:
//
//   - Maze wraps a rectangular grid of Cells; tiles are a tagged variant
//     {Empty, Wall, Start, Exit, Hollow}.
//   - FindWayOut runs a depth-first search from the start cell, probing
//     neighbors in the fixed order UP, DOWN, LEFT, RIGHT, marking cells
//     visited before recursing and popping the path on backtrack.
//   - CollectTreasures walks a discovered path in order, asking each
//     hollow for its best-fitting treasure under the shrinking capacity.
//   - Parse / LoadFile build a maze from the text format ('.', '#', 'P',
//     'E', 'S', 'M'); every 'M' aliases one shared mystical collection.
//
// Why:
//
//   - The grid shape is immutable after construction; only each cell's
//     Visited flag and the hollows' contents mutate, which keeps repeated
//     searches cheap (ResetVisited between runs).
//
// Known quirk (kept deliberately): backtracking removes a cell from the
// path but leaves it marked visited, so a cell rejected down one branch
// is never retried via a different route in the same run. Each cell is
// explored from the first direction that reaches it only — linear time,
// at the cost of never backtracking through a shared cell twice.
// Fixtures depend on this exact behavior.
//
// Complexity:
//
//   - FindWayOut:       O(n) time, n = cell count (each cell visited at
//     most once, 4-way neighbor scan per visit); best O(path length).
//   - CollectTreasures: O(p · take) with p = path length.
//   - Parse / String:   O(n).
//
// Errors:
//
//   - ErrEmptyGrid, ErrOutOfBounds: malformed geometry at construction.
//   - ErrRaggedRows, ErrNoStart, ErrMultipleStarts, ErrNoExit,
//     ErrNoHollow, ErrUnknownTile: text-format validation.
//   - "No path to exit" and "no treasure collected" are normal outcomes,
//     reported as absent results, never as errors.
package maze
