// Package maze defines core types, options, and sentinel errors for the
// maze subpackage of github.com/katalvlaran/hollowmaze.
package maze

import (
	"errors"

	"github.com/katalvlaran/hollowmaze/hollow"
)

// Sentinel errors for maze construction and parsing.
var (
	// ErrEmptyGrid indicates the maze must have at least one row and one column.
	ErrEmptyGrid = errors.New("maze: grid must have at least one row and one column")
	// ErrOutOfBounds indicates a supplied position lies outside the grid.
	ErrOutOfBounds = errors.New("maze: position out of bounds")
	// ErrNilHollow indicates a hollow placement carried a nil strategy.
	ErrNilHollow = errors.New("maze: hollow placement must carry a non-nil hollow")
	// ErrRaggedRows indicates text rows of differing lengths.
	ErrRaggedRows = errors.New("maze: all rows must have the same number of columns")
	// ErrNoStart indicates the text grid has no start tile 'P'.
	ErrNoStart = errors.New("maze: missing start position")
	// ErrMultipleStarts indicates the text grid has more than one 'P'.
	ErrMultipleStarts = errors.New("maze: multiple start positions")
	// ErrNoExit indicates the text grid has no exit tile 'E'.
	ErrNoExit = errors.New("maze: missing exit position")
	// ErrNoHollow indicates the text grid has no hollow tile ('S' or 'M').
	ErrNoHollow = errors.New("maze: no treasure hollows found")
	// ErrUnknownTile indicates the text grid contains an unrecognized character.
	ErrUnknownTile = errors.New("maze: unknown tile")
)

// Position is an integer (row, col) grid coordinate. Equality is
// structural, so Positions are directly comparable.
type Position struct {
	Row, Col int
}

// Tile is the tagged variant of cell contents.
type Tile uint8

const (
	// TileEmpty is a walkable cell with nothing in it.
	TileEmpty Tile = iota
	// TileWall blocks movement.
	TileWall
	// TileStart is the single search entry point.
	TileStart
	// TileExit terminates a successful search.
	TileExit
	// TileHollow is a walkable cell holding a treasure hollow; the
	// strategy reference lives in Cell.Hollow.
	TileHollow
)

// Cell is a single grid cell. The grid shape is immutable once built;
// only Tile contents chosen at construction, the hollow's inner
// collection, and the Visited flag ever change.
type Cell struct {
	// Tile tags what occupies the cell.
	Tile Tile
	// Hollow is the selection strategy at this cell; non-nil iff
	// Tile == TileHollow. Several cells may alias one shared instance.
	Hollow hollow.Hollow
	// Pos is the cell's own coordinate.
	Pos Position
	// Visited is mutated only during path search and reset between
	// independent runs.
	Visited bool
}

// Placement pairs a hollow strategy with its grid position. Passing the
// same Hollow in several placements aliases one shared collection.
type Placement struct {
	Hollow hollow.Hollow
	Pos    Position
}

// directionOffsets is the fixed, deterministic neighbor probe order:
// UP, DOWN, LEFT, RIGHT.
var directionOffsets = [4]Position{
	{Row: -1, Col: 0}, // up
	{Row: 1, Col: 0},  // down
	{Row: 0, Col: -1}, // left
	{Row: 0, Col: 1},  // right
}
