package maze

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/katalvlaran/hollowmaze/hollow"
	"github.com/katalvlaran/hollowmaze/treasure"
)

// Text tile set. One character per cell, one row per line.
const (
	runeEmpty    = '.'
	runeWall     = '#'
	runeStart    = 'P'
	runeExit     = 'E'
	runeSpooky   = 'S'
	runeMystical = 'M'
)

// Option configures optional behavior of Parse and LoadFile.
type Option func(*ParseOptions)

// ParseOptions holds configurable parameters for maze parsing.
type ParseOptions struct {
	// Treasures produces the initial unordered treasure list for each
	// hollow tile (one call per 'S', one call for the single shared 'M'
	// collection). It must return a non-empty list of treasures with
	// weight > 0 and value ≥ 0.
	Treasures func() []treasure.Treasure
}

// DefaultParseOptions returns a ParseOptions that stocks every hollow
// with eight random treasures under treasure.DefaultGenOptions.
func DefaultParseOptions() ParseOptions {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	return ParseOptions{
		Treasures: func() []treasure.Treasure {
			return treasure.Generate(defaultTreasureCount, rng, treasure.DefaultGenOptions())
		},
	}
}

// defaultTreasureCount is the stock size per hollow under default options.
const defaultTreasureCount = 8

// WithTreasureSource returns an Option that installs fn as the treasure
// source for hollow tiles. A nil fn has no effect.
func WithTreasureSource(fn func() []treasure.Treasure) Option {
	return func(o *ParseOptions) {
		if fn != nil {
			o.Treasures = fn
		}
	}
}

// Parse builds a maze from its text form. Every maze must have exactly
// one start 'P', at least one exit 'E', at least one hollow ('S' or
// 'M'), and rectangular rows. Every 'M' tile aliases one shared
// mystical collection, so a treasure removed through any of them is
// gone from all of them.
// Complexity: O(n) time over the cell count, plus hollow restructuring.
func Parse(lines []string, opts ...Option) (*Maze, error) {
	// 1. Apply options.
	popts := DefaultParseOptions()
	for _, fn := range opts {
		fn(&popts)
	}

	// 2. Geometry validation.
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	cols := len(lines[0])
	for i, line := range lines {
		if len(line) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrRaggedRows, i, len(line), cols)
		}
	}

	// 3. Scan tiles, collecting geometry and placing hollows. All 'M'
	//    tiles share the one mystical instance built on first sight.
	var (
		start      *Position
		exits      []Position
		walls      []Position
		placements []Placement
		mystical   *hollow.Mystical
	)
	for r, line := range lines {
		for c, ch := range line {
			pos := Position{Row: r, Col: c}
			switch ch {
			case runeEmpty:
				// walkable, nothing to record
			case runeWall:
				walls = append(walls, pos)
			case runeStart:
				if start != nil {
					return nil, fmt.Errorf("%w: %v and %v", ErrMultipleStarts, *start, pos)
				}
				start = &pos
			case runeExit:
				exits = append(exits, pos)
			case runeSpooky:
				s, err := hollow.NewSpooky(popts.Treasures())
				if err != nil {
					return nil, fmt.Errorf("maze: spooky hollow at %v: %w", pos, err)
				}
				placements = append(placements, Placement{Hollow: s, Pos: pos})
			case runeMystical:
				if mystical == nil {
					m, err := hollow.NewMystical(popts.Treasures())
					if err != nil {
						return nil, fmt.Errorf("maze: mystical hollow at %v: %w", pos, err)
					}
					mystical = m
				}
				placements = append(placements, Placement{Hollow: mystical, Pos: pos})
			default:
				return nil, fmt.Errorf("%w: %q at %v", ErrUnknownTile, ch, pos)
			}
		}
	}

	// 4. Content validation: one start, an exit, and some treasure.
	if start == nil {
		return nil, ErrNoStart
	}
	if len(exits) == 0 {
		return nil, ErrNoExit
	}
	if len(placements) == 0 {
		return nil, ErrNoHollow
	}

	return New(*start, exits, walls, placements, len(lines), cols)
}

// LoadFile reads a maze text file and parses it. Trailing carriage
// returns and a trailing blank line are tolerated.
func LoadFile(path string, opts ...Option) (*Maze, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("maze: read %s: %w", path, err)
	}
	text := strings.ReplaceAll(string(raw), "\r\n", "\n")
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")

	return Parse(lines, opts...)
}

// tileRune maps a cell back to its text form; hollow cells render by
// strategy kind.
func tileRune(cell *Cell) rune {
	switch cell.Tile {
	case TileWall:
		return runeWall
	case TileStart:
		return runeStart
	case TileExit:
		return runeExit
	case TileHollow:
		if _, ok := cell.Hollow.(*hollow.Mystical); ok {
			return runeMystical
		}

		return runeSpooky
	default:
		return runeEmpty
	}
}
