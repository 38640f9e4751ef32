// Package hollow defines the selection capability contract and sentinel
// errors for the hollow subpackage of github.com/katalvlaran/hollowmaze.
package hollow

import (
	"errors"

	"github.com/katalvlaran/hollowmaze/treasure"
)

// Sentinel errors for hollow construction.
var (
	// ErrNoTreasures indicates a hollow was constructed from an empty
	// treasure list; every hollow owns at least one treasure.
	ErrNoTreasures = errors.New("hollow: treasure list must be non-empty")
)

// Hollow is the shared capability contract of both selection strategies.
// Implementations are chosen at construction time (NewSpooky or
// NewMystical) and are substitutable anywhere a Hollow is consumed.
type Hollow interface {
	// TakeBestFitting removes and returns the highest-ratio treasure
	// whose weight is ≤ capacity. The second result is false when the
	// hollow is empty or nothing fits; the hollow is then unchanged.
	TakeBestFitting(capacity int) (treasure.Treasure, bool)

	// Len returns the number of treasures currently held.
	Len() int
}
