// Package treasure defines the Treasure record ranked by its
// value/weight ratio, plus random generation for stocking hollows.
//
// What:
//
//   - Treasure is an immutable {Value, Weight} pair; Ratio() is the sole
//     ranking key for greedy selection.
//   - Generate produces a non-empty random treasure list from a caller
//     supplied *rand.Rand, so fixtures stay reproducible.
//
// Errors:
//
//   - ErrInvalidTreasure: weight ≤ 0 or value < 0 at construction.
package treasure

import (
	"errors"
	"fmt"
	"math/rand"
)

// Sentinel errors for treasure construction and generation.
var (
	// ErrInvalidTreasure indicates weight ≤ 0 or value < 0.
	ErrInvalidTreasure = errors.New("treasure: weight must be > 0 and value must be >= 0")
)

// Treasure is an immutable record of a single treasure. Construct via
// New to keep the weight > 0, value ≥ 0 contract.
type Treasure struct {
	// Value is the worth of the treasure, ≥ 0.
	Value int
	// Weight is the carry cost of the treasure, > 0.
	Weight int
}

// New validates and returns a Treasure. Returns ErrInvalidTreasure if
// weight ≤ 0 or value < 0.
func New(value, weight int) (Treasure, error) {
	if weight <= 0 || value < 0 {
		return Treasure{}, fmt.Errorf("%w: value=%d weight=%d", ErrInvalidTreasure, value, weight)
	}

	return Treasure{Value: value, Weight: weight}, nil
}

// Ratio returns value/weight, the greedy ranking key. It is computed by
// collections once at restructure time and stored alongside the item,
// never per comparison.
func (t Treasure) Ratio() float64 {
	return float64(t.Value) / float64(t.Weight)
}

// String renders the treasure as "value/weight".
func (t Treasure) String() string {
	return fmt.Sprintf("%d/%d", t.Value, t.Weight)
}

// GenOptions bounds random generation.
type GenOptions struct {
	// MaxValue is the inclusive upper bound for Value (lower bound 0).
	MaxValue int
	// MaxWeight is the inclusive upper bound for Weight (lower bound 1).
	MaxWeight int
}

// DefaultGenOptions returns the generation bounds used when stocking
// hollows: values in [0,30], weights in [1,15].
func DefaultGenOptions() GenOptions {
	return GenOptions{MaxValue: 30, MaxWeight: 15}
}

// Generate returns n random treasures drawn from rng under opts. n ≤ 0
// is clamped to 1: hollows require a non-empty treasure list.
// Complexity: O(n) time and memory.
func Generate(n int, rng *rand.Rand, opts GenOptions) []Treasure {
	if n <= 0 {
		n = 1
	}
	out := make([]Treasure, n)
	for i := range out {
		out[i] = Treasure{
			Value:  rng.Intn(opts.MaxValue + 1),
			Weight: 1 + rng.Intn(opts.MaxWeight),
		}
	}

	return out
}
