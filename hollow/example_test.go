package hollow_test

import (
	"fmt"

	"github.com/katalvlaran/hollowmaze/hollow"
	"github.com/katalvlaran/hollowmaze/treasure"
)

// ExampleSpooky_TakeBestFitting takes the highest-ratio treasure that
// fits the budget; the heavier, better-ratio one stays behind.
func ExampleSpooky_TakeBestFitting() {
	sp, _ := hollow.NewSpooky([]treasure.Treasure{
		{Value: 30, Weight: 10}, // ratio 3, too heavy
		{Value: 8, Weight: 4},   // ratio 2, fits
	})

	got, ok := sp.TakeBestFitting(5)
	fmt.Println(got, ok, sp.Len())

	// Output:
	// 8/4 true 1
}

// ExampleMystical_TakeBestFitting shows restore-on-reject: the maximum
// is extracted, rejected for weight, and reinserted untouched.
func ExampleMystical_TakeBestFitting() {
	my, _ := hollow.NewMystical([]treasure.Treasure{
		{Value: 30, Weight: 10},
		{Value: 8, Weight: 4},
	})

	got, ok := my.TakeBestFitting(5)
	fmt.Println(got, ok, my.Len())

	got, ok = my.TakeBestFitting(20)
	fmt.Println(got, ok, my.Len())

	// Output:
	// 8/4 true 1
	// 30/10 true 0
}
