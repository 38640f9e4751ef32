package bst_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/hollowmaze/bst"
	"github.com/katalvlaran/hollowmaze/keyed"
)

// BenchmarkNewBalanced_10k measures sort+midpoint construction from
// 10,000 random keys. Each build is O(n log n).
func BenchmarkNewBalanced_10k(b *testing.B) {
	rng := rand.New(rand.NewSource(7))
	in := make([]keyed.Entry[int, int], 10_000)
	for i := range in {
		in[i] = keyed.Entry[int, int]{Key: rng.Int(), Item: i}
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = bst.NewBalanced(in)
	}
}

// BenchmarkInOrder_10k measures a full in-order walk of a balanced tree.
func BenchmarkInOrder_10k(b *testing.B) {
	in := make([]keyed.Entry[int, int], 10_000)
	for i := range in {
		in[i] = keyed.Entry[int, int]{Key: i, Item: i}
	}
	tr := bst.NewBalanced(in)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		count := 0
		tr.InOrder(func(int, int) bool {
			count++

			return true
		})
	}
}
