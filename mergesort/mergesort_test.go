package mergesort_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/hollowmaze/keyed"
	"github.com/katalvlaran/hollowmaze/mergesort"
)

// TestSort_Basic verifies ordering on small fixed inputs.
func TestSort_Basic(t *testing.T) {
	cases := []struct {
		name string
		in   []int
		want []int
	}{
		{"Empty", nil, nil},
		{"Single", []int{7}, []int{7}},
		{"Reversed", []int{5, 4, 3, 2, 1}, []int{1, 2, 3, 4, 5}},
		{"Sorted", []int{1, 2, 3}, []int{1, 2, 3}},
		{"Duplicates", []int{2, 1, 2, 1}, []int{1, 1, 2, 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := make([]keyed.Entry[int, string], len(tc.in))
			for i, k := range tc.in {
				in[i] = keyed.Entry[int, string]{Key: k}
			}
			got := mergesort.Sort(in)
			if len(got) != len(tc.want) {
				t.Fatalf("Sort len = %d; want %d", len(got), len(tc.want))
			}
			for i, k := range tc.want {
				if got[i].Key != k {
					t.Errorf("Sort[%d].Key = %d; want %d", i, got[i].Key, k)
				}
			}
		})
	}
}

// TestSort_Stable verifies that equal keys keep their input order.
func TestSort_Stable(t *testing.T) {
	in := []keyed.Entry[int, string]{
		{Key: 2, Item: "a"},
		{Key: 1, Item: "b"},
		{Key: 2, Item: "c"},
		{Key: 1, Item: "d"},
		{Key: 2, Item: "e"},
	}
	got := mergesort.Sort(in)
	wantItems := []string{"b", "d", "a", "c", "e"}
	for i, w := range wantItems {
		if got[i].Item != w {
			t.Errorf("Sort[%d].Item = %q; want %q", i, got[i].Item, w)
		}
	}
}

// TestSort_InputUntouched verifies the input slice is never mutated.
func TestSort_InputUntouched(t *testing.T) {
	in := []keyed.Entry[int, string]{{Key: 3}, {Key: 1}, {Key: 2}}
	_ = mergesort.Sort(in)
	wantKeys := []int{3, 1, 2}
	for i, k := range wantKeys {
		if in[i].Key != k {
			t.Errorf("input[%d].Key = %d after Sort; want %d", i, in[i].Key, k)
		}
	}
}

// TestSort_SortedRoundTrip verifies sorting an already-sorted sequence
// returns an identical sequence (stability + idempotence).
func TestSort_SortedRoundTrip(t *testing.T) {
	in := []keyed.Entry[int, int]{}
	for i := 0; i < 64; i++ {
		in = append(in, keyed.Entry[int, int]{Key: i / 3, Item: i})
	}
	got := mergesort.Sort(in)
	for i := range in {
		if got[i] != in[i] {
			t.Fatalf("round-trip mismatch at %d: got %v, want %v", i, got[i], in[i])
		}
	}
}

// TestSort_Random cross-checks against the standard library on random data.
func TestSort_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	in := make([]keyed.Entry[int, int], 500)
	for i := range in {
		in[i] = keyed.Entry[int, int]{Key: rng.Intn(50), Item: i}
	}
	got := mergesort.Sort(in)

	want := make([]keyed.Entry[int, int], len(in))
	copy(want, in)
	sort.SliceStable(want, func(i, j int) bool { return want[i].Key < want[j].Key })

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("mismatch at %d: got %v, want %v", i, got[i], want[i])
		}
	}
}
