package bst_test

import (
	"fmt"

	"github.com/katalvlaran/hollowmaze/bst"
	"github.com/katalvlaran/hollowmaze/keyed"
)

// ExampleNewBalanced builds a balanced tree from unsorted entries and
// walks it in ascending key order.
func ExampleNewBalanced() {
	tr := bst.NewBalanced([]keyed.Entry[int, string]{
		{Key: 30, Item: "c"},
		{Key: 10, Item: "a"},
		{Key: 20, Item: "b"},
	})

	fmt.Println("height:", tr.Height())
	tr.InOrder(func(k int, item string) bool {
		fmt.Println(k, item)

		return true
	})

	// Output:
	// height: 2
	// 10 a
	// 20 b
	// 30 c
}

// ExampleTree_DeleteWhere removes a specific entry among equal keys.
func ExampleTree_DeleteWhere() {
	tr := bst.New[int, string]()
	tr.Insert(5, "first")
	tr.Insert(5, "second")

	removed, err := tr.DeleteWhere(5, func(item string) bool { return item == "second" })
	fmt.Println(removed, err, tr.Len())

	// Output:
	// second <nil> 1
}
