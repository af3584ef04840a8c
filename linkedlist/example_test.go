package linkedlist_test

import (
	"fmt"

	"github.com/katalvlaran/lvlquest/linkedlist"
)

// ExampleOddEvenList regroups odd positions before even ones.
func ExampleOddEvenList() {
	head := linkedlist.FromSlice([]int{1, 2, 3, 4, 5})
	fmt.Println(linkedlist.OddEvenList(head).Slice())
	// Output:
	// [1 3 5 2 4]
}

// ExampleCopyRandomList copies a two-node list whose random pointers both
// target the second node.
func ExampleCopyRandomList() {
	src := linkedlist.RandomFromPairs([][2]int{{1, 1}, {2, 1}})
	fmt.Println(linkedlist.CopyRandomList(src).Pairs())
	// Output:
	// [[1 1] [2 1]]
}
