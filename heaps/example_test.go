package heaps_test

import (
	"fmt"

	"github.com/katalvlaran/lvlquest/heaps"
)

// ExampleLastStoneWeight smashes six stones down to one.
func ExampleLastStoneWeight() {
	fmt.Println(heaps.LastStoneWeight([]int{2, 7, 4, 1, 8, 1}))
	// Output:
	// 1
}

// ExampleKSmallestPairs takes the three cheapest pairs.
func ExampleKSmallestPairs() {
	pairs, err := heaps.KSmallestPairs([]int{1, 7, 11}, []int{2, 4, 6}, 3)
	fmt.Println(pairs, err)
	// Output:
	// [[1 2] [1 4] [1 6]] <nil>
}
