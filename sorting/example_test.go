package sorting_test

import (
	"fmt"

	"github.com/katalvlaran/lvlquest/sorting"
)

// ExampleMergeIntervals merges the LeetCode sample.
func ExampleMergeIntervals() {
	in := []sorting.Interval{{1, 3}, {2, 6}, {8, 10}, {15, 18}}
	fmt.Println(sorting.MergeIntervals(in))
	// Output:
	// [[1 6] [8 10] [15 18]]
}
