package binsearch_test

import (
	"fmt"

	"github.com/katalvlaran/lvlquest/binsearch"
)

// ExampleSearchRotated finds 0 after the rotation point.
func ExampleSearchRotated() {
	fmt.Println(binsearch.SearchRotated([]int{4, 5, 6, 7, 0, 1, 2}, 0))
	fmt.Println(binsearch.SearchRotated([]int{4, 5, 6, 7, 0, 1, 2}, 3))
	// Output:
	// 4
	// -1
}
