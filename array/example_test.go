package array_test

import (
	"fmt"

	"github.com/katalvlaran/lvlquest/array"
)

// ExampleTwoSum shows the one-pass hash map solution.
func ExampleTwoSum() {
	fmt.Println(array.TwoSum([]int{2, 7, 11, 15}, 9))
	// Output:
	// [0 1]
}

// ExamplePlusOne demonstrates a full carry growing the slice.
func ExamplePlusOne() {
	fmt.Println(array.PlusOne([]int{9, 9}))
	// Output:
	// [1 0 0]
}

// ExamplePascalTriangle prints the first four rows.
func ExamplePascalTriangle() {
	for _, row := range array.PascalTriangle(4) {
		fmt.Println(row)
	}
	// Output:
	// [1]
	// [1 1]
	// [1 2 1]
	// [1 3 3 1]
}
