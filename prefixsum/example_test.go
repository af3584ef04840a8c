package prefixsum_test

import (
	"fmt"

	"github.com/katalvlaran/lvlquest/prefixsum"
)

// ExampleMinSubarray removes [4] from [3 1 4 2] so the rest sums to 6.
func ExampleMinSubarray() {
	n, err := prefixsum.MinSubarray([]int{3, 1, 4, 2}, 6)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(n)
	// Output:
	// 1
}

func ExampleLargestAltitude() {
	fmt.Println(prefixsum.LargestAltitude([]int{-5, 1, 5, 0, -7}))
	// Output:
	// 1
}
