package stream_test

import (
	"fmt"

	"github.com/katalvlaran/lvlquest/stream"
)

// ExampleNewKthLargest tracks the third largest score.
func ExampleNewKthLargest() {
	kl, _ := stream.NewKthLargest(3, []int{4, 5, 8, 2})
	for _, v := range []int{3, 5, 10, 9, 4} {
		fmt.Print(kl.Add(v), " ")
	}
	fmt.Println()
	// Output:
	// 4 5 5 8 8
}

// ExampleNewStreamChecker reports when the stream ends with a word.
func ExampleNewStreamChecker() {
	c := stream.NewStreamChecker([]string{"cd", "f", "kl"})
	for _, b := range []byte("abcdef") {
		if c.Query(b) {
			fmt.Println("match at", string(b))
		}
	}
	// Output:
	// match at d
	// match at f
}

// ExampleNewSummaryRanges merges values into intervals.
func ExampleNewSummaryRanges() {
	r := stream.NewSummaryRanges()
	for _, v := range []int{1, 3, 7, 2, 6} {
		r.AddNum(v)
	}
	fmt.Println(r.Intervals())
	// Output:
	// [[1 3] [6 7]]
}

// ExampleNewRandomizedSet draws from a single-element set.
func ExampleNewRandomizedSet() {
	s := stream.NewRandomizedSet(0)
	s.Insert(10)
	s.Insert(20)
	s.Remove(10)
	v, err := s.GetRandom()
	fmt.Println(v, err)
	// Output:
	// 20 <nil>
}
