package queue_test

import (
	"fmt"

	"github.com/katalvlaran/lvlquest/queue"
)

// ExampleNewQueue pushes three values and drains them in FIFO order.
func ExampleNewQueue() {
	q := queue.NewQueue[int]()
	for i := 1; i <= 3; i++ {
		q.Push(i)
	}
	var out []int
	for !q.Empty() {
		v, _ := q.Pop()
		out = append(out, v)
	}
	fmt.Println(out)
	// Output:
	// [1 2 3]
}

// ExampleTimeRequiredToBuy waits for the third person in line.
func ExampleTimeRequiredToBuy() {
	fmt.Println(queue.TimeRequiredToBuy([]int{2, 3, 2}, 2))
	// Output:
	// 6
}
