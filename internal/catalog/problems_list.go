package catalog

import (
	"errors"

	"github.com/katalvlaran/lvlquest/linkedlist"
	"github.com/katalvlaran/lvlquest/queue"
)

func listFn(fn func(*linkedlist.ListNode) *linkedlist.ListNode, in []int) ([]int, error) {
	return fn(linkedlist.FromSlice(in)).Slice(), nil
}

type lineInput struct {
	Students   []int `yaml:"students"`
	Sandwiches []int `yaml:"sandwiches"`
}

type ticketInput struct {
	Tickets []int `yaml:"tickets"`
	K       int   `yaml:"k"`
}

type queueCtor = func() queue.Queue[int]

// queueScript understands push x, pop, peek, empty and len. An empty queue
// reports its error message as the result.
func queueScript(ctor queueCtor, _ script) (stepper, error) {
	q := ctor()
	orError := func(v int, err error) (any, error) {
		if errors.Is(err, queue.ErrEmptyQueue) {
			return err.Error(), nil
		}
		return v, err
	}

	return func(op string, args []any) (any, error) {
		switch op {
		case "push":
			x, err := intArg(args, 0)
			if err != nil {
				return nil, err
			}
			q.Push(x)
			return nil, nil
		case "pop":
			return orError(q.Pop())
		case "peek":
			return orError(q.Peek())
		case "empty":
			return q.Empty(), nil
		case "len":
			return q.Len(), nil
		}
		return nil, unknownOp(op)
	}, nil
}

func listProblems() []*Problem {
	return []*Problem{
		define("linkedlist", "delete-duplicates", listFn,
			v("iterative", linkedlist.DeleteDuplicates),
			v("recursive", linkedlist.DeleteDuplicatesRecursive),
			v("sentinel", linkedlist.DeleteDuplicatesSentinel),
			v("set", linkedlist.DeleteDuplicatesSet),
		),
		define("linkedlist", "odd-even-list", listFn,
			v("two-chains", linkedlist.OddEvenList),
			v("sentinel", linkedlist.OddEvenListSentinel),
			v("collect", linkedlist.OddEvenListCollect),
			v("split", linkedlist.OddEvenListSplit),
		),
		define("linkedlist", "reverse-list", listFn,
			v("iterative", linkedlist.ReverseList),
			v("recursive", linkedlist.ReverseListRecursive),
			v("stack", linkedlist.ReverseListStack),
			v("tail-recursive", linkedlist.ReverseListTailRecursive),
		),
		define("linkedlist", "copy-random-list",
			func(fn func(*linkedlist.RandomNode) *linkedlist.RandomNode, in [][2]int) ([][2]int, error) {
				return fn(linkedlist.RandomFromPairs(in)).Pairs(), nil
			},
			v("map", linkedlist.CopyRandomList),
			v("recursive", linkedlist.CopyRandomListRecursive),
			v("interweave", linkedlist.CopyRandomListInterweave),
			v("one-pass", linkedlist.CopyRandomListOnePass),
		),

		define("queue", "count-students",
			func(fn func([]int, []int) int, in lineInput) (int, error) {
				return fn(in.Students, in.Sandwiches), nil
			},
			v("counting", queue.CountStudents),
			v("simulation", queue.CountStudentsSimulation),
			v("counter", queue.CountStudentsCounter),
			v("rotation", queue.CountStudentsRotation),
			v("compact", queue.CountStudentsCompact),
		),
		define("queue", "time-required-to-buy",
			func(fn func([]int, int) int, in ticketInput) (int, error) {
				return fn(in.Tickets, in.K), nil
			},
			v("closed-form", queue.TimeRequiredToBuy),
			v("simulation", queue.TimeRequiredToBuySimulation),
			v("loop", queue.TimeRequiredToBuyLoop),
			v("one-pass", queue.TimeRequiredToBuyOnePass),
		),
		defineScript("queue", "queue", queueScript,
			v[queueCtor]("two-stacks", queue.NewQueue[int]),
			v[queueCtor]("push-heavy", queue.NewPushHeavyQueue[int]),
			v[queueCtor]("recursive", queue.NewRecursiveQueue[int]),
			v[queueCtor]("front-cached", queue.NewFrontCachedQueue[int]),
		),
	}
}
