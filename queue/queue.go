package queue

// Queue is a FIFO queue.
type Queue[T any] interface {
	// Push appends v at the back.
	Push(v T)
	// Pop removes and returns the front element.
	Pop() (T, error)
	// Peek returns the front element without removing it.
	Peek() (T, error)
	// Empty reports whether the queue holds no elements.
	Empty() bool
	// Len returns the number of elements.
	Len() int
}

// lifo is the only container the queues below build on: push, pop and top
// at one end.
type lifo[T any] []T

func (s *lifo[T]) push(v T) { *s = append(*s, v) }

func (s *lifo[T]) pop() T {
	old := *s
	v := old[len(old)-1]
	var zero T
	old[len(old)-1] = zero
	*s = old[:len(old)-1]
	return v
}

func (s lifo[T]) top() T { return s[len(s)-1] }

func (s lifo[T]) size() int { return len(s) }

// twoStackQueue pushes onto in and pops from out, refilling out from in only
// when it runs dry.
type twoStackQueue[T any] struct {
	in, out lifo[T]
}

// NewQueue returns a queue on two stacks with amortised O(1) operations.
func NewQueue[T any]() Queue[T] { return &twoStackQueue[T]{} }

func (q *twoStackQueue[T]) Push(v T) { q.in.push(v) }

func (q *twoStackQueue[T]) shift() {
	if q.out.size() > 0 {
		return
	}
	for q.in.size() > 0 {
		q.out.push(q.in.pop())
	}
}

func (q *twoStackQueue[T]) Pop() (T, error) {
	q.shift()
	if q.out.size() == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}
	return q.out.pop(), nil
}

func (q *twoStackQueue[T]) Peek() (T, error) {
	q.shift()
	if q.out.size() == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}
	return q.out.top(), nil
}

func (q *twoStackQueue[T]) Empty() bool { return q.Len() == 0 }

func (q *twoStackQueue[T]) Len() int { return q.in.size() + q.out.size() }

// pushHeavyQueue keeps main ordered with the front on top, rebuilding it
// through aux on every push.
type pushHeavyQueue[T any] struct {
	main, aux lifo[T]
}

// NewPushHeavyQueue returns a queue whose Push is O(n) and Pop/Peek O(1).
func NewPushHeavyQueue[T any]() Queue[T] { return &pushHeavyQueue[T]{} }

func (q *pushHeavyQueue[T]) Push(v T) {
	for q.main.size() > 0 {
		q.aux.push(q.main.pop())
	}
	q.main.push(v)
	for q.aux.size() > 0 {
		q.main.push(q.aux.pop())
	}
}

func (q *pushHeavyQueue[T]) Pop() (T, error) {
	if q.main.size() == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}
	return q.main.pop(), nil
}

func (q *pushHeavyQueue[T]) Peek() (T, error) {
	if q.main.size() == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}
	return q.main.top(), nil
}

func (q *pushHeavyQueue[T]) Empty() bool { return q.main.size() == 0 }

func (q *pushHeavyQueue[T]) Len() int { return q.main.size() }

// recursiveQueue uses a single stack; the call stack stands in for the
// auxiliary one when pushing to the bottom.
type recursiveQueue[T any] struct {
	st lifo[T]
}

// NewRecursiveQueue returns a single-stack queue that pushes by recursion.
func NewRecursiveQueue[T any]() Queue[T] { return &recursiveQueue[T]{} }

func (q *recursiveQueue[T]) Push(v T) {
	if q.st.size() == 0 {
		q.st.push(v)
		return
	}
	held := q.st.pop()
	q.Push(v)
	q.st.push(held)
}

func (q *recursiveQueue[T]) Pop() (T, error) {
	if q.st.size() == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}
	return q.st.pop(), nil
}

func (q *recursiveQueue[T]) Peek() (T, error) {
	if q.st.size() == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}
	return q.st.top(), nil
}

func (q *recursiveQueue[T]) Empty() bool { return q.st.size() == 0 }

func (q *recursiveQueue[T]) Len() int { return q.st.size() }

// frontCachedQueue is the two-stack queue plus a copy of the oldest element
// in in, so Peek never has to move elements.
type frontCachedQueue[T any] struct {
	in, out lifo[T]
	front   T
}

// NewFrontCachedQueue returns a two-stack queue with O(1) Peek.
func NewFrontCachedQueue[T any]() Queue[T] { return &frontCachedQueue[T]{} }

func (q *frontCachedQueue[T]) Push(v T) {
	if q.in.size() == 0 {
		q.front = v
	}
	q.in.push(v)
}

func (q *frontCachedQueue[T]) Pop() (T, error) {
	if q.out.size() == 0 {
		if q.in.size() == 0 {
			var zero T
			return zero, ErrEmptyQueue
		}
		for q.in.size() > 0 {
			q.out.push(q.in.pop())
		}
	}
	return q.out.pop(), nil
}

func (q *frontCachedQueue[T]) Peek() (T, error) {
	if q.out.size() > 0 {
		return q.out.top(), nil
	}
	if q.in.size() == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}
	return q.front, nil
}

func (q *frontCachedQueue[T]) Empty() bool { return q.Len() == 0 }

func (q *frontCachedQueue[T]) Len() int { return q.in.size() + q.out.size() }
