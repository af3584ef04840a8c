package queue

import "errors"

// ErrEmptyQueue is returned by Pop and Peek on an empty queue.
var ErrEmptyQueue = errors.New("queue: empty queue")
