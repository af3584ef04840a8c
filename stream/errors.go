package stream

import "errors"

var (
	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = errors.New("stream: k must be positive")

	// ErrEmptySet is returned by GetRandom on an empty set.
	ErrEmptySet = errors.New("stream: set is empty")
)
