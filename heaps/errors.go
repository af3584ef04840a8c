package heaps

import "errors"

// ErrInvalidK is returned when k is negative.
var ErrInvalidK = errors.New("heaps: k must be non-negative")
