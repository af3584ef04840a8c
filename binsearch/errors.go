package binsearch

import "errors"

// ErrNotMountain indicates the input is too short to be a mountain array.
var ErrNotMountain = errors.New("binsearch: mountain array needs at least 3 elements")
