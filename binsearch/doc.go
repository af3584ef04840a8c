// Package binsearch implements binary-search exercises: classic search in a
// sorted slice, peak of a mountain array, sum of two squares and search in a
// rotated sorted slice.
//
// Each exercise carries a linear or brute-force variant used as a reference
// in tests and benchmarks.
//
// Errors:
//   - ErrNotMountain: PeakIndexInMountain received fewer than three values.
package binsearch
