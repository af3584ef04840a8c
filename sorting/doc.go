// Package sorting groups exercises whose key step is ordering the input:
// minimum absolute difference pairs, reduction operations to equalise an
// array, and merging overlapping intervals.
//
// Inputs are never reordered in place; every function sorts its own copy.
//
// Complexity:
//
//	MinimumAbsDifference O(n log n) (O(n + range) for the counting variant)
//	ReductionOperations  O(n log n)
//	MergeIntervals       O(n log n) (O(n² α(n)) for the union-find variant)
package sorting
