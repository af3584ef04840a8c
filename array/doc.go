// Package array collects classic array exercises, each solved several ways so
// the variants can be compared side by side.
//
// 🚀 Problems:
//
//	TwoSum: indices of two values adding up to a target
//	PlusOne: increment a number stored as decimal digits
//	FirstMissingPositive: smallest positive integer absent from a slice
//	PascalTriangle: first n rows of Pascal's triangle
//
// ✨ Conventions:
//   - The unsuffixed function is the recommended variant; suffixed siblings
//     (TwoSumBrute, PlusOneBig, ...) solve the same problem another way.
//   - No function mutates the caller's slice; in-place algorithms work on a copy.
//   - Functions never panic on empty input.
//
// Complexity:
//
//	TwoSum               O(n) time, O(n) space
//	PlusOne              O(n) time, O(1) extra (O(n) on full carry)
//	FirstMissingPositive O(n) time, O(1) extra on the working copy
//	PascalTriangle       O(n²) time, O(n²) output
//
// See example_test.go for runnable snippets.
package array
