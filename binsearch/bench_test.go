package binsearch_test

import (
	"testing"

	"github.com/katalvlaran/lvlquest/binsearch"
)

// BenchmarkSearch contrasts O(log n) variants with the linear reference.
func BenchmarkSearch(b *testing.B) {
	const N = 1 << 16
	nums := make([]int, N)
	for i := range nums {
		nums[i] = 2 * i
	}
	target := nums[N-3]
	for name, fn := range map[string]func([]int, int) int{
		"iterative":  binsearch.Search,
		"lowerBound": binsearch.SearchLowerBound,
		"stdlib":     binsearch.SearchStdlib,
		"linear":     binsearch.SearchLinear,
	} {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = fn(nums, target)
			}
		})
	}
}

// BenchmarkJudgeSquareSum compares two pointers with factorisation.
func BenchmarkJudgeSquareSum(b *testing.B) {
	const c = 999999999
	b.Run("twoPointers", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = binsearch.JudgeSquareSum(c)
		}
	})
	b.Run("fermat", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = binsearch.JudgeSquareSumFermat(c)
		}
	})
}
