package array_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlquest/array"
)

// benchInput returns a deterministic slice of n values in [-n, n].
func benchInput(n int) []int {
	r := rand.New(rand.NewSource(42))
	out := make([]int, n)
	for i := range out {
		out[i] = r.Intn(2*n+1) - n
	}
	return out
}

// BenchmarkTwoSum compares hashing against sorting with two pointers.
func BenchmarkTwoSum(b *testing.B) {
	nums := benchInput(10000)
	target := nums[17] + nums[9001]
	b.Run("hash", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = array.TwoSum(nums, target)
		}
	})
	b.Run("twoPointers", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = array.TwoSumTwoPointers(nums, target)
		}
	})
}

// BenchmarkFirstMissingPositive measures the O(n) variants against sorting.
func BenchmarkFirstMissingPositive(b *testing.B) {
	nums := benchInput(100000)
	for name, fn := range map[string]func([]int) int{
		"cyclic":  array.FirstMissingPositive,
		"mark":    array.FirstMissingPositiveMark,
		"set":     array.FirstMissingPositiveSet,
		"sort":    array.FirstMissingPositiveSort,
		"twoPass": array.FirstMissingPositiveTwoPass,
	} {
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = fn(nums)
			}
		})
	}
}
