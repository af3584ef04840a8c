package prefixsum_test

import (
	"testing"

	"github.com/katalvlaran/lvlquest/prefixsum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLargestAltitude checks all four variants on the canonical samples.
func TestLargestAltitude(t *testing.T) {
	variants := map[string]func([]int) int{
		"running":   prefixsum.LargestAltitude,
		"prefix":    prefixsum.LargestAltitudePrefix,
		"scan":      prefixsum.LargestAltitudeScan,
		"recursive": prefixsum.LargestAltitudeRecursive,
	}
	cases := []struct {
		gain []int
		want int
	}{
		{[]int{-5, 1, 5, 0, -7}, 1},
		{[]int{-4, -3, -2, -1, 4, 3, 2}, 0},
		{[]int{}, 0},
		{[]int{3, 3, -1}, 6},
	}
	for name, fn := range variants {
		for _, tc := range cases {
			assert.Equal(t, tc.want, fn(tc.gain), "%s(%v)", name, tc.gain)
		}
	}
}

// TestMinSubarray verifies the three strategies and the modulus guard.
func TestMinSubarray(t *testing.T) {
	variants := map[string]func([]int, int) (int, error){
		"remainderMap": prefixsum.MinSubarray,
		"brute":        prefixsum.MinSubarrayBrute,
		"prefixArray":  prefixsum.MinSubarrayPrefixArray,
	}
	cases := []struct {
		name string
		nums []int
		p    int
		want int
	}{
		{"sample1", []int{3, 1, 4, 2}, 6, 1},
		{"sample2", []int{6, 3, 5, 2}, 9, 2},
		{"alreadyDivisible", []int{1, 2, 3}, 3, 0},
		{"wholeArrayOnly", []int{1, 2, 3}, 7, -1},
		{"bigValues", []int{1000000000, 1000000000, 1000000000}, 3, 0},
		{"single", []int{4}, 3, -1},
	}
	for name, fn := range variants {
		for _, tc := range cases {
			t.Run(name+"/"+tc.name, func(t *testing.T) {
				got, err := fn(tc.nums, tc.p)
				require.NoError(t, err)
				assert.Equal(t, tc.want, got)
			})
		}
		t.Run(name+"/badModulus", func(t *testing.T) {
			_, err := fn([]int{1}, 0)
			assert.ErrorIs(t, err, prefixsum.ErrInvalidModulus)
		})
	}
}

// TestWaysToMakeFair compares the O(n) solutions against brute force.
func TestWaysToMakeFair(t *testing.T) {
	variants := map[string]func([]int) int{
		"running":      prefixsum.WaysToMakeFair,
		"brute":        prefixsum.WaysToMakeFairBrute,
		"prefixArrays": prefixsum.WaysToMakeFairPrefixArrays,
	}
	cases := []struct {
		nums []int
		want int
	}{
		{[]int{2, 1, 6, 4}, 1},
		{[]int{1, 1, 1}, 3},
		{[]int{1, 2, 3}, 0},
		{[]int{5}, 1},
	}
	for name, fn := range variants {
		for _, tc := range cases {
			assert.Equal(t, tc.want, fn(tc.nums), "%s(%v)", name, tc.nums)
		}
	}
}
