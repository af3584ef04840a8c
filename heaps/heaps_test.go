package heaps_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlquest/heaps"
)

// TestLastStoneWeight verifies every variant and that the input survives.
func TestLastStoneWeight(t *testing.T) {
	cases := []struct {
		in   []int
		want int
	}{
		{[]int{2, 7, 4, 1, 8, 1}, 1},
		{[]int{1}, 1},
		{[]int{2, 2}, 0},
		{[]int{}, 0},
		{[]int{10, 4, 2, 10}, 2},
		{[]int{3, 7, 2}, 2},
	}
	for name, fn := range map[string]func([]int) int{
		"Heap":       heaps.LastStoneWeight,
		"Sort":       heaps.LastStoneWeightSort,
		"Insort":     heaps.LastStoneWeightInsort,
		"Simulation": heaps.LastStoneWeightSimulation,
	} {
		for _, tc := range cases {
			in := append([]int{}, tc.in...)
			assert.Equal(t, tc.want, fn(in), "%s(%v)", name, tc.in)
			assert.Equal(t, tc.in, in, "%s must not mutate stones", name)
		}
	}
}

var pairVariants = map[string]func([]int, []int, int) ([][2]int, error){
	"MinHeap": heaps.KSmallestPairs,
	"Brute":   heaps.KSmallestPairsBrute,
	"MaxHeap": heaps.KSmallestPairsMaxHeap,
	"Lazy":    heaps.KSmallestPairsLazy,
}

// TestKSmallestPairs verifies ordering, tie-breaking and short inputs.
func TestKSmallestPairs(t *testing.T) {
	cases := []struct {
		a, b []int
		k    int
		want [][2]int
	}{
		{[]int{1, 7, 11}, []int{2, 4, 6}, 3, [][2]int{{1, 2}, {1, 4}, {1, 6}}},
		{[]int{1, 1, 2}, []int{1, 2, 3}, 2, [][2]int{{1, 1}, {1, 1}}},
		{[]int{1, 2}, []int{3}, 3, [][2]int{{1, 3}, {2, 3}}},
		{[]int{1, 2, 3}, []int{1, 2, 3}, 5, [][2]int{{1, 1}, {1, 2}, {2, 1}, {1, 3}, {2, 2}}},
		{[]int{-5, 0}, []int{-1, 10}, 4, [][2]int{{-5, -1}, {0, -1}, {-5, 10}, {0, 10}}},
		{[]int{1, 2}, []int{}, 2, [][2]int{}},
		{[]int{1, 2}, []int{3}, 0, [][2]int{}},
	}
	for name, fn := range pairVariants {
		for _, tc := range cases {
			got, err := fn(tc.a, tc.b, tc.k)
			require.NoError(t, err, name)
			assert.Equal(t, tc.want, got, "%s(%v, %v, %d)", name, tc.a, tc.b, tc.k)
		}
	}
}

// TestKSmallestPairs_NegativeK verifies the k guard.
func TestKSmallestPairs_NegativeK(t *testing.T) {
	for name, fn := range pairVariants {
		_, err := fn([]int{1}, []int{1}, -1)
		assert.ErrorIs(t, err, heaps.ErrInvalidK, name)
	}
}

// TestIsPossible verifies reachable and unreachable targets.
func TestIsPossible(t *testing.T) {
	cases := []struct {
		in   []int
		want bool
	}{
		{[]int{9, 3, 5}, true},
		{[]int{1, 1, 1, 2}, false},
		{[]int{8, 5}, true},
		{[]int{1}, true},
		{[]int{2}, false},
		{[]int{1, 1}, true},
		{[]int{2, 4}, false},
		{[]int{1, 1000}, true},
		{[]int{5, 50}, false},
		{[]int{0, 1}, false},
		{[]int{}, false},
	}
	for name, fn := range map[string]func([]int) bool{
		"Modulo":   heaps.IsPossible,
		"Subtract": heaps.IsPossibleSubtract,
		"GCD":      heaps.IsPossibleGCD,
	} {
		for _, tc := range cases {
			assert.Equal(t, tc.want, fn(tc.in), "%s(%v)", name, tc.in)
		}
	}
}
