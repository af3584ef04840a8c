package sorting_test

import (
	"testing"

	"github.com/katalvlaran/lvlquest/sorting"
	"github.com/stretchr/testify/assert"
)

// TestMinimumAbsDifference runs every variant on shared cases.
func TestMinimumAbsDifference(t *testing.T) {
	variants := map[string]func([]int) [][2]int{
		"twoPass":  sorting.MinimumAbsDifference,
		"onePass":  sorting.MinimumAbsDifferenceOnePass,
		"counting": sorting.MinimumAbsDifferenceCounting,
		"pairs":    sorting.MinimumAbsDifferencePairs,
	}
	cases := []struct {
		name string
		arr  []int
		want [][2]int
	}{
		{"sample1", []int{4, 2, 1, 3}, [][2]int{{1, 2}, {2, 3}, {3, 4}}},
		{"sample2", []int{1, 3, 6, 10, 15}, [][2]int{{1, 3}}},
		{"sample3", []int{3, 8, -10, 23, 19, -4, -14, 27}, [][2]int{{-14, -10}, {19, 23}, {23, 27}}},
		{"single", []int{5}, [][2]int{}},
	}
	for name, fn := range variants {
		for _, tc := range cases {
			t.Run(name+"/"+tc.name, func(t *testing.T) {
				in := append([]int(nil), tc.arr...)
				assert.Equal(t, tc.want, fn(in))
				assert.Equal(t, tc.arr, in, "input must not be reordered")
			})
		}
	}
}

// TestReductionOperations checks the closed forms against the simulation.
func TestReductionOperations(t *testing.T) {
	variants := map[string]func([]int) int{
		"ascending":  sorting.ReductionOperations,
		"descending": sorting.ReductionOperationsDescending,
		"counter":    sorting.ReductionOperationsCounter,
		"simulation": sorting.ReductionOperationsSimulation,
	}
	cases := []struct {
		nums []int
		want int
	}{
		{[]int{5, 1, 3}, 3},
		{[]int{1, 1, 1}, 0},
		{[]int{1, 1, 2, 2, 3}, 4},
		{[]int{}, 0},
	}
	for name, fn := range variants {
		for _, tc := range cases {
			assert.Equal(t, tc.want, fn(tc.nums), "%s(%v)", name, tc.nums)
		}
	}
}

// TestMergeIntervals covers overlap, touching, containment and unsorted input.
func TestMergeIntervals(t *testing.T) {
	variants := map[string]func([]sorting.Interval) []sorting.Interval{
		"sweepSorted": sorting.MergeIntervals,
		"stack":       sorting.MergeIntervalsStack,
		"unionFind":   sorting.MergeIntervalsUnionFind,
		"events":      sorting.MergeIntervalsSweep,
		"inPlace":     sorting.MergeIntervalsInPlace,
	}
	cases := []struct {
		name string
		in   []sorting.Interval
		want []sorting.Interval
	}{
		{"sample1", []sorting.Interval{{1, 3}, {2, 6}, {8, 10}, {15, 18}}, []sorting.Interval{{1, 6}, {8, 10}, {15, 18}}},
		{"touching", []sorting.Interval{{1, 4}, {4, 5}}, []sorting.Interval{{1, 5}}},
		{"unsorted", []sorting.Interval{{4, 7}, {1, 4}}, []sorting.Interval{{1, 7}}},
		{"contained", []sorting.Interval{{1, 10}, {2, 3}, {4, 5}}, []sorting.Interval{{1, 10}}},
		{"points", []sorting.Interval{{2, 2}, {0, 0}}, []sorting.Interval{{0, 0}, {2, 2}}},
		{"empty", nil, []sorting.Interval{}},
	}
	for name, fn := range variants {
		for _, tc := range cases {
			t.Run(name+"/"+tc.name, func(t *testing.T) {
				in := append([]sorting.Interval(nil), tc.in...)
				assert.Equal(t, tc.want, fn(in))
				assert.Equal(t, tc.in, in)
			})
		}
	}
}
