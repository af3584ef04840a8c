package sorting

import (
	"slices"
)

// ReductionOperations returns how many operations make all elements equal,
// where one operation lowers one occurrence of the current largest value to
// the next smaller distinct value.
//
// In ascending order, an element sitting above k distinct smaller levels
// needs exactly k operations; accumulate the level index while scanning.
//
// Complexity: O(n log n) time, O(n) space.
func ReductionOperations(nums []int) int {
	s := slices.Clone(nums)
	slices.Sort(s)
	ops, level := 0, 0
	for i := 1; i < len(s); i++ {
		if s[i] != s[i-1] {
			level++
		}
		ops += level
	}

	return ops
}

// ReductionOperationsDescending sorts descending: each time the value drops,
// every element seen so far has to take one more step down.
func ReductionOperationsDescending(nums []int) int {
	s := slices.Clone(nums)
	slices.Sort(s)
	slices.Reverse(s)
	ops := 0
	for i := 1; i < len(s); i++ {
		if s[i] != s[i-1] {
			ops += i
		}
	}

	return ops
}

// ReductionOperationsCounter counts values, then walks distinct values from
// the smallest: the k-th distinct level (0-based) contributes k·count.
// Complexity: O(n + d log d) with d distinct values.
func ReductionOperationsCounter(nums []int) int {
	freq := make(map[int]int, len(nums))
	for _, v := range nums {
		freq[v]++
	}
	keys := make([]int, 0, len(freq))
	for k := range freq {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	ops := 0
	for level, k := range keys {
		ops += level * freq[k]
	}

	return ops
}

// ReductionOperationsSimulation literally performs the operations: each round
// lowers every copy of the current maximum to the next distinct value.
// Complexity: O(d·n) time for d distinct values.
func ReductionOperationsSimulation(nums []int) int {
	s := slices.Clone(nums)
	ops := 0
	for len(s) > 0 {
		hi := slices.Max(s)
		next, found := 0, false
		for _, v := range s {
			if v < hi && (!found || v > next) {
				next, found = v, true
			}
		}
		if !found {
			break
		}
		for i, v := range s {
			if v == hi {
				s[i] = next
				ops++
			}
		}
	}

	return ops
}
