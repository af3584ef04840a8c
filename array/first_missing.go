package array

import (
	"slices"
)

// FirstMissingPositive returns the smallest positive integer not present in
// nums.
//
// Cyclic placement on a working copy: every value v in [1..n] is swapped into
// slot v-1; afterwards the first slot i with w[i] != i+1 names the answer.
//
// Complexity: O(n) time (each swap settles one value), O(n) for the copy.
func FirstMissingPositive(nums []int) int {
	w := slices.Clone(nums)
	n := len(w)
	for i := 0; i < n; i++ {
		for w[i] > 0 && w[i] <= n && w[w[i]-1] != w[i] {
			j := w[i] - 1
			w[i], w[j] = w[j], w[i]
		}
	}
	for i := 0; i < n; i++ {
		if w[i] != i+1 {
			return i + 1
		}
	}

	return n + 1
}

// FirstMissingPositiveSet records every value in a set and probes 1, 2, ...
// Complexity: O(n) time, O(n) space.
func FirstMissingPositiveSet(nums []int) int {
	set := make(map[int]struct{}, len(nums))
	for _, v := range nums {
		set[v] = struct{}{}
	}
	for k := 1; ; k++ {
		if _, ok := set[k]; !ok {
			return k
		}
	}
}

// FirstMissingPositiveMark uses the sign of w[v-1] as a "v seen" bit.
// Non-positive and too-large values are first replaced by n+1 so that every
// remaining sign is free for marking.
func FirstMissingPositiveMark(nums []int) int {
	w := slices.Clone(nums)
	n := len(w)
	for i, v := range w {
		if v <= 0 || v > n {
			w[i] = n + 1
		}
	}
	for _, v := range w {
		a := abs(v)
		if a <= n && w[a-1] > 0 {
			w[a-1] = -w[a-1]
		}
	}
	for i, v := range w {
		if v > 0 {
			return i + 1
		}
	}

	return n + 1
}

// FirstMissingPositiveSort sorts a copy and walks the positives.
// Does not meet the O(n) bound but is easy to verify.
// Complexity: O(n log n) time, O(n) space.
func FirstMissingPositiveSort(nums []int) int {
	w := slices.Clone(nums)
	slices.Sort(w)
	want := 1
	for _, v := range w {
		if v == want {
			want++
		} else if v > want {
			break
		}
	}

	return want
}

// FirstMissingPositiveTwoPass first folds out-of-range values to zero, then
// encodes presence by adding n+1 to the target slot, so a slot >= n+1 means
// "seen" and the original value is recoverable with mod n+1.
func FirstMissingPositiveTwoPass(nums []int) int {
	w := slices.Clone(nums)
	n := len(w)
	m := n + 1
	for i, v := range w {
		if v <= 0 || v > n {
			w[i] = 0
		}
	}
	for _, v := range w {
		orig := v % m
		if orig > 0 {
			w[orig-1] += m
		}
	}
	for i, v := range w {
		if v < m {
			return i + 1
		}
	}

	return n + 1
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
