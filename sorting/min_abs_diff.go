package sorting

import (
	"math"
	"slices"
)

// MinimumAbsDifference returns every pair [a, b] (a < b) of elements of arr
// whose difference equals the minimum absolute difference of any two
// elements, in ascending order. Elements are assumed distinct.
//
// Sort, then two passes over adjacent pairs: one for the minimum, one to
// collect matching pairs.
//
// Complexity: O(n log n) time, O(n) space.
func MinimumAbsDifference(arr []int) [][2]int {
	s := slices.Clone(arr)
	slices.Sort(s)

	best := math.MaxInt
	for i := 1; i < len(s); i++ {
		best = min(best, s[i]-s[i-1])
	}
	out := [][2]int{}
	for i := 1; i < len(s); i++ {
		if s[i]-s[i-1] == best {
			out = append(out, [2]int{s[i-1], s[i]})
		}
	}

	return out
}

// MinimumAbsDifferenceOnePass resets the result whenever a smaller gap shows up.
func MinimumAbsDifferenceOnePass(arr []int) [][2]int {
	s := slices.Clone(arr)
	slices.Sort(s)

	best := math.MaxInt
	out := [][2]int{}
	for i := 1; i < len(s); i++ {
		d := s[i] - s[i-1]
		switch {
		case d < best:
			best = d
			out = append(out[:0], [2]int{s[i-1], s[i]})
		case d == best:
			out = append(out, [2]int{s[i-1], s[i]})
		}
	}

	return out
}

// MinimumAbsDifferenceCounting replaces the comparison sort by a presence
// table over [min, max]. Attractive when the value range is small.
// Complexity: O(n + R) time and space, R = max-min+1.
func MinimumAbsDifferenceCounting(arr []int) [][2]int {
	out := [][2]int{}
	if len(arr) < 2 {
		return out
	}
	lo, hi := slices.Min(arr), slices.Max(arr)
	present := make([]bool, hi-lo+1)
	for _, v := range arr {
		present[v-lo] = true
	}

	best := math.MaxInt
	prev := -1
	for i, ok := range present {
		if !ok {
			continue
		}
		if prev >= 0 {
			d := i - prev
			switch {
			case d < best:
				best = d
				out = append(out[:0], [2]int{prev + lo, i + lo})
			case d == best:
				out = append(out, [2]int{prev + lo, i + lo})
			}
		}
		prev = i
	}

	return out
}

// MinimumAbsDifferencePairs materialises all adjacent pairs with their gap,
// then filters by the minimum gap.
func MinimumAbsDifferencePairs(arr []int) [][2]int {
	s := slices.Clone(arr)
	slices.Sort(s)

	type pair struct {
		gap  int
		a, b int
	}
	pairs := make([]pair, 0, max(len(s)-1, 0))
	for i := 1; i < len(s); i++ {
		pairs = append(pairs, pair{s[i] - s[i-1], s[i-1], s[i]})
	}
	out := [][2]int{}
	if len(pairs) == 0 {
		return out
	}
	best := slices.MinFunc(pairs, func(x, y pair) int { return x.gap - y.gap }).gap
	for _, p := range pairs {
		if p.gap == best {
			out = append(out, [2]int{p.a, p.b})
		}
	}

	return out
}
