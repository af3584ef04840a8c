package sorting

import (
	"cmp"
	"slices"
)

// Interval is a closed range [Start, End] encoded as a two-element array.
type Interval = [2]int

// MergeIntervals merges all overlapping closed intervals and returns the
// result sorted by start. Touching intervals ([1,4] and [4,5]) merge.
//
// Sort by start, then extend the last merged interval while the next one
// starts inside it.
//
// Complexity: O(n log n) time, O(n) space.
func MergeIntervals(intervals []Interval) []Interval {
	s := sortedCopy(intervals)
	out := make([]Interval, 0, len(s))
	for _, iv := range s {
		if n := len(out); n > 0 && iv[0] <= out[n-1][1] {
			out[n-1][1] = max(out[n-1][1], iv[1])
			continue
		}
		out = append(out, iv)
	}

	return out
}

// MergeIntervalsStack pushes intervals on a stack and pops to merge.
func MergeIntervalsStack(intervals []Interval) []Interval {
	s := sortedCopy(intervals)
	stack := make([]Interval, 0, len(s))
	for _, iv := range s {
		if len(stack) == 0 {
			stack = append(stack, iv)
			continue
		}
		top := stack[len(stack)-1]
		if iv[0] <= top[1] {
			stack = stack[:len(stack)-1]
			stack = append(stack, Interval{top[0], max(top[1], iv[1])})
		} else {
			stack = append(stack, iv)
		}
	}

	return stack
}

// MergeIntervalsUnionFind unions every overlapping pair, then folds each
// component into its bounding interval. Quadratic, but needs no sort until
// the final ordering of components.
// Complexity: O(n² α(n)) time, O(n) space.
func MergeIntervalsUnionFind(intervals []Interval) []Interval {
	n := len(intervals)
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(x int) int
	find = func(x int) int {
		if parent[x] != x {
			parent[x] = find(parent[x])
		}
		return parent[x]
	}
	union := func(x, y int) {
		if rx, ry := find(x), find(y); rx != ry {
			parent[rx] = ry
		}
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a, b := intervals[i], intervals[j]
			if a[0] <= b[1] && b[0] <= a[1] {
				union(i, j)
			}
		}
	}

	merged := make(map[int]Interval, n)
	for i, iv := range intervals {
		r := find(i)
		if cur, ok := merged[r]; ok {
			merged[r] = Interval{min(cur[0], iv[0]), max(cur[1], iv[1])}
		} else {
			merged[r] = iv
		}
	}
	out := make([]Interval, 0, len(merged))
	for _, iv := range merged {
		out = append(out, iv)
	}
	slices.SortFunc(out, compareIntervals)

	return out
}

// MergeIntervalsSweep turns intervals into +1/-1 events and emits a range
// each time the open count returns to zero. Starts sort before ends at equal
// coordinates so touching intervals merge.
func MergeIntervalsSweep(intervals []Interval) []Interval {
	type event struct {
		at    int
		delta int // +1 start, -1 end
	}
	events := make([]event, 0, 2*len(intervals))
	for _, iv := range intervals {
		events = append(events, event{iv[0], +1}, event{iv[1], -1})
	}
	slices.SortFunc(events, func(a, b event) int {
		if c := cmp.Compare(a.at, b.at); c != 0 {
			return c
		}
		return cmp.Compare(b.delta, a.delta)
	})

	out := make([]Interval, 0)
	open, start := 0, 0
	for _, e := range events {
		if open == 0 {
			start = e.at
		}
		open += e.delta
		if open == 0 {
			out = append(out, Interval{start, e.at})
		}
	}

	return out
}

// MergeIntervalsInPlace compacts a sorted working copy with a write index.
// Complexity: O(n log n) time, O(1) extra beyond the copy.
func MergeIntervalsInPlace(intervals []Interval) []Interval {
	s := sortedCopy(intervals)
	if len(s) == 0 {
		return s
	}
	w := 0
	for r := 1; r < len(s); r++ {
		if s[r][0] <= s[w][1] {
			s[w][1] = max(s[w][1], s[r][1])
		} else {
			w++
			s[w] = s[r]
		}
	}

	return s[:w+1]
}

// sortedCopy clones intervals and sorts by start, then end.
func sortedCopy(intervals []Interval) []Interval {
	s := slices.Clone(intervals)
	if s == nil {
		s = []Interval{}
	}
	slices.SortFunc(s, compareIntervals)
	return s
}

func compareIntervals(a, b Interval) int {
	if c := cmp.Compare(a[0], b[0]); c != 0 {
		return c
	}
	return cmp.Compare(a[1], b[1])
}
