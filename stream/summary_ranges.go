package stream

import (
	"slices"
	"sort"
)

// SummaryRanges summarises a stream of non-negative integers as sorted,
// disjoint, non-adjacent closed intervals.
type SummaryRanges interface {
	AddNum(value int)
	// Intervals returns a fresh slice; callers may modify it.
	Intervals() [][2]int
}

type sortedRanges struct {
	iv [][2]int
}

// NewSummaryRanges keeps the intervals sorted and places each value by
// binary search. AddNum is O(n) in the number of intervals, Intervals O(n).
func NewSummaryRanges() SummaryRanges {
	return &sortedRanges{}
}

func (r *sortedRanges) AddNum(value int) {
	// i is the first interval starting after value.
	i := sort.Search(len(r.iv), func(j int) bool { return r.iv[j][0] > value })
	if i > 0 && r.iv[i-1][1] >= value {
		return
	}
	joinLeft := i > 0 && r.iv[i-1][1] == value-1
	joinRight := i < len(r.iv) && r.iv[i][0] == value+1
	switch {
	case joinLeft && joinRight:
		r.iv[i-1][1] = r.iv[i][1]
		r.iv = slices.Delete(r.iv, i, i+1)
	case joinLeft:
		r.iv[i-1][1] = value
	case joinRight:
		r.iv[i][0] = value
	default:
		r.iv = slices.Insert(r.iv, i, [2]int{value, value})
	}
}

func (r *sortedRanges) Intervals() [][2]int {
	return slices.Clone(r.iv)
}

type setRanges struct {
	seen map[int]struct{}
}

// NewSetSummaryRanges records values in a set and builds the intervals on
// demand. AddNum is O(1), Intervals O(n log n).
func NewSetSummaryRanges() SummaryRanges {
	return &setRanges{seen: make(map[int]struct{})}
}

func (r *setRanges) AddNum(value int) {
	r.seen[value] = struct{}{}
}

func (r *setRanges) Intervals() [][2]int {
	vals := make([]int, 0, len(r.seen))
	for v := range r.seen {
		vals = append(vals, v)
	}
	slices.Sort(vals)

	return collapse(vals)
}

// collapse turns ascending distinct values into maximal runs.
func collapse(vals []int) [][2]int {
	out := [][2]int{}
	for _, v := range vals {
		if n := len(out); n > 0 && out[n-1][1] == v-1 {
			out[n-1][1] = v
			continue
		}
		out = append(out, [2]int{v, v})
	}
	return out
}

type unionFindRanges struct {
	parent map[int]int
	end    map[int]int // root -> last value of its run
}

// NewUnionFindSummaryRanges joins neighbouring values with a disjoint-set
// forest whose roots are run starts. AddNum is near O(1), Intervals
// O(r log r) for r runs.
func NewUnionFindSummaryRanges() SummaryRanges {
	return &unionFindRanges{parent: make(map[int]int), end: make(map[int]int)}
}

func (r *unionFindRanges) find(x int) int {
	root := x
	for r.parent[root] != root {
		root = r.parent[root]
	}
	for r.parent[x] != root {
		r.parent[x], x = root, r.parent[x]
	}
	return root
}

func (r *unionFindRanges) AddNum(value int) {
	if _, ok := r.parent[value]; ok {
		return
	}
	r.parent[value] = value
	r.end[value] = value
	if _, ok := r.parent[value+1]; ok {
		right := r.find(value + 1)
		r.parent[right] = value
		r.end[value] = r.end[right]
		delete(r.end, right)
	}
	if _, ok := r.parent[value-1]; ok {
		left := r.find(value - 1)
		r.parent[value] = left
		r.end[left] = r.end[value]
		delete(r.end, value)
	}
}

func (r *unionFindRanges) Intervals() [][2]int {
	out := make([][2]int, 0, len(r.end))
	for start, last := range r.end {
		out = append(out, [2]int{start, last})
	}
	slices.SortFunc(out, func(a, b [2]int) int { return a[0] - b[0] })

	return out
}

// BitmapLimit is the largest value NewBitmapSummaryRanges records.
const BitmapLimit = 10_000

type bitmapRanges struct {
	bits [BitmapLimit + 1]bool
}

// NewBitmapSummaryRanges marks values in a fixed table covering
// 0..BitmapLimit; values outside it are dropped. AddNum is O(1), Intervals
// O(BitmapLimit).
func NewBitmapSummaryRanges() SummaryRanges {
	return &bitmapRanges{}
}

func (r *bitmapRanges) AddNum(value int) {
	if value < 0 || value > BitmapLimit {
		return
	}
	r.bits[value] = true
}

func (r *bitmapRanges) Intervals() [][2]int {
	out := [][2]int{}
	for v := 0; v <= BitmapLimit; v++ {
		if !r.bits[v] {
			continue
		}
		start := v
		for v < BitmapLimit && r.bits[v+1] {
			v++
		}
		out = append(out, [2]int{start, v})
	}
	return out
}
