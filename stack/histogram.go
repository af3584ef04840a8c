package stack

// LargestRectangle returns the area of the largest rectangle that fits under
// the histogram heights (bars of width 1).
//
// One pass over the bars plus a zero-height sentinel: a bar popped from the
// increasing stack spans from just after the new top to just before i.
//
// Complexity: O(n) time, O(n) space.
func LargestRectangle(heights []int) int {
	best := 0
	st := make([]int, 0, len(heights)+1)
	for i := 0; i <= len(heights); i++ {
		h := 0
		if i < len(heights) {
			h = heights[i]
		}
		for len(st) > 0 && heights[st[len(st)-1]] >= h {
			top := st[len(st)-1]
			st = st[:len(st)-1]
			left := -1
			if len(st) > 0 {
				left = st[len(st)-1]
			}
			best = max(best, heights[top]*(i-left-1))
		}
		st = append(st, i)
	}

	return best
}

// LargestRectangleTwoScan computes the nearest smaller bar on each side with
// two monotonic stack scans, then takes the best width×height.
func LargestRectangleTwoScan(heights []int) int {
	n := len(heights)
	left, right := make([]int, n), make([]int, n)
	var st []int
	for i := 0; i < n; i++ {
		for len(st) > 0 && heights[st[len(st)-1]] >= heights[i] {
			st = st[:len(st)-1]
		}
		left[i] = -1
		if len(st) > 0 {
			left[i] = st[len(st)-1]
		}
		st = append(st, i)
	}
	st = st[:0]
	for i := n - 1; i >= 0; i-- {
		for len(st) > 0 && heights[st[len(st)-1]] >= heights[i] {
			st = st[:len(st)-1]
		}
		right[i] = n
		if len(st) > 0 {
			right[i] = st[len(st)-1]
		}
		st = append(st, i)
	}
	best := 0
	for i, h := range heights {
		best = max(best, h*(right[i]-left[i]-1))
	}

	return best
}

// LargestRectangleBrute fixes every left edge and extends right while
// tracking the running minimum.
// Complexity: O(n²) time, O(1) space.
func LargestRectangleBrute(heights []int) int {
	best := 0
	for i := range heights {
		low := heights[i]
		for j := i; j < len(heights); j++ {
			low = min(low, heights[j])
			best = max(best, low*(j-i+1))
		}
	}

	return best
}

// LargestRectangleExpand grows a rectangle of each bar's height outwards
// until a lower bar blocks it.
// Complexity: O(n²) time, O(1) space.
func LargestRectangleExpand(heights []int) int {
	best := 0
	for i, h := range heights {
		l, r := i, i
		for l > 0 && heights[l-1] >= h {
			l--
		}
		for r < len(heights)-1 && heights[r+1] >= h {
			r++
		}
		best = max(best, h*(r-l+1))
	}

	return best
}

// LargestRectangleBounds finds the lower-bar bounds by hopping along
// previously computed bounds instead of scanning bar by bar.
// Complexity: O(n) amortised time, O(n) space.
func LargestRectangleBounds(heights []int) int {
	n := len(heights)
	if n == 0 {
		return 0
	}
	left, right := make([]int, n), make([]int, n)
	for i := 0; i < n; i++ {
		p := i - 1
		for p >= 0 && heights[p] >= heights[i] {
			p = left[p]
		}
		left[i] = p
	}
	for i := n - 1; i >= 0; i-- {
		p := i + 1
		for p < n && heights[p] >= heights[i] {
			p = right[p]
		}
		right[i] = p
	}
	best := 0
	for i, h := range heights {
		best = max(best, h*(right[i]-left[i]-1))
	}

	return best
}

// LargestRectangleDivideConquer splits at the lowest bar: the best rectangle
// either spans the whole range at that height or lies entirely on one side.
// Complexity: O(n log n) on average, O(n²) for sorted input.
func LargestRectangleDivideConquer(heights []int) int {
	return largestIn(heights, 0, len(heights)-1)
}

func largestIn(heights []int, lo, hi int) int {
	if lo > hi {
		return 0
	}
	m := lo
	for i := lo + 1; i <= hi; i++ {
		if heights[i] < heights[m] {
			m = i
		}
	}
	whole := heights[m] * (hi - lo + 1)

	return max(whole, largestIn(heights, lo, m-1), largestIn(heights, m+1, hi))
}
