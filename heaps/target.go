package heaps

import "container/heap"

// IsPossible reports whether target can be built from an all-ones array of
// the same length, where each step replaces one element with the sum of the
// whole array. Any element below 1 makes it impossible.
//
// Work backwards: the largest element was the last one written, and before
// that it held max - rest. Repeated subtraction collapses to max % rest.
//
// Complexity: O(n + log(max)·log n) time, O(n) space.
func IsPossible(target []int) bool {
	h, total, ok := loadTarget(target)
	if !ok {
		return false
	}
	if len(target) == 1 {
		return target[0] == 1
	}
	for {
		top := heap.Pop(&h).(int)
		if top == 1 {
			return true
		}
		rest := total - top
		if rest == 1 {
			return true
		}
		if rest <= 0 || top <= rest || top%rest == 0 {
			return false
		}
		prev := top % rest
		total = rest + prev
		heap.Push(&h, prev)
	}
}

// IsPossibleSubtract undoes one step at a time.
// Complexity: O(max(target)·log n) time; a reference for small inputs.
func IsPossibleSubtract(target []int) bool {
	h, total, ok := loadTarget(target)
	if !ok {
		return false
	}
	if len(target) == 1 {
		return target[0] == 1
	}
	for {
		top := heap.Pop(&h).(int)
		if top == 1 {
			return true
		}
		rest := total - top
		if rest <= 0 || top <= rest {
			return false
		}
		if rest == 1 {
			return true
		}
		prev := top - rest
		total = rest + prev
		heap.Push(&h, prev)
	}
}

// IsPossibleGCD rejects early when all elements share a factor above 1.
// A step keeps the gcd of the array unchanged, and the all-ones array has
// gcd 1.
func IsPossibleGCD(target []int) bool {
	if len(target) > 1 {
		g := 0
		for _, v := range target {
			g = gcd(g, v)
		}
		if g > 1 {
			return false
		}
	}

	return IsPossible(target)
}

func loadTarget(target []int) (maxIntHeap, int, bool) {
	if len(target) == 0 {
		return nil, 0, false
	}
	h := make(maxIntHeap, len(target))
	total := 0
	for i, v := range target {
		if v < 1 {
			return nil, 0, false
		}
		h[i] = v
		total += v
	}
	heap.Init(&h)

	return h, total, true
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
