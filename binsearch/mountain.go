package binsearch

// PeakIndexInMountain returns the index of the peak of a mountain array
// (strictly increasing, then strictly decreasing).
//
// If arr[mid] < arr[mid+1] we are on the ascending slope and the peak lies to
// the right; otherwise mid is the peak or on the descending slope.
//
// Complexity: O(log n) time, O(1) space.
func PeakIndexInMountain(arr []int) (int, error) {
	if len(arr) < 3 {
		return 0, ErrNotMountain
	}
	lo, hi := 0, len(arr)-1
	for lo < hi {
		mid := lo + (hi-lo)/2
		if arr[mid] < arr[mid+1] {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	return lo, nil
}

// PeakIndexInMountainLinear returns the first index where the slope turns.
// Complexity: O(n).
func PeakIndexInMountainLinear(arr []int) (int, error) {
	if len(arr) < 3 {
		return 0, ErrNotMountain
	}
	for i := 1; i < len(arr); i++ {
		if arr[i] < arr[i-1] {
			return i - 1, nil
		}
	}

	return len(arr) - 1, nil
}

// PeakIndexInMountainMax returns the position of the maximum.
func PeakIndexInMountainMax(arr []int) (int, error) {
	if len(arr) < 3 {
		return 0, ErrNotMountain
	}
	best := 0
	for i, v := range arr {
		if v > arr[best] {
			best = i
		}
	}

	return best, nil
}

// PeakIndexInMountainGolden narrows a unimodal range with two probes per
// step (ternary search), then finishes the last few cells linearly.
// Complexity: O(log n) time.
func PeakIndexInMountainGolden(arr []int) (int, error) {
	if len(arr) < 3 {
		return 0, ErrNotMountain
	}
	lo, hi := 0, len(arr)-1
	for hi-lo > 2 {
		m1 := lo + (hi-lo)/3
		m2 := hi - (hi-lo)/3
		if arr[m1] < arr[m2] {
			lo = m1 + 1
		} else {
			hi = m2 - 1
		}
	}
	best := lo
	for i := lo + 1; i <= hi; i++ {
		if arr[i] > arr[best] {
			best = i
		}
	}

	return best, nil
}

// PeakIndexInMountainRecursive is the slope test written recursively.
func PeakIndexInMountainRecursive(arr []int) (int, error) {
	if len(arr) < 3 {
		return 0, ErrNotMountain
	}
	var peak func(lo, hi int) int
	peak = func(lo, hi int) int {
		if lo == hi {
			return lo
		}
		mid := lo + (hi-lo)/2
		if arr[mid] < arr[mid+1] {
			return peak(mid+1, hi)
		}
		return peak(lo, mid)
	}

	return peak(0, len(arr)-1), nil
}
