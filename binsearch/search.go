package binsearch

import "slices"

// Search returns the index of target in the ascending slice nums, or -1.
//
// Complexity: O(log n) time, O(1) space.
func Search(nums []int, target int) int {
	lo, hi := 0, len(nums)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		switch {
		case nums[mid] == target:
			return mid
		case nums[mid] < target:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}

	return -1
}

// SearchRecursive halves [lo, hi] recursively.
// Complexity: O(log n) time and stack.
func SearchRecursive(nums []int, target int) int {
	var find func(lo, hi int) int
	find = func(lo, hi int) int {
		if lo > hi {
			return -1
		}
		mid := lo + (hi-lo)/2
		if nums[mid] == target {
			return mid
		}
		if nums[mid] < target {
			return find(mid+1, hi)
		}
		return find(lo, mid-1)
	}

	return find(0, len(nums)-1)
}

// SearchLowerBound finds the first index with nums[i] >= target on the
// half-open range [lo, hi) and checks it afterwards.
func SearchLowerBound(nums []int, target int) int {
	lo, hi := 0, len(nums)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if nums[mid] < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(nums) && nums[lo] == target {
		return lo
	}

	return -1
}

// SearchStdlib delegates to slices.BinarySearch.
func SearchStdlib(nums []int, target int) int {
	if i, ok := slices.BinarySearch(nums, target); ok {
		return i
	}

	return -1
}

// SearchLinear scans left to right. Reference only.
// Complexity: O(n).
func SearchLinear(nums []int, target int) int {
	for i, v := range nums {
		if v == target {
			return i
		}
	}

	return -1
}
