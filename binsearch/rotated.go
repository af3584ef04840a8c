package binsearch

// SearchRotated returns the index of target in nums, an ascending slice of
// distinct values rotated at an unknown pivot, or -1.
//
// At every step one half of [lo, hi] is sorted; check whether target lies in
// that half and discard the other.
//
// Complexity: O(log n) time, O(1) space.
func SearchRotated(nums []int, target int) int {
	lo, hi := 0, len(nums)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		if nums[mid] == target {
			return mid
		}
		if nums[lo] <= nums[mid] {
			if nums[lo] <= target && target < nums[mid] {
				hi = mid - 1
			} else {
				lo = mid + 1
			}
		} else {
			if nums[mid] < target && target <= nums[hi] {
				lo = mid + 1
			} else {
				hi = mid - 1
			}
		}
	}

	return -1
}

// SearchRotatedPivotFirst locates the rotation point (index of the minimum)
// and then runs a plain binary search on the half that can hold target.
func SearchRotatedPivotFirst(nums []int, target int) int {
	n := len(nums)
	if n == 0 {
		return -1
	}
	lo, hi := 0, n-1
	for lo < hi {
		mid := lo + (hi-lo)/2
		if nums[mid] > nums[hi] {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	pivot := lo

	if target >= nums[pivot] && target <= nums[n-1] {
		if i := Search(nums[pivot:], target); i >= 0 {
			return pivot + i
		}
		return -1
	}

	return Search(nums[:pivot], target)
}

// SearchRotatedLinear is the O(n) reference.
func SearchRotatedLinear(nums []int, target int) int {
	return SearchLinear(nums, target)
}
