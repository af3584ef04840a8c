package array

import "sort"

// TwoSum returns the indices [i, j] (i < j) of the two elements of nums that
// add up to target, or nil when no such pair exists.
//
// One pass with a value→index map: for each x, look up target-x among the
// values already seen.
//
// Complexity: O(n) time, O(n) space.
func TwoSum(nums []int, target int) []int {
	seen := make(map[int]int, len(nums))
	for i, x := range nums {
		if j, ok := seen[target-x]; ok {
			return []int{j, i}
		}
		seen[x] = i
	}

	return nil
}

// TwoSumBrute checks every pair.
// Complexity: O(n²) time, O(1) space.
func TwoSumBrute(nums []int, target int) []int {
	for i := 0; i < len(nums); i++ {
		for j := i + 1; j < len(nums); j++ {
			if nums[i]+nums[j] == target {
				return []int{i, j}
			}
		}
	}

	return nil
}

// TwoSumTwoPointers sorts an index permutation by value and closes in from
// both ends. Original indices are returned in ascending order.
// Complexity: O(n log n) time, O(n) space.
func TwoSumTwoPointers(nums []int, target int) []int {
	idx := make([]int, len(nums))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return nums[idx[a]] < nums[idx[b]] })

	lo, hi := 0, len(idx)-1
	for lo < hi {
		sum := nums[idx[lo]] + nums[idx[hi]]
		switch {
		case sum == target:
			i, j := idx[lo], idx[hi]
			if i > j {
				i, j = j, i
			}
			return []int{i, j}
		case sum < target:
			lo++
		default:
			hi--
		}
	}

	return nil
}
