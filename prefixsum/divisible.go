package prefixsum

// MinSubarray returns the length of the shortest (possibly empty) contiguous
// subarray whose removal leaves a sum divisible by p. Removing the whole array
// is not allowed; -1 is returned when no valid removal exists.
//
// Let need = total mod p. A subarray (j, i] works when
// (prefix[i] - prefix[j]) mod p == need, i.e. prefix[j] ≡ prefix[i] - need.
// Keep the latest index for every prefix remainder.
//
// Complexity: O(n) time, O(min(n, p)) space.
func MinSubarray(nums []int, p int) (int, error) {
	if p <= 0 {
		return 0, ErrInvalidModulus
	}
	need := 0
	for _, x := range nums {
		need = mod(need+x, p)
	}
	if need == 0 {
		return 0, nil
	}

	last := map[int]int{0: -1}
	cur, best := 0, len(nums)
	for i, x := range nums {
		cur = mod(cur+x, p)
		if j, ok := last[mod(cur-need, p)]; ok {
			best = min(best, i-j)
		}
		last[cur] = i
	}
	if best == len(nums) {
		return -1, nil
	}

	return best, nil
}

// MinSubarrayBrute tries every subarray, shortest first.
// Complexity: O(n²) time, O(1) space.
func MinSubarrayBrute(nums []int, p int) (int, error) {
	if p <= 0 {
		return 0, ErrInvalidModulus
	}
	total := 0
	for _, x := range nums {
		total = mod(total+x, p)
	}
	if total == 0 {
		return 0, nil
	}
	n := len(nums)
	for length := 1; length < n; length++ {
		sum := 0
		for i := 0; i < length; i++ {
			sum = mod(sum+nums[i], p)
		}
		for start := 0; ; start++ {
			if sum == total {
				return length, nil
			}
			end := start + length
			if end >= n {
				break
			}
			// slide the window one step right
			sum = mod(sum-nums[start]+nums[end], p)
		}
	}

	return -1, nil
}

// MinSubarrayPrefixArray stores all prefix remainders up front, then runs the
// same remainder lookup as MinSubarray over the array.
// Complexity: O(n) time, O(n) space.
func MinSubarrayPrefixArray(nums []int, p int) (int, error) {
	if p <= 0 {
		return 0, ErrInvalidModulus
	}
	n := len(nums)
	prefix := make([]int, n+1)
	for i, x := range nums {
		prefix[i+1] = mod(prefix[i]+x, p)
	}
	need := prefix[n]
	if need == 0 {
		return 0, nil
	}

	last := make(map[int]int, n+1)
	best := n
	for i := 0; i <= n; i++ {
		if j, ok := last[mod(prefix[i]-need, p)]; ok {
			best = min(best, i-j)
		}
		last[prefix[i]] = i
	}
	if best >= n {
		return -1, nil
	}

	return best, nil
}

// mod returns a mod p in [0, p) for any sign of a.
func mod(a, p int) int {
	r := a % p
	if r < 0 {
		r += p
	}
	return r
}
