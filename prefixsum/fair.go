package prefixsum

// WaysToMakeFair counts indices whose removal makes the sum of even-indexed
// elements equal to the sum of odd-indexed ones.
//
// Removing index i flips the parity of everything after it, so the new even
// sum is evenBefore + oddAfter and the new odd sum is oddBefore + evenAfter.
// Totals minus running sums give the "after" halves in O(1).
//
// Complexity: O(n) time, O(1) space.
func WaysToMakeFair(nums []int) int {
	var evenTotal, oddTotal int
	for i, x := range nums {
		if i%2 == 0 {
			evenTotal += x
		} else {
			oddTotal += x
		}
	}

	var evenBefore, oddBefore, count int
	for i, x := range nums {
		evenAfter, oddAfter := evenTotal-evenBefore, oddTotal-oddBefore
		if i%2 == 0 {
			evenAfter -= x
		} else {
			oddAfter -= x
		}
		if evenBefore+oddAfter == oddBefore+evenAfter {
			count++
		}
		if i%2 == 0 {
			evenBefore += x
		} else {
			oddBefore += x
		}
	}

	return count
}

// WaysToMakeFairBrute removes each index and recomputes both sums.
// Complexity: O(n²) time, O(1) space.
func WaysToMakeFairBrute(nums []int) int {
	count := 0
	for skip := range nums {
		even, odd, pos := 0, 0, 0
		for i, x := range nums {
			if i == skip {
				continue
			}
			if pos%2 == 0 {
				even += x
			} else {
				odd += x
			}
			pos++
		}
		if even == odd {
			count++
		}
	}

	return count
}

// WaysToMakeFairPrefixArrays keeps explicit even/odd prefix arrays, where
// even[i] is the sum of even-indexed elements among nums[:i].
// Complexity: O(n) time, O(n) space.
func WaysToMakeFairPrefixArrays(nums []int) int {
	n := len(nums)
	even := make([]int, n+1)
	odd := make([]int, n+1)
	for i, x := range nums {
		even[i+1], odd[i+1] = even[i], odd[i]
		if i%2 == 0 {
			even[i+1] += x
		} else {
			odd[i+1] += x
		}
	}

	count := 0
	for i := 0; i < n; i++ {
		newEven := even[i] + (odd[n] - odd[i+1])
		newOdd := odd[i] + (even[n] - even[i+1])
		if newEven == newOdd {
			count++
		}
	}

	return count
}
