package stack

import "slices"

// FinalPrices applies to each item the discount prices[j] of the first
// later item j with prices[j] <= prices[i].
//
// Indexes awaiting a discount sit on a stack with non-decreasing prices;
// each new price settles every waiting index whose price is >= it.
//
// Complexity: O(n) time, O(n) space.
func FinalPrices(prices []int) []int {
	res := slices.Clone(prices)
	if res == nil {
		res = []int{}
	}
	var st []int
	for j, p := range prices {
		for len(st) > 0 && prices[st[len(st)-1]] >= p {
			res[st[len(st)-1]] -= p
			st = st[:len(st)-1]
		}
		st = append(st, j)
	}

	return res
}

// FinalPricesBrute scans forward from every item.
// Complexity: O(n²) time.
func FinalPricesBrute(prices []int) []int {
	res := make([]int, len(prices))
	for i, p := range prices {
		res[i] = p
		for j := i + 1; j < len(prices); j++ {
			if prices[j] <= p {
				res[i] = p - prices[j]
				break
			}
		}
	}

	return res
}

// FinalPricesReverse walks right to left keeping a stack of candidate
// discounts strictly below the current price.
func FinalPricesReverse(prices []int) []int {
	res := make([]int, len(prices))
	var st []int
	for i := len(prices) - 1; i >= 0; i-- {
		p := prices[i]
		for len(st) > 0 && st[len(st)-1] > p {
			st = st[:len(st)-1]
		}
		res[i] = p
		if len(st) > 0 {
			res[i] = p - st[len(st)-1]
		}
		st = append(st, p)
	}

	return res
}

// FinalPricesInPlace discounts a working copy, using the front of an index
// buffer of the same length as the stack.
func FinalPricesInPlace(prices []int) []int {
	res := make([]int, len(prices))
	copy(res, prices)
	idx := make([]int, len(prices))
	top := 0
	for j := range res {
		for top > 0 && prices[idx[top-1]] >= prices[j] {
			top--
			res[idx[top]] -= prices[j]
		}
		idx[top] = j
		top++
	}

	return res
}
