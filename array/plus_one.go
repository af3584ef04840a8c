package array

import (
	"math/big"
	"slices"
)

// PlusOne adds one to the non-negative integer whose most significant digit
// comes first in digits and returns the new digit slice.
//
// Walk right to left: the first digit below 9 absorbs the carry; nines turn
// into zeros. Only an all-nines input grows by one digit.
//
// Complexity: O(n) time; O(1) extra beyond the result copy.
func PlusOne(digits []int) []int {
	out := slices.Clone(digits)
	for i := len(out) - 1; i >= 0; i-- {
		if out[i] < 9 {
			out[i]++
			return out
		}
		out[i] = 0
	}

	return append([]int{1}, out...)
}

// PlusOnePadded prepends a zero as a landing slot for the final carry,
// ripples tens leftwards, then trims the pad if it stayed unused.
func PlusOnePadded(digits []int) []int {
	if len(digits) == 0 {
		return []int{1}
	}
	out := make([]int, len(digits)+1)
	copy(out[1:], digits)
	out[len(out)-1]++
	for i := len(out) - 1; i > 0; i-- {
		if out[i] == 10 {
			out[i] = 0
			out[i-1]++
		}
	}
	if out[0] == 0 {
		return out[1:]
	}

	return out
}

// PlusOneBig converts the digits to a big.Int, adds one and converts back.
// Works for any length but allocates a decimal string on each side.
// Complexity: O(n) time, O(n) space.
func PlusOneBig(digits []int) []int {
	n := new(big.Int)
	ten := big.NewInt(10)
	for _, d := range digits {
		n.Mul(n, ten)
		n.Add(n, big.NewInt(int64(d)))
	}
	n.Add(n, big.NewInt(1))

	s := n.String()
	out := make([]int, len(s))
	for i := range s {
		out[i] = int(s[i] - '0')
	}

	return out
}

// PlusOneRecursive pushes the carry through a recursive helper.
// Complexity: O(n) time, O(n) stack in the worst case (all nines).
func PlusOneRecursive(digits []int) []int {
	out := slices.Clone(digits)
	var addOne func(i int) bool
	addOne = func(i int) bool {
		if i < 0 {
			return true // carry escaped the most significant digit
		}
		if out[i] < 9 {
			out[i]++
			return false
		}
		out[i] = 0
		return addOne(i - 1)
	}
	if addOne(len(out) - 1) {
		return append([]int{1}, out...)
	}

	return out
}

// PlusOneCarry keeps an explicit carry flag and stops as soon as it clears.
func PlusOneCarry(digits []int) []int {
	out := slices.Clone(digits)
	carry := 1
	for i := len(out) - 1; i >= 0 && carry > 0; i-- {
		out[i] += carry
		carry = out[i] / 10
		out[i] %= 10
	}
	if carry == 1 {
		out = slices.Insert(out, 0, 1)
	}

	return out
}

// PlusOneCopy builds the answer in a fresh slice with total/carry arithmetic.
// It is the closest to a "pure" implementation: input is only read.
func PlusOneCopy(digits []int) []int {
	result := make([]int, len(digits))
	copy(result, digits)
	carry := 1
	for i := len(result) - 1; i >= 0; i-- {
		if carry == 0 {
			break
		}
		total := result[i] + carry
		result[i] = total % 10
		carry = total / 10
	}
	if carry == 1 {
		result = append([]int{1}, result...)
	}

	return result
}
