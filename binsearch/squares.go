package binsearch

import "math"

// JudgeSquareSum reports whether c = a² + b² for some integers a, b >= 0.
// Negative c is never a sum of squares.
//
// Two pointers a=0, b=⌊√c⌋ move towards each other.
//
// Complexity: O(√c) time, O(1) space.
func JudgeSquareSum(c int) bool {
	if c < 0 {
		return false
	}
	a, b := 0, isqrt(c)
	for a <= b {
		s := a*a + b*b
		switch {
		case s == c:
			return true
		case s < c:
			a++
		default:
			b--
		}
	}

	return false
}

// JudgeSquareSumBinarySearch fixes a and binary-searches b in [a, √c].
// Complexity: O(√c · log c).
func JudgeSquareSumBinarySearch(c int) bool {
	if c < 0 {
		return false
	}
	for a := 0; a*a <= c; a++ {
		rest := c - a*a
		lo, hi := 0, isqrt(rest)
		for lo <= hi {
			mid := lo + (hi-lo)/2
			sq := mid * mid
			switch {
			case sq == rest:
				return true
			case sq < rest:
				lo = mid + 1
			default:
				hi = mid - 1
			}
		}
	}

	return false
}

// JudgeSquareSumSqrt fixes a and checks whether c-a² is a perfect square.
func JudgeSquareSumSqrt(c int) bool {
	if c < 0 {
		return false
	}
	for a := 0; a*a <= c; a++ {
		rest := c - a*a
		b := isqrt(rest)
		if b*b == rest {
			return true
		}
	}

	return false
}

// JudgeSquareSumFermat applies the sum of two squares theorem: c > 0 is a sum
// of two squares iff every prime p ≡ 3 (mod 4) divides c an even number of
// times.
// Complexity: O(√c) time for trial division.
func JudgeSquareSumFermat(c int) bool {
	if c < 0 {
		return false
	}
	if c == 0 {
		return true
	}
	for p := 2; p*p <= c; p++ {
		if c%p != 0 {
			continue
		}
		exp := 0
		for c%p == 0 {
			c /= p
			exp++
		}
		if p%4 == 3 && exp%2 != 0 {
			return false
		}
	}

	return c%4 != 3
}

// isqrt returns ⌊√n⌋ for n >= 0, correcting float rounding at the edges.
func isqrt(n int) int {
	r := int(math.Sqrt(float64(n)))
	for r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}
