package strs

import "strings"

// RepeatedSubstringPattern reports whether s is some proper substring
// repeated two or more times.
//
// If s = p^k with k >= 2 then s occurs inside (s+s) with the first and last
// byte removed; the converse also holds.
//
// Complexity: O(n) expected time (strings.Contains), O(n) space.
func RepeatedSubstringPattern(s string) bool {
	if len(s) < 2 {
		return false
	}
	doubled := s + s

	return strings.Contains(doubled[1:len(doubled)-1], s)
}

// RepeatedSubstringPatternBrute tries every prefix length and rebuilds s.
// Complexity: O(n²) time.
func RepeatedSubstringPatternBrute(s string) bool {
	n := len(s)
	for size := 1; size < n; size++ {
		if n%size != 0 {
			continue
		}
		if strings.Repeat(s[:size], n/size) == s {
			return true
		}
	}

	return false
}

// RepeatedSubstringPatternDivisors only tries lengths up to n/2 that divide
// n, comparing each byte with the one a period earlier.
func RepeatedSubstringPatternDivisors(s string) bool {
	n := len(s)
	for size := 1; size <= n/2; size++ {
		if n%size != 0 {
			continue
		}
		ok := true
		for i := size; i < n; i++ {
			if s[i] != s[i-size] {
				ok = false
				break
			}
		}
		if ok {
			return true
		}
	}

	return false
}

// RepeatedSubstringPatternKMP uses the prefix function: with l the longest
// proper border of s, s is periodic iff l > 0 and n is a multiple of n-l.
// Complexity: O(n) time, O(n) space.
func RepeatedSubstringPatternKMP(s string) bool {
	n := len(s)
	if n < 2 {
		return false
	}
	lps := prefixFunction(s)
	border := lps[n-1]

	return border > 0 && n%(n-border) == 0
}

// RepeatedSubstringPatternFactors checks only periods n/q for the prime
// factors q of n: if s has period d it also has every multiple of d that
// divides n, so some n/q is a period.
func RepeatedSubstringPatternFactors(s string) bool {
	n := len(s)
	m := n
	for q := 2; q*q <= m; q++ {
		if m%q != 0 {
			continue
		}
		for m%q == 0 {
			m /= q
		}
		if hasPeriod(s, n/q) {
			return true
		}
	}
	if m > 1 && hasPeriod(s, n/m) {
		return true
	}

	return false
}

func hasPeriod(s string, p int) bool {
	if p <= 0 || p >= len(s) {
		return false
	}
	return s[p:] == s[:len(s)-p]
}

// prefixFunction returns lps where lps[i] is the length of the longest
// proper prefix of s[:i+1] that is also its suffix.
func prefixFunction(s string) []int {
	lps := make([]int, len(s))
	for i, k := 1, 0; i < len(s); i++ {
		for k > 0 && s[i] != s[k] {
			k = lps[k-1]
		}
		if s[i] == s[k] {
			k++
		}
		lps[i] = k
	}

	return lps
}
