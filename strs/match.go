package strs

import "strings"

// RepeatedStringMatch returns the minimum number of times a must be repeated
// so that b is a substring of the result, or -1 when no count works.
//
// Any occurrence of b starts inside the first copy of a, so q = ceil(|b|/|a|)
// or q+1 copies suffice when a match exists at all.
// An empty b matches zero copies.
//
// Complexity: O(|a|+|b|) expected time, O(|a|+|b|) space.
func RepeatedStringMatch(a, b string) int {
	if b == "" {
		return 0
	}
	if a == "" {
		return -1
	}
	q := ceilDiv(len(b), len(a))
	repeated := strings.Repeat(a, q+1)
	if strings.Contains(repeated[:q*len(a)], b) {
		return q
	}
	if strings.Contains(repeated, b) {
		return q + 1
	}

	return -1
}

// RepeatedStringMatchBounds tries every count from floor(|b|/|a|) through
// floor(|b|/|a|)+2.
func RepeatedStringMatchBounds(a, b string) int {
	if b == "" {
		return 0
	}
	if a == "" {
		return -1
	}
	lo := len(b) / len(a)
	for times := max(lo, 1); times <= lo+2; times++ {
		if strings.Contains(strings.Repeat(a, times), b) {
			return times
		}
	}

	return -1
}

// RepeatedStringMatchPruned rejects b early when it uses a byte a lacks.
func RepeatedStringMatchPruned(a, b string) int {
	if b == "" {
		return 0
	}
	var seen [256]bool
	for i := 0; i < len(a); i++ {
		seen[a[i]] = true
	}
	for i := 0; i < len(b); i++ {
		if !seen[b[i]] {
			return -1
		}
	}
	q := ceilDiv(len(b), len(a))
	for _, times := range [2]int{q, q + 1} {
		if strings.Contains(strings.Repeat(a, times), b) {
			return times
		}
	}

	return -1
}

const (
	rkBase = 256
	rkMod  = 1_000_000_007
)

// RepeatedStringMatchRabinKarp rolls a polynomial hash of width |b| over the
// virtual text a^(q+1) without materialising it, and verifies candidate
// windows byte by byte.
// Complexity: O(|a|+|b|) expected time, O(1) extra space.
func RepeatedStringMatchRabinKarp(a, b string) int {
	if b == "" {
		return 0
	}
	if a == "" {
		return -1
	}
	m, n := len(b), len(a)
	q := ceilDiv(m, n)
	total := (q + 1) * n
	at := func(i int) byte { return a[i%n] }

	var target, window, pow uint64 = 0, 0, 1
	for i := 0; i < m; i++ {
		target = (target*rkBase + uint64(b[i])) % rkMod
		window = (window*rkBase + uint64(at(i))) % rkMod
		if i > 0 {
			pow = pow * rkBase % rkMod
		}
	}

	for start := 0; start+m <= total; start++ {
		if start > 0 {
			out := uint64(at(start-1)) * pow % rkMod
			window = (window + rkMod - out) % rkMod
			window = (window*rkBase + uint64(at(start+m-1))) % rkMod
		}
		if start >= n {
			break
		}
		if window == target && matchesAt(a, b, start) {
			return ceilDiv(start+m, n)
		}
	}

	return -1
}

// RepeatedStringMatchKMP runs the KMP automaton of b over a^(q+1), indexing
// a modulo its length.
// Complexity: O(|a|+|b|) time, O(|b|) space.
func RepeatedStringMatchKMP(a, b string) int {
	if b == "" {
		return 0
	}
	if a == "" {
		return -1
	}
	m, n := len(b), len(a)
	lps := prefixFunction(b)
	limit := n + m
	for i, k := 0, 0; i < limit; i++ {
		c := a[i%n]
		for k > 0 && c != b[k] {
			k = lps[k-1]
		}
		if c == b[k] {
			k++
		}
		if k == m {
			return ceilDiv(i+1, n)
		}
	}

	return -1
}

func matchesAt(a, b string, start int) bool {
	n := len(a)
	for j := 0; j < len(b); j++ {
		if a[(start+j)%n] != b[j] {
			return false
		}
	}
	return true
}

func ceilDiv(x, y int) int { return (x + y - 1) / y }
