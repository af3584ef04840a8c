package strs

import (
	"regexp"
	"strings"
)

// DetectCapital reports whether word uses capitals correctly: all upper
// ("USA"), all lower ("leetcode"), or only the first letter upper ("Google").
//
// Count uppercase letters: valid iff the count is 0, len(word), or 1 with the
// first letter upper.
//
// Complexity: O(n) time, O(1) space.
func DetectCapital(word string) bool {
	upper := 0
	for i := 0; i < len(word); i++ {
		if isUpper(word[i]) {
			upper++
		}
	}

	return upper == 0 || upper == len(word) || (upper == 1 && isUpper(word[0]))
}

// DetectCapitalRules checks the three allowed shapes explicitly.
func DetectCapitalRules(word string) bool {
	if word == "" {
		return true
	}
	allUpper, allLower, restLower := true, true, true
	for i := 0; i < len(word); i++ {
		c := word[i]
		if isUpper(c) {
			allLower = false
			if i > 0 {
				restLower = false
			}
		} else {
			allUpper = false
		}
	}

	return allUpper || allLower || restLower
}

// DetectCapitalCompare compares word with its upper, lower and title forms.
// Complexity: O(n) time, O(n) space for the transformed copies.
func DetectCapitalCompare(word string) bool {
	if word == "" {
		return true
	}
	title := strings.ToUpper(word[:1]) + strings.ToLower(word[1:])

	return word == strings.ToUpper(word) || word == strings.ToLower(word) || word == title
}

var capitalPattern = regexp.MustCompile(`^(?:[A-Z]*|[a-z]*|[A-Z][a-z]*)$`)

// DetectCapitalPattern matches the three shapes with one regular expression.
func DetectCapitalPattern(word string) bool {
	return capitalPattern.MatchString(word)
}

// DetectCapitalTail decides from the first two letters what the tail must
// look like: if word[1] is upper then word[0] must be too and the tail must
// be all upper; otherwise the tail must be all lower.
func DetectCapitalTail(word string) bool {
	if len(word) < 2 {
		return true
	}
	wantUpper := isUpper(word[1])
	if wantUpper && !isUpper(word[0]) {
		return false
	}
	for i := 2; i < len(word); i++ {
		if isUpper(word[i]) != wantUpper {
			return false
		}
	}

	return true
}

func isUpper(c byte) bool { return 'A' <= c && c <= 'Z' }
