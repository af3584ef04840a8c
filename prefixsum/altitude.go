package prefixsum

import "slices"

// LargestAltitude returns the highest point reached by a rider that starts at
// altitude 0 and applies gain[i] between consecutive points.
//
// Complexity: O(n) time, O(1) space.
func LargestAltitude(gain []int) int {
	best, cur := 0, 0
	for _, g := range gain {
		cur += g
		best = max(best, cur)
	}

	return best
}

// LargestAltitudePrefix materialises the full altitude profile first.
// Complexity: O(n) time, O(n) space.
func LargestAltitudePrefix(gain []int) int {
	alt := make([]int, len(gain)+1)
	for i, g := range gain {
		alt[i+1] = alt[i] + g
	}
	best := alt[0]
	for _, a := range alt[1:] {
		if a > best {
			best = a
		}
	}

	return best
}

// LargestAltitudeScan builds the profile and hands it to slices.Max.
func LargestAltitudeScan(gain []int) int {
	alt := make([]int, 1, len(gain)+1)
	for _, g := range gain {
		alt = append(alt, alt[len(alt)-1]+g)
	}

	return slices.Max(alt)
}

// LargestAltitudeRecursive threads (index, altitude, best) through recursion.
// Complexity: O(n) time, O(n) stack.
func LargestAltitudeRecursive(gain []int) int {
	var walk func(i, cur, best int) int
	walk = func(i, cur, best int) int {
		if i == len(gain) {
			return best
		}
		cur += gain[i]
		return walk(i+1, cur, max(best, cur))
	}

	return walk(0, 0, 0)
}
