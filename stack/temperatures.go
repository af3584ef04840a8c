package stack

// DailyTemperatures returns, for each day, how many days pass until a
// strictly warmer one (0 if none).
//
// Complexity: O(n) time, O(n) space.
func DailyTemperatures(t []int) []int {
	res := make([]int, len(t))
	var st []int
	for i, v := range t {
		for len(st) > 0 && t[st[len(st)-1]] < v {
			j := st[len(st)-1]
			st = st[:len(st)-1]
			res[j] = i - j
		}
		st = append(st, i)
	}

	return res
}

// DailyTemperaturesBrute scans forward from every day.
// Complexity: O(n²) time.
func DailyTemperaturesBrute(t []int) []int {
	res := make([]int, len(t))
	for i := range t {
		for j := i + 1; j < len(t); j++ {
			if t[j] > t[i] {
				res[i] = j - i
				break
			}
		}
	}

	return res
}

// DailyTemperaturesBackward fills the answer from the right, jumping over
// days that cannot be warmer by following the answers already computed.
// Complexity: O(n) amortised time, O(1) extra space.
func DailyTemperaturesBackward(t []int) []int {
	res := make([]int, len(t))
	for i := len(t) - 2; i >= 0; i-- {
		j := i + 1
		for t[j] <= t[i] {
			if res[j] == 0 {
				j = -1
				break
			}
			j += res[j]
		}
		if j > 0 {
			res[i] = j - i
		}
	}

	return res
}

// DailyTemperaturesNextSeen walks right to left recording, for every
// temperature value, the nearest index where it was seen; the answer for day
// i is the smallest recorded index among warmer values. The table spans the
// input's value range.
// Complexity: O(n·W) time for value range W, O(W) space.
func DailyTemperaturesNextSeen(t []int) []int {
	res := make([]int, len(t))
	if len(t) == 0 {
		return res
	}
	lo, hi := t[0], t[0]
	for _, v := range t {
		lo, hi = min(lo, v), max(hi, v)
	}
	const unseen = -1
	next := make([]int, hi-lo+1)
	for k := range next {
		next[k] = unseen
	}
	for i := len(t) - 1; i >= 0; i-- {
		best := unseen
		for v := t[i] + 1; v <= hi; v++ {
			if j := next[v-lo]; j != unseen && (best == unseen || j < best) {
				best = j
			}
		}
		if best != unseen {
			res[i] = best - i
		}
		next[t[i]-lo] = i
	}

	return res
}
