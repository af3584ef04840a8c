package heaps

import (
	"container/heap"
	"slices"
)

// LastStoneWeight smashes the two heaviest stones each turn: equal stones
// both vanish, otherwise the difference survives. It returns the last
// remaining weight, or 0 when none is left. stones is not modified.
//
// Complexity: O(n log n) time, O(n) space.
func LastStoneWeight(stones []int) int {
	h := maxIntHeap(slices.Clone(stones))
	heap.Init(&h)
	for h.Len() > 1 {
		y := heap.Pop(&h).(int)
		x := heap.Pop(&h).(int)
		if y != x {
			heap.Push(&h, y-x)
		}
	}
	if h.Len() == 0 {
		return 0
	}

	return h[0]
}

// LastStoneWeightSort re-sorts the pile before every smash.
// Complexity: O(n² log n) time.
func LastStoneWeightSort(stones []int) int {
	pile := slices.Clone(stones)
	for len(pile) > 1 {
		slices.Sort(pile)
		y, x := pile[len(pile)-1], pile[len(pile)-2]
		pile = pile[:len(pile)-2]
		if y != x {
			pile = append(pile, y-x)
		}
	}
	if len(pile) == 0 {
		return 0
	}

	return pile[0]
}

// LastStoneWeightInsort sorts once and binary-inserts each remainder.
// Complexity: O(n²) time worst case for the inserts, O(n) space.
func LastStoneWeightInsort(stones []int) int {
	pile := slices.Clone(stones)
	slices.Sort(pile)
	for len(pile) > 1 {
		y, x := pile[len(pile)-1], pile[len(pile)-2]
		pile = pile[:len(pile)-2]
		if y != x {
			at, _ := slices.BinarySearch(pile, y-x)
			pile = slices.Insert(pile, at, y-x)
		}
	}
	if len(pile) == 0 {
		return 0
	}

	return pile[0]
}

// LastStoneWeightSimulation finds and removes the two maxima by linear scans.
// Complexity: O(n²) time, O(n) space.
func LastStoneWeightSimulation(stones []int) int {
	pile := slices.Clone(stones)
	takeMax := func() int {
		at := 0
		for i, s := range pile {
			if s > pile[at] {
				at = i
			}
		}
		v := pile[at]
		pile = slices.Delete(pile, at, at+1)
		return v
	}
	for len(pile) > 1 {
		y, x := takeMax(), takeMax()
		if y != x {
			pile = append(pile, y-x)
		}
	}
	if len(pile) == 0 {
		return 0
	}

	return pile[0]
}
