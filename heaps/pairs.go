package heaps

import (
	"container/heap"
	"slices"
)

// KSmallestPairs returns up to k pairs (a[i], b[j]) with the smallest sums,
// for ascending a and b. k == 0 or an empty input yields an empty result.
//
// The heap holds one frontier pair per row i of a (at most k rows); popping
// (i, j) admits (i, j+1).
//
// Complexity: O(k log min(k, len(a))) time, O(min(k, len(a))) space.
func KSmallestPairs(a, b []int, k int) ([][2]int, error) {
	if k < 0 {
		return nil, ErrInvalidK
	}
	res := [][2]int{}
	if k == 0 || len(a) == 0 || len(b) == 0 {
		return res, nil
	}
	pq := make(pairPQ, 0, min(k, len(a)))
	for i := 0; i < min(k, len(a)); i++ {
		pq = append(pq, pairItem{a[i] + b[0], i, 0})
	}
	heap.Init(&pq)
	for pq.Len() > 0 && len(res) < k {
		it := heap.Pop(&pq).(pairItem)
		res = append(res, [2]int{a[it.i], b[it.j]})
		if it.j+1 < len(b) {
			heap.Push(&pq, pairItem{a[it.i] + b[it.j+1], it.i, it.j + 1})
		}
	}

	return res, nil
}

// KSmallestPairsBrute materialises every pair and sorts them.
// Complexity: O(mn log mn) time, O(mn) space.
func KSmallestPairsBrute(a, b []int, k int) ([][2]int, error) {
	if k < 0 {
		return nil, ErrInvalidK
	}
	all := make([]pairItem, 0, len(a)*len(b))
	for i, x := range a {
		for j, y := range b {
			all = append(all, pairItem{x + y, i, j})
		}
	}
	slices.SortFunc(all, comparePairs)

	return toPairs(a, b, all[:min(k, len(all))]), nil
}

// KSmallestPairsMaxHeap keeps the k best pairs seen in a bounded max-heap,
// abandoning a row as soon as its next pair cannot beat the worst kept one.
// Complexity: O(mn log k) worst case, O(k) space.
func KSmallestPairsMaxHeap(a, b []int, k int) ([][2]int, error) {
	if k < 0 {
		return nil, ErrInvalidK
	}
	if k == 0 {
		return [][2]int{}, nil
	}
	pq := maxPairPQ{make(pairPQ, 0, k)}
	for i, x := range a {
		for j, y := range b {
			it := pairItem{x + y, i, j}
			if pq.Len() < k {
				heap.Push(&pq, it)
				continue
			}
			if !it.before(pq.pairPQ[0]) {
				break
			}
			pq.pairPQ[0] = it
			heap.Fix(&pq, 0)
		}
	}
	kept := []pairItem(pq.pairPQ)
	slices.SortFunc(kept, comparePairs)

	return toPairs(a, b, kept), nil
}

// KSmallestPairsLazy starts from (0, 0) only: popping (i, j) admits
// (i, j+1), and also (i+1, 0) when j == 0, so rows open on demand.
// Complexity: O(k log k) time, O(k) space.
func KSmallestPairsLazy(a, b []int, k int) ([][2]int, error) {
	if k < 0 {
		return nil, ErrInvalidK
	}
	res := [][2]int{}
	if k == 0 || len(a) == 0 || len(b) == 0 {
		return res, nil
	}
	pq := pairPQ{{a[0] + b[0], 0, 0}}
	for pq.Len() > 0 && len(res) < k {
		it := heap.Pop(&pq).(pairItem)
		res = append(res, [2]int{a[it.i], b[it.j]})
		if it.j+1 < len(b) {
			heap.Push(&pq, pairItem{a[it.i] + b[it.j+1], it.i, it.j + 1})
		}
		if it.j == 0 && it.i+1 < len(a) {
			heap.Push(&pq, pairItem{a[it.i+1] + b[0], it.i + 1, 0})
		}
	}

	return res, nil
}

func comparePairs(p, q pairItem) int {
	switch {
	case p.before(q):
		return -1
	case q.before(p):
		return 1
	}
	return 0
}

func toPairs(a, b []int, items []pairItem) [][2]int {
	out := make([][2]int, len(items))
	for n, it := range items {
		out[n] = [2]int{a[it.i], b[it.j]}
	}
	return out
}
