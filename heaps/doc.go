// Package heaps solves priority-queue exercises with container/heap:
//
//   - LastStoneWeight: smash the two heaviest stones until at most one is left.
//   - KSmallestPairs: the k pairs (a[i], b[j]) with the smallest sums.
//   - IsPossible: can an all-ones array grow into target by repeatedly
//     replacing one element with the array sum?
//
// Heaps follow the usual heap.Interface shape: a slice type with Len, Less,
// Swap and pointer-receiver Push/Pop.
//
// KSmallestPairs orders its result by sum, breaking ties by index in a and
// then by index in b, so every variant returns the same slice.
package heaps
