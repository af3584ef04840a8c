package stream

import (
	"cmp"
	"container/heap"
	"slices"
	"sort"
)

// KthLargest reports the k-th largest value of a growing multiset.
type KthLargest interface {
	// Add inserts val and returns the current k-th largest value. While
	// fewer than k values have been seen it returns the smallest of them.
	Add(val int) int
}

type minIntHeap []int

func (h minIntHeap) Len() int            { return len(h) }
func (h minIntHeap) Less(i, j int) bool  { return h[i] < h[j] }
func (h minIntHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *minIntHeap) Push(x interface{}) { *h = append(*h, x.(int)) }

func (h *minIntHeap) Pop() interface{} {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]

	return v
}

type heapKth struct {
	k int
	h minIntHeap
}

// NewKthLargest keeps the k largest values in a min-heap whose root is the
// answer. Add is O(log k), memory O(k).
func NewKthLargest(k int, nums []int) (KthLargest, error) {
	if k <= 0 {
		return nil, ErrInvalidK
	}
	kl := &heapKth{k: k, h: make(minIntHeap, 0, k+1)}
	for _, v := range nums {
		kl.push(v)
	}

	return kl, nil
}

func (kl *heapKth) push(v int) {
	heap.Push(&kl.h, v)
	if kl.h.Len() > kl.k {
		heap.Pop(&kl.h)
	}
}

func (kl *heapKth) Add(val int) int {
	kl.push(val)
	return kl.h[0]
}

type sortedKth struct {
	k    int
	nums []int
}

// NewSortedKthLargest keeps every value and re-sorts on each Add.
// Add is O(n log n).
func NewSortedKthLargest(k int, nums []int) (KthLargest, error) {
	if k <= 0 {
		return nil, ErrInvalidK
	}
	return &sortedKth{k: k, nums: slices.Clone(nums)}, nil
}

func (kl *sortedKth) Add(val int) int {
	kl.nums = append(kl.nums, val)
	slices.Sort(kl.nums)
	return kl.nums[max(len(kl.nums)-kl.k, 0)]
}

type bisectKth struct {
	k   int
	top []int // ascending, at most k values
}

// NewBisectKthLargest keeps the k largest values sorted and places each new
// one by binary search. Add is O(k).
func NewBisectKthLargest(k int, nums []int) (KthLargest, error) {
	if k <= 0 {
		return nil, ErrInvalidK
	}
	kl := &bisectKth{k: k, top: make([]int, 0, k+1)}
	for _, v := range nums {
		kl.insert(v)
	}

	return kl, nil
}

func (kl *bisectKth) insert(v int) {
	if len(kl.top) == kl.k && v <= kl.top[0] {
		return
	}
	at := sort.SearchInts(kl.top, v)
	kl.top = slices.Insert(kl.top, at, v)
	if len(kl.top) > kl.k {
		kl.top = kl.top[1:]
	}
}

func (kl *bisectKth) Add(val int) int {
	kl.insert(val)
	return kl.top[0]
}

type topKKth struct {
	k   int
	top []int // descending
}

// NewTopKKthLargest keeps only the k largest values, sorted descending, and
// re-sorts the short list on each Add. Add is O(k log k).
func NewTopKKthLargest(k int, nums []int) (KthLargest, error) {
	if k <= 0 {
		return nil, ErrInvalidK
	}
	top := slices.Clone(nums)
	slices.SortFunc(top, descending)
	if len(top) > k {
		top = top[:k]
	}

	return &topKKth{k: k, top: top}, nil
}

func (kl *topKKth) Add(val int) int {
	kl.top = append(kl.top, val)
	slices.SortFunc(kl.top, descending)
	if len(kl.top) > kl.k {
		kl.top = kl.top[:kl.k]
	}
	return kl.top[len(kl.top)-1]
}

func descending(a, b int) int { return cmp.Compare(b, a) }

type maxHeapKth struct {
	k int
	h maxIntHeap
}

// NewMaxHeapKthLargest stores every value in a max-heap and pops k-1 values
// to read the answer, pushing them back afterwards. Add is O(k log n).
func NewMaxHeapKthLargest(k int, nums []int) (KthLargest, error) {
	if k <= 0 {
		return nil, ErrInvalidK
	}
	h := maxIntHeap(slices.Clone(nums))
	heap.Init(&h)

	return &maxHeapKth{k: k, h: h}, nil
}

func (kl *maxHeapKth) Add(val int) int {
	heap.Push(&kl.h, val)
	skip := min(kl.k, kl.h.Len()) - 1
	held := make([]int, 0, skip)
	for i := 0; i < skip; i++ {
		held = append(held, heap.Pop(&kl.h).(int))
	}
	ans := kl.h[0]
	for _, v := range held {
		heap.Push(&kl.h, v)
	}

	return ans
}

type maxIntHeap []int

func (h maxIntHeap) Len() int            { return len(h) }
func (h maxIntHeap) Less(i, j int) bool  { return h[i] > h[j] }
func (h maxIntHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *maxIntHeap) Push(x interface{}) { *h = append(*h, x.(int)) }

func (h *maxIntHeap) Pop() interface{} {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]

	return v
}
