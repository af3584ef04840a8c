package heaps

// maxIntHeap is a max-heap of ints.
type maxIntHeap []int

func (h maxIntHeap) Len() int           { return len(h) }
func (h maxIntHeap) Less(i, j int) bool { return h[i] > h[j] }
func (h maxIntHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *maxIntHeap) Push(x interface{}) { *h = append(*h, x.(int)) }

func (h *maxIntHeap) Pop() interface{} {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]

	return v
}

// pairItem is a candidate pair by index, keyed by its sum.
type pairItem struct {
	sum, i, j int
}

// before orders items by (sum, i, j).
func (p pairItem) before(q pairItem) bool {
	if p.sum != q.sum {
		return p.sum < q.sum
	}
	if p.i != q.i {
		return p.i < q.i
	}
	return p.j < q.j
}

// pairPQ is a min-heap of pairItem by (sum, i, j).
type pairPQ []pairItem

func (pq pairPQ) Len() int           { return len(pq) }
func (pq pairPQ) Less(i, j int) bool { return pq[i].before(pq[j]) }
func (pq pairPQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

func (pq *pairPQ) Push(x interface{}) { *pq = append(*pq, x.(pairItem)) }

func (pq *pairPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// maxPairPQ is a max-heap of pairItem, used to keep the k best seen so far.
type maxPairPQ struct{ pairPQ }

func (pq maxPairPQ) Less(i, j int) bool { return pq.pairPQ[j].before(pq.pairPQ[i]) }
