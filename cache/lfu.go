package cache

import "sync"

type lfuNode[K comparable, V any] struct {
	key        K
	value      V
	freq       int
	prev, next *lfuNode[K, V]
}

// freqList is a circular list around a sentinel: root.next is the most
// recently used entry of this frequency, root.prev the least.
type freqList[K comparable, V any] struct {
	root lfuNode[K, V]
	size int
}

func newFreqList[K comparable, V any]() *freqList[K, V] {
	l := &freqList[K, V]{}
	l.root.next = &l.root
	l.root.prev = &l.root
	return l
}

func (l *freqList[K, V]) pushFront(n *lfuNode[K, V]) {
	n.prev = &l.root
	n.next = l.root.next
	l.root.next.prev = n
	l.root.next = n
	l.size++
}

func (l *freqList[K, V]) remove(n *lfuNode[K, V]) {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.prev, n.next = nil, nil
	l.size--
}

func (l *freqList[K, V]) back() *lfuNode[K, V] { return l.root.prev }

// lfu tracks the smallest non-empty frequency so eviction never scans.
type lfu[K comparable, V any] struct {
	mu       sync.Mutex
	capacity int
	items    map[K]*lfuNode[K, V]
	lists    map[int]*freqList[K, V]
	minFreq  int
	rec      *recorder[K, V]
}

// NewLFU returns an LFU cache with O(1) Get and Put: a key map, one list per
// access frequency, and the current minimum frequency.
func NewLFU[K comparable, V any](capacity int, opts ...Option[K, V]) (Cache[K, V], error) {
	rec, err := newRecorder(capacity, opts)
	if err != nil {
		return nil, err
	}

	return &lfu[K, V]{
		capacity: capacity,
		items:    make(map[K]*lfuNode[K, V], capacity),
		lists:    make(map[int]*freqList[K, V]),
		rec:      rec,
	}, nil
}

func (c *lfu[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.items[key]
	if !ok {
		c.rec.miss()
		var zero V
		return zero, false
	}
	c.rec.hit()
	c.touch(n)

	return n.value, true
}

func (c *lfu[K, V]) Put(key K, value V) {
	c.mu.Lock()
	c.put(key, value)
	evicted := c.rec.takeEvicted()
	c.mu.Unlock()

	c.rec.notify(evicted)
}

func (c *lfu[K, V]) put(key K, value V) {
	if c.capacity == 0 {
		return
	}
	if n, ok := c.items[key]; ok {
		n.value = value
		c.touch(n)
		return
	}
	if len(c.items) == c.capacity {
		l := c.lists[c.minFreq]
		victim := l.back()
		c.detach(victim)
		delete(c.items, victim.key)
		c.rec.evicted(victim.key, victim.value)
	}
	n := &lfuNode[K, V]{key: key, value: value, freq: 1}
	c.items[key] = n
	c.attach(n)
	c.minFreq = 1
	c.rec.resized(len(c.items))
}

func (c *lfu[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func (c *lfu[K, V]) Cap() int { return c.capacity }

func (c *lfu[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rec.stats
}

// touch moves n up one frequency, advancing minFreq if n emptied it.
func (c *lfu[K, V]) touch(n *lfuNode[K, V]) {
	emptied := c.detach(n)
	if emptied && c.minFreq == n.freq {
		c.minFreq++
	}
	n.freq++
	c.attach(n)
}

func (c *lfu[K, V]) attach(n *lfuNode[K, V]) {
	l, ok := c.lists[n.freq]
	if !ok {
		l = newFreqList[K, V]()
		c.lists[n.freq] = l
	}
	l.pushFront(n)
}

// detach unlinks n and drops its list when empty, reporting whether it did.
func (c *lfu[K, V]) detach(n *lfuNode[K, V]) bool {
	l := c.lists[n.freq]
	l.remove(n)
	if l.size > 0 {
		return false
	}
	delete(c.lists, n.freq)
	return true
}
