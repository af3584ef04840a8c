package cache

import "sync"

type lruNode[K comparable, V any] struct {
	key        K
	value      V
	prev, next *lruNode[K, V]
}

// lru keeps entries on a doubly linked list bounded by two sentinels:
// head.next is the most recently used entry, tail.prev the eviction victim.
type lru[K comparable, V any] struct {
	mu       sync.Mutex
	capacity int
	items    map[K]*lruNode[K, V]
	head     *lruNode[K, V]
	tail     *lruNode[K, V]
	rec      *recorder[K, V]
}

// NewLRU returns an LRU cache built on a map and a sentinel-bounded doubly
// linked list. Get and Put are O(1).
func NewLRU[K comparable, V any](capacity int, opts ...Option[K, V]) (Cache[K, V], error) {
	rec, err := newRecorder(capacity, opts)
	if err != nil {
		return nil, err
	}
	c := &lru[K, V]{
		capacity: capacity,
		items:    make(map[K]*lruNode[K, V], capacity),
		head:     &lruNode[K, V]{},
		tail:     &lruNode[K, V]{},
		rec:      rec,
	}
	c.head.next = c.tail
	c.tail.prev = c.head

	return c, nil
}

func (c *lru[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.items[key]
	if !ok {
		c.rec.miss()
		var zero V
		return zero, false
	}
	c.rec.hit()
	c.unlink(n)
	c.pushFront(n)

	return n.value, true
}

func (c *lru[K, V]) Put(key K, value V) {
	c.mu.Lock()
	c.put(key, value)
	evicted := c.rec.takeEvicted()
	c.mu.Unlock()

	c.rec.notify(evicted)
}

func (c *lru[K, V]) put(key K, value V) {
	if c.capacity == 0 {
		return
	}
	if n, ok := c.items[key]; ok {
		n.value = value
		c.unlink(n)
		c.pushFront(n)
		return
	}
	if len(c.items) == c.capacity {
		victim := c.tail.prev
		c.unlink(victim)
		delete(c.items, victim.key)
		c.rec.evicted(victim.key, victim.value)
	}
	n := &lruNode[K, V]{key: key, value: value}
	c.items[key] = n
	c.pushFront(n)
	c.rec.resized(len(c.items))
}

func (c *lru[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func (c *lru[K, V]) Cap() int { return c.capacity }

func (c *lru[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rec.stats
}

func (c *lru[K, V]) unlink(n *lruNode[K, V]) {
	n.prev.next = n.next
	n.next.prev = n.prev
}

func (c *lru[K, V]) pushFront(n *lruNode[K, V]) {
	n.prev = c.head
	n.next = c.head.next
	c.head.next.prev = n
	c.head.next = n
}
