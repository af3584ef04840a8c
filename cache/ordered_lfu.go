package cache

import (
	"container/list"
	"sync"
)

// orderedSet is an insertion-ordered set: oldest at the front.
type orderedSet[K comparable] struct {
	order *list.List
	index map[K]*list.Element
}

func newOrderedSet[K comparable]() *orderedSet[K] {
	return &orderedSet[K]{order: list.New(), index: make(map[K]*list.Element)}
}

func (s *orderedSet[K]) add(key K) { s.index[key] = s.order.PushBack(key) }

func (s *orderedSet[K]) remove(key K) {
	if el, ok := s.index[key]; ok {
		s.order.Remove(el)
		delete(s.index, key)
	}
}

func (s *orderedSet[K]) popOldest() K {
	key := s.order.Remove(s.order.Front()).(K)
	delete(s.index, key)
	return key
}

func (s *orderedSet[K]) size() int { return s.order.Len() }

type orderedEntry[V any] struct {
	value V
	freq  int
}

// orderedLFU keeps values and frequencies in one map and the recency order
// of each frequency in its own ordered key set.
type orderedLFU[K comparable, V any] struct {
	mu       sync.Mutex
	capacity int
	entries  map[K]*orderedEntry[V]
	buckets  map[int]*orderedSet[K]
	minFreq  int
	rec      *recorder[K, V]
}

// NewOrderedLFU returns an LFU cache that stores, per frequency, an
// insertion-ordered set of keys. Get and Put are O(1).
func NewOrderedLFU[K comparable, V any](capacity int, opts ...Option[K, V]) (Cache[K, V], error) {
	rec, err := newRecorder(capacity, opts)
	if err != nil {
		return nil, err
	}

	return &orderedLFU[K, V]{
		capacity: capacity,
		entries:  make(map[K]*orderedEntry[V], capacity),
		buckets:  make(map[int]*orderedSet[K]),
		rec:      rec,
	}, nil
}

func (c *orderedLFU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		c.rec.miss()
		var zero V
		return zero, false
	}
	c.rec.hit()
	c.bump(key, e)

	return e.value, true
}

func (c *orderedLFU[K, V]) Put(key K, value V) {
	c.mu.Lock()
	c.put(key, value)
	evicted := c.rec.takeEvicted()
	c.mu.Unlock()

	c.rec.notify(evicted)
}

func (c *orderedLFU[K, V]) put(key K, value V) {
	if c.capacity == 0 {
		return
	}
	if e, ok := c.entries[key]; ok {
		e.value = value
		c.bump(key, e)
		return
	}
	if len(c.entries) == c.capacity {
		bucket := c.buckets[c.minFreq]
		victim := bucket.popOldest()
		if bucket.size() == 0 {
			delete(c.buckets, c.minFreq)
		}
		old := c.entries[victim]
		delete(c.entries, victim)
		c.rec.evicted(victim, old.value)
	}
	c.entries[key] = &orderedEntry[V]{value: value, freq: 1}
	c.bucket(1).add(key)
	c.minFreq = 1
	c.rec.resized(len(c.entries))
}

func (c *orderedLFU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *orderedLFU[K, V]) Cap() int { return c.capacity }

func (c *orderedLFU[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rec.stats
}

func (c *orderedLFU[K, V]) bump(key K, e *orderedEntry[V]) {
	from := c.buckets[e.freq]
	from.remove(key)
	if from.size() == 0 {
		delete(c.buckets, e.freq)
		if c.minFreq == e.freq {
			c.minFreq++
		}
	}
	e.freq++
	c.bucket(e.freq).add(key)
}

func (c *orderedLFU[K, V]) bucket(freq int) *orderedSet[K] {
	s, ok := c.buckets[freq]
	if !ok {
		s = newOrderedSet[K]()
		c.buckets[freq] = s
	}
	return s
}
