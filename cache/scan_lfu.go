package cache

import "sync"

type scanEntry[V any] struct {
	value V
	freq  int
	tick  uint64
}

// scanLFU stamps every access with a logical clock and evicts the entry with
// the smallest (freq, tick) found by a full scan.
type scanLFU[K comparable, V any] struct {
	mu       sync.Mutex
	capacity int
	entries  map[K]*scanEntry[V]
	clock    uint64
	rec      *recorder[K, V]
}

// NewScanLFU returns an LFU cache whose eviction is O(n). It is the simplest
// correct LFU and serves as a reference for the O(1) ones.
func NewScanLFU[K comparable, V any](capacity int, opts ...Option[K, V]) (Cache[K, V], error) {
	rec, err := newRecorder(capacity, opts)
	if err != nil {
		return nil, err
	}

	return &scanLFU[K, V]{
		capacity: capacity,
		entries:  make(map[K]*scanEntry[V], capacity),
		rec:      rec,
	}, nil
}

func (c *scanLFU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		c.rec.miss()
		var zero V
		return zero, false
	}
	c.rec.hit()
	c.clock++
	e.freq++
	e.tick = c.clock

	return e.value, true
}

func (c *scanLFU[K, V]) Put(key K, value V) {
	c.mu.Lock()
	c.put(key, value)
	evicted := c.rec.takeEvicted()
	c.mu.Unlock()

	c.rec.notify(evicted)
}

func (c *scanLFU[K, V]) put(key K, value V) {
	if c.capacity == 0 {
		return
	}
	c.clock++
	if e, ok := c.entries[key]; ok {
		e.value = value
		e.freq++
		e.tick = c.clock
		return
	}
	if len(c.entries) == c.capacity {
		var (
			victim K
			worst  *scanEntry[V]
		)
		for k, e := range c.entries {
			if worst == nil || e.freq < worst.freq || (e.freq == worst.freq && e.tick < worst.tick) {
				victim, worst = k, e
			}
		}
		delete(c.entries, victim)
		c.rec.evicted(victim, worst.value)
	}
	c.entries[key] = &scanEntry[V]{value: value, freq: 1, tick: c.clock}
	c.rec.resized(len(c.entries))
}

func (c *scanLFU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *scanLFU[K, V]) Cap() int { return c.capacity }

func (c *scanLFU[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rec.stats
}
