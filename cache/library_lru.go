package cache

import (
	"sync"

	"github.com/hashicorp/golang-lru/v2/simplelru"
)

// libraryLRU adapts simplelru.LRU, which is not goroutine-safe, to Cache.
type libraryLRU[K comparable, V any] struct {
	mu       sync.Mutex
	capacity int
	inner    *simplelru.LRU[K, V]
	rec      *recorder[K, V]
}

// NewLibraryLRU returns an LRU cache backed by hashicorp/golang-lru's
// simplelru. Evictions flow through simplelru's callback into the shared
// stats, metrics and WithOnEvict hook.
func NewLibraryLRU[K comparable, V any](capacity int, opts ...Option[K, V]) (Cache[K, V], error) {
	rec, err := newRecorder(capacity, opts)
	if err != nil {
		return nil, err
	}
	c := &libraryLRU[K, V]{capacity: capacity, rec: rec}
	if capacity == 0 {
		return c, nil
	}
	inner, err := simplelru.NewLRU[K, V](capacity, rec.evicted)
	if err != nil {
		return nil, err
	}
	c.inner = inner

	return c, nil
}

func (c *libraryLRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.inner != nil {
		if v, ok := c.inner.Get(key); ok {
			c.rec.hit()
			return v, true
		}
	}
	c.rec.miss()
	var zero V

	return zero, false
}

func (c *libraryLRU[K, V]) Put(key K, value V) {
	c.mu.Lock()
	c.put(key, value)
	evicted := c.rec.takeEvicted()
	c.mu.Unlock()

	c.rec.notify(evicted)
}

func (c *libraryLRU[K, V]) put(key K, value V) {
	if c.inner == nil {
		return
	}
	c.inner.Add(key, value)
	c.rec.resized(c.inner.Len())
}

func (c *libraryLRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inner == nil {
		return 0
	}
	return c.inner.Len()
}

func (c *libraryLRU[K, V]) Cap() int { return c.capacity }

func (c *libraryLRU[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rec.stats
}
