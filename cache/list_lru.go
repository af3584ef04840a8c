package cache

import (
	"container/list"
	"sync"
)

type listEntry[K comparable, V any] struct {
	key   K
	value V
}

// listLRU orders entries on a container/list, front = most recent.
type listLRU[K comparable, V any] struct {
	mu       sync.Mutex
	capacity int
	order    *list.List
	items    map[K]*list.Element
	rec      *recorder[K, V]
}

// NewListLRU returns an LRU cache built on container/list.
func NewListLRU[K comparable, V any](capacity int, opts ...Option[K, V]) (Cache[K, V], error) {
	rec, err := newRecorder(capacity, opts)
	if err != nil {
		return nil, err
	}

	return &listLRU[K, V]{
		capacity: capacity,
		order:    list.New(),
		items:    make(map[K]*list.Element, capacity),
		rec:      rec,
	}, nil
}

func (c *listLRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		c.rec.miss()
		var zero V
		return zero, false
	}
	c.rec.hit()
	c.order.MoveToFront(el)

	return el.Value.(*listEntry[K, V]).value, true
}

func (c *listLRU[K, V]) Put(key K, value V) {
	c.mu.Lock()
	c.put(key, value)
	evicted := c.rec.takeEvicted()
	c.mu.Unlock()

	c.rec.notify(evicted)
}

func (c *listLRU[K, V]) put(key K, value V) {
	if c.capacity == 0 {
		return
	}
	if el, ok := c.items[key]; ok {
		el.Value.(*listEntry[K, V]).value = value
		c.order.MoveToFront(el)
		return
	}
	if c.order.Len() == c.capacity {
		back := c.order.Back()
		victim := c.order.Remove(back).(*listEntry[K, V])
		delete(c.items, victim.key)
		c.rec.evicted(victim.key, victim.value)
	}
	c.items[key] = c.order.PushFront(&listEntry[K, V]{key: key, value: value})
	c.rec.resized(c.order.Len())
}

func (c *listLRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

func (c *listLRU[K, V]) Cap() int { return c.capacity }

func (c *listLRU[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rec.stats
}
