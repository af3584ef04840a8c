package cache

// IntCache exposes a Cache[int, int] through the classic int API.
type IntCache struct {
	inner Cache[int, int]
}

// NewIntCache wraps c.
func NewIntCache(c Cache[int, int]) *IntCache { return &IntCache{inner: c} }

// Get returns the cached value, or -1 on a miss.
func (ic *IntCache) Get(key int) int {
	if v, ok := ic.inner.Get(key); ok {
		return v
	}
	return -1
}

// Put inserts or updates key.
func (ic *IntCache) Put(key, value int) { ic.inner.Put(key, value) }

// Unwrap returns the underlying cache.
func (ic *IntCache) Unwrap() Cache[int, int] { return ic.inner }
