package cache_test

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlquest/cache"
)

var lruFactories = map[string]cache.Factory[int, int]{
	"Sentinel": cache.NewLRU[int, int],
	"List":     cache.NewListLRU[int, int],
	"Library":  cache.NewLibraryLRU[int, int],
}

var lfuFactories = map[string]cache.Factory[int, int]{
	"FreqLists": cache.NewLFU[int, int],
	"Ordered":   cache.NewOrderedLFU[int, int],
	"Scan":      cache.NewScanLFU[int, int],
}

func allFactories() map[string]cache.Factory[int, int] {
	all := make(map[string]cache.Factory[int, int])
	for k, v := range lruFactories {
		all["LRU/"+k] = v
	}
	for k, v := range lfuFactories {
		all["LFU/"+k] = v
	}
	return all
}

// TestLRU_Sequence replays the classic two-slot LRU scenario.
func TestLRU_Sequence(t *testing.T) {
	for name, newCache := range lruFactories {
		t.Run(name, func(t *testing.T) {
			c, err := newCache(2)
			require.NoError(t, err)
			ic := cache.NewIntCache(c)

			ic.Put(1, 1)
			ic.Put(2, 2)
			assert.Equal(t, 1, ic.Get(1))
			ic.Put(3, 3) // evicts 2
			assert.Equal(t, -1, ic.Get(2))
			ic.Put(4, 4) // evicts 1
			assert.Equal(t, -1, ic.Get(1))
			assert.Equal(t, 3, ic.Get(3))
			assert.Equal(t, 4, ic.Get(4))

			assert.Equal(t, 2, c.Len())
			assert.Equal(t, 2, c.Cap())
			assert.Equal(t, cache.Stats{Hits: 3, Misses: 2, Evictions: 2}, c.Stats())
		})
	}
}

// TestLRU_UpdateRefreshes verifies that Put on an existing key updates it and makes it most recent.
func TestLRU_UpdateRefreshes(t *testing.T) {
	for name, newCache := range lruFactories {
		c, err := newCache(2)
		require.NoError(t, err, name)
		c.Put(1, 1)
		c.Put(2, 2)
		c.Put(1, 10)
		c.Put(3, 3) // evicts 2

		v, ok := c.Get(1)
		assert.True(t, ok, name)
		assert.Equal(t, 10, v, name)
		_, ok = c.Get(2)
		assert.False(t, ok, name)
		assert.Equal(t, 2, c.Len(), name)
	}
}

// TestLFU_Sequence replays the classic two-slot LFU scenario, including a frequency tie.
func TestLFU_Sequence(t *testing.T) {
	for name, newCache := range lfuFactories {
		t.Run(name, func(t *testing.T) {
			c, err := newCache(2)
			require.NoError(t, err)
			ic := cache.NewIntCache(c)

			ic.Put(1, 1)
			ic.Put(2, 2)
			assert.Equal(t, 1, ic.Get(1))
			ic.Put(3, 3) // evicts 2 (freq 1)
			assert.Equal(t, -1, ic.Get(2))
			assert.Equal(t, 3, ic.Get(3))
			ic.Put(4, 4) // 1 and 3 tie at freq 2; 1 is older
			assert.Equal(t, -1, ic.Get(1))
			assert.Equal(t, 3, ic.Get(3))
			assert.Equal(t, 4, ic.Get(4))
		})
	}
}

// TestLFU_PutCountsAsUse verifies that updating a key raises its frequency.
func TestLFU_PutCountsAsUse(t *testing.T) {
	for name, newCache := range lfuFactories {
		c, err := newCache(2)
		require.NoError(t, err, name)
		c.Put(1, 1)
		c.Put(2, 2)
		c.Put(1, 11) // freq(1) = 2
		c.Put(3, 3)  // evicts 2

		_, ok := c.Get(2)
		assert.False(t, ok, name)
		v, ok := c.Get(1)
		assert.True(t, ok, name)
		assert.Equal(t, 11, v, name)
	}
}

// TestCache_ZeroCapacity verifies that a zero-capacity cache stores nothing.
func TestCache_ZeroCapacity(t *testing.T) {
	for name, newCache := range allFactories() {
		c, err := newCache(0)
		require.NoError(t, err, name)
		c.Put(1, 1)
		_, ok := c.Get(1)
		assert.False(t, ok, name)
		assert.Equal(t, 0, c.Len(), name)
		assert.Equal(t, cache.Stats{Misses: 1}, c.Stats(), name)
	}
}

// TestCache_NegativeCapacity verifies the capacity guard.
func TestCache_NegativeCapacity(t *testing.T) {
	for name, newCache := range allFactories() {
		_, err := newCache(-1)
		assert.ErrorIs(t, err, cache.ErrInvalidCapacity, name)
	}
}

// TestCache_OnEvict verifies the eviction hook sees every victim in order.
func TestCache_OnEvict(t *testing.T) {
	for name, newCache := range allFactories() {
		var evicted [][2]int
		c, err := newCache(1, cache.WithOnEvict(func(k, v int) {
			evicted = append(evicted, [2]int{k, v})
		}))
		require.NoError(t, err, name)
		c.Put(1, 10)
		c.Put(2, 20)
		c.Put(2, 21)
		c.Put(3, 30)
		assert.Equal(t, [][2]int{{1, 10}, {2, 21}}, evicted, name)
		assert.Equal(t, uint64(2), c.Stats().Evictions, name)
	}
}

// TestCache_OnEvictReentrant verifies the eviction hook may use the cache that
// evicted the entry.
func TestCache_OnEvictReentrant(t *testing.T) {
	for name, newCache := range allFactories() {
		var (
			c      cache.Cache[int, int]
			seen   []int
			hidden []bool
		)
		c, err := newCache(1, cache.WithOnEvict(func(k, _ int) {
			_, ok := c.Get(k)
			seen = append(seen, c.Len())
			hidden = append(hidden, !ok)
			_ = c.Stats()
		}))
		require.NoError(t, err, name)

		done := make(chan struct{})
		go func() {
			defer close(done)
			c.Put(1, 1)
			c.Put(2, 2)
		}()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatalf("%s: Put blocked while running the eviction hook", name)
		}
		assert.Equal(t, []int{1}, seen, name)
		assert.Equal(t, []bool{true}, hidden, name)
	}
}

// TestCache_Metrics verifies the exported Prometheus series.
func TestCache_Metrics(t *testing.T) {
	for name, newCache := range allFactories() {
		reg := prometheus.NewRegistry()
		c, err := newCache(1, cache.WithMetrics[int, int](reg, "quest_cache"))
		require.NoError(t, err, name)

		c.Put(1, 1)
		c.Get(1)
		c.Get(2)
		c.Put(2, 2)

		const want = `
# HELP quest_cache_entries Entries currently cached.
# TYPE quest_cache_entries gauge
quest_cache_entries 1
# HELP quest_cache_evictions_total Entries evicted to make room.
# TYPE quest_cache_evictions_total counter
quest_cache_evictions_total 1
# HELP quest_cache_requests_total Cache lookups by result.
# TYPE quest_cache_requests_total counter
quest_cache_requests_total{result="hit"} 1
quest_cache_requests_total{result="miss"} 1
`
		assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(want)), name)
		assert.InDelta(t, 0.5, c.Stats().HitRatio(), 1e-9, name)
	}
}

// TestCache_MetricsConflict verifies that a second cache cannot reuse a metrics name on one registry.
func TestCache_MetricsConflict(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := cache.NewLRU(4, cache.WithMetrics[int, int](reg, "dup"))
	require.NoError(t, err)
	_, err = cache.NewLFU(4, cache.WithMetrics[int, int](reg, "dup"))
	assert.Error(t, err)

	_, err = cache.NewLRU(4, cache.WithMetrics[int, int](reg, "bad name"))
	assert.ErrorIs(t, err, cache.ErrInvalidMetricsName)
}

// TestCache_AgreeOnRandomOps drives every implementation of a policy with the same
// random operations and expects identical observable behaviour.
func TestCache_AgreeOnRandomOps(t *testing.T) {
	for policy, factories := range map[string]map[string]cache.Factory[int, int]{
		"LRU": lruFactories,
		"LFU": lfuFactories,
	} {
		r := rand.New(rand.NewSource(7))
		type op struct {
			put      bool
			key, val int
		}
		ops := make([]op, 2000)
		for i := range ops {
			ops[i] = op{put: r.Intn(2) == 0, key: r.Intn(12), val: r.Intn(1000)}
		}

		var reference []int
		var refName string
		for name, newCache := range factories {
			c, err := newCache(5)
			require.NoError(t, err)
			ic := cache.NewIntCache(c)
			trace := make([]int, 0, len(ops))
			for _, o := range ops {
				if o.put {
					ic.Put(o.key, o.val)
					continue
				}
				trace = append(trace, ic.Get(o.key))
			}
			if reference == nil {
				reference, refName = trace, name
				continue
			}
			assert.Equal(t, reference, trace, "%s: %s disagrees with %s", policy, name, refName)
		}
	}
}

// TestNewLRU_StringKeys verifies that the caches are generic over key and value types.
func TestNewLRU_StringKeys(t *testing.T) {
	c, err := cache.NewLRU[string, []byte](1)
	require.NoError(t, err)
	c.Put("a", []byte("x"))
	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, []byte("x"), v)
}
