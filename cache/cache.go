package cache

import "github.com/prometheus/client_golang/prometheus"

// Cache is a bounded key/value store with an eviction policy.
type Cache[K comparable, V any] interface {
	// Get returns the value for key and whether it was present.
	Get(key K) (V, bool)
	// Put inserts or updates key, evicting one entry if the cache is full.
	Put(key K, value V)
	// Len returns the number of cached entries.
	Len() int
	// Cap returns the capacity.
	Cap() int
	// Stats returns hit, miss and eviction counts since creation.
	Stats() Stats
}

// Factory builds a cache of the given capacity.
type Factory[K comparable, V any] func(capacity int, opts ...Option[K, V]) (Cache[K, V], error)

// Stats counts cache activity.
type Stats struct {
	Hits      uint64 `json:"hits" yaml:"hits"`
	Misses    uint64 `json:"misses" yaml:"misses"`
	Evictions uint64 `json:"evictions" yaml:"evictions"`
}

// HitRatio returns Hits / (Hits + Misses), or 0 before any lookup.
func (s Stats) HitRatio() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// Option configures a cache at construction time.
type Option[K comparable, V any] func(*settings[K, V])

type settings[K comparable, V any] struct {
	onEvict     func(K, V)
	registerer  prometheus.Registerer
	metricsName string
}

// WithOnEvict installs fn, called with every entry removed to make room.
func WithOnEvict[K comparable, V any](fn func(key K, value V)) Option[K, V] {
	return func(s *settings[K, V]) { s.onEvict = fn }
}

// WithMetrics registers hit/miss, eviction and size collectors named after
// name on reg. A nil reg means prometheus.DefaultRegisterer.
func WithMetrics[K comparable, V any](reg prometheus.Registerer, name string) Option[K, V] {
	return func(s *settings[K, V]) {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		s.registerer = reg
		s.metricsName = name
	}
}

type eviction[K comparable, V any] struct {
	key   K
	value V
}

// recorder carries the bookkeeping shared by every implementation. All
// methods except notify are used under the owning cache's lock.
type recorder[K comparable, V any] struct {
	stats   Stats
	onEvict func(K, V)
	metrics *metrics
	pending []eviction[K, V]
}

func newRecorder[K comparable, V any](capacity int, opts []Option[K, V]) (*recorder[K, V], error) {
	if capacity < 0 {
		return nil, ErrInvalidCapacity
	}
	var s settings[K, V]
	for _, opt := range opts {
		opt(&s)
	}
	r := &recorder[K, V]{onEvict: s.onEvict}
	if s.registerer != nil {
		m, err := newMetrics(s.registerer, s.metricsName)
		if err != nil {
			return nil, err
		}
		r.metrics = m
	}

	return r, nil
}

func (r *recorder[K, V]) hit() {
	r.stats.Hits++
	if r.metrics != nil {
		r.metrics.hits.Inc()
	}
}

func (r *recorder[K, V]) miss() {
	r.stats.Misses++
	if r.metrics != nil {
		r.metrics.misses.Inc()
	}
}

func (r *recorder[K, V]) evicted(key K, value V) {
	r.stats.Evictions++
	if r.metrics != nil {
		r.metrics.evictions.Inc()
	}
	if r.onEvict != nil {
		r.pending = append(r.pending, eviction[K, V]{key, value})
	}
}

// takeEvicted hands over the evictions buffered since the last call.
func (r *recorder[K, V]) takeEvicted() []eviction[K, V] {
	out := r.pending
	r.pending = nil
	return out
}

// notify runs the WithOnEvict hook. The caller must not hold the cache lock.
func (r *recorder[K, V]) notify(evicted []eviction[K, V]) {
	for _, e := range evicted {
		r.onEvict(e.key, e.value)
	}
}

func (r *recorder[K, V]) resized(n int) {
	if r.metrics != nil {
		r.metrics.entries.Set(float64(n))
	}
}
