// Package cache provides bounded key/value caches with least-recently-used
// (LRU) and least-frequently-used (LFU) eviction.
//
// 🚀 Implementations
//
//	NewLRU          map + intrusive doubly linked list with sentinels, O(1)
//	NewListLRU      map + container/list, O(1)
//	NewLibraryLRU   hashicorp/golang-lru simplelru behind the same API, O(1)
//	NewLFU          key map + one list per frequency + min frequency, O(1)
//	NewOrderedLFU   one insertion-ordered key set per frequency, O(1)
//	NewScanLFU      flat map, eviction scans for the (frequency, age) minimum, O(n)
//
// ✨ Semantics
//
//   - Get marks the key as used; Put inserts or updates and also marks it.
//   - An LRU cache evicts the key unused for the longest time.
//   - An LFU cache evicts the key with the fewest uses (Get and Put both
//     count); ties go to the least recently used among them.
//   - Capacity 0 is valid: every Put is a no-op and every Get misses.
//   - A negative capacity is rejected with ErrInvalidCapacity.
//
// Every cache is safe for concurrent use; a single sync.Mutex guards each
// instance. Hooks installed with WithOnEvict run after Put releases that
// lock, so they may call back into the cache.
//
// Observability: WithMetrics registers three collectors on a
// prometheus.Registerer:
//
//	<name>_requests_total{result="hit"|"miss"}  counter
//	<name>_evictions_total                      counter
//	<name>_entries                              gauge
//
// IntCache adapts a Cache[int, int] to the classic int API where Get returns
// -1 on a miss.
package cache
