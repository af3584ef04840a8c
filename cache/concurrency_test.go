package cache_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestConcurrentPutGet hammers every implementation from many goroutines;
// run with -race to check the locking.
func TestConcurrentPutGet(t *testing.T) {
	for name, newCache := range allFactories() {
		t.Run(name, func(t *testing.T) {
			c, err := newCache(16)
			require.NoError(t, err)

			const workers, rounds = 32, 200
			var wg sync.WaitGroup
			wg.Add(workers)
			for w := 0; w < workers; w++ {
				go func(id int) {
					defer wg.Done()
					for i := 0; i < rounds; i++ {
						key := (id*rounds + i) % 64
						c.Put(key, i)
						c.Get((key + 1) % 64)
					}
				}(w)
			}
			wg.Wait()

			require.LessOrEqual(t, c.Len(), 16)
			st := c.Stats()
			require.Equal(t, uint64(workers*rounds), st.Hits+st.Misses)
		})
	}
}
