package cache_test

import (
	"math/rand"
	"testing"
)

// BenchmarkCache runs a skewed Get/Put mix against every implementation.
func BenchmarkCache(b *testing.B) {
	r := rand.New(rand.NewSource(42))
	keys := make([]int, 4096)
	for i := range keys {
		keys[i] = int(r.ExpFloat64() * 200)
	}
	for name, newCache := range allFactories() {
		b.Run(name, func(b *testing.B) {
			c, err := newCache(256)
			if err != nil {
				b.Fatal(err)
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				k := keys[i%len(keys)]
				if _, ok := c.Get(k); !ok {
					c.Put(k, i)
				}
			}
		})
	}
}
