package cache_test

import (
	"fmt"

	"github.com/katalvlaran/lvlquest/cache"
)

// ExampleNewLRU evicts the least recently used key.
func ExampleNewLRU() {
	c, _ := cache.NewLRU[string, int](2)
	c.Put("a", 1)
	c.Put("b", 2)
	c.Get("a")
	c.Put("c", 3)

	_, ok := c.Get("b")
	fmt.Println(ok, c.Len())
	// Output:
	// false 2
}

// ExampleNewLFU evicts the least frequently used key.
func ExampleNewLFU() {
	c, _ := cache.NewLFU[string, int](2, cache.WithOnEvict(func(k string, _ int) {
		fmt.Println("evicted", k)
	}))
	c.Put("a", 1)
	c.Put("b", 2)
	c.Get("a")
	c.Get("b")
	c.Get("b")
	c.Put("c", 3)
	// Output:
	// evicted a
}

// ExampleIntCache shows the -1 miss convention.
func ExampleIntCache() {
	lru, _ := cache.NewLRU[int, int](1)
	ic := cache.NewIntCache(lru)
	ic.Put(1, 1)
	ic.Put(2, 2)
	fmt.Println(ic.Get(1), ic.Get(2))
	// Output:
	// -1 2
}
