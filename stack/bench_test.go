package stack_test

import (
	"math/rand"
	"testing"
)

// BenchmarkLargestRectangle shows the gap between the linear stack and the quadratic references.
func BenchmarkLargestRectangle(b *testing.B) {
	r := rand.New(rand.NewSource(42))
	heights := make([]int, 2048)
	for i := range heights {
		heights[i] = r.Intn(10_000)
	}
	for name, fn := range rectangleVariants {
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = fn(heights)
			}
		})
	}
}
