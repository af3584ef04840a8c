package strs_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/lvlquest/strs"
)

// BenchmarkRepeatedStringMatch compares materialising a^q with the streaming matchers.
func BenchmarkRepeatedStringMatch(b *testing.B) {
	a := strings.Repeat("ab", 500) + "c"
	b2 := strings.Repeat(a, 8)[3:]
	for name, fn := range map[string]func(string, string) int{
		"ceil":      strs.RepeatedStringMatch,
		"rabinKarp": strs.RepeatedStringMatchRabinKarp,
		"kmp":       strs.RepeatedStringMatchKMP,
	} {
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = fn(a, b2)
			}
		})
	}
}
