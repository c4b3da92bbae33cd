// Package symmetric_test benchmarks the packed accessors against a
// deterministic access pattern.
package symmetric_test

import (
	"fmt"
	"testing"

	"github.com/elinorbgr/silinapse/symmetric"
)

// benchSizes are the matrix side lengths to benchmark.
var benchSizes = []int{64, 256, 1024}

// sinks to defeat dead-code elimination
var (
	sinkF float64
	sinkE error
)

func BenchmarkAt(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m, err := symmetric.New(n)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				v, err := m.At(i%n, (i*7)%n)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = v
			}
		})
	}
}

func BenchmarkSet(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m, err := symmetric.New(n)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkE = m.Set(i%n, (i*7)%n, float64(i))
			}
		})
	}
}

func BenchmarkClone(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m, err := symmetric.New(n)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			var cp *symmetric.Matrix
			for i := 0; i < b.N; i++ {
				cp = m.Clone()
			}
			sinkF = float64(cp.Size())
		})
	}
}
