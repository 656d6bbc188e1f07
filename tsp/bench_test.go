package tsp_test

import (
	"testing"

	"github.com/katalvlaran/routepuzzle/tsp"
)

// BenchmarkSolvePath_n10 measures the hardest tier (8! candidates).
func BenchmarkSolvePath_n10(b *testing.B) {
	g := randomGraph(b, 10, 7)
	start, end, err := g.Endpoints()
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = tsp.SolvePath(g, start, end, tsp.DefaultOptions()); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkHeldKarpPath_n10 measures the subset DP on the same instance.
func BenchmarkHeldKarpPath_n10(b *testing.B) {
	g := randomGraph(b, 10, 7)
	start, end, err := g.Endpoints()
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = tsp.HeldKarpPath(g, start, end); err != nil {
			b.Fatal(err)
		}
	}
}
