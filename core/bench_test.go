package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/archipelago/core"
)

// BenchmarkAddSettlement measures registry insertion throughput.
func BenchmarkAddSettlement(b *testing.B) {
	g := core.NewGraph()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddSettlement(fmt.Sprintf("S%d", i), int64(i))
	}
}

// BenchmarkConnect measures highway insertion on a pre-registered chain.
func BenchmarkConnect(b *testing.B) {
	g := core.NewGraph()
	for i := 0; i <= b.N; i++ {
		_ = g.AddSettlement(fmt.Sprintf("S%d", i), 1)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Connect(fmt.Sprintf("S%d", i), fmt.Sprintf("S%d", i+1))
	}
}

// BenchmarkNeighbors measures sorted neighbor enumeration on a star of degree D.
func BenchmarkNeighbors(b *testing.B) {
	const D = 64
	g := core.NewGraph()
	_ = g.AddSettlement("Hub", 1)
	for i := 0; i < D; i++ {
		leaf := fmt.Sprintf("L%02d", i)
		_ = g.AddSettlement(leaf, 1)
		_ = g.Connect("Hub", leaf)
	}

	b.ReportAllocs()
	b.SetBytes(int64(D))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Neighbors("Hub")
	}
}
