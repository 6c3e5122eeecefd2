package islands_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/archipelago/core"
	"github.com/katalvlaran/archipelago/islands"
)

// benchGraph builds K disjoint chains of length L.
func benchGraph(k, l int) *core.Graph {
	g := core.NewGraph()
	for c := 0; c < k; c++ {
		prev := ""
		for i := 0; i < l; i++ {
			name := fmt.Sprintf("c%d_s%d", c, i)
			_ = g.AddSettlement(name, 1)
			if prev != "" {
				_ = g.Connect(prev, name)
			}
			prev = name
		}
	}

	return g
}

// BenchmarkIslands_ManySmall sweeps 100 chains of 10 settlements.
func BenchmarkIslands_ManySmall(b *testing.B) {
	g := benchGraph(100, 10)

	b.ReportAllocs()
	b.SetBytes(int64(g.SettlementCount() + g.HighwayCount()))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = islands.Islands(g)
	}
}

// BenchmarkIslands_OneLarge sweeps a single chain of 1000 settlements.
func BenchmarkIslands_OneLarge(b *testing.B) {
	g := benchGraph(1, 1000)

	b.ReportAllocs()
	b.SetBytes(int64(g.SettlementCount() + g.HighwayCount()))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = islands.Count(g)
	}
}
