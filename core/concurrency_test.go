package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/archipelago/core"
)

// TestGraph_ConcurrentBuild exercises parallel registration and connection.
// Run with -race to validate the locking discipline.
func TestGraph_ConcurrentBuild(t *testing.T) {
	const n = 64
	g := core.NewGraph()

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("S%02d", i)
			if err := g.AddSettlement(name, int64(i)); err != nil {
				t.Errorf("AddSettlement(%s): %v", name, err)
			}
		}(i)
	}
	wg.Wait()
	require.Equal(t, n, g.SettlementCount())

	// Connect a ring concurrently; duplicates and both orientations race on purpose.
	wg.Add(2 * n)
	for i := 0; i < n; i++ {
		u := fmt.Sprintf("S%02d", i)
		v := fmt.Sprintf("S%02d", (i+1)%n)
		go func() {
			defer wg.Done()
			_ = g.Connect(u, v)
		}()
		go func() {
			defer wg.Done()
			_ = g.Connect(v, u)
		}()
	}
	wg.Wait()
	assert.Equal(t, n, g.HighwayCount(), "ring has exactly n highways regardless of races")
}

// TestGraph_ConcurrentReads runs many readers over a built graph.
func TestGraph_ConcurrentReads(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddSettlement("Ash", 100))
	require.NoError(t, g.AddSettlement("Birch", 200))
	require.NoError(t, g.AddSettlement("Cedar", 300))
	require.NoError(t, g.Connect("Ash", "Birch"))
	require.NoError(t, g.Connect("Birch", "Cedar"))

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = g.Settlements()
				_, _ = g.Neighbors("Birch")
				_ = g.TotalPopulation()
				_ = g.HasHighway("Ash", "Birch")
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 3, g.SettlementCount())
	assert.Equal(t, 2, g.HighwayCount())
}
