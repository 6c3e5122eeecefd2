package core

import (
	"fmt"
	"sort"
)

// notFound wraps ErrSettlementNotFound with the offending name.
func notFound(name string) error {
	return fmt.Errorf("%w: %q", ErrSettlementNotFound, name)
}

// Connect records an undirected highway between a and b.
//
// Connecting an already-connected pair is a no-op (idempotent), so repeated
// road records leave the graph unchanged. Both endpoints must be registered
// first; Connect never creates settlements implicitly.
//
// Returns ErrEmptyName, ErrSelfLoop for a == b, or ErrSettlementNotFound
// naming the missing endpoint.
// Complexity: O(1) amortized.
func (g *Graph) Connect(a, b string) error {
	if a == "" || b == "" {
		return ErrEmptyName
	}
	if a == b {
		return fmt.Errorf("%w: %q", ErrSelfLoop, a)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.settlements[a]; !exists {
		return notFound(a)
	}
	if _, exists := g.settlements[b]; !exists {
		return notFound(b)
	}
	if _, exists := g.adjacency[a][b]; exists {
		return nil // already connected
	}
	g.adjacency[a][b] = struct{}{}
	g.adjacency[b][a] = struct{}{}
	g.highways++

	return nil
}

// HasHighway reports whether a and b are directly connected.
// Unknown names simply report false.
func (g *Graph) HasHighway(a, b string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, exists := g.adjacency[a][b]

	return exists
}

// Neighbors returns the names adjacent to name, sorted lexicographically
// ascending for reproducible traversal order.
// Returns ErrSettlementNotFound for an unknown name.
// Complexity: O(deg·log deg)
func (g *Graph) Neighbors(name string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	row, exists := g.adjacency[name]
	if !exists {
		return nil, notFound(name)
	}
	names := make([]string, 0, len(row))
	for n := range row {
		names = append(names, n)
	}
	sort.Strings(names)

	return names, nil
}

// Degree returns the number of highways touching name,
// or ErrSettlementNotFound.
func (g *Graph) Degree(name string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	row, exists := g.adjacency[name]
	if !exists {
		return 0, notFound(name)
	}

	return len(row), nil
}

// HighwayCount returns the number of distinct highways (unordered pairs).
func (g *Graph) HighwayCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.highways
}
