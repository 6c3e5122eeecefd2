package core

// AddSettlement registers name with the given population, or updates the
// population if name already exists. Re-declaring a settlement keeps its
// highways; the latest population wins.
//
// Returns ErrEmptyName for an empty name and ErrNegativePopulation for a
// population below zero.
// Complexity: O(1) amortized.
func (g *Graph) AddSettlement(name string, population int64) error {
	if name == "" {
		return ErrEmptyName
	}
	if population < 0 {
		return ErrNegativePopulation
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if s, exists := g.settlements[name]; exists {
		s.Population = population
		return nil
	}
	g.settlements[name] = &Settlement{Name: name, Population: population}
	g.adjacency[name] = make(map[string]struct{})
	g.order = append(g.order, name)

	return nil
}

// HasSettlement reports whether name is registered (empty name ⇒ false).
func (g *Graph) HasSettlement(name string) bool {
	if name == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, exists := g.settlements[name]

	return exists
}

// Settlement returns a copy of the record for name,
// or ErrSettlementNotFound.
func (g *Graph) Settlement(name string) (Settlement, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s, exists := g.settlements[name]
	if !exists {
		return Settlement{}, notFound(name)
	}

	return *s, nil
}

// Population returns the population recorded for name,
// or ErrSettlementNotFound.
func (g *Graph) Population(name string) (int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s, exists := g.settlements[name]
	if !exists {
		return 0, notFound(name)
	}

	return s.Population, nil
}

// Settlements returns all registered names in first-declared order.
// The slice is a copy; callers may reorder it freely.
// Complexity: O(S)
func (g *Graph) Settlements() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	names := make([]string, len(g.order))
	copy(names, g.order)

	return names
}

// SettlementCount returns the number of registered settlements.
func (g *Graph) SettlementCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.settlements)
}

// TotalPopulation sums the population of every registered settlement.
// Complexity: O(S)
func (g *Graph) TotalPopulation() int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var total int64
	for _, s := range g.settlements {
		total += s.Population
	}

	return total
}
