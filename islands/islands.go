// Package islands provides connected-component discovery over a
// core.Graph, reporting member sets and aggregate populations.
package islands

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/archipelago/core"
)

// walker encapsulates the per-call state of one discovery sweep.
type walker struct {
	graph *core.Graph
	opts  Options
	seen  map[string]struct{}
}

// newWalker validates g, folds opts, and prepares fresh sweep state.
func newWalker(g *core.Graph, opts []Option) (*walker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &walker{
		graph: g,
		opts:  o,
		seen:  make(map[string]struct{}, g.SettlementCount()),
	}, nil
}

// Islands returns every connected component of g in discovery order:
// the order in which an unvisited settlement first appears in the
// graph's first-declared enumeration.
func Islands(g *core.Graph, opts ...Option) ([]Island, error) {
	w, err := newWalker(g, opts)
	if err != nil {
		return nil, err
	}

	var isles []Island
	for _, name := range w.graph.Settlements() {
		if _, ok := w.seen[name]; ok {
			continue
		}
		isle, err := w.explore(name)
		if err != nil {
			return nil, err
		}
		isles = append(isles, isle)
	}

	return isles, nil
}

// Count returns the number of connected components of g.
func Count(g *core.Graph, opts ...Option) (int, error) {
	isles, err := Islands(g, opts...)
	if err != nil {
		return 0, err
	}

	return len(isles), nil
}

// Populations returns the per-island population sums in discovery order.
func Populations(g *core.Graph, opts ...Option) ([]int64, error) {
	isles, err := Islands(g, opts...)
	if err != nil {
		return nil, err
	}
	sums := make([]int64, len(isles))
	for i, isle := range isles {
		sums[i] = isle.Population
	}

	return sums, nil
}

// Locate returns the discovery-order index of the island containing name.
// Returns ErrSettlementNotFound for an unregistered name.
func Locate(g *core.Graph, name string, opts ...Option) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	if !g.HasSettlement(name) {
		return 0, fmt.Errorf("%w: %q", ErrSettlementNotFound, name)
	}
	isles, err := Islands(g, opts...)
	if err != nil {
		return 0, err
	}
	for i, isle := range isles {
		if isle.Members.Contains(name) {
			return i, nil
		}
	}

	// Unreachable: every registered settlement belongs to exactly one island.
	return 0, fmt.Errorf("%w: %q", ErrSettlementNotFound, name)
}

// explore sweeps the component containing start with an iterative
// depth-first stack, marking settlements seen as they are pushed.
func (w *walker) explore(start string) (Island, error) {
	isle := Island{Members: mapset.NewSet[string]()}
	stack := []string{start}
	w.seen[start] = struct{}{}

	for len(stack) > 0 {
		// cancellation check (once per pop)
		select {
		case <-w.opts.Ctx.Done():
			return Island{}, w.opts.Ctx.Err()
		default:
		}

		last := len(stack) - 1
		name := stack[last]
		stack = stack[:last]

		isle.Members.Add(name)
		population, err := w.graph.Population(name)
		if err != nil {
			return Island{}, fmt.Errorf("islands: population of %q: %w", name, err)
		}
		isle.Population += population

		neighbors, err := w.graph.Neighbors(name)
		if err != nil {
			return Island{}, fmt.Errorf("islands: neighbors of %q: %w", name, err)
		}
		for _, nbr := range neighbors {
			if _, ok := w.seen[nbr]; !ok {
				w.seen[nbr] = struct{}{}
				stack = append(stack, nbr)
			}
		}
	}

	return isle, nil
}
