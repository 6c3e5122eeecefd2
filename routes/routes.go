// Package routes provides breadth-first shortest-route queries,
// counting highways between settlements of a core.Graph.
package routes

import (
	"fmt"

	"github.com/katalvlaran/archipelago/core"
)

// hop pairs a settlement with its highway distance from the origin.
type hop struct {
	name  string
	depth int
}

// walker encapsulates mutable BFS state for one query.
type walker struct {
	graph *core.Graph
	opts  Options
	queue []hop

	// depth doubles as the visited set: a settlement is recorded here
	// the moment it is enqueued, never later.
	depth map[string]int
}

// newWalker validates g and origin, folds opts, and seeds the frontier.
func newWalker(g *core.Graph, origin string, opts []Option) (*walker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasSettlement(origin) {
		return nil, fmt.Errorf("%w: %q", ErrSettlementNotFound, origin)
	}

	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]hop, 0, g.SettlementCount()),
		depth: make(map[string]int, g.SettlementCount()),
	}
	w.enqueue(origin, 0)

	return w, nil
}

// enqueue marks name visited at depth d and appends it to the frontier.
func (w *walker) enqueue(name string, d int) {
	w.depth[name] = d
	w.queue = append(w.queue, hop{name: name, depth: d})
}

// dequeue pops the oldest frontier entry (strict FIFO).
func (w *walker) dequeue() hop {
	h := w.queue[0]
	w.queue = w.queue[1:]

	return h
}

// MinHighways returns the minimum number of highways between from and to.
//
// The count is 0 when from == to. When both settlements exist but no
// path connects them, MinHighways returns Unreachable with a nil error.
// Unknown endpoints return ErrSettlementNotFound naming the offender.
// Complexity: O(S + H)
func MinHighways(g *core.Graph, from, to string, opts ...Option) (int, error) {
	w, err := newWalker(g, from, opts)
	if err != nil {
		return 0, err
	}
	if !g.HasSettlement(to) {
		return 0, fmt.Errorf("%w: %q", ErrSettlementNotFound, to)
	}
	if from == to {
		return 0, nil
	}

	for len(w.queue) > 0 {
		// cancellation check (once per dequeue)
		select {
		case <-w.opts.Ctx.Done():
			return 0, w.opts.Ctx.Err()
		default:
		}

		h := w.dequeue()
		neighbors, err := w.graph.Neighbors(h.name)
		if err != nil {
			return 0, fmt.Errorf("routes: neighbors of %q: %w", h.name, err)
		}
		for _, nbr := range neighbors {
			// target sighted among neighbors: one highway past h.
			if nbr == to {
				return h.depth + 1, nil
			}
			if _, seen := w.depth[nbr]; !seen {
				w.enqueue(nbr, h.depth+1)
			}
		}
	}

	return Unreachable, nil
}

// Distances returns the highway count from origin to every reachable
// settlement, origin included at distance 0. Settlements with no route
// from origin do not appear in the map.
// Complexity: O(S + H)
func Distances(g *core.Graph, origin string, opts ...Option) (map[string]int, error) {
	w, err := newWalker(g, origin, opts)
	if err != nil {
		return nil, err
	}

	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return nil, w.opts.Ctx.Err()
		default:
		}

		h := w.dequeue()
		neighbors, err := w.graph.Neighbors(h.name)
		if err != nil {
			return nil, fmt.Errorf("routes: neighbors of %q: %w", h.name, err)
		}
		for _, nbr := range neighbors {
			if _, seen := w.depth[nbr]; !seen {
				w.enqueue(nbr, h.depth+1)
			}
		}
	}

	return w.depth, nil
}
