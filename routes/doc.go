// Package routes answers fewest-highway queries over a settlement graph
// with breadth-first search.
//
// What
//
//   - MinHighways(g, from, to): minimum number of highways between two
//     registered settlements. 0 when from == to, Unreachable (-1) when
//     the endpoints sit on different islands.
//   - Distances(g, origin): highway count from origin to every reachable
//     settlement, origin included at 0. Settlements on other islands are
//     absent from the map. Lengths only; no path reconstruction.
//
// Mechanics
//
//	Strict first-in-first-out frontier. A settlement is marked visited at
//	enqueue time, so it can never be enqueued twice. Each dequeued
//	settlement's neighbors are compared against the target before any
//	enqueue; the first sighting ends the query at that depth plus one.
//
// Determinism
//
//	core.Graph.Neighbors returns sorted names, so the expansion order,
//	and therefore the full Distances map, is reproducible run to run.
//
// Concurrency
//
//	The frontier and visited set are private to each call; any number of
//	queries may run concurrently over one built graph.
//
// Complexity (S = settlements, H = highways)
//
//   - Time:   O(S + H); Memory: O(S).
//
// Options
//
//   - WithContext(ctx): cancel a long query; the context error surfaces.
//
// Errors
//
//   - ErrGraphNil            - nil graph pointer.
//   - ErrSettlementNotFound  - an endpoint name is not registered. The
//     Unreachable sentinel is reserved for registered endpoints with no
//     connecting path; unknown names always fail loudly instead.
package routes
