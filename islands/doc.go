// Package islands discovers the connected components of a settlement
// graph and aggregates their populations.
//
// What
//
//   - Islands(g): every component in discovery order, each an Island with
//     a Members set and a Population sum.
//   - Count(g): number of components. An isolated settlement is its own
//     island of one.
//   - Populations(g): per-island sums, discovery order. Presentation
//     layers sort; the engine never does.
//   - Locate(g, name): index of the island containing name.
//
// Why
//
//   - The archipelago questions "how many islands?" and "how many people
//     per island?" are component queries over the highway relation.
//
// Determinism
//
//	Discovery order follows core.Graph.Settlements(), which is
//	first-declared order, and each sweep expands neighbors in the sorted
//	order core.Graph.Neighbors() returns. Two calls over the same graph
//	yield identical results.
//
// Concurrency
//
//	All traversal state (the seen set, the result under construction) is
//	private to each call. Any number of islands analyses may run
//	concurrently over one built graph.
//
// Complexity (S = settlements, H = highways)
//
//   - Time:   O(S + H), each settlement and highway swept once.
//   - Memory: O(S) for the seen set and result.
//
// Options
//
//   - WithContext(ctx): cancel a sweep early; the context error surfaces.
//
// Errors
//
//   - ErrGraphNil            - nil graph pointer.
//   - ErrSettlementNotFound  - Locate got an unregistered name.
package islands
