// Package core defines the Settlement registry and the undirected highway
// Graph that every analysis package in archipelago operates on.
//
// What
//
//   - Settlement: a named node with a 64-bit population count.
//   - Graph: thread-safe registry of settlements plus a symmetric,
//     loop-free, duplicate-free adjacency relation ("highways").
//   - Enumeration surfaces:
//   - Settlements() returns names in first-declared order, so reports
//     mirror the order of the ingest data.
//   - Neighbors(name) returns adjacent names sorted lexicographically
//     for reproducible traversal.
//
// Why
//
//   - One registry owns all settlement records; builders create or update
//     by name, analyses look up by name. No duplicate nodes, ever.
//   - Highways are stored once per direction pair and added idempotently,
//     so repeated road records cannot inflate degree or edge counts.
//
// Lifecycle
//
//	A Graph is mutated during construction (builder package) and treated
//	as read-only afterwards. Traversal state never lives on the graph:
//	islands and routes keep per-call visited sets, so any number of
//	analyses may run concurrently over one built Graph.
//
// Complexity (S = settlements, H = highways)
//
//   - AddSettlement, Connect, lookups: O(1) amortized.
//   - Settlements: O(S); Neighbors: O(deg·log deg) for the sort.
//   - Memory: O(S + H).
//
// Errors
//
//   - ErrEmptyName           - settlement name is the empty string.
//   - ErrNegativePopulation  - population below zero.
//   - ErrSettlementNotFound  - operation referenced an unknown settlement.
//   - ErrSelfLoop            - highway with equal endpoints.
package core
