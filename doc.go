// Package archipelago is an in-memory toolkit for settlement networks:
// ingest population and road datasets, build an undirected highway graph,
// and answer structural questions about it.
//
// 🚀 What is archipelago?
//
//	A small, thread-safe analysis library that brings together:
//		• Core primitives: register settlements & highways, mutate safely under locks
//		• Ingestion: permissive line-oriented text datasets with per-record recovery
//		• Islands: connected-component discovery with population aggregation
//		• Routes: fewest-highway queries via breadth-first search
//
// ✨ Why choose archipelago?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – R/W locks, per-call traversal state, in-code docs & hooks
//   - Deterministic – first-declared enumeration, sorted neighbor expansion
//   - Pure analysis core – no I/O or globals below the builder
//
// Under the hood, everything is organized under four public packages plus
// application glue:
//
//	core/     — Settlement and Graph types & thread-safe primitives
//	builder/  — population + road text → core.Graph
//	islands/  — connected components and per-island population totals
//	routes/   — fewest-highway BFS queries
//	internal/ — scenario files, report rendering, HTTP API, CLI wiring
//	cmd/      — the archipelago command
//
// Quick ASCII example:
//
//	    Ash───Birch      Drift
//	     │      │
//	    Cedar───┘
//
//	a triangle of three settlements plus one isolated outpost: two islands.
//
// Dive into each package's doc.go for contracts, complexity notes, and
// runnable examples.
package archipelago
