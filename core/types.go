// Package core declares the Settlement record, the Graph container,
// sentinel errors, and the NewGraph constructor.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyName indicates an empty settlement name was provided.
	ErrEmptyName = errors.New("core: settlement name is empty")

	// ErrNegativePopulation indicates a population below zero.
	ErrNegativePopulation = errors.New("core: population is negative")

	// ErrSettlementNotFound indicates an operation referenced a non-existent settlement.
	ErrSettlementNotFound = errors.New("core: settlement not found")

	// ErrSelfLoop indicates a highway whose endpoints are the same settlement.
	ErrSelfLoop = errors.New("core: self-loop not allowed")
)

// Settlement is a node in the highway graph.
//
// Name uniquely identifies the settlement within its Graph; comparisons are
// exact (case- and whitespace-sensitive). Population is int64 so that island
// totals cannot overflow on realistic datasets.
//
// A Settlement carries no traversal state; visited bookkeeping belongs to
// the caller of each analysis, never to the record itself.
type Settlement struct {
	// Name is the unique identifier for this Settlement.
	Name string

	// Population is the settlement's resident count, never negative.
	Population int64
}

// Graph is the in-memory settlement registry with undirected highways.
//
// Highways are unweighted, symmetric, loop-free, and stored at most once
// per pair. The single RWMutex guards the registry, the adjacency relation,
// and the declaration-order index together; they change in lockstep.
type Graph struct {
	mu sync.RWMutex

	// settlements maps Name → record. The record is the sole owner of
	// population state; updates go through AddSettlement.
	settlements map[string]*Settlement

	// adjacency[a][b] exists iff adjacency[b][a] exists.
	adjacency map[string]map[string]struct{}

	// order holds names in first-declared order for stable enumeration.
	order []string

	// highways counts unordered connected pairs.
	highways int
}

// NewGraph creates an empty settlement graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		settlements: make(map[string]*Settlement),
		adjacency:   make(map[string]map[string]struct{}),
	}
}
