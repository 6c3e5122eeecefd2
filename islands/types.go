// Package islands option and error definitions.
package islands

import (
	"context"
	"errors"

	mapset "github.com/deckarep/golang-set/v2"
)

// Sentinel errors for island discovery.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("islands: graph is nil")

	// ErrSettlementNotFound is returned by Locate for an unregistered name.
	ErrSettlementNotFound = errors.New("islands: settlement not found")
)

// Island is one connected component of the highway graph.
type Island struct {
	// Members holds the names of every settlement on the island.
	Members mapset.Set[string]

	// Population is the sum over all members.
	Population int64
}

// Option configures island discovery via functional arguments.
type Option func(*Options)

// Options holds parameters to customize a sweep.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context
}

// DefaultOptions returns Options with a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}
