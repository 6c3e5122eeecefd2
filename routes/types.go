// Package routes option and error definitions.
package routes

import (
	"context"
	"errors"
)

// Unreachable is returned by MinHighways when both endpoints exist but
// no sequence of highways connects them.
const Unreachable = -1

// Sentinel errors for route queries.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("routes: graph is nil")

	// ErrSettlementNotFound is returned when an endpoint is not registered.
	ErrSettlementNotFound = errors.New("routes: settlement not found")
)

// Option configures route queries via functional arguments.
type Option func(*Options)

// Options holds parameters to customize a query.
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
