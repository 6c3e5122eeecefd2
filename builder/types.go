// Package builder option and error definitions for dataset ingestion.
package builder

import (
	"errors"
	"io"
	"log/slog"
)

// Separator divides the two fields of every record: space, colon, space.
const Separator = " : "

// Sentinel errors for graph construction.
var (
	// ErrNilReader is returned when a nil input stream is supplied.
	ErrNilReader = errors.New("builder: nil input reader")

	// ErrMissingInput is returned by BuildFiles when a dataset cannot be opened.
	ErrMissingInput = errors.New("builder: input file missing")

	// ErrScan is returned when reading an input stream fails mid-scan.
	ErrScan = errors.New("builder: reading input failed")
)

// SkipKind classifies a dropped input line.
type SkipKind uint8

const (
	// SkipMalformed marks a line without exactly two non-empty fields
	// around the separator.
	SkipMalformed SkipKind = iota

	// SkipBadNumber marks a population that fails int64 parsing or is negative.
	SkipBadNumber

	// SkipUnknownSettlement marks a road naming an unregistered settlement.
	SkipUnknownSettlement

	// SkipSelfLoop marks a road connecting a settlement to itself.
	SkipSelfLoop
)

// String returns a short reason label for logs and diagnostics.
func (k SkipKind) String() string {
	switch k {
	case SkipMalformed:
		return "malformed"
	case SkipBadNumber:
		return "bad-number"
	case SkipUnknownSettlement:
		return "unknown-settlement"
	case SkipSelfLoop:
		return "self-loop"
	default:
		return "unknown"
	}
}

// Option configures ingestion behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize a build.
type Options struct {
	// Logger receives per-line skip records at Debug level and a build
	// summary at Info level.
	Logger *slog.Logger

	// OnSkip is called once per dropped line with its classification and
	// the trimmed line text.
	OnSkip func(kind SkipKind, text string)
}

// DefaultOptions returns Options with a discard logger and a no-op skip hook.
func DefaultOptions() Options {
	return Options{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		OnSkip: func(SkipKind, string) {},
	}
}

// WithLogger directs build diagnostics to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnSkip registers a callback to run for every dropped line.
func WithOnSkip(fn func(kind SkipKind, text string)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSkip = fn
		}
	}
}
