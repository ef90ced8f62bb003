// Package errors defines all exported error sentinels for the hyperloglog
// library.
//
// This is the single source of truth for error values. The top-level
// hyperloglog package returns these, ensuring errors.Is checks work across
// package boundaries.
package errors

import "errors"

var (
	// ErrNilSketch is returned when an operation receives a nil *Sketch.
	ErrNilSketch = errors.New("hyperloglog: nil sketch")

	// ErrInvalidPrecision is returned by New when the configured precision
	// is outside [4, 16].
	ErrInvalidPrecision = errors.New("hyperloglog: precision out of range [4,16]")

	// ErrUninitialized is returned when an operation is invoked on a sketch
	// whose register array is absent: either never allocated, or already
	// freed by Release.
	ErrUninitialized = errors.New("hyperloglog: sketch registers are not allocated")

	// ErrAllocation is returned when the register array cannot be
	// allocated.
	ErrAllocation = errors.New("hyperloglog: register allocation failed")
)

// Describe maps an error to a stable label suitable for logs and metrics.
// A nil error maps to "OK"; errors not defined by this package map to
// "Unknown".
func Describe(err error) string {
	switch {
	case err == nil:
		return "OK"
	case errors.Is(err, ErrNilSketch):
		return "NilSketch"
	case errors.Is(err, ErrInvalidPrecision):
		return "InvalidPrecision"
	case errors.Is(err, ErrUninitialized):
		return "Uninitialized"
	case errors.Is(err, ErrAllocation):
		return "AllocationFailure"
	default:
		return "Unknown"
	}
}
