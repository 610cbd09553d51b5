// Package ucycle defines types and options for undirected simple-cycle
// enumeration over the undirected view of a core.Graph.
package ucycle

import (
	"errors"

	"github.com/katalvlaran/cyclath/core"
)

// MinCycleSize is the smallest simple undirected cycle: a triangle. Two
// vertices cannot close an undirected cycle without reusing their edge.
const MinCycleSize = 3

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to Enumerate.
	ErrGraphNil = errors.New("ucycle: graph is nil")

	// ErrCycleSize indicates a maximum cycle size below MinCycleSize.
	ErrCycleSize = errors.New("ucycle: max cycle size must be at least 3")

	// ErrEpsilon indicates a negative locality tolerance.
	ErrEpsilon = errors.New("ucycle: epsilon must be non-negative")

	// ErrMissingPosition indicates that position filtering reached a vertex
	// absent from the positions map. The enumeration stops at that point.
	ErrMissingPosition = errors.New("ucycle: node position missing")

	// ErrPositionDim indicates an empty position vector or one whose
	// dimension disagrees with positions seen earlier in the walk.
	ErrPositionDim = errors.New("ucycle: node position dimension mismatch")
)

// Option configures optional behavior of Enumerate.
// Use with Enumerate(g, maxSize, opts...).
type Option func(*EnumOptions)

// EnumOptions holds configurable parameters for undirected cycle
// enumeration.
type EnumOptions struct {
	// Positions maps vertex IDs to cell-relative coordinates. When set,
	// only cycles whose minimum-image steps sum to zero are emitted, which
	// drops cycles that wrap around a periodic boundary. Every vertex
	// entering a walk must have a position; a missing one terminates the
	// stream with ErrMissingPosition.
	Positions map[string]core.Vec

	// Epsilon is the absolute per-component tolerance of the locality test.
	// Defaults to core.DefaultEpsilon.
	Epsilon float64
}

// DefaultOptions returns an EnumOptions struct with:
//   - No position filtering
//   - Epsilon = core.DefaultEpsilon (1e-9)
func DefaultOptions() EnumOptions {
	return EnumOptions{
		Positions: nil,
		Epsilon:   core.DefaultEpsilon,
	}
}

// WithPositions returns an Option that enables periodic-boundary filtering
// with the given cell-relative node coordinates.
func WithPositions(pos map[string]core.Vec) Option {
	return func(o *EnumOptions) {
		o.Positions = pos
	}
}

// WithEpsilon returns an Option that sets the locality tolerance.
// Negative values are rejected by Enumerate with ErrEpsilon.
func WithEpsilon(eps float64) Option {
	return func(o *EnumOptions) {
		o.Epsilon = eps
	}
}
