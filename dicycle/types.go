// Package dicycle defines types and options for fixed-length directed-cycle
// enumeration: the canonical search, the homodromy restriction, and the
// orientation classifier over undirected cycles.
package dicycle

import (
	"errors"
	"iter"

	"github.com/katalvlaran/cyclath/core"
)

// MinCycleSize is the smallest meaningful directed cycle length: two
// vertices joined by a pair of antiparallel edges.
const MinCycleSize = 2

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to Enumerate
	// or Classify.
	ErrGraphNil = errors.New("dicycle: graph is nil")

	// ErrCycleSize indicates a requested cycle length below MinCycleSize.
	ErrCycleSize = errors.New("dicycle: cycle size must be at least 2")

	// ErrEpsilon indicates a negative homodromy tolerance.
	ErrEpsilon = errors.New("dicycle: epsilon must be non-negative")

	// ErrMissingVec indicates that homodromy filtering reached an edge that
	// carries no displacement vector. The enumeration stops at that point;
	// nothing is skipped silently.
	ErrMissingVec = errors.New("dicycle: edge displacement vector missing")
)

// Cycle is one directed cycle in canonical rotation: the path-ordered member
// labels starting at the minimum label, implicitly closed by the edge from
// the last member back to the first. A cycle and its reverse are distinct.
type Cycle []string

// OrientedCycle pairs an undirected cycle with its per-step orientation
// against the digraph: Forward[i] reports whether the directed edge
// (Cycle[i-1] → Cycle[i]) exists, index -1 wrapping to the last member.
type OrientedCycle struct {
	Cycle   Cycle
	Forward []bool
}

// Enumerator is the collaborator contract Classify consumes: a lazy stream
// of simple cycles (each exactly once) in the undirected view of g, of
// length at most maxSize. ucycle.Enumerate satisfies it.
type Enumerator func(g *core.Graph, maxSize int) iter.Seq2[[]string, error]

// Option configures optional behavior of Enumerate.
// Use with Enumerate(g, size, opts...).
type Option func(*SearchOptions)

// SearchOptions holds configurable parameters for the canonical cycle search.
type SearchOptions struct {
	// Homodromic restricts the stream to cycles whose displacement vectors
	// sum to zero within Epsilon. Requires every traversed edge to carry a
	// vector; a missing one terminates the stream with ErrMissingVec.
	Homodromic bool

	// Epsilon is the absolute per-component tolerance of the zero test.
	// Defaults to core.DefaultEpsilon.
	Epsilon float64
}

// DefaultOptions returns a SearchOptions struct with:
//   - No homodromy restriction
//   - Epsilon = core.DefaultEpsilon (1e-9)
func DefaultOptions() SearchOptions {
	return SearchOptions{
		Homodromic: false,
		Epsilon:    core.DefaultEpsilon,
	}
}

// WithHomodromic returns an Option that restricts enumeration to homodromic
// cycles (zero displacement sum around the closed path).
func WithHomodromic() Option {
	return func(o *SearchOptions) {
		o.Homodromic = true
	}
}

// WithEpsilon returns an Option that sets the zero-sum tolerance.
// Negative values are rejected by Enumerate with ErrEpsilon.
func WithEpsilon(eps float64) Option {
	return func(o *SearchOptions) {
		o.Epsilon = eps
	}
}

// ClassifyOption configures optional behavior of Classify.
type ClassifyOption func(*ClassifyOptions)

// ClassifyOptions holds configurable parameters for orientation
// classification.
type ClassifyOptions struct {
	// Enumerator supplies the undirected cycles to classify. Nil selects
	// the default collaborator, ucycle.Enumerate over the graph's
	// undirected view.
	Enumerator Enumerator

	// Positions are cell-relative node coordinates forwarded to the default
	// collaborator: when set, boundary-spanning cycles are dropped before
	// classification. Ignored when a custom Enumerator is installed (wire
	// positions into the enumerator itself in that case).
	Positions map[string]core.Vec
}

// DefaultClassifyOptions returns a ClassifyOptions struct with the default
// collaborator and no position filtering.
func DefaultClassifyOptions() ClassifyOptions {
	return ClassifyOptions{
		Enumerator: nil,
		Positions:  nil,
	}
}

// WithEnumerator returns a ClassifyOption that installs a custom undirected
// cycle source. Passing nil has no effect (the default is retained).
func WithEnumerator(fn Enumerator) ClassifyOption {
	return func(o *ClassifyOptions) {
		if fn != nil {
			o.Enumerator = fn
		}
	}
}

// WithPositions returns a ClassifyOption that forwards node positions to
// the default collaborator for periodic-boundary filtering.
func WithPositions(pos map[string]core.Vec) ClassifyOption {
	return func(o *ClassifyOptions) {
		o.Positions = pos
	}
}
