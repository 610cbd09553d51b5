// Package lattice defines options and sentinel errors for the periodic
// cubic lattice fixture generator.
package lattice

import "errors"

var (
	// ErrLatticeSize indicates a side length too small for a meaningful
	// periodic cell: below 3, minimum-image neighbors degenerate into their
	// own mirror images.
	ErrLatticeSize = errors.New("lattice: side length must be at least 3")

	// ErrCutoff indicates a negative adjacency cutoff.
	ErrCutoff = errors.New("lattice: cutoff must not be negative")
)

// Option configures optional behavior of New.
// Use with New(n, opts...).
type Option func(*LatticeOptions)

// LatticeOptions holds configurable parameters for lattice construction.
type LatticeOptions struct {
	// Seed drives the per-pair orientation bits. Zero selects the fixed
	// default seed, keeping zero-value construction reproducible.
	Seed int64

	// Cutoff is the adjacency radius in cell-relative units: two sites are
	// connected when the squared length of their minimum-image displacement
	// is below Cutoff². Zero selects 1.2/n, which admits nearest neighbors
	// only for any side length.
	Cutoff float64
}

// DefaultOptions returns a LatticeOptions struct with:
//   - The fixed default seed
//   - Automatic cutoff (1.2/n, nearest neighbors only)
func DefaultOptions() LatticeOptions {
	return LatticeOptions{
		Seed:   defaultSeed,
		Cutoff: 0,
	}
}

// WithSeed returns an Option that sets the orientation seed.
// Policy: seed==0 ⇒ the fixed default seed; otherwise used verbatim.
func WithSeed(seed int64) Option {
	return func(o *LatticeOptions) {
		o.Seed = seed
	}
}

// WithCutoff returns an Option that overrides the adjacency radius.
// Zero restores the automatic cutoff; negative values are rejected by New
// with ErrCutoff.
func WithCutoff(cutoff float64) Option {
	return func(o *LatticeOptions) {
		o.Cutoff = cutoff
	}
}
