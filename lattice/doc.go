// Package lattice provides a deterministic test-bed topology for cycle
// enumeration: an n×n×n cubic lattice with periodic boundary conditions,
// rendered as a core.Graph digraph. It supports:
//
//   - Fractional site coordinates (x/n, y/n, z/n) on the unit cell
//   - Nearest-neighbor adjacency under the minimum-image convention,
//     with a configurable cutoff radius
//   - Seeded pseudo-random edge orientation that is stable across
//     platforms and independent of construction order
//   - Per-edge displacement vectors (minimum-image, tail→head), the
//     attribute homodromy filtering consumes
//   - A Positions() map feeding ucycle's periodic-boundary filter
//
// A lattice digraph is the canonical workload for the enumeration
// packages: plaquettes (square faces) close with zero displacement sum,
// while straight wrap-around rings of length n span the boundary and sum
// to a whole lattice vector instead. Fixing the seed fixes every count.
package lattice
