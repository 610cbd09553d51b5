// Package lattice - deterministic orientation bits.
//
// This file centralizes the pseudo-random edge orientation for lattice
// construction.
//
// Goals:
//   - Determinism: same seed ⇒ identical lattice on every platform.
//   - Order independence: each candidate pair derives its own bit from
//     (seed, pair key), so no shared generator state is consumed and the
//     construction order cannot shift later decisions.
//   - Safety: no panics or logging; pure integer mixing.
package lattice

// defaultSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultSeed int64 = 1

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// value.
//
// Rationale:
//   - We want independent decisions derived from one base seed (here, one
//     orientation coin per vertex pair).
//   - A SplitMix64-style avalanche mix eliminates correlations between
//     nearby stream identifiers.
//
// Notes:
//   - Constants are the canonical SplitMix64 multipliers/finalizer. They
//     provide strong bit diffusion; small changes in inputs produce large,
//     well-distributed output changes.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	// SplitMix64-style finalizer; see Vigna 2014 for the constants and rationale.
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// orientBit reports the orientation coin for one vertex pair:
// true directs the edge from the lower to the higher site index.
//
// Complexity: O(1).
func orientBit(seed int64, pairKey uint64) bool {
	return uint64(deriveSeed(seed, pairKey))&1 == 1
}
