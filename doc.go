// Package cyclath is an in-memory toolkit for enumerating cycles in
// oriented graphs — from core digraph primitives to homodromy filtering
// and per-step orientation classification.
//
// 🚀 What is cyclath?
//
//	A thread-safe, deterministic cycle-enumeration library that brings together:
//		• Core primitives: simple digraphs with per-edge displacement vectors
//		• Directed search: every simple cycle of an exact length, streamed lazily
//		• Homodromy: keep only cycles whose displacements cancel around the loop
//		• Undirected search: bounded-length cycles of the undirected view
//		• Orientation: classify each undirected cycle step against the digraph
//		• Lattices: seeded periodic cubic fixtures for experiments and tests
//
// ✨ Why choose cyclath?
//
//   - Canonical once-only results – no duplicate rotations; a reversed twin
//     appears only when its edges truly exist
//   - Lazy pull streams – break out of the range loop and the search stops
//   - Deterministic order – sorted walks make every run reproducible
//   - Rock-solid guarantees – R/W locks on the graph, sentinel errors everywhere
//
// Under the hood, everything is organized under four subpackages:
//
//	core/    — digraph storage, displacement vectors & thread-safe accessors
//	dicycle/ — exact-length directed cycles, homodromy filter & classifier
//	ucycle/  — bounded-length undirected cycles with periodic-cell filtering
//	lattice/ — seeded n×n×n periodic lattice digraph generator
//
// Quick ASCII example:
//
//	    A──▶B
//	    ▲   │
//	    │   ▼
//	    D◀──C
//
//	is one directed 4-cycle; reverse any single edge and the square stays
//	an undirected cycle but stops being a directed one.
//
//	go get github.com/katalvlaran/cyclath
package cyclath
