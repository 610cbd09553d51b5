// Package core defines the central Graph and Edge types and provides
// thread-safe primitives for building and querying simple digraphs.
//
// All core APIs use separate sync.RWMutex locks internally (muVert for
// vertices, muEdgeAdj for edges and adjacency), so concurrent readers
// proceed with minimal contention while a builder goroutine mutates.
//
// This file declares Edge, Graph, EdgeOption, sentinel errors, and the
// NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrLoopNotAllowed      - self-loop attempted (from == to).
//	ErrMultiEdgeNotAllowed - parallel edge attempted (same from→to twice).
//	ErrVecDimension        - displacement vector dimension conflict.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted; Graph stores
	// simple digraphs only.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a duplicate from→to edge was attempted;
	// Graph stores simple digraphs only.
	ErrMultiEdgeNotAllowed = errors.New("core: parallel edge not allowed")

	// ErrVecDimension indicates a displacement vector whose dimension is empty
	// or disagrees with the dimension already established by earlier edges.
	ErrVecDimension = errors.New("core: displacement vector dimension mismatch")
)

// Edge represents a directed connection between two vertices.
//
// Endpoints are From→To. Vec is the optional displacement attribute carried
// by the edge; nil means the edge has no displacement vector.
type Edge struct {
	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Vec is the displacement from From to To, or nil when absent.
	Vec Vec
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithVec attaches a displacement vector to the edge.
// The vector is copied by AddEdge; callers may reuse their slice.
func WithVec(v Vec) EdgeOption {
	return func(e *Edge) { e.Vec = v }
}

// Graph is an in-memory simple digraph: string vertex IDs, at most one
// directed edge per ordered vertex pair, no self-loops. Edges optionally
// carry an n-dimensional displacement vector; the first vectored edge fixes
// the dimension for the whole graph.
//
// muVert protects the vertex set; muEdgeAdj protects edge storage and the
// adjacency indexes. Mutators take both in that order so read-heavy
// traversals (successor walks, edge probes) contend only on muEdgeAdj.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards out, in, edgeCount, vecDim

	// Storage
	vertices map[string]struct{}            // vertex ID → presence
	out      map[string]map[string]*Edge    // from → to → edge
	in       map[string]map[string]struct{} // to → set of froms

	edgeCount int
	vecDim    int // 0 until the first vectored edge establishes it
}

// NewGraph creates an empty simple digraph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices: make(map[string]struct{}),
		out:      make(map[string]map[string]*Edge),
		in:       make(map[string]map[string]struct{}),
	}
}
