// File: methods_edges.go
// Role: Edge lifecycle & queries.
//
// Invariants enforced here:
//   - Simple digraph only: no self-loops, at most one edge per ordered pair.
//   - Uniform vector dimension: the first vectored edge fixes VecDim; later
//     edges must match it or carry no vector at all.
//
// Concurrency:
//   - Mutators take muVert then muEdgeAdj (the global lock order).
//   - Queries touch muEdgeAdj only.
package core

import "sort"

// AddEdge inserts the directed edge from→to, creating missing endpoints.
//
// Validation happens before any mutation, so a failed call leaves the graph
// untouched. The displacement vector attached via WithVec is copied; callers
// may reuse their slice afterwards.
//
// Errors:
//   - ErrEmptyVertexID       - from or to is empty.
//   - ErrLoopNotAllowed      - from == to.
//   - ErrMultiEdgeNotAllowed - the edge from→to already exists.
//   - ErrVecDimension        - vector is empty or disagrees with VecDim.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, opts ...EdgeOption) error {
	// 1) Pure validation first.
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to {
		return ErrLoopNotAllowed
	}
	e := &Edge{From: from, To: to}
	for _, opt := range opts {
		opt(e)
	}
	if e.Vec != nil && len(e.Vec) == 0 {
		return ErrVecDimension
	}

	// 2) Lock both catalogs in the global order for an atomic insert.
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, dup := g.out[from][to]; dup {
		return ErrMultiEdgeNotAllowed
	}
	if e.Vec != nil && g.vecDim != 0 && len(e.Vec) != g.vecDim {
		return ErrVecDimension
	}

	// 3) Mutate: endpoints, dimension, storage, indexes.
	g.vertices[from] = struct{}{}
	g.vertices[to] = struct{}{}
	if e.Vec != nil {
		if g.vecDim == 0 {
			g.vecDim = len(e.Vec)
		}
		e.Vec = e.Vec.Clone()
	}
	if g.out[from] == nil {
		g.out[from] = make(map[string]*Edge)
	}
	g.out[from][to] = e
	if g.in[to] == nil {
		g.in[to] = make(map[string]struct{})
	}
	g.in[to][from] = struct{}{}
	g.edgeCount++

	return nil
}

// HasEdge reports whether the directed edge from→to exists.
// Empty IDs report false.
//
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.out[from][to]

	return ok
}

// EdgeVec reports the displacement vector of the directed edge from→to.
// ok is false when the edge is absent or carries no vector.
//
// The returned slice is the stored vector, not a copy; callers must treat
// it as read-only. This keeps traversal hot paths allocation-free.
//
// Complexity: O(1).
func (g *Graph) EdgeVec(from, to string) (vec Vec, ok bool) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	e, present := g.out[from][to]
	if !present || e.Vec == nil {
		return nil, false
	}

	return e.Vec, true
}

// Edges returns value copies of all edges, sorted by (From, To) ascending.
// Vectors in the copies are cloned, so the result is safe to retain and
// mutate. Intended for inspection and tests, not hot paths.
//
// Complexity: O(E log E), Space O(E).
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	list := make([]Edge, 0, g.edgeCount)
	for _, bucket := range g.out {
		for _, e := range bucket {
			list = append(list, Edge{From: e.From, To: e.To, Vec: e.Vec.Clone()})
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].From != list[j].From {
			return list[i].From < list[j].From
		}
		return list[i].To < list[j].To
	})

	return list
}

// EdgeCount returns the current number of directed edges.
//
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.edgeCount
}

// VecDim returns the displacement-vector dimension established by the first
// vectored edge, or 0 when no edge carries a vector yet.
//
// Complexity: O(1).
func (g *Graph) VecDim() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.vecDim
}
