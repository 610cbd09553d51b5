// File: methods_adjacent.go
// Role: Adjacency queries (directed successors, undirected view).
//
// Determinism:
//   - Both queries return IDs sorted lexicographically ascending, so
//     traversals seeded from them are reproducible run to run.
package core

import (
	"fmt"
	"sort"
)

// Successors returns the IDs reachable from id along one directed edge,
// sorted ascending.
//
// Errors:
//   - ErrEmptyVertexID  - id is empty.
//   - ErrVertexNotFound - id is not a vertex of the graph.
//
// Complexity: O(d log d) for out-degree d.
func (g *Graph) Successors(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	_, ok := g.vertices[id]
	g.muVert.RUnlock()
	if !ok {
		return nil, fmt.Errorf("core: successors of %q: %w", id, ErrVertexNotFound)
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	ids := make([]string, 0, len(g.out[id]))
	for to := range g.out[id] {
		ids = append(ids, to)
	}
	sort.Strings(ids)

	return ids, nil
}

// UndirectedNeighbors returns the IDs adjacent to id when edge direction is
// ignored (the union of out- and in-neighbors), sorted ascending. This is
// the undirected view consumed by cycle enumeration over mixed-direction
// topologies.
//
// Errors:
//   - ErrEmptyVertexID  - id is empty.
//   - ErrVertexNotFound - id is not a vertex of the graph.
//
// Complexity: O(d log d) for total degree d.
func (g *Graph) UndirectedNeighbors(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	_, ok := g.vertices[id]
	g.muVert.RUnlock()
	if !ok {
		return nil, fmt.Errorf("core: undirected neighbors of %q: %w", id, ErrVertexNotFound)
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	seen := make(map[string]struct{}, len(g.out[id])+len(g.in[id]))
	for to := range g.out[id] {
		seen[to] = struct{}{}
	}
	for from := range g.in[id] {
		seen[from] = struct{}{}
	}

	ids := make([]string, 0, len(seen))
	for n := range seen {
		ids = append(ids, n)
	}
	sort.Strings(ids)

	return ids, nil
}
