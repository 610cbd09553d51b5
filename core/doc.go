// Package core provides a thread-safe in-memory simple digraph tailored to
// cycle enumeration: string vertex IDs, at most one directed edge per
// ordered pair, no self-loops, and an optional per-edge displacement vector.
//
// The Graph G = (V,E) keeps a deliberately small surface:
//
//   - Constant-time edge probes via nested maps: out[from][to] = *Edge
//   - A reverse index (in[to][from]) so the undirected view costs O(deg)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency
//     (muEdgeAdj) to minimize lock contention under concurrent readers
//   - Deterministic iteration — Vertices(), Edges(), Successors() and
//     UndirectedNeighbors() all return sorted results
//
// Why a dedicated container?
//
//   - Cycle search canonicalizes by the total order on vertex IDs; sorted
//     accessors make every traversal reproducible without extra bookkeeping.
//   - Homodromy filtering reads one displacement vector per traversed edge;
//     EdgeVec is an O(1), allocation-free probe.
//   - Malformed inputs (self-loops, parallel edges, ragged vector
//     dimensions) are rejected at construction, so enumeration never has to
//     re-validate topology.
//
// Vertex & edge lifecycle:
//
//	AddVertex(id string) error                      // O(1), idempotent
//	AddEdge(from, to string, opts ...EdgeOption) error // O(1), auto-adds endpoints
//	HasVertex(id string) bool                       // O(1)
//	HasEdge(from, to string) bool                   // O(1)
//
// Queries:
//
//	Successors(id) ([]string, error)          // O(d log d), sorted
//	UndirectedNeighbors(id) ([]string, error) // O(d log d), sorted, ignores direction
//	EdgeVec(from, to) (Vec, bool)             // O(1), read-only view
//	Vertices() []string                       // O(V log V), sorted
//	Edges() []Edge                            // O(E log E), sorted copies
//	VertexCount() / EdgeCount() / VecDim()    // O(1)
//
// EdgeOptions:
//
//	WithVec(v Vec) - attach a displacement vector (copied on insert).
//
// The Vec type is the shared n-dimensional tuple: elementwise arithmetic,
// dot product, a minimum-image wrap for periodic cells, and tolerance-based
// zero testing (DefaultEpsilon = 1e-9).
//
// Errors:
//
//	ErrEmptyVertexID       - zero-length vertex ID
//	ErrVertexNotFound      - missing vertex
//	ErrLoopNotAllowed      - self-loop attempted
//	ErrMultiEdgeNotAllowed - duplicate from→to edge attempted
//	ErrVecDimension        - empty or mismatched displacement vector
package core
