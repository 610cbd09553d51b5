package core_test

import (
	"testing"

	"github.com/katalvlaran/cyclath/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAddVertex_EmptyID verifies the empty-ID sentinel.
func TestAddVertex_EmptyID(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
}

// TestAddVertex_Idempotent verifies that re-adding a vertex is a no-op.
func TestAddVertex_Idempotent(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A"))

	assert.Equal(t, 1, g.VertexCount())
	assert.True(t, g.HasVertex("A"))
	assert.False(t, g.HasVertex("B"))
	assert.False(t, g.HasVertex(""))
}

// TestAddEdge_AutoAddsEndpoints verifies that AddEdge creates missing
// endpoints and records the directed adjacency only.
func TestAddEdge_AutoAddsEndpoints(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B"))

	assert.Equal(t, 2, g.VertexCount())
	assert.Equal(t, 1, g.EdgeCount())
	assert.True(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "A"))
}

// TestAddEdge_RejectsLoop verifies the simple-digraph loop guard and that a
// failed insert leaves the graph untouched.
func TestAddEdge_RejectsLoop(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddEdge("A", "A"), core.ErrLoopNotAllowed)
	assert.Equal(t, 0, g.VertexCount())
	assert.Equal(t, 0, g.EdgeCount())
}

// TestAddEdge_RejectsParallel verifies that a duplicate from→to edge is
// rejected while the reverse direction remains legal.
func TestAddEdge_RejectsParallel(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B"))

	assert.ErrorIs(t, g.AddEdge("A", "B"), core.ErrMultiEdgeNotAllowed)
	assert.NoError(t, g.AddEdge("B", "A"))
	assert.Equal(t, 2, g.EdgeCount())
}

// TestAddEdge_EmptyEndpoint verifies endpoint validation.
func TestAddEdge_EmptyEndpoint(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddEdge("", "B"), core.ErrEmptyVertexID)
	assert.ErrorIs(t, g.AddEdge("A", ""), core.ErrEmptyVertexID)
}

// TestAddEdge_VectorDimension verifies that the first vectored edge fixes
// VecDim and later disagreements are rejected.
func TestAddEdge_VectorDimension(t *testing.T) {
	g := core.NewGraph()
	assert.Equal(t, 0, g.VecDim())

	require.NoError(t, g.AddEdge("A", "B", core.WithVec(core.Vec{1, 0, 0})))
	assert.Equal(t, 3, g.VecDim())

	assert.ErrorIs(t, g.AddEdge("B", "C", core.WithVec(core.Vec{1, 0})), core.ErrVecDimension)
	assert.ErrorIs(t, g.AddEdge("B", "C", core.WithVec(core.Vec{})), core.ErrVecDimension)

	// Vector-less edges stay legal alongside vectored ones.
	assert.NoError(t, g.AddEdge("B", "C"))
	assert.Equal(t, 2, g.EdgeCount())
}

// TestAddEdge_CopiesVector verifies that the stored vector is independent of
// the caller's slice.
func TestAddEdge_CopiesVector(t *testing.T) {
	g := core.NewGraph()
	v := core.Vec{0.25, 0, 0}
	require.NoError(t, g.AddEdge("A", "B", core.WithVec(v)))

	v[0] = 99 // caller reuse must not leak into storage

	got, ok := g.EdgeVec("A", "B")
	require.True(t, ok)
	assert.InDelta(t, 0.25, got[0], 0)
}

// TestEdgeVec_AbsentCases verifies the two not-ok shapes: missing edge and
// edge without a vector.
func TestEdgeVec_AbsentCases(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B"))

	_, ok := g.EdgeVec("A", "B")
	assert.False(t, ok, "edge without vector")

	_, ok = g.EdgeVec("B", "A")
	assert.False(t, ok, "missing edge")

	require.NoError(t, g.AddEdge("B", "C", core.WithVec(core.Vec{1, 2})))
	got, ok := g.EdgeVec("B", "C")
	require.True(t, ok)
	assert.Equal(t, core.Vec{1, 2}, got)
}

// TestSuccessors_SortedDeterministic verifies ordering and error sentinels.
func TestSuccessors_SortedDeterministic(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "C"))
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("A", "D"))
	require.NoError(t, g.AddEdge("B", "A"))

	succ, err := g.Successors("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "D"}, succ)

	_, err = g.Successors("Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Successors("")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
}

// TestUndirectedNeighbors_UnionOfDirections verifies that direction is
// ignored and antiparallel pairs are reported once.
func TestUndirectedNeighbors_UnionOfDirections(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("C", "A"))
	require.NoError(t, g.AddEdge("A", "D"))
	require.NoError(t, g.AddEdge("D", "A"))

	und, err := g.UndirectedNeighbors("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "D"}, und)

	_, err = g.UndirectedNeighbors("Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestVertices_Sorted verifies the stable enumeration surface.
func TestVertices_Sorted(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("C"))
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddEdge("B", "D"))

	assert.Equal(t, []string{"A", "B", "C", "D"}, g.Vertices())
}

// TestEdges_SortedIndependentCopies verifies ordering and that returned
// copies do not alias internal storage.
func TestEdges_SortedIndependentCopies(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("B", "A", core.WithVec(core.Vec{1})))
	require.NoError(t, g.AddEdge("A", "B", core.WithVec(core.Vec{2})))
	require.NoError(t, g.AddEdge("A", "C", core.WithVec(core.Vec{3})))

	list := g.Edges()
	require.Len(t, list, 3)
	assert.Equal(t, "A", list[0].From)
	assert.Equal(t, "B", list[0].To)
	assert.Equal(t, "C", list[1].To)
	assert.Equal(t, "B", list[2].From)

	list[0].Vec[0] = 42 // mutating the copy must not leak back

	got, ok := g.EdgeVec("A", "B")
	require.True(t, ok)
	assert.InDelta(t, 2, got[0], 0)
}
