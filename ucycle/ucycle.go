// Package ucycle enumerates all simple cycles of bounded length in the
// undirected view of a core.Graph, ignoring edge direction entirely. Each
// cycle is emitted exactly once in canonical form: rotated so its minimum
// member leads, and of the two traversal directions the one whose second
// member is smaller than its last. The canonical constraints double as
// search prunes, so no deduplication set is kept.
//
// With node positions supplied, the enumerator additionally drops cycles
// that span a periodic boundary: a cycle is kept only when its step
// displacements, wrapped by the minimum-image convention, sum to zero.
//
// Complexity:
//
//   - Time:   output-sensitive, O(Σ simple paths of length ≤ maxSize
//     rooted at each minimum member).
//   - Memory: O(maxSize) per active enumeration.
package ucycle

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/cyclath/core"
)

// Enumerate returns a lazy stream of every simple cycle of length 3 through
// maxSize in the undirected view of g, each exactly once, in canonical
// form. Cycles of every admissible length are emitted as they are found, so
// a triangle and a quadrilateral sharing three vertices both appear.
//
// The stream is finite and pull-driven: breaking out of the range loop
// stops all further traversal. Failures are delivered as the final element
// and terminate the stream:
//
//   - ErrGraphNil        - g is nil.
//   - ErrCycleSize       - maxSize < MinCycleSize, before any traversal.
//   - ErrEpsilon         - negative tolerance, before any traversal.
//   - ErrMissingPosition - position filtering reached an uncharted vertex.
//   - ErrPositionDim     - empty or mismatched position vector.
//
// Iteration is sorted at every level, so the emitted sequence (not just the
// set) is deterministic. Multiple ranges over one Seq2, including from
// separate goroutines, are independent walks over the shared graph.
func Enumerate(g *core.Graph, maxSize int, opts ...Option) iter.Seq2[[]string, error] {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(yield func([]string, error) bool) {
		// 1) Validate arguments before any traversal.
		if g == nil {
			yield(nil, ErrGraphNil)
			return
		}
		if maxSize < MinCycleSize {
			yield(nil, fmt.Errorf("ucycle: max size %d: %w", maxSize, ErrCycleSize))
			return
		}
		if cfg.Epsilon < 0 {
			yield(nil, fmt.Errorf("ucycle: epsilon %v: %w", cfg.Epsilon, ErrEpsilon))
			return
		}

		w := &walker{
			g:       g,
			maxSize: maxSize,
			cfg:     cfg,
			path:    make([]string, 0, maxSize),
			onPath:  make(map[string]struct{}, maxSize),
		}

		// 2) Trial every vertex as the canonical head, ascending.
		for _, head := range g.Vertices() {
			if err := w.admit(head); err != nil {
				yield(nil, err)
				return
			}
			w.head = head
			w.path = append(w.path[:0], head)
			w.onPath[head] = struct{}{}
			ok := w.extend(yield)
			delete(w.onPath, head)
			if !ok {
				return
			}
		}
	}
}

// walker carries the state of one in-progress enumeration walk.
type walker struct {
	g       *core.Graph
	maxSize int
	cfg     EnumOptions
	head    string              // canonical head: the minimum member of any emitted cycle
	path    []string            // current simple path, path[0] == head
	onPath  map[string]struct{} // membership mirror of path
	posDim  int                 // dimension pinned by the first admitted position
}

// extend emits the current path when it closes canonically, then grows it
// by one vertex per recursion level, restoring before returning. It returns
// false when the consumer stopped pulling or the stream failed.
func (w *walker) extend(yield func([]string, error) bool) bool {
	last := w.path[len(w.path)-1]

	// 1) Emit the current path if it closes into a canonical cycle: long
	//    enough, undirected-adjacent back to the head, and of the two
	//    directions the one led by the smaller second member. The check
	//    runs at every admissible length, so shorter cycles surface on the
	//    way to longer ones.
	if len(w.path) >= MinCycleSize && w.adjacent(last, w.head) && w.path[1] < last {
		if w.cfg.Positions == nil || w.local() {
			out := make([]string, len(w.path))
			copy(out, w.path)
			if !yield(out, nil) {
				return false
			}
		}
	}

	// 2) Stop growing at the size bound.
	if len(w.path) == w.maxSize {
		return true
	}

	// 3) Extend along sorted undirected neighbors.
	nbrs, err := w.g.UndirectedNeighbors(last)
	if err != nil {
		yield(nil, fmt.Errorf("ucycle: neighbors of %q: %w", last, err))
		return false
	}
	for _, nbr := range nbrs {
		// 3a) Canonical prune: members below the head belong elsewhere.
		if nbr < w.head {
			continue
		}
		// 3b) Simple-path prune.
		if _, on := w.onPath[nbr]; on {
			continue
		}
		// 3c) Positions are validated as each vertex enters the path.
		if err = w.admit(nbr); err != nil {
			yield(nil, err)
			return false
		}

		w.path = append(w.path, nbr)
		w.onPath[nbr] = struct{}{}
		ok := w.extend(yield)
		delete(w.onPath, nbr)
		w.path = w.path[:len(w.path)-1]
		if !ok {
			return false
		}
	}

	return true
}

// adjacent reports undirected adjacency: an edge in either direction.
func (w *walker) adjacent(a, b string) bool {
	return w.g.HasEdge(a, b) || w.g.HasEdge(b, a)
}

// admit validates the position of a vertex at the moment it enters a walk.
// A nil positions map admits everything.
func (w *walker) admit(id string) error {
	if w.cfg.Positions == nil {
		return nil
	}
	pos, ok := w.cfg.Positions[id]
	if !ok {
		return fmt.Errorf("ucycle: position of %q: %w", id, ErrMissingPosition)
	}
	if len(pos) == 0 {
		return fmt.Errorf("ucycle: position of %q: %w", id, ErrPositionDim)
	}
	if w.posDim == 0 {
		w.posDim = len(pos)
	} else if len(pos) != w.posDim {
		return fmt.Errorf("ucycle: position of %q: %w", id, ErrPositionDim)
	}

	return nil
}

// local reports whether the current closed path stays inside one periodic
// cell: the minimum-image steps between consecutive positions, wrap edge
// included, must sum to zero within the tolerance.
func (w *walker) local() bool {
	sum := core.Zero(w.posDim)
	prev := w.path[len(w.path)-1]
	for _, cur := range w.path {
		step := w.cfg.Positions[cur].Minus(w.cfg.Positions[prev]).MinImage()
		sum = sum.Plus(step)
		prev = cur
	}

	return sum.IsZero(w.cfg.Epsilon)
}
