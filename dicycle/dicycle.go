// Package dicycle enumerates all distinct simple directed cycles of an exact
// length in a core.Graph. The search runs one depth-first walk per trial
// head and prunes by canonical form instead of post-hoc deduplication: a
// cycle is emitted only from the walk rooted at its minimum member, already
// in its canonical rotation, so no signature set is needed. Results stream
// lazily; the caller stops the walk by breaking out of the range loop.
//
// Complexity:
//
//   - Time:   O(Σ paths of length ≤ size) — output-sensitive; the head and
//     membership prunes cut every rotated or revisiting branch.
//   - Memory: O(size) per active enumeration (path stack + membership set).
package dicycle

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/cyclath/core"
)

// Enumerate returns a lazy stream of every distinct simple directed cycle of
// length exactly size in g.
//
// Each cycle is yielded once, in canonical rotation (minimum member first);
// a cycle and its reverse are distinct and both appear when both edge sets
// exist. With WithHomodromic, only cycles whose displacement vectors sum to
// zero within the tolerance are yielded, and every traversed edge must carry
// a vector.
//
// The stream is finite and pull-driven: breaking out of the range loop stops
// all further traversal. A failure is delivered as the final element (nil
// cycle, non-nil error) and terminates the stream:
//
//   - ErrGraphNil   - g is nil.
//   - ErrCycleSize  - size < MinCycleSize, reported before any traversal.
//   - ErrEpsilon    - negative tolerance, reported before any traversal.
//   - ErrMissingVec - homodromy filtering reached a vector-less edge.
//
// The emitted set is independent of iteration order; this implementation
// additionally walks sorted vertices and sorted successors, so the emitted
// sequence is reproducible run to run. The returned Seq2 may be ranged
// several times and from several goroutines; each range is an independent
// walk over the shared read-only graph.
func Enumerate(g *core.Graph, size int, opts ...Option) iter.Seq2[Cycle, error] {
	// Resolve options once; every range over the stream reuses the same
	// immutable configuration.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(yield func(Cycle, error) bool) {
		// 1) Validate arguments before any traversal.
		if g == nil {
			yield(nil, ErrGraphNil)
			return
		}
		if size < MinCycleSize {
			yield(nil, fmt.Errorf("dicycle: size %d: %w", size, ErrCycleSize))
			return
		}
		if cfg.Epsilon < 0 {
			yield(nil, fmt.Errorf("dicycle: epsilon %v: %w", cfg.Epsilon, ErrEpsilon))
			return
		}

		// 2) Fresh walker per range; ranges never share state.
		w := &walker{
			g:      g,
			size:   size,
			cfg:    cfg,
			path:   make([]string, 0, size),
			onPath: make(map[string]struct{}, size),
		}

		// 3) Trial every vertex as the canonical head, ascending. Cycles
		//    whose minimum member is not the current head are pruned inside
		//    the walk, so each cycle surfaces exactly once.
		for _, head := range g.Vertices() {
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
	g      *core.Graph
	size   int
	cfg    SearchOptions
	head   string              // canonical head: the minimum member of any emitted cycle
	path   []string            // current simple path, path[0] == head
	onPath map[string]struct{} // membership mirror of path
}

// extend grows the path by one vertex per recursion level and restores it
// before returning, so sibling branches never observe each other's suffix.
// It returns false when the consumer stopped pulling or the stream failed;
// that unwinds the whole walk.
func (w *walker) extend(yield func(Cycle, error) bool) bool {
	last := w.path[len(w.path)-1]

	// 1) At full length, the only remaining question is closure.
	if len(w.path) == w.size {
		return w.close(yield, last)
	}

	// 2) Expand along sorted successors.
	succs, err := w.g.Successors(last)
	if err != nil {
		yield(nil, fmt.Errorf("dicycle: successors of %q: %w", last, err))
		return false
	}
	for _, succ := range succs {
		// 2a) Canonical prune: members below the head belong to a walk
		//     rooted at a smaller vertex (or to no cycle at all).
		if succ < w.head {
			continue
		}
		// 2b) Simple-path prune: no vertex repeats.
		if _, on := w.onPath[succ]; on {
			continue
		}
		// 2c) Fail fast on a vector-less edge at the moment it is first
		//     traversed, not when the cycle closes.
		if w.cfg.Homodromic {
			if _, ok := w.g.EdgeVec(last, succ); !ok {
				yield(nil, fmt.Errorf("dicycle: edge %s->%s: %w", last, succ, ErrMissingVec))
				return false
			}
		}

		// 2d) Push, recurse, pop. The pop runs on every non-aborting exit,
		//     keeping sibling branches isolated.
		w.path = append(w.path, succ)
		w.onPath[succ] = struct{}{}
		ok := w.extend(yield)
		delete(w.onPath, succ)
		w.path = w.path[:len(w.path)-1]
		if !ok {
			return false
		}
	}

	return true
}

// close tests whether the full-length path closes into a cycle and yields
// it. Returns false only when the consumer stopped or the stream failed.
func (w *walker) close(yield func(Cycle, error) bool, last string) bool {
	// 1) The closing edge must run from the path's tail back to its head.
	if !w.g.HasEdge(last, w.head) {
		return true
	}

	// 2) Homodromy: the displacement sum around the closed path must vanish.
	if w.cfg.Homodromic {
		zero, err := w.zeroSum()
		if err != nil {
			yield(nil, err)
			return false
		}
		if !zero {
			return true
		}
	}

	// 3) Yield an independent copy; consumers may retain it.
	out := make(Cycle, w.size)
	copy(out, w.path)

	return yield(out, nil)
}

// zeroSum accumulates the displacement vectors over all size consecutive
// edges of the closed path, wrap-around included, and tests the sum against
// the configured tolerance.
func (w *walker) zeroSum() (bool, error) {
	sum := core.Zero(w.g.VecDim())
	prev := w.path[len(w.path)-1] // start at the wrap edge last->head
	for _, cur := range w.path {
		vec, ok := w.g.EdgeVec(prev, cur)
		if !ok {
			return false, fmt.Errorf("dicycle: edge %s->%s: %w", prev, cur, ErrMissingVec)
		}
		sum = sum.Plus(vec)
		prev = cur
	}

	return sum.IsZero(w.cfg.Epsilon), nil
}
