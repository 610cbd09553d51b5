// File: orientations.go
// Role: Orientation classification of undirected cycles against the digraph.
//
// The classifier does not enumerate cycles itself: it consumes a stream from
// a collaborator (by default ucycle.Enumerate over the graph's undirected
// view) and annotates each cycle with the direction of every traversed step.
package dicycle

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/cyclath/core"
	"github.com/katalvlaran/cyclath/ucycle"
)

// Orientation reports, for each step of cycle, whether the digraph contains
// the directed edge (cycle[i-1] → cycle[i]), with index -1 wrapping to the
// last member. The result always has len(cycle) entries.
//
// The cycle is trusted as delivered by its enumerator: steps without any
// underlying adjacency simply report false. g must not be nil.
//
// Complexity: O(len(cycle)).
func Orientation(g *core.Graph, cycle []string) []bool {
	out := make([]bool, len(cycle))
	if len(cycle) == 0 {
		return out
	}

	prev := cycle[len(cycle)-1] // step 0 is the wrap edge last->first
	for i, cur := range cycle {
		out[i] = g.HasEdge(prev, cur)
		prev = cur
	}

	return out
}

// Classify returns a lazy stream pairing every simple cycle of the graph's
// undirected view (length 3 through maxSize, each exactly once) with its
// orientation against the digraph.
//
// The cycle source is the collaborator: by default ucycle.Enumerate, with
// WithPositions forwarded for periodic-boundary filtering; WithEnumerator
// swaps in any other source honoring the Enumerator contract. Cycles are
// classified as delivered — Classify adds no deduplication or validation of
// its own, and maxSize semantics belong to the collaborator (the default
// rejects maxSize < 3 with ucycle.ErrCycleSize).
//
// A collaborator failure is wrapped and delivered as the final element,
// terminating the stream. Breaking out of the range loop stops the
// underlying enumeration immediately.
func Classify(g *core.Graph, maxSize int, opts ...ClassifyOption) iter.Seq2[OrientedCycle, error] {
	cfg := DefaultClassifyOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(yield func(OrientedCycle, error) bool) {
		// 1) Validate the graph up front; the collaborator validates the rest.
		if g == nil {
			yield(OrientedCycle{}, ErrGraphNil)
			return
		}

		// 2) Resolve the cycle source.
		enum := cfg.Enumerator
		if enum == nil {
			pos := cfg.Positions
			enum = func(gr *core.Graph, ms int) iter.Seq2[[]string, error] {
				if pos != nil {
					return ucycle.Enumerate(gr, ms, ucycle.WithPositions(pos))
				}
				return ucycle.Enumerate(gr, ms)
			}
		}

		// 3) Annotate each collaborator cycle with its step orientations.
		for cyc, err := range enum(g, maxSize) {
			if err != nil {
				yield(OrientedCycle{}, fmt.Errorf("dicycle: classify: %w", err))
				return
			}
			oc := OrientedCycle{Cycle: Cycle(cyc), Forward: Orientation(g, cyc)}
			if !yield(oc, nil) {
				return
			}
		}
	}
}
