// Package lattice builds n×n×n periodic cubic lattices as core digraphs:
// sites at fractional coordinates, nearest neighbors connected under the
// minimum-image convention, each adjacency oriented by a seeded coin and
// carrying the minimum-image displacement from its tail to its head.
package lattice

import (
	"fmt"

	"github.com/katalvlaran/cyclath/core"
)

// Lattice describes one periodic cubic cell: side length, orientation seed
// and adjacency cutoff, with site IDs and fractional coordinates
// precomputed. Construction is deterministic: the same configuration
// produces an identical digraph on every platform and every call.
type Lattice struct {
	n      int
	seed   int64
	cutoff float64

	ids []string   // site index → vertex ID "x,y,z"
	pos []core.Vec // site index → fractional coordinates (x/n, y/n, z/n)
}

// New validates the configuration and precomputes site coordinates for an
// n×n×n periodic lattice.
//
// Errors:
//   - ErrLatticeSize - n < 3.
//   - ErrCutoff      - explicit negative cutoff.
//
// Complexity: O(n³) time and memory.
func New(n int, opts ...Option) (*Lattice, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Validate.
	if n < 3 {
		return nil, fmt.Errorf("lattice: side %d: %w", n, ErrLatticeSize)
	}
	if cfg.Seed == 0 {
		cfg.Seed = defaultSeed
	}
	if cfg.Cutoff == 0 {
		// Nearest-neighbor spacing is 1/n, next-nearest √2/n; 1.2/n sits
		// strictly between them for every n.
		cfg.Cutoff = 1.2 / float64(n)
	}
	if cfg.Cutoff < 0 {
		return nil, fmt.Errorf("lattice: cutoff %v: %w", cfg.Cutoff, ErrCutoff)
	}

	// 2) Precompute IDs and fractional coordinates in site-index order:
	//    index = (x·n + y)·n + z.
	total := n * n * n
	l := &Lattice{
		n:      n,
		seed:   cfg.Seed,
		cutoff: cfg.Cutoff,
		ids:    make([]string, 0, total),
		pos:    make([]core.Vec, 0, total),
	}
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			for z := 0; z < n; z++ {
				l.ids = append(l.ids, l.VertexID(x, y, z))
				l.pos = append(l.pos, core.Vec{
					float64(x) / float64(n),
					float64(y) / float64(n),
					float64(z) / float64(n),
				})
			}
		}
	}

	return l, nil
}

// Side returns the lattice side length n.
func (l *Lattice) Side() int { return l.n }

// VertexID formats the site identifier for cell coordinates (x,y,z).
func (l *Lattice) VertexID(x, y, z int) string {
	return fmt.Sprintf("%d,%d,%d", x, y, z)
}

// Positions returns a fresh map of site ID → fractional coordinates,
// suitable for ucycle position filtering. The vectors are cloned, so
// callers may retain and mutate the result.
//
// Complexity: O(n³).
func (l *Lattice) Positions() map[string]core.Vec {
	out := make(map[string]core.Vec, len(l.ids))
	for i, id := range l.ids {
		out[id] = l.pos[i].Clone()
	}

	return out
}

// Digraph builds the oriented lattice graph.
//
// Every site becomes a vertex. Each unordered site pair within the cutoff
// becomes exactly one directed edge: a seeded coin (keyed by the pair, not
// by construction order) picks the direction, and the edge carries the
// minimum-image displacement from its tail to its head. Two calls with the
// same Lattice produce identical graphs.
//
// Complexity: O(n⁶) pair scan; the graph itself is O(n³) vertices and edges.
func (l *Lattice) Digraph() (*core.Graph, error) {
	g := core.NewGraph()

	// 1) All sites first, so the vertex set never depends on adjacency.
	for _, id := range l.ids {
		if err := g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("lattice: site %s: %w", id, err)
		}
	}

	// 2) Scan unordered pairs in site-index order. The pair key feeds the
	//    orientation coin, so the scan order is irrelevant to the result.
	total := len(l.ids)
	c2 := l.cutoff * l.cutoff
	for a := 0; a < total; a++ {
		for b := a + 1; b < total; b++ {
			d := l.pos[b].Minus(l.pos[a]).MinImage()
			if d.Dot(d) >= c2 {
				continue
			}
			var err error
			if orientBit(l.seed, uint64(a)*uint64(total)+uint64(b)) {
				err = g.AddEdge(l.ids[a], l.ids[b], core.WithVec(d))
			} else {
				err = g.AddEdge(l.ids[b], l.ids[a], core.WithVec(d.Neg()))
			}
			if err != nil {
				return nil, fmt.Errorf("lattice: edge %s-%s: %w", l.ids[a], l.ids[b], err)
			}
		}
	}

	return g, nil
}
