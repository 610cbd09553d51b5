// File: vec.go
// Role: Displacement-vector value type shared by edge attributes, node
// positions and cycle sums.
//
// Numeric policy:
//   - Comparisons are tolerance-based; DefaultEpsilon (1e-9) is the default
//     everywhere an epsilon is configurable.
//   - Binary operations assume equal dimensions. Graph enforces a uniform
//     dimension for edge vectors; callers supplying their own vectors (node
//     positions and the like) own that validation.
package core

import "math"

// DefaultEpsilon is the default absolute tolerance for vector comparisons.
const DefaultEpsilon = 1e-9

// Vec is an n-dimensional displacement vector.
type Vec []float64

// Zero returns a fresh all-zero vector of the given dimension.
func Zero(dim int) Vec {
	return make(Vec, dim)
}

// Clone returns an independent copy of v. Clone of nil is nil.
func (v Vec) Clone() Vec {
	if v == nil {
		return nil
	}
	out := make(Vec, len(v))
	copy(out, v)

	return out
}

// Plus returns the elementwise sum v + o as a fresh vector.
func (v Vec) Plus(o Vec) Vec {
	out := make(Vec, len(v))
	for i := range v {
		out[i] = v[i] + o[i]
	}

	return out
}

// Minus returns the elementwise difference v - o as a fresh vector.
func (v Vec) Minus(o Vec) Vec {
	out := make(Vec, len(v))
	for i := range v {
		out[i] = v[i] - o[i]
	}

	return out
}

// Neg returns the elementwise negation of v as a fresh vector.
func (v Vec) Neg() Vec {
	out := make(Vec, len(v))
	for i := range v {
		out[i] = -v[i]
	}

	return out
}

// Dot returns the scalar product of v and o.
func (v Vec) Dot(o Vec) float64 {
	var s float64
	for i := range v {
		s += v[i] * o[i]
	}

	return s
}

// MinImage returns the minimum-image representative of v in a unit periodic
// cell: each component is shifted by a whole number of cell lengths into
// [-0.5, 0.5). A displacement between fractional coordinates becomes the
// shortest wrap-aware displacement under periodic boundary conditions.
func (v Vec) MinImage() Vec {
	out := make(Vec, len(v))
	for i := range v {
		out[i] = v[i] - math.Floor(v[i]+0.5)
	}

	return out
}

// IsZero reports whether every component of v is within eps of zero.
// eps must be non-negative; negative tolerances match nothing.
func (v Vec) IsZero(eps float64) bool {
	for i := range v {
		if math.Abs(v[i]) > eps {
			return false
		}
	}

	return true
}
