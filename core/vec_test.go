package core_test

import (
	"testing"

	"github.com/katalvlaran/cyclath/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestVecClone_Independence verifies deep copying and the nil passthrough.
func TestVecClone_Independence(t *testing.T) {
	v := core.Vec{1, 2, 3}
	c := v.Clone()
	c[0] = 9

	assert.InDelta(t, 1, v[0], 0)
	assert.Nil(t, core.Vec(nil).Clone())
}

// TestVecArithmetic verifies Plus, Minus, Neg and Dot on small vectors.
func TestVecArithmetic(t *testing.T) {
	a := core.Vec{1, -2, 0.5}
	b := core.Vec{0.5, 2, -0.5}

	sum := a.Plus(b)
	assert.Equal(t, core.Vec{1.5, 0, 0}, sum)

	diff := a.Minus(b)
	assert.Equal(t, core.Vec{0.5, -4, 1}, diff)

	neg := b.Neg()
	assert.Equal(t, core.Vec{-0.5, -2, 0.5}, neg)

	assert.InDelta(t, 0.5-4-0.25, a.Dot(b), 1e-12)

	// Operands stay untouched.
	assert.Equal(t, core.Vec{1, -2, 0.5}, a)
	assert.Equal(t, core.Vec{0.5, 2, -0.5}, b)
}

// TestVecZero verifies the fresh-zero constructor.
func TestVecZero(t *testing.T) {
	z := core.Zero(3)
	require.Len(t, z, 3)
	assert.True(t, z.IsZero(0))
}

// TestVecMinImage verifies wrapping into the half-open cell [-0.5, 0.5).
func TestVecMinImage(t *testing.T) {
	in := core.Vec{0.75, -0.75, 0.5, -0.5, 0.25, 0}
	want := core.Vec{-0.25, 0.25, -0.5, -0.5, 0.25, 0}

	got := in.MinImage()
	require.Len(t, got, len(want))
	for i := range want {
		assert.InDelta(t, want[i], got[i], 0, "component %d", i)
	}
	// Input untouched.
	assert.InDelta(t, 0.75, in[0], 0)
}

// TestVecIsZero_ToleranceBoundary verifies the exact ≤ eps contract.
func TestVecIsZero_ToleranceBoundary(t *testing.T) {
	assert.True(t, core.Vec{0, 1e-10, -1e-10}.IsZero(1e-9))
	assert.True(t, core.Vec{1e-9}.IsZero(1e-9), "boundary is inclusive")
	assert.False(t, core.Vec{2e-9}.IsZero(1e-9))
	assert.False(t, core.Vec{0}.IsZero(-1), "negative tolerance matches nothing")
	assert.True(t, core.Vec{}.IsZero(0), "empty vector is vacuously zero")
}
