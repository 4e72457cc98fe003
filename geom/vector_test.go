package geom

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flatgeom/flattri/ring"
)

func vi(x, y int64) Vector[ring.Int64] { return V(ring.I(x), ring.I(y)) }

// TestVector_TurnPredicates pins the sign conventions of CCW and
// Orientation, which every structural decision in the kernel rests on.
func TestVector_TurnPredicates(t *testing.T) {
	e1 := vi(1, 0)
	e2 := vi(0, 1)

	assert.Equal(t, CounterClockwise, e1.CCW(e2))
	assert.Equal(t, Clockwise, e2.CCW(e1))
	assert.Equal(t, Collinear, e1.CCW(vi(-3, 0)))

	assert.Equal(t, Same, e1.Orientation(vi(2, 5)))
	assert.Equal(t, Opposite, e1.Orientation(vi(-1, 5)))
	assert.Equal(t, Orthogonal, e1.Orientation(e2))
}

// TestVector_Arithmetic covers the vector ring operations.
func TestVector_Arithmetic(t *testing.T) {
	v := vi(3, -2)
	w := vi(1, 4)

	assert.Equal(t, vi(4, 2), v.Add(w))
	assert.Equal(t, vi(2, -6), v.Sub(w))
	assert.Equal(t, vi(-3, 2), v.Neg())
	assert.Equal(t, ring.I(-5), v.Dot(w))
	assert.Equal(t, ring.I(14), v.Cross(w))
	assert.Equal(t, vi(2, 3), v.Perp())
	assert.Equal(t, vi(9, -6), v.MulBig(big.NewInt(3)))
	assert.True(t, vi(0, 0).IsZero())
	assert.False(t, v.IsZero())

	h, ok := vi(4, -8).QuoPow2(2)
	assert.True(t, ok)
	assert.Equal(t, vi(1, -2), h)

	_, ok = vi(3, 0).QuoPow2(1)
	assert.False(t, ok)

	assert.Equal(t, -1, vi(1, 1).LengthCmp(vi(2, 0)))
	assert.Equal(t, 0, vi(3, 4).LengthCmp(vi(5, 0)))
}

// TestMat2_Apply checks exact application and determinant of a linear map.
func TestMat2_Apply(t *testing.T) {
	m := Mat2[ring.Int64]{A: ring.I(2), B: ring.I(1), C: ring.I(0), D: ring.I(3)}

	assert.Equal(t, vi(5, 9), m.Apply(vi(1, 3)))
	assert.Equal(t, ring.I(6), m.Det())

	id, ok := IdentityOf(ring.I(7))
	assert.True(t, ok)
	assert.Equal(t, vi(1, 3), id.Apply(vi(1, 3)))
	assert.True(t, id.Equal(Mat2[ring.Int64]{A: 1, D: 1}))
}
