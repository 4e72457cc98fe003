package ring

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInt64_Arithmetic exercises the ring operations on the machine
// backend, including the failure paths of exact division.
func TestInt64_Arithmetic(t *testing.T) {
	a, b := I(6), I(-4)

	assert.Equal(t, I(2), a.Add(b))
	assert.Equal(t, I(10), a.Sub(b))
	assert.Equal(t, I(-24), a.Mul(b))
	assert.Equal(t, I(4), b.Neg())
	assert.Equal(t, I(48), a.Shl(3))
	assert.Equal(t, -1, b.Sign())
	assert.Equal(t, 1, a.Cmp(b))

	q, ok := a.Quo(I(3))
	require.True(t, ok)
	assert.Equal(t, I(2), q)

	_, ok = a.Quo(I(4))
	assert.False(t, ok, "6/4 is not an integer")

	_, ok = a.Quo(I(0))
	assert.False(t, ok, "division by zero must fail")

	h, ok := I(-8).QuoPow2(2)
	require.True(t, ok)
	assert.Equal(t, I(-2), h)

	_, ok = I(6).QuoPow2(2)
	assert.False(t, ok)
}

// TestRat_Arithmetic checks that the rational backend is exact and that
// its zero value behaves as zero.
func TestRat_Arithmetic(t *testing.T) {
	var zero Rat
	assert.Equal(t, 0, zero.Sign())
	assert.Equal(t, 0, zero.Cmp(NewRat(0, 1)))

	a := NewRat(1, 3)
	b := NewRat(1, 6)

	assert.Equal(t, 0, a.Add(b).Cmp(NewRat(1, 2)))
	assert.Equal(t, 0, a.Sub(b).Cmp(b))
	assert.Equal(t, 0, a.Mul(b).Cmp(NewRat(1, 18)))
	assert.Equal(t, 0, a.Neg().Cmp(NewRat(-1, 3)))
	assert.Equal(t, 0, a.MulBig(big.NewInt(9)).Cmp(NewRat(3, 1)))
	assert.Equal(t, 0, a.Shl(2).Cmp(NewRat(4, 3)))

	q, ok := a.Quo(b)
	require.True(t, ok)
	assert.Equal(t, 0, q.Cmp(NewRat(2, 1)))

	_, ok = a.Quo(Rat{})
	assert.False(t, ok)

	h, ok := a.QuoPow2(3)
	require.True(t, ok)
	assert.Equal(t, 0, h.Cmp(NewRat(1, 24)))
}

// TestRat_Immutability verifies that operations never mutate operands.
func TestRat_Immutability(t *testing.T) {
	a := NewRat(2, 5)
	_ = a.Add(NewRat(1, 5))
	_ = a.Neg()
	assert.Equal(t, 0, a.Cmp(NewRat(2, 5)))
}
