package deform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flatgeom/flattri/geom"
	"github.com/flatgeom/flattri/mesh"
	"github.com/flatgeom/flattri/ring"
	"github.com/flatgeom/flattri/surface"
)

func TestIsomorphism_Self(t *testing.T) {
	s := squareTorus(t)
	r, err := Isomorphism(s, squareTorus(t), Options[ring.Int64]{})
	require.NoError(t, err)

	for _, e := range []mesh.HalfEdge{1, 2, 3} {
		img, ok := r.ApplyConnection(surface.ConnectionAlong(s, e))
		require.True(t, ok)
		assert.True(t, surface.ConnectionAlong(s, e).Equal(img))
	}
}

func TestIsomorphism_Shear(t *testing.T) {
	s := squareTorus(t)
	m, err := mesh.NewFromCycles([][]mesh.HalfEdge{{1, -3, 2, -1, 3, -2}})
	require.NoError(t, err)
	other, err := surface.New(m, []geom.Vector[ring.Int64]{vi(1, 0), vi(1, 1), vi(-2, -1)})
	require.NoError(t, err)

	var found geom.Mat2[ring.Int64]
	r, err := Isomorphism(s, other, Options[ring.Int64]{
		MatrixFilter: func(a, b, c, d ring.Int64) bool {
			found = geom.Mat2[ring.Int64]{A: a, B: b, C: c, D: d}
			return true
		},
	})
	require.NoError(t, err)

	shear := geom.Mat2[ring.Int64]{A: ring.I(1), B: ring.I(1), C: ring.I(0), D: ring.I(1)}
	assert.True(t, shear.Equal(found))
	assert.Equal(t, KindComposite, r.Kind())

	img, ok := r.ApplyConnection(surface.ConnectionAlong(s, 2))
	require.True(t, ok)
	assert.True(t, surface.ConnectionAlong(other, 2).Equal(img))
}

func TestIsomorphism_FilterExhausts(t *testing.T) {
	s := squareTorus(t)
	_, err := Isomorphism(s, squareTorus(t), Options[ring.Int64]{
		MatrixFilter: func(a, b, c, d ring.Int64) bool { return false },
	})
	assert.ErrorIs(t, err, ErrNoIsomorphism)
}

func TestIsomorphism_Mismatches(t *testing.T) {
	// Different half-edge counts can never correspond.
	s := squareTorusRat(t)
	ins, err := InsertAt(s, 1, vr(3, 4, 1, 4))
	require.NoError(t, err)
	_, err = Isomorphism(s, ins.Codomain(), Options[ring.Rat]{})
	assert.ErrorIs(t, err, ErrNoIsomorphism)

	// A boundary on one side only rules out any correspondence.
	plain := squareTorus(t)
	slit, err := Slit(plain, 1)
	require.NoError(t, err)
	_, err = Isomorphism(plain, slit.Codomain(), Options[ring.Int64]{})
	assert.ErrorIs(t, err, ErrNoIsomorphism)

	// Matching two boundary surfaces is not implemented.
	other, err := Slit(squareTorus(t), 1)
	require.NoError(t, err)
	_, err = Isomorphism(slit.Codomain(), other.Codomain(), Options[ring.Int64]{})
	assert.ErrorIs(t, err, ErrUnsupported)
}
