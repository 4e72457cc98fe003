package deform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flatgeom/flattri/mesh"
	"github.com/flatgeom/flattri/ring"
	"github.com/flatgeom/flattri/surface"
)

func TestEliminateMarkedPoints_NoneIsIdentity(t *testing.T) {
	s := squareTorus(t)
	r, err := EliminateMarkedPoints(s)
	require.NoError(t, err)
	assert.Equal(t, KindIdentity, r.Kind())
	assert.True(t, r.Codomain().Equal(s))
}

func TestEliminateMarkedPoints_RemovesInsertedVertex(t *testing.T) {
	base := squareTorusRat(t)
	ins, err := InsertAt(base, 1, vr(3, 4, 1, 4))
	require.NoError(t, err)
	marked := ins.Codomain()

	r, err := EliminateMarkedPoints(marked)
	require.NoError(t, err)

	cod := r.Codomain()
	require.Equal(t, 3, cod.Mesh().NEdges())
	assert.True(t, ring.NewRat(2, 1).Cmp(cod.Area()) == 0)
	for _, fan := range cod.Mesh().Vertices() {
		assert.NotEqual(t, 1, cod.Angle(fan[0]))
	}

	// Connections away from the marked point keep their vectors.
	for _, e := range []mesh.HalfEdge{1, 2, 3} {
		c := surface.ConnectionAlong(marked, e)
		img, ok := r.ApplyConnection(c)
		require.True(t, ok, "edge %d lost its image", e)
		assert.True(t, c.Vector.Sub(img.Vector).IsZero())
		assert.Equal(t, -img.Source, img.Target)
	}
}
