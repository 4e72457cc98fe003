package deform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flatgeom/flattri/mesh"
	"github.com/flatgeom/flattri/ring"
	"github.com/flatgeom/flattri/surface"
)

func TestInsertAt_InFace(t *testing.T) {
	s := squareTorusRat(t)
	r, err := InsertAt(s, 1, vr(3, 4, 1, 4))
	require.NoError(t, err)

	assert.Equal(t, KindInsert, r.Kind())
	cod := r.Codomain()
	require.Equal(t, 6, cod.Mesh().NEdges())

	// The three edges out of the new degree-3 vertex.
	ratVecEqual(t, vr(-3, 4, -1, 4), cod.FromHalfEdge(4))
	ratVecEqual(t, vr(1, 4, -1, 4), cod.FromHalfEdge(5))
	ratVecEqual(t, vr(1, 4, 3, 4), cod.FromHalfEdge(6))
	assert.Equal(t, 1, cod.Angle(4))

	// Edges of the old surface keep their labels and vectors.
	img, ok := r.ApplyConnection(surface.ConnectionAlong(s, 2))
	require.True(t, ok)
	assert.True(t, surface.ConnectionAlong(cod, 2).Equal(img))

	// The section forgets the new vertex.
	sec, err := r.Section()
	require.NoError(t, err)
	assert.Equal(t, KindCollapse, sec.Kind())
	_, ok = sec.ApplyConnection(surface.ConnectionAlong(cod, 4))
	assert.False(t, ok)
	back, ok := sec.ApplyConnection(surface.ConnectionAlong(cod, 2))
	require.True(t, ok)
	assert.True(t, surface.ConnectionAlong(s, 2).Equal(back))
}

func TestInsertAt_OnEdge(t *testing.T) {
	s := squareTorusRat(t)
	r, err := InsertAt(s, 1, vr(1, 2, 0, 1))
	require.NoError(t, err)

	assert.Equal(t, KindInsert, r.Kind())
	cod := r.Codomain()
	require.Equal(t, 6, cod.Mesh().NEdges())

	// The vertex splits edge 1 and has degree 4.
	assert.Equal(t, 1, cod.Angle(4))
	ratVecEqual(t, vr(-1, 2, 0, 1), cod.FromHalfEdge(4))
	ratVecEqual(t, vr(1, 2, 0, 1), cod.FromHalfEdge(5))
	ratVecEqual(t, vr(1, 2, 1, 1), cod.FromHalfEdge(6))
	// Edge 1 was flipped out of the way of the new vertex.
	ratVecEqual(t, vr(-1, 2, -1, 1), cod.FromHalfEdge(-1))

	// The split edge has no single-connection image, but its path maps
	// to the two segments through the new vertex.
	_, ok := r.ApplyConnection(surface.ConnectionAlong(s, 1))
	assert.False(t, ok)
	path, ok := r.ApplyPath(surface.Path[ring.Rat]{surface.ConnectionAlong(s, 1)})
	require.True(t, ok)
	assert.True(t, surface.PathAlong(cod, -4, 5).Equal(path))
}

func TestInsertAt_CrossesEdge(t *testing.T) {
	s := squareTorusRat(t)
	// The target point lies beyond edge 2, which must flip first.
	r, err := InsertAt(s, 1, vr(5, 4, 3, 4))
	require.NoError(t, err)

	assert.Equal(t, KindComposite, r.Kind())
	cod := r.Codomain()
	require.Equal(t, 6, cod.Mesh().NEdges())
	ratVecEqual(t, vr(-2, 1, -1, 1), cod.FromHalfEdge(2))
	ratVecEqual(t, vr(-5, 4, -3, 4), cod.FromHalfEdge(4))
	ratVecEqual(t, vr(3, 4, 1, 4), cod.FromHalfEdge(5))
	ratVecEqual(t, vr(-1, 4, 1, 4), cod.FromHalfEdge(6))
}

func TestInsertAt_Errors(t *testing.T) {
	s := squareTorusRat(t)

	_, err := InsertAt(s, 1, vr(-1, 1, 1, 1))
	assert.ErrorIs(t, err, ErrNotInSector)

	// Collinear with edge 1 but reaching past its far vertex.
	_, err = InsertAt(s, 1, vr(2, 1, 0, 1))
	assert.ErrorIs(t, err, ErrCrossesVertex)

	// Ending exactly on the far vertex.
	_, err = InsertAt(s, 1, vr(1, 1, 0, 1))
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestSlit(t *testing.T) {
	s := squareTorus(t)
	r, err := Slit(s, 1)
	require.NoError(t, err)

	assert.Equal(t, KindSlit, r.Kind())
	cod := r.Codomain()
	require.Equal(t, 4, cod.Mesh().NEdges())
	assert.Equal(t, vi(1, 0), cod.FromHalfEdge(4))
	assert.True(t, cod.Mesh().Boundary(-1))
	assert.True(t, cod.Mesh().Boundary(4))

	img, ok := r.ApplyConnection(surface.ConnectionAlong(s, 2))
	require.True(t, ok)
	assert.True(t, surface.ConnectionAlong(cod, 2).Equal(img))

	_, err = r.Section()
	assert.ErrorIs(t, err, ErrNoSection)

	// Boundary edges cannot be slit again.
	_, err = Slit(cod, 4)
	assert.ErrorIs(t, err, mesh.ErrBoundaryEdge)
}
