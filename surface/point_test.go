package surface

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flatgeom/flattri/mesh"
	"github.com/flatgeom/flattri/ring"
)

func TestPoint_Vertex(t *testing.T) {
	s := squareTorus(t)

	p := PointAtVertex(s, 1, ring.I(1))
	v, ok := p.IsVertex(s)
	require.True(t, ok)
	assert.Equal(t, mesh.HalfEdge(1), v)

	// All half-edges of the torus leave the same vertex.
	q := PointAtVertex(s, 2, ring.I(1))
	assert.True(t, p.Equal(s, q))
	assert.True(t, q.Equal(s, p))
}

func TestPoint_Interior(t *testing.T) {
	s := squareTorus(t)

	center, err := NewPoint(s, 1, ring.I(1), ring.I(1), ring.I(1))
	require.NoError(t, err)
	_, ok := center.IsVertex(s)
	assert.False(t, ok)

	// The same point named from another half-edge of the face, and with
	// scaled weights.
	rotated, err := NewPoint(s, 2, ring.I(1), ring.I(1), ring.I(1))
	require.NoError(t, err)
	scaled, err := NewPoint(s, 1, ring.I(2), ring.I(2), ring.I(2))
	require.NoError(t, err)
	assert.True(t, center.Equal(s, rotated))
	assert.True(t, center.Equal(s, scaled))

	corner := PointAtVertex(s, 1, ring.I(1))
	assert.False(t, center.Equal(s, corner))
	assert.False(t, corner.Equal(s, center))

	_, err = NewPoint(s, 1, ring.I(-1), ring.I(1), ring.I(1))
	assert.ErrorIs(t, err, ErrBadPoint)
	_, err = NewPoint(s, 1, ring.I(0), ring.I(0), ring.I(0))
	assert.ErrorIs(t, err, ErrBadPoint)
}

// TestPoint_OnEdge names the midpoint of the diagonal from both
// adjacent faces.
func TestPoint_OnEdge(t *testing.T) {
	s := squareTorus(t)

	a, err := NewPoint(s, 1, ring.I(1), ring.I(0), ring.I(1))
	require.NoError(t, err)
	b, err := NewPoint(s, -1, ring.I(1), ring.I(0), ring.I(1))
	require.NoError(t, err)
	assert.True(t, a.Equal(s, b))
	assert.True(t, b.Equal(s, a))

	off, err := NewPoint(s, -1, ring.I(2), ring.I(0), ring.I(1))
	require.NoError(t, err)
	assert.False(t, a.Equal(s, off))
}

func TestSaddleConnection(t *testing.T) {
	s := squareTorus(t)

	c := ConnectionAlong(s, 1)
	assert.Equal(t, mesh.HalfEdge(1), c.Source)
	assert.Equal(t, mesh.HalfEdge(-1), c.Target)
	assert.True(t, c.Neg().Equal(ConnectionAlong(s, -1)))

	// A connection along the reversed diagonal, located by its vector.
	d := ConnectionInSector(s, 1, 1, vi(1, 1))
	assert.True(t, d.Equal(ConnectionAlong(s, -3)))

	p := PathAlong(s, 1, 2)
	q := PathAlong(s, 1, 2)
	assert.True(t, p.Equal(q))
	assert.False(t, p.Equal(PathAlong(s, 1)))
	assert.False(t, p.Equal(PathAlong(s, 1, 3)))
}
