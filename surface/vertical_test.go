package surface

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flatgeom/flattri/geom"
	"github.com/flatgeom/flattri/ring"
)

func TestVertical_Projections(t *testing.T) {
	s := squareTorus(t)
	v, err := NewVertical(s, vi(0, 1))
	require.NoError(t, err)

	_, err = NewVertical(s, vi(0, 0))
	assert.ErrorIs(t, err, ErrZeroVector)

	assert.Equal(t, vi(1, 0), v.Horizontal())
	assert.Equal(t, ring.I(1), v.Project(s.FromHalfEdge(2)))
	assert.Equal(t, ring.I(0), v.Project(s.FromHalfEdge(1)))
	assert.Equal(t, ring.I(1), v.ProjectPerpendicular(s.FromHalfEdge(1)))

	assert.True(t, v.Parallel(2))
	assert.False(t, v.Parallel(1))
	assert.True(t, v.Perpendicular(1))
	assert.Equal(t, geom.Clockwise, v.CCW(1))
	assert.Equal(t, geom.Same, v.Orientation(2))
	assert.Equal(t, geom.Opposite, v.Orientation(-2))

	n := v.Neg()
	assert.Equal(t, vi(0, -1), n.Direction())
	assert.Equal(t, geom.CounterClockwise, n.CCW(1))
}

func TestVertical_LargeAndClassify(t *testing.T) {
	s := squareTorus(t)
	v, err := NewVertical(s, vi(0, 1))
	require.NoError(t, err)

	assert.True(t, v.Large(1), "horizontal span 1 dominates both faces")
	assert.True(t, v.Large(3))
	assert.False(t, v.Large(2), "a vertical edge is never large here")

	assert.Equal(t, RightVertical, v.ClassifyFace(1))
	assert.Equal(t, LeftVertical, v.ClassifyFace(-1))
}

func TestVertical_Components(t *testing.T) {
	s := squareTorus(t)
	v, err := NewVertical(s, vi(0, 1))
	require.NoError(t, err)

	// Edge 2 is vertical but does not disconnect the torus.
	components := v.Components()
	require.Len(t, components, 1)
	assert.Len(t, components[0], 2*s.Mesh().NEdges())

	// A vertical in a generic direction never stops the walk.
	g, err := NewVertical(s, vi(2, 1))
	require.NoError(t, err)
	components = g.Components()
	require.Len(t, components, 1)

	var vertical int
	for _, e := range s.Mesh().HalfEdges() {
		if g.Parallel(e) {
			vertical++
		}
	}
	assert.Zero(t, vertical)
}
