package mesh

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlip_Torus(t *testing.T) {
	m := torus(t)
	require.NoError(t, m.Flip(1))

	// Old faces (1,2,3), (-1,-2,-3); the new diagonal closes (1,3,-2)
	// and (-1,-3,2).
	assert.Equal(t, HalfEdge(3), m.NextInFace(1))
	assert.Equal(t, HalfEdge(-2), m.NextInFace(3))
	assert.Equal(t, HalfEdge(1), m.NextInFace(-2))
	assert.Equal(t, HalfEdge(-3), m.NextInFace(-1))
	assert.Equal(t, HalfEdge(2), m.NextInFace(-3))
	assert.Equal(t, HalfEdge(-1), m.NextInFace(2))
	assert.Len(t, m.Vertices(), 1)
}

// TestFlip_FourTimesIsIdentity: each flip moves the diagonal to the
// other corner pair, and two flips return it with reversed orientation,
// so the fourth flip restores the original labels exactly.
func TestFlip_FourTimesIsIdentity(t *testing.T) {
	m := torus(t)
	for i := 0; i < 4; i++ {
		require.NoError(t, m.Flip(1))
		if i < 3 {
			assert.False(t, m.Equal(torus(t)), "flip %d must not be the identity", i+1)
		}
	}
	assert.True(t, m.Equal(torus(t)))
}

func TestFlip_SameFace(t *testing.T) {
	// A cone-like gluing where edge 2 borders a single face (1,2,-2).
	m, err := NewFromFaces([][3]HalfEdge{{1, 2, -2}, {-1, 3, -3}})
	require.NoError(t, err)

	assert.ErrorIs(t, m.Flip(2), ErrSameFace)
	assert.ErrorIs(t, m.Flip(-2), ErrSameFace)
}

func TestInsertAt_Torus(t *testing.T) {
	m := torus(t)
	a, err := m.InsertAt(1)
	require.NoError(t, err)
	require.Equal(t, HalfEdge(4), a)

	assert.Equal(t, 6, m.NEdges())
	assert.Equal(t, -a, m.NextAtVertex(1))
	assert.Len(t, m.Vertices(), 2)

	// The face (1,2,3) splits into (1,-5,4), (2,-6,5) and (3,-4,6).
	assert.Equal(t, HalfEdge(-5), m.NextInFace(1))
	assert.Equal(t, HalfEdge(4), m.NextInFace(-5))
	assert.Equal(t, HalfEdge(-6), m.NextInFace(2))
	assert.Equal(t, HalfEdge(5), m.NextInFace(-6))
	assert.Equal(t, HalfEdge(-4), m.NextInFace(3))
	assert.Equal(t, HalfEdge(6), m.NextInFace(-4))

	// The new vertex has degree 3 with fan (4,5,6).
	if diff := cmp.Diff([]HalfEdge{4, 5, 6}, m.AtVertex(a)); diff != "" {
		assert.Fail(t, "fan of inserted vertex", diff)
	}
}

// TestCollapse_UndoesInsert inserts a vertex into a torus face and
// contracts one of the new edges again; the result is a torus whose
// labels shifted down, with edge 3 surviving in reversed orientation.
func TestCollapse_UndoesInsert(t *testing.T) {
	m := torus(t)
	a, err := m.InsertAt(1)
	require.NoError(t, err)

	mapping, err := m.Collapse(a)
	require.NoError(t, err)

	want, err := NewFromFaces([][3]HalfEdge{{1, 2, -3}, {3, -1, -2}})
	require.NoError(t, err)
	assert.True(t, m.Equal(want), "got %v, want %v", m, want)

	expected := map[HalfEdge]HalfEdge{
		1: 1, -1: -1,
		2: 2, -2: -2,
		3: -3, -3: 3, // identified with edge 6 across the collapse
		4: 0, -4: 0,
		5: 1, -5: -1, // identified with edge 1
		6: 3, -6: -3,
	}
	if diff := cmp.Diff(expected, mapping); diff != "" {
		assert.Fail(t, "half-edge mapping", diff)
	}
}

func TestCollapse_Errors(t *testing.T) {
	// Every edge of the torus is a loop at its single vertex.
	_, err := torus(t).Collapse(1)
	assert.ErrorIs(t, err, ErrLoopCollapse)

	// On the doubled triangle the two faces share all three edges, so
	// the bigon identifications would chain.
	sphere, err := NewFromFaces([][3]HalfEdge{{1, 2, 3}, {-3, -2, -1}})
	require.NoError(t, err)
	_, err = sphere.Collapse(1)
	assert.ErrorIs(t, err, ErrDegenerateCollapse)
}

func TestSlit_Torus(t *testing.T) {
	m := torus(t)
	N, err := m.Slit(1)
	require.NoError(t, err)
	require.Equal(t, HalfEdge(4), N)

	assert.True(t, m.HasBoundary())
	assert.True(t, m.Boundary(-1))
	assert.True(t, m.Boundary(N))
	assert.False(t, m.Boundary(1))
	assert.False(t, m.Boundary(-N))

	// -4 replaces -1 in the face (-1,-2,-3); the boundary sides orbit
	// themselves.
	assert.Equal(t, HalfEdge(-2), m.NextInFace(-4))
	assert.Equal(t, HalfEdge(-4), m.NextInFace(-3))
	assert.Equal(t, HalfEdge(-1), m.NextInFace(-1))
	assert.Len(t, m.Faces(), 2)

	// The vertex stays whole; both new sides join its fan.
	if diff := cmp.Diff([]HalfEdge{1, 4, -3, 2, -4, -1, 3, -2}, m.AtVertex(1)); diff != "" {
		assert.Fail(t, "fan after slit", diff)
	}

	// Mutations reject the boundary sides.
	assert.ErrorIs(t, m.Flip(-1), ErrBoundaryEdge)
	_, err = m.Collapse(1)
	assert.ErrorIs(t, err, ErrBoundaryEdge)
	_, err = m.InsertAt(-1)
	assert.ErrorIs(t, err, ErrBoundaryEdge)
}
