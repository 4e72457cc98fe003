package mesh

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// torus returns the combinatorics of the square torus: one vertex, three
// edges, faces (1,2,3) and (-1,-2,-3).
func torus(t *testing.T) *Mesh {
	t.Helper()
	m, err := NewFromCycles([][]HalfEdge{{1, -3, 2, -1, 3, -2}})
	require.NoError(t, err)
	return m
}

// TestNewFromCycles_Torus pins the rotation conventions on the square
// torus: nextInFace(e) == -prevAtVertex(e).
func TestNewFromCycles_Torus(t *testing.T) {
	m := torus(t)

	assert.Equal(t, 3, m.NEdges())
	assert.Equal(t, HalfEdge(-3), m.NextAtVertex(1))
	assert.Equal(t, HalfEdge(-2), m.PrevAtVertex(1))
	assert.Equal(t, HalfEdge(2), m.NextInFace(1))
	assert.Equal(t, HalfEdge(3), m.NextInFace(2))
	assert.Equal(t, HalfEdge(1), m.NextInFace(3))
	assert.Equal(t, HalfEdge(-2), m.NextInFace(-1))
	assert.Equal(t, HalfEdge(3), m.PrevInFace(1))

	assert.Len(t, m.Vertices(), 1)
	faces := m.Faces()
	require.Len(t, faces, 2)
	assert.False(t, m.HasBoundary())

	assert.True(t, m.SameVertex(1, -1), "the torus has a single vertex")
	if diff := cmp.Diff([]HalfEdge{1, -3, 2, -1, 3, -2}, m.AtVertex(1)); diff != "" {
		assert.Fail(t, "vertex fan mismatch", diff)
	}
}

// TestNewFromFaces_MatchesCycles builds the torus from its face triples
// and expects the same rotations as the cycle constructor.
func TestNewFromFaces_MatchesCycles(t *testing.T) {
	fromFaces, err := NewFromFaces([][3]HalfEdge{{1, 2, 3}, {-1, -2, -3}})
	require.NoError(t, err)
	assert.True(t, fromFaces.Equal(torus(t)))
}

// TestNewFromCycles_Validation rejects malformed rotation input.
func TestNewFromCycles_Validation(t *testing.T) {
	// Label 2 missing, -2 doubled.
	_, err := NewFromCycles([][]HalfEdge{{1, -2, -2, -1}})
	assert.ErrorIs(t, err, ErrBadRotation)

	// Zero label.
	_, err = NewFromCycles([][]HalfEdge{{1, 0, -1, 2, -2, 3, -3}})
	assert.ErrorIs(t, err, ErrBadRotation)

	// A quadrilateral face is not a triangulation.
	_, err = NewFromCycles([][]HalfEdge{{1, 2, -1, -2}})
	assert.ErrorIs(t, err, ErrNotTriangulated)
}

// TestClone_Independence mutates a clone and expects the original to be
// untouched.
func TestClone_Independence(t *testing.T) {
	m := torus(t)
	c := m.Clone()
	require.NoError(t, c.Flip(1))

	assert.True(t, torus(t).Equal(m), "original must not alias the clone")
	assert.False(t, c.Equal(m))
}
