package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flatgeom/flattri/geom"
	"github.com/flatgeom/flattri/mesh"
	"github.com/flatgeom/flattri/ring"
	"github.com/flatgeom/flattri/surface"
)

func vi(x, y int64) geom.Vector[ring.Int64] {
	return geom.V(ring.I(x), ring.I(y))
}

func torus(t *testing.T) *surface.Surface[ring.Int64] {
	t.Helper()
	m, err := mesh.NewFromCycles([][]mesh.HalfEdge{{1, -3, 2, -1, 3, -2}})
	require.NoError(t, err)
	s, err := surface.New(m, []geom.Vector[ring.Int64]{vi(1, 0), vi(0, 1), vi(-1, -1)})
	require.NoError(t, err)
	return s
}

func TestSVG(t *testing.T) {
	var buf bytes.Buffer
	SVG(&buf, torus(t), Options{})

	out := buf.String()
	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "<?xml"))
	assert.Contains(t, out, "<svg")
	assert.Equal(t, 2, strings.Count(out, "<polygon"), "one polygon per face")
	assert.Contains(t, out, "</svg>")
}

func TestSVG_NoLabels(t *testing.T) {
	var buf bytes.Buffer
	SVG(&buf, torus(t), Options{Width: 400, NoLabels: true})
	assert.NotContains(t, buf.String(), "<text")
}

func TestDevelop_SharedCorners(t *testing.T) {
	s := torus(t)
	faces := develop(s)
	require.Len(t, faces, 2)

	// The second face is unfolded across an edge of the first, so they
	// share two corners.
	shared := 0
	for _, a := range faces[0].corners {
		for _, b := range faces[1].corners {
			if a == b {
				shared++
			}
		}
	}
	assert.Equal(t, 2, shared)
}
