package deform

import (
	"github.com/flatgeom/flattri/geom"
	"github.com/flatgeom/flattri/mesh"
	"github.com/flatgeom/flattri/ring"
	"github.com/flatgeom/flattri/surface"
)

// Slit cuts the surface open along the edge of e. A fresh edge carrying
// the same vector takes over the face on the right of e; both sides of
// the cut become boundary. The relation has no section: nothing maps
// back across the seam.
func Slit[T ring.Scalar[T]](s *surface.Surface[T], e mesh.HalfEdge) (*Relation[T], error) {
	m := s.Mesh().Clone()
	n, err := m.Slit(e)
	if err != nil {
		return nil, err
	}

	vectors := make([]geom.Vector[T], m.NEdges())
	for _, pos := range s.Mesh().Edges() {
		vectors[pos-1] = s.FromHalfEdge(pos)
	}
	vectors[n-1] = s.FromHalfEdge(e)

	codomain, err := surface.New(m, vectors)
	if err != nil {
		return nil, err
	}
	return newRelation(KindSlit, s, codomain), nil
}
