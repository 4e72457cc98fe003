package surface

import (
	"fmt"

	"github.com/flatgeom/flattri/geom"
	"github.com/flatgeom/flattri/mesh"
	"github.com/flatgeom/flattri/ring"
)

// SaddleConnection is a straight segment on a surface: it leaves its
// start vertex inside the sector of Source and arrives at its end
// vertex inside the sector of Target, displaced by Vector. For a
// connection along a half-edge, Source is that half-edge and Target its
// opposite.
type SaddleConnection[T ring.Scalar[T]] struct {
	Source mesh.HalfEdge
	Target mesh.HalfEdge
	Vector geom.Vector[T]
}

// ConnectionAlong returns the saddle connection running along e.
func ConnectionAlong[T ring.Scalar[T]](s *Surface[T], e mesh.HalfEdge) SaddleConnection[T] {
	return SaddleConnection[T]{Source: e, Target: -e, Vector: s.FromHalfEdge(e)}
}

// ConnectionInSector builds a connection leaving in the sector of
// source with the given displacement; the source sector is normalized
// so that the vector actually lies in it.
func ConnectionInSector[T ring.Scalar[T]](s *Surface[T], source, target mesh.HalfEdge, v geom.Vector[T]) SaddleConnection[T] {
	return SaddleConnection[T]{
		Source: s.SectorOf(source, v),
		Target: s.SectorOf(target, v.Neg()),
		Vector: v,
	}
}

// Equal reports componentwise equality.
func (c SaddleConnection[T]) Equal(o SaddleConnection[T]) bool {
	return c.Source == o.Source && c.Target == o.Target && c.Vector.Sub(o.Vector).IsZero()
}

// Neg returns the connection traversed backwards.
func (c SaddleConnection[T]) Neg() SaddleConnection[T] {
	return SaddleConnection[T]{Source: c.Target, Target: c.Source, Vector: c.Vector.Neg()}
}

func (c SaddleConnection[T]) String() string {
	return fmt.Sprintf("SaddleConnection(%d->%d, %v)", c.Source, c.Target, c.Vector)
}

// Path is a sequence of saddle connections traversed end to end.
type Path[T ring.Scalar[T]] []SaddleConnection[T]

// PathAlong returns the path following the given half-edges.
func PathAlong[T ring.Scalar[T]](s *Surface[T], edges ...mesh.HalfEdge) Path[T] {
	p := make(Path[T], 0, len(edges))
	for _, e := range edges {
		p = append(p, ConnectionAlong(s, e))
	}
	return p
}

// Equal reports elementwise equality.
func (p Path[T]) Equal(o Path[T]) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if !p[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

func (p Path[T]) String() string {
	return fmt.Sprintf("Path%v", []SaddleConnection[T](p))
}
