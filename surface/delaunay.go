package surface

import (
	"github.com/flatgeom/flattri/geom"
	"github.com/flatgeom/flattri/mesh"
	"github.com/flatgeom/flattri/ring"
)

// DelaunayState classifies an edge against the empty-circumcircle
// criterion.
type DelaunayState int

const (
	// Delaunay: the opposite vertices lie strictly outside each other's
	// circumcircle.
	Delaunay DelaunayState = iota
	// Ambiguous: the four vertices are cocircular; both diagonals
	// satisfy the criterion.
	Ambiguous
	// NonDelaunay: an opposite vertex lies strictly inside the
	// circumcircle; the edge must be flipped.
	NonDelaunay
)

func (d DelaunayState) String() string {
	switch d {
	case Delaunay:
		return "DELAUNAY"
	case Ambiguous:
		return "AMBIGUOUS"
	case NonDelaunay:
		return "NON_DELAUNAY"
	default:
		return "DelaunayState(?)"
	}
}

// Classify applies the exact incircle test to the edge of e: with the
// quadrilateral placed so that e's endpoints and the two opposite
// vertices are lifted onto the paraboloid z = x²+y², the sign of the
// lifted 3x3 determinant decides on which side of the circumcircle the
// fourth vertex lies.
// Complexity: O(1) ring ops.
func (s *Surface[T]) Classify(e mesh.HalfEdge) DelaunayState {
	if e < 0 {
		e = -e
	}
	// Place the tail of e at the origin. ca spans e's face side, cb the
	// next sector ray, dc reaches the opposite vertex across -e.
	ca := s.FromHalfEdge(e)
	cb := s.FromHalfEdge(s.m.NextAtVertex(e))
	dc := s.FromHalfEdge(-s.m.NextInFace(-e))

	a := dc.Add(ca)
	b := dc.Add(cb)
	c := dc

	switch sign := incircle(a, b, c); {
	case sign < 0:
		return Delaunay
	case sign == 0:
		return Ambiguous
	default:
		return NonDelaunay
	}
}

// incircle returns the sign of
//
//	| a.x  a.y  |a|² |
//	| b.x  b.y  |b|² |
//	| c.x  c.y  |c|² |
//
// which is positive when the origin lies strictly inside the circle
// through a, b and c (taken counterclockwise).
func incircle[T ring.Scalar[T]](a, b, c geom.Vector[T]) int {
	la := a.Dot(a)
	lb := b.Dot(b)
	lc := c.Dot(c)
	det := a.X.Mul(b.Y.Mul(lc).Sub(c.Y.Mul(lb))).
		Sub(a.Y.Mul(b.X.Mul(lc).Sub(c.X.Mul(lb)))).
		Add(la.Mul(b.X.Mul(c.Y).Sub(b.Y.Mul(c.X))))
	return det.Sign()
}

// Delaunay flips edges until every edge classifies as Delaunay or
// Ambiguous. The flip of a non-Delaunay edge always crosses a strictly
// convex quadrilateral, and each flip strictly decreases the lifted
// surface, so the loop terminates.
func (s *Surface[T]) Delaunay() {
	for {
		flipped := false
		for _, e := range s.m.Edges() {
			if s.m.Boundary(e) || s.m.Boundary(-e) {
				continue
			}
			if s.Classify(e) != NonDelaunay {
				continue
			}
			if err := s.Flip(e); err != nil {
				// A non-Delaunay quadrilateral is strictly convex.
				panic("surface: non-Delaunay edge refused to flip: " + err.Error())
			}
			flipped = true
		}
		if !flipped {
			return
		}
	}
}
