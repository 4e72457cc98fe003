package surface

import (
	"fmt"

	"github.com/flatgeom/flattri/mesh"
	"github.com/flatgeom/flattri/ring"
)

// Point locates a position on a surface by a face and barycentric
// weights on its corners: A at the source of Face, B at its target, C
// at the third corner. Weights are projective; scaling all three by a
// positive ring element names the same point.
type Point[T ring.Scalar[T]] struct {
	Face    mesh.HalfEdge
	A, B, C T
}

// NewPoint builds a point in the face of e. The weights must be
// non-negative and not all zero.
func NewPoint[T ring.Scalar[T]](s *Surface[T], e mesh.HalfEdge, a, b, c T) (Point[T], error) {
	if a.Sign() < 0 || b.Sign() < 0 || c.Sign() < 0 || (a.Sign() == 0 && b.Sign() == 0 && c.Sign() == 0) {
		return Point[T]{}, ErrBadPoint
	}
	return Point[T]{Face: e, A: a, B: b, C: c}.normalize(s), nil
}

// PointAtVertex returns the point at the source vertex of e.
func PointAtVertex[T ring.Scalar[T]](s *Surface[T], e mesh.HalfEdge, one T) Point[T] {
	return Point[T]{Face: e, A: one}.normalize(s)
}

// normalize rotates the representation so that Face is the canonical
// half-edge of its face, keeping the weights aligned with the corners.
func (p Point[T]) normalize(s *Surface[T]) Point[T] {
	m := s.Mesh()
	for i := 0; i < 2; i++ {
		n := m.NextInFace(p.Face)
		if less(p.Face, n) && less(p.Face, m.NextInFace(n)) {
			break
		}
		// Rotating the face one step moves each corner weight back.
		p = Point[T]{Face: n, A: p.B, B: p.C, C: p.A}
	}
	return p
}

// less orders half-edge labels as 1 < -1 < 2 < -2 < ...
func less(a, b mesh.HalfEdge) bool {
	if a.Edge() != b.Edge() {
		return a.Edge() < b.Edge()
	}
	return a > b
}

// IsVertex reports whether the point sits on a corner, returning the
// outgoing half-edge of that corner when it does.
func (p Point[T]) IsVertex(s *Surface[T]) (mesh.HalfEdge, bool) {
	m := s.Mesh()
	n := m.NextInFace(p.Face)
	switch {
	case p.B.Sign() == 0 && p.C.Sign() == 0:
		return p.Face, true
	case p.A.Sign() == 0 && p.C.Sign() == 0:
		return n, true
	case p.A.Sign() == 0 && p.B.Sign() == 0:
		return m.NextInFace(n), true
	}
	return 0, false
}

// Equal reports whether the two points coincide. Interior points
// compare projectively within a face; corner points compare as
// vertices.
func (p Point[T]) Equal(s *Surface[T], o Point[T]) bool {
	if pv, ok := p.IsVertex(s); ok {
		ov, okO := o.IsVertex(s)
		return okO && s.Mesh().SameVertex(pv, ov)
	}
	if _, ok := o.IsVertex(s); ok {
		return false
	}
	// On-edge points have two representations, one in each adjacent
	// face; rotate o into p's face if needed.
	if p.Face != o.Face {
		moved, ok := o.acrossEdge(s, p.Face)
		if !ok {
			return false
		}
		return p.Equal(s, moved)
	}
	// Projective comparison: cross-multiply the weights.
	return p.A.Mul(o.B).Cmp(p.B.Mul(o.A)) == 0 &&
		p.B.Mul(o.C).Cmp(p.C.Mul(o.B)) == 0 &&
		p.A.Mul(o.C).Cmp(p.C.Mul(o.A)) == 0
}

// acrossEdge rewrites an on-edge point into the representation of the
// face of target, if the point lies on an edge bordering that face.
func (p Point[T]) acrossEdge(s *Surface[T], target mesh.HalfEdge) (Point[T], bool) {
	m := s.Mesh()
	n := m.NextInFace(p.Face)
	pe := m.NextInFace(n)
	var onEdge mesh.HalfEdge
	var u, v T
	switch {
	case p.C.Sign() == 0:
		onEdge, u, v = p.Face, p.A, p.B
	case p.A.Sign() == 0:
		onEdge, u, v = n, p.B, p.C
	case p.B.Sign() == 0:
		onEdge, u, v = pe, p.C, p.A
	default:
		return Point[T]{}, false
	}
	face := [3]mesh.HalfEdge{target, m.NextInFace(target), m.NextInFace(m.NextInFace(target))}
	for i, e := range face {
		if e != -onEdge {
			continue
		}
		// The edge reverses: source and target weights swap, the third
		// corner gets weight zero.
		var zero T
		w := [3]T{}
		w[i] = v
		w[(i+1)%3] = u
		w[(i+2)%3] = zero
		return Point[T]{Face: target, A: w[0], B: w[1], C: w[2]}.normalize(s), true
	}
	return Point[T]{}, false
}

func (p Point[T]) String() string {
	return fmt.Sprintf("Point(%d: %v, %v, %v)", p.Face, p.A, p.B, p.C)
}
