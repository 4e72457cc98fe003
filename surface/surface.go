package surface

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/flatgeom/flattri/geom"
	"github.com/flatgeom/flattri/mesh"
	"github.com/flatgeom/flattri/ring"
)

// Surface is a flat triangulated surface: a combinatorial mesh whose
// half-edges carry exact planar vectors. Vectors are stored once per
// edge; the opposite half-edge sees the negation.
type Surface[T ring.Scalar[T]] struct {
	m   *mesh.Mesh
	vec []geom.Vector[T] // by positive edge label, vec[e-1]
}

// New builds a Surface over m with vectors[i] assigned to edge i+1. It
// rejects zero vectors, faces that do not close up and faces that are
// not positively oriented.
// Complexity: O(n).
func New[T ring.Scalar[T]](m *mesh.Mesh, vectors []geom.Vector[T]) (*Surface[T], error) {
	if len(vectors) != m.NEdges() {
		return nil, ErrVectorCount
	}
	s := &Surface[T]{m: m, vec: append([]geom.Vector[T](nil), vectors...)}
	if err := s.check(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Surface[T]) check() error {
	for _, v := range s.vec {
		if v.IsZero() {
			return ErrZeroVector
		}
	}
	for _, f := range s.m.Faces() {
		a := s.FromHalfEdge(f[0])
		b := s.FromHalfEdge(f[1])
		c := s.FromHalfEdge(f[2])
		if !a.Add(b).Add(c).IsZero() {
			return ErrFaceOpen
		}
		if a.CCW(b) != geom.CounterClockwise {
			return ErrFaceOrientation
		}
	}
	return nil
}

// Mesh returns the underlying combinatorial mesh. Callers must treat it
// as read-only; all mutations go through Surface methods.
func (s *Surface[T]) Mesh() *mesh.Mesh { return s.m }

// FromHalfEdge returns the vector along e. Complexity: O(1).
func (s *Surface[T]) FromHalfEdge(e mesh.HalfEdge) geom.Vector[T] {
	if e > 0 {
		return s.vec[e-1]
	}
	return s.vec[-e-1].Neg()
}

// setVector assigns the vector along e, negating for the stored side.
func (s *Surface[T]) setVector(e mesh.HalfEdge, v geom.Vector[T]) {
	if e > 0 {
		s.vec[e-1] = v
	} else {
		s.vec[-e-1] = v.Neg()
	}
}

// Convex reports whether the quadrilateral around the edge of e is
// convex at the two corners not touching e; with strict set, collinear
// corners do not count. A flip is geometrically sound exactly when this
// holds strictly.
func (s *Surface[T]) Convex(e mesh.HalfEdge, strict bool) bool {
	n := s.m.NextInFace(e)
	p := s.m.NextInFace(n)
	o := s.m.NextInFace(-e)
	q := s.m.NextInFace(o)
	a := s.FromHalfEdge(p).CCW(s.FromHalfEdge(o))
	b := s.FromHalfEdge(q).CCW(s.FromHalfEdge(n))
	if strict {
		return a == geom.CounterClockwise && b == geom.CounterClockwise
	}
	return a != geom.Clockwise && b != geom.Clockwise
}

// Flip replaces the edge of e with the other diagonal of its
// quadrilateral, which must be strictly convex. Writing the old faces
// as (e, n, p) and (-e, o, q), the new vector is v(n)+v(q).
// Complexity: O(1).
func (s *Surface[T]) Flip(e mesh.HalfEdge) error {
	if s.m.Boundary(e) || s.m.Boundary(-e) {
		return mesh.ErrBoundaryEdge
	}
	n := s.m.NextInFace(e)
	if n == -e || s.m.NextInFace(n) == -e {
		return mesh.ErrSameFace
	}
	if !s.Convex(e, true) {
		return ErrNonConvex
	}
	q := s.m.PrevInFace(-e)
	diagonal := s.FromHalfEdge(n).Add(s.FromHalfEdge(q))
	if err := s.m.Flip(e); err != nil {
		return err
	}
	s.setVector(e, diagonal)
	return nil
}

// Clone returns an independent deep copy.
func (s *Surface[T]) Clone() *Surface[T] {
	return &Surface[T]{
		m:   s.m.Clone(),
		vec: append([]geom.Vector[T](nil), s.vec...),
	}
}

// Scale multiplies every vector by the integer n.
func (s *Surface[T]) Scale(n *big.Int) {
	for i := range s.vec {
		s.vec[i] = s.vec[i].MulBig(n)
	}
}

// Area returns twice the total area of the surface: the sum of the
// doubled triangle areas over all faces.
func (s *Surface[T]) Area() T {
	var total T
	for _, f := range s.m.Faces() {
		total = total.Add(s.FromHalfEdge(f[0]).Cross(s.FromHalfEdge(f[1])))
	}
	return total
}

// Shortest returns a half-edge of minimal length.
func (s *Surface[T]) Shortest() mesh.HalfEdge {
	best := mesh.HalfEdge(1)
	for _, e := range s.m.Edges() {
		if s.FromHalfEdge(e).LengthCmp(s.FromHalfEdge(best)) < 0 {
			best = e
		}
	}
	return best
}

// ShortestInDirection returns the shortest half-edge pointing exactly
// in direction d, or 0 if none does.
func (s *Surface[T]) ShortestInDirection(d geom.Vector[T]) mesh.HalfEdge {
	var best mesh.HalfEdge
	for _, e := range s.m.HalfEdges() {
		v := s.FromHalfEdge(e)
		if v.CCW(d) != geom.Collinear || v.Orientation(d) != geom.Same {
			continue
		}
		if best == 0 || v.LengthCmp(s.FromHalfEdge(best)) < 0 {
			best = e
		}
	}
	return best
}

// InSector reports whether d points into the sector counterclockwise
// from e to nextAtVertex(e), including e's ray and excluding the next
// ray. Sectors of a triangulation span less than a half turn.
func (s *Surface[T]) InSector(e mesh.HalfEdge, d geom.Vector[T]) bool {
	from := s.FromHalfEdge(e)
	to := s.FromHalfEdge(s.m.NextAtVertex(e))
	switch from.CCW(d) {
	case geom.Clockwise:
		return false
	case geom.Collinear:
		return from.Orientation(d) == geom.Same
	}
	return to.CCW(d) == geom.Clockwise
}

// SectorOf returns the outgoing half-edge at the vertex of start whose
// sector contains d.
func (s *Surface[T]) SectorOf(start mesh.HalfEdge, d geom.Vector[T]) mesh.HalfEdge {
	e := start
	for {
		if s.InSector(e, d) {
			return e
		}
		e = s.m.NextAtVertex(e)
		if e == start {
			// Sectors partition the full angle; one of them matched.
			panic("surface: no sector contains the direction")
		}
	}
}

// Angle returns the total angle at the vertex of e in multiples of a
// full turn. Marked points have angle 1; cone points have angle > 1.
// Complexity: O(degree).
func (s *Surface[T]) Angle(e mesh.HalfEdge) int {
	inRight := func(v geom.Vector[T]) bool {
		sx := v.X.Sign()
		return sx > 0 || (sx == 0 && v.Y.Sign() > 0)
	}
	turns := 0
	for _, a := range s.m.AtVertex(e) {
		if inRight(s.FromHalfEdge(a)) && !inRight(s.FromHalfEdge(s.m.NextAtVertex(a))) {
			turns++
		}
	}
	if turns == 0 {
		// The fan never crosses the vertical; it still spans one turn.
		turns = 1
	}
	return turns
}

// Equal reports whether the two surfaces have identical combinatorics
// and identical vectors under the same labels.
func (s *Surface[T]) Equal(o *Surface[T]) bool {
	if !s.m.Equal(o.m) {
		return false
	}
	for i := range s.vec {
		if !s.vec[i].Sub(o.vec[i]).IsZero() {
			return false
		}
	}
	return true
}

// String renders the faces with their vectors for diagnostics.
func (s *Surface[T]) String() string {
	var sb strings.Builder
	sb.WriteString("Surface(")
	for i, f := range s.m.Faces() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "(%d: %v, %d: %v, %d: %v)",
			f[0], s.FromHalfEdge(f[0]),
			f[1], s.FromHalfEdge(f[1]),
			f[2], s.FromHalfEdge(f[2]))
	}
	sb.WriteString(")")
	return sb.String()
}
