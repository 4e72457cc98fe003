package surface

import (
	"github.com/flatgeom/flattri/geom"
	"github.com/flatgeom/flattri/mesh"
	"github.com/flatgeom/flattri/ring"
)

// Triangle classifies a face against a vertical direction by the
// horizontal spans of its sides.
type Triangle int

const (
	// Forward: the two non-large sides both advance horizontally.
	Forward Triangle = iota
	// Backward: the large side advances alone.
	Backward
	// LeftVertical: the side entering the large side is vertical.
	LeftVertical
	// RightVertical: the side leaving the large side is vertical.
	RightVertical
)

func (t Triangle) String() string {
	switch t {
	case Forward:
		return "FORWARD"
	case Backward:
		return "BACKWARD"
	case LeftVertical:
		return "LEFT_VERTICAL"
	case RightVertical:
		return "RIGHT_VERTICAL"
	default:
		return "Triangle(?)"
	}
}

// Vertical fixes a direction on a surface and measures half-edges
// against it. The horizontal direction is the vertical rotated a
// quarter turn clockwise, so (horizontal, vertical) is positively
// oriented.
type Vertical[T ring.Scalar[T]] struct {
	s          *Surface[T]
	vertical   geom.Vector[T]
	horizontal geom.Vector[T]
}

// NewVertical fixes the direction v on s. v must be non-zero.
func NewVertical[T ring.Scalar[T]](s *Surface[T], v geom.Vector[T]) (*Vertical[T], error) {
	if v.IsZero() {
		return nil, ErrZeroVector
	}
	return &Vertical[T]{s: s, vertical: v, horizontal: v.Perp().Neg()}, nil
}

// Surface returns the underlying surface.
func (v *Vertical[T]) Surface() *Surface[T] { return v.s }

// Direction returns the vertical vector.
func (v *Vertical[T]) Direction() geom.Vector[T] { return v.vertical }

// Horizontal returns the horizontal vector.
func (v *Vertical[T]) Horizontal() geom.Vector[T] { return v.horizontal }

// Neg returns the vertical with the opposite direction.
func (v *Vertical[T]) Neg() *Vertical[T] {
	return &Vertical[T]{s: v.s, vertical: v.vertical.Neg(), horizontal: v.horizontal.Neg()}
}

// Project returns the component of w along the vertical, scaled by its
// length squared.
func (v *Vertical[T]) Project(w geom.Vector[T]) T { return v.vertical.Dot(w) }

// ProjectPerpendicular returns the component of w along the horizontal,
// scaled by its length squared.
func (v *Vertical[T]) ProjectPerpendicular(w geom.Vector[T]) T { return v.horizontal.Dot(w) }

// CCW reports the turn from the vertical to the vector of e.
func (v *Vertical[T]) CCW(e mesh.HalfEdge) geom.CCW {
	return v.vertical.CCW(v.s.FromHalfEdge(e))
}

// Orientation reports whether the vector of e points with, against or
// orthogonal to the vertical.
func (v *Vertical[T]) Orientation(e mesh.HalfEdge) geom.Orientation {
	return v.vertical.Orientation(v.s.FromHalfEdge(e))
}

// Parallel reports whether e is parallel to the vertical.
func (v *Vertical[T]) Parallel(e mesh.HalfEdge) bool {
	return v.CCW(e) == geom.Collinear
}

// Perpendicular reports whether e is orthogonal to the vertical.
func (v *Vertical[T]) Perpendicular(e mesh.HalfEdge) bool {
	return v.Orientation(e) == geom.Orthogonal
}

// Large reports whether the horizontal span of e dominates the spans of
// the other sides in both adjacent faces.
func (v *Vertical[T]) Large(e mesh.HalfEdge) bool {
	span := func(x mesh.HalfEdge) T {
		p := v.ProjectPerpendicular(v.s.FromHalfEdge(x))
		if p.Sign() < 0 {
			return p.Neg()
		}
		return p
	}
	m := v.s.Mesh()
	le := span(e)
	for _, other := range []mesh.HalfEdge{
		m.NextInFace(e), m.PrevInFace(e), m.NextInFace(-e), m.PrevInFace(-e),
	} {
		if le.Cmp(span(other)) < 0 {
			return false
		}
	}
	return true
}

// ClassifyFace classifies the face of e. The face is rotated to its
// side with positive horizontal span; the spans of the two remaining
// sides then decide the class.
func (v *Vertical[T]) ClassifyFace(e mesh.HalfEdge) Triangle {
	m := v.s.Mesh()
	for {
		perp := v.ProjectPerpendicular(v.s.FromHalfEdge(e))
		if perp.Sign() <= 0 {
			// At most one side of a face is vertical and some side has
			// positive span, so this terminates within the triangle.
			e = m.NextInFace(e)
			continue
		}
		a := v.ProjectPerpendicular(v.s.FromHalfEdge(m.NextInFace(e)))
		b := v.ProjectPerpendicular(v.s.FromHalfEdge(m.PrevInFace(e)))
		switch {
		case a.Sign() == 0:
			return RightVertical
		case b.Sign() == 0:
			return LeftVertical
		case a.Sign() > 0 || b.Sign() > 0:
			return Forward
		default:
			return Backward
		}
	}
}

// Components partitions the half-edges into groups connected without
// crossing a vertical edge: from a non-vertical half-edge the walk
// spreads to its opposite and its two face companions, while a vertical
// half-edge joins a component but stops the walk.
// Complexity: O(n).
func (v *Vertical[T]) Components() [][]mesh.HalfEdge {
	m := v.s.Mesh()
	var components [][]mesh.HalfEdge
	done := make(map[mesh.HalfEdge]bool, 2*m.NEdges())
	for _, start := range m.HalfEdges() {
		if done[start] {
			continue
		}
		// Vertical half-edges border two components and may appear in
		// both, so membership is tracked per component.
		seen := make(map[mesh.HalfEdge]bool)
		var component []mesh.HalfEdge
		stack := []mesh.HalfEdge{start}
		for len(stack) > 0 {
			e := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if seen[e] {
				continue
			}
			seen[e] = true
			done[e] = true
			component = append(component, e)
			if v.Parallel(e) {
				continue
			}
			stack = append(stack, -e, m.NextInFace(e), m.PrevInFace(e))
		}
		components = append(components, component)
	}
	return components
}
