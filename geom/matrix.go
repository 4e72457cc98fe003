package geom

import (
	"fmt"

	"github.com/flatgeom/flattri/ring"
)

// Mat2 is an exact 2×2 linear map
//
//	┌ A B ┐
//	└ C D ┘
//
// applied to column vectors.
type Mat2[T ring.Scalar[T]] struct {
	A, B, C, D T
}

// IdentityOf returns the identity map, deriving the unit from a sample
// non-zero scalar u by u/u.
func IdentityOf[T ring.Scalar[T]](u T) (Mat2[T], bool) {
	one, ok := u.Quo(u)
	if !ok {
		return Mat2[T]{}, false
	}
	var zero T
	return Mat2[T]{A: one, B: zero, C: zero, D: one}, true
}

// Apply returns m·v.
func (m Mat2[T]) Apply(v Vector[T]) Vector[T] {
	return Vector[T]{
		X: m.A.Mul(v.X).Add(m.B.Mul(v.Y)),
		Y: m.C.Mul(v.X).Add(m.D.Mul(v.Y)),
	}
}

// Det returns the determinant of m.
func (m Mat2[T]) Det() T {
	return m.A.Mul(m.D).Sub(m.B.Mul(m.C))
}

// Inverse returns the exact inverse of m, reporting false when the
// determinant is zero or some entry of the inverse leaves the ring.
func (m Mat2[T]) Inverse() (Mat2[T], bool) {
	det := m.Det()
	if det.Sign() == 0 {
		return Mat2[T]{}, false
	}
	a, oka := m.D.Quo(det)
	b, okb := m.B.Neg().Quo(det)
	c, okc := m.C.Neg().Quo(det)
	d, okd := m.A.Quo(det)
	if !oka || !okb || !okc || !okd {
		return Mat2[T]{}, false
	}
	return Mat2[T]{A: a, B: b, C: c, D: d}, true
}

// Equal reports exact equality of two maps.
func (m Mat2[T]) Equal(n Mat2[T]) bool {
	return m.A.Cmp(n.A) == 0 && m.B.Cmp(n.B) == 0 && m.C.Cmp(n.C) == 0 && m.D.Cmp(n.D) == 0
}

// String renders m for diagnostics.
func (m Mat2[T]) String() string {
	return fmt.Sprintf("[%v %v; %v %v]", m.A, m.B, m.C, m.D)
}
