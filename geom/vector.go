package geom

import (
	"fmt"
	"math/big"

	"github.com/flatgeom/flattri/ring"
)

// Vector is an exact displacement in the plane with coordinates in T.
// The zero value is the zero vector.
type Vector[T ring.Scalar[T]] struct {
	X, Y T
}

// V builds a vector from its coordinates.
func V[T ring.Scalar[T]](x, y T) Vector[T] { return Vector[T]{X: x, Y: y} }

// Add returns v+w. Complexity: O(1) ring ops.
func (v Vector[T]) Add(w Vector[T]) Vector[T] {
	return Vector[T]{X: v.X.Add(w.X), Y: v.Y.Add(w.Y)}
}

// Sub returns v-w.
func (v Vector[T]) Sub(w Vector[T]) Vector[T] {
	return Vector[T]{X: v.X.Sub(w.X), Y: v.Y.Sub(w.Y)}
}

// Neg returns -v.
func (v Vector[T]) Neg() Vector[T] {
	return Vector[T]{X: v.X.Neg(), Y: v.Y.Neg()}
}

// Dot returns the scalar product v·w.
func (v Vector[T]) Dot(w Vector[T]) T {
	return v.X.Mul(w.X).Add(v.Y.Mul(w.Y))
}

// Cross returns the z-component of v×w.
func (v Vector[T]) Cross(w Vector[T]) T {
	return v.X.Mul(w.Y).Sub(v.Y.Mul(w.X))
}

// CCW reports the turn from v to w: the sign of v×w.
func (v Vector[T]) CCW(w Vector[T]) CCW {
	return CCW(v.Cross(w).Sign())
}

// Orientation reports the relative direction of v and w: the sign of v·w.
func (v Vector[T]) Orientation(w Vector[T]) Orientation {
	return Orientation(v.Dot(w).Sign())
}

// IsZero reports whether both coordinates vanish.
func (v Vector[T]) IsZero() bool {
	return v.X.Sign() == 0 && v.Y.Sign() == 0
}

// Perp returns v rotated by a quarter turn counterclockwise.
func (v Vector[T]) Perp() Vector[T] {
	return Vector[T]{X: v.Y.Neg(), Y: v.X}
}

// MulBig returns v scaled by an integer.
func (v Vector[T]) MulBig(n *big.Int) Vector[T] {
	return Vector[T]{X: v.X.MulBig(n), Y: v.Y.MulBig(n)}
}

// QuoPow2 returns v/2^k, reporting whether the division was exact.
func (v Vector[T]) QuoPow2(k uint) (Vector[T], bool) {
	x, okx := v.X.QuoPow2(k)
	y, oky := v.Y.QuoPow2(k)
	return Vector[T]{X: x, Y: y}, okx && oky
}

// LengthCmp compares |v| and |w| exactly via squared lengths.
func (v Vector[T]) LengthCmp(w Vector[T]) int {
	return v.Dot(v).Cmp(w.Dot(w))
}

// Float64 returns the shadow approximation of v for diagnostics.
func (v Vector[T]) Float64() (x, y float64) {
	return v.X.Float64(), v.Y.Float64()
}

// String renders v for diagnostics.
func (v Vector[T]) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}
