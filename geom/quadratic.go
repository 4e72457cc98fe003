package geom

import (
	"fmt"
	"math/big"

	"github.com/flatgeom/flattri/ring"
)

// Quadratic is the signed-area polynomial of a deforming triangle,
//
//	q(t) = A·t² + B·t + C,
//
// with q(0) = C equal to the (positive) doubled area of the undeformed
// triangle. All root queries below concern the smallest root in (0, 1]
// and are decided exactly in ring arithmetic: there is no precision
// parameter and no approximation fallback.
type Quadratic[T ring.Scalar[T]] struct {
	A, B, C T
}

// bisectionCap bounds the refinement rounds in RootCmp. Distinct
// algebraic roots separate after finitely many rounds; reaching the cap
// means the equal-root test is broken, which is a kernel bug.
const bisectionCap = 4096

// Eval0 returns q(0).
func (q Quadratic[T]) Eval0() T { return q.C }

// PositiveOn01 reports whether q(t) > 0 for every t in [0, 1].
// Complexity: O(1) ring ops.
func (q Quadratic[T]) PositiveOn01() bool {
	if q.C.Sign() <= 0 {
		return false
	}
	if q.A.Add(q.B).Add(q.C).Sign() <= 0 {
		return false
	}
	// A convex parabola can still dip below zero between positive
	// endpoints; that happens exactly when the vertex -B/2A lies in
	// (0, 1) and the discriminant is non-negative.
	if q.A.Sign() > 0 && q.B.Sign() < 0 && q.B.Neg().Cmp(q.A.Shl(1)) < 0 {
		disc := q.B.Mul(q.B).Sub(q.A.Mul(q.C).Shl(2))
		return disc.Sign() < 0
	}
	return true
}

// HasRootIn01 reports whether q vanishes somewhere in (0, 1], assuming
// q(0) > 0.
func (q Quadratic[T]) HasRootIn01() bool { return !q.PositiveOn01() }

// PositiveOnDyadic reports whether q(t) > 0 for every t in [0, 1/2^k].
func (q Quadratic[T]) PositiveOnDyadic(k uint) bool {
	return q.positiveOnPrefix(big.NewInt(1), k)
}

// positiveOnPrefix reports whether q(t) > 0 for every t in
// [0, num/2^k], for 0 <= num/2^k <= 1.
func (q Quadratic[T]) positiveOnPrefix(num *big.Int, k uint) bool {
	if num.Sign() == 0 {
		return q.C.Sign() > 0
	}
	den := new(big.Int).Lsh(big.NewInt(1), k)
	nn := new(big.Int).Mul(num, num)
	nd := new(big.Int).Mul(num, den)
	dd := new(big.Int).Mul(den, den)
	scaled := Quadratic[T]{A: q.A.MulBig(nn), B: q.B.MulBig(nd), C: q.C.MulBig(dd)}
	return scaled.PositiveOn01()
}

// evalRat returns q(num/den)·den², whose sign is the sign of q at the
// rational num/den whenever den > 0.
func (q Quadratic[T]) evalRat(num, den T) T {
	return q.A.Mul(num).Mul(num).
		Add(q.B.Mul(num).Mul(den)).
		Add(q.C.Mul(den).Mul(den))
}

// slopeRat returns q'(num/den)·den = 2A·num/den·den + B·den, whose sign
// is the sign of the slope at num/den whenever den > 0.
func (q Quadratic[T]) slopeRat(num, den T) T {
	return q.A.Shl(1).Mul(num).Add(q.B.Mul(den))
}

// CmpRootRat compares the smallest root t* of q in (0, 1] with the ring
// rational num/den: -1 if t* < num/den, 0 if equal, +1 if t* > num/den.
// den may have either sign but must be non-zero; q must have a root in
// (0, 1].
func (q Quadratic[T]) CmpRootRat(num, den T) int {
	if den.Sign() < 0 {
		num, den = num.Neg(), den.Neg()
	}
	if num.Sign() <= 0 {
		return +1 // rho <= 0 < t*
	}
	if num.Cmp(den) > 0 {
		return -1 // t* <= 1 < rho
	}
	switch q.evalRat(num, den).Sign() {
	case -1:
		return -1
	case 0:
		// q vanishes at rho; rho is t* exactly when it is the first
		// root, i.e. q is non-increasing there.
		if q.slopeRat(num, den).Sign() <= 0 {
			return 0
		}
		return -1
	}
	// q(rho) > 0: either the root lies beyond rho, or q dipped below
	// zero before rho and recovered.
	scaled := Quadratic[T]{
		A: q.A.Mul(num).Mul(num),
		B: q.B.Mul(num).Mul(den),
		C: q.C.Mul(den).Mul(den),
	}
	if scaled.PositiveOn01() {
		return +1
	}
	return -1
}

// SignAtRoot returns the sign of d evaluated at the smallest root t* of
// q in (0, 1]. q must have such a root.
func (q Quadratic[T]) SignAtRoot(d Quadratic[T]) int {
	if q.A.Sign() == 0 {
		// q is linear with root -C/B.
		return signRatEval(d, q.C.Neg(), q.B)
	}
	// r(t) = q.A·d(t) - d.A·q(t) is linear and agrees with q.A·d(t) at
	// any root of q.
	rb := q.A.Mul(d.B).Sub(d.A.Mul(q.B))
	rc := q.A.Mul(d.C).Sub(d.A.Mul(q.C))
	sa := q.A.Sign()
	switch {
	case rb.Sign() == 0 && rc.Sign() == 0:
		return 0
	case rb.Sign() == 0:
		return rc.Sign() * sa
	}
	// r vanishes only at rho = -rc/rb; the sign of r(t*) follows from
	// which side of rho the root lies on.
	switch q.CmpRootRat(rc.Neg(), rb) {
	case 0:
		return 0
	case +1:
		return rb.Sign() * sa
	default:
		return -rb.Sign() * sa
	}
}

// signRatEval returns the sign of d at the rational num/den with den of
// arbitrary non-zero sign.
func signRatEval[T ring.Scalar[T]](d Quadratic[T], num, den T) int {
	if den.Sign() < 0 {
		num, den = num.Neg(), den.Neg()
	}
	return d.evalRat(num, den).Sign()
}

// RootCmp orders the smallest roots of q and p in (0, 1]. Both
// polynomials must have such a root. Equal roots are detected
// algebraically; distinct roots are separated by dyadic bisection.
func (q Quadratic[T]) RootCmp(p Quadratic[T]) int {
	if cmp, decided := q.rootEq(p); decided {
		return cmp
	}

	// The roots are distinct: bisect [0,1] for each until the enclosing
	// dyadic intervals disengage.
	qlo, qhi := big.NewInt(0), big.NewInt(1)
	plo, phi := big.NewInt(0), big.NewInt(1)
	for k := uint(1); k <= bisectionCap; k++ {
		qlo, qhi = q.refine(qlo, qhi, k)
		plo, phi = p.refine(plo, phi, k)
		if qhi.Cmp(plo) <= 0 {
			return -1
		}
		if phi.Cmp(qlo) <= 0 {
			return +1
		}
	}
	panic(fmt.Sprintf("geom: root bisection did not separate %v and %v", q, p))
}

// rootEq decides whether q and p share their smallest root in (0, 1].
// The second return value is false when the roots are provably distinct
// and bisection must order them.
func (q Quadratic[T]) rootEq(p Quadratic[T]) (int, bool) {
	if q.A.Sign() == 0 && p.A.Sign() == 0 {
		// Both linear: compare -Cq/Bq with -Cp/Bp directly.
		num := p.C.Mul(q.B).Sub(q.C.Mul(p.B))
		sgn := num.Sign() * q.B.Sign() * p.B.Sign()
		return sgn, true
	}
	// r(t) = p.A·q(t) - q.A·p(t) is linear and vanishes at any common
	// root.
	rb := p.A.Mul(q.B).Sub(q.A.Mul(p.B))
	rc := p.A.Mul(q.C).Sub(q.A.Mul(p.C))
	if rb.Sign() == 0 {
		if rc.Sign() == 0 {
			// Proportional polynomials: identical roots.
			return 0, true
		}
		return 0, false
	}
	num, den := rc.Neg(), rb
	if den.Sign() < 0 {
		num, den = num.Neg(), den.Neg()
	}
	if num.Sign() <= 0 || num.Cmp(den) > 0 {
		return 0, false // the only possible common root is outside (0, 1]
	}
	if q.evalRat(num, den).Sign() != 0 || p.evalRat(num, den).Sign() != 0 {
		return 0, false
	}
	// Both vanish at num/den; equal smallest roots iff it is the first
	// root of each.
	if q.slopeRat(num, den).Sign() <= 0 && p.slopeRat(num, den).Sign() <= 0 {
		return 0, true
	}
	return 0, false
}

// refine halves the dyadic interval (lo/2^(k-1), hi/2^(k-1)] enclosing
// the smallest root, returning numerators at level k.
func (q Quadratic[T]) refine(lo, hi *big.Int, k uint) (*big.Int, *big.Int) {
	lo2 := new(big.Int).Lsh(lo, 1)
	hi2 := new(big.Int).Lsh(hi, 1)
	mid := new(big.Int).Add(lo, hi)
	if q.positiveOnPrefix(mid, k) {
		return mid, hi2
	}
	return lo2, mid
}

// String renders q for diagnostics.
func (q Quadratic[T]) String() string {
	return fmt.Sprintf("%v*t^2 + %v*t + %v", q.A, q.B, q.C)
}
