package ring

import "math/big"

// Rat is the exact-rational backend over math/big. The zero value is the
// rational zero; all operations allocate fresh values so Rats may be
// shared freely.
type Rat struct {
	v *big.Rat
}

var ratZero = new(big.Rat)

// NewRat returns num/den as a Rat. den must be non-zero.
func NewRat(num, den int64) Rat {
	return Rat{v: big.NewRat(num, den)}
}

// RatFromBig wraps an existing big.Rat (copied, not aliased).
func RatFromBig(v *big.Rat) Rat {
	return Rat{v: new(big.Rat).Set(v)}
}

func (a Rat) rat() *big.Rat {
	if a.v == nil {
		return ratZero
	}
	return a.v
}

// Big returns a copy of a as a big.Rat.
func (a Rat) Big() *big.Rat { return new(big.Rat).Set(a.rat()) }

// Add returns a+x.
func (a Rat) Add(x Rat) Rat { return Rat{v: new(big.Rat).Add(a.rat(), x.rat())} }

// Sub returns a-x.
func (a Rat) Sub(x Rat) Rat { return Rat{v: new(big.Rat).Sub(a.rat(), x.rat())} }

// Neg returns -a.
func (a Rat) Neg() Rat { return Rat{v: new(big.Rat).Neg(a.rat())} }

// Mul returns a*x.
func (a Rat) Mul(x Rat) Rat { return Rat{v: new(big.Rat).Mul(a.rat(), x.rat())} }

// MulBig returns a*n.
func (a Rat) MulBig(n *big.Int) Rat {
	return Rat{v: new(big.Rat).Mul(a.rat(), new(big.Rat).SetInt(n))}
}

// Shl returns a*2^k.
func (a Rat) Shl(k uint) Rat {
	return a.MulBig(new(big.Int).Lsh(big.NewInt(1), k))
}

// Quo returns a/x; it fails only when x is zero.
func (a Rat) Quo(x Rat) (Rat, bool) {
	if x.Sign() == 0 {
		return Rat{}, false
	}
	return Rat{v: new(big.Rat).Quo(a.rat(), x.rat())}, true
}

// QuoPow2 returns a/2^k; always exact for rationals.
func (a Rat) QuoPow2(k uint) (Rat, bool) {
	d := new(big.Rat).SetInt(new(big.Int).Lsh(big.NewInt(1), k))
	return Rat{v: new(big.Rat).Quo(a.rat(), d)}, true
}

// Sign returns the sign of a.
func (a Rat) Sign() int { return a.rat().Sign() }

// Cmp compares a and x.
func (a Rat) Cmp(x Rat) int { return a.rat().Cmp(x.rat()) }

// Float64 returns the shadow approximation of a.
func (a Rat) Float64() float64 {
	f, _ := a.rat().Float64()
	return f
}

// String renders a for diagnostics.
func (a Rat) String() string { return a.rat().RatString() }
