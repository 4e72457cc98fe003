package ring

import "math/big"

// Int64 is the machine-integer backend. It is meant for small hand-built
// surfaces; arithmetic is unchecked for overflow, exactly like the int64
// weights elsewhere in this module's ancestry. Exact division fails when
// the quotient is not an integer.
type Int64 int64

// I is shorthand for Int64(v) in surface initializers.
func I(v int64) Int64 { return Int64(v) }

// Add returns a+x. Complexity: O(1).
func (a Int64) Add(x Int64) Int64 { return a + x }

// Sub returns a-x. Complexity: O(1).
func (a Int64) Sub(x Int64) Int64 { return a - x }

// Neg returns -a. Complexity: O(1).
func (a Int64) Neg() Int64 { return -a }

// Mul returns a*x. Complexity: O(1).
func (a Int64) Mul(x Int64) Int64 { return a * x }

// MulBig returns a*n. The scalar must fit an int64 after scaling.
func (a Int64) MulBig(n *big.Int) Int64 {
	var r big.Int
	r.Mul(big.NewInt(int64(a)), n)
	if !r.IsInt64() {
		panic("ring: Int64 overflow in MulBig")
	}
	return Int64(r.Int64())
}

// Shl returns a*2^k.
func (a Int64) Shl(k uint) Int64 {
	return a.MulBig(new(big.Int).Lsh(big.NewInt(1), k))
}

// Quo returns the exact quotient a/x, reporting false when x is zero or
// does not divide a.
func (a Int64) Quo(x Int64) (Int64, bool) {
	if x == 0 || a%x != 0 {
		return 0, false
	}
	return a / x, true
}

// QuoPow2 returns the exact quotient a/2^k.
func (a Int64) QuoPow2(k uint) (Int64, bool) {
	if k >= 63 {
		if a == 0 {
			return 0, true
		}
		return 0, false
	}
	d := Int64(1) << k
	return a.Quo(d)
}

// Sign returns the sign of a.
func (a Int64) Sign() int {
	switch {
	case a < 0:
		return -1
	case a > 0:
		return +1
	}
	return 0
}

// Cmp compares a and x.
func (a Int64) Cmp(x Int64) int {
	switch {
	case a < x:
		return -1
	case a > x:
		return +1
	}
	return 0
}

// Float64 returns the shadow approximation of a.
func (a Int64) Float64() float64 { return float64(a) }
