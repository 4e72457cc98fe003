package ring

import "math/big"

// Scalar is the capability set required of a coordinate type T.
//
// Implementations are immutable values: every method returns a fresh
// value and never mutates its receiver or arguments. The zero value of T
// must behave as the ring's zero element.
type Scalar[T any] interface {
	// Add returns the receiver plus x.
	Add(x T) T
	// Sub returns the receiver minus x.
	Sub(x T) T
	// Neg returns the additive inverse of the receiver.
	Neg() T
	// Mul returns the receiver times x.
	Mul(x T) T
	// MulBig returns the receiver scaled by an arbitrary integer.
	MulBig(n *big.Int) T
	// Shl returns the receiver times 2^k.
	Shl(k uint) T
	// Quo returns the exact quotient of the receiver by x. The second
	// return value reports whether the quotient is representable; no
	// rounding ever takes place.
	Quo(x T) (T, bool)
	// QuoPow2 returns the exact quotient of the receiver by 2^k.
	QuoPow2(k uint) (T, bool)
	// Sign returns -1, 0 or +1 according to the sign of the receiver.
	Sign() int
	// Cmp compares the receiver to x and returns -1, 0 or +1.
	Cmp(x T) int
	// Float64 returns a low-precision shadow of the receiver. It is for
	// diagnostics and rendering only and must never decide structure.
	Float64() float64
}
