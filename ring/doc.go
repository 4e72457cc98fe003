// Package ring declares the minimal ordered-ring capability set that the
// triangulation kernel computes over, together with two swappable backends.
//
// What:
//
//   - Scalar[T] is the self-referential constraint every coordinate type
//     must satisfy: add, subtract, multiply, integer scaling, dyadic
//     shifts, exact division, and a total order.
//   - Int64 wraps machine integers for small hand-built surfaces.
//   - Rat wraps math/big rationals for exact arithmetic of arbitrary size.
//
// Why:
//
//   - Every structural decision in the kernel (orientation, Delaunay
//     classification, critical-time ordering) must be made exactly; a
//     floating-point mode does not exist.
//   - Float64 is exposed only as a shadow approximation for diagnostics
//     and rendering; it is never consulted for a structural decision.
//
// Exact division (Quo, QuoPow2) is optional in the sense that a backend
// may report failure; callers surface that as an invalid-argument
// condition rather than rounding.
package ring
