// Package geom provides the exact planar primitives of the kernel:
// vectors over an ordered ring, turn and orientation predicates, 2×2
// linear maps, and the signed-area quadratics that drive the continuous
// deformation engine.
//
// What:
//
//   - Vector[T] with Add/Sub/Neg/Dot/Cross and the CCW and Orientation
//     predicates (sign of the cross and dot product respectively).
//   - Mat2[T]: a 2×2 linear map with exact application and determinant.
//   - Quadratic[T]: det(t) = a·t² + b·t + c describing the signed area
//     of a deforming triangle; supports exact positivity tests on dyadic
//     prefixes of [0,1] and exact comparison of smallest roots.
//
// Why:
//
//   - Every predicate decides exactly in ring arithmetic; there is no
//     floating-point fallback and no precision parameter. Root order of
//     two area polynomials is decided by dyadic bisection with an
//     algebraic equal-root test, so the comparison always terminates.
//
// Complexity: all predicates are a constant number of ring operations;
// RootCmp performs O(s) bisection rounds where s is the bit distance
// separating the two roots.
package geom
