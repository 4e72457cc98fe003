// Package surface assigns exact planar vectors to the half-edges of a
// combinatorial mesh, turning it into a flat triangulated surface.
//
// What:
//
//   - Surface pairs a mesh.Mesh with one vector per edge; the opposite
//     half-edge carries the negated vector, and every triangle closes
//     up to zero with positive orientation.
//   - Flip moves a diagonal across its strictly convex quadrilateral
//     and recomputes the vector from the neighbouring sides.
//   - Classify and Delaunay implement the exact empty-circumcircle
//     test and the flip loop that establishes it everywhere.
//   - Vertical fixes a direction and classifies half-edges and faces
//     against it; Components groups faces by large-edge reachability.
//   - SaddleConnection, Path and Point name locations and straight
//     segments on the surface for the deformation layer to transport.
//
// Why:
//
//   - All predicates are exact over the scalar ring, so degenerate
//     inputs (collinear vertices, cocircular quadrilaterals) classify
//     deterministically instead of flickering with rounding.
//
// Errors:
//
//	ErrVectorCount     - vector slice does not match the edge count.
//	ErrZeroVector      - an edge vector is zero.
//	ErrFaceOpen        - a face's vectors do not sum to zero.
//	ErrFaceOrientation - a face is negatively oriented or degenerate.
//	ErrNonConvex       - flip quadrilateral is not strictly convex.
//	ErrBadPoint        - barycentric weights are negative or all zero.
//	ErrMismatched      - operands live on different surfaces.
package surface
