// Package deform transforms flat triangulated surfaces and tracks how
// geometry corresponds across each transformation.
//
// What:
//
//   - Relation is an immutable correspondence between a domain and a
//     codomain surface snapshot. Relations form a small closed algebra
//     (identity, relabeling, linear map, flip, shift, insert, collapse,
//     slit, composite) with composition and, where the transformation
//     is invertible, a Section (inverse).
//   - Shift moves every vertex along a straight path given by a
//     displacement per edge. It finds the earliest time a triangle
//     degenerates, flips just before that time, and recurses; edges
//     that become trivial exactly at time 1 are collapsed at the end.
//   - EliminateMarkedPoints repeatedly shifts a total-angle-one vertex
//     onto a neighbour until no such vertex remains.
//   - InsertAt and Slit add structure: a degree-3 vertex inside a
//     face, or a doubled boundary edge.
//   - Isomorphism searches for an affine correspondence between two
//     surfaces by seeded backtracking over half-edge matches.
//
// Why:
//
//   - Consumers hold paths, saddle connections and points on a surface
//     that keeps changing underneath them; the Relation returned by
//     every transformation is the only sanctioned way to carry those
//     objects to the new surface.
//
// All structural decisions are exact: critical times are compared as
// roots of area polynomials over the scalar ring, never as floats.
//
// Errors:
//
//	ErrShiftCollapse  - a displacement collapses an edge strictly inside (0, 1).
//	ErrShiftDivision  - a partial shift is not representable in the ring.
//	ErrNoSection      - the relation is not injective, no inverse exists.
//	ErrNoIsomorphism  - the search exhausted all candidates.
//	ErrMismatched     - operands belong to different surfaces.
//	ErrNotInSector    - an insertion vector lies outside the chosen sector.
//	ErrCrossesVertex  - an insertion would pass over an existing vertex.
//	ErrUnsupported    - the operation is not implemented for this input.
package deform
