// Package mesh implements the combinatorial half-edge structure of a
// triangulated surface: an arena of signed half-edge labels with
// parallel rotation tables, mutated in place by constant-time adjacency
// rewrites.
//
// What:
//
//   - HalfEdge is a signed non-zero label; -e is the opposite side of
//     the same edge. Labels 1..n and their negatives index contiguous
//     arena slots, so there are no pointer graphs and no lifetime webs.
//   - Mesh owns the "next at vertex" and "next in face" rotations plus
//     boundary flags; vertices are orbits of the vertex rotation, faces
//     are orbits of the face rotation.
//   - Mutations: Flip (diagonal swap), Collapse (edge contraction with
//     bigon elimination), InsertAt (face subdivision by a degree-3
//     vertex), Slit (cut an edge open into two boundary sides).
//
// Why:
//
//   - Surface deformations boil down to a handful of rotation-slot
//     rewrites; keeping both rotations as flat arrays makes every
//     mutation auditable and O(1).
//
// Invariants (checked at construction):
//
//   - the vertex rotation is a permutation of {±1..±n};
//   - every non-boundary face orbit is a triangle;
//   - for surfaces without boundary, nextInFace(e) == -prevAtVertex(e).
//
// Errors:
//
//	ErrBadRotation        - construction input does not cover ±1..±n exactly once.
//	ErrNotTriangulated    - a non-boundary face orbit is not a triangle.
//	ErrBoundaryEdge       - a mutation was applied to a boundary half-edge.
//	ErrSameFace           - flip target has the same face on both sides.
//	ErrLoopCollapse       - collapse target starts and ends at one vertex.
//	ErrDegenerateCollapse - collapse would not leave a triangulation.
package mesh
