package mesh

import "errors"

var (
	// ErrBadRotation indicates construction input that is not a
	// permutation of the half-edge labels ±1..±n.
	ErrBadRotation = errors.New("mesh: rotation input must cover every half-edge label exactly once")
	// ErrNotTriangulated indicates a non-boundary face orbit that is not
	// a triangle.
	ErrNotTriangulated = errors.New("mesh: every non-boundary face must be a triangle")
	// ErrBoundaryEdge indicates a mutation applied to a boundary half-edge.
	ErrBoundaryEdge = errors.New("mesh: operation not defined on a boundary half-edge")
	// ErrSameFace indicates a flip whose half-edge has the same face on
	// both of its sides.
	ErrSameFace = errors.New("mesh: cannot flip a half-edge bordering a single face")
	// ErrLoopCollapse indicates a collapse of a half-edge that starts and
	// ends at the same vertex.
	ErrLoopCollapse = errors.New("mesh: cannot collapse a half-edge onto its own vertex")
	// ErrDegenerateCollapse indicates a collapse whose bigon elimination
	// would chain identifications and destroy the triangulation.
	ErrDegenerateCollapse = errors.New("mesh: collapse would degenerate the triangulation")
)
