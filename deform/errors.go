package deform

import "errors"

var (
	// ErrShiftCollapse indicates a displacement that collapses a half-edge
	// at a time strictly inside (0, 1); only exact collapse at t=1 is
	// supported.
	ErrShiftCollapse = errors.New("deform: shift must not collapse half edges for a time t in (0, 1)")
	// ErrShiftDivision indicates a scalar ring that cannot represent the
	// partial shift needed to approach a critical time.
	ErrShiftDivision = errors.New("deform: partial shift is not representable in the scalar ring")
	// ErrNotInSector indicates an insertion vector outside the sector
	// counterclockwise of the anchor half-edge.
	ErrNotInSector = errors.New("deform: vector must lie in the sector next to the half edge")
	// ErrCrossesVertex indicates an insertion vector that reaches past an
	// existing vertex.
	ErrCrossesVertex = errors.New("deform: cannot insert a half edge that crosses over an existing vertex")
	// ErrUnsupported marks a defined but unimplemented contract, such as
	// inserting a vertex exactly onto an existing one.
	ErrUnsupported = errors.New("deform: operation not supported")
	// ErrNoSection indicates a relation with no inverse.
	ErrNoSection = errors.New("deform: relation has no section")
	// ErrNoIsomorphism indicates that no affine correspondence exists
	// under the given filters.
	ErrNoIsomorphism = errors.New("deform: surfaces are not isomorphic")
	// ErrMismatched indicates operands that do not belong to the
	// relation's domain.
	ErrMismatched = errors.New("deform: object does not belong to the domain surface")
)
