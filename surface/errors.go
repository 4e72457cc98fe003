package surface

import "errors"

var (
	// ErrVectorCount indicates a vector slice whose length differs from
	// the mesh's edge count.
	ErrVectorCount = errors.New("surface: need exactly one vector per edge")
	// ErrZeroVector indicates a zero edge vector.
	ErrZeroVector = errors.New("surface: edge vectors must be non-zero")
	// ErrFaceOpen indicates a face whose vectors do not sum to zero.
	ErrFaceOpen = errors.New("surface: face vectors must sum to zero")
	// ErrFaceOrientation indicates a face that is not positively
	// oriented.
	ErrFaceOrientation = errors.New("surface: faces must be positively oriented")
	// ErrNonConvex indicates a flip across a quadrilateral that is not
	// strictly convex.
	ErrNonConvex = errors.New("surface: flip quadrilateral must be strictly convex")
	// ErrBadPoint indicates barycentric weights that are negative or all
	// zero.
	ErrBadPoint = errors.New("surface: barycentric weights must be non-negative and not all zero")
	// ErrMismatched indicates operands that belong to different
	// surfaces.
	ErrMismatched = errors.New("surface: operands must belong to the same surface")
)
