package geom

// CCW describes the turn from one vector to another.
type CCW int

const (
	// Clockwise: the second vector lies clockwise of the first.
	Clockwise CCW = -1
	// Collinear: the vectors are parallel or antiparallel.
	Collinear CCW = 0
	// CounterClockwise: the second vector lies counterclockwise of the first.
	CounterClockwise CCW = 1
)

// String renders the turn direction for diagnostics.
func (c CCW) String() string {
	switch c {
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counterclockwise"
	}
	return "collinear"
}

// Orientation describes the relative direction of two vectors.
type Orientation int

const (
	// Opposite: the vectors point in opposing half-planes.
	Opposite Orientation = -1
	// Orthogonal: the vectors are perpendicular (or one is zero).
	Orthogonal Orientation = 0
	// Same: the vectors point into the same half-plane.
	Same Orientation = 1
)

// String renders the orientation for diagnostics.
func (o Orientation) String() string {
	switch o {
	case Opposite:
		return "opposite"
	case Same:
		return "same"
	}
	return "orthogonal"
}
