package surface_test

import (
	"fmt"

	"github.com/flatgeom/flattri/geom"
	"github.com/flatgeom/flattri/mesh"
	"github.com/flatgeom/flattri/ring"
	"github.com/flatgeom/flattri/surface"
)

// squareTorus glues two unit right triangles into a torus.
func squareTorus() *surface.Surface[ring.Int64] {
	m, _ := mesh.NewFromCycles([][]mesh.HalfEdge{{1, -3, 2, -1, 3, -2}})
	s, _ := surface.New(m, []geom.Vector[ring.Int64]{
		geom.V(ring.I(1), ring.I(0)),
		geom.V(ring.I(0), ring.I(1)),
		geom.V(ring.I(-1), ring.I(-1)),
	})
	return s
}

func ExampleSurface_Flip() {
	s := squareTorus()
	if err := s.Flip(3); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(s.FromHalfEdge(3))
	// Output: (1, -1)
}

func ExampleSurface_Area() {
	fmt.Println(squareTorus().Area())
	// Output: 2
}
