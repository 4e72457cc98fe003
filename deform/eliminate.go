package deform

import (
	"github.com/flatgeom/flattri/geom"
	"github.com/flatgeom/flattri/mesh"
	"github.com/flatgeom/flattri/ring"
	"github.com/flatgeom/flattri/surface"
)

// EliminateMarkedPoints removes every vertex of total angle one by
// sliding it onto a neighbouring vertex along a chosen incident edge,
// one vertex per round, until none remains. The returned relation
// carries paths across all rounds; it is a retriangulation whose table
// also resolves segments that passed through an eliminated point.
func EliminateMarkedPoints[T ring.Scalar[T]](s *surface.Surface[T]) (*Relation[T], error) {
	collapse := pickMarkedCollapse(s)
	if collapse == 0 {
		return NewIdentity(s), nil
	}

	m := s.Mesh()
	delta := make([]geom.Vector[T], m.NEdges())
	along := s.FromHalfEdge(collapse)
	for _, e := range m.Edges() {
		srcMarked := m.SameVertex(e, collapse)
		tgtMarked := m.SameVertex(-e, collapse)
		switch {
		case srcMarked && tgtMarked:
			// Loops at the marked point keep their vector.
		case srcMarked:
			delta[e-1] = along.Neg()
		case tgtMarked:
			delta[e-1] = along
		}
	}

	shift, err := Shift(s, delta)
	if err != nil {
		return nil, err
	}
	cod := shift.Codomain()

	// Half-edges away from the marked point map directly under the
	// shift; they seed the pull-back of everything else.
	var pairs []pathPair[T]
	for _, pre := range m.HalfEdges() {
		if m.SameVertex(pre, collapse) || m.SameVertex(-pre, collapse) {
			continue
		}
		c := surface.ConnectionAlong(s, pre)
		img, ok := shift.ApplyConnection(c)
		if !ok {
			panic("deform: half-edge away from the marked point lost its image")
		}
		pairs = append(pairs, pathPair[T]{from: surface.Path[T]{c}, to: surface.Path[T]{img}})
	}
	base := len(pairs)

	// Every codomain half-edge is pulled back by turning around its
	// source vertex from a seed connection by the same angle.
	for _, imgHe := range cod.Mesh().HalfEdges() {
		image := surface.ConnectionAlong(cod, imgHe)
		found := false
		for _, seed := range pairs[:base] {
			if !cod.Mesh().SameVertex(seed.to[0].Source, image.Source) {
				continue
			}
			pre := pullBack(s, cod, shift, collapse, seed.from[0], seed.to[0], image)
			pairs = append(pairs, pathPair[T]{from: pre, to: surface.Path[T]{image}})
			found = true
			break
		}
		if !found {
			panic("deform: codomain half-edge has no seed connection at its vertex")
		}
	}

	retri := newRelation(KindRetriangulation, s, cod)
	retri.pairs = pairs

	rest, err := EliminateMarkedPoints(cod)
	if err != nil {
		return nil, err
	}
	return rest.After(retri), nil
}

// pickMarkedCollapse selects the half-edge along which to slide a
// total-angle-one vertex: a vertex with the smallest fan wins, and
// among its outgoing half-edges to a different vertex the shortest one.
// Zero means no eliminable vertex exists.
func pickMarkedCollapse[T ring.Scalar[T]](s *surface.Surface[T]) mesh.HalfEdge {
	m := s.Mesh()
	var collapse mesh.HalfEdge
	var collapseFan int
	for _, fan := range m.Vertices() {
		if s.Angle(fan[0]) != 1 {
			continue
		}
		if collapse != 0 && len(fan) > collapseFan {
			continue
		}
		for _, out := range fan {
			if m.SameVertex(out, -out) {
				continue
			}
			if collapse != 0 && s.FromHalfEdge(collapse).LengthCmp(s.FromHalfEdge(out)) < 0 {
				continue
			}
			collapse = out
			collapseFan = len(fan)
		}
	}
	return collapse
}

// pullBack reconstructs the domain path of a straight codomain segment:
// turn from the seed direction to the image direction around the common
// vertex, counting full turns in the codomain and reproducing them in
// the domain, then split at the eliminated point if the segment passed
// through it.
func pullBack[T ring.Scalar[T]](
	dom, cod *surface.Surface[T],
	shift *Relation[T],
	marked mesh.HalfEdge,
	seedPre, seedImg surface.SaddleConnection[T],
	image surface.SaddleConnection[T],
) surface.Path[T] {
	if seedPre.Vector.CCW(seedImg.Vector) != geom.Collinear {
		panic("deform: shift changed the direction of an unmoved connection")
	}
	m := dom.Mesh()
	turns := turnsBetween(cod, seedImg, image)

	source := seedPre.Source
	turned := seedPre.Vector
	for t := 0; t < turns; t++ {
		// One full turn of source relative to the fixed direction.
		for turned.CCW(dom.FromHalfEdge(source)) != geom.CounterClockwise {
			source = m.NextAtVertex(source)
		}
		for turned.CCW(dom.FromHalfEdge(source)) != geom.Clockwise {
			source = m.NextAtVertex(source)
		}
		for turned.CCW(dom.FromHalfEdge(source)) != geom.CounterClockwise {
			source = m.NextAtVertex(source)
		}
		source = m.PrevAtVertex(source)
	}

	// Rotate below one turn until turned points along the image.
	exact := false
	for turned.CCW(image.Vector) != geom.Collinear || turned.Orientation(image.Vector) != geom.Same {
		if turned.CCW(image.Vector) == geom.CounterClockwise &&
			dom.FromHalfEdge(m.NextAtVertex(source)).CCW(image.Vector) == geom.Clockwise {
			// The image direction lies inside the current sector.
			turned = image.Vector
			exact = true
			break
		}
		source = m.NextAtVertex(source)
		turned = dom.FromHalfEdge(source)
	}

	targetAnchor := preimageLabel(shift, dom, marked, image.Target)

	if exact {
		// The segment does not follow an edge; it cannot pass through the
		// eliminated point, so it survives in one piece.
		return surface.Path[T]{{
			Source: source,
			Target: dom.SectorOf(targetAnchor, image.Vector.Neg()),
			Vector: image.Vector,
		}}
	}

	// turned is the direction of the edge at source.
	first := surface.ConnectionAlong(dom, source)
	if first.Vector.Sub(image.Vector).IsZero() {
		return surface.Path[T]{first}
	}
	// The segment continues through the eliminated point at the far end
	// of the edge.
	rem := image.Vector.Sub(first.Vector)
	if rem.Orientation(image.Vector) != geom.Same {
		panic("deform: pulled back segment overshoots its image")
	}
	second := surface.ConnectionInSector(dom, m.NextAtVertex(first.Target), targetAnchor, rem)
	return surface.Path[T]{first, second}
}

// preimageLabel maps a codomain half-edge label back through the
// shift's collapse relabeling. Identified edges have several preimages;
// one based at a surviving vertex is preferred so that it can anchor a
// sector search in the domain.
func preimageLabel[T ring.Scalar[T]](shift *Relation[T], dom *surface.Surface[T], marked, e mesh.HalfEdge) mesh.HalfEdge {
	if shift.mapping == nil {
		return e
	}
	var any mesh.HalfEdge
	for from, to := range shift.mapping {
		if to != e {
			continue
		}
		if !dom.Mesh().SameVertex(from, marked) {
			return from
		}
		any = from
	}
	if any == 0 {
		panic("deform: codomain half-edge has no preimage label")
	}
	return any
}

// turnsBetween counts the full turns swept when rotating
// counterclockwise from one connection to another around their shared
// source vertex.
func turnsBetween[T ring.Scalar[T]](s *surface.Surface[T], from, to surface.SaddleConnection[T]) int {
	if from.Source == to.Source {
		return 0
	}
	m := s.Mesh()
	dir := from.Vector
	turns := 0
	for a := m.NextAtVertex(from.Source); ; a = m.NextAtVertex(a) {
		if a == to.Source {
			// Partial sweep from the base ray of a to the target
			// direction.
			if s.InSector(a, dir) && dir.CCW(to.Vector) == geom.CounterClockwise {
				turns++
			}
			return turns
		}
		if s.InSector(a, dir) {
			turns++
		}
	}
}
