package deform

import (
	"github.com/flatgeom/flattri/geom"
	"github.com/flatgeom/flattri/mesh"
	"github.com/flatgeom/flattri/ring"
	"github.com/flatgeom/flattri/surface"
)

// InsertAt inserts a marked vertex at the point reached by walking v
// from the source of nextTo. The vector must lie in the sector
// counterclockwise of nextTo. Half-edges the new edge would cross are
// flipped out of the way first; the result is the chain of those flips
// followed by a single insert relation.
//
// When v ends up collinear with a half-edge out of its source the new
// vertex sits on that edge and splits it, giving the vertex degree 4
// instead of 3. A v that reaches past another vertex is rejected with
// ErrCrossesVertex; a v that ends exactly on another vertex is rejected
// with ErrUnsupported.
func InsertAt[T ring.Scalar[T]](s *surface.Surface[T], nextTo mesh.HalfEdge, v geom.Vector[T]) (*Relation[T], error) {
	if !s.InSector(nextTo, v) {
		return nil, ErrNotInSector
	}

	work := s.Clone()
	var chain *Relation[T]

	flip := func(e mesh.HalfEdge) {
		flipped := work.Clone()
		if err := flipped.Flip(e); err != nil {
			panic("deform: insert walk flipped a non-flippable edge: " + err.Error())
		}
		rel := newRelation(KindFlip, work, flipped)
		rel.flip = e
		if chain == nil {
			chain = rel
		} else {
			chain = rel.After(chain)
		}
		work = flipped
	}

	// checkTarget rejects a v that reaches past or exactly onto the far
	// vertex of a collinear saddle connection.
	checkTarget := func(along geom.Vector[T]) error {
		switch along.Sub(v).Orientation(v) {
		case geom.Opposite:
			return ErrCrossesVertex
		case geom.Orthogonal:
			return ErrUnsupported
		}
		return nil
	}

	// Flip every half-edge v would cross until it lies inside a face or
	// along an edge out of its source vertex.
	for {
		if work.FromHalfEdge(nextTo).CCW(v) == geom.Collinear {
			if err := checkTarget(work.FromHalfEdge(nextTo)); err != nil {
				return nil, err
			}
			break
		}

		// The far side of the face left of nextTo.
		crossing := work.Mesh().NextInFace(nextTo)
		base := work.FromHalfEdge(nextTo)
		// v must not end on any edge other than nextTo, so the crossing
		// edge is flipped even when v only touches it.
		if work.FromHalfEdge(crossing).CCW(v.Sub(base)) == geom.CounterClockwise {
			break
		}

		// An edge blocked by a forward triangle on top of it becomes
		// flippable once the blocking edge is flipped first.
		var clear func(e mesh.HalfEdge)
		clear = func(e mesh.HalfEdge) {
			for {
				m := work.Mesh()
				guard := m.NextAtVertex(nextTo)
				if e.Edge() == nextTo.Edge() || e.Edge() == guard.Edge() {
					panic("deform: insert walk tried to flip the anchor sector")
				}
				if work.Convex(e, true) {
					break
				}
				if v.CCW(work.FromHalfEdge(m.PrevAtVertex(e))) != geom.CounterClockwise {
					clear(-m.NextAtVertex(-e))
				} else {
					clear(m.PrevAtVertex(e))
				}
			}
			flip(e)
		}
		clear(crossing)

		// The flip may have widened the fan at the source vertex; rotate
		// nextTo forward until v lies in its sector again.
		m := work.Mesh()
		for work.FromHalfEdge(m.NextAtVertex(nextTo)).CCW(v) != geom.Clockwise {
			nextTo = m.NextAtVertex(nextTo)
		}
	}

	var ins *Relation[T]
	if work.FromHalfEdge(nextTo).CCW(v) != geom.Collinear {
		ins = insertInFace(work, nextTo, v)
	} else {
		ins = insertOnEdge(work, nextTo, v)
	}
	if chain == nil {
		return ins, nil
	}
	return ins.After(chain), nil
}

// insertInFace subdivides the face left of nextTo by a vertex at v from
// the source of nextTo, strictly inside the face.
func insertInFace[T ring.Scalar[T]](s *surface.Surface[T], nextTo mesh.HalfEdge, v geom.Vector[T]) *Relation[T] {
	m := s.Mesh().Clone()
	a, err := m.InsertAt(nextTo)
	if err != nil {
		panic("deform: insert into a checked face failed: " + err.Error())
	}
	b, c := a+1, a+2

	vectors := make([]geom.Vector[T], m.NEdges())
	for _, e := range s.Mesh().Edges() {
		vectors[e-1] = s.FromHalfEdge(e)
	}
	vectors[a-1] = v.Neg()
	vectors[b-1] = s.FromHalfEdge(nextTo).Sub(v)
	vectors[c-1] = s.FromHalfEdge(s.Mesh().NextAtVertex(nextTo)).Sub(v)

	codomain, err := surface.New(m, vectors)
	if err != nil {
		panic("deform: inserted vertex broke the surface: " + err.Error())
	}
	return newRelation(KindInsert, s, codomain)
}

// insertOnEdge splits the half-edge collinear with v (and longer than
// it) by a degree-4 vertex: insert next to nextTo as if into the face,
// then flip nextTo so the combinatorics match, then assign the four
// vectors around the new vertex.
func insertOnEdge[T ring.Scalar[T]](s *surface.Surface[T], nextTo mesh.HalfEdge, v geom.Vector[T]) *Relation[T] {
	old := s.Mesh()
	m := old.Clone()
	a, err := m.InsertAt(nextTo)
	if err != nil {
		panic("deform: insert into a checked face failed: " + err.Error())
	}
	if err := m.Flip(nextTo); err != nil {
		panic("deform: split edge refused to flip: " + err.Error())
	}

	// The four half-edges out of the new vertex in rotation order.
	b := m.NextAtVertex(a)
	c := m.NextAtVertex(b)
	d := m.NextAtVertex(c)

	around := map[mesh.HalfEdge]geom.Vector[T]{
		a: v.Neg(),
		b: s.FromHalfEdge(old.PrevAtVertex(nextTo)).Sub(v),
		c: s.FromHalfEdge(nextTo).Sub(v),
		d: s.FromHalfEdge(old.NextAtVertex(nextTo)).Sub(v),
	}
	vectors := make([]geom.Vector[T], m.NEdges())
	for _, e := range old.Edges() {
		vectors[e-1] = s.FromHalfEdge(e)
	}
	for he, vec := range around {
		if he > 0 {
			vectors[he-1] = vec
		} else {
			vectors[-he-1] = vec.Neg()
		}
	}

	codomain, err := surface.New(m, vectors)
	if err != nil {
		panic("deform: inserted vertex broke the surface: " + err.Error())
	}

	rel := newRelation(KindInsert, s, codomain)
	// The split edge keeps its label but no longer describes a single
	// straight segment of the domain; its old connection maps to the
	// two-segment path through the new vertex.
	rel.mapping = make(map[mesh.HalfEdge]mesh.HalfEdge, 2*old.NEdges())
	for _, e := range old.HalfEdges() {
		if e.Edge() == nextTo.Edge() {
			rel.mapping[e] = 0
		} else {
			rel.mapping[e] = e
		}
	}
	rel.pairs = []pathPair[T]{
		{
			from: surface.Path[T]{surface.ConnectionAlong(s, nextTo)},
			to:   surface.PathAlong(codomain, -a, c),
		},
		{
			from: surface.Path[T]{surface.ConnectionAlong(s, -nextTo)},
			to:   surface.PathAlong(codomain, -c, a),
		},
	}
	return rel
}
