package deform

import (
	"github.com/flatgeom/flattri/geom"
	"github.com/flatgeom/flattri/mesh"
	"github.com/flatgeom/flattri/ring"
	"github.com/flatgeom/flattri/surface"
)

// maxHalving bounds the step-halving search for a dyadic time below the
// critical root. The root is strictly positive, so halving must reach
// it; running out means the root machinery is broken.
const maxHalving = 256

// Shift moves every vertex of s along a straight path so that the
// vector of edge i+1 gains delta[i] at time 1. The surface s itself is
// left untouched; the returned relation leads from a snapshot of s to
// the shifted surface.
//
// Whenever a triangle would degenerate before time 1 because a vertex
// crosses an opposite edge, the crossed edge is flipped just before the
// critical time and the shift resumes on the flipped surface. Edges
// whose vector reaches exactly zero at time 1 are collapsed at the end.
// A displacement that collapses an edge strictly inside (0, 1) is
// rejected with ErrShiftCollapse.
func Shift[T ring.Scalar[T]](s *surface.Surface[T], delta []geom.Vector[T]) (*Relation[T], error) {
	m := s.Mesh()
	if len(delta) != m.NEdges() {
		return nil, ErrMismatched
	}
	deltaOf := func(e mesh.HalfEdge) geom.Vector[T] {
		if e > 0 {
			return delta[e-1]
		}
		return delta[-e-1].Neg()
	}

	// Edges whose vector vanishes exactly at time 1.
	collapsing := map[mesh.HalfEdge]bool{}
	type flipCand struct {
		he  mesh.HalfEdge
		det geom.Quadratic[T]
	}
	var flip *flipCand

	for _, he := range m.HalfEdges() {
		v := s.FromHalfEdge(he)
		d := deltaOf(he)
		if v.CCW(d) != geom.Collinear {
			continue
		}
		switch v.Orientation(v.Add(d)) {
		case geom.Same:
			// The edge shrinks or grows but never vanishes in [0, 1].
		case geom.Opposite:
			return nil, ErrShiftCollapse
		case geom.Orthogonal:
			collapsing[he.Edge()] = true
		}
	}

	// One sector per face corner. On a boundary surface the fan at a
	// boundary vertex is interrupted, so corners come from the face
	// rotation rather than the vertex rotation.
	for _, he := range m.HalfEdges() {
		if m.Boundary(he) {
			continue
		}
		he_ := -m.PrevInFace(he)
		x, x_ := s.FromHalfEdge(he), s.FromHalfEdge(he_)
		u, u_ := deltaOf(he), deltaOf(he_)

		// Signed area of the sector triangle as a function of time.
		det := geom.Quadratic[T]{
			A: u.Cross(u_),
			B: u.Cross(x_).Add(x.Cross(u_)),
			C: x.Cross(x_),
		}
		if det.Eval0().Sign() <= 0 {
			panic("deform: surface had a non-positive sector area before the shift")
		}
		if det.PositiveOn01() {
			continue
		}
		// The area vanishes at some t in (0, 1]. If an incident edge
		// collapses there the triangle disappears cleanly at t=1.
		if collapsing[he.Edge()] || collapsing[he_.Edge()] {
			continue
		}
		// The vertex ends up on the opposite edge exactly when the two
		// sector rays point in opposite directions at the root.
		dot := geom.Quadratic[T]{
			A: u.Dot(u_),
			B: u.Dot(x_).Add(x.Dot(u_)),
			C: x.Dot(x_),
		}
		switch sign := det.SignAtRoot(dot); {
		case sign > 0:
			// The rays merely touch; another vertex owns this event.
			continue
		case sign == 0:
			panic("deform: sector rays cannot be orthogonal at a vanishing area")
		}

		cand := flipCand{he: m.NextInFace(he), det: det}
		if flip == nil || cand.det.RootCmp(flip.det) < 0 {
			flip = &cand
		}
	}

	if flip != nil {
		return shiftAcrossFlip(s, delta, flip.he, flip.det)
	}
	return shiftStraight(s, delta, deltaOf, collapsing)
}

// shiftAcrossFlip advances to a dyadic time strictly before the
// earliest critical root, flips the critical edge if it has become
// flippable, and recurses on the remaining displacement.
func shiftAcrossFlip[T ring.Scalar[T]](
	s *surface.Surface[T],
	delta []geom.Vector[T],
	flipHe mesh.HalfEdge,
	det geom.Quadratic[T],
) (*Relation[T], error) {
	var k uint
	for k = 1; !det.PositiveOnDyadic(k); k++ {
		if k > maxHalving {
			panic("deform: could not isolate a positive critical time")
		}
	}

	partial := make([]geom.Vector[T], len(delta))
	remaining := make([]geom.Vector[T], len(delta))
	for i := range delta {
		p, ok := delta[i].QuoPow2(k)
		if !ok {
			return nil, ErrShiftDivision
		}
		partial[i] = p
		remaining[i] = delta[i].Sub(p)
	}

	// The critical root exceeds 1/2^k, so the partial shift needs no
	// structural event of its own.
	approach, err := Shift(s, partial)
	if err != nil {
		return nil, err
	}
	work := approach.Codomain().Clone()

	if work.Convex(flipHe, true) {
		// Transport the remaining displacement across the flip the same
		// way the flip recomputes the diagonal's vector.
		wm := work.Mesh()
		n := wm.NextInFace(flipHe)
		q := wm.PrevInFace(-flipHe)
		remOf := func(e mesh.HalfEdge) geom.Vector[T] {
			if e > 0 {
				return remaining[e-1]
			}
			return remaining[-e-1].Neg()
		}
		diagonal := remOf(n).Add(remOf(q))

		flipped := work.Clone()
		if err := flipped.Flip(flipHe); err != nil {
			panic("deform: strictly convex edge refused to flip: " + err.Error())
		}
		flipRel := newRelation(KindFlip, work, flipped)
		flipRel.flip = flipHe

		idx := flipHe.Edge() - 1
		if flipHe > 0 {
			remaining[idx] = diagonal
		} else {
			remaining[idx] = diagonal.Neg()
		}

		rest, err := Shift(flipped, remaining)
		if err != nil {
			return nil, err
		}
		return rest.After(flipRel).After(approach), nil
	}

	// Not yet flippable; creep closer and let the recursion try again.
	rest, err := Shift(work, remaining)
	if err != nil {
		return nil, err
	}
	return rest.After(approach), nil
}

// shiftStraight applies the full displacement on a clone and collapses
// every edge that became trivial, tracking how labels survive.
func shiftStraight[T ring.Scalar[T]](
	s *surface.Surface[T],
	delta []geom.Vector[T],
	deltaOf func(mesh.HalfEdge) geom.Vector[T],
	collapsing map[mesh.HalfEdge]bool,
) (*Relation[T], error) {
	m := s.Mesh()
	work := m.Clone()

	// total maps every original half-edge to its label after all
	// collapses; 0 once its edge is gone.
	total := make(map[mesh.HalfEdge]mesh.HalfEdge, 2*m.NEdges())
	for _, e := range m.HalfEdges() {
		total[e] = e
	}
	pending := make([]mesh.HalfEdge, 0, len(collapsing))
	for e := range collapsing {
		pending = append(pending, e)
	}
	for len(pending) > 0 {
		target := total[pending[0]]
		pending = pending[1:]
		if target == 0 {
			continue
		}
		step, err := work.Collapse(target)
		if err != nil {
			return nil, err
		}
		for from, cur := range total {
			if cur != 0 {
				total[from] = step[cur]
			}
		}
	}

	// Vectors of the codomain under the new labels. Identified edges
	// must agree once shifted.
	vectors := make([]geom.Vector[T], work.NEdges())
	assigned := make([]bool, work.NEdges())
	for _, e := range m.HalfEdges() {
		img := total[e]
		if img == 0 {
			continue
		}
		v := s.FromHalfEdge(e).Add(deltaOf(e))
		if img < 0 {
			img, v = -img, v.Neg()
		}
		if assigned[img-1] && !vectors[img-1].Sub(v).IsZero() {
			panic("deform: identified half-edges disagree after the shift")
		}
		vectors[img-1] = v
		assigned[img-1] = true
	}

	codomain, err := surface.New(work, vectors)
	if err != nil {
		return nil, err
	}

	rel := newRelation(KindShift, s, codomain)
	rel.shift = append([]geom.Vector[T](nil), delta...)
	if len(collapsing) > 0 {
		rel.mapping = total
	}
	return rel, nil
}
