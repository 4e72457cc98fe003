package deform

import (
	"github.com/flatgeom/flattri/geom"
	"github.com/flatgeom/flattri/mesh"
	"github.com/flatgeom/flattri/ring"
	"github.com/flatgeom/flattri/surface"
)

// IsomorphismKind selects the combinatorial structure an isomorphism
// must respect.
type IsomorphismKind int

const (
	// IsomorphismFaces matches triangles to triangles.
	IsomorphismFaces IsomorphismKind = iota
	// IsomorphismDelaunayCells matches Delaunay cells, ignoring the
	// ambiguous edges that triangulate flat quadrilaterals and larger
	// cells. Both surfaces must be Delaunay triangulated.
	IsomorphismDelaunayCells
)

// Options filters the isomorphism search. The zero value matches faces
// and accepts every matrix and half-edge pairing.
type Options[T ring.Scalar[T]] struct {
	Kind IsomorphismKind
	// MatrixFilter, when set, must accept the entries a, b, c, d of the
	// candidate map for the search to proceed with it.
	MatrixFilter func(a, b, c, d T) bool
	// HalfEdgeFilter, when set, must accept every matched pair of
	// half-edges.
	HalfEdgeFilter func(from, to mesh.HalfEdge) bool
}

// Isomorphism searches for an affine map carrying s onto other cell by
// cell. A fixed half-edge of s is tried against every half-edge of
// other in both orientations; each pairing determines the 2×2 matrix
// completely, and a depth-first walk over adjacent cells either extends
// the pairing to all of s or refutes it. The first consistent pairing
// wins and is returned as a linear relation followed by a
// retriangulation; exhaustion returns ErrNoIsomorphism.
func Isomorphism[T ring.Scalar[T]](s, other *surface.Surface[T], opt Options[T]) (*Relation[T], error) {
	sm, om := s.Mesh(), other.Mesh()
	// A boundary on one side only means the surfaces cannot correspond;
	// matching two surfaces that both have boundary is not implemented.
	if sm.HasBoundary() != om.HasBoundary() {
		return nil, ErrNoIsomorphism
	}
	if sm.HasBoundary() {
		return nil, ErrUnsupported
	}
	if sm.NEdges() != om.NEdges() {
		return nil, ErrNoIsomorphism
	}

	ignore := func(he mesh.HalfEdge) bool {
		return opt.Kind == IsomorphismDelaunayCells && s.Classify(he) == surface.Ambiguous
	}
	ignoreImage := func(he mesh.HalfEdge) bool {
		return opt.Kind == IsomorphismDelaunayCells && other.Classify(he) == surface.Ambiguous
	}
	if opt.Kind == IsomorphismDelaunayCells {
		for _, e := range sm.Edges() {
			if s.Classify(e) == surface.NonDelaunay {
				panic("deform: source surface is not Delaunay triangulated")
			}
		}
		for _, e := range om.Edges() {
			if other.Classify(e) == surface.NonDelaunay {
				panic("deform: target surface is not Delaunay triangulated")
			}
		}
	}

	// The fixed half-edge all candidate pairings anchor on.
	preimage := mesh.HalfEdge(0)
	for _, he := range sm.HalfEdges() {
		if !ignore(he) {
			preimage = he
			break
		}
	}
	if preimage == 0 {
		panic("deform: surface has no Delaunay cell boundary")
	}

	// Walks along a cell boundary, skipping ignored edges.
	nextInCell := func(e mesh.HalfEdge) mesh.HalfEdge {
		e = -e
		for {
			e = sm.PrevAtVertex(e)
			if !ignore(e) {
				return e
			}
		}
	}

	for _, image := range om.HalfEdges() {
		if ignoreImage(image) {
			continue
		}
		for _, sgn := range []int{1, -1} {
			nextInImageCell := func(e mesh.HalfEdge) mesh.HalfEdge {
				e = -e
				for {
					if sgn == 1 {
						e = om.PrevAtVertex(e)
					} else {
						e = om.NextAtVertex(e)
					}
					if !ignoreImage(e) {
						return e
					}
				}
			}

			v := s.FromHalfEdge(preimage)
			w := s.FromHalfEdge(nextInCell(preimage))
			vTo := other.FromHalfEdge(image)
			wTo := other.FromHalfEdge(nextInImageCell(image))

			// The matrix sending v to vTo and w to wTo splits into two
			// 2x2 systems sharing the denominator v.x*w.y - v.y*w.x.
			den := v.Cross(w)
			a, oka := vTo.X.Mul(w.Y).Sub(v.Y.Mul(wTo.X)).Quo(den)
			b, okb := v.X.Mul(wTo.X).Sub(vTo.X.Mul(w.X)).Quo(den)
			c, okc := vTo.Y.Mul(w.Y).Sub(v.Y.Mul(wTo.Y)).Quo(den)
			d, okd := v.X.Mul(wTo.Y).Sub(vTo.Y.Mul(w.X)).Quo(den)
			if !oka || !okb || !okc || !okd {
				continue
			}
			mat := geom.Mat2[T]{A: a, B: b, C: c, D: d}
			if (sgn == 1) != (mat.Det().Sign() > 0) {
				continue
			}
			if opt.MatrixFilter != nil && !opt.MatrixFilter(a, b, c, d) {
				continue
			}

			iso := make(map[mesh.HalfEdge]mesh.HalfEdge, 2*sm.NEdges())
			var match func(from, to mesh.HalfEdge) bool
			match = func(from, to mesh.HalfEdge) bool {
				if img, ok := iso[from]; ok {
					return img == to
				}
				if opt.HalfEdgeFilter != nil && !opt.HalfEdgeFilter(from, to) {
					return false
				}
				if !mat.Apply(s.FromHalfEdge(from)).Sub(other.FromHalfEdge(to)).IsZero() {
					return false
				}
				iso[from] = to
				return match(-from, -to) && match(nextInCell(from), nextInImageCell(to))
			}
			if !match(preimage, image) {
				continue
			}

			linear, err := linearRelation(s, mat, sgn)
			if err != nil {
				return nil, err
			}
			pairs := make([]pathPair[T], 0, len(iso))
			for _, he := range sm.HalfEdges() {
				to, ok := iso[he]
				if !ok {
					continue
				}
				pairs = append(pairs, pathPair[T]{
					from: surface.Path[T]{surface.ConnectionAlong(linear.Codomain(), he)},
					to:   surface.Path[T]{surface.ConnectionAlong(other, to)},
				})
			}
			retri := newRelation(KindRetriangulation, linear.Codomain(), other)
			retri.pairs = pairs
			return retri.After(linear), nil
		}
	}
	return nil, ErrNoIsomorphism
}

// linearRelation builds the relation applying mat to every vector of s.
// An orientation-reversing map also reverses every face cycle, so the
// codomain mesh is rebuilt with each face (x, y, z) turned into
// (-y, -x, -z).
func linearRelation[T ring.Scalar[T]](s *surface.Surface[T], mat geom.Mat2[T], sgn int) (*Relation[T], error) {
	m := s.Mesh()
	var cm *mesh.Mesh
	if sgn == 1 {
		cm = m.Clone()
	} else {
		faces := m.Faces()
		for i, f := range faces {
			faces[i] = [3]mesh.HalfEdge{-f[1], -f[0], -f[2]}
		}
		rebuilt, err := mesh.NewFromFaces(faces)
		if err != nil {
			return nil, err
		}
		cm = rebuilt
	}

	vectors := make([]geom.Vector[T], m.NEdges())
	for _, e := range m.Edges() {
		vectors[e-1] = mat.Apply(s.FromHalfEdge(e))
	}
	codomain, err := surface.New(cm, vectors)
	if err != nil {
		return nil, err
	}
	rel := newRelation(KindLinear, s, codomain)
	rel.matrix = mat
	return rel, nil
}
