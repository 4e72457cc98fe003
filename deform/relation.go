package deform

import (
	"strings"

	"github.com/flatgeom/flattri/geom"
	"github.com/flatgeom/flattri/mesh"
	"github.com/flatgeom/flattri/ring"
	"github.com/flatgeom/flattri/surface"
)

// Kind names the closed set of relation shapes.
type Kind int

const (
	// KindIdentity maps every object to itself.
	KindIdentity Kind = iota
	// KindRelabel permutes half-edge labels without moving geometry.
	KindRelabel
	// KindLinear applies a 2x2 matrix to all vectors, possibly
	// permuting labels.
	KindLinear
	// KindFlip records a single diagonal flip.
	KindFlip
	// KindShift records a straight displacement of all vertices,
	// possibly collapsing edges at time 1.
	KindShift
	// KindInsert records the subdivision of a face by a new vertex.
	KindInsert
	// KindCollapse records the removal of edges; it is not injective.
	KindCollapse
	// KindSlit records the cutting of an edge into two boundary sides.
	KindSlit
	// KindRetriangulation records an explicit table of corresponding
	// paths between two triangulations of the same geometry.
	KindRetriangulation
	// KindComposite chains relations, applied first to last.
	KindComposite
)

func (k Kind) String() string {
	switch k {
	case KindIdentity:
		return "Identity"
	case KindRelabel:
		return "Relabel"
	case KindLinear:
		return "Linear"
	case KindFlip:
		return "Flip"
	case KindShift:
		return "Shift"
	case KindInsert:
		return "Insert"
	case KindCollapse:
		return "Collapse"
	case KindSlit:
		return "Slit"
	case KindRetriangulation:
		return "Retriangulation"
	case KindComposite:
		return "Composite"
	default:
		return "Kind(?)"
	}
}

// Relation is an immutable correspondence from a domain surface
// snapshot to a codomain surface snapshot. Both snapshots are owned by
// the relation and survive any later mutation of the surfaces they
// were taken from.
type Relation[T ring.Scalar[T]] struct {
	kind     Kind
	domain   *surface.Surface[T]
	codomain *surface.Surface[T]

	flip    mesh.HalfEdge                   // KindFlip
	matrix  geom.Mat2[T]                    // KindLinear
	mapping map[mesh.HalfEdge]mesh.HalfEdge // label correspondence; 0 means removed
	shift   []geom.Vector[T]                // KindShift, displacement per edge
	pairs   []pathPair[T]                   // KindRetriangulation
	parts   []*Relation[T]                  // KindComposite, applied in order
}

// pathPair is one row of a retriangulation table: the path from and the
// path to describe the same straight segments on both surfaces.
type pathPair[T ring.Scalar[T]] struct {
	from, to surface.Path[T]
}

// Kind returns the shape of the relation.
func (r *Relation[T]) Kind() Kind { return r.kind }

// Domain returns the relation's domain snapshot.
func (r *Relation[T]) Domain() *surface.Surface[T] { return r.domain }

// Codomain returns the relation's codomain snapshot.
func (r *Relation[T]) Codomain() *surface.Surface[T] { return r.codomain }

// NewIdentity returns the identity relation on s.
func NewIdentity[T ring.Scalar[T]](s *surface.Surface[T]) *Relation[T] {
	snap := s.Clone()
	return &Relation[T]{kind: KindIdentity, domain: snap, codomain: snap.Clone()}
}

// newRelation snapshots both surfaces.
func newRelation[T ring.Scalar[T]](kind Kind, dom, cod *surface.Surface[T]) *Relation[T] {
	return &Relation[T]{kind: kind, domain: dom.Clone(), codomain: cod.Clone()}
}

// mapLabel applies the label correspondence, defaulting to identity.
func (r *Relation[T]) mapLabel(e mesh.HalfEdge) (mesh.HalfEdge, bool) {
	if r.mapping == nil {
		return e, true
	}
	img, ok := r.mapping[e]
	if !ok || img == 0 {
		return 0, false
	}
	return img, true
}

// alongEdge recognizes a connection that runs along a domain half-edge
// and returns its label.
func (r *Relation[T]) alongEdge(c surface.SaddleConnection[T]) (mesh.HalfEdge, bool) {
	if c.Target != -c.Source {
		return 0, false
	}
	if !c.Vector.Sub(r.domain.FromHalfEdge(c.Source)).IsZero() {
		return 0, false
	}
	return c.Source, true
}

// ApplyConnection maps a saddle connection of the domain to the
// codomain. The second return value is false when the connection
// touches structure removed by the transformation.
func (r *Relation[T]) ApplyConnection(c surface.SaddleConnection[T]) (surface.SaddleConnection[T], bool) {
	switch r.kind {
	case KindIdentity:
		return c, true

	case KindRelabel:
		src, okS := r.mapLabel(c.Source)
		tgt, okT := r.mapLabel(c.Target)
		if !okS || !okT {
			return surface.SaddleConnection[T]{}, false
		}
		return surface.SaddleConnection[T]{Source: src, Target: tgt, Vector: c.Vector}, true

	case KindLinear:
		src, okS := r.mapLabel(c.Source)
		tgt, okT := r.mapLabel(c.Target)
		if !okS || !okT {
			return surface.SaddleConnection[T]{}, false
		}
		v := r.matrix.Apply(c.Vector)
		return surface.ConnectionInSector(r.codomain, src, tgt, v), true

	case KindFlip:
		// Vertices do not move under a flip; re-anchor the sectors away
		// from the flipped diagonal and relocate by the unchanged vector.
		return surface.ConnectionInSector(
			r.codomain, r.anchorOffFlip(c.Source), r.anchorOffFlip(c.Target), c.Vector), true

	case KindShift:
		if e, ok := r.alongEdge(c); ok {
			img, ok := r.mapLabel(e)
			if !ok {
				return surface.SaddleConnection[T]{}, false
			}
			return surface.ConnectionAlong(r.codomain, img), true
		}
		// An off-edge connection survives as long as both endpoint
		// vertices do; its vector gains the relative displacement of the
		// endpoints and the anchors re-normalize in the codomain.
		src, okS := r.vertexImage(c.Source)
		tgt, okT := r.vertexImage(c.Target)
		if !okS || !okT {
			return surface.SaddleConnection[T]{}, false
		}
		disp := r.vertexDisplacements()
		m := r.domain.Mesh()
		w := c.Vector.Add(disp[m.VertexOf(c.Target)].Sub(disp[m.VertexOf(c.Source)]))
		if w.IsZero() {
			return surface.SaddleConnection[T]{}, false
		}
		return surface.ConnectionInSector(r.codomain, src, tgt, w), true

	case KindInsert, KindCollapse, KindSlit:
		e, ok := r.alongEdge(c)
		if !ok {
			return surface.SaddleConnection[T]{}, false
		}
		img, ok := r.mapLabel(e)
		if !ok {
			return surface.SaddleConnection[T]{}, false
		}
		return surface.ConnectionAlong(r.codomain, img), true

	case KindRetriangulation:
		img, ok := r.lookupPair(c)
		if !ok || len(img) != 1 {
			return surface.SaddleConnection[T]{}, false
		}
		return img[0], true

	case KindComposite:
		cur := c
		for _, p := range r.parts {
			var ok bool
			cur, ok = p.ApplyConnection(cur)
			if !ok {
				return surface.SaddleConnection[T]{}, false
			}
		}
		return cur, true

	default:
		panic("deform: unknown relation kind")
	}
}

// lookupPair finds the table row whose single-connection preimage is c.
func (r *Relation[T]) lookupPair(c surface.SaddleConnection[T]) (surface.Path[T], bool) {
	for _, p := range r.pairs {
		if len(p.from) == 1 && p.from[0].Equal(c) {
			return p.to, true
		}
	}
	return nil, false
}

// anchorOffFlip returns a half-edge at the same source vertex as e that
// keeps its anchor through the flip.
func (r *Relation[T]) anchorOffFlip(e mesh.HalfEdge) mesh.HalfEdge {
	if e.Edge() == r.flip.Edge() {
		return r.domain.Mesh().NextAtVertex(e)
	}
	return e
}

// ApplyPath maps a path connection by connection; a single missing
// image invalidates the whole path. A retriangulation may splice one
// connection into several segments.
func (r *Relation[T]) ApplyPath(p surface.Path[T]) (surface.Path[T], bool) {
	if r.kind == KindComposite {
		cur := p
		for _, part := range r.parts {
			var ok bool
			cur, ok = part.ApplyPath(cur)
			if !ok {
				return nil, false
			}
		}
		return cur, true
	}
	out := make(surface.Path[T], 0, len(p))
	for _, c := range p {
		// A table row may splice one connection into several segments.
		// Retriangulations have no fallback beyond their table.
		if len(r.pairs) > 0 {
			if img, ok := r.lookupPair(c); ok {
				out = append(out, img...)
				continue
			}
			if r.kind == KindRetriangulation {
				return nil, false
			}
		}
		img, ok := r.ApplyConnection(c)
		if !ok {
			return nil, false
		}
		out = append(out, img)
	}
	return out, true
}

// ApplyPoint maps a point of the domain to the codomain. Vertex points
// follow the vertex correspondence; interior points follow their face
// and keep their barycentric weights where the face survives intact.
func (r *Relation[T]) ApplyPoint(pt surface.Point[T]) (surface.Point[T], bool) {
	switch r.kind {
	case KindIdentity:
		return pt, true

	case KindComposite:
		cur := pt
		for _, p := range r.parts {
			var ok bool
			cur, ok = p.ApplyPoint(cur)
			if !ok {
				return surface.Point[T]{}, false
			}
		}
		return cur, true
	}

	if v, ok := pt.IsVertex(r.domain); ok {
		img, ok := r.vertexImage(v)
		if !ok {
			return surface.Point[T]{}, false
		}
		one := pt.A.Add(pt.B).Add(pt.C)
		return surface.PointAtVertex(r.codomain, img, one), true
	}
	face, ok := r.faceImage(pt.Face)
	if !ok {
		return surface.Point[T]{}, false
	}
	img, err := surface.NewPoint(r.codomain, face, pt.A, pt.B, pt.C)
	if err != nil {
		return surface.Point[T]{}, false
	}
	return img, true
}

// vertexImage maps an outgoing half-edge of a domain vertex to an
// outgoing half-edge of the image vertex.
func (r *Relation[T]) vertexImage(e mesh.HalfEdge) (mesh.HalfEdge, bool) {
	switch r.kind {
	case KindFlip:
		return r.anchorOffFlip(e), true
	case KindRetriangulation:
		for _, p := range r.pairs {
			if len(p.from) == 0 || len(p.to) == 0 {
				continue
			}
			if r.domain.Mesh().SameVertex(p.from[0].Source, e) {
				return p.to[0].Source, true
			}
		}
		return 0, false
	default:
		// Any outgoing half-edge of the vertex that keeps a label image
		// locates the image vertex.
		m := r.domain.Mesh()
		for a := e; ; {
			if img, ok := r.mapLabel(a); ok {
				return img, true
			}
			a = m.NextAtVertex(a)
			if a == e {
				return 0, false
			}
		}
	}
}

// vertexDisplacements integrates the per-edge displacements of a shift
// into one displacement per domain vertex, keyed by the vertex
// representative. The first vertex of each component is pinned at zero;
// only differences between vertices are meaningful, and those are well
// defined because displacements close up around every face.
func (r *Relation[T]) vertexDisplacements() map[mesh.HalfEdge]geom.Vector[T] {
	m := r.domain.Mesh()
	deltaOf := func(e mesh.HalfEdge) geom.Vector[T] {
		if e > 0 {
			return r.shift[e-1]
		}
		return r.shift[-e-1].Neg()
	}

	fans := m.Vertices()
	fanAt := make(map[mesh.HalfEdge][]mesh.HalfEdge, len(fans))
	for _, fan := range fans {
		fanAt[m.VertexOf(fan[0])] = fan
	}

	disp := make(map[mesh.HalfEdge]geom.Vector[T], len(fans))
	for _, fan := range fans {
		root := m.VertexOf(fan[0])
		if _, ok := disp[root]; ok {
			continue
		}
		disp[root] = geom.Vector[T]{}
		queue := append([]mesh.HalfEdge(nil), fan...)
		for len(queue) > 0 {
			e := queue[0]
			queue = queue[1:]
			head := m.VertexOf(-e)
			if _, ok := disp[head]; ok {
				continue
			}
			disp[head] = disp[m.VertexOf(e)].Add(deltaOf(e))
			queue = append(queue, fanAt[head]...)
		}
	}
	return disp
}

// faceImage maps a face representative whose triple survives the
// transformation edge by edge.
func (r *Relation[T]) faceImage(e mesh.HalfEdge) (mesh.HalfEdge, bool) {
	if r.kind == KindRetriangulation {
		// Faces do not survive a retriangulation in any labeled sense.
		return 0, false
	}
	m := r.domain.Mesh()
	triple := [3]mesh.HalfEdge{e, m.NextInFace(e), m.NextInFace(m.NextInFace(e))}
	var img [3]mesh.HalfEdge
	for i, x := range triple {
		var ok bool
		if r.kind == KindFlip && x.Edge() == r.flip.Edge() {
			return 0, false
		}
		img[i], ok = r.mapLabel(x)
		if !ok {
			return 0, false
		}
	}
	// The image labels must still form a face.
	cm := r.codomain.Mesh()
	if cm.NextInFace(img[0]) != img[1] || cm.NextInFace(img[1]) != img[2] {
		return 0, false
	}
	return img[0], true
}

// After returns the composition r∘b: first apply b, then r. The
// codomain of b must equal the domain of r.
func (r *Relation[T]) After(b *Relation[T]) *Relation[T] {
	if !b.codomain.Equal(r.domain) {
		panic("deform: composition endpoints do not match")
	}
	parts := make([]*Relation[T], 0, 2)
	if b.kind == KindComposite {
		parts = append(parts, b.parts...)
	} else {
		parts = append(parts, b)
	}
	if r.kind == KindComposite {
		parts = append(parts, r.parts...)
	} else {
		parts = append(parts, r)
	}
	return &Relation[T]{
		kind:     KindComposite,
		domain:   b.domain,
		codomain: r.codomain,
		parts:    parts,
	}
}

// Section returns the inverse relation where one exists.
func (r *Relation[T]) Section() (*Relation[T], error) {
	switch r.kind {
	case KindIdentity:
		return &Relation[T]{kind: KindIdentity, domain: r.codomain, codomain: r.domain}, nil

	case KindRelabel:
		inv := make(map[mesh.HalfEdge]mesh.HalfEdge, len(r.mapping))
		for from, to := range r.mapping {
			if to == 0 {
				return nil, ErrNoSection
			}
			inv[to] = from
		}
		return &Relation[T]{kind: KindRelabel, domain: r.codomain, codomain: r.domain, mapping: inv}, nil

	case KindLinear:
		minv, ok := r.matrix.Inverse()
		if !ok {
			return nil, ErrNoSection
		}
		var inv map[mesh.HalfEdge]mesh.HalfEdge
		if r.mapping != nil {
			inv = make(map[mesh.HalfEdge]mesh.HalfEdge, len(r.mapping))
			for from, to := range r.mapping {
				if to == 0 {
					return nil, ErrNoSection
				}
				inv[to] = from
			}
		}
		return &Relation[T]{kind: KindLinear, domain: r.codomain, codomain: r.domain, matrix: minv, mapping: inv}, nil

	case KindFlip:
		return &Relation[T]{kind: KindFlip, domain: r.codomain, codomain: r.domain, flip: r.flip}, nil

	case KindShift:
		for _, to := range r.mapping {
			if to == 0 {
				return nil, ErrNoSection
			}
		}
		neg := make([]geom.Vector[T], len(r.shift))
		for i := range r.shift {
			neg[i] = r.shift[i].Neg()
		}
		inv := invertShiftMapping(r.mapping, neg)
		return &Relation[T]{kind: KindShift, domain: r.codomain, codomain: r.domain, shift: inv, mapping: invertMapping(r.mapping)}, nil

	case KindInsert:
		// Undoing an insert forgets the edges at the new vertex, and a
		// split edge whose pieces only exist in the codomain.
		inv := make(map[mesh.HalfEdge]mesh.HalfEdge)
		for _, e := range r.codomain.Mesh().HalfEdges() {
			if int(e.Edge()) > r.domain.Mesh().NEdges() {
				inv[e] = 0
				continue
			}
			if _, ok := r.mapLabel(e); !ok {
				inv[e] = 0
				continue
			}
			inv[e] = e
		}
		return &Relation[T]{kind: KindCollapse, domain: r.codomain, codomain: r.domain, mapping: inv}, nil

	case KindRetriangulation:
		inv := make([]pathPair[T], 0, len(r.pairs))
		for _, p := range r.pairs {
			inv = append(inv, pathPair[T]{from: p.to, to: p.from})
		}
		return &Relation[T]{kind: KindRetriangulation, domain: r.codomain, codomain: r.domain, pairs: inv}, nil

	case KindCollapse, KindSlit:
		return nil, ErrNoSection

	case KindComposite:
		sections := make([]*Relation[T], 0, len(r.parts))
		for i := len(r.parts) - 1; i >= 0; i-- {
			s, err := r.parts[i].Section()
			if err != nil {
				return nil, err
			}
			sections = append(sections, s)
		}
		return &Relation[T]{kind: KindComposite, domain: r.codomain, codomain: r.domain, parts: sections}, nil

	default:
		panic("deform: unknown relation kind")
	}
}

// invertMapping inverts an injective label correspondence.
func invertMapping(m map[mesh.HalfEdge]mesh.HalfEdge) map[mesh.HalfEdge]mesh.HalfEdge {
	if m == nil {
		return nil
	}
	inv := make(map[mesh.HalfEdge]mesh.HalfEdge, len(m))
	for from, to := range m {
		inv[to] = from
	}
	return inv
}

// invertShiftMapping transports per-edge displacements through a label
// correspondence onto the codomain labels.
func invertShiftMapping[T ring.Scalar[T]](m map[mesh.HalfEdge]mesh.HalfEdge, neg []geom.Vector[T]) []geom.Vector[T] {
	if m == nil {
		return neg
	}
	out := make([]geom.Vector[T], len(neg))
	for from, to := range m {
		if from > 0 && to > 0 {
			out[to-1] = neg[from-1]
		}
	}
	return out
}

// Equal reports structural equality of two relations.
func (r *Relation[T]) Equal(o *Relation[T]) bool {
	if r.kind != o.kind || !r.domain.Equal(o.domain) || !r.codomain.Equal(o.codomain) {
		return false
	}
	switch r.kind {
	case KindFlip:
		return r.flip == o.flip
	case KindLinear:
		return r.matrix.Equal(o.matrix) && mappingsEqual(r.mapping, o.mapping)
	case KindRelabel, KindInsert, KindCollapse, KindSlit:
		return mappingsEqual(r.mapping, o.mapping)
	case KindShift:
		if len(r.shift) != len(o.shift) {
			return false
		}
		for i := range r.shift {
			if !r.shift[i].Sub(o.shift[i]).IsZero() {
				return false
			}
		}
		return mappingsEqual(r.mapping, o.mapping)
	case KindRetriangulation:
		if len(r.pairs) != len(o.pairs) {
			return false
		}
		for i := range r.pairs {
			if !r.pairs[i].from.Equal(o.pairs[i].from) || !r.pairs[i].to.Equal(o.pairs[i].to) {
				return false
			}
		}
		return true
	case KindComposite:
		if len(r.parts) != len(o.parts) {
			return false
		}
		for i := range r.parts {
			if !r.parts[i].Equal(o.parts[i]) {
				return false
			}
		}
		return true
	}
	return true
}

func mappingsEqual(a, b map[mesh.HalfEdge]mesh.HalfEdge) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	return true
}

// String renders the relation chain for diagnostics.
func (r *Relation[T]) String() string {
	if r.kind != KindComposite {
		return r.kind.String()
	}
	names := make([]string, 0, len(r.parts))
	for _, p := range r.parts {
		names = append(names, p.String())
	}
	return "Composite(" + strings.Join(names, " then ") + ")"
}
