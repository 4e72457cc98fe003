package mesh

// setNV writes nv[e] = x and keeps the inverse table in step.
func (m *Mesh) setNV(e, x HalfEdge) {
	m.nv[e.index()] = x
	m.pv[x.index()] = e
}

// setNF writes nf[e] = x.
func (m *Mesh) setNF(e, x HalfEdge) {
	m.nf[e.index()] = x
}

// Flip replaces e, the diagonal of the quadrilateral formed by its two
// adjacent triangles, with the other diagonal. Writing the two old faces
// as (e, n, p) and (-e, o, q), the new faces are (e, p, o) and
// (-e, q, n). Geometric preconditions (strict convexity) are enforced by
// the surface layer; combinatorially the two faces must be distinct and
// non-boundary.
// Complexity: O(1).
func (m *Mesh) Flip(e HalfEdge) error {
	if m.Boundary(e) || m.Boundary(-e) {
		return ErrBoundaryEdge
	}
	n := m.NextInFace(e)
	p := m.NextInFace(n)
	o := m.NextInFace(-e)
	q := m.NextInFace(o)
	if n == -e || p == -e {
		return ErrSameFace
	}

	// New faces (e, p, o) and (-e, q, n).
	m.setNF(e, p)
	m.setNF(p, o)
	m.setNF(o, e)
	m.setNF(-e, q)
	m.setNF(q, n)
	m.setNF(n, -e)

	// Vertex rotation follows from nextAtVertex(x) = -prevInFace(x).
	m.setNV(e, -o)
	m.setNV(p, -e)
	m.setNV(o, -p)
	m.setNV(-e, -n)
	m.setNV(q, e)
	m.setNV(n, -q)
	return nil
}

// Collapse contracts the edge of e, merging its two endpoints and
// eliminating the two bigons left behind by identifying the remaining
// edge pairs of the two adjacent triangles. Labels above the removed
// edges shift down; the returned map sends every old half-edge to its
// new label, with removed half-edges mapped to 0 and the identified
// sides of the two triangles mapped onto their surviving partners.
// Complexity: O(n) for the relabeling sweep.
func (m *Mesh) Collapse(e HalfEdge) (map[HalfEdge]HalfEdge, error) {
	if m.Boundary(e) || m.Boundary(-e) {
		return nil, ErrBoundaryEdge
	}
	if m.SameVertex(e, -e) {
		return nil, ErrLoopCollapse
	}
	n := m.NextInFace(e)
	p := m.NextInFace(n)
	o := m.NextInFace(-e)
	q := m.NextInFace(o)
	for _, x := range []HalfEdge{n, p, o, q} {
		if m.Boundary(x) || m.Boundary(-x) {
			return nil, ErrBoundaryEdge
		}
	}

	// The surgery below handles one identification per triangle; if the
	// five edges are not pairwise distinct the identifications chain and
	// the surface degenerates.
	edges := []HalfEdge{e.Edge(), n.Edge(), p.Edge(), o.Edge(), q.Edge()}
	for i := 0; i < len(edges); i++ {
		for j := i + 1; j < len(edges); j++ {
			if edges[i] == edges[j] {
				return nil, ErrDegenerateCollapse
			}
		}
	}

	// In face (e, n, p) the pair {n, -n} absorbs {-p, p}; in face
	// (-e, o, q) the pair {o, -o} absorbs {-q, q}.
	rename := map[HalfEdge]HalfEdge{-p: n, p: -n, -q: o, q: -o}
	ren := func(x HalfEdge) HalfEdge {
		if y, ok := rename[x]; ok {
			return y
		}
		return x
	}

	// New face rotation on surviving labels. n and o lose their faces to
	// the collapse and take over the face slots of -p and -q; -n and -o
	// keep their own faces, and the predecessors of -p and -q are
	// redirected by `ren`.
	old := m.Clone()
	next := func(x HalfEdge) HalfEdge {
		switch x {
		case n:
			return ren(old.NextInFace(-p))
		case o:
			return ren(old.NextInFace(-q))
		default:
			return ren(old.NextInFace(x))
		}
	}

	// Relabel surviving edges contiguously.
	removed := map[HalfEdge]bool{e.Edge(): true, p.Edge(): true, q.Edge(): true}
	relabel := make(map[HalfEdge]HalfEdge, 2*old.NEdges())
	newLabel := HalfEdge(0)
	for _, pos := range old.Edges() {
		if removed[pos] {
			continue
		}
		newLabel++
		relabel[pos] = newLabel
		relabel[-pos] = -newLabel
	}

	size := 2 * (old.NEdges() - len(removed))
	m.nv = make([]HalfEdge, size)
	m.pv = make([]HalfEdge, size)
	m.nf = make([]HalfEdge, size)
	m.bnd = make([]bool, size)
	for pos := range relabel {
		if pos < 0 {
			continue
		}
		for _, x := range []HalfEdge{pos, -pos} {
			nx := relabel[next(x)]
			m.setNF(relabel[x], nx)
			m.bnd[relabel[x].index()] = old.bnd[x.index()]
		}
	}
	// Vertex rotation from the new faces.
	for i := range m.nv {
		x := labelOf(i)
		m.setNV(x, -m.prevInFaceRaw(x))
	}
	if err := m.checkTriangulated(); err != nil {
		return nil, ErrDegenerateCollapse
	}

	// Full mapping old -> new, including the identified half-edges.
	mapping := make(map[HalfEdge]HalfEdge, 2*old.NEdges())
	for _, x := range old.HalfEdges() {
		switch {
		case x == e || x == -e:
			mapping[x] = 0
		case x == p || x == -p || x == q || x == -q:
			mapping[x] = relabel[ren(x)]
		default:
			mapping[x] = relabel[x]
		}
	}
	return mapping, nil
}

// InsertAt subdivides the face (e, n, p) to the left of e by a new
// vertex z of degree 3. Three edges a=k+1 (z to source of e), b=k+2
// (z to target of e) and c=k+3 (z to source of p) are appended, forming
// faces (e, -b, a), (n, -c, b) and (p, -a, c). The returned half-edge is
// a; after the call -a == NextAtVertex(e).
// Complexity: O(1) plus arena growth.
func (m *Mesh) InsertAt(e HalfEdge) (HalfEdge, error) {
	if m.Boundary(e) {
		return 0, ErrBoundaryEdge
	}
	n := m.NextInFace(e)
	p := m.NextInFace(n)

	k := HalfEdge(m.NEdges())
	a, b, c := k+1, k+2, k+3
	m.nv = append(m.nv, 0, 0, 0, 0, 0, 0)
	m.pv = append(m.pv, 0, 0, 0, 0, 0, 0)
	m.nf = append(m.nf, 0, 0, 0, 0, 0, 0)
	m.bnd = append(m.bnd, false, false, false, false, false, false)

	m.setNF(e, -b)
	m.setNF(-b, a)
	m.setNF(a, e)
	m.setNF(n, -c)
	m.setNF(-c, b)
	m.setNF(b, n)
	m.setNF(p, -a)
	m.setNF(-a, c)
	m.setNF(c, p)

	m.setNV(e, -a)
	m.setNV(-a, -p)
	m.setNV(n, -b)
	m.setNV(-b, -e)
	m.setNV(p, -c)
	m.setNV(-c, -n)
	m.setNV(a, b)
	m.setNV(b, c)
	m.setNV(c, a)
	return a, nil
}

// Slit cuts the edge of e open: a fresh edge N=k+1 parallel to e is
// appended, -N takes the place of -e in its face, and -e together with N
// become boundary half-edges. The returned half-edge is N.
// Complexity: O(1) plus arena growth.
func (m *Mesh) Slit(e HalfEdge) (HalfEdge, error) {
	if m.Boundary(e) || m.Boundary(-e) {
		return 0, ErrBoundaryEdge
	}
	o := m.NextInFace(-e)
	q := m.PrevInFace(-e)

	N := HalfEdge(m.NEdges() + 1)
	m.nv = append(m.nv, 0, 0)
	m.pv = append(m.pv, 0, 0)
	m.nf = append(m.nf, 0, 0)
	m.bnd = append(m.bnd, false, false)

	// -N replaces -e in the face (-e, o, q).
	m.setNF(q, -N)
	m.setNF(-N, o)
	m.setNF(-e, -e)
	m.setNF(N, N)
	m.bnd[(-e).index()] = true
	m.bnd[N.index()] = true

	// Insert -N before -e at the target vertex and N after e at the
	// source vertex.
	m.setNV(m.PrevAtVertex(-e), -N)
	m.setNV(-N, -e)
	nextE := m.NextAtVertex(e)
	m.setNV(e, N)
	m.setNV(N, nextE)
	return N, nil
}
