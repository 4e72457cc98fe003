package mesh

import (
	"fmt"
	"strings"
)

// HalfEdge is a signed non-zero half-edge label; -e is the opposite
// half-edge. The pair {e, -e} forms an edge.
type HalfEdge int

// Edge returns the positive label of the edge containing e.
func (e HalfEdge) Edge() HalfEdge {
	if e < 0 {
		return -e
	}
	return e
}

// index maps a label to its arena slot: 1 -> 0, -1 -> 1, 2 -> 2, ...
func (e HalfEdge) index() int {
	if e > 0 {
		return 2 * (int(e) - 1)
	}
	return 2*(int(-e)-1) + 1
}

// labelOf inverts index.
func labelOf(i int) HalfEdge {
	if i%2 == 0 {
		return HalfEdge(i/2 + 1)
	}
	return HalfEdge(-(i/2 + 1))
}

// Mesh is the arena of rotation tables for a triangulated surface. It is
// the exclusive owner of its adjacency data and is mutated in place.
type Mesh struct {
	nv  []HalfEdge // next at vertex (counterclockwise), by slot
	pv  []HalfEdge // inverse of nv
	nf  []HalfEdge // next in face, by slot
	bnd []bool     // boundary half-edges
}

// NewFromCycles builds a Mesh from explicit vertex rotations: cycles[i]
// lists the outgoing half-edges of one vertex in counterclockwise
// order. The labels across all cycles must cover ±1..±n exactly once and
// the induced faces must all be triangles.
// Complexity: O(n).
func NewFromCycles(cycles [][]HalfEdge) (*Mesh, error) {
	return newFromCycles(cycles, nil)
}

// NewFromCyclesWithBoundary is NewFromCycles with a set of half-edges
// declared as boundary; their face orbits are exempt from the triangle
// requirement.
func NewFromCyclesWithBoundary(cycles [][]HalfEdge, boundary []HalfEdge) (*Mesh, error) {
	return newFromCycles(cycles, boundary)
}

func newFromCycles(cycles [][]HalfEdge, boundary []HalfEdge) (*Mesh, error) {
	total := 0
	max := HalfEdge(0)
	for _, cycle := range cycles {
		total += len(cycle)
		for _, e := range cycle {
			if e == 0 {
				return nil, ErrBadRotation
			}
			if e.Edge() > max {
				max = e.Edge()
			}
		}
	}
	if total != 2*int(max) || max == 0 {
		return nil, ErrBadRotation
	}

	m := &Mesh{
		nv:  make([]HalfEdge, total),
		pv:  make([]HalfEdge, total),
		nf:  make([]HalfEdge, total),
		bnd: make([]bool, total),
	}
	seen := make([]bool, total)
	for _, cycle := range cycles {
		for i, e := range cycle {
			if seen[e.index()] {
				return nil, ErrBadRotation
			}
			seen[e.index()] = true
			next := cycle[(i+1)%len(cycle)]
			m.nv[e.index()] = next
			m.pv[next.index()] = e
		}
	}
	for _, e := range boundary {
		if e == 0 || e.Edge() > max {
			return nil, ErrBadRotation
		}
		m.bnd[e.index()] = true
	}

	// Faces follow from the vertex rotation: the face to the left of e
	// continues with the reverse of e's vertex-predecessor.
	for i := range m.nf {
		e := labelOf(i)
		if m.bnd[i] {
			m.nf[i] = e
			continue
		}
		m.nf[i] = -m.pv[i]
	}
	if err := m.checkTriangulated(); err != nil {
		return nil, err
	}
	return m, nil
}

// NewFromFaces builds a Mesh from explicit triangles; every edge label
// ±1..±n must occur in exactly one triple, and faces must glue into a
// closed surface.
// Complexity: O(n).
func NewFromFaces(faces [][3]HalfEdge) (*Mesh, error) {
	total := 0
	max := HalfEdge(0)
	for _, f := range faces {
		total += 3
		for _, e := range f {
			if e == 0 {
				return nil, ErrBadRotation
			}
			if e.Edge() > max {
				max = e.Edge()
			}
		}
	}
	if total != 2*int(max) || max == 0 {
		return nil, ErrBadRotation
	}

	m := &Mesh{
		nv:  make([]HalfEdge, total),
		pv:  make([]HalfEdge, total),
		nf:  make([]HalfEdge, total),
		bnd: make([]bool, total),
	}
	seen := make([]bool, total)
	for _, f := range faces {
		for i, e := range f {
			if seen[e.index()] {
				return nil, ErrBadRotation
			}
			seen[e.index()] = true
			m.nf[e.index()] = f[(i+1)%3]
		}
	}
	// Vertex rotation from faces: nextAtVertex(e) = -prevInFace(e).
	for i := range m.nv {
		e := labelOf(i)
		prev := m.prevInFaceRaw(e)
		m.nv[i] = -prev
		m.pv[(-prev).index()] = e
	}
	if err := m.checkTriangulated(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Mesh) checkTriangulated() error {
	for i := range m.nf {
		if m.bnd[i] {
			continue
		}
		e := labelOf(i)
		n := m.nf[i]
		p := m.nf[n.index()]
		if n == e || p == e || m.nf[p.index()] != e {
			return ErrNotTriangulated
		}
	}
	return nil
}

// NEdges returns the number of edges n (half-edges are ±1..±n).
func (m *Mesh) NEdges() int { return len(m.nv) / 2 }

// NextAtVertex returns the counterclockwise successor of e among the
// outgoing half-edges at e's source vertex. Complexity: O(1).
func (m *Mesh) NextAtVertex(e HalfEdge) HalfEdge { return m.nv[e.index()] }

// PrevAtVertex returns the clockwise successor of e at its source vertex.
func (m *Mesh) PrevAtVertex(e HalfEdge) HalfEdge { return m.pv[e.index()] }

// NextInFace returns the successor of e inside its face.
func (m *Mesh) NextInFace(e HalfEdge) HalfEdge { return m.nf[e.index()] }

// PrevInFace returns the predecessor of e inside its face.
func (m *Mesh) PrevInFace(e HalfEdge) HalfEdge { return m.prevInFaceRaw(e) }

func (m *Mesh) prevInFaceRaw(e HalfEdge) HalfEdge {
	// Faces are triangles (or short boundary orbits); walking forward is
	// as cheap as storing the inverse.
	p := m.nf[e.index()]
	for m.nf[p.index()] != e {
		p = m.nf[p.index()]
	}
	return p
}

// Boundary reports whether e is a boundary half-edge.
func (m *Mesh) Boundary(e HalfEdge) bool { return m.bnd[e.index()] }

// HasBoundary reports whether any half-edge is boundary.
func (m *Mesh) HasBoundary() bool {
	for _, b := range m.bnd {
		if b {
			return true
		}
	}
	return false
}

// HalfEdges returns all half-edge labels 1, -1, 2, -2, ..., n, -n.
func (m *Mesh) HalfEdges() []HalfEdge {
	out := make([]HalfEdge, len(m.nv))
	for i := range out {
		out[i] = labelOf(i)
	}
	return out
}

// Edges returns the positive labels 1..n.
func (m *Mesh) Edges() []HalfEdge {
	out := make([]HalfEdge, m.NEdges())
	for i := range out {
		out[i] = HalfEdge(i + 1)
	}
	return out
}

// VertexOf returns the canonical representative (smallest slot) of the
// vertex rotation orbit containing e. Two half-edges share their source
// vertex exactly when their representatives coincide.
func (m *Mesh) VertexOf(e HalfEdge) HalfEdge {
	min := e
	for c := m.nv[e.index()]; c != e; c = m.nv[c.index()] {
		if c.index() < min.index() {
			min = c
		}
	}
	return min
}

// SameVertex reports whether a and b leave the same vertex.
func (m *Mesh) SameVertex(a, b HalfEdge) bool { return m.VertexOf(a) == m.VertexOf(b) }

// AtVertex returns the outgoing fan of e's source vertex, starting at e.
func (m *Mesh) AtVertex(e HalfEdge) []HalfEdge {
	fan := []HalfEdge{e}
	for c := m.nv[e.index()]; c != e; c = m.nv[c.index()] {
		fan = append(fan, c)
	}
	return fan
}

// Vertices returns every vertex as its outgoing fan, each starting at
// the canonical representative.
func (m *Mesh) Vertices() [][]HalfEdge {
	var out [][]HalfEdge
	done := make([]bool, len(m.nv))
	for i := range m.nv {
		if done[i] {
			continue
		}
		fan := m.AtVertex(m.VertexOf(labelOf(i)))
		for _, e := range fan {
			done[e.index()] = true
		}
		out = append(out, fan)
	}
	return out
}

// Faces returns every non-boundary face as an oriented triple.
func (m *Mesh) Faces() [][3]HalfEdge {
	var out [][3]HalfEdge
	done := make([]bool, len(m.nf))
	for i := range m.nf {
		if done[i] || m.bnd[i] {
			continue
		}
		e := labelOf(i)
		n := m.nf[e.index()]
		p := m.nf[n.index()]
		out = append(out, [3]HalfEdge{e, n, p})
		done[e.index()], done[n.index()], done[p.index()] = true, true, true
	}
	return out
}

// Clone returns an independent deep copy.
func (m *Mesh) Clone() *Mesh {
	c := &Mesh{
		nv:  append([]HalfEdge(nil), m.nv...),
		pv:  append([]HalfEdge(nil), m.pv...),
		nf:  append([]HalfEdge(nil), m.nf...),
		bnd: append([]bool(nil), m.bnd...),
	}
	return c
}

// Equal reports structural equality of two meshes (same labels, same
// rotations, same boundary).
func (m *Mesh) Equal(o *Mesh) bool {
	if len(m.nv) != len(o.nv) {
		return false
	}
	for i := range m.nv {
		if m.nv[i] != o.nv[i] || m.nf[i] != o.nf[i] || m.bnd[i] != o.bnd[i] {
			return false
		}
	}
	return true
}

// String renders the vertex and face orbits for diagnostics.
func (m *Mesh) String() string {
	var sb strings.Builder
	sb.WriteString("Mesh(vertices=")
	for i, fan := range m.Vertices() {
		if i > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "%v", fan)
	}
	sb.WriteString(", faces=")
	for i, f := range m.Faces() {
		if i > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "(%d, %d, %d)", f[0], f[1], f[2])
	}
	sb.WriteString(")")
	return sb.String()
}
