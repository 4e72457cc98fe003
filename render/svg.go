package render

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/golang/geo/r2"

	"github.com/flatgeom/flattri/mesh"
	"github.com/flatgeom/flattri/ring"
	"github.com/flatgeom/flattri/surface"
)

const (
	defaultWidth = 800
	defaultStyle = "fill:rgb(245,245,245);stroke:rgb(60,60,60);stroke-width:1"
	vertexStyle  = "fill:rgb(0,0,200)"
	labelStyle   = "font-size:11px;fill:rgb(120,120,120)"
)

// Options configures an SVG rendering. The zero value draws an
// 800-pixel-wide picture with default styles and edge labels.
type Options struct {
	// Width of the canvas in pixels; height follows the aspect ratio of
	// the development. Zero means 800.
	Width int
	// FaceStyle is the SVG style applied to every face polygon.
	FaceStyle string
	// NoLabels suppresses the half-edge labels.
	NoLabels bool
}

func (o Options) normalized() Options {
	if o.Width == 0 {
		o.Width = defaultWidth
	}
	if o.FaceStyle == "" {
		o.FaceStyle = defaultStyle
	}
	return o
}

// placedFace is one developed triangle: the face triple and the planar
// position of each corner, corner i being the source of edge[i].
type placedFace struct {
	edges   [3]mesh.HalfEdge
	corners [3]r2.Point
}

// SVG develops s into the plane and writes it as an SVG document.
func SVG[T ring.Scalar[T]](w io.Writer, s *surface.Surface[T], opt Options) {
	opt = opt.normalized()
	faces := develop(s)

	lo, hi := bounds(faces)
	span := hi.Sub(lo)
	if span.X == 0 {
		span.X = 1
	}
	if span.Y == 0 {
		span.Y = 1
	}
	margin := float64(opt.Width) / 20
	scale := (float64(opt.Width) - 2*margin) / span.X
	height := int(span.Y*scale + 2*margin)

	// SVG y grows downwards.
	toScreen := func(p r2.Point) (int, int) {
		return int((p.X-lo.X)*scale + margin), int((hi.Y-p.Y)*scale + margin)
	}

	canvas := svg.New(w)
	canvas.Start(opt.Width, height)
	for _, f := range faces {
		var xs, ys [3]int
		for i, c := range f.corners {
			xs[i], ys[i] = toScreen(c)
		}
		canvas.Polygon(xs[:], ys[:], opt.FaceStyle)
		if !opt.NoLabels {
			for i, e := range f.edges {
				mid := f.corners[i].Add(f.corners[(i+1)%3]).Mul(0.5)
				x, y := toScreen(mid)
				canvas.Text(x, y, fmt.Sprintf("%d", e), labelStyle)
			}
		}
	}
	for _, f := range faces {
		for _, c := range f.corners {
			x, y := toScreen(c)
			canvas.Circle(x, y, 3, vertexStyle)
		}
	}
	canvas.End()
}

// develop unfolds every face of s into the plane, breadth-first from
// the first face. Each face is placed exactly once; the shared edge
// with an already placed neighbour fixes its position.
func develop[T ring.Scalar[T]](s *surface.Surface[T]) []placedFace {
	m := s.Mesh()
	vec := func(e mesh.HalfEdge) r2.Point {
		x, y := s.FromHalfEdge(e).Float64()
		return r2.Point{X: x, Y: y}
	}
	place := func(e mesh.HalfEdge, at r2.Point) placedFace {
		n := m.NextInFace(e)
		p := m.NextInFace(n)
		return placedFace{
			edges:   [3]mesh.HalfEdge{e, n, p},
			corners: [3]r2.Point{at, at.Add(vec(e)), at.Add(vec(e)).Add(vec(n))},
		}
	}

	var out []placedFace
	done := map[mesh.HalfEdge]bool{}
	markDone := func(f placedFace) {
		for _, e := range f.edges {
			done[e] = true
		}
	}

	for _, seed := range m.Faces() {
		if done[seed[0]] {
			continue
		}
		queue := []placedFace{place(seed[0], r2.Point{})}
		markDone(queue[0])
		for len(queue) > 0 {
			f := queue[0]
			queue = queue[1:]
			out = append(out, f)

			for i, e := range f.edges {
				twin := -e
				if m.Boundary(twin) || done[twin] {
					continue
				}
				// The twin starts at the head of e.
				q := place(twin, f.corners[(i+1)%3])
				markDone(q)
				queue = append(queue, q)
			}
		}
	}
	return out
}

// bounds returns the corners of the axis-aligned box around the
// development.
func bounds(faces []placedFace) (lo, hi r2.Point) {
	lo = r2.Point{X: math.Inf(1), Y: math.Inf(1)}
	hi = r2.Point{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, f := range faces {
		for _, c := range f.corners {
			lo.X = math.Min(lo.X, c.X)
			lo.Y = math.Min(lo.Y, c.Y)
			hi.X = math.Max(hi.X, c.X)
			hi.Y = math.Max(hi.Y, c.Y)
		}
	}
	return lo, hi
}
