package stitch

import (
	"math"

	"github.com/footbagworks/panelcut/pkg/core/geom"
	"github.com/footbagworks/panelcut/pkg/core/outline"
)

// edge is one loop edge prepared for hole placement.
type edge struct {
	samples []outline.EdgeSample
	cum     []float64
	length  float64
	inset   outline.Arc
	onArc   bool
}

func prepare(a, b geom.Point, r float64, o Options) edge {
	e := edge{samples: outline.SampleEdge(a, b, r, o.samples())}
	e.cum, e.length = outline.Cumulative(e.samples)
	if arc, ok := outline.NewArc(a, b, r); ok {
		if in, ok := arc.Inset(o.SeamOffset); ok {
			e.inset, e.onArc = in, true
			e.length = in.Length()
		}
	}
	return e
}

// place maps an arc-length target to a hole center.
func (e edge) place(target, seam float64) geom.Point {
	if e.onArc {
		t := 0.0
		if l := e.inset.Length(); l > 0 {
			t = target / l
		}
		return e.inset.At(t)
	}

	n := len(e.cum)
	if n < 2 {
		return e.samples[0].P
	}
	idx := 0
	for idx < n && e.cum[idx] < target {
		idx++
	}
	idx = min(max(idx, 1), n-1)
	s0, s1 := e.samples[idx-1], e.samples[idx]
	f := (target - e.cum[idx-1]) / math.Max(outline.Epsilon, e.cum[idx]-e.cum[idx-1])

	p := geom.Lerp(s0.P, s1.P, f)
	nrm := geom.Lerp(s0.N, s1.N, f)
	if geom.Dot(nrm, p.Times(-1)) < 0 {
		nrm = nrm.Times(-1)
	}
	if nrm.Magnitude() == 0 {
		nrm = geom.Pt(1, 0)
	}
	return p.Plus(geom.Normalize(nrm).Times(seam))
}

// ByEdge returns the hole centers for every edge of loop, drawn with corner
// radius r (r <= 0 for straight edges). The result has one entry per edge;
// edges excluded from stitching, or too short for any hole, get a nil entry.
func ByEdge(loop geom.Loop, r float64, o Options) [][]geom.Point {
	groups := make([][]geom.Point, loop.Len())
	for i := range loop.Len() {
		if !loop.Stitched(i) {
			continue
		}
		a, b := loop.Edge(i)
		e := prepare(a, b, r, o)
		sm, em := Margins(loop, i, e.length, o)
		ks, ke := loop.EdgeKinds(i)
		targets := Positions(e.length, sm, em, o, ks != geom.Root, ke != geom.Root)
		if len(targets) == 0 {
			continue
		}
		pts := make([]geom.Point, len(targets))
		for k, t := range targets {
			pts[k] = e.place(t, o.SeamOffset)
		}
		groups[i] = pts
	}
	return groups
}

// Flatten concatenates per-edge groups in edge order.
func Flatten(groups [][]geom.Point) []geom.Point {
	var n int
	for _, g := range groups {
		n += len(g)
	}
	out := make([]geom.Point, 0, n)
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// MaxSpacing returns the largest hole spacing every stitched edge of loop can
// honour, measured on the outline itself. It returns 1 when no edge is
// stitched.
func MaxSpacing(loop geom.Loop, r float64, o Options) float64 {
	best := math.Inf(1)
	for i := range loop.Len() {
		if !loop.Stitched(i) {
			continue
		}
		a, b := loop.Edge(i)
		var l float64
		if arc, ok := outline.NewArc(a, b, r); ok {
			l = arc.Length()
		} else {
			_, l = outline.Cumulative(outline.SampleEdge(a, b, r, o.samples()))
		}
		sm, em := Margins(loop, i, l, o)
		best = math.Min(best, ceiling(math.Max(0, l-sm-em), o.Holes))
	}
	if math.IsInf(best, 1) {
		return 1
	}
	return best
}
