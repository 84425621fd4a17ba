package outline

import "github.com/footbagworks/panelcut/pkg/core/geom"

// EdgeSample is a point on an edge with its unit tangent and its unit normal
// pointing into the shape. T is the edge parameter in [0, 1].
type EdgeSample struct {
	P   geom.Point
	T   float64
	Tan geom.Point
	N   geom.Point
}

// SampleEdge returns samples+1 evenly parameterized points from a to b.
// With a valid radius r the points lie on the outline arc and the normal
// points at the arc center; otherwise the edge is straight and the normal is
// the chord perpendicular facing the origin. Loops must therefore be centered
// near the origin.
func SampleEdge(a, b geom.Point, r float64, samples int) []EdgeSample {
	if samples < 1 {
		samples = 1
	}
	out := make([]EdgeSample, samples+1)
	if arc, ok := NewArc(a, b, r); ok {
		for i := range out {
			t := float64(i) / float64(samples)
			out[i] = EdgeSample{P: arc.At(t), T: t, Tan: arc.Tangent(t), N: arc.Normal(t)}
		}
		return out
	}

	tan := geom.Normalize(b.Minus(a))
	n := InwardNormal(a, b)
	for i := range out {
		t := float64(i) / float64(samples)
		out[i] = EdgeSample{P: geom.Lerp(a, b, t), T: t, Tan: tan, N: n}
	}
	return out
}

// InwardNormal returns the unit perpendicular of a→b that faces the origin.
func InwardNormal(a, b geom.Point) geom.Point {
	n := geom.OutwardNormal(a, b)
	if geom.Dot(n, geom.Midpoint(a, b)) > 0 {
		return n.Times(-1)
	}
	return n
}

// Cumulative returns the running polyline length at each sample and the
// total length.
func Cumulative(samples []EdgeSample) ([]float64, float64) {
	cum := make([]float64, len(samples))
	for i := 1; i < len(samples); i++ {
		cum[i] = cum[i-1] + geom.Distance(samples[i-1].P, samples[i].P)
	}
	if len(cum) == 0 {
		return cum, 0
	}
	return cum, cum[len(cum)-1]
}
