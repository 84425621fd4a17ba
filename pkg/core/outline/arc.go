package outline

import (
	"math"

	"github.com/footbagworks/panelcut/pkg/core/geom"
)

// Epsilon guards radius comparisons against rounding noise.
const Epsilon = 1e-6

// ValidRadius reports whether a circular arc of radius r can span a chord of
// the given length.
func ValidRadius(r, chord float64) bool {
	if math.IsNaN(r) || math.IsInf(r, 0) || r <= 0 || chord <= 0 {
		return false
	}
	return r >= chord/2
}

// Arc is the minor circular arc drawn by the SVG command "A r r 0 0 1" from
// the start to the end point. Angles increase clockwise on screen.
type Arc struct {
	Center geom.Point
	Radius float64
	Start  float64 // angle of the start point, radians
	Sweep  float64 // swept angle, in (0, π]
	chord  float64
}

// NewArc builds the arc from a to b with radius r. It returns false when the
// radius cannot span the chord.
//
// The center follows the SVG endpoint-to-center conversion for large-arc=0,
// sweep=1: it lies on the left of a→b, which is the interior side of the
// loops produced by geom, so the arc bulges outward.
func NewArc(a, b geom.Point, r float64) (Arc, bool) {
	chord := geom.Distance(a, b)
	if !ValidRadius(r, chord) {
		return Arc{}, false
	}
	h := chord / 2
	off := math.Sqrt(math.Max(0, r*r-h*h))
	n := geom.OutwardNormal(a, b)
	c := geom.Midpoint(a, b).Minus(n.Times(off))

	start := math.Atan2(a.Y-c.Y, a.X-c.X)
	sweep := math.Atan2(b.Y-c.Y, b.X-c.X) - start
	for sweep <= 0 {
		sweep += 2 * math.Pi
	}
	for sweep > 2*math.Pi {
		sweep -= 2 * math.Pi
	}
	return Arc{Center: c, Radius: r, Start: start, Sweep: sweep, chord: chord}, true
}

// Chord returns the straight distance between the arc endpoints.
func (a Arc) Chord() float64 { return a.chord }

// At returns the point at parameter t in [0, 1] along the arc.
func (a Arc) At(t float64) geom.Point {
	s, c := math.Sincos(a.Start + a.Sweep*t)
	return geom.Point{X: a.Center.X + a.Radius*c, Y: a.Center.Y + a.Radius*s}
}

// Normal returns the unit normal at t, pointing toward the arc center.
func (a Arc) Normal(t float64) geom.Point {
	s, c := math.Sincos(a.Start + a.Sweep*t)
	return geom.Point{X: -c, Y: -s}
}

// Tangent returns the unit tangent at t in the direction of travel.
func (a Arc) Tangent(t float64) geom.Point {
	s, c := math.Sincos(a.Start + a.Sweep*t)
	return geom.Point{X: -s, Y: c}
}

// Length returns the arc length.
func (a Arc) Length() float64 { return math.Abs(a.Sweep) * a.Radius }

// Sagitta returns the height of the arc above its chord.
func (a Arc) Sagitta() float64 {
	h := a.chord / 2
	return a.Radius - math.Sqrt(math.Max(0, a.Radius*a.Radius-h*h))
}

// Inset returns the arc offset by s toward the center: same center and
// angles, radius r - s. The result is invalid when the shrunken radius drops
// below chord/2 + Epsilon, in which case callers interpolate along the chord
// instead. Inset(0) returns the arc unchanged.
func (a Arc) Inset(s float64) (Arc, bool) {
	if s == 0 {
		return a, true
	}
	r := a.Radius - s
	if r < a.chord/2+Epsilon {
		return Arc{}, false
	}
	a.Radius = r
	return a, true
}

// RadiusForDepth returns the radius of the arc that rises depth above a chord
// of the given length. It returns 0 for a non-positive depth.
func RadiusForDepth(chord, depth float64) float64 {
	if depth <= 0 || chord <= 0 {
		return 0
	}
	h := chord / 2
	return (h*h + depth*depth) / (2 * depth)
}
