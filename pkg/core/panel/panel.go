// Package panel assembles the cut outline, the stitch holes and the bounding
// box of a single footbag panel.
package panel

import (
	"math"

	"github.com/footbagworks/panelcut/pkg/core/geom"
	"github.com/footbagworks/panelcut/pkg/core/outline"
	"github.com/footbagworks/panelcut/pkg/core/stitch"
)

const (
	// Margin pads the bounding box on every side, in millimetres.
	Margin = 10.0
	// BoundsSamples is the number of samples per edge used for the bounds.
	BoundsSamples = 20
)

// Config is the complete input for one panel. Numeric fields are expected to
// be clamped to their valid ranges already; Compute only guards geometric
// feasibility.
type Config struct {
	Shape          geom.Shape
	SeamOffset     float64
	Holes          int
	Curved         bool
	CurveRadius    float64
	CornerMargin   float64
	HoleSpacing    float64
	CornerWeighted bool
	CornerDistance float64
	StarRootOffset float64
}

// Radius returns the edge radius to draw with, 0 for straight edges.
func (c Config) Radius() float64 {
	if !c.Curved {
		return 0
	}
	return c.CurveRadius
}

// StitchOptions converts the config into hole placement options.
func (c Config) StitchOptions() stitch.Options {
	return stitch.Options{
		Holes:          c.Holes,
		SeamOffset:     c.SeamOffset,
		Spacing:        c.HoleSpacing,
		CornerMargin:   c.CornerMargin,
		StarRootOffset: c.StarRootOffset,
		CornerWeighted: c.CornerWeighted,
		CornerDistance: c.CornerDistance,
		Samples:        stitch.DefaultSamples,
	}
}

// Bounds is the padded view box of a panel.
type Bounds struct {
	ViewMinX float64 `json:"view_min_x"`
	ViewMinY float64 `json:"view_min_y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
}

// Content returns the size of the panel without the margin.
func (b Bounds) Content() (w, h float64) {
	return b.Width - 2*Margin, b.Height - 2*Margin
}

// Panel is the computed geometry of one panel.
type Panel struct {
	Config  Config
	Loop    geom.Loop
	Outline outline.Path
	// Holes lists every hole center; HolesByEdge groups them per loop edge.
	Holes       []geom.Point
	HolesByEdge [][]geom.Point
	Bounds      Bounds
	// StitchedSideLength is the hole-to-hole length along the first edge
	// with at least two holes.
	StitchedSideLength float64
}

// Compute builds the panel described by cfg. A nil shape yields an empty
// panel whose bounds are just the margin.
func Compute(cfg Config) Panel {
	p := Panel{Config: cfg}
	if cfg.Shape != nil {
		p.Loop = cfg.Shape.Loop()
	}
	r := cfg.Radius()

	p.Outline = outline.Outline(p.Loop, r)
	p.HolesByEdge = stitch.ByEdge(p.Loop, r, cfg.StitchOptions())
	p.Holes = stitch.Flatten(p.HolesByEdge)
	p.Bounds = computeBounds(p.Loop, r, p.Holes)
	p.StitchedSideLength = stitchedLength(p.HolesByEdge)
	return p
}

// HoleCount returns the number of holes on the panel.
func (p Panel) HoleCount() int { return len(p.Holes) }

func computeBounds(loop geom.Loop, r float64, holes []geom.Point) Bounds {
	pts := make([]geom.Point, 0, loop.Len()*(BoundsSamples+1)+len(holes))
	for i := range loop.Len() {
		a, b := loop.Edge(i)
		for _, s := range outline.SampleEdge(a, b, r, BoundsSamples) {
			pts = append(pts, s.P)
		}
	}
	pts = append(pts, holes...)

	box := geom.Bounds(pts)
	return Bounds{
		ViewMinX: box.Min.X - Margin,
		ViewMinY: box.Min.Y - Margin,
		Width:    box.Width() + 2*Margin,
		Height:   box.Height() + 2*Margin,
	}
}

func stitchedLength(groups [][]geom.Point) float64 {
	for _, g := range groups {
		if len(g) < 2 {
			continue
		}
		var l float64
		for i := 1; i < len(g); i++ {
			l += geom.Distance(g[i-1], g[i])
		}
		return l
	}
	return 0
}

// CurveScale returns the reference radius that curve factors are measured
// against: the circumradius for regular polygons and the mean vertex
// distance otherwise.
func CurveScale(s geom.Shape) float64 {
	if r, ok := s.(geom.Regular); ok {
		return r.Circumradius()
	}
	pts := s.Loop().Points()
	if len(pts) == 0 {
		return 0
	}
	var sum float64
	for _, p := range pts {
		sum += p.Magnitude()
	}
	return sum / float64(len(pts))
}

// RadiusForFactor converts a curve factor (bulge depth as a fraction of the
// shape's CurveScale) into an edge radius, using the longest edge as the
// reference chord.
func RadiusForFactor(s geom.Shape, factor float64) float64 {
	loop := s.Loop()
	var chord float64
	for i := range loop.Len() {
		a, b := loop.Edge(i)
		chord = math.Max(chord, geom.Distance(a, b))
	}
	return outline.RadiusForDepth(chord, CurveScale(s)*factor)
}
