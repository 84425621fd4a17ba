// Package settings reads, writes and resolves versioned panel settings
// snapshots.
//
// A [Snapshot] mirrors every user-facing control: the shape, its curvature,
// stitch layout and the sheet layout. Snapshots are stored as JSON or TOML
// and carry a version number. Version 1 files, which lack the star, corner
// stitch and layout sections, load with defaults for the missing fields.
//
// Snapshots are clamped to the valid control ranges before they reach the
// geometry packages:
//
//	snap, err := settings.Load("footbag.toml")
//	res, err := snap.Resolve()
//	p := panel.Compute(res.Panel)
package settings

import (
	"math"

	"github.com/footbagworks/panelcut/pkg/core/geom"
	"github.com/footbagworks/panelcut/pkg/core/panel"
	"github.com/footbagworks/panelcut/pkg/core/sheet"
	"github.com/footbagworks/panelcut/pkg/core/stitch"
	"github.com/footbagworks/panelcut/pkg/errors"
)

const (
	// SchemaRef is written into every snapshot for editor tooling.
	SchemaRef = "./schema/settings.schema.json"
	// Version is the snapshot version this release writes.
	Version = 2
	// StarSides is the shape value that selects the five-pointed star.
	StarSides = 10
)

// Hex types.
const (
	HexRegular   = "regular"
	HexTruncated = "truncated"
)

// Hex holds the hexagon-specific controls.
type Hex struct {
	Type  string  `json:"type" toml:"type"`
	Long  float64 `json:"long" toml:"long"`
	Ratio float64 `json:"ratio" toml:"ratio"`
}

// Star holds the star-specific controls.
type Star struct {
	OuterRadius float64 `json:"outerRadius" toml:"outerRadius"`
	RootAngle   float64 `json:"rootAngle" toml:"rootAngle"`
	RootOffset  float64 `json:"rootOffset" toml:"rootOffset"`
}

// CornerStitch holds the corner-weighted spacing controls.
type CornerStitch struct {
	Enabled  bool    `json:"enabled" toml:"enabled"`
	Distance float64 `json:"distance" toml:"distance"`
}

// Layout holds the sheet tiling controls.
type Layout struct {
	Rows          int     `json:"rows" toml:"rows"`
	Cols          int     `json:"cols" toml:"cols"`
	HSpace        float64 `json:"hSpace" toml:"hSpace"`
	VSpace        float64 `json:"vSpace" toml:"vSpace"`
	InvertOdd     bool    `json:"invertOdd" toml:"invertOdd"`
	NestingOffset float64 `json:"nestingOffset" toml:"nestingOffset"`
}

// Snapshot is the persisted settings record.
type Snapshot struct {
	Schema  string `json:"$schema,omitempty" toml:"schema,omitempty"`
	Version int    `json:"version" toml:"version"`

	Shape       int     `json:"shape" toml:"shape"`
	Curved      bool    `json:"curved" toml:"curved"`
	CurveFactor float64 `json:"curveFactor" toml:"curveFactor"`
	// CurveRadius overrides CurveFactor when positive.
	CurveRadius  float64 `json:"curveRadius" toml:"curveRadius"`
	Side         float64 `json:"side" toml:"side"`
	Seam         float64 `json:"seam" toml:"seam"`
	Stitches     int     `json:"stitches" toml:"stitches"`
	ShowGrid     bool    `json:"showGrid" toml:"showGrid"`
	CornerMargin float64 `json:"cornerMargin" toml:"cornerMargin"`
	HoleSpacing  float64 `json:"holeSpacing" toml:"holeSpacing"`
	DotSize      float64 `json:"dotSize" toml:"dotSize"`

	Hex          Hex          `json:"hex" toml:"hex"`
	Star         Star         `json:"star" toml:"star"`
	CornerStitch CornerStitch `json:"cornerStitch" toml:"cornerStitch"`
	Layout       Layout       `json:"layout" toml:"layout"`
}

// Default returns the settings a fresh install starts with.
func Default() Snapshot {
	return Snapshot{
		Schema:       SchemaRef,
		Version:      Version,
		Shape:        5,
		CurveFactor:  0.3,
		Side:         30,
		Seam:         5,
		Stitches:     10,
		CornerMargin: 2,
		HoleSpacing:  3,
		DotSize:      1,
		Hex:          Hex{Type: HexRegular, Long: 30, Ratio: 0.5},
		Star:         Star{OuterRadius: 40, RootAngle: 128, RootOffset: stitch.DefaultStarRootOffset},
		CornerStitch: CornerStitch{Distance: stitch.DefaultCornerDistance},
		Layout:       Layout{Rows: 3, Cols: 3},
	}
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(v, hi))
}

func clampInt(v, lo, hi int) int { return max(lo, min(v, hi)) }

// Clamp returns a copy with every control forced into its valid range.
// Corner margin and hole spacing only get their static bounds here; Resolve
// applies the shape-dependent limits.
func (s Snapshot) Clamp() Snapshot {
	s.Shape = clampInt(s.Shape, 3, StarSides)
	s.Side = clamp(s.Side, 10, 80)
	s.Seam = clamp(s.Seam, 2, 9)
	s.Stitches = clampInt(s.Stitches, 0, 20)
	s.CurveFactor = clamp(s.CurveFactor, 0.1, 0.4)
	s.CurveRadius = math.Max(0, s.CurveRadius)
	s.CornerMargin = math.Max(0, s.CornerMargin)
	s.HoleSpacing = math.Max(1, s.HoleSpacing)
	s.DotSize = clamp(s.DotSize, 0.2, 1.5)

	if s.Hex.Type != HexTruncated {
		s.Hex.Type = HexRegular
	}
	s.Hex.Long = clamp(s.Hex.Long, 10, 80)
	s.Hex.Ratio = clamp(s.Hex.Ratio, 0.1, 0.9)

	s.Star.OuterRadius = clamp(s.Star.OuterRadius, 10, 80)
	s.Star.RootAngle = clamp(s.Star.RootAngle, 100, 150)
	s.Star.RootOffset = clamp(s.Star.RootOffset, -3, 1)

	s.CornerStitch.Distance = clamp(s.CornerStitch.Distance, 0.5, 10)

	s.Layout.Rows = clampInt(s.Layout.Rows, 1, 50)
	s.Layout.Cols = clampInt(s.Layout.Cols, 1, 50)
	s.Layout.HSpace = math.Max(0, s.Layout.HSpace)
	s.Layout.VSpace = math.Max(0, s.Layout.VSpace)
	s.Layout.NestingOffset = clamp(s.Layout.NestingOffset, -50, 50)
	return s
}

// Truncated reports whether the snapshot selects a truncated hexagon.
func (s Snapshot) Truncated() bool {
	return s.Shape == 6 && s.Hex.Type == HexTruncated
}

// ShapeSpec returns the geometric shape the snapshot describes.
func (s Snapshot) ShapeSpec() (geom.Shape, error) {
	switch {
	case s.Shape == StarSides:
		return geom.Star{OuterRadius: s.Star.OuterRadius, RootAngle: s.Star.RootAngle}, nil
	case s.Truncated():
		return geom.TruncatedHexagon{Long: s.Hex.Long, Short: s.Hex.Long * s.Hex.Ratio}, nil
	case s.Shape >= 3 && s.Shape < StarSides:
		return geom.Regular{Sides: s.Shape, SideLength: s.Side}, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidShape, "unsupported shape: %d sides", s.Shape)
}

// CornerMarginMax returns the largest corner margin the shape allows.
func (s Snapshot) CornerMarginMax() float64 {
	switch {
	case s.Shape == StarSides:
		return s.Star.OuterRadius / 4
	case s.Truncated():
		return s.Hex.Long / 4
	}
	return s.Side / 4
}

// Resolved is a snapshot turned into computation inputs.
type Resolved struct {
	Panel    panel.Config
	Layout   sheet.Layout
	DotSize  float64
	ShowGrid bool
	// MaxHoleSpacing is the spacing ceiling the hole spacing was held to.
	MaxHoleSpacing float64
}

// Resolve clamps the snapshot and converts it into a panel configuration and
// a sheet layout.
func (s Snapshot) Resolve() (Resolved, error) {
	s = s.Clamp()
	shape, err := s.ShapeSpec()
	if err != nil {
		return Resolved{}, err
	}

	cfg := panel.Config{
		Shape:          shape,
		SeamOffset:     s.Seam,
		Holes:          s.Stitches,
		Curved:         s.Curved,
		CornerMargin:   clamp(s.CornerMargin, 0, math.Max(0, s.CornerMarginMax())),
		CornerWeighted: s.CornerStitch.Enabled,
		CornerDistance: s.CornerStitch.Distance,
		StarRootOffset: s.Star.RootOffset,
	}
	if s.Curved {
		cfg.CurveRadius = s.CurveRadius
		if cfg.CurveRadius == 0 {
			cfg.CurveRadius = panel.RadiusForFactor(shape, s.CurveFactor)
		}
	}

	maxSpacing := stitch.MaxSpacing(shape.Loop(), cfg.Radius(), cfg.StitchOptions())
	cfg.HoleSpacing = clamp(s.HoleSpacing, 1, math.Max(1, maxSpacing))

	return Resolved{
		Panel: cfg,
		Layout: sheet.Layout{
			Rows:          s.Layout.Rows,
			Cols:          s.Layout.Cols,
			HSpace:        s.Layout.HSpace,
			VSpace:        s.Layout.VSpace,
			InvertOdd:     s.Layout.InvertOdd,
			NestingOffset: s.Layout.NestingOffset,
		},
		DotSize:        s.DotSize,
		ShowGrid:       s.ShowGrid,
		MaxHoleSpacing: maxSpacing,
	}, nil
}
