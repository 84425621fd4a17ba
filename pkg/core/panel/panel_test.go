package panel

import (
	"math"
	"testing"

	"github.com/footbagworks/panelcut/pkg/core/geom"
	"github.com/footbagworks/panelcut/pkg/core/outline"
)

func near(a, b, eps float64) bool { return math.Abs(a-b) <= eps }

func squareConfig() Config {
	return Config{
		Shape:        geom.Regular{Sides: 4, SideLength: 30},
		SeamOffset:   5,
		Holes:        5,
		CornerMargin: 2,
		HoleSpacing:  3,
	}
}

func TestComputeBoundsStraight(t *testing.T) {
	cfg := squareConfig()
	cfg.Holes = 0
	p := Compute(cfg)

	want := Bounds{ViewMinX: -25, ViewMinY: -25, Width: 50, Height: 50}
	got := p.Bounds
	if !near(got.ViewMinX, want.ViewMinX, 1e-9) || !near(got.ViewMinY, want.ViewMinY, 1e-9) ||
		!near(got.Width, want.Width, 1e-9) || !near(got.Height, want.Height, 1e-9) {
		t.Errorf("Bounds = %+v, want %+v", got, want)
	}

	w, h := got.Content()
	if !near(w, 30, 1e-9) || !near(h, 30, 1e-9) {
		t.Errorf("Content() = %v, %v, want 30, 30", w, h)
	}
}

func TestComputeHoles(t *testing.T) {
	p := Compute(squareConfig())
	if p.HoleCount() != 20 {
		t.Fatalf("HoleCount() = %d, want 20", p.HoleCount())
	}
	if len(p.HolesByEdge) != 4 {
		t.Fatalf("len(HolesByEdge) = %d, want 4", len(p.HolesByEdge))
	}
	if !near(p.StitchedSideLength, 12, 1e-6) {
		t.Errorf("StitchedSideLength = %v, want 12", p.StitchedSideLength)
	}

	for i, h := range p.Holes {
		if h.X < p.Bounds.ViewMinX || h.X > p.Bounds.ViewMinX+p.Bounds.Width ||
			h.Y < p.Bounds.ViewMinY || h.Y > p.Bounds.ViewMinY+p.Bounds.Height {
			t.Errorf("hole %d at %v lies outside bounds %+v", i, h, p.Bounds)
		}
	}
}

func TestComputeStitchedLengthSkipsEmptyEdges(t *testing.T) {
	p := Compute(Config{
		Shape:        geom.TruncatedHexagon{Long: 30, Short: 15},
		SeamOffset:   5,
		Holes:        4,
		CornerMargin: 2,
		HoleSpacing:  3,
	})
	if !near(p.StitchedSideLength, 9, 1e-6) {
		t.Errorf("StitchedSideLength = %v, want 9", p.StitchedSideLength)
	}
}

func TestComputeSingleHoleHasNoStitchedLength(t *testing.T) {
	cfg := squareConfig()
	cfg.Holes = 1
	if got := Compute(cfg).StitchedSideLength; got != 0 {
		t.Errorf("StitchedSideLength = %v, want 0", got)
	}
}

func TestComputeCurvedGrowsBounds(t *testing.T) {
	cfg := Config{Shape: geom.Regular{Sides: 5, SideLength: 30}, SeamOffset: 5, Holes: 6, CornerMargin: 2, HoleSpacing: 3}
	straight := Compute(cfg)

	cfg.Curved = true
	cfg.CurveRadius = 40
	curved := Compute(cfg)

	if curved.Bounds.Width <= straight.Bounds.Width || curved.Bounds.Height <= straight.Bounds.Height {
		t.Errorf("curved bounds %+v not larger than straight %+v", curved.Bounds, straight.Bounds)
	}
}

func TestComputeCurvedOffIgnoresRadius(t *testing.T) {
	cfg := squareConfig()
	cfg.CurveRadius = 40
	if got := cfg.Radius(); got != 0 {
		t.Errorf("Radius() = %v, want 0 when Curved is false", got)
	}
	a := Compute(cfg).Outline.String()
	cfg.CurveRadius = 0
	if b := Compute(cfg).Outline.String(); a != b {
		t.Errorf("outline changed with curvature off: %q vs %q", a, b)
	}
}

func TestComputeIdempotent(t *testing.T) {
	cfg := Config{
		Shape:          geom.Star{OuterRadius: 40, RootAngle: 128},
		SeamOffset:     3,
		Holes:          6,
		Curved:         true,
		CurveRadius:    80,
		CornerMargin:   2,
		HoleSpacing:    2,
		CornerWeighted: true,
		CornerDistance: 3,
		StarRootOffset: -1.5,
	}
	a, b := Compute(cfg), Compute(cfg)
	if a.Outline.String() != b.Outline.String() {
		t.Error("outline differs between identical computations")
	}
	if a.Bounds != b.Bounds {
		t.Errorf("bounds differ: %+v vs %+v", a.Bounds, b.Bounds)
	}
	if len(a.Holes) != len(b.Holes) {
		t.Fatalf("hole counts differ: %d vs %d", len(a.Holes), len(b.Holes))
	}
	for i := range a.Holes {
		if a.Holes[i] != b.Holes[i] {
			t.Fatalf("hole %d differs", i)
		}
	}
}

func TestComputeNilShape(t *testing.T) {
	p := Compute(Config{Holes: 5})
	if p.HoleCount() != 0 {
		t.Errorf("HoleCount() = %d, want 0", p.HoleCount())
	}
	if p.Bounds.Width != 2*Margin || p.Bounds.Height != 2*Margin {
		t.Errorf("Bounds = %+v, want margin only", p.Bounds)
	}
	if p.Outline.String() != "" {
		t.Errorf("Outline = %q, want empty", p.Outline.String())
	}
}

func TestRadiusForFactor(t *testing.T) {
	s := geom.Regular{Sides: 5, SideLength: 30}
	r := RadiusForFactor(s, 0.3)
	a, b := s.Loop().Edge(0)
	arc, ok := outline.NewArc(a, b, r)
	if !ok {
		t.Fatalf("radius %v invalid for a 30 mm chord", r)
	}
	if want := s.Circumradius() * 0.3; !near(arc.Sagitta(), want, 1e-9) {
		t.Errorf("Sagitta() = %v, want %v", arc.Sagitta(), want)
	}
	if got := RadiusForFactor(s, 0); got != 0 {
		t.Errorf("RadiusForFactor(0) = %v, want 0", got)
	}
}

func TestCurveScale(t *testing.T) {
	h := geom.TruncatedHexagon{Long: 30, Short: 15}
	var sum float64
	pts := h.Loop().Points()
	for _, p := range pts {
		sum += p.Magnitude()
	}
	if got, want := CurveScale(h), sum/6; !near(got, want, 1e-12) {
		t.Errorf("CurveScale() = %v, want %v", got, want)
	}
}
