package outline

import (
	"math"
	"testing"

	"github.com/footbagworks/panelcut/pkg/core/geom"
)

func near(a, b, eps float64) bool { return math.Abs(a-b) <= eps }

func TestValidRadius(t *testing.T) {
	tests := []struct {
		name  string
		r, d  float64
		valid bool
	}{
		{"comfortable", 60, 30, true},
		{"semicircle", 15, 30, true},
		{"too small", 1, 10, false},
		{"zero radius", 0, 10, false},
		{"negative", -5, 10, false},
		{"zero chord", 10, 0, false},
		{"nan", math.NaN(), 10, false},
		{"inf", math.Inf(1), 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidRadius(tt.r, tt.d); got != tt.valid {
				t.Errorf("ValidRadius(%v, %v) = %v, want %v", tt.r, tt.d, got, tt.valid)
			}
		})
	}
}

func TestNewArcEndpoints(t *testing.T) {
	a, b := geom.Pt(-15, 20), geom.Pt(15, 20)
	arc, ok := NewArc(a, b, 40)
	if !ok {
		t.Fatal("NewArc() invalid, want valid")
	}
	for _, tc := range []struct {
		t    float64
		want geom.Point
	}{{0, a}, {1, b}} {
		got := arc.At(tc.t)
		if geom.Distance(got, tc.want) > 1e-9 {
			t.Errorf("At(%v) = %v, want %v", tc.t, got, tc.want)
		}
	}
	if arc.Sweep <= 0 || arc.Sweep > math.Pi {
		t.Errorf("Sweep = %v, want within (0, π]", arc.Sweep)
	}
}

func TestArcBulgesOutward(t *testing.T) {
	loop := geom.Regular{Sides: 5, SideLength: 30}.Loop()
	for i := range loop.Len() {
		a, b := loop.Edge(i)
		arc, ok := NewArc(a, b, 45)
		if !ok {
			t.Fatalf("edge %d: NewArc() invalid", i)
		}
		mid := arc.At(0.5)
		chordMid := geom.Midpoint(a, b)
		if mid.Magnitude() <= chordMid.Magnitude() {
			t.Errorf("edge %d: arc midpoint %v is not outside chord midpoint %v", i, mid, chordMid)
		}
		if got := geom.Distance(mid, chordMid); !near(got, arc.Sagitta(), 1e-9) {
			t.Errorf("edge %d: bulge = %v, want sagitta %v", i, got, arc.Sagitta())
		}
	}
}

func TestInset(t *testing.T) {
	arc, _ := NewArc(geom.Pt(0, 0), geom.Pt(30, 0), 40)

	same, ok := arc.Inset(0)
	if !ok || same != arc {
		t.Errorf("Inset(0) = %+v, %v; want the base arc", same, ok)
	}

	in, ok := arc.Inset(5)
	if !ok {
		t.Fatal("Inset(5) invalid, want valid")
	}
	if in.Center != arc.Center || in.Radius != 35 {
		t.Errorf("Inset(5) = center %v radius %v, want center %v radius 35", in.Center, in.Radius, arc.Center)
	}
	if !near(in.Length(), 35*arc.Sweep, 1e-12) {
		t.Errorf("Length() = %v, want %v", in.Length(), 35*arc.Sweep)
	}

	if _, ok := arc.Inset(26); ok {
		t.Error("Inset(26) valid, want invalid (radius 14 < chord/2)")
	}
}

func TestOutlineFallback(t *testing.T) {
	loop := geom.NewLoop([]geom.Point{geom.Pt(0, -10), geom.Pt(10, 0), geom.Pt(0, 10)})

	tests := []struct {
		name string
		r    float64
		want string
	}{
		{
			name: "straight",
			r:    0,
			want: "M 0.000 -10.000 L 10.000 0.000 L 0.000 10.000 L 0.000 -10.000 Z",
		},
		{
			name: "radius too small",
			r:    1,
			want: "M 0.000 -10.000 L 10.000 0.000 L 0.000 10.000 L 0.000 -10.000 Z",
		},
		{
			name: "curved",
			r:    20,
			want: "M 0.000 -10.000 A 20.000 20.000 0 0 1 10.000 0.000 A 20.000 20.000 0 0 1 0.000 10.000 A 20.000 20.000 0 0 1 0.000 -10.000 Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Outline(loop, tt.r).String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFmtNegativeZero(t *testing.T) {
	if got := Fmt(-0.0001); got != "0.000" {
		t.Errorf("Fmt(-0.0001) = %q, want 0.000", got)
	}
	if got := Fmt(-1.23456); got != "-1.235" {
		t.Errorf("Fmt(-1.23456) = %q, want -1.235", got)
	}
}

func TestPolyline(t *testing.T) {
	loop := geom.Regular{Sides: 4, SideLength: 20}.Loop()
	if got := len(Outline(loop, 0).Polyline(8)); got != 4 {
		t.Errorf("straight Polyline() has %d points, want 4", got)
	}
	if got := len(Outline(loop, 30).Polyline(8)); got != 32 {
		t.Errorf("curved Polyline() has %d points, want 32", got)
	}
}

func TestSampleEdgeStraight(t *testing.T) {
	a, b := geom.Pt(-10, 5), geom.Pt(10, 5)
	s := SampleEdge(a, b, 0, 4)
	if len(s) != 5 {
		t.Fatalf("len = %d, want 5", len(s))
	}
	if s[2].P != geom.Pt(0, 5) {
		t.Errorf("middle sample = %v, want (0, 5)", s[2].P)
	}
	for i, e := range s {
		if !near(e.N.X, 0, 1e-12) || !near(e.N.Y, -1, 1e-12) {
			t.Errorf("sample %d: normal = %v, want (0, -1) toward origin", i, e.N)
		}
		if want := float64(i) / 4; e.T != want {
			t.Errorf("sample %d: T = %v, want %v", i, e.T, want)
		}
		if e.Tan != geom.Pt(1, 0) {
			t.Errorf("sample %d: tangent = %v, want (1, 0)", i, e.Tan)
		}
	}
}

func TestSampleEdgeArcNormals(t *testing.T) {
	a, b := geom.Pt(-15, 20), geom.Pt(15, 20)
	arc, _ := NewArc(a, b, 40)
	for i, e := range SampleEdge(a, b, 40, 10) {
		toCenter := geom.Normalize(arc.Center.Minus(e.P))
		if geom.Distance(toCenter, e.N) > 1e-9 {
			t.Errorf("sample %d: normal = %v, want %v", i, e.N, toCenter)
		}
		if !near(e.T, float64(i)/10, 1e-12) {
			t.Errorf("sample %d: T = %v, want %v", i, e.T, float64(i)/10)
		}
		if !near(geom.Dot(e.Tan, e.N), 0, 1e-9) {
			t.Errorf("sample %d: tangent %v not perpendicular to normal", i, e.Tan)
		}
	}
}

func TestCumulativeConverges(t *testing.T) {
	a, b := geom.Pt(-15, 20), geom.Pt(15, 20)
	arc, _ := NewArc(a, b, 20)
	exact := arc.Length()

	errAt := func(samples int) float64 {
		_, total := Cumulative(SampleEdge(a, b, 20, samples))
		return exact - total
	}

	e1, e2 := errAt(40), errAt(80)
	if e1 <= 0 || e2 <= 0 {
		t.Fatalf("polyline length should underestimate the arc: %v, %v", e1, e2)
	}
	if ratio := e1 / e2; ratio < 3.5 || ratio > 4.5 {
		t.Errorf("error ratio = %v, want about 4 (quadratic convergence)", ratio)
	}
}

func TestCumulativeEmpty(t *testing.T) {
	cum, total := Cumulative(nil)
	if len(cum) != 0 || total != 0 {
		t.Errorf("Cumulative(nil) = %v, %v", cum, total)
	}
}
