package geom

import (
	"fmt"
	"math"
)

// Kind identifies a shape family.
type Kind int

const (
	KindRegular Kind = iota
	KindTruncatedHexagon
	KindStar
)

func (k Kind) String() string {
	switch k {
	case KindRegular:
		return "regular"
	case KindTruncatedHexagon:
		return "truncated-hexagon"
	case KindStar:
		return "star"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// VertexKind tags a vertex with its role in the stitch layout.
type VertexKind int

const (
	// Corner is an ordinary convex polygon corner.
	Corner VertexKind = iota
	// Tip is an outer point of a star.
	Tip
	// Root is a reentrant inner point of a star.
	Root
)

func (k VertexKind) String() string {
	switch k {
	case Corner:
		return "corner"
	case Tip:
		return "tip"
	case Root:
		return "root"
	}
	return fmt.Sprintf("VertexKind(%d)", int(k))
}

// Vertex is a loop position tagged with its kind.
type Vertex struct {
	P    Point
	Kind VertexKind
}

// Loop is a cyclic vertex sequence. Edge i runs from vertex i to vertex
// (i+1) mod n.
type Loop struct {
	Vertices []Vertex

	// skip marks edges that receive no stitch holes. nil means every edge
	// is stitched.
	skip []bool
}

// NewLoop tags every point as a Corner.
func NewLoop(pts []Point) Loop {
	vs := make([]Vertex, len(pts))
	for i, p := range pts {
		vs[i] = Vertex{P: p, Kind: Corner}
	}
	return Loop{Vertices: vs}
}

// Len returns the number of vertices (and edges).
func (l Loop) Len() int { return len(l.Vertices) }

// Edge returns the endpoints of edge i.
func (l Loop) Edge(i int) (Point, Point) {
	n := len(l.Vertices)
	return l.Vertices[i%n].P, l.Vertices[(i+1)%n].P
}

// EdgeKinds returns the vertex kinds at both ends of edge i.
func (l Loop) EdgeKinds(i int) (VertexKind, VertexKind) {
	n := len(l.Vertices)
	return l.Vertices[i%n].Kind, l.Vertices[(i+1)%n].Kind
}

// Stitched reports whether edge i receives stitch holes.
func (l Loop) Stitched(i int) bool {
	if l.skip == nil {
		return true
	}
	return !l.skip[i%len(l.skip)]
}

// Points returns the bare vertex positions.
func (l Loop) Points() []Point {
	pts := make([]Point, len(l.Vertices))
	for i, v := range l.Vertices {
		pts[i] = v.P
	}
	return pts
}

// HasRoots reports whether any vertex is a star root.
func (l Loop) HasRoots() bool {
	for _, v := range l.Vertices {
		if v.Kind == Root {
			return true
		}
	}
	return false
}

// Shape is a panel shape family. The concrete kinds are Regular,
// TruncatedHexagon and Star.
type Shape interface {
	// Kind returns the shape family.
	Kind() Kind
	// Loop generates the vertex loop, centered on the origin.
	Loop() Loop
	// Area returns the area enclosed by the straight-edged loop.
	Area() float64
}

// Regular is a regular N-gon described by its side length.
type Regular struct {
	Sides      int
	SideLength float64
}

func (r Regular) Kind() Kind { return KindRegular }

// Circumradius returns the distance from the center to each vertex.
func (r Regular) Circumradius() float64 {
	return r.SideLength / (2 * math.Sin(math.Pi/float64(r.Sides)))
}

// Loop returns the N-gon with squares and hexagons resting on a flat edge.
func (r Regular) Loop() Loop {
	return NewLoop(Upright(RegularPolygon(r.Sides, r.Circumradius())))
}

// Area uses the closed form n·s²/(4·tan(π/n)).
func (r Regular) Area() float64 {
	n := float64(r.Sides)
	return n * r.SideLength * r.SideLength / (4 * math.Tan(math.Pi/n))
}

// TruncatedHexagon alternates long and short sides. Only the long sides
// (even edge indices) are stitched.
type TruncatedHexagon struct {
	Long, Short float64
}

func (h TruncatedHexagon) Kind() Kind { return KindTruncatedHexagon }

func (h TruncatedHexagon) Loop() Loop {
	l := NewLoop(TruncatedHexagonVertices(h.Long, h.Short))
	l.skip = make([]bool, l.Len())
	for i := range l.skip {
		l.skip[i] = i%2 == 1
	}
	return l
}

func (h TruncatedHexagon) Area() float64 {
	return ShoelaceArea(TruncatedHexagonVertices(h.Long, h.Short))
}

// Star is a five-pointed star. RootAngle (degrees) controls how deep the
// roots sit; each tip opens to 180° - RootAngle.
type Star struct {
	OuterRadius float64
	RootAngle   float64
}

func (s Star) Kind() Kind { return KindStar }

// InnerRadius returns the distance from the center to each root.
func (s Star) InnerRadius() float64 { return StarInnerRadius(s.OuterRadius, s.RootAngle) }

func (s Star) Loop() Loop {
	pts := StarVertices(s.OuterRadius, s.RootAngle)
	vs := make([]Vertex, len(pts))
	for i, p := range pts {
		k := Tip
		if i%2 == 1 {
			k = Root
		}
		vs[i] = Vertex{P: p, Kind: k}
	}
	return Loop{Vertices: vs}
}

func (s Star) Area() float64 {
	return ShoelaceArea(StarVertices(s.OuterRadius, s.RootAngle))
}

// Compile-time interface checks.
var (
	_ Shape = Regular{}
	_ Shape = TruncatedHexagon{}
	_ Shape = Star{}
)
