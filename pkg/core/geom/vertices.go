package geom

import "math"

// RegularPolygon returns n points evenly spaced on a circle of the given
// radius, starting at -90° (the top of the screen) with a step of 2π/n.
func RegularPolygon(n int, radius float64) []Point {
	pts := make([]Point, n)
	step := 2 * math.Pi / float64(n)
	for i := range n {
		a := -math.Pi/2 + float64(i)*step
		pts[i] = Point{X: radius * math.Cos(a), Y: radius * math.Sin(a)}
	}
	return pts
}

// StarInnerRadius returns the root radius of a five-pointed star for the
// given root angle setting in degrees. The resulting tip angle is
// 180° - rootAngle.
func StarInnerRadius(outerRadius, rootAngle float64) float64 {
	halfTip := (180 - rootAngle) / 2 * math.Pi / 180
	t := math.Tan(halfTip)
	sin36, cos36 := math.Sincos(36 * math.Pi / 180)
	return outerRadius * t / (sin36 + t*cos36)
}

// StarVertices returns the 10 vertices of a five-pointed star: tips at even
// indices on outerRadius, roots at odd indices on the derived inner radius.
// rootAngle must lie in (100, 150); values outside produce a degenerate star.
func StarVertices(outerRadius, rootAngle float64) []Point {
	inner := StarInnerRadius(outerRadius, rootAngle)
	pts := make([]Point, 0, 10)
	step := 2 * math.Pi / 5
	for i := range 5 {
		a := -math.Pi/2 + float64(i)*step
		pts = append(pts,
			Point{X: outerRadius * math.Cos(a), Y: outerRadius * math.Sin(a)},
			Point{X: inner * math.Cos(a+math.Pi/5), Y: inner * math.Sin(a+math.Pi/5)},
		)
	}
	return pts
}

// TruncatedHexagonVertices walks six directions (0°, 60°, ... 300°) with
// alternating long and short side lengths, then re-centers the result.
func TruncatedHexagonVertices(long, short float64) []Point {
	lens := [6]float64{long, short, long, short, long, short}
	pts := make([]Point, 0, 6)
	var p Point
	pts = append(pts, p)
	for i := range 5 {
		a := float64(i) * math.Pi / 3
		p = Point{X: p.X + lens[i]*math.Cos(a), Y: p.Y + lens[i]*math.Sin(a)}
		pts = append(pts, p)
	}
	return Center(pts)
}

// RotateAll rotates every point about the origin by theta radians.
func RotateAll(pts []Point, theta float64) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = Rotate(p, theta)
	}
	return out
}

// presentationRotation returns the rotation that puts a flat edge at the
// bottom of an n-gon generated by RegularPolygon.
func presentationRotation(n int) float64 {
	switch n {
	case 4:
		return math.Pi / 4
	case 6:
		return math.Pi / 2
	}
	return 0
}

// Upright applies the presentation rotation for an n-gon loop. Loops other
// than squares and hexagons are returned unchanged.
func Upright(pts []Point) []Point {
	theta := presentationRotation(len(pts))
	if theta == 0 {
		return pts
	}
	return RotateAll(pts, theta)
}
