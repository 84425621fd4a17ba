package geom

import (
	"math"

	"github.com/jbeda/geom"
)

// Point is a position or direction in millimetres.
type Point = geom.Coord

// Rect is an axis-aligned bounding box.
type Rect = geom.Rect

// Pt is shorthand for constructing a Point.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// OutwardNormal returns the right-hand unit normal of the directed edge a→b.
// For the clockwise (on screen) loops produced by this package it points away
// from the interior. A zero-length edge yields an unnormalized zero vector.
func OutwardNormal(a, b Point) Point {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	if l == 0 {
		l = 1
	}
	return Point{X: dy / l, Y: -dx / l}
}

// Lerp interpolates linearly between a and b.
func Lerp(a, b Point, t float64) Point {
	return Point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}

// Dot returns the dot product of a and b.
func Dot(a, b Point) float64 { return a.X*b.X + a.Y*b.Y }

// Normalize scales p to unit length. Zero vectors are returned unchanged.
func Normalize(p Point) Point {
	l := p.Magnitude()
	if l == 0 {
		return p
	}
	return p.Times(1 / l)
}

// Rotate rotates p about the origin by theta radians.
func Rotate(p Point, theta float64) Point {
	s, c := math.Sincos(theta)
	return Point{X: p.X*c - p.Y*s, Y: p.X*s + p.Y*c}
}

// Centroid returns the vertex average of pts (not the area centroid).
func Centroid(pts []Point) Point {
	if len(pts) == 0 {
		return Point{}
	}
	var c Point
	for _, p := range pts {
		c = c.Plus(p)
	}
	return c.Times(1 / float64(len(pts)))
}

// Center translates pts so that their vertex centroid sits at the origin.
func Center(pts []Point) []Point {
	c := Centroid(pts)
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = p.Minus(c)
	}
	return out
}

// ShoelaceArea returns the unsigned area of the simple polygon pts.
func ShoelaceArea(pts []Point) float64 {
	n := len(pts)
	if n < 3 {
		return 0
	}
	var sum float64
	for i := range n {
		a, b := pts[i], pts[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return math.Abs(sum) / 2
}

// Bounds returns the smallest Rect containing pts. The zero Rect is returned
// for an empty slice.
func Bounds(pts []Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	r := Rect{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		r.ExpandToContainCoord(p)
	}
	return r
}
