// Package geom provides the 2-D primitives and vertex generators that every
// panel is built from.
//
// # Coordinates
//
// All coordinates are millimetres in a shape-local frame. The y axis points
// down, matching SVG, so angles that increase run clockwise on screen. Every
// generator returns a loop centered on (or very near) the origin; the outline
// and stitch packages rely on that to decide which side of an edge is the
// interior.
//
// # Shapes
//
// A [Shape] is one of three concrete kinds:
//
//   - [Regular]: an N-gon with a given side length
//   - [TruncatedHexagon]: a hexagon with alternating long and short sides
//   - [Star]: a five-pointed star whose tips and roots alternate
//
// [Shape.Loop] turns any of them into a [Loop], a cyclic vertex sequence where
// each vertex carries a [VertexKind] tag and each edge an inclusion flag for
// stitching:
//
//	loop := geom.Regular{Sides: 5, SideLength: 30}.Loop()
//	for i := range loop.Len() {
//	    a, b := loop.Edge(i)
//	    ...
//	}
package geom
