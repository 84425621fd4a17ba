// Package outline turns a vertex loop into the cut outline of a panel.
//
// Every edge of a curved panel is the minor circular arc that the SVG command
// "A r r 0 0 1 x y" draws between its endpoints. [NewArc] derives the center
// the same way an SVG renderer does, so the geometry used for stitch holes
// always matches what ends up on the cutting table. When the radius is too
// small for an edge the edge silently degrades to a straight line.
//
// [SampleEdge] walks an edge at a fixed number of parameter steps and
// returns points with tangents and inward normals; [Cumulative] turns those
// samples into an arc-length table.
package outline
