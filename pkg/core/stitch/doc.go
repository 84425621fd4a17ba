// Package stitch places stitch holes along the edges of a panel.
//
// Holes sit on a seam-allowance curve inside the cut line: for curved edges
// a concentric arc whose radius is reduced by the seam offset, for straight
// edges (and arcs whose inset would collapse) the sampled edge pushed along
// its inward normal.
//
// Placement happens in two steps. [Positions] works in one dimension and
// turns an edge length, two end margins and the [Options] into arc-length
// targets. [ByEdge] maps those targets onto the plane for every edge of a
// loop, keeping one slot per edge so hole groups stay aligned with the edges
// they belong to:
//
//	groups := stitch.ByEdge(loop, 60, stitch.Options{
//	    Holes:        8,
//	    SeamOffset:   5,
//	    Spacing:      3,
//	    CornerMargin: 2,
//	})
//	holes := stitch.Flatten(groups)
//
// # Margins
//
// Corner ends are kept clear by the corner margin. Star tips get twice that,
// while star roots get a negative margin (corner margin times the root
// offset) so the holes of adjacent edges run past the root and close the
// seam in the reentrant corner.
//
// # Corner weighting
//
// With [Options.CornerWeighted] set, the first and last hole on an edge sit
// [Options.CornerDistance] from their neighbours at corners and tips; the
// interior holes keep the regular spacing. Layouts that do not fit fall back
// to uniform spacing.
package stitch
