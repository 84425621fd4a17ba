package stitch

import (
	"math"

	"github.com/footbagworks/panelcut/pkg/core/geom"
)

// SpacingCeiling bounds the hole spacing on an edge to this multiple of the
// strict fit usable/(holes+1).
const SpacingCeiling = 2.5

// Default values for zero Options fields.
const (
	DefaultSamples        = 160
	DefaultStarRootOffset = -1.5
	DefaultCornerDistance = 3.0
	minSpacing            = 0.1
	marginSlack           = 0.1
)

// Options controls hole placement on every stitched edge.
type Options struct {
	Holes          int     // holes per edge
	SeamOffset     float64 // distance from cut line to hole centers, mm
	Spacing        float64 // preferred distance between holes, mm
	CornerMargin   float64 // clear distance at corners, mm
	StarRootOffset float64 // root margin multiplier; only the magnitude is used
	CornerWeighted bool
	CornerDistance float64 // gap next to weighted corners, mm
	Samples        int     // edge samples; 0 means DefaultSamples
}

func (o Options) samples() int {
	if o.Samples <= 0 {
		return DefaultSamples
	}
	return o.Samples
}

// EndMargin returns the clear distance kept at a vertex of the given kind on
// an edge of length l. Root margins are negative and unclamped.
func EndMargin(kind geom.VertexKind, l float64, o Options) float64 {
	switch kind {
	case geom.Root:
		return -o.CornerMargin * math.Abs(o.StarRootOffset)
	case geom.Tip:
		return clampMargin(2*o.CornerMargin, l)
	}
	return clampMargin(o.CornerMargin, l)
}

func clampMargin(m, l float64) float64 {
	hi := math.Max(0, l/2-marginSlack)
	return math.Max(0, math.Min(m, hi))
}

// Margins returns the start and end margins of edge i of loop, given the
// edge's effective length l.
func Margins(loop geom.Loop, i int, l float64, o Options) (start, end float64) {
	ks, ke := loop.EdgeKinds(i)
	return EndMargin(ks, l, o), EndMargin(ke, l, o)
}

// EdgeSpacing returns the spacing actually used for n holes on a usable
// length: the preferred spacing, at least 0.1 mm, capped by SpacingCeiling.
func EdgeSpacing(usable float64, n int, preferred float64) float64 {
	return math.Min(math.Max(minSpacing, preferred), ceiling(usable, n))
}

func ceiling(usable float64, n int) float64 {
	return usable / float64(max(1, n)+1) * SpacingCeiling
}

// Positions returns hole targets as distances from the edge start for an edge
// of length l with the given end margins. weightStart and weightEnd select
// which ends get the corner distance when corner weighting is on. It returns
// nil when nothing fits.
func Positions(l, startMargin, endMargin float64, o Options, weightStart, weightEnd bool) []float64 {
	n := o.Holes
	usable := math.Max(0, l-startMargin-endMargin)
	if n <= 0 || usable <= 0 {
		return nil
	}
	spacing := EdgeSpacing(usable, n, o.Spacing)
	if spacing <= 0 {
		return nil
	}

	if o.CornerWeighted && n >= 2 {
		if pos := weighted(usable, startMargin, spacing, o, weightStart, weightEnd); pos != nil {
			return pos
		}
	}
	return uniform(usable, startMargin, spacing, n)
}

func uniform(usable, start, spacing float64, n int) []float64 {
	first := start + (usable-spacing*float64(n-1))/2
	pos := make([]float64, n)
	for k := range pos {
		pos[k] = first + float64(k)*spacing
	}
	return pos
}

func weighted(usable, start, spacing float64, o Options, ws, we bool) []float64 {
	cd := o.CornerDistance
	if cd <= 0 {
		cd = DefaultCornerDistance
	}
	firstGap, lastGap := spacing, spacing
	if ws {
		firstGap = cd
	}
	if we {
		lastGap = cd
	}

	n := o.Holes
	if n == 2 {
		used := spacing
		if ws || we {
			used = math.Min(firstGap, lastGap)
		}
		p0 := start + (usable-used)/2
		return []float64{p0, p0 + used}
	}

	middle := n - 2
	remaining := usable - (firstGap + lastGap)
	if remaining <= 0 {
		return nil
	}
	span := spacing * float64(middle-1)
	if span > remaining {
		return nil
	}

	pos := make([]float64, 0, n)
	p := start + (remaining-span)/2
	pos = append(pos, p)
	p += firstGap
	pos = append(pos, p)
	for range middle - 1 {
		p += spacing
		pos = append(pos, p)
	}
	pos = append(pos, p+lastGap)
	return pos
}
