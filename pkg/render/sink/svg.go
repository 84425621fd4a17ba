package sink

import (
	"bytes"
	"fmt"
	"math"

	"github.com/footbagworks/panelcut/pkg/core/outline"
	"github.com/footbagworks/panelcut/pkg/core/panel"
	"github.com/footbagworks/panelcut/pkg/core/sheet"
)

// Drawing constants, in millimetres.
const (
	CutColor    = "#000000"
	SeamColor   = "#808080"
	GridColor   = "#bfbfbf"
	CutStroke   = 0.25
	GridStroke  = 0.1
	GridOpacity = 0.22
	GridSpacing = 10.0
	DefaultDot  = 1.0
)

var f = outline.Fmt

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	dotSize float64
	grid    bool
}

// WithDotSize sets the hole dot diameter in millimetres.
func WithDotSize(d float64) SVGOption { return func(r *svgRenderer) { r.dotSize = d } }

// WithGrid draws a 10 mm reference grid behind the panel.
func WithGrid() SVGOption { return func(r *svgRenderer) { r.grid = true } }

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{dotSize: DefaultDot}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// dotRadius never drops below 0.1 mm so holes stay visible.
func (r svgRenderer) dotRadius() float64 {
	return math.Max(0.1, r.dotSize/2)
}

// RenderPanelSVG renders a single panel at 1 user unit per millimetre.
func RenderPanelSVG(p panel.Panel, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)
	b := p.Bounds

	var buf bytes.Buffer
	openSVG(&buf, b.ViewMinX, b.ViewMinY, b.Width, b.Height)
	if r.grid {
		renderGrid(&buf, b.ViewMinX, b.ViewMinY, b.Width, b.Height,
			math.Floor(b.ViewMinX/GridSpacing)*GridSpacing, math.Floor(b.ViewMinY/GridSpacing)*GridSpacing)
	}
	renderPanelBody(&buf, p, r.dotRadius(), "  ")
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// RenderSheetSVG renders a tiled sheet. Each copy sits in a translated group,
// with an inner flip group for inverted columns.
func RenderSheetSVG(s sheet.Sheet, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	var buf bytes.Buffer
	openSVG(&buf, 0, s.ViewMinY, s.Width, s.Height)
	if r.grid {
		renderGrid(&buf, 0, s.ViewMinY, s.Width, s.Height, 0, math.Floor(s.ViewMinY/GridSpacing)*GridSpacing)
	}
	for _, c := range s.Cells {
		fmt.Fprintf(&buf, "  <g transform=\"%s\">\n", c.Transform())
		if ft := c.FlipTransform(); ft != "" {
			fmt.Fprintf(&buf, "    <g transform=\"%s\">\n", ft)
		} else {
			buf.WriteString("    <g>\n")
		}
		renderPanelBody(&buf, s.Panel, r.dotRadius(), "      ")
		buf.WriteString("    </g>\n  </g>\n")
	}
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func openSVG(buf *bytes.Buffer, minX, minY, w, h float64) {
	fmt.Fprintf(buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%smm" height="%smm" viewBox="%s %s %s %s" fill="none" style="background:white">`+"\n",
		f(w), f(h), f(minX), f(minY), f(w), f(h))
}

// renderGrid draws vertical lines from x0 and horizontal lines from y0 at
// GridSpacing until they leave the view box.
func renderGrid(buf *bytes.Buffer, minX, minY, w, h, x0, y0 float64) {
	fmt.Fprintf(buf, "  <g id=\"grid\" stroke=\"%s\" stroke-width=\"%smm\" opacity=\"%.2f\">\n",
		GridColor, f(GridStroke), GridOpacity)
	for _, x := range gridLines(x0, minX+w) {
		fmt.Fprintf(buf, "    <line x1=\"%s\" y1=\"%s\" x2=\"%s\" y2=\"%s\"/>\n", f(x), f(minY), f(x), f(minY+h))
	}
	for _, y := range gridLines(y0, minY+h) {
		fmt.Fprintf(buf, "    <line x1=\"%s\" y1=\"%s\" x2=\"%s\" y2=\"%s\"/>\n", f(minX), f(y), f(minX+w), f(y))
	}
	buf.WriteString("  </g>\n")
}

func gridLines(start, end float64) []float64 {
	var out []float64
	for k := 0; ; k++ {
		v := start + float64(k)*GridSpacing
		if v > end {
			return out
		}
		out = append(out, v)
	}
}

func renderPanelBody(buf *bytes.Buffer, p panel.Panel, r float64, indent string) {
	fmt.Fprintf(buf, "%s<path d=\"%s\" stroke=\"%s\" stroke-width=\"%smm\" fill=\"none\"/>\n",
		indent, p.Outline.String(), CutColor, f(CutStroke))
	fmt.Fprintf(buf, "%s<g fill=\"%s\">\n", indent, SeamColor)
	for _, h := range p.Holes {
		fmt.Fprintf(buf, "%s  <circle cx=\"%s\" cy=\"%s\" r=\"%s\"/>\n", indent, f(h.X), f(h.Y), f(r))
	}
	fmt.Fprintf(buf, "%s</g>\n", indent)
}
