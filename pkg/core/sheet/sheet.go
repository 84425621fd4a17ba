// Package sheet tiles copies of a panel onto a material sheet and measures
// how much of the sheet the panels use.
//
// Odd columns can be flipped vertically and shifted by a nesting offset so
// that neighbouring columns interlock:
//
//	s := sheet.Tile(p, sheet.Layout{Rows: 3, Cols: 4, InvertOdd: true, NestingOffset: -6})
//	pct, err := sheet.Utilization(p, layout)
package sheet

import (
	"fmt"
	"math"

	"github.com/footbagworks/panelcut/pkg/core/geom"
	"github.com/footbagworks/panelcut/pkg/core/outline"
	"github.com/footbagworks/panelcut/pkg/core/panel"
	"github.com/footbagworks/panelcut/pkg/errors"
)

// Layout describes the grid of panel copies.
type Layout struct {
	Rows          int     `json:"rows"`
	Cols          int     `json:"cols"`
	HSpace        float64 `json:"h_space"`
	VSpace        float64 `json:"v_space"`
	InvertOdd     bool    `json:"invert_odd"`
	NestingOffset float64 `json:"nesting_offset"`
}

// Nested reports whether odd columns are flipped and shifted.
func (l Layout) Nested() bool { return l.InvertOdd && l.NestingOffset != 0 }

// Canvas returns the sheet size for cells of the given size.
func (l Layout) Canvas(cellW, cellH float64) (w, h float64) {
	if l.Rows <= 0 || l.Cols <= 0 {
		return 0, 0
	}
	w = float64(l.Cols)*cellW + float64(l.Cols-1)*l.HSpace
	h = float64(l.Rows)*cellH + float64(l.Rows-1)*l.VSpace
	if l.Nested() {
		h += math.Abs(l.NestingOffset)
	}
	return w, h
}

// Cell is one panel copy. The copy is drawn through Translate and then,
// for flipped cells, through the matrix (1 0 0 -1 0 FlipF).
type Cell struct {
	Row, Col   int
	TranslateX float64
	TranslateY float64
	Flipped    bool
	FlipF      float64
}

// Transform returns the SVG transform of the cell group.
func (c Cell) Transform() string {
	return fmt.Sprintf("translate(%s %s)", outline.Fmt(c.TranslateX), outline.Fmt(c.TranslateY))
}

// FlipTransform returns the SVG transform of the inner flip group, or "" for
// cells that are not flipped.
func (c Cell) FlipTransform() string {
	if !c.Flipped {
		return ""
	}
	return fmt.Sprintf("matrix(1 0 0 -1 0 %s)", outline.Fmt(c.FlipF))
}

// Apply maps a panel-local point into sheet coordinates.
func (c Cell) Apply(p geom.Point) geom.Point {
	if c.Flipped {
		p.Y = c.FlipF - p.Y
	}
	return geom.Point{X: p.X + c.TranslateX, Y: p.Y + c.TranslateY}
}

// Sheet is a tiled layout of one panel.
type Sheet struct {
	Layout     Layout
	Panel      panel.Panel
	CellWidth  float64
	CellHeight float64
	Width      float64
	Height     float64
	// ViewMinY shifts the view box up when a negative nesting offset
	// pushes flipped copies above the first row.
	ViewMinY float64
	Cells    []Cell
}

// CellSize returns the unpadded size of one panel, never negative.
func CellSize(b panel.Bounds) (w, h float64) {
	w, h = b.Content()
	return math.Max(0, w), math.Max(0, h)
}

// Tile lays out rows × cols copies of p.
func Tile(p panel.Panel, l Layout) Sheet {
	cw, ch := CellSize(p.Bounds)
	w, h := l.Canvas(cw, ch)
	s := Sheet{
		Layout:     l,
		Panel:      p,
		CellWidth:  cw,
		CellHeight: ch,
		Width:      w,
		Height:     h,
	}
	if l.InvertOdd && l.NestingOffset < 0 {
		s.ViewMinY = l.NestingOffset
	}

	dx0 := -(p.Bounds.ViewMinX + panel.Margin)
	dy0 := -(p.Bounds.ViewMinY + panel.Margin)
	centerY := p.Bounds.ViewMinY + p.Bounds.Height/2

	s.Cells = make([]Cell, 0, max(0, l.Rows*l.Cols))
	for r := range l.Rows {
		for c := range l.Cols {
			cell := Cell{
				Row:        r,
				Col:        c,
				TranslateX: float64(c)*(cw+l.HSpace) + dx0,
				TranslateY: float64(r)*(ch+l.VSpace) + dy0,
			}
			if l.InvertOdd && c%2 == 1 {
				cell.Flipped = true
				cell.FlipF = 2*centerY + l.NestingOffset
			}
			s.Cells = append(s.Cells, cell)
		}
	}
	return s
}

// Area returns the analytic area of shape drawn with edge radius r. Curved
// edges add a parabolic segment (2/3)·chord·sagitta each.
func Area(shape geom.Shape, r float64) (float64, error) {
	if shape == nil {
		return 0, errors.New(errors.ErrCodeMissingShape, "cannot compute panel area without a shape")
	}
	area := shape.Area()
	if r <= 0 {
		return area, nil
	}
	loop := shape.Loop()
	for i := range loop.Len() {
		a, b := loop.Edge(i)
		if arc, ok := outline.NewArc(a, b, r); ok {
			area += 2.0 / 3.0 * arc.Chord() * arc.Sagitta()
		}
	}
	return area, nil
}

// Utilization returns the share of the sheet covered by panels, in percent.
// It fails when p carries no shape instead of estimating from the bounds.
func Utilization(p panel.Panel, l Layout) (float64, error) {
	area, err := Area(p.Config.Shape, p.Config.Radius())
	if err != nil {
		return 0, fmt.Errorf("utilization: %w", err)
	}
	cw, ch := CellSize(p.Bounds)
	w, h := l.Canvas(cw, ch)
	canvas := w * h
	if canvas == 0 {
		return 0, nil
	}
	return area * float64(l.Rows*l.Cols) / canvas * 100, nil
}

// Utilization returns the material utilization of s.
func (s Sheet) Utilization() (float64, error) {
	return Utilization(s.Panel, s.Layout)
}
