package sink

import (
	"encoding/json"

	"github.com/footbagworks/panelcut/pkg/core/outline"
	"github.com/footbagworks/panelcut/pkg/core/panel"
	"github.com/footbagworks/panelcut/pkg/core/sheet"
	"github.com/footbagworks/panelcut/pkg/errors"
)

type jsonPanel struct {
	Shape              string            `json:"shape"`
	Curved             bool              `json:"curved"`
	Radius             float64           `json:"radius,omitempty"`
	Path               string            `json:"path"`
	Outline            []outline.Command `json:"outline"`
	Holes              []jsonPoint       `json:"holes"`
	HoleCount          int               `json:"hole_count"`
	HolesPerEdge       []int             `json:"holes_per_edge"`
	Bounds             panel.Bounds      `json:"bounds"`
	StitchedSideLength float64           `json:"stitched_side_length"`
	Area               float64           `json:"area"`
}

type jsonPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type jsonSheet struct {
	Panel       jsonPanel    `json:"panel"`
	Layout      sheet.Layout `json:"layout"`
	CellWidth   float64      `json:"cell_width"`
	CellHeight  float64      `json:"cell_height"`
	Width       float64      `json:"width"`
	Height      float64      `json:"height"`
	ViewMinY    float64      `json:"view_min_y"`
	Utilization float64      `json:"utilization"`
	Cells       []jsonCell   `json:"cells"`
}

type jsonCell struct {
	Row       int     `json:"row"`
	Col       int     `json:"col"`
	Transform string  `json:"transform"`
	Flip      string  `json:"flip,omitempty"`
	FlipF     float64 `json:"flip_f,omitempty"`
}

// RenderPanelJSON describes a panel's geometry as indented JSON. Panels
// without a shape fail with MISSING_SHAPE.
func RenderPanelJSON(p panel.Panel) ([]byte, error) {
	out, err := toJSONPanel(p)
	if err != nil {
		return nil, err
	}
	return marshal(out)
}

// RenderSheetJSON describes a tiled sheet, including its utilization.
func RenderSheetJSON(s sheet.Sheet) ([]byte, error) {
	jp, err := toJSONPanel(s.Panel)
	if err != nil {
		return nil, err
	}
	util, err := s.Utilization()
	if err != nil {
		return nil, err
	}
	out := jsonSheet{
		Panel:       jp,
		Layout:      s.Layout,
		CellWidth:   s.CellWidth,
		CellHeight:  s.CellHeight,
		Width:       s.Width,
		Height:      s.Height,
		ViewMinY:    s.ViewMinY,
		Utilization: util,
		Cells:       make([]jsonCell, len(s.Cells)),
	}
	for i, c := range s.Cells {
		out.Cells[i] = jsonCell{
			Row:       c.Row,
			Col:       c.Col,
			Transform: c.Transform(),
			Flip:      c.FlipTransform(),
			FlipF:     c.FlipF,
		}
	}
	return marshal(out)
}

func toJSONPanel(p panel.Panel) (jsonPanel, error) {
	area, err := sheet.Area(p.Config.Shape, p.Config.Radius())
	if err != nil {
		return jsonPanel{}, err
	}
	out := jsonPanel{
		Shape:              p.Config.Shape.Kind().String(),
		Curved:             p.Config.Curved,
		Radius:             p.Config.Radius(),
		Path:               p.Outline.String(),
		Outline:            p.Outline.Commands,
		Holes:              make([]jsonPoint, len(p.Holes)),
		HoleCount:          p.HoleCount(),
		HolesPerEdge:       make([]int, len(p.HolesByEdge)),
		Bounds:             p.Bounds,
		StitchedSideLength: p.StitchedSideLength,
		Area:               area,
	}
	for i, h := range p.Holes {
		out.Holes[i] = jsonPoint{X: h.X, Y: h.Y}
	}
	for i, g := range p.HolesByEdge {
		out.HolesPerEdge[i] = len(g)
	}
	return out, nil
}

func marshal(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode json")
	}
	return append(data, '\n'), nil
}
