package sink

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"

	"golang.org/x/image/vector"

	"github.com/footbagworks/panelcut/pkg/core/geom"
	"github.com/footbagworks/panelcut/pkg/core/outline"
	"github.com/footbagworks/panelcut/pkg/core/panel"
	"github.com/footbagworks/panelcut/pkg/core/sheet"
	"github.com/footbagworks/panelcut/pkg/errors"
)

const (
	// DefaultScale is the PNG resolution in pixels per millimetre.
	DefaultScale = 4.0
	// MaxPixels caps the raster size of a single image.
	MaxPixels = 64 << 20

	arcSegments    = 32
	circleSegments = 16

	// gridAlpha is GridOpacity on the 0-255 scale.
	gridAlpha = 56
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	svgOpts []SVGOption
	scale   float64
}

// WithPNGSVGOptions applies SVG options (dot size, grid) to the raster.
func WithPNGSVGOptions(opts ...SVGOption) PNGOption {
	return func(r *pngRenderer) { r.svgOpts = opts }
}

// WithScale sets the resolution in pixels per millimetre.
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

func newPNGRenderer(opts ...PNGOption) pngRenderer {
	r := pngRenderer{scale: DefaultScale}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale <= 0 {
		r.scale = DefaultScale
	}
	return r
}

// RenderPanelPNG rasterizes a single panel.
func RenderPanelPNG(p panel.Panel, opts ...PNGOption) ([]byte, error) {
	r := newPNGRenderer(opts...)
	b := p.Bounds
	c, err := r.newCanvas(b.ViewMinX, b.ViewMinY, b.Width, b.Height)
	if err != nil {
		return nil, err
	}
	sr := newSVGRenderer(r.svgOpts...)
	if sr.grid {
		c.grid(math.Floor(b.ViewMinX/GridSpacing)*GridSpacing, math.Floor(b.ViewMinY/GridSpacing)*GridSpacing)
	}
	c.panel(p, sheet.Cell{}, sr.dotRadius())
	return c.encode()
}

// RenderSheetPNG rasterizes a tiled sheet.
func RenderSheetPNG(s sheet.Sheet, opts ...PNGOption) ([]byte, error) {
	r := newPNGRenderer(opts...)
	c, err := r.newCanvas(0, s.ViewMinY, s.Width, s.Height)
	if err != nil {
		return nil, err
	}
	sr := newSVGRenderer(r.svgOpts...)
	if sr.grid {
		c.grid(0, math.Floor(s.ViewMinY/GridSpacing)*GridSpacing)
	}
	for _, cell := range s.Cells {
		c.panel(s.Panel, cell, sr.dotRadius())
	}
	return c.encode()
}

// canvas maps millimetre coordinates onto an RGBA image.
type canvas struct {
	img        *image.RGBA
	z          *vector.Rasterizer
	minX, minY float64
	w, h       float64
	scale      float64
}

func (r pngRenderer) newCanvas(minX, minY, w, h float64) (*canvas, error) {
	pw := int(math.Ceil(w * r.scale))
	ph := int(math.Ceil(h * r.scale))
	if pw <= 0 || ph <= 0 {
		return nil, errors.New(errors.ErrCodeRenderFailed, "empty image: %dx%d px", pw, ph)
	}
	if pw*ph > MaxPixels {
		return nil, errors.New(errors.ErrCodeRenderFailed, "image too large: %dx%d px, lower the scale", pw, ph)
	}
	img := image.NewRGBA(image.Rect(0, 0, pw, ph))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	return &canvas{
		img:   img,
		z:     vector.NewRasterizer(pw, ph),
		minX:  minX,
		minY:  minY,
		w:     w,
		h:     h,
		scale: r.scale,
	}, nil
}

func (c *canvas) px(p geom.Point) (float32, float32) {
	return float32((p.X - c.minX) * c.scale), float32((p.Y - c.minY) * c.scale)
}

// fill composites the current rasterizer contents in col and clears it.
func (c *canvas) fill(col color.Color) {
	b := c.img.Bounds()
	c.z.Draw(c.img, b, image.NewUniform(col), image.Point{})
	c.z.Reset(b.Dx(), b.Dy())
}

// stroke adds a quad per segment. Every quad winds the same way so
// overlapping joints never cancel.
func (c *canvas) stroke(a, b geom.Point, width float64) {
	half := math.Max(width*c.scale, 1) / 2 / c.scale
	n := geom.OutwardNormal(a, b).Times(half)
	if n.X == 0 && n.Y == 0 {
		return
	}
	x, y := c.px(a.Plus(n))
	c.z.MoveTo(x, y)
	x, y = c.px(b.Plus(n))
	c.z.LineTo(x, y)
	x, y = c.px(b.Minus(n))
	c.z.LineTo(x, y)
	x, y = c.px(a.Minus(n))
	c.z.LineTo(x, y)
	c.z.ClosePath()
}

func (c *canvas) disc(center geom.Point, r float64) {
	for i := range circleSegments {
		a := 2 * math.Pi * float64(i) / circleSegments
		x, y := c.px(geom.Pt(center.X+r*math.Cos(a), center.Y+r*math.Sin(a)))
		if i == 0 {
			c.z.MoveTo(x, y)
		} else {
			c.z.LineTo(x, y)
		}
	}
	c.z.ClosePath()
}

func (c *canvas) grid(x0, y0 float64) {
	for _, x := range gridLines(x0, c.minX+c.w) {
		c.stroke(geom.Pt(x, c.minY), geom.Pt(x, c.minY+c.h), GridStroke)
	}
	for _, y := range gridLines(y0, c.minY+c.h) {
		c.stroke(geom.Pt(c.minX, y), geom.Pt(c.minX+c.w, y), GridStroke)
	}
	c.fill(color.NRGBA{R: 0xbf, G: 0xbf, B: 0xbf, A: gridAlpha})
}

// panel draws one copy of p through cell's transform.
func (c *canvas) panel(p panel.Panel, cell sheet.Cell, dotRadius float64) {
	r := p.Config.Radius()
	for i := range p.Loop.Len() {
		a, b := p.Loop.Edge(i)
		pts := outline.SampleEdge(a, b, r, arcSegments)
		for j := 1; j < len(pts); j++ {
			c.stroke(cell.Apply(pts[j-1].P), cell.Apply(pts[j].P), CutStroke)
		}
	}
	c.fill(color.Black)

	for _, h := range p.Holes {
		c.disc(cell.Apply(h), dotRadius)
	}
	c.fill(color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff})
}

func (c *canvas) encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, c.img); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "encode png")
	}
	return buf.Bytes(), nil
}
