package sink

import (
	"context"

	"github.com/footbagworks/panelcut/pkg/core/panel"
	"github.com/footbagworks/panelcut/pkg/core/sheet"
	"github.com/footbagworks/panelcut/pkg/render"
)

// PDFOption configures PDF rendering.
type PDFOption func(*pdfRenderer)

type pdfRenderer struct {
	svgOpts []SVGOption
	ctx     context.Context
}

// WithPDFSVGOptions passes options through to the underlying SVG renderer.
func WithPDFSVGOptions(opts ...SVGOption) PDFOption {
	return func(r *pdfRenderer) { r.svgOpts = opts }
}

// WithContext cancels the conversion process when ctx is done.
func WithContext(ctx context.Context) PDFOption {
	return func(r *pdfRenderer) { r.ctx = ctx }
}

func newPDFRenderer(opts ...PDFOption) pdfRenderer {
	r := pdfRenderer{ctx: context.Background()}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// RenderPanelPDF renders a panel as PDF via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPanelPDF(p panel.Panel, opts ...PDFOption) ([]byte, error) {
	r := newPDFRenderer(opts...)
	return render.ToPDFContext(r.ctx, RenderPanelSVG(p, r.svgOpts...))
}

// RenderSheetPDF renders a tiled sheet as PDF via SVG conversion.
func RenderSheetPDF(s sheet.Sheet, opts ...PDFOption) ([]byte, error) {
	r := newPDFRenderer(opts...)
	return render.ToPDFContext(r.ctx, RenderSheetSVG(s, r.svgOpts...))
}
