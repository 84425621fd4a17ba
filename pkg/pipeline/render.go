package pipeline

import (
	"context"
	"fmt"

	"github.com/footbagworks/panelcut/pkg/core/panel"
	"github.com/footbagworks/panelcut/pkg/core/sheet"
	"github.com/footbagworks/panelcut/pkg/errors"
	"github.com/footbagworks/panelcut/pkg/render/sink"
)

// Render produces every format in opts.Formats. A non-nil s renders the
// sheet instead of the single panel.
func Render(ctx context.Context, p panel.Panel, s *sheet.Sheet, opts Options) (map[string][]byte, error) {
	svgOpts := buildSVGOptions(opts)
	artifacts := make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var data []byte
		var err error
		switch format {
		case FormatSVG:
			if s != nil {
				data = sink.RenderSheetSVG(*s, svgOpts...)
			} else {
				data = sink.RenderPanelSVG(p, svgOpts...)
			}
		case FormatPNG:
			pngOpts := []sink.PNGOption{sink.WithScale(opts.Scale), sink.WithPNGSVGOptions(svgOpts...)}
			if s != nil {
				data, err = sink.RenderSheetPNG(*s, pngOpts...)
			} else {
				data, err = sink.RenderPanelPNG(p, pngOpts...)
			}
		case FormatPDF:
			pdfOpts := []sink.PDFOption{sink.WithContext(ctx), sink.WithPDFSVGOptions(svgOpts...)}
			if s != nil {
				data, err = sink.RenderSheetPDF(*s, pdfOpts...)
			} else {
				data, err = sink.RenderPanelPDF(p, pdfOpts...)
			}
		case FormatJSON:
			if s != nil {
				data, err = sink.RenderSheetJSON(*s)
			} else {
				data, err = sink.RenderPanelJSON(p)
			}
		default:
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

func buildSVGOptions(opts Options) []sink.SVGOption {
	svgOpts := []sink.SVGOption{sink.WithDotSize(opts.DotSize)}
	if opts.ShowGrid {
		svgOpts = append(svgOpts, sink.WithGrid())
	}
	return svgOpts
}
