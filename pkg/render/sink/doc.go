// Package sink writes computed panels and sheets to output formats.
//
// SVG is the reference format: one user unit per millimetre, so a printed
// file cuts at true size. PNG is rasterized natively; PDF goes through
// rsvg-convert.
//
//	svg := sink.RenderPanelSVG(p, sink.WithDotSize(1.5), sink.WithGrid())
//	img, err := sink.RenderSheetPNG(s, sink.WithScale(8))
//	data, err := sink.RenderPanelJSON(p)
package sink
