// Package render provides format conversion shared by the panel sinks.
//
// # Format Conversion
//
// [ToPDF] converts any SVG to PDF using the external rsvg-convert tool (from
// librsvg). SVG and PNG output are produced natively by the [sink]
// subpackage; PDF is the one format that needs the external tool.
//
//	svg := sink.RenderPanelSVG(p)
//	pdf, err := render.ToPDF(svg)
//
// [sink]: github.com/footbagworks/panelcut/pkg/render/sink
package render
