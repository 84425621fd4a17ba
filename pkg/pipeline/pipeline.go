// Package pipeline runs the compute → tile → render pipeline for a panel.
//
// The CLI and the tuner both go through a [Runner], so a panel rendered from
// a settings file and one rendered from flags produce identical artifacts.
//
// # Stages
//
//  1. Compute: build the outline, holes and bounds with [panel.Compute]
//  2. Tile: when a sheet layout is given, tile copies and measure utilization
//  3. Render: produce each requested format (SVG, PNG, PDF, JSON)
//
// Every value a later stage needs is carried in the [Result]; nothing is
// remembered between runs.
//
// # Usage
//
//	runner := pipeline.NewRunner(nil, logger)
//	result, err := runner.Execute(ctx, res.Panel, pipeline.Options{
//	    Formats: []string{"svg", "json"},
//	    DotSize: res.DotSize,
//	})
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/footbagworks/panelcut/pkg/core/panel"
	"github.com/footbagworks/panelcut/pkg/core/sheet"
	"github.com/footbagworks/panelcut/pkg/errors"
	"github.com/footbagworks/panelcut/pkg/render/sink"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// Formats lists the supported output formats in render order.
var Formats = []string{FormatSVG, FormatPNG, FormatPDF, FormatJSON}

const (
	DefaultDotSize = sink.DefaultDot
	DefaultScale   = sink.DefaultScale
)

// ValidateFormats checks that every format is supported.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := errors.ValidateFormat(f, Formats); err != nil {
			return err
		}
	}
	return nil
}

// Options controls what a run renders. The panel itself is described by the
// panel.Config passed to Execute.
type Options struct {
	Formats  []string `json:"formats,omitempty"`
	DotSize  float64  `json:"dot_size,omitempty"`
	ShowGrid bool     `json:"show_grid,omitempty"`
	// Scale is the PNG resolution in pixels per millimetre.
	Scale float64 `json:"scale,omitempty"`
	// Sheet tiles the panel when set; artifacts then show the whole sheet.
	Sheet *sheet.Layout `json:"sheet,omitempty"`
	// Refresh bypasses cached artifacts.
	Refresh bool `json:"-"`

	Logger *log.Logger `json:"-"`
}

// SetDefaults fills unset fields.
func (o *Options) SetDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.DotSize == 0 {
		o.DotSize = DefaultDotSize
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate checks the options after defaults are applied.
func (o Options) Validate() error {
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.DotSize < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "dot size must not be negative: %v", o.DotSize)
	}
	if o.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "png scale must not be negative: %v", o.Scale)
	}
	if o.Sheet != nil && (o.Sheet.Rows < 1 || o.Sheet.Cols < 1) {
		return errors.New(errors.ErrCodeInvalidInput, "sheet needs at least one row and column, got %dx%d", o.Sheet.Rows, o.Sheet.Cols)
	}
	return nil
}

// Result contains the outputs of a pipeline run.
type Result struct {
	Panel panel.Panel
	// Sheet is nil unless Options.Sheet was set.
	Sheet *sheet.Sheet
	// Area is the panel's analytic area in mm².
	Area float64
	// Utilization is the sheet utilization in percent, 0 without a sheet.
	Utilization float64
	Artifacts   map[string][]byte
	Stats       Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	HoleCount   int
	CellCount   int
	ComputeTime time.Duration
	RenderTime  time.Duration
	// RenderHit is true when every artifact came from the cache.
	RenderHit bool
}
