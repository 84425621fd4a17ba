package cli

import (
	"github.com/spf13/cobra"

	"github.com/footbagworks/panelcut/pkg/settings"
)

// snapshotFlags binds command-line flags to a scratch snapshot. Only flags
// the user actually set are copied onto the loaded settings.
type snapshotFlags struct {
	vals settings.Snapshot
}

func newSnapshotFlags() *snapshotFlags {
	return &snapshotFlags{vals: settings.Default()}
}

// overrides maps each flag name to the snapshot field it sets.
var overrides = map[string]func(dst *settings.Snapshot, src settings.Snapshot){
	"shape":           func(d *settings.Snapshot, s settings.Snapshot) { d.Shape = s.Shape },
	"side":            func(d *settings.Snapshot, s settings.Snapshot) { d.Side = s.Side },
	"seam":            func(d *settings.Snapshot, s settings.Snapshot) { d.Seam = s.Seam },
	"stitches":        func(d *settings.Snapshot, s settings.Snapshot) { d.Stitches = s.Stitches },
	"curved":          func(d *settings.Snapshot, s settings.Snapshot) { d.Curved = s.Curved },
	"curve-factor":    func(d *settings.Snapshot, s settings.Snapshot) { d.CurveFactor = s.CurveFactor },
	"curve-radius":    func(d *settings.Snapshot, s settings.Snapshot) { d.CurveRadius = s.CurveRadius },
	"corner-margin":   func(d *settings.Snapshot, s settings.Snapshot) { d.CornerMargin = s.CornerMargin },
	"hole-spacing":    func(d *settings.Snapshot, s settings.Snapshot) { d.HoleSpacing = s.HoleSpacing },
	"dot-size":        func(d *settings.Snapshot, s settings.Snapshot) { d.DotSize = s.DotSize },
	"grid":            func(d *settings.Snapshot, s settings.Snapshot) { d.ShowGrid = s.ShowGrid },
	"hex-type":        func(d *settings.Snapshot, s settings.Snapshot) { d.Hex.Type = s.Hex.Type },
	"hex-long":        func(d *settings.Snapshot, s settings.Snapshot) { d.Hex.Long = s.Hex.Long },
	"hex-ratio":       func(d *settings.Snapshot, s settings.Snapshot) { d.Hex.Ratio = s.Hex.Ratio },
	"star-radius":     func(d *settings.Snapshot, s settings.Snapshot) { d.Star.OuterRadius = s.Star.OuterRadius },
	"root-angle":      func(d *settings.Snapshot, s settings.Snapshot) { d.Star.RootAngle = s.Star.RootAngle },
	"root-offset":     func(d *settings.Snapshot, s settings.Snapshot) { d.Star.RootOffset = s.Star.RootOffset },
	"corner-stitch":   func(d *settings.Snapshot, s settings.Snapshot) { d.CornerStitch.Enabled = s.CornerStitch.Enabled },
	"corner-distance": func(d *settings.Snapshot, s settings.Snapshot) { d.CornerStitch.Distance = s.CornerStitch.Distance },
	"rows":            func(d *settings.Snapshot, s settings.Snapshot) { d.Layout.Rows = s.Layout.Rows },
	"cols":            func(d *settings.Snapshot, s settings.Snapshot) { d.Layout.Cols = s.Layout.Cols },
	"h-space":         func(d *settings.Snapshot, s settings.Snapshot) { d.Layout.HSpace = s.Layout.HSpace },
	"v-space":         func(d *settings.Snapshot, s settings.Snapshot) { d.Layout.VSpace = s.Layout.VSpace },
	"invert-odd":      func(d *settings.Snapshot, s settings.Snapshot) { d.Layout.InvertOdd = s.Layout.InvertOdd },
	"nesting-offset":  func(d *settings.Snapshot, s settings.Snapshot) { d.Layout.NestingOffset = s.Layout.NestingOffset },
}

// register adds the shape and stitch flags.
func (f *snapshotFlags) register(cmd *cobra.Command) {
	v := &f.vals
	fl := cmd.Flags()
	fl.IntVar(&v.Shape, "shape", v.Shape, "number of sides 3-9, or 10 for a five-pointed star")
	fl.Float64Var(&v.Side, "side", v.Side, "side length in mm")
	fl.Float64Var(&v.Seam, "seam", v.Seam, "seam allowance: distance from cut line to holes, mm")
	fl.IntVar(&v.Stitches, "stitches", v.Stitches, "holes per edge")
	fl.BoolVar(&v.Curved, "curved", v.Curved, "draw edges as outward arcs")
	fl.Float64Var(&v.CurveFactor, "curve-factor", v.CurveFactor, "arc bulge relative to panel size, 0.1-0.4")
	fl.Float64Var(&v.CurveRadius, "curve-radius", v.CurveRadius, "explicit arc radius in mm (overrides --curve-factor)")
	fl.Float64Var(&v.CornerMargin, "corner-margin", v.CornerMargin, "clear distance at corners, mm")
	fl.Float64Var(&v.HoleSpacing, "hole-spacing", v.HoleSpacing, "preferred distance between holes, mm")
	fl.Float64Var(&v.DotSize, "dot-size", v.DotSize, "hole dot diameter in the drawing, mm")
	fl.BoolVar(&v.ShowGrid, "grid", v.ShowGrid, "draw a 10mm reference grid")
	fl.StringVar(&v.Hex.Type, "hex-type", v.Hex.Type, "hexagon type: regular or truncated")
	fl.Float64Var(&v.Hex.Long, "hex-long", v.Hex.Long, "truncated hexagon long side, mm")
	fl.Float64Var(&v.Hex.Ratio, "hex-ratio", v.Hex.Ratio, "truncated hexagon short/long ratio")
	fl.Float64Var(&v.Star.OuterRadius, "star-radius", v.Star.OuterRadius, "star tip radius, mm")
	fl.Float64Var(&v.Star.RootAngle, "root-angle", v.Star.RootAngle, "star root angle in degrees, 100-150")
	fl.Float64Var(&v.Star.RootOffset, "root-offset", v.Star.RootOffset, "star root margin multiplier, -3 to 1")
	fl.BoolVar(&v.CornerStitch.Enabled, "corner-stitch", v.CornerStitch.Enabled, "use a fixed gap next to corners")
	fl.Float64Var(&v.CornerStitch.Distance, "corner-distance", v.CornerStitch.Distance, "corner stitch gap, mm")
}

// registerLayout adds the sheet tiling flags.
func (f *snapshotFlags) registerLayout(cmd *cobra.Command) {
	v := &f.vals.Layout
	fl := cmd.Flags()
	fl.IntVar(&v.Rows, "rows", v.Rows, "panel rows")
	fl.IntVar(&v.Cols, "cols", v.Cols, "panel columns")
	fl.Float64Var(&v.HSpace, "h-space", v.HSpace, "horizontal gap between panels, mm")
	fl.Float64Var(&v.VSpace, "v-space", v.VSpace, "vertical gap between panels, mm")
	fl.BoolVar(&v.InvertOdd, "invert-odd", v.InvertOdd, "flip every other column to nest panels")
	fl.Float64Var(&v.NestingOffset, "nesting-offset", v.NestingOffset, "vertical shift of flipped columns, mm")
}

// apply copies every flag the user set onto s.
func (f *snapshotFlags) apply(cmd *cobra.Command, s settings.Snapshot) settings.Snapshot {
	for name, set := range overrides {
		if cmd.Flags().Changed(name) {
			set(&s, f.vals)
		}
	}
	return s
}
