// Package pkg provides the core libraries for panelcut, a footbag panel
// geometry and stitch-layout engine.
//
// # Overview
//
// A footbag is sewn from identical flat panels. Each panel is a polygon (or a
// five-pointed star) whose edges may bulge outward as circular arcs, with a
// row of stitch holes running parallel to every stitched edge. The pkg
// directory is organized into three areas:
//
//  1. [core] - Domain logic (shapes, outlines, hole placement, tiling)
//  2. [render] - Output sinks (SVG, PNG, PDF, JSON)
//  3. [pipeline] - Orchestration (compute → tile → render) with caching
//
// # Architecture
//
// The typical data flow:
//
//	settings.Snapshot (TOML or JSON file)
//	         ↓
//	    [settings] package (clamp + resolve dynamic limits)
//	         ↓
//	    [core/panel] package (outline + stitch holes)
//	         ↓
//	    [core/sheet] package (optional grid tiling)
//	         ↓
//	    SVG/PNG/PDF/JSON output
//
// # Quick Start
//
//	import (
//	    "github.com/footbagworks/panelcut/pkg/core/geom"
//	    "github.com/footbagworks/panelcut/pkg/core/panel"
//	    "github.com/footbagworks/panelcut/pkg/render/sink"
//	)
//
//	p := panel.Compute(panel.Config{
//	    Shape:        geom.Regular{Sides: 5, SideLength: 30},
//	    SeamOffset:   3,
//	    Holes:        10,
//	    CornerMargin: 2,
//	    HoleSpacing:  2.5,
//	})
//	svg := sink.RenderPanelSVG(p, sink.WithGrid(true))
//
// # Main Packages
//
// [core/geom] - Points, vertex generators and the three shape families.
//
// [core/outline] - Arc construction for curved edges and the SVG path of the
// cut line.
//
// [core/stitch] - Hole positions along every stitched edge, with corner
// margins and spacing caps.
//
// [core/panel] - One computed panel: outline, holes, bounds and curve radius.
//
// [core/sheet] - Grid tiling with alternate-column nesting and material
// utilization.
//
// [settings] - Versioned settings snapshots with clamping and migration from
// the first file version.
//
// [pipeline] - The run used by the CLI and the tuner. Ensures both produce
// identical artifacts for identical settings.
//
// [cache] - File-backed artifact cache keyed by a hash of every input.
//
// # Testing
//
//	go test ./pkg/...
//
// [core]: https://pkg.go.dev/github.com/footbagworks/panelcut/pkg/core
// [core/geom]: https://pkg.go.dev/github.com/footbagworks/panelcut/pkg/core/geom
// [core/outline]: https://pkg.go.dev/github.com/footbagworks/panelcut/pkg/core/outline
// [core/stitch]: https://pkg.go.dev/github.com/footbagworks/panelcut/pkg/core/stitch
// [core/panel]: https://pkg.go.dev/github.com/footbagworks/panelcut/pkg/core/panel
// [core/sheet]: https://pkg.go.dev/github.com/footbagworks/panelcut/pkg/core/sheet
// [render]: https://pkg.go.dev/github.com/footbagworks/panelcut/pkg/render
// [settings]: https://pkg.go.dev/github.com/footbagworks/panelcut/pkg/settings
// [pipeline]: https://pkg.go.dev/github.com/footbagworks/panelcut/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/footbagworks/panelcut/pkg/cache
package pkg
