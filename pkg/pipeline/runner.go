package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/footbagworks/panelcut/pkg/buildinfo"
	"github.com/footbagworks/panelcut/pkg/cache"
	"github.com/footbagworks/panelcut/pkg/core/panel"
	"github.com/footbagworks/panelcut/pkg/core/sheet"
	"github.com/footbagworks/panelcut/pkg/errors"
	"github.com/footbagworks/panelcut/pkg/observability"
)

// Runner executes the pipeline with an artifact cache.
//
// The Runner holds no results between runs. Multiple goroutines can use
// the same Runner with different inputs.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching; a nil logger
// uses the default logger.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Execute computes the panel described by cfg, tiles it when opts.Sheet is
// set and renders the requested formats.
func (r *Runner) Execute(ctx context.Context, cfg panel.Config, opts Options) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if cfg.Shape == nil {
		return nil, errors.New(errors.ErrCodeMissingShape, "panel config has no shape")
	}
	logger := opts.Logger
	hooks := observability.Pipeline()
	shape := cfg.Shape.Kind().String()

	// Stages 1 and 2: Compute and Tile
	start := time.Now()
	hooks.OnComputeStart(ctx, shape)
	result, err := compute(ctx, cfg, opts.Sheet)
	elapsed := time.Since(start)
	if err != nil {
		hooks.OnComputeComplete(ctx, shape, 0, elapsed, err)
		return nil, err
	}
	result.Stats.ComputeTime = elapsed
	hooks.OnComputeComplete(ctx, shape, result.Stats.HoleCount, elapsed, nil)

	logger.Info("computed panel",
		"shape", shape,
		"holes", result.Stats.HoleCount,
		"area", fmt.Sprintf("%.1fmm²", result.Area),
		"duration", result.Stats.ComputeTime)
	if result.Sheet != nil {
		logger.Info("tiled sheet",
			"cells", result.Stats.CellCount,
			"size", fmt.Sprintf("%.1fx%.1fmm", result.Sheet.Width, result.Sheet.Height),
			"utilization", fmt.Sprintf("%.1f%%", result.Utilization))
	}

	// Stage 3: Render
	start = time.Now()
	hooks.OnRenderStart(ctx, opts.Formats)
	artifacts, hit, err := r.renderCached(ctx, result, cfg, opts)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(start)
	result.Stats.RenderHit = hit

	logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", hit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// compute builds the panel, its area and, when layout is set, the tiled
// sheet with its utilization.
func compute(ctx context.Context, cfg panel.Config, layout *sheet.Layout) (*Result, error) {
	result := &Result{Panel: panel.Compute(cfg)}
	area, err := sheet.Area(cfg.Shape, cfg.Radius())
	if err != nil {
		return nil, fmt.Errorf("area: %w", err)
	}
	result.Area = area
	result.Stats.HoleCount = result.Panel.HoleCount()

	if layout != nil {
		s := sheet.Tile(result.Panel, *layout)
		util, err := s.Utilization()
		if err != nil {
			return nil, fmt.Errorf("tile: %w", err)
		}
		result.Sheet = &s
		result.Utilization = util
		result.Stats.CellCount = len(s.Cells)
		observability.Pipeline().OnTileComplete(ctx, result.Stats.CellCount, util)
	}
	return result, nil
}

// renderCached serves every format from the cache or renders them all.
func (r *Runner) renderCached(ctx context.Context, res *Result, cfg panel.Config, opts Options) (map[string][]byte, bool, error) {
	keyFor := func(format string) string {
		return artifactKey(cfg, opts, format)
	}

	hooks := observability.Cache()
	if !opts.Refresh {
		artifacts := make(map[string][]byte, len(opts.Formats))
		for _, format := range opts.Formats {
			data, hit, err := r.Cache.Get(ctx, keyFor(format))
			if err != nil || !hit {
				break
			}
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			hooks.OnCacheHit(ctx, "artifact")
			return artifacts, true, nil
		}
		hooks.OnCacheMiss(ctx, "artifact")
	}

	artifacts, err := Render(ctx, res.Panel, res.Sheet, opts)
	if err != nil {
		return nil, false, err
	}
	for format, data := range artifacts {
		if err := r.Cache.Set(ctx, keyFor(format), data, cache.TTLArtifact); err != nil {
			opts.Logger.Warn("cache write failed", "format", format, "error", err)
			continue
		}
		hooks.OnCacheSet(ctx, "artifact", len(data))
	}
	return artifacts, false, nil
}

// artifactKey covers every input that changes an artifact's bytes.
func artifactKey(cfg panel.Config, opts Options, format string) string {
	return cache.Key("artifact",
		buildinfo.Tag(),
		cfg.Shape.Kind().String(),
		cfg,
		opts.Sheet,
		opts.DotSize,
		opts.ShowGrid,
		opts.Scale,
		format,
	)
}

// Close releases resources held by the runner.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
