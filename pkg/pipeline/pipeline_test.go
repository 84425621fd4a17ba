package pipeline

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/footbagworks/panelcut/pkg/cache"
	"github.com/footbagworks/panelcut/pkg/core/geom"
	"github.com/footbagworks/panelcut/pkg/core/panel"
	"github.com/footbagworks/panelcut/pkg/core/sheet"
	"github.com/footbagworks/panelcut/pkg/errors"
	"github.com/footbagworks/panelcut/pkg/observability"
)

func testConfig() panel.Config {
	return panel.Config{
		Shape:        geom.Regular{Sides: 6, SideLength: 30},
		SeamOffset:   5,
		Holes:        10,
		CornerMargin: 2,
		HoleSpacing:  3,
	}
}

func TestValidateFormats(t *testing.T) {
	tests := []struct {
		formats []string
		wantErr bool
	}{
		{[]string{"svg", "png", "pdf", "json"}, false},
		{nil, false},
		{[]string{"svg", "invalid"}, true},
		{[]string{"SVG"}, true}, // case-sensitive
		{[]string{""}, true},
	}

	for _, tt := range tests {
		err := ValidateFormats(tt.formats)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormats(%v) error = %v, wantErr %v", tt.formats, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormats(%v) code = %v, want INVALID_FORMAT", tt.formats, errors.GetCode(err))
		}
	}
}

func TestOptionsDefaults(t *testing.T) {
	var o Options
	o.SetDefaults()

	if len(o.Formats) != 1 || o.Formats[0] != FormatSVG {
		t.Errorf("Formats = %v, want [svg]", o.Formats)
	}
	if o.DotSize != DefaultDotSize {
		t.Errorf("DotSize = %v, want %v", o.DotSize, DefaultDotSize)
	}
	if o.Scale != DefaultScale {
		t.Errorf("Scale = %v, want %v", o.Scale, DefaultScale)
	}
	if o.Logger == nil {
		t.Error("Logger not set")
	}
	if err := o.Validate(); err != nil {
		t.Errorf("Validate() after SetDefaults = %v", err)
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"negative dot", Options{Formats: []string{"svg"}, DotSize: -1}},
		{"negative scale", Options{Formats: []string{"png"}, Scale: -2}},
		{"empty sheet", Options{Formats: []string{"svg"}, Sheet: &sheet.Layout{}}},
		{"bad format", Options{Formats: []string{"gif"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.opts.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestExecutePanel(t *testing.T) {
	r := NewRunner(nil, nil)
	res, err := r.Execute(context.Background(), testConfig(), Options{Formats: []string{"svg", "json"}})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	if res.Sheet != nil {
		t.Error("Sheet set without a layout")
	}
	if res.Utilization != 0 {
		t.Errorf("Utilization = %v, want 0", res.Utilization)
	}
	if res.Stats.HoleCount != 60 {
		t.Errorf("HoleCount = %d, want 60", res.Stats.HoleCount)
	}
	want := geom.Regular{Sides: 6, SideLength: 30}.Area()
	if res.Area != want {
		t.Errorf("Area = %v, want %v", res.Area, want)
	}
	for _, f := range []string{"svg", "json"} {
		if len(res.Artifacts[f]) == 0 {
			t.Errorf("artifact %s is empty", f)
		}
	}
	if _, ok := res.Artifacts["png"]; ok {
		t.Error("unrequested png rendered")
	}
}

func TestExecuteSheet(t *testing.T) {
	r := NewRunner(nil, nil)
	layout := sheet.Layout{Rows: 2, Cols: 3, HSpace: 2, VSpace: 2}
	res, err := r.Execute(context.Background(), testConfig(), Options{Sheet: &layout})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	if res.Sheet == nil {
		t.Fatal("Sheet is nil")
	}
	if res.Stats.CellCount != 6 {
		t.Errorf("CellCount = %d, want 6", res.Stats.CellCount)
	}
	if res.Utilization <= 0 || res.Utilization >= 100 {
		t.Errorf("Utilization = %v, want within (0, 100)", res.Utilization)
	}
	if got := bytes.Count(res.Artifacts["svg"], []byte("translate(")); got != 6 {
		t.Errorf("svg cell groups = %d, want 6", got)
	}
}

func TestExecuteMissingShape(t *testing.T) {
	r := NewRunner(nil, nil)
	_, err := r.Execute(context.Background(), panel.Config{}, Options{})
	if !errors.Is(err, errors.ErrCodeMissingShape) {
		t.Errorf("Execute() error = %v, want MISSING_SHAPE", err)
	}
}

func TestExecuteDeterministic(t *testing.T) {
	r := NewRunner(nil, nil)
	cfg := testConfig()
	cfg.Curved = true
	cfg.CurveRadius = panel.RadiusForFactor(cfg.Shape, 0.3)
	opts := Options{Formats: []string{"svg", "json"}, ShowGrid: true}

	a, err := r.Execute(context.Background(), cfg, opts)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	b, err := r.Execute(context.Background(), cfg, opts)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	for _, f := range opts.Formats {
		if !bytes.Equal(a.Artifacts[f], b.Artifacts[f]) {
			t.Errorf("%s differs between identical runs", f)
		}
	}
}

func TestExecuteCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewRunner(nil, nil)
	if _, err := r.Execute(ctx, testConfig(), Options{}); err != context.Canceled {
		t.Errorf("Execute() error = %v, want context.Canceled", err)
	}
}

// recordingCache counts hits and remembers what was stored.
type recordingCache struct {
	data map[string][]byte
	hits int
}

func (c *recordingCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	d, ok := c.data[key]
	if ok {
		c.hits++
	}
	return d, ok, nil
}

func (c *recordingCache) Set(_ context.Context, key string, data []byte, _ time.Duration) error {
	c.data[key] = data
	return nil
}

func (c *recordingCache) Delete(_ context.Context, key string) error {
	delete(c.data, key)
	return nil
}

func (c *recordingCache) Close() error { return nil }

var _ cache.Cache = (*recordingCache)(nil)

func TestExecuteCache(t *testing.T) {
	c := &recordingCache{data: map[string][]byte{}}
	r := NewRunner(c, nil)
	opts := Options{Formats: []string{"svg", "json"}}

	first, err := r.Execute(context.Background(), testConfig(), opts)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if first.Stats.RenderHit {
		t.Error("first run reported a cache hit")
	}
	if len(c.data) != 2 {
		t.Errorf("cached %d artifacts, want 2", len(c.data))
	}

	second, err := r.Execute(context.Background(), testConfig(), opts)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !second.Stats.RenderHit {
		t.Error("second run missed the cache")
	}
	if !bytes.Equal(first.Artifacts["svg"], second.Artifacts["svg"]) {
		t.Error("cached svg differs")
	}

	// A different dot size is a different artifact.
	opts.DotSize = 1.4
	third, err := r.Execute(context.Background(), testConfig(), opts)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if third.Stats.RenderHit {
		t.Error("changed options served from cache")
	}

	opts.Refresh = true
	fourth, err := r.Execute(context.Background(), testConfig(), opts)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if fourth.Stats.RenderHit {
		t.Error("Refresh served from cache")
	}
}

type countingHooks struct {
	observability.NoopPipelineHooks
	observability.NoopCacheHooks
	started, computed  int
	tiled, rendered    int
	holes, computeErrs int
	hits, misses, sets int
}

func (h *countingHooks) OnComputeStart(context.Context, string) { h.started++ }

func (h *countingHooks) OnComputeComplete(_ context.Context, _ string, holes int, _ time.Duration, err error) {
	h.computed++
	h.holes = holes
	if err != nil {
		h.computeErrs++
	}
}

func (h *countingHooks) OnTileComplete(context.Context, int, float64) { h.tiled++ }

func (h *countingHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {
	h.rendered++
}

func (h *countingHooks) OnCacheHit(context.Context, string)      { h.hits++ }
func (h *countingHooks) OnCacheMiss(context.Context, string)     { h.misses++ }
func (h *countingHooks) OnCacheSet(context.Context, string, int) { h.sets++ }

func TestExecuteHooks(t *testing.T) {
	h := &countingHooks{}
	observability.SetPipelineHooks(h)
	observability.SetCacheHooks(h)
	defer observability.Reset()

	c := &recordingCache{data: map[string][]byte{}}
	r := NewRunner(c, nil)
	layout := sheet.Layout{Rows: 1, Cols: 2}
	opts := Options{Formats: []string{"svg"}, Sheet: &layout}

	for range 2 {
		if _, err := r.Execute(context.Background(), testConfig(), opts); err != nil {
			t.Fatalf("Execute() error: %v", err)
		}
	}

	if h.computed != 2 || h.tiled != 2 || h.rendered != 2 {
		t.Errorf("stage hooks = %d/%d/%d, want 2/2/2", h.computed, h.tiled, h.rendered)
	}
	if h.started != h.computed {
		t.Errorf("compute start/complete = %d/%d, want paired", h.started, h.computed)
	}
	if h.computeErrs != 0 {
		t.Errorf("compute errors = %d, want 0", h.computeErrs)
	}
	if h.holes != 60 {
		t.Errorf("reported holes = %d, want 60", h.holes)
	}
	if h.misses != 1 || h.sets != 1 || h.hits != 1 {
		t.Errorf("cache hooks miss/set/hit = %d/%d/%d, want 1/1/1", h.misses, h.sets, h.hits)
	}
}

func TestComputeMissingShape(t *testing.T) {
	h := &countingHooks{}
	observability.SetPipelineHooks(h)
	defer observability.Reset()

	layout := sheet.Layout{Rows: 1, Cols: 2}
	_, err := compute(context.Background(), panel.Config{Holes: 4}, &layout)
	if !errors.Is(err, errors.ErrCodeMissingShape) {
		t.Errorf("compute() error = %v, want MISSING_SHAPE", err)
	}
	if h.tiled != 0 {
		t.Errorf("tile hook fired %d times for a failed compute", h.tiled)
	}
}
