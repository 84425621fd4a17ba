package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/footbagworks/panelcut/pkg/errors"
	"github.com/footbagworks/panelcut/pkg/pipeline"
	"github.com/footbagworks/panelcut/pkg/settings"
)

// renderOpts holds the output flags shared by the panel and sheet commands.
type renderOpts struct {
	output  string
	formats []string
	scale   float64
	noCache bool
	refresh bool
}

func (c *CLI) panelCommand() *cobra.Command {
	var formatsStr string
	var opts renderOpts
	flags := newSnapshotFlags()

	cmd := &cobra.Command{
		Use:   "panel [settings]",
		Short: "Render a single panel with its stitch holes",
		Long: `Render a single panel at true scale. Settings are read from an optional
JSON or TOML snapshot; flags override individual values.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			snap, input, err := loadSnapshot(args)
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), flags.apply(cmd, snap), input, false, opts)
		},
	}

	flags.register(cmd)
	addRenderFlags(cmd, &formatsStr, &opts)
	return cmd
}

func (c *CLI) sheetCommand() *cobra.Command {
	var formatsStr string
	var opts renderOpts
	flags := newSnapshotFlags()

	cmd := &cobra.Command{
		Use:   "sheet [settings]",
		Short: "Tile panels onto a material sheet and report utilization",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			snap, input, err := loadSnapshot(args)
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), flags.apply(cmd, snap), input, true, opts)
		},
	}

	flags.register(cmd)
	flags.registerLayout(cmd)
	addRenderFlags(cmd, &formatsStr, &opts)
	return cmd
}

func addRenderFlags(cmd *cobra.Command, formats *string, opts *renderOpts) {
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(formats, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().Float64Var(&opts.scale, "scale", pipeline.DefaultScale, "PNG resolution in pixels per millimetre")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even when cached")
}

// loadSnapshot reads the optional settings argument, falling back to the
// defaults. It also returns the input path for naming outputs.
func loadSnapshot(args []string) (settings.Snapshot, string, error) {
	if len(args) == 0 {
		return settings.Default(), "", nil
	}
	snap, err := settings.Load(args[0])
	if err != nil {
		return settings.Snapshot{}, "", err
	}
	return snap, args[0], nil
}

func (c *CLI) runRender(ctx context.Context, snap settings.Snapshot, input string, tiled bool, opts renderOpts) error {
	if err := pipeline.ValidateFormats(opts.formats); err != nil {
		return err
	}
	res, err := snap.Resolve()
	if err != nil {
		return err
	}

	popts := pipeline.Options{
		Formats:  opts.formats,
		DotSize:  res.DotSize,
		ShowGrid: res.ShowGrid,
		Scale:    opts.scale,
		Refresh:  opts.refresh,
		Logger:   c.Logger,
	}
	if tiled {
		popts.Sheet = &res.Layout
	}

	runner := c.newRunner(opts.noCache)
	defer runner.Close()

	var spinner *Spinner
	if slices.Contains(opts.formats, pipeline.FormatPDF) {
		spinner = newSpinnerWithContext(ctx, "Converting to PDF...")
		spinner.Start()
	}
	result, err := runner.Execute(ctx, res.Panel, popts)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	paths, err := writeArtifacts(result.Artifacts, opts.formats, opts.output, outputStem(input, tiled))
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Wrote %d file(s)", len(paths)))

	kind := res.Panel.Shape.Kind().String()
	if tiled {
		printSuccess("Rendered %dx%d sheet of %s panels", res.Layout.Rows, res.Layout.Cols, kind)
	} else {
		printSuccess("Rendered %s panel", kind)
	}
	if input != "" {
		printKeyValue("settings", input)
	}
	printStats(result, tiled)
	if res.Panel.HoleSpacing < snap.HoleSpacing {
		printWarning("hole spacing held to %.2fmm to fit the shortest edge", res.Panel.HoleSpacing)
	}
	for _, p := range paths {
		printFile(p)
	}
	return nil
}

// outputStem names outputs after the settings file, or after the command.
func outputStem(input string, tiled bool) string {
	if input != "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	if tiled {
		return "sheet"
	}
	return "panel"
}

// basePath strips a known format extension from output, or derives the base
// from stem when output is empty.
func basePath(output, stem string) string {
	if output == "" {
		return stem
	}
	ext := filepath.Ext(output)
	if slices.Contains(pipeline.Formats, strings.TrimPrefix(ext, ".")) {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// writeArtifacts writes each artifact in formats order. A single format with
// an explicit output path is written to that path unchanged.
func writeArtifacts(artifacts map[string][]byte, formats []string, output, stem string) ([]string, error) {
	var paths []string
	for _, format := range formats {
		path := basePath(output, stem) + "." + format
		if len(formats) == 1 && output != "" {
			path = output
		}
		if err := errors.ValidateOutputPath(path); err != nil {
			return nil, err
		}
		if err := os.WriteFile(path, artifacts[format], 0o644); err != nil {
			return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "write %s", path)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
