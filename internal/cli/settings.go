package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/footbagworks/panelcut/pkg/core/panel"
	"github.com/footbagworks/panelcut/pkg/core/sheet"
	"github.com/footbagworks/panelcut/pkg/errors"
	"github.com/footbagworks/panelcut/pkg/settings"
)

func (c *CLI) settingsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Create and inspect settings snapshots",
	}

	cmd.AddCommand(c.settingsInitCommand())
	cmd.AddCommand(c.settingsShowCommand())

	return cmd
}

func (c *CLI) settingsInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [file]",
		Short: "Write the default settings to a JSON or TOML file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "panelcut.toml"
			if len(args) == 1 {
				path = args[0]
			}
			if err := errors.ValidateSettingsFilename(path); err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil && !force {
				return errors.New(errors.ErrCodeInvalidPath, "%s already exists (use --force to overwrite)", path)
			}
			if err := settings.Save(path, settings.Default()); err != nil {
				return err
			}
			c.Logger.Debug("wrote settings", "path", path, "version", settings.Version)

			printSuccess("Wrote default settings")
			printFile(path)
			printNextStep("Render it", "panelcut panel "+path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

func (c *CLI) settingsShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show [file]",
		Short: "Print the settings as the geometry sees them, after clamping",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, _, err := loadSnapshot(args)
			if err != nil {
				return err
			}
			out, err := settingsTable(snap)
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		},
	}
}

// settingsTable renders the stored and effective value of every control,
// followed by the computed measurements.
func settingsTable(snap settings.Snapshot) (string, error) {
	res, err := snap.Resolve()
	if err != nil {
		return "", err
	}
	p := panel.Compute(res.Panel)
	area, err := sheet.Area(res.Panel.Shape, res.Panel.Radius())
	if err != nil {
		return "", err
	}
	util, err := sheet.Utilization(p, res.Layout)
	if err != nil {
		return "", err
	}

	cfg := res.Panel
	radius := "straight"
	if cfg.Radius() > 0 {
		radius = fmt.Sprintf("%.1f", cfg.Radius())
	}
	rows := [][]string{
		{"shape", fmt.Sprint(snap.Shape), cfg.Shape.Kind().String()},
		{"side", mm(snap.Side), mm(snap.Clamp().Side)},
		{"seam", mm(snap.Seam), mm(cfg.SeamOffset)},
		{"stitches", fmt.Sprint(snap.Stitches), fmt.Sprint(cfg.Holes)},
		{"curved", fmt.Sprint(snap.Curved), radius},
		{"corner margin", mm(snap.CornerMargin), mm(cfg.CornerMargin)},
		{"hole spacing", mm(snap.HoleSpacing), fmt.Sprintf("%s (max %s)", mm(cfg.HoleSpacing), mm(res.MaxHoleSpacing))},
		{"corner stitch", fmt.Sprint(snap.CornerStitch.Enabled), mm(cfg.CornerDistance)},
		{"dot size", mm(snap.DotSize), mm(res.DotSize)},
		{"layout", fmt.Sprintf("%dx%d", snap.Layout.Rows, snap.Layout.Cols), fmt.Sprintf("%dx%d", res.Layout.Rows, res.Layout.Cols)},
		{"nesting", fmt.Sprint(snap.Layout.InvertOdd), mm(res.Layout.NestingOffset)},
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Setting", "Stored", "Effective").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 0:
				return lipgloss.NewStyle().Foreground(colorGray).Padding(0, 1)
			case col == 2 && rows[row][1] != rows[row][2]:
				return StyleHighlight.Padding(0, 1)
			}
			return StyleValue.Padding(0, 1)
		})

	metrics := fmt.Sprintf("%s %s  %s %s  %s %s  %s %s",
		StyleDim.Render("holes"), StyleNumber.Render(fmt.Sprint(p.HoleCount())),
		StyleDim.Render("stitched side"), StyleNumber.Render(mm(p.StitchedSideLength)),
		StyleDim.Render("area"), StyleNumber.Render(fmt.Sprintf("%.0fmm²", area)),
		StyleDim.Render("utilization"), StyleNumber.Render(fmt.Sprintf("%.1f%%", util)))

	return StyleTitle.Render("Panel settings") + "\n" + t.Render() + "\n" + metrics, nil
}

func mm(v float64) string {
	return fmt.Sprintf("%.2fmm", v)
}
