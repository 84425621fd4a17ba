package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/footbagworks/panelcut/pkg/errors"
	"github.com/footbagworks/panelcut/pkg/settings"
)

func (c *CLI) tuneCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tune [settings]",
		Short: "Edit settings interactively with live measurements",
		Long: `Open an interactive editor over a settings snapshot. Hole count, stitched
side length, hole spacing and sheet utilization update as values change.
Press s to save the snapshot and w to export the panel SVG.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, path, err := loadSnapshot(args)
			if err != nil {
				if !errors.Is(err, errors.ErrCodeFileNotFound) {
					return err
				}
				snap, path = settings.Default(), args[0]
			}
			if path == "" {
				path = "panelcut.toml"
			}
			if err := errors.ValidateSettingsFilename(path); err != nil {
				return err
			}

			c.Logger.Debug("starting tuner", "path", path)
			final, err := tea.NewProgram(NewTuneModel(snap, path), tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return err
			}
			if m, ok := final.(TuneModel); ok && m.err != nil {
				printWarning("last change left the settings invalid: %v", m.err)
			}
			return nil
		},
	}
}
