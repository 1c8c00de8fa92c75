package cli

import (
	"github.com/amercer/tally/internal/cli/formatter"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the top-level "tally" command and registers all
// subcommands against the provided App. Running it bare on a terminal
// starts the interactive TUI.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "tally",
		Short: "Personal win/loss/growth journal",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			formatter.SetColorEnabled(app.Config.ColorEnabled())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newAddCmd(app),
		newLogCmd(app),
		newStatsCmd(app),
		newPathCmd(app),
	)

	return root
}
