package cli

import (
	"fmt"
	"time"

	"github.com/amercer/tally/internal/cli/formatter"
	"github.com/amercer/tally/internal/domain"
	"github.com/spf13/cobra"
)

func newLogCmd(app *App) *cobra.Command {
	var filter domain.TimeFilter

	cmd := &cobra.Command{
		Use:   "log",
		Short: "List entries and per-type counts for a time window",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			filtered := domain.Filter(app.Store.Entries(), filter, now)
			tally := domain.Count(filtered)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.FormatCounts(filter, tally))
			if len(filtered) == 0 {
				fmt.Fprintln(out, formatter.Dim("No entries in this window."))
				return nil
			}
			for _, e := range filtered {
				fmt.Fprintln(out, formatter.FormatEntryLine(e, now))
			}
			return nil
		},
	}

	cmd.Flags().Var(newFilterValue(&filter, defaultFilter(app)), "filter",
		"Time window: all, week, month, 3m or 6m")

	return cmd
}

func newStatsCmd(app *App) *cobra.Command {
	var filter domain.TimeFilter

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show per-type counts only",
		RunE: func(cmd *cobra.Command, args []string) error {
			filtered := domain.Filter(app.Store.Entries(), filter, time.Now())
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.Header("Stats"))
			fmt.Fprintln(out, formatter.FormatCounts(filter, domain.Count(filtered)))
			return nil
		},
	}

	cmd.Flags().Var(newFilterValue(&filter, defaultFilter(app)), "filter",
		"Time window: all, week, month, 3m or 6m")

	return cmd
}

func newPathCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the resolved database path",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), app.DBPath)
			return nil
		},
	}
}
