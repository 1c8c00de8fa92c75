package cli

import (
	"fmt"
	"strings"

	"github.com/amercer/tally/internal/cli/formatter"
	"github.com/amercer/tally/internal/domain"
	"github.com/spf13/cobra"
)

func newAddCmd(app *App) *cobra.Command {
	var typeCode string

	cmd := &cobra.Command{
		Use:   "add [text...]",
		Short: "Record a win, loss or opportunity for growth",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entryType, err := domain.ParseEntryType(typeCode)
			if err != nil {
				return err
			}

			text := strings.TrimSpace(strings.Join(args, " "))
			if text == "" {
				return fmt.Errorf("entry text must not be empty")
			}

			e := app.Store.Add(cmd.Context(), entryType, text)
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s: %s\n",
				formatter.TypeBadge(e.Type), e.Text)
			return nil
		},
	}

	cmd.Flags().StringVarP(&typeCode, "type", "t", "", "Entry type: W, L or OFG")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}
