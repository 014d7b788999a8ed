package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/timvw/tmux-fragments/internal/fragment"
	"github.com/timvw/tmux-fragments/internal/model"
	"github.com/timvw/tmux-fragments/internal/mux"
)

var panesCmd = &cobra.Command{
	Use:   "panes",
	Short: "List pane ids usable as %<pane_id> fragment arguments",
	Long: `List the pane ids of the current tmux window in listing order.
The active pane is marked with "*".`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if !mux.InSession(ctx, current.mux, os.Getenv) {
			return model.NewError(model.ErrNotInSession, "%s", fragment.NotInSessionMessage)
		}

		ids, err := current.mux.ListPaneIDs(ctx)
		if err != nil {
			return fmt.Errorf("failed to list panes: %w", err)
		}
		active, err := current.mux.ActivePaneID(ctx)
		if err != nil {
			return fmt.Errorf("failed to get active pane: %w", err)
		}

		for _, id := range ids {
			marker := " "
			if id == active {
				marker = "*"
			}
			fmt.Printf("%s %s\n", marker, id)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(panesCmd)
}
