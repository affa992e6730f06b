package commands

import (
	"github.com/spf13/cobra"

	"github.com/lineaview-labs/lineaview/internal/tui"
)

// NewViewCommand creates the view command.
func NewViewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Browse the lineage graph in the terminal",
		Long: `Open an interactive terminal viewer for the lineage snapshot.

The viewer shares the pan/zoom engine with the web UI: arrow keys pan,
+/- zoom, f fits the whole graph, tab moves focus between tables and
enter expands or collapses the focused one.`,
		Example: `  # Browse the default snapshot
  lineaview view

  # Browse a specific snapshot
  lineaview view --snapshot warehouse.json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snap, err := loadSnapshot(GetConfig(cmd.Context()))
			if err != nil {
				return err
			}
			return tui.Run(snap)
		},
	}
}
