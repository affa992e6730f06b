package commands

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lineaview-labs/lineaview/internal/lineage"
	"github.com/lineaview-labs/lineaview/internal/ui"
)

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the lineage viewer web UI",
		Long: `Start a local web server providing the interactive lineage viewer.

The UI provides:
- Pan/zoom canvas of the lineage graph
- Expand/collapse of table column lists
- Column selection with edge highlighting
- Impact analysis per table`,
		Example: `  # Serve the default snapshot (lineage.json)
  lineaview serve

  # Serve a specific snapshot on a custom port
  lineaview serve --snapshot warehouse.json --port 3000

  # Disable snapshot hot reload
  lineaview serve --watch=false`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := GetConfig(cmd.Context())
			logger := GetLogger(cmd.Context())

			snap, err := loadSnapshot(cfg)
			if err != nil {
				return err
			}
			logger.Info("snapshot loaded",
				"path", cfg.SnapshotPath,
				"nodes", len(snap.Nodes),
				"edges", len(snap.Edges))

			server := ui.NewServer(ui.Config{
				Store:         lineage.NewStore(snap),
				Port:          cfg.Port,
				Watch:         cfg.Watch,
				SnapshotPath:  cfg.SnapshotPath,
				SessionSecret: cfg.SessionSecret,
				Logger:        logger,
			})

			fmt.Fprintf(cmd.OutOrStdout(), "Starting UI server on http://localhost:%d\n", cfg.Port)
			fmt.Fprintln(cmd.OutOrStdout(), "Press Ctrl+C to stop")

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return server.Serve(ctx)
		},
	}
}
