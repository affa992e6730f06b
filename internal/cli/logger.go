package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/lineaview-labs/lineaview/internal/config"
)

// newLogger builds the process logger at the configured level, writing to
// the command's error stream so JSON output stays clean on stdout.
func newLogger(cmd *cobra.Command, cfg *config.Config) *slog.Logger {
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})
	return slog.New(handler)
}
