// Package commands implements the lineaview subcommands.
package commands

import (
	"context"
	"log/slog"

	"github.com/lineaview-labs/lineaview/internal/config"
	"github.com/lineaview-labs/lineaview/internal/lineage"
)

// configKey is used to store config in context.
type configKey struct{}

// loggerKey is used to store the logger in context.
type loggerKey struct{}

// WithRuntime stores the loaded config and logger in the context. The root
// command calls this from PersistentPreRunE.
func WithRuntime(ctx context.Context, cfg *config.Config, logger *slog.Logger) context.Context {
	ctx = context.WithValue(ctx, configKey{}, cfg)
	return context.WithValue(ctx, loggerKey{}, logger)
}

// GetConfig retrieves the config from the command context.
func GetConfig(ctx context.Context) *config.Config {
	if c, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return c
	}
	return &config.Config{
		SnapshotPath: config.DefaultSnapshotPath,
		Port:         config.DefaultPort,
		LogLevel:     config.DefaultLogLevel,
	}
}

// GetLogger retrieves the logger from the command context.
func GetLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.New(slog.DiscardHandler)
}

// loadSnapshot reads and validates the configured snapshot file.
func loadSnapshot(cfg *config.Config) (*lineage.Snapshot, error) {
	return lineage.LoadFile(cfg.SnapshotPath)
}
