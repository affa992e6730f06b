// Package cli provides the command-line interface for lineaview.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lineaview-labs/lineaview/internal/cli/commands"
	"github.com/lineaview-labs/lineaview/internal/config"
)

var cfgFile string

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lineaview",
		Short: "Lineaview - Interactive Lineage Graph Viewer",
		Long: `Lineaview renders column-level lineage graphs of database tables as an
interactive pan/zoom canvas.

It loads a lineage snapshot, serves a web UI with per-session viewport
state, and offers terminal tools for fit previews and impact analysis.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			cmd.SetContext(commands.WithRuntime(cmd.Context(), cfg, newLogger(cmd, cfg)))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
Interactive Lineage Graph Viewer
`)

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./lineaview.yaml)")
	rootCmd.PersistentFlags().StringP("snapshot", "s", "", "Path to lineage snapshot JSON")
	rootCmd.PersistentFlags().Int("port", 0, fmt.Sprintf("UI server port (default: %d)", config.DefaultPort))
	rootCmd.PersistentFlags().Bool("watch", true, "Reload the snapshot when the file changes")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug|info|warn|error)")

	_ = rootCmd.RegisterFlagCompletionFunc("log-level", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"debug", "info", "warn", "error"}, cobra.ShellCompDirectiveNoFileComp
	})

	// Add subcommands
	rootCmd.AddCommand(commands.NewVersionCommand(Version, BuildDate, GitCommit))
	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewFitCommand())
	rootCmd.AddCommand(commands.NewImpactCommand())
	rootCmd.AddCommand(commands.NewViewCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
