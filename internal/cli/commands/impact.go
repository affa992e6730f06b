package commands

import (
	"encoding/json"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/lineaview-labs/lineaview/internal/lineage"
)

// ImpactOptions holds options for the impact command.
type ImpactOptions struct {
	Upstream   bool
	Downstream bool
	Depth      int
	JSON       bool
}

// impactResult is the JSON payload of the impact command.
type impactResult struct {
	Table      string   `json:"table"`
	Upstream   []string `json:"upstream"`
	Downstream []string `json:"downstream"`
}

// NewImpactCommand creates the impact command.
func NewImpactCommand() *cobra.Command {
	opts := &ImpactOptions{}

	cmd := &cobra.Command{
		Use:   "impact <table>",
		Short: "Show impact analysis for a table",
		Long: `Display the upstream sources and downstream dependents of a table.

The traversal follows column-level lineage edges at table granularity,
helping you understand the blast radius of a schema change.`,
		Example: `  # Full impact of a table
  lineaview impact stg_orders

  # Only downstream dependents
  lineaview impact stg_orders --upstream=false

  # Limit traversal depth
  lineaview impact stg_orders --depth 2

  # Machine-readable output
  lineaview impact stg_orders --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImpact(cmd, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Upstream, "upstream", true, "Include upstream sources")
	cmd.Flags().BoolVar(&opts.Downstream, "downstream", true, "Include downstream dependents")
	cmd.Flags().IntVar(&opts.Depth, "depth", 0, "Max traversal depth (0 = unlimited)")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output as JSON")

	return cmd
}

func runImpact(cmd *cobra.Command, tableID string, opts *ImpactOptions) error {
	cfg := GetConfig(cmd.Context())

	snap, err := loadSnapshot(cfg)
	if err != nil {
		return err
	}

	if snap.NodeByID(tableID) == nil {
		return fmt.Errorf("table not found: %s", tableID)
	}

	upstream, downstream := lineage.Impact(snap, tableID, opts.Depth)
	if !opts.Upstream {
		upstream = nil
	}
	if !opts.Downstream {
		downstream = nil
	}

	if opts.JSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(impactResult{Table: tableID, Upstream: upstream, Downstream: downstream})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Impact for: %s\n\n", tableID)

	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Direction", "Table", "Kind"})
	appendDirection(t, snap, "upstream", upstream)
	appendDirection(t, snap, "downstream", downstream)
	t.Render()

	fmt.Fprintf(out, "\nTotal impacted: %d\n", len(upstream)+len(downstream))
	return nil
}

func appendDirection(t table.Writer, snap *lineage.Snapshot, direction string, ids []string) {
	for _, id := range ids {
		kind := "unknown"
		if n := snap.NodeByID(id); n != nil {
			kind = string(n.Kind)
		}
		t.AppendRow(table.Row{direction, id, kind})
	}
}
