package commands

import (
	"encoding/json"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/lineaview-labs/lineaview/internal/viewport"
)

// FitOptions holds options for the fit command.
type FitOptions struct {
	Width     float64
	Height    float64
	Collapsed bool
	JSON      bool
}

// fitResult is the JSON payload of the fit command.
type fitResult struct {
	Bounds    viewport.Bounds    `json:"bounds"`
	Transform viewport.Transform `json:"transform"`
}

// NewFitCommand creates the fit command.
func NewFitCommand() *cobra.Command {
	opts := &FitOptions{}

	cmd := &cobra.Command{
		Use:   "fit",
		Short: "Preview the auto-fit transform for a surface size",
		Long: `Compute the content bounds of the snapshot and the pan/zoom transform
that frames the whole graph on a surface of the given size.

Useful for checking node placement before serving, and for generating
initial transforms for embedding.`,
		Example: `  # Fit for a 1920x1080 surface
  lineaview fit

  # Fit for a smaller surface, all tables collapsed
  lineaview fit --width 800 --height 600 --collapsed

  # Machine-readable output
  lineaview fit --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFit(cmd, opts)
		},
	}

	cmd.Flags().Float64Var(&opts.Width, "width", 1920, "Surface width in pixels")
	cmd.Flags().Float64Var(&opts.Height, "height", 1080, "Surface height in pixels")
	cmd.Flags().BoolVar(&opts.Collapsed, "collapsed", false, "Treat all tables as collapsed")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output as JSON")

	return cmd
}

func runFit(cmd *cobra.Command, opts *FitOptions) error {
	cfg := GetConfig(cmd.Context())

	snap, err := loadSnapshot(cfg)
	if err != nil {
		return err
	}

	expanded := viewport.NewExpandedSet()
	if !opts.Collapsed {
		expanded = viewport.NewExpandedSet(snap.NodeIDs()...)
	}

	size := viewport.Size{Width: opts.Width, Height: opts.Height}
	if size.IsZero() {
		return fmt.Errorf("surface size must be positive, got %gx%g", opts.Width, opts.Height)
	}

	bounds := viewport.ComputeBounds(snap.Nodes, expanded)
	transform, ok := viewport.FitTransform(snap.Nodes, expanded, size)
	if !ok {
		return fmt.Errorf("cannot fit a %gx%g surface", opts.Width, opts.Height)
	}

	if opts.JSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(fitResult{Bounds: bounds, Transform: transform})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Snapshot: %s (%d tables, %d edges)\n\n", cfg.SnapshotPath, len(snap.Nodes), len(snap.Edges))

	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Table", "Kind", "X", "Y", "W", "H"})
	for i := range snap.Nodes {
		n := &snap.Nodes[i]
		box, ok := viewport.NodeBox(n, expanded.Has(n.ID))
		if !ok {
			t.AppendRow(table.Row{n.ID, n.Kind, "-", "-", "-", "-"})
			continue
		}
		t.AppendRow(table.Row{
			n.ID, n.Kind,
			fmt.Sprintf("%.0f", box.TopLeft.X),
			fmt.Sprintf("%.0f", box.TopLeft.Y),
			fmt.Sprintf("%.0f", box.Width),
			fmt.Sprintf("%.0f", box.Height),
		})
	}
	t.Render()

	fmt.Fprintf(out, "\nBounds:    (%.0f, %.0f) - (%.0f, %.0f)\n", bounds.MinX, bounds.MinY, bounds.MaxX, bounds.MaxY)
	fmt.Fprintf(out, "Transform: scale %.3f, pan (%.1f, %.1f)\n", transform.Scale, transform.X, transform.Y)
	return nil
}
