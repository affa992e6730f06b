package viewport

import (
	"github.com/lineaview-labs/lineaview/internal/lineage"
	"github.com/lineaview-labs/lineaview/pkg/geo"
)

// Node layout constants, in content-space units. These numbers are part of
// the rendering contract: downstream surfaces (web, TUI, SVG export) all
// assume them, so they are deliberately not configurable.
const (
	// NodeWidth is the fixed width of every node. Width does not vary with
	// content.
	NodeWidth = 240.0

	// HeaderHeight is the height of the header row, and therefore the full
	// height of a collapsed node.
	HeaderHeight = 80.0

	// RowHeight is the height of one column row in an expanded node.
	RowHeight = 28.0

	// MinBodyHeight keeps expanded nodes with zero or one column from
	// collapsing below a usable body size.
	MinBodyHeight = 40.0
)

// NodeHeight returns the effective height of a node given its expand state.
func NodeHeight(n *lineage.Node, expanded bool) float64 {
	if !expanded {
		return HeaderHeight
	}
	body := float64(len(n.Columns)) * RowHeight
	if body < MinBodyHeight {
		body = MinBodyHeight
	}
	return HeaderHeight + body
}

// NodeBox returns the content-space box of a node, using its stored position
// as the top-left corner. Returns false if the node has no position; such
// nodes are excluded from bounds and from rendering.
func NodeBox(n *lineage.Node, expanded bool) (geo.Box, bool) {
	if n.Position == nil {
		return geo.Box{}, false
	}
	return geo.NewBox(*n.Position, NodeWidth, NodeHeight(n, expanded)), true
}
