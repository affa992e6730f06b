package viewport

import "github.com/lineaview-labs/lineaview/internal/lineage"

// columnKey identifies one endpoint of a lineage edge.
type columnKey struct {
	table  string
	column string
}

// endpointIndex records every (table, column) pair that appears as an edge
// endpoint, so row highlighting is a set lookup instead of an edge scan.
type endpointIndex map[columnKey]struct{}

func buildEndpointIndex(edges []lineage.Edge) endpointIndex {
	idx := make(endpointIndex, len(edges)*2)
	for _, e := range edges {
		idx[columnKey{e.From.Table, e.From.Column}] = struct{}{}
		idx[columnKey{e.To.Table, e.To.Column}] = struct{}{}
	}
	return idx
}

// highlighted reports whether the given node row matches the selected
// column: the names must match and some edge must touch that exact endpoint.
func (idx endpointIndex) highlighted(nodeID, column, selected string) bool {
	if column == "" || column != selected {
		return false
	}
	_, ok := idx[columnKey{nodeID, column}]
	return ok
}

// edgeHighlighted reports whether either endpoint of the edge carries the
// selected column.
func edgeHighlighted(e lineage.Edge, selected string) bool {
	if selected == "" {
		return false
	}
	return e.From.Column == selected || e.To.Column == selected
}
