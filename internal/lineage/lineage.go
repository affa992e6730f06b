package lineage

import (
	"fmt"

	"github.com/lineaview-labs/lineaview/pkg/geo"
)

// NodeKind classifies a table in the lineage graph.
type NodeKind string

// Node kinds.
const (
	KindSource    NodeKind = "source"
	KindTransform NodeKind = "transform"
	KindTarget    NodeKind = "target"
)

// Node is a database table in the lineage graph. Positions are assigned by
// whatever produced the snapshot; the viewport engine never moves nodes.
type Node struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Kind     NodeKind   `json:"kind"`
	Position *geo.Point `json:"position,omitempty"`
	Columns  []string   `json:"columns"`
}

// ColumnRef identifies a single column of a table.
type ColumnRef struct {
	Table  string `json:"table"`
	Column string `json:"column"`
}

// Edge is a directed column-level lineage link between two tables.
type Edge struct {
	From ColumnRef `json:"from"`
	To   ColumnRef `json:"to"`
}

// Snapshot is a complete lineage graph delivered once per successful load.
// Consumers treat it as read-only.
type Snapshot struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Validate checks structural integrity of the snapshot. Edges referencing
// unknown tables are NOT an error here: they are treated as stale data and
// skipped at consumption time.
func (s *Snapshot) Validate() error {
	seen := make(map[string]struct{}, len(s.Nodes))
	for _, n := range s.Nodes {
		if n.ID == "" {
			return fmt.Errorf("node %q has empty id", n.Name)
		}
		if _, ok := seen[n.ID]; ok {
			return fmt.Errorf("duplicate node id %q", n.ID)
		}
		seen[n.ID] = struct{}{}
	}
	return nil
}

// NodeByID returns the node with the given id, or nil if the snapshot has no
// such node.
func (s *Snapshot) NodeByID(id string) *Node {
	for i := range s.Nodes {
		if s.Nodes[i].ID == id {
			return &s.Nodes[i]
		}
	}
	return nil
}

// NodeIDs returns the ids of all nodes in snapshot order.
func (s *Snapshot) NodeIDs() []string {
	ids := make([]string, len(s.Nodes))
	for i, n := range s.Nodes {
		ids[i] = n.ID
	}
	return ids
}

// FirstColumn returns the first column of the first node that has any,
// which is the default column selection once data loads. Returns "" for an
// empty snapshot.
func (s *Snapshot) FirstColumn() string {
	for _, n := range s.Nodes {
		if len(n.Columns) > 0 {
			return n.Columns[0]
		}
	}
	return ""
}
