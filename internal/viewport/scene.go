package viewport

import (
	"github.com/lineaview-labs/lineaview/internal/lineage"
	"github.com/lineaview-labs/lineaview/pkg/geo"
)

// Scene is the engine's complete output for one frame: everything a
// rendering layer needs to draw, with node boxes and edge paths in content
// space and the transform to compose on top.
type Scene struct {
	Transform      Transform   `json:"transform"`
	Mode           Mode        `json:"mode"`
	SelectedColumn string      `json:"selectedColumn"`
	Bounds         Bounds      `json:"bounds"`
	Nodes          []SceneNode `json:"nodes"`
	Edges          []SceneEdge `json:"edges"`
}

// SceneNode is a positioned node with its effective box and expand state.
type SceneNode struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Kind     lineage.NodeKind `json:"kind"`
	Box      geo.Box          `json:"box"`
	Expanded bool             `json:"expanded"`
	Columns  []SceneColumn    `json:"columns"`
}

// SceneColumn is one column row of a node.
type SceneColumn struct {
	Name        string `json:"name"`
	Highlighted bool   `json:"highlighted"`
}

// SceneEdge is a routed edge. Edges whose endpoints are missing or
// unpositioned never appear in the scene.
type SceneEdge struct {
	From        lineage.ColumnRef `json:"from"`
	To          lineage.ColumnRef `json:"to"`
	Path        Path              `json:"path"`
	Highlighted bool              `json:"highlighted"`
}

// Scene builds the current frame for a surface of the given size. The size
// is recorded as the last known viewport size, which also releases any fit
// that was deferred waiting for layout.
func (e *Engine) Scene(size Size) Scene {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !size.IsZero() {
		e.viewport = size
		if e.fitPending {
			e.fitLocked()
		}
	}

	scene := Scene{
		Transform:      e.transform,
		Mode:           e.mode,
		SelectedColumn: e.selected,
		Bounds:         ComputeBounds(e.snap.Nodes, e.expanded),
	}

	for i := range e.snap.Nodes {
		n := &e.snap.Nodes[i]
		expanded := e.expanded.Has(n.ID)
		box, ok := NodeBox(n, expanded)
		if !ok {
			continue
		}

		cols := make([]SceneColumn, len(n.Columns))
		for j, name := range n.Columns {
			cols[j] = SceneColumn{
				Name:        name,
				Highlighted: e.endpoints.highlighted(n.ID, name, e.selected),
			}
		}

		scene.Nodes = append(scene.Nodes, SceneNode{
			ID:       n.ID,
			Name:     n.Name,
			Kind:     n.Kind,
			Box:      box,
			Expanded: expanded,
			Columns:  cols,
		})
	}

	for _, edge := range e.snap.Edges {
		path, ok := RoutePath(e.snap.NodeByID(edge.From.Table), e.snap.NodeByID(edge.To.Table))
		if !ok {
			continue
		}
		scene.Edges = append(scene.Edges, SceneEdge{
			From:        edge.From,
			To:          edge.To,
			Path:        path,
			Highlighted: edgeHighlighted(edge, e.selected),
		})
	}

	return scene
}
