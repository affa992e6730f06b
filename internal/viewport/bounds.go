package viewport

import "github.com/lineaview-labs/lineaview/internal/lineage"

// BoundsPadding is the content-space margin added symmetrically around the
// union of node boxes. It is distinct from the screen-space fit margin
// applied by FitTransform.
const BoundsPadding = 40.0

// Bounds is the padded bounding rectangle of all positioned nodes. It is
// derived state, recomputed whenever nodes or expansion change.
type Bounds struct {
	MinX   float64 `json:"minX"`
	MinY   float64 `json:"minY"`
	MaxX   float64 `json:"maxX"`
	MaxY   float64 `json:"maxY"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ComputeBounds folds the node boxes of every positioned node into a single
// padded rectangle. Nodes lacking a position are skipped; if no node has a
// position the result is a fixed non-empty default so downstream scale math
// never divides by zero.
func ComputeBounds(nodes []lineage.Node, expanded ExpandedSet) Bounds {
	var (
		minX, minY float64
		maxX, maxY float64
		any        bool
	)

	for i := range nodes {
		box, ok := NodeBox(&nodes[i], expanded.Has(nodes[i].ID))
		if !ok {
			continue
		}
		if !any {
			minX, minY = box.TopLeft.X, box.TopLeft.Y
			maxX, maxY = box.Right(), box.Bottom()
			any = true
			continue
		}
		if box.TopLeft.X < minX {
			minX = box.TopLeft.X
		}
		if box.TopLeft.Y < minY {
			minY = box.TopLeft.Y
		}
		if box.Right() > maxX {
			maxX = box.Right()
		}
		if box.Bottom() > maxY {
			maxY = box.Bottom()
		}
	}

	if !any {
		minX, minY, maxX, maxY = 0, 0, NodeWidth, HeaderHeight
	}

	minX -= BoundsPadding
	minY -= BoundsPadding
	maxX += BoundsPadding
	maxY += BoundsPadding

	return Bounds{
		MinX:   minX,
		MinY:   minY,
		MaxX:   maxX,
		MaxY:   maxY,
		Width:  maxX - minX,
		Height: maxY - minY,
	}
}
