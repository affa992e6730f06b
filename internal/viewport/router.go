package viewport

import (
	"fmt"
	"math"

	"github.com/lineaview-labs/lineaview/internal/lineage"
	"github.com/lineaview-labs/lineaview/pkg/geo"
)

// Edge routing constants. The control-point offset grows with horizontal
// distance, producing a shallow S-curve between close nodes and a flatter,
// capped curve between distant ones.
const (
	edgeControlRatio = 0.4
	edgeControlMin   = 80.0
	edgeControlMax   = 200.0
)

// Path is a single cubic bezier segment in content space.
type Path struct {
	Start    geo.Point `json:"start"`
	Control1 geo.Point `json:"control1"`
	Control2 geo.Point `json:"control2"`
	End      geo.Point `json:"end"`
}

// SVG renders the path as an SVG path datum.
func (p Path) SVG() string {
	return fmt.Sprintf("M %.2f %.2f C %.2f %.2f, %.2f %.2f, %.2f %.2f",
		p.Start.X, p.Start.Y,
		p.Control1.X, p.Control1.Y,
		p.Control2.X, p.Control2.Y,
		p.End.X, p.End.Y)
}

// At evaluates the curve at parameter t in [0, 1].
func (p Path) At(t float64) geo.Point {
	u := 1 - t
	a := u * u * u
	b := 3 * u * u * t
	c := 3 * u * t * t
	d := t * t * t
	return geo.Point{
		X: a*p.Start.X + b*p.Control1.X + c*p.Control2.X + d*p.End.X,
		Y: a*p.Start.Y + b*p.Control1.Y + c*p.Control2.Y + d*p.End.Y,
	}
}

// RoutePath computes a smooth connector between the right-center header
// anchor of from and the left-center header anchor of to. Anchors sit at the
// header row regardless of expand state. Returns false when either node is
// missing or unpositioned (stale edge); such edges are skipped, not drawn.
func RoutePath(from, to *lineage.Node) (Path, bool) {
	if from == nil || to == nil || from.Position == nil || to.Position == nil {
		return Path{}, false
	}

	start := geo.Point{X: from.Position.X + NodeWidth, Y: from.Position.Y + HeaderHeight/2}
	end := geo.Point{X: to.Position.X, Y: to.Position.Y + HeaderHeight/2}

	offset := geo.Clamp(math.Abs(end.X-start.X)*edgeControlRatio, edgeControlMin, edgeControlMax)

	return Path{
		Start:    start,
		Control1: geo.Point{X: start.X + offset, Y: start.Y},
		Control2: geo.Point{X: end.X - offset, Y: end.Y},
		End:      end,
	}, true
}
