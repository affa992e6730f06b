package viewport

import "github.com/lineaview-labs/lineaview/pkg/geo"

// Scale limits for user-driven zoom. Enforced at every mutation site: a
// scale outside this range is structurally impossible, not merely checked
// at input boundaries.
const (
	MinScale = 0.1
	MaxScale = 3.0
)

// Transform maps content space to screen space:
//
//	screen = content*Scale + (X, Y)
type Transform struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Scale float64 `json:"scale"`
}

// Identity returns the identity transform {0, 0, 1}.
func Identity() Transform {
	return Transform{Scale: 1}
}

// ToScreen maps a content-space point to screen space.
func (t Transform) ToScreen(p geo.Point) geo.Point {
	return geo.Point{X: p.X*t.Scale + t.X, Y: p.Y*t.Scale + t.Y}
}

// ToContent maps a screen-space point back to content space.
func (t Transform) ToContent(p geo.Point) geo.Point {
	return geo.Point{X: (p.X - t.X) / t.Scale, Y: (p.Y - t.Y) / t.Scale}
}

// BoxToScreen maps a content-space box to screen space.
func (t Transform) BoxToScreen(b geo.Box) geo.Box {
	return geo.NewBox(t.ToScreen(b.TopLeft), b.Width*t.Scale, b.Height*t.Scale)
}

// zoomAt returns the transform with the clamped new scale, solved so the
// content point under the screen-space anchor stays under it.
func (t Transform) zoomAt(anchor geo.Point, newScale float64) Transform {
	newScale = clampScale(newScale)
	content := t.ToContent(anchor)
	return Transform{
		X:     anchor.X - content.X*newScale,
		Y:     anchor.Y - content.Y*newScale,
		Scale: newScale,
	}
}

func clampScale(s float64) float64 {
	return geo.Clamp(s, MinScale, MaxScale)
}
