package geo

// Box is an axis-aligned rectangle anchored at its top-left corner.
type Box struct {
	TopLeft Point   `json:"topLeft"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
}

// NewBox returns a box with the given top-left corner and dimensions.
func NewBox(tl Point, width, height float64) Box {
	return Box{TopLeft: tl, Width: width, Height: height}
}

// Right returns the x coordinate of the box's right edge.
func (b Box) Right() float64 {
	return b.TopLeft.X + b.Width
}

// Bottom returns the y coordinate of the box's bottom edge.
func (b Box) Bottom() float64 {
	return b.TopLeft.Y + b.Height
}

// Center returns the box's center point.
func (b Box) Center() Point {
	return Point{X: b.TopLeft.X + b.Width/2, Y: b.TopLeft.Y + b.Height/2}
}

// Contains reports whether p lies inside the box (edges inclusive).
func (b Box) Contains(p Point) bool {
	return p.X >= b.TopLeft.X && p.X <= b.Right() &&
		p.Y >= b.TopLeft.Y && p.Y <= b.Bottom()
}

// Within reports whether b lies entirely inside outer (edges inclusive).
func (b Box) Within(outer Box) bool {
	return b.TopLeft.X >= outer.TopLeft.X && b.Right() <= outer.Right() &&
		b.TopLeft.Y >= outer.TopLeft.Y && b.Bottom() <= outer.Bottom()
}
