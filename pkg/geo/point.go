// Package geo provides the 2D geometry primitives used by the viewport engine.
//
// All coordinates are float64. Content space is the fixed coordinate system in
// which node positions are defined; screen space is the pixel coordinate system
// of the rendering surface after the viewport transform is applied.
package geo

import "fmt"

// Point is a location in either content or screen space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NewPoint returns a point at (x, y).
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p minus q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p with both coordinates multiplied by f.
func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

func (p Point) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", p.X, p.Y)
}
