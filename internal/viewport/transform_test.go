package viewport

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lineaview-labs/lineaview/pkg/geo"
)

const tolerance = 1e-9

func assertPointNear(t *testing.T, expected, actual geo.Point) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, tolerance)
	assert.InDelta(t, expected.Y, actual.Y, tolerance)
}

func TestRoundTrip(t *testing.T) {
	transforms := []Transform{
		Identity(),
		{X: 120, Y: -45, Scale: 0.5},
		{X: -300.25, Y: 999, Scale: 3.0},
		{X: 0, Y: 0, Scale: 0.1},
	}
	points := []geo.Point{
		{X: 0, Y: 0},
		{X: 123.456, Y: -789.1},
		{X: -1e6, Y: 1e6},
	}

	for _, tr := range transforms {
		for _, p := range points {
			assertPointNear(t, p, tr.ToContent(tr.ToScreen(p)))
			assertPointNear(t, p, tr.ToScreen(tr.ToContent(p)))
		}
	}
}

func TestZoomAtAnchorInvariance(t *testing.T) {
	tr := Transform{X: 50, Y: -20, Scale: 0.8}
	anchor := geo.NewPoint(400, 300)

	before := tr.ToContent(anchor)
	zoomed := tr.zoomAt(anchor, 1.6)

	// The content point that was under the anchor maps back to it.
	assertPointNear(t, anchor, zoomed.ToScreen(before))
	assert.InDelta(t, 1.6, zoomed.Scale, tolerance)
}

func TestZoomAtClampsScale(t *testing.T) {
	tr := Identity()

	assert.Equal(t, MaxScale, tr.zoomAt(geo.NewPoint(0, 0), 100).Scale)
	assert.Equal(t, MinScale, tr.zoomAt(geo.NewPoint(0, 0), 0.0001).Scale)

	// Zero or negative scale is structurally impossible.
	assert.Equal(t, MinScale, tr.zoomAt(geo.NewPoint(10, 10), 0).Scale)
	assert.Equal(t, MinScale, tr.zoomAt(geo.NewPoint(10, 10), -5).Scale)
}

func TestBoxToScreen(t *testing.T) {
	tr := Transform{X: 10, Y: 20, Scale: 2}
	box := tr.BoxToScreen(geo.NewBox(geo.NewPoint(5, 5), 100, 50))

	assert.Equal(t, geo.NewPoint(20, 30), box.TopLeft)
	assert.Equal(t, 200.0, box.Width)
	assert.Equal(t, 100.0, box.Height)
}
