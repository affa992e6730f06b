package viewport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lineaview-labs/lineaview/internal/lineage"
	"github.com/lineaview-labs/lineaview/pkg/geo"
)

func TestRoutePathAnchors(t *testing.T) {
	from := positioned("a", 0, 0, "c1", "c2", "c3")
	to := positioned("b", 600, 200)

	path, ok := RoutePath(&from, &to)
	require.True(t, ok)

	// Right-center header anchor of the source, left-center of the target.
	assert.Equal(t, geo.NewPoint(NodeWidth, HeaderHeight/2), path.Start)
	assert.Equal(t, geo.NewPoint(600, 200+HeaderHeight/2), path.End)

	// Control points extend horizontally from the anchors.
	assert.Equal(t, path.Start.Y, path.Control1.Y)
	assert.Equal(t, path.End.Y, path.Control2.Y)
	assert.Greater(t, path.Control1.X, path.Start.X)
	assert.Less(t, path.Control2.X, path.End.X)
}

func TestRoutePathAnchorIgnoresExpandState(t *testing.T) {
	// Edges always anchor at the header row, never at column rows, so the
	// path is independent of expansion: RoutePath takes no expand state at
	// all. The anchor offset is the header half-height.
	n := positioned("a", 0, 0, "c1", "c2", "c3", "c4", "c5", "c6")
	other := positioned("b", 500, 0)

	path, ok := RoutePath(&n, &other)
	require.True(t, ok)
	assert.Equal(t, HeaderHeight/2, path.Start.Y)
}

func TestRoutePathControlOffsetClamp(t *testing.T) {
	tests := []struct {
		name     string
		toX      float64
		expected float64
	}{
		{"close nodes use minimum offset", NodeWidth + 50, edgeControlMin},
		{"mid distance scales with gap", NodeWidth + 300, 300 * edgeControlRatio},
		{"far nodes cap at maximum", NodeWidth + 5000, edgeControlMax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from := positioned("a", 0, 0)
			to := positioned("b", tt.toX, 0)

			path, ok := RoutePath(&from, &to)
			require.True(t, ok)
			assert.InDelta(t, tt.expected, path.Control1.X-path.Start.X, tolerance)
		})
	}
}

func TestRoutePathMissingNode(t *testing.T) {
	n := positioned("a", 0, 0)
	detached := lineage.Node{ID: "detached"}

	_, ok := RoutePath(&n, nil)
	assert.False(t, ok)

	_, ok = RoutePath(nil, &n)
	assert.False(t, ok)

	_, ok = RoutePath(&n, &detached)
	assert.False(t, ok)
}

func TestPathSVG(t *testing.T) {
	p := Path{
		Start:    geo.NewPoint(0, 0),
		Control1: geo.NewPoint(80, 0),
		Control2: geo.NewPoint(120, 100),
		End:      geo.NewPoint(200, 100),
	}

	assert.Equal(t, "M 0.00 0.00 C 80.00 0.00, 120.00 100.00, 200.00 100.00", p.SVG())
}
