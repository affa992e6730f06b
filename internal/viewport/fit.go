package viewport

import (
	"github.com/lineaview-labs/lineaview/internal/lineage"
	"github.com/lineaview-labs/lineaview/pkg/geo"
)

// Fit constants. The scale ceiling of 0.9 is intentional: never zoom past
// 90% even when content would allow more, to keep a visual margin.
const (
	// FitPadding is the screen-space margin kept between the viewport edge
	// and the fitted content.
	FitPadding = 60.0

	MinFitScale = 0.15
	MaxFitScale = 0.9
)

// Size is the pixel size of the rendering surface, read on demand from the
// rendering layer.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// IsZero reports whether either dimension is not yet laid out.
func (s Size) IsZero() bool {
	return s.Width <= 0 || s.Height <= 0
}

// FitTransform derives a transform that makes all content visible inside the
// viewport with margin. Returns false when the viewport has no size yet; the
// caller is expected to retry once layout settles.
func FitTransform(nodes []lineage.Node, expanded ExpandedSet, viewport Size) (Transform, bool) {
	if viewport.IsZero() {
		return Transform{}, false
	}

	bounds := ComputeBounds(nodes, expanded)

	availableWidth := viewport.Width - 2*FitPadding
	availableHeight := viewport.Height - 2*FitPadding

	scale := geo.Clamp(
		min(availableWidth/bounds.Width, availableHeight/bounds.Height),
		MinFitScale, MaxFitScale,
	)

	// Center the scaled content box inside the viewport.
	x := (viewport.Width-bounds.Width*scale)/2 - bounds.MinX*scale
	y := (viewport.Height-bounds.Height*scale)/2 - bounds.MinY*scale

	// Centering math can push content outside the margin for extreme aspect
	// ratios; re-apply the padding floor.
	x = max(x, FitPadding-bounds.MinX*scale)
	y = max(y, FitPadding-bounds.MinY*scale)

	return Transform{X: x, Y: y, Scale: scale}, true
}
