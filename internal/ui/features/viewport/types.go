package viewport

import (
	"github.com/lineaview-labs/lineaview/internal/viewport"
	"github.com/lineaview-labs/lineaview/pkg/geo"
)

// Event is one interaction event posted by the client. Type selects the
// operation; the other fields are read as that operation requires.
type Event struct {
	Type string `json:"type"`

	// Point is the pointer position in screen space (pointerdown,
	// pointermove, wheel).
	Point *geo.Point `json:"point,omitempty"`

	// DeltaY is the wheel delta (wheel).
	DeltaY float64 `json:"deltaY,omitempty"`

	// Node is the target node id (toggle).
	Node string `json:"node,omitempty"`

	// Column is the clicked column name (select).
	Column string `json:"column,omitempty"`

	// Viewport is the client's current surface size, included so deferred
	// fits can resolve.
	Viewport *viewport.Size `json:"viewport,omitempty"`
}

// Event types accepted by the events endpoint.
const (
	EventPointerDown = "pointerdown"
	EventPointerMove = "pointermove"
	EventPointerUp   = "pointerup"
	EventWheel       = "wheel"
	EventZoomIn      = "zoomin"
	EventZoomOut     = "zoomout"
	EventReset       = "reset"
	EventFit         = "fit"
	EventToggle      = "toggle"
	EventSelect      = "select"
)
