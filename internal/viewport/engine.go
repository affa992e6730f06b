package viewport

import (
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/lineaview-labs/lineaview/internal/lineage"
	"github.com/lineaview-labs/lineaview/pkg/geo"
)

// Interaction constants.
const (
	// wheelZoomDivisor converts wheel deltas to an exponential zoom factor:
	// factor = exp(-deltaY/1000).
	wheelZoomDivisor = 1000.0

	// discreteZoomFactor is applied by the zoom-in/out controls, anchored at
	// the viewport center.
	discreteZoomFactor = 1.3

	// DefaultRefitDelay is how long a scheduled re-fit waits for dependent
	// layout to settle before firing.
	DefaultRefitDelay = 50 * time.Millisecond
)

// Mode is the interaction state, exposed so rendering layers can adjust
// cursor style.
type Mode int

// Interaction modes.
const (
	ModeIdle Mode = iota
	ModeDragging
)

func (m Mode) String() string {
	if m == ModeDragging {
		return "dragging"
	}
	return "idle"
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	if string(text) == "dragging" {
		*m = ModeDragging
	} else {
		*m = ModeIdle
	}
	return nil
}

// Config holds configuration for an Engine.
type Config struct {
	// RefitDelay overrides DefaultRefitDelay. Tests use a short delay.
	RefitDelay time.Duration

	Logger *slog.Logger
}

// Engine is the single authoritative owner of all viewport presentation
// state: the transform, the expand set, the selected column and the drag
// state machine. It consumes immutable lineage snapshots and never mutates
// node positions or topology.
//
// All methods are safe for concurrent use; every transform mutation goes
// through the clamped helpers so an out-of-range scale is unreachable.
type Engine struct {
	mu         sync.Mutex
	snap       *lineage.Snapshot
	endpoints  endpointIndex
	expanded   ExpandedSet
	selected   string
	transform  Transform
	mode       Mode
	pressPoint geo.Point // screen point of the active press
	pressPan   geo.Point // (X, Y) snapshot taken at press time
	viewport   Size      // last size reported by the rendering layer
	fitPending bool      // a fit ran against a zero-size viewport and must retry
	refit      *refitScheduler
	logger     *slog.Logger
}

// New creates an engine with an empty snapshot and the identity transform.
func New(cfg Config) *Engine {
	if cfg.RefitDelay == 0 {
		cfg.RefitDelay = DefaultRefitDelay
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}

	e := &Engine{
		snap:      &lineage.Snapshot{},
		endpoints: endpointIndex{},
		expanded:  NewExpandedSet(),
		transform: Identity(),
		logger:    cfg.Logger,
	}
	e.refit = newRefitScheduler(cfg.RefitDelay, e.scheduledRefit)
	return e
}

// Load replaces the current snapshot. All nodes start expanded and the
// selection defaults to the first column of the first node. A deferred
// re-fit is scheduled so the surface can reach its final size first.
func (e *Engine) Load(snap *lineage.Snapshot) {
	if snap == nil {
		snap = &lineage.Snapshot{}
	}

	e.mu.Lock()
	e.snap = snap
	e.endpoints = buildEndpointIndex(snap.Edges)
	e.expanded = NewExpandedSet(snap.NodeIDs()...)
	e.selected = snap.FirstColumn()
	e.mu.Unlock()

	e.logger.Debug("snapshot loaded", "nodes", len(snap.Nodes), "edges", len(snap.Edges))
	e.refit.Schedule()
}

// Close releases the engine's timer resources.
func (e *Engine) Close() {
	e.refit.Stop()
}

// SetViewport records the rendering surface size. If a fit was deferred
// because the surface had no size yet, it runs now.
func (e *Engine) SetViewport(size Size) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.viewport = size
	if e.fitPending && !size.IsZero() {
		e.fitLocked()
	}
}

// PointerDown moves the controller from Idle to Dragging, recording the
// press point and the current translation. A second press while already
// dragging is not a defined input and is ignored.
func (e *Engine) PointerDown(p geo.Point) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.mode == ModeDragging {
		return
	}
	e.mode = ModeDragging
	e.pressPoint = p
	e.pressPan = geo.Point{X: e.transform.X, Y: e.transform.Y}
}

// PointerMove pans by the pointer delta from the press point. Pure
// translation; scale is unchanged. No-op outside a drag.
func (e *Engine) PointerMove(p geo.Point) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.mode != ModeDragging {
		return
	}
	e.transform.X = e.pressPan.X + (p.X - e.pressPoint.X)
	e.transform.Y = e.pressPan.Y + (p.Y - e.pressPoint.Y)
}

// PointerUp ends the drag. It is valid in any state so a release outside
// the surface still terminates the drag: a drag must never get stuck.
func (e *Engine) PointerUp() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.mode = ModeIdle
}

// Wheel zooms by exp(-deltaY/1000), anchored at the pointer's screen
// position so the content under the cursor stays under the cursor. Valid in
// any interaction state.
func (e *Engine) Wheel(p geo.Point, deltaY float64) {
	factor := math.Exp(-deltaY / wheelZoomDivisor)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.transform = e.transform.zoomAt(p, e.transform.Scale*factor)
}

// ZoomIn applies the discrete zoom step anchored at the viewport center.
func (e *Engine) ZoomIn() {
	e.zoomCenter(discreteZoomFactor)
}

// ZoomOut applies the inverse discrete zoom step anchored at the viewport
// center.
func (e *Engine) ZoomOut() {
	e.zoomCenter(1 / discreteZoomFactor)
}

func (e *Engine) zoomCenter(factor float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	center := geo.Point{X: e.viewport.Width / 2, Y: e.viewport.Height / 2}
	e.transform = e.transform.zoomAt(center, e.transform.Scale*factor)
}

// Reset sets the transform to the identity unconditionally.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.transform = Identity()
}

// Fit immediately fits all content into the last known viewport size. With
// a zero-size viewport the fit is deferred until SetViewport reports a real
// size.
func (e *Engine) Fit() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.fitLocked()
}

func (e *Engine) fitLocked() {
	t, ok := FitTransform(e.snap.Nodes, e.expanded, e.viewport)
	if !ok {
		e.fitPending = true
		return
	}
	e.fitPending = false
	e.transform = t
}

// scheduledRefit is the refit scheduler's callback.
func (e *Engine) scheduledRefit() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.fitLocked()
}

// Toggle flips a node's expand state, then schedules a deferred re-fit:
// toggling changes the node's effective height and thus the content bounds.
func (e *Engine) Toggle(nodeID string) {
	e.mu.Lock()
	e.expanded.Toggle(nodeID)
	e.mu.Unlock()
	e.refit.Schedule()
}

// SelectColumn sets the global single column selection.
func (e *Engine) SelectColumn(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.selected = name
}

// Transform returns the current viewport transform.
func (e *Engine) Transform() Transform {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.transform
}

// Mode returns the current interaction mode.
func (e *Engine) Mode() Mode {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mode
}

// Expanded reports whether the node is currently expanded.
func (e *Engine) Expanded(nodeID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.expanded.Has(nodeID)
}

// Selected returns the currently selected column name.
func (e *Engine) Selected() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.selected
}

// IsHighlighted reports whether the given node row matches the selected
// column and appears as an edge endpoint.
func (e *Engine) IsHighlighted(nodeID, column string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.endpoints.highlighted(nodeID, column, e.selected)
}
