// Package viewport provides the HTTP surface of the viewport engine.
package viewport

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/lineaview-labs/lineaview/internal/ui/session"
	"github.com/lineaview-labs/lineaview/internal/viewport"
)

// Handlers provides HTTP handlers for the viewport feature.
type Handlers struct {
	sessions *session.Registry
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(sessions *session.Registry) *Handlers {
	return &Handlers{sessions: sessions}
}

// Scene returns the current frame for the session's engine. The client
// reports its surface size via width/height query params.
func (h *Handlers) Scene(w http.ResponseWriter, r *http.Request) {
	eng, err := h.sessions.Engine(w, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	size := viewport.Size{
		Width:  queryFloat(r, "width"),
		Height: queryFloat(r, "height"),
	}
	writeJSON(w, eng.Scene(size))
}

// Events applies one interaction event to the session's engine and returns
// the resulting frame.
func (h *Handlers) Events(w http.ResponseWriter, r *http.Request) {
	eng, err := h.sessions.Engine(w, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	var ev Event
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		http.Error(w, "invalid event payload", http.StatusBadRequest)
		return
	}

	if ev.Viewport != nil {
		eng.SetViewport(*ev.Viewport)
	}

	if err := apply(eng, ev); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var size viewport.Size
	if ev.Viewport != nil {
		size = *ev.Viewport
	}
	writeJSON(w, eng.Scene(size))
}

// apply dispatches one event to the engine.
func apply(eng *viewport.Engine, ev Event) error {
	switch ev.Type {
	case EventPointerDown:
		if ev.Point == nil {
			return fmt.Errorf("%s requires a point", ev.Type)
		}
		eng.PointerDown(*ev.Point)
	case EventPointerMove:
		if ev.Point == nil {
			return fmt.Errorf("%s requires a point", ev.Type)
		}
		eng.PointerMove(*ev.Point)
	case EventPointerUp:
		eng.PointerUp()
	case EventWheel:
		if ev.Point == nil {
			return fmt.Errorf("%s requires a point", ev.Type)
		}
		eng.Wheel(*ev.Point, ev.DeltaY)
	case EventZoomIn:
		eng.ZoomIn()
	case EventZoomOut:
		eng.ZoomOut()
	case EventReset:
		eng.Reset()
	case EventFit:
		eng.Fit()
	case EventToggle:
		if ev.Node == "" {
			return fmt.Errorf("%s requires a node", ev.Type)
		}
		eng.Toggle(ev.Node)
	case EventSelect:
		eng.SelectColumn(ev.Column)
	default:
		return fmt.Errorf("unknown event type %q", ev.Type)
	}
	return nil
}

func queryFloat(r *http.Request, key string) float64 {
	v, err := strconv.ParseFloat(r.URL.Query().Get(key), 64)
	if err != nil {
		return 0
	}
	return v
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
