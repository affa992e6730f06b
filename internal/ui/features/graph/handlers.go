// Package graph serves the lineage graph data to the UI.
package graph

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/lineaview-labs/lineaview/internal/lineage"
)

// SnapshotSource supplies the current lineage snapshot.
type SnapshotSource interface {
	Current() *lineage.Snapshot
}

// Handlers provides HTTP handlers for the graph feature.
type Handlers struct {
	store SnapshotSource
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(store SnapshotSource) *Handlers {
	return &Handlers{store: store}
}

// Graph returns the full lineage snapshot.
func (h *Handlers) Graph(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.store.Current())
}

// Impact returns the upstream and downstream tables of one table.
func (h *Handlers) Impact(w http.ResponseWriter, r *http.Request) {
	table := chi.URLParam(r, "table")
	snap := h.store.Current()

	if snap.NodeByID(table) == nil {
		http.Error(w, "table not found", http.StatusNotFound)
		return
	}

	depth, _ := strconv.Atoi(r.URL.Query().Get("depth"))
	upstream, downstream := lineage.Impact(snap, table, depth)

	writeJSON(w, ImpactResponse{
		Table:         table,
		Upstream:      upstream,
		Downstream:    downstream,
		TotalImpacted: len(upstream) + len(downstream),
	})
}

// ImpactResponse is the impact analysis payload.
type ImpactResponse struct {
	Table         string   `json:"table"`
	Upstream      []string `json:"upstream"`
	Downstream    []string `json:"downstream"`
	TotalImpacted int      `json:"totalImpacted"`
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
