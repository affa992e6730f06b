// Package router sets up HTTP routes for the UI server.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lineaview-labs/lineaview/internal/lineage"
	graphFeature "github.com/lineaview-labs/lineaview/internal/ui/features/graph"
	viewportFeature "github.com/lineaview-labs/lineaview/internal/ui/features/viewport"
	"github.com/lineaview-labs/lineaview/internal/ui/session"
)

// SetupRoutes configures all routes for the UI server.
func SetupRoutes(router chi.Router, store *lineage.Store, sessions *session.Registry) {
	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	graphFeature.SetupRoutes(router, store)
	viewportFeature.SetupRoutes(router, sessions)
}
