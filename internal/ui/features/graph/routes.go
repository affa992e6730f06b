package graph

import "github.com/go-chi/chi/v5"

// SetupRoutes registers the graph feature routes.
func SetupRoutes(router chi.Router, store SnapshotSource) {
	handlers := NewHandlers(store)

	router.Route("/api/lineage", func(r chi.Router) {
		r.Get("/graph", handlers.Graph)
		r.Get("/impact/{table}", handlers.Impact)
	})
}
