package viewport

import (
	"github.com/go-chi/chi/v5"

	"github.com/lineaview-labs/lineaview/internal/ui/session"
)

// SetupRoutes registers the viewport feature routes.
func SetupRoutes(router chi.Router, sessions *session.Registry) {
	handlers := NewHandlers(sessions)

	router.Route("/api/viewport", func(r chi.Router) {
		r.Get("/scene", handlers.Scene)
		r.Post("/events", handlers.Events)
	})
}
