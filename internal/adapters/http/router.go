// Package http provides the inbound view API: routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todosync/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	viewHandler *handlers.ViewHandler,
	todoHandler *handlers.TodoHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		// Derived state. Never reaches the remote resource.
		r.Get("/view", viewHandler.GetView)
		r.Get("/stats", viewHandler.GetStats)
		r.Get("/categories", viewHandler.GetCategories)

		// Local intents.
		r.Put("/filters", viewHandler.SetFilters)
		r.Put("/pagination", viewHandler.SetPagination)
		r.Post("/pagination/{nav}", viewHandler.Navigate)

		// Synchronized intents.
		r.Post("/refresh", todoHandler.Refresh)
		r.Post("/todos", todoHandler.CreateTodo)
		r.Patch("/todos/{id}", todoHandler.UpdateTodo)
		r.Delete("/todos/{id}", todoHandler.DeleteTodo)
	})

	return r
}
