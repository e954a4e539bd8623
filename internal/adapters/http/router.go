// Package http is the inbound HTTP adapter: the API router and the server
// that wraps it with body parsing, compression, static files and the SPA
// fallback.
package http

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/jsamuelsen11/todo-spa-service/internal/adapters/http/handlers"
)

// NewRouter registers the health probes and the todo API. The result is
// meant to be handed to NewServer, which mounts it at the root. HEAD is
// answered by the GET handler of the same route.
func NewRouter(todoHandler *handlers.TodoHandler, healthHandler *handlers.HealthHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimw.GetHead)

	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Route("/api/todos", func(r chi.Router) {
		r.Get("/", todoHandler.ListTodos)
		r.Post("/", todoHandler.CreateTodo)
		r.Get("/{id}", todoHandler.GetTodo)
		r.Put("/{id}", todoHandler.UpdateTodo)
		r.Patch("/{id}", todoHandler.UpdateTodo)
		r.Delete("/{id}", todoHandler.DeleteTodo)
	})

	return r
}
