package rest

import (
	"net/http"

	"github.com/dmitrijs2005/todolist/internal/server/metrics"
	"github.com/go-chi/chi/v5"
)

// routes builds the full router: public auth endpoints, the protected
// /api/todos group and the Prometheus scrape endpoint.
func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(s.requestLogger)

	r.Post("/api/signup", s.handleSignup)
	r.Post("/api/login", s.handleLogin)

	r.Group(func(r chi.Router) {
		r.Use(s.authMiddleware)
		r.Use(s.rateLimitMiddleware)

		r.Route("/api/todos", func(r chi.Router) {
			r.Get("/", s.handleListTasks)
			r.Post("/", s.handleCreateTask)
			r.Put("/{id}", s.handleUpdateTask)
			r.Delete("/{id}", s.handleDeleteTask)
		})
	})

	r.Method(http.MethodGet, "/metrics", metrics.Handler(s.gatherer))

	return r
}
