package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get("/health", h.health)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	// routes behind JWT bearer authentication
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Put("/api/auth/me", h.updateAccount)
		r.Delete("/api/auth/me", h.deleteAccount)

		r.Route("/api/projects", func(r chi.Router) {
			r.Get("/", h.listProjects)
			r.Post("/", h.createProject)
			r.Put("/{id}", h.updateProject)
			r.Delete("/{id}", h.deleteProject)
		})

		r.Post("/api/github", h.importRepo)
		r.Get("/api/github/check/{owner}/{repo}", h.checkRepo)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
