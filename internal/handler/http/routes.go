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

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)
	})

	// routes behind the access gate
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/tasks", h.listTasks)
		r.Get("/tasks/all", h.listAllTasks)
		r.Get("/tasks/{task_id}", h.listTasks)
		r.Post("/tasks", h.createTask)
		r.Patch("/tasks/{task_id}", h.performTask)
		r.Delete("/tasks/{task_id}", h.deleteTask)
	})

	return router
}
