package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Router returns the application routes wrapped in the standard middleware.
func (h *Handlers) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))

	r.Get("/", h.Home)

	// Task API routes
	r.Get("/api/tasks", h.ListTasks)
	r.Get("/api/tasks/all", h.ListAllTasks)
	r.Post("/api/tasks", h.CreateTask)
	r.Get("/api/tasks/{id}", h.GetTask)
	r.Put("/api/tasks/{id}", h.UpdateTask)
	r.Delete("/api/tasks/{id}", h.DeleteTask)
	r.Post("/api/tasks/{id}/toggle", h.ToggleTask)

	// Filter API routes
	r.Get("/api/filter", h.GetFilter)
	r.Put("/api/filter", h.SetFilter)
	r.Delete("/api/filter", h.ClearFilter)

	// Category API routes
	r.Get("/api/categories", h.ListCategories)
	r.Post("/api/categories", h.CreateCategory)

	r.Get("/api/stats", h.Stats)
	r.Get("/api/tags", h.Tags)
	r.Post("/api/demo", h.LoadDemo)

	return r
}
