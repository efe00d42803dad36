package handlers

import (
	"net/http"
	"strings"

	"taskmanager/internal/models"
)

// ListCategories returns the known categories.
func (h *Handlers) ListCategories(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.tasks.Categories())
}

// CreateCategory registers a new category. Adding an existing name is not an error.
func (h *Handlers) CreateCategory(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, "invalid form data")
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	if err := models.ValidateCategoryName(name); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.tasks.AddCategory(r.Context(), name); err != nil {
		respondServerError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, h.tasks.Categories())
}
