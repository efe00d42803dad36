package handlers

import (
	"net/http"
	"strconv"

	"taskmanager/internal/models"
)

// GetFilter returns the active filter.
func (h *Handlers) GetFilter(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.tasks.Filter())
}

// SetFilter replaces the active filter with the submitted form values.
// An empty completed value leaves completion unfiltered.
func (h *Handlers) SetFilter(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, "invalid form data")
		return
	}

	filter := models.TaskFilter{
		Category: r.FormValue("category"),
		Priority: models.Priority(r.FormValue("priority")),
		Search:   r.FormValue("search"),
		Tag:      r.FormValue("tag"),
	}

	if filter.Priority != "" && !filter.Priority.Valid() {
		respondError(w, http.StatusBadRequest, "priority must be 'high', 'medium', or 'low'")
		return
	}

	if v := r.FormValue("completed"); v != "" {
		completed, err := strconv.ParseBool(v)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid completed")
			return
		}
		filter.Completed = &completed
	}

	h.tasks.SetFilter(filter)
	respondJSON(w, http.StatusOK, h.tasks.FilteredTasks())
}

// ClearFilter resets the active filter.
func (h *Handlers) ClearFilter(w http.ResponseWriter, r *http.Request) {
	h.tasks.ClearFilter()
	respondJSON(w, http.StatusOK, h.tasks.FilteredTasks())
}
