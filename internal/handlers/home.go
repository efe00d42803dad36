package handlers

import (
	"net/http"
)

// Home renders the dashboard with stats, categories, tags and the filtered task list.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.tasks.Snapshot())
}

// Stats returns aggregate task counts.
func (h *Handlers) Stats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.tasks.TaskStats())
}

// Tags returns every tag in use.
func (h *Handlers) Tags(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.tasks.AllTags())
}

// LoadDemo seeds sample tasks into an empty store.
func (h *Handlers) LoadDemo(w http.ResponseWriter, r *http.Request) {
	if err := h.tasks.LoadDemoData(r.Context()); err != nil {
		respondServerError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, h.tasks.TaskStats())
}
