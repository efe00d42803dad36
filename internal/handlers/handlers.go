package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"taskmanager/internal/taskstore"
)

// Handlers holds the HTTP handlers and their dependencies.
type Handlers struct {
	tasks *taskstore.TaskStore
}

// New creates a new Handlers instance.
func New(tasks *taskstore.TaskStore) *Handlers {
	return &Handlers{tasks: tasks}
}

// taskID extracts the task ID from URL parameters.
func taskID(r *http.Request) string {
	return chi.URLParam(r, "id")
}

// parseDate parses a date string in YYYY-MM-DD format. An empty string yields nil.
func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// parseTags splits a comma-separated tag list, dropping blank entries.
func parseTags(s string) []string {
	tags := []string{}
	for _, tag := range strings.Split(s, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// respondError sends an error response.
func respondError(w http.ResponseWriter, code int, message string) {
	w.WriteHeader(code)
	w.Write([]byte(message))
}

func respondServerError(w http.ResponseWriter, err error) {
	log.Printf("internal server error: %v", err)
	respondError(w, http.StatusInternalServerError, "internal server error")
}

// respondJSON encodes data as the response body.
func respondJSON(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}
