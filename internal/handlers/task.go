package handlers

import (
	"errors"
	"net/http"
	"strings"

	"taskmanager/internal/models"
)

// ListTasks returns the tasks matching the active filter, in display order.
func (h *Handlers) ListTasks(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.tasks.FilteredTasks())
}

// ListAllTasks returns every task in storage order, ignoring the filter.
func (h *Handlers) ListAllTasks(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.tasks.Tasks())
}

// GetTask returns a single task.
func (h *Handlers) GetTask(w http.ResponseWriter, r *http.Request) {
	task, ok := h.tasks.Task(taskID(r))
	if !ok {
		respondError(w, http.StatusNotFound, "task not found")
		return
	}

	respondJSON(w, http.StatusOK, task)
}

// CreateTask creates a new task from form values.
func (h *Handlers) CreateTask(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, "invalid form data")
		return
	}

	dueDate, err := parseDate(r.FormValue("due_date"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid due_date")
		return
	}

	draft := models.TaskDraft{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Completed:   r.FormValue("completed") == "true",
		Priority:    models.Priority(r.FormValue("priority")),
		Category:    r.FormValue("category"),
		Tags:        parseTags(r.FormValue("tags")),
		DueDate:     dueDate,
	}

	if err := draft.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	task, err := h.tasks.AddTask(r.Context(), draft)
	if err != nil {
		respondServerError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, task)
}

// UpdateTask applies the submitted form fields to an existing task. Fields
// absent from the form are left unchanged; an empty due_date clears it.
func (h *Handlers) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id := taskID(r)
	if _, ok := h.tasks.Task(id); !ok {
		respondError(w, http.StatusNotFound, "task not found")
		return
	}

	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, "invalid form data")
		return
	}

	patch, err := patchFromForm(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.tasks.UpdateTask(r.Context(), id, patch); err != nil {
		respondServerError(w, err)
		return
	}

	task, ok := h.tasks.Task(id)
	if !ok {
		respondError(w, http.StatusNotFound, "task not found")
		return
	}
	respondJSON(w, http.StatusOK, task)
}

func patchFromForm(r *http.Request) (models.TaskPatch, error) {
	var patch models.TaskPatch
	form := r.PostForm

	if form.Has("title") {
		title := form.Get("title")
		if strings.TrimSpace(title) == "" {
			return patch, errors.New("title is required")
		}
		patch.Title = &title
	}
	if form.Has("description") {
		description := form.Get("description")
		patch.Description = &description
	}
	if form.Has("completed") {
		completed := form.Get("completed") == "true"
		patch.Completed = &completed
	}
	if form.Has("priority") {
		priority := models.Priority(form.Get("priority"))
		if !priority.Valid() {
			return patch, errors.New("priority must be 'high', 'medium', or 'low'")
		}
		patch.Priority = &priority
	}
	if form.Has("category") {
		category := form.Get("category")
		patch.Category = &category
	}
	if form.Has("tags") {
		patch.Tags = parseTags(form.Get("tags"))
	}
	if form.Has("due_date") {
		dueDate, err := parseDate(form.Get("due_date"))
		if err != nil {
			return patch, errors.New("invalid due_date")
		}
		if dueDate == nil {
			patch.ClearDueDate = true
		} else {
			patch.DueDate = dueDate
		}
	}

	return patch, nil
}

// DeleteTask deletes a task.
func (h *Handlers) DeleteTask(w http.ResponseWriter, r *http.Request) {
	if err := h.tasks.DeleteTask(r.Context(), taskID(r)); err != nil {
		respondServerError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// ToggleTask toggles the completion status of a task.
func (h *Handlers) ToggleTask(w http.ResponseWriter, r *http.Request) {
	id := taskID(r)
	if _, ok := h.tasks.Task(id); !ok {
		respondError(w, http.StatusNotFound, "task not found")
		return
	}

	if err := h.tasks.ToggleTaskComplete(r.Context(), id); err != nil {
		respondServerError(w, err)
		return
	}

	// Return the updated task
	task, ok := h.tasks.Task(id)
	if !ok {
		respondError(w, http.StatusNotFound, "task not found")
		return
	}
	respondJSON(w, http.StatusOK, task)
}
