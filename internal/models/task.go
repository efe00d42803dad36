package models

import (
	"errors"
	"strings"
	"time"
)

// Priority is the urgency level of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is one of the known priority levels.
func (p Priority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// Rank returns a numeric value for sorting by priority.
// Higher numbers indicate higher priority.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// Task represents a single to-do item.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Completed   bool       `json:"completed"`
	Priority    Priority   `json:"priority"`
	Category    string     `json:"category"`
	Tags        []string   `json:"tags"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
}

// TaskDraft holds the caller-supplied fields of a new task. The store
// assigns the ID and timestamps.
type TaskDraft struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Completed   bool       `json:"completed"`
	Priority    Priority   `json:"priority"`
	Category    string     `json:"category"`
	Tags        []string   `json:"tags"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
}

// Validate checks the fields a form is expected to supply. The task store
// itself accepts any draft.
func (d *TaskDraft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return errors.New("title is required")
	}

	if !d.Priority.Valid() {
		return errors.New("priority must be 'high', 'medium', or 'low'")
	}

	return nil
}

// Clone returns a deep copy of the task.
func (t Task) Clone() Task {
	c := t
	if t.Tags != nil {
		c.Tags = append([]string(nil), t.Tags...)
	}
	if t.DueDate != nil {
		due := *t.DueDate
		c.DueDate = &due
	}
	return c
}

// IsOverdueAt returns true if the task is not completed and its due date is before now.
func (t *Task) IsOverdueAt(now time.Time) bool {
	if t.Completed || t.DueDate == nil {
		return false
	}
	return t.DueDate.Before(now)
}

// HasTag reports whether tag is one of the task's tags.
func (t *Task) HasTag(tag string) bool {
	for _, tg := range t.Tags {
		if tg == tag {
			return true
		}
	}
	return false
}

// TaskPatch is a partial update. Nil fields keep the existing value.
// A non-nil Tags slice, even an empty one, replaces the tags.
type TaskPatch struct {
	Title        *string    `json:"title,omitempty"`
	Description  *string    `json:"description,omitempty"`
	Completed    *bool      `json:"completed,omitempty"`
	Priority     *Priority  `json:"priority,omitempty"`
	Category     *string    `json:"category,omitempty"`
	Tags         []string   `json:"tags,omitempty"`
	DueDate      *time.Time `json:"dueDate,omitempty"`
	ClearDueDate bool       `json:"clearDueDate,omitempty"`
}

// Apply merges the patch over t field by field. UpdatedAt is left to the caller.
func (p TaskPatch) Apply(t *Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.Tags != nil {
		t.Tags = append([]string{}, p.Tags...)
	}
	switch {
	case p.ClearDueDate:
		t.DueDate = nil
	case p.DueDate != nil:
		due := *p.DueDate
		t.DueDate = &due
	}
}

// TaskFilter narrows the displayed task list. Zero-valued fields are inactive
// and all active fields must match.
type TaskFilter struct {
	Category  string   `json:"category,omitempty"`
	Priority  Priority `json:"priority,omitempty"`
	Completed *bool    `json:"completed,omitempty"`
	Search    string   `json:"search,omitempty"`
	Tag       string   `json:"tag,omitempty"`
}

// Clone returns a copy of the filter that shares no pointers with f.
func (f TaskFilter) Clone() TaskFilter {
	c := f
	if f.Completed != nil {
		done := *f.Completed
		c.Completed = &done
	}
	return c
}

// IsEmpty reports whether the filter matches every task.
func (f TaskFilter) IsEmpty() bool {
	return f.Category == "" && f.Priority == "" && f.Completed == nil && f.Search == "" && f.Tag == ""
}

// Matches reports whether t satisfies every active predicate of the filter.
func (f TaskFilter) Matches(t *Task) bool {
	if f.Category != "" && t.Category != f.Category {
		return false
	}
	if f.Priority != "" && t.Priority != f.Priority {
		return false
	}
	if f.Completed != nil && t.Completed != *f.Completed {
		return false
	}
	if f.Search != "" {
		search := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(t.Title), search) &&
			!strings.Contains(strings.ToLower(t.Description), search) {
			return false
		}
	}
	if f.Tag != "" && !t.HasTag(f.Tag) {
		return false
	}
	return true
}

// TaskStats aggregates counts over the whole task collection.
type TaskStats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
	Overdue   int `json:"overdue"`
}
