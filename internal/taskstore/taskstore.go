// Package taskstore owns the task collection, the known categories and the
// active filter, and keeps them in step with a key-value backend.
package taskstore

import (
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"taskmanager/internal/models"
	"taskmanager/internal/store"
)

// Keys under which the task collection and category list are persisted.
const (
	TasksKey      = "task-manager-tasks"
	CategoriesKey = "task-manager-categories"
)

var (
	// ErrPersist wraps a backend failure while saving. In-memory state has
	// already been mutated when it is returned.
	ErrPersist = errors.New("persist tasks")
	// ErrCorruptData wraps a stored payload that could not be decoded.
	ErrCorruptData = errors.New("corrupt stored data")
)

// TaskStore is the single shared state object for a session. Readers always
// observe the state left by the last completed mutator.
type TaskStore struct {
	mu         sync.RWMutex
	backend    store.Store
	now        func() time.Time
	newID      func() string
	logger     *slog.Logger
	tasks      []models.Task
	filter     models.TaskFilter
	categories []string
}

// Option configures a TaskStore.
type Option func(*TaskStore)

// WithClock overrides the time source used for timestamps and overdue checks.
func WithClock(now func() time.Time) Option {
	return func(s *TaskStore) { s.now = now }
}

// WithIDGenerator overrides task ID generation.
func WithIDGenerator(newID func() string) Option {
	return func(s *TaskStore) { s.newID = newID }
}

// WithLogger sets the logger for persistence diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *TaskStore) { s.logger = logger }
}

// WithCategories replaces the default category set.
func WithCategories(categories []string) Option {
	return func(s *TaskStore) { s.categories = dedupe(categories) }
}

// New creates an empty TaskStore persisting to backend.
func New(backend store.Store, opts ...Option) *TaskStore {
	s := &TaskStore{
		backend:    backend,
		now:        time.Now,
		newID:      uuid.NewString,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		tasks:      []models.Task{},
		categories: append([]string(nil), models.DefaultCategories...),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Tasks returns the raw collection in insertion order.
func (s *TaskStore) Tasks() []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Task, len(s.tasks))
	for i, t := range s.tasks {
		out[i] = t.Clone()
	}
	return out
}

// Task looks up a single task by id.
func (s *TaskStore) Task(id string) (models.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.tasks[i].Clone(), true
	}
	return models.Task{}, false
}

// Filter returns the active filter.
func (s *TaskStore) Filter() models.TaskFilter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter.Clone()
}

// Categories returns the known categories in insertion order.
func (s *TaskStore) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.categories...)
}

func (s *TaskStore) indexOf(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// touch returns the timestamp for a mutation of t, never earlier than its creation.
func (s *TaskStore) touch(t *models.Task) time.Time {
	now := s.now()
	if now.Before(t.CreatedAt) {
		return t.CreatedAt
	}
	return now
}

func dedupe(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if !models.ContainsCategory(out, v) {
			out = append(out, v)
		}
	}
	return out
}
