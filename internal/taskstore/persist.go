package taskstore

import (
	"context"
	"encoding/json"
	"fmt"

	"taskmanager/internal/models"
)

// save writes the full task collection and category list. Callers hold s.mu.
func (s *TaskStore) save(ctx context.Context) error {
	tasks, err := json.Marshal(s.tasks)
	if err != nil {
		return fmt.Errorf("%w: encode tasks: %v", ErrPersist, err)
	}
	categories, err := json.Marshal(s.categories)
	if err != nil {
		return fmt.Errorf("%w: encode categories: %v", ErrPersist, err)
	}

	if err := s.backend.Set(ctx, TasksKey, string(tasks)); err != nil {
		s.logger.Error("failed to save tasks", "error", err)
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	if err := s.backend.Set(ctx, CategoriesKey, string(categories)); err != nil {
		s.logger.Error("failed to save categories", "error", err)
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}

	return nil
}

// LoadTasks replaces the in-memory tasks and categories with the persisted
// copies. An absent or empty entry leaves the corresponding state unchanged. Nothing
// is replaced when either entry fails to decode.
func (s *TaskStore) LoadTasks(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rawTasks, hasTasks, err := s.backend.Get(ctx, TasksKey)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", TasksKey, err)
	}
	rawCategories, hasCategories, err := s.backend.Get(ctx, CategoriesKey)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", CategoriesKey, err)
	}

	// An empty entry counts as absent.
	hasTasks = hasTasks && rawTasks != ""
	hasCategories = hasCategories && rawCategories != ""

	var tasks []models.Task
	if hasTasks {
		if err := json.Unmarshal([]byte(rawTasks), &tasks); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrCorruptData, TasksKey, err)
		}
	}

	var categories []string
	if hasCategories {
		if err := json.Unmarshal([]byte(rawCategories), &categories); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrCorruptData, CategoriesKey, err)
		}
	}

	if hasTasks {
		if tasks == nil {
			tasks = []models.Task{}
		}
		for i := range tasks {
			if tasks[i].Tags == nil {
				tasks[i].Tags = []string{}
			}
		}
		s.tasks = tasks
	}
	if hasCategories {
		s.categories = dedupe(categories)
	}

	s.logger.Info("tasks loaded", "tasks", len(s.tasks), "categories", len(s.categories))
	return nil
}
