package taskstore

import (
	"context"

	"taskmanager/internal/models"
)

// AddTask creates a task from draft, appends it and persists. The draft is
// not validated.
func (s *TaskStore) AddTask(ctx context.Context, draft models.TaskDraft) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task := s.addTaskLocked(draft)
	return task, s.save(ctx)
}

// addTaskLocked appends a task built from draft without persisting. Callers hold s.mu.
func (s *TaskStore) addTaskLocked(draft models.TaskDraft) models.Task {
	now := s.now()
	task := models.Task{
		ID:          s.newID(),
		Title:       draft.Title,
		Description: draft.Description,
		Completed:   draft.Completed,
		Priority:    draft.Priority,
		Category:    draft.Category,
		Tags:        append([]string{}, draft.Tags...),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if draft.DueDate != nil {
		due := *draft.DueDate
		task.DueDate = &due
	}

	s.tasks = append(s.tasks, task)
	s.logger.Debug("task added", "id", task.ID, "title", task.Title)

	return task.Clone()
}

// UpdateTask merges patch over the task with the given id and persists.
// UpdatedAt advances even when the patch changes nothing. An unknown id is a no-op.
func (s *TaskStore) UpdateTask(ctx context.Context, id string, patch models.TaskPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil
	}

	task := &s.tasks[i]
	patch.Apply(task)
	task.UpdatedAt = s.touch(task)
	s.logger.Debug("task updated", "id", id)

	return s.save(ctx)
}

// DeleteTask removes the task with the given id. An unknown id is a no-op
// and does not persist.
func (s *TaskStore) DeleteTask(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil
	}

	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	s.logger.Debug("task deleted", "id", id)

	return s.save(ctx)
}

// ToggleTaskComplete flips the completed flag of the task with the given id.
// An unknown id is a no-op.
func (s *TaskStore) ToggleTaskComplete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil
	}

	task := &s.tasks[i]
	task.Completed = !task.Completed
	task.UpdatedAt = s.touch(task)
	s.logger.Debug("task toggled", "id", id, "completed", task.Completed)

	return s.save(ctx)
}

// SetFilter replaces the active filter.
func (s *TaskStore) SetFilter(filter models.TaskFilter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = filter.Clone()
}

// ClearFilter resets the active filter so every task matches.
func (s *TaskStore) ClearFilter() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = models.TaskFilter{}
}

// AddCategory appends name to the known categories unless it is already
// present, persisting only when it was added.
func (s *TaskStore) AddCategory(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if models.ContainsCategory(s.categories, name) {
		return nil
	}

	s.categories = append(s.categories, name)
	s.logger.Debug("category added", "name", name)

	return s.save(ctx)
}

// LoadDemoData seeds sample tasks when the collection is empty and persists
// once. A non-empty collection is left untouched.
func (s *TaskStore) LoadDemoData(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.tasks) > 0 {
		return nil
	}

	for _, draft := range models.DemoTasks(s.now()) {
		s.addTaskLocked(draft)
	}
	return s.save(ctx)
}
