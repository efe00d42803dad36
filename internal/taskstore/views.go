package taskstore

import (
	"sort"

	"taskmanager/internal/models"
)

// Snapshot is a consistent view of the store taken under a single read lock.
type Snapshot struct {
	Stats      models.TaskStats  `json:"stats"`
	Categories []string          `json:"categories"`
	Tags       []string          `json:"tags"`
	Filter     models.TaskFilter `json:"filter"`
	Tasks      []models.Task     `json:"tasks"`
}

// Snapshot returns the derived views and the active filter as of one moment.
func (s *TaskStore) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		Stats:      s.statsLocked(),
		Categories: append([]string(nil), s.categories...),
		Tags:       s.tagsLocked(),
		Filter:     s.filter.Clone(),
		Tasks:      s.filteredLocked(),
	}
}

// FilteredTasks returns the tasks matching the active filter, highest
// priority first and newest first within a priority.
func (s *TaskStore) FilteredTasks() []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filteredLocked()
}

func (s *TaskStore) filteredLocked() []models.Task {
	filtered := make([]models.Task, 0, len(s.tasks))
	for i := range s.tasks {
		if s.filter.Matches(&s.tasks[i]) {
			filtered = append(filtered, s.tasks[i].Clone())
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		a, b := filtered[i], filtered[j]
		if ra, rb := a.Priority.Rank(), b.Priority.Rank(); ra != rb {
			return ra > rb
		}
		return a.CreatedAt.After(b.CreatedAt)
	})

	return filtered
}

// TaskStats aggregates counts over the whole collection, ignoring the filter.
func (s *TaskStore) TaskStats() models.TaskStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.statsLocked()
}

func (s *TaskStore) statsLocked() models.TaskStats {
	now := s.now()
	stats := models.TaskStats{Total: len(s.tasks)}
	for i := range s.tasks {
		if s.tasks[i].Completed {
			stats.Completed++
		}
		if s.tasks[i].IsOverdueAt(now) {
			stats.Overdue++
		}
	}
	stats.Pending = stats.Total - stats.Completed

	return stats
}

// AllTags returns every tag used by any task, deduplicated and sorted.
func (s *TaskStore) AllTags() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tagsLocked()
}

func (s *TaskStore) tagsLocked() []string {
	seen := make(map[string]struct{})
	tags := []string{}
	for _, t := range s.tasks {
		for _, tag := range t.Tags {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}
	sort.Strings(tags)

	return tags
}
