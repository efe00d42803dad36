package models

import "time"

// DemoTasks returns the sample tasks used to seed an empty store.
// The first task is due seven days after now.
func DemoTasks(now time.Time) []TaskDraft {
	due := now.Add(7 * 24 * time.Hour)

	return []TaskDraft{
		{
			Title:       "Finish the task manager project",
			Description: "Complete every feature of the task management application",
			Priority:    PriorityHigh,
			Category:    "Work",
			Tags:        []string{"go", "backend", "project"},
			DueDate:     &due,
		},
		{
			Title:       "Buy groceries",
			Description: "Milk, bread, eggs and vegetables",
			Priority:    PriorityMedium,
			Category:    "Shopping",
			Tags:        []string{"groceries", "food"},
		},
		{
			Title:       "Workout",
			Description: "30 minutes of cardio and strength training",
			Completed:   true,
			Priority:    PriorityMedium,
			Category:    "Health",
			Tags:        []string{"fitness", "exercise"},
		},
		{
			Title:       "Read the Go documentation",
			Description: "Study the advanced features of the language",
			Priority:    PriorityLow,
			Category:    "Learning",
			Tags:        []string{"go", "docs", "learning"},
		},
	}
}
