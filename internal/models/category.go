package models

import (
	"errors"
	"strings"
)

// DefaultCategories is the category set a fresh store starts with.
var DefaultCategories = []string{"Work", "Personal", "Shopping", "Health", "Learning"}

// ValidateCategoryName checks a category name supplied by a form.
func ValidateCategoryName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("name is required")
	}
	return nil
}

// ContainsCategory reports whether name is in categories, by exact match.
func ContainsCategory(categories []string, name string) bool {
	for _, c := range categories {
		if c == name {
			return true
		}
	}
	return false
}
