// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCategoryColor is the default color for expense categories.
const DefaultCategoryColor = "#6366F1"

// DefaultCategoryIcon is the default icon for expense categories.
const DefaultCategoryIcon = "tag"

// ExpenseCategory represents an entry of the mutable expense taxonomy.
// Expenses reference categories by id; categories are mutable by reference,
// so renaming a category retroactively relabels its expenses.
type ExpenseCategory struct {
	ID           uuid.UUID
	Name         string
	Slug         string
	Icon         string
	Color        string
	DisplayOrder int
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewExpenseCategory creates a new ExpenseCategory entity.
// Defaulting for icon and color is applied by the usecase layer before
// calling this constructor.
func NewExpenseCategory(name, slug, icon, color string, displayOrder int, active bool) *ExpenseCategory {
	now := time.Now().UTC()

	return &ExpenseCategory{
		ID:           uuid.New(),
		Name:         name,
		Slug:         slug,
		Icon:         icon,
		Color:        color,
		DisplayOrder: displayOrder,
		Active:       active,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// DefaultCategories is the taxonomy seeded when the directory is empty.
func DefaultCategories() []*ExpenseCategory {
	defaults := []struct {
		name string
		slug string
		icon string
	}{
		{"Material", "material", "package"},
		{"Labor", "labor", "users"},
		{"Transport", "transport", "truck"},
		{"Equipment", "equipment", "wrench"},
		{"Other", "other", "tag"},
	}

	categories := make([]*ExpenseCategory, len(defaults))
	for i, d := range defaults {
		categories[i] = NewExpenseCategory(d.name, d.slug, d.icon, DefaultCategoryColor, i+1, true)
	}
	return categories
}
