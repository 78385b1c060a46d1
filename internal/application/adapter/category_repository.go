// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/construction-tracker/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for expense category persistence operations.
type CategoryRepository interface {
	// Create creates a new category in the database.
	Create(ctx context.Context, category *entity.ExpenseCategory) error

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ExpenseCategory, error)

	// FindBySlug retrieves a category by its slug.
	FindBySlug(ctx context.Context, slug string) (*entity.ExpenseCategory, error)

	// FindAll retrieves categories ordered by display order, ties broken by
	// name. With activeOnly set, inactive categories are excluded.
	FindAll(ctx context.Context, activeOnly bool) ([]*entity.ExpenseCategory, error)

	// Update updates an existing category in the database.
	Update(ctx context.Context, category *entity.ExpenseCategory) error

	// Delete removes a category. The reference check and the delete run in
	// one transaction; a referenced category fails with ErrCategoryInUse.
	Delete(ctx context.Context, id uuid.UUID) error

	// Seed inserts the given categories when the directory is empty.
	Seed(ctx context.Context, categories []*entity.ExpenseCategory) error
}
