// Package category contains category directory use cases.
package category

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/construction-tracker/backend/internal/application/adapter"
	"github.com/construction-tracker/backend/internal/domain/entity"
	domainerror "github.com/construction-tracker/backend/internal/domain/error"
)

// UpdateCategoryInput represents the input for category update. Nil fields
// are left unchanged.
type UpdateCategoryInput struct {
	CategoryID   uuid.UUID
	Name         *string
	Slug         *string
	Icon         *string
	Color        *string
	DisplayOrder *int
	Active       *bool
}

// UpdateCategoryOutput represents the output of category update.
type UpdateCategoryOutput struct {
	Category *entity.ExpenseCategory
}

// UpdateCategoryUseCase handles category update logic.
type UpdateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewUpdateCategoryUseCase creates a new UpdateCategoryUseCase instance.
func NewUpdateCategoryUseCase(categoryRepo adapter.CategoryRepository) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category update.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, input UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" || len(name) > MaxCategoryNameLength {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNameRequired,
				fmt.Sprintf("category name must be between 1 and %d characters", MaxCategoryNameLength),
				domainerror.ErrCategoryNameRequired,
			)
		}
		category.Name = name
	}

	if input.Slug != nil {
		slug := strings.ToLower(strings.TrimSpace(*input.Slug))
		if !slugPattern.MatchString(slug) {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeInvalidCategorySlug,
				"slug must contain only lowercase letters, digits and separators",
				domainerror.ErrInvalidCategorySlug,
			)
		}
		if slug != category.Slug {
			existing, err := uc.categoryRepo.FindBySlug(ctx, slug)
			if err != nil && !errors.Is(err, domainerror.ErrCategoryNotFound) {
				return nil, fmt.Errorf("failed to check slug uniqueness: %w", err)
			}
			if existing != nil {
				return nil, domainerror.NewCategoryError(
					domainerror.ErrCodeCategorySlugExists,
					"a category with this slug already exists",
					domainerror.ErrCategorySlugExists,
				)
			}
			category.Slug = slug
		}
	}

	if input.Icon != nil {
		category.Icon = *input.Icon
	}
	if input.Color != nil {
		category.Color = *input.Color
	}
	if input.DisplayOrder != nil {
		category.DisplayOrder = *input.DisplayOrder
	}
	if input.Active != nil {
		category.Active = *input.Active
	}
	category.UpdatedAt = time.Now().UTC()

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return &UpdateCategoryOutput{
		Category: category,
	}, nil
}
