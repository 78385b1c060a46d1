// Package category contains category directory use cases.
package category

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/construction-tracker/backend/internal/application/adapter"
	"github.com/construction-tracker/backend/internal/domain/entity"
	domainerror "github.com/construction-tracker/backend/internal/domain/error"
)

// MaxCategoryNameLength is the maximum allowed length for category names.
const MaxCategoryNameLength = 50

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:[-_][a-z0-9]+)*$`)

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	Name         string
	Slug         string
	Icon         string
	Color        string
	DisplayOrder int
	Active       bool
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.ExpenseCategory
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category creation.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameRequired,
			"category name is required",
			domainerror.ErrCategoryNameRequired,
		)
	}
	if len(name) > MaxCategoryNameLength {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameRequired,
			fmt.Sprintf("category name must not exceed %d characters", MaxCategoryNameLength),
			domainerror.ErrCategoryNameRequired,
		)
	}

	slug := strings.ToLower(strings.TrimSpace(input.Slug))
	if !slugPattern.MatchString(slug) {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategorySlug,
			"slug must contain only lowercase letters, digits and separators",
			domainerror.ErrInvalidCategorySlug,
		)
	}

	// Slug uniqueness: the repository enforces it with a unique index as
	// well, this check only gives the caller a precise error.
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

	icon := input.Icon
	if icon == "" {
		icon = entity.DefaultCategoryIcon
	}
	color := input.Color
	if color == "" {
		color = entity.DefaultCategoryColor
	}

	category := entity.NewExpenseCategory(name, slug, icon, color, input.DisplayOrder, input.Active)

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, domainerror.ErrCategorySlugExists) {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategorySlugExists,
				"a category with this slug already exists",
				domainerror.ErrCategorySlugExists,
			)
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &CreateCategoryOutput{
		Category: category,
	}, nil
}
