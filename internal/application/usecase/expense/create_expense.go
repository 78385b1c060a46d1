package expense

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/construction-tracker/backend/internal/application/adapter"
	"github.com/construction-tracker/backend/internal/domain/entity"
	domainerror "github.com/construction-tracker/backend/internal/domain/error"
)

// MaxDescriptionLength is the maximum allowed length for expense descriptions.
const MaxDescriptionLength = 500

// CreateExpenseInput represents the input for expense creation.
type CreateExpenseInput struct {
	BuildingID  uuid.UUID
	CategoryID  *uuid.UUID
	Description string
	Amount      decimal.Decimal
	Date        *time.Time // defaults to the current date when nil
	ImageURL    *string
	CreatedBy   uuid.UUID
}

// CreateExpenseOutput represents the output of expense creation.
type CreateExpenseOutput struct {
	Expense *entity.Expense
}

// CreateExpenseUseCase handles expense creation logic. The repository write
// and the owning building's spent_amount recompute run in one transaction;
// a failed recompute rolls the creation back.
type CreateExpenseUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	buildingRepo adapter.BuildingRepository
	categoryRepo adapter.CategoryRepository
	clock        adapter.Clock
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	buildingRepo adapter.BuildingRepository,
	categoryRepo adapter.CategoryRepository,
	clock adapter.Clock,
) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo:  expenseRepo,
		buildingRepo: buildingRepo,
		categoryRepo: categoryRepo,
		clock:        clock,
	}
}

// Execute performs the expense creation.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseDescriptionRequired,
			"expense description is required",
			domainerror.ErrExpenseDescriptionRequired,
		)
	}
	if len(description) > MaxDescriptionLength {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrExpenseDescriptionTooLong,
		)
	}

	if _, err := uc.buildingRepo.FindByID(ctx, input.BuildingID); err != nil {
		if errors.Is(err, domainerror.ErrBuildingNotFound) {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeExpenseBuildingNotFound,
				"building not found",
				domainerror.ErrExpenseBuildingNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find building: %w", err)
	}

	if input.CategoryID != nil {
		if _, err := uc.categoryRepo.FindByID(ctx, *input.CategoryID); err != nil {
			if errors.Is(err, domainerror.ErrCategoryNotFound) {
				return nil, domainerror.NewExpenseError(
					domainerror.ErrCodeExpenseCategoryNotFound,
					"category not found",
					domainerror.ErrExpenseCategoryNotFound,
				)
			}
			return nil, fmt.Errorf("failed to find category: %w", err)
		}
	}

	// The data layer accepts zero and negative amounts: corrections and
	// refunds are recorded as ordinary ledger rows.
	date := uc.clock.Now().UTC().Truncate(24 * time.Hour)
	if input.Date != nil {
		date = *input.Date
	}

	expense := entity.NewExpense(
		input.BuildingID,
		input.CategoryID,
		description,
		input.Amount,
		date,
		input.ImageURL,
		input.CreatedBy,
	)

	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	return &CreateExpenseOutput{
		Expense: expense,
	}, nil
}
