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
	"github.com/construction-tracker/backend/internal/domain/valueobject"
)

// UpdateExpenseInput represents the input for expense update. Nil fields are
// left unchanged. CreatedBy is immutable after creation and therefore absent.
type UpdateExpenseInput struct {
	ExpenseID     uuid.UUID
	Scope         valueobject.AccessScope
	BuildingID    *uuid.UUID
	CategoryID    *uuid.UUID
	ClearCategory bool
	Description   *string
	Amount        *decimal.Decimal
	Date          *time.Time
	ImageURL      *string
}

// UpdateExpenseOutput represents the output of expense update.
type UpdateExpenseOutput struct {
	Expense *entity.Expense
}

// UpdateExpenseUseCase handles expense update logic. When the expense moves
// to another building, the repository recomputes both the old and the new
// building's spent_amount in the same transaction as the row update.
type UpdateExpenseUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	buildingRepo adapter.BuildingRepository
	categoryRepo adapter.CategoryRepository
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	buildingRepo adapter.BuildingRepository,
	categoryRepo adapter.CategoryRepository,
) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		expenseRepo:  expenseRepo,
		buildingRepo: buildingRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the expense update.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	expense, err := uc.expenseRepo.FindByID(ctx, input.ExpenseID)
	if err != nil {
		if errors.Is(err, domainerror.ErrExpenseNotFound) {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeExpenseNotFound,
				"expense not found",
				domainerror.ErrExpenseNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find expense: %w", err)
	}

	// Rows outside the caller's scope read as absent, never as forbidden.
	if !scopeCoversRow(input.Scope, expense.CreatedBy) {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseNotFound,
			"expense not found",
			domainerror.ErrExpenseNotFound,
		)
	}

	if input.BuildingID != nil && *input.BuildingID != expense.BuildingID {
		if _, err := uc.buildingRepo.FindByID(ctx, *input.BuildingID); err != nil {
			if errors.Is(err, domainerror.ErrBuildingNotFound) {
				return nil, domainerror.NewExpenseError(
					domainerror.ErrCodeExpenseBuildingNotFound,
					"building not found",
					domainerror.ErrExpenseBuildingNotFound,
				)
			}
			return nil, fmt.Errorf("failed to find building: %w", err)
		}
		expense.BuildingID = *input.BuildingID
	}

	if input.ClearCategory {
		expense.CategoryID = nil
	} else if input.CategoryID != nil {
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
		expense.CategoryID = input.CategoryID
	}

	if input.Description != nil {
		description := strings.TrimSpace(*input.Description)
		if description == "" || len(description) > MaxDescriptionLength {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeExpenseDescriptionRequired,
				fmt.Sprintf("description must be between 1 and %d characters", MaxDescriptionLength),
				domainerror.ErrExpenseDescriptionRequired,
			)
		}
		expense.Description = description
	}

	if input.Amount != nil {
		expense.Amount = *input.Amount
	}
	if input.Date != nil {
		expense.Date = *input.Date
	}
	if input.ImageURL != nil {
		expense.ImageURL = input.ImageURL
	}
	expense.UpdatedAt = time.Now().UTC()

	if err := uc.expenseRepo.Update(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	return &UpdateExpenseOutput{
		Expense: expense,
	}, nil
}
