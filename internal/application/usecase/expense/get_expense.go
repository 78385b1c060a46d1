package expense

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/construction-tracker/backend/internal/application/adapter"
	"github.com/construction-tracker/backend/internal/domain/entity"
	domainerror "github.com/construction-tracker/backend/internal/domain/error"
	"github.com/construction-tracker/backend/internal/domain/valueobject"
)

// GetExpenseInput represents the input for fetching a single expense.
type GetExpenseInput struct {
	ExpenseID uuid.UUID
	Scope     valueobject.AccessScope
}

// GetExpenseOutput represents the output of fetching a single expense.
type GetExpenseOutput struct {
	Expense *entity.ExpenseWithCategory
}

// GetExpenseUseCase handles single expense retrieval.
type GetExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewGetExpenseUseCase creates a new GetExpenseUseCase instance.
func NewGetExpenseUseCase(expenseRepo adapter.ExpenseRepository) *GetExpenseUseCase {
	return &GetExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute fetches the expense with its category and building references.
func (uc *GetExpenseUseCase) Execute(ctx context.Context, input GetExpenseInput) (*GetExpenseOutput, error) {
	expense, err := uc.expenseRepo.FindByIDWithRefs(ctx, input.ExpenseID)
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
	if !scopeCoversRow(input.Scope, expense.Expense.CreatedBy) {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseNotFound,
			"expense not found",
			domainerror.ErrExpenseNotFound,
		)
	}

	return &GetExpenseOutput{
		Expense: expense,
	}, nil
}
