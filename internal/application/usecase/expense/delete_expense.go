package expense

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/construction-tracker/backend/internal/application/adapter"
	domainerror "github.com/construction-tracker/backend/internal/domain/error"
	"github.com/construction-tracker/backend/internal/domain/valueobject"
)

// DeleteExpenseInput represents the input for expense deletion.
type DeleteExpenseInput struct {
	ExpenseID uuid.UUID
	Scope     valueobject.AccessScope
}

// DeleteExpenseUseCase handles expense deletion. The repository re-sums the
// owning building's spent_amount in the same transaction as the delete.
type DeleteExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewDeleteExpenseUseCase creates a new DeleteExpenseUseCase instance.
func NewDeleteExpenseUseCase(expenseRepo adapter.ExpenseRepository) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute performs the expense deletion.
func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, input DeleteExpenseInput) error {
	expense, err := uc.expenseRepo.FindByID(ctx, input.ExpenseID)
	if err != nil {
		if errors.Is(err, domainerror.ErrExpenseNotFound) {
			return domainerror.NewExpenseError(
				domainerror.ErrCodeExpenseNotFound,
				"expense not found",
				domainerror.ErrExpenseNotFound,
			)
		}
		return fmt.Errorf("failed to find expense: %w", err)
	}

	// Rows outside the caller's scope read as absent, never as forbidden.
	if !scopeCoversRow(input.Scope, expense.CreatedBy) {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseNotFound,
			"expense not found",
			domainerror.ErrExpenseNotFound,
		)
	}

	if err := uc.expenseRepo.Delete(ctx, expense.ID); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	slog.Info("expense deleted",
		"expense_id", expense.ID,
		"building_id", expense.BuildingID,
		"amount", expense.Amount.String(),
	)

	return nil
}
