package expense

import (
	"context"
	"fmt"

	"github.com/construction-tracker/backend/internal/application/adapter"
	"github.com/construction-tracker/backend/internal/domain/entity"
	"github.com/construction-tracker/backend/internal/domain/valueobject"
)

const (
	// DefaultPageLimit is the page size used when the caller does not set one.
	DefaultPageLimit = 20

	// MaxPageLimit caps the page size a caller may request.
	MaxPageLimit = 100
)

// ListExpensesInput represents the input for expense listing.
type ListExpensesInput struct {
	Scope  valueobject.AccessScope
	Filter FilterParams
	Page   int
	Limit  int
}

// ListExpensesOutput represents the output of expense listing.
type ListExpensesOutput struct {
	Result *entity.ExpenseListResult
}

// ListExpensesUseCase handles filtered, paginated expense listing.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute lists expenses matching the filter, newest first. The owner filter
// is resolved through the caller's access scope before reaching the store.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}

	filter := BuildFilter(input.Scope, input.Filter)
	pagination := adapter.ExpensePagination{
		Page:  page,
		Limit: limit,
	}

	result, err := uc.expenseRepo.FindByFilter(ctx, filter, pagination)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	return &ListExpensesOutput{
		Result: result,
	}, nil
}
