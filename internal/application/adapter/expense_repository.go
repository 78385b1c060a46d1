// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/construction-tracker/backend/internal/domain/entity"
)

// ExpenseFilter is the single predicate shape applied to every expense ledger
// read: the list endpoint and all reports build one of these, so filter
// semantics never diverge between browse and report views.
//
// CreatedBy carries the resolved owner restriction: the caller's own id for
// non-root actors, or an explicit owner filter chosen by the root operator.
// Nil means the full ledger.
type ExpenseFilter struct {
	BuildingID   *uuid.UUID
	CategoryID   *uuid.UUID
	CategorySlug *string    // alternative to CategoryID, resolved at query time
	DateFrom     *time.Time // inclusive
	DateTo       *time.Time // inclusive
	CreatedBy    *uuid.UUID
}

// ExpensePagination controls paging of expense list queries.
type ExpensePagination struct {
	Page  int
	Limit int
}

// LedgerEntry is the flat row shape reports aggregate over.
type LedgerEntry struct {
	ID          uuid.UUID
	BuildingID  uuid.UUID
	CategoryID  *uuid.UUID
	CreatedBy   *uuid.UUID
	Description string
	Amount      decimal.Decimal
	Date        time.Time
	CreatedAt   time.Time
}

// ExpenseRepository defines the interface for expense persistence operations.
//
// Every write method runs the expense mutation and the owning building's
// spent_amount recompute in one database transaction: a reader never observes
// an expense write without the matching aggregate update.
type ExpenseRepository interface {
	// Create inserts an expense and recomputes the owning building's total.
	Create(ctx context.Context, expense *entity.Expense) error

	// FindByID retrieves an expense by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)

	// FindByIDWithRefs retrieves an expense with its category and building resolved.
	FindByIDWithRefs(ctx context.Context, id uuid.UUID) (*entity.ExpenseWithCategory, error)

	// FindByFilter retrieves expenses matching the filter with pagination,
	// newest first (date, then creation time).
	FindByFilter(ctx context.Context, filter ExpenseFilter, pagination ExpensePagination) (*entity.ExpenseListResult, error)

	// Update persists an expense and recomputes the affected building totals.
	// On building reassignment both the old and the new building are recomputed.
	Update(ctx context.Context, expense *entity.Expense) error

	// Delete removes an expense and recomputes the owning building's total.
	Delete(ctx context.Context, id uuid.UUID) error

	// ScanLedger returns every ledger entry matching the filter, ordered by
	// date ascending. This is the scan the report generator aggregates over.
	ScanLedger(ctx context.Context, filter ExpenseFilter) ([]LedgerEntry, error)

	// FindRecent returns the most recently created expenses matching the
	// filter, with category and building resolved for display.
	FindRecent(ctx context.Context, filter ExpenseFilter, limit int) ([]*entity.ExpenseWithCategory, error)

	// CountByCategory returns the number of expenses referencing a category.
	CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)
}
