package expense

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/construction-tracker/backend/internal/application/adapter"
	"github.com/construction-tracker/backend/internal/domain/entity"
	domainerror "github.com/construction-tracker/backend/internal/domain/error"
	"github.com/construction-tracker/backend/internal/domain/valueobject"
)

// fakeExpenseRepo serves a single expense row and records mutations.
type fakeExpenseRepo struct {
	expense *entity.Expense
	updated bool
	deleted bool
}

func (r *fakeExpenseRepo) Create(ctx context.Context, expense *entity.Expense) error {
	return nil
}

func (r *fakeExpenseRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	if r.expense == nil || r.expense.ID != id {
		return nil, domainerror.ErrExpenseNotFound
	}
	return r.expense, nil
}

func (r *fakeExpenseRepo) FindByIDWithRefs(ctx context.Context, id uuid.UUID) (*entity.ExpenseWithCategory, error) {
	if r.expense == nil || r.expense.ID != id {
		return nil, domainerror.ErrExpenseNotFound
	}
	return &entity.ExpenseWithCategory{Expense: r.expense}, nil
}

func (r *fakeExpenseRepo) FindByFilter(ctx context.Context, filter adapter.ExpenseFilter, pagination adapter.ExpensePagination) (*entity.ExpenseListResult, error) {
	return &entity.ExpenseListResult{}, nil
}

func (r *fakeExpenseRepo) Update(ctx context.Context, expense *entity.Expense) error {
	r.updated = true
	return nil
}

func (r *fakeExpenseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.deleted = true
	return nil
}

func (r *fakeExpenseRepo) ScanLedger(ctx context.Context, filter adapter.ExpenseFilter) ([]adapter.LedgerEntry, error) {
	return nil, nil
}

func (r *fakeExpenseRepo) FindRecent(ctx context.Context, filter adapter.ExpenseFilter, limit int) ([]*entity.ExpenseWithCategory, error) {
	return nil, nil
}

func (r *fakeExpenseRepo) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	return 0, nil
}

func ledgerRow(t *testing.T, owner uuid.UUID) *entity.Expense {
	t.Helper()
	amount, err := decimal.NewFromString("150.00")
	if err != nil {
		t.Fatalf("bad amount: %v", err)
	}
	return entity.NewExpense(uuid.New(), nil, "cement pallets", amount,
		time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC), nil, owner)
}

func assertRowHidden(t *testing.T, err error) {
	t.Helper()
	var expErr *domainerror.ExpenseError
	if !errors.As(err, &expErr) || expErr.Code != domainerror.ErrCodeExpenseNotFound {
		t.Fatalf("expected not-found error for a foreign row, got %v", err)
	}
}

func TestGetExpenseScope(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()
	row := ledgerRow(t, owner)
	repo := &fakeExpenseRepo{expense: row}
	uc := NewGetExpenseUseCase(repo)

	t.Run("owner reads their own row", func(t *testing.T) {
		scope := valueobject.AccessScope{ActorID: owner, CanRead: true}
		output, err := uc.Execute(context.Background(), GetExpenseInput{ExpenseID: row.ID, Scope: scope})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Expense.Expense.ID != row.ID {
			t.Errorf("wrong row returned")
		}
	})

	t.Run("full ledger scope reads any row", func(t *testing.T) {
		scope := valueobject.AccessScope{ActorID: stranger, CanRead: true, FullLedger: true}
		if _, err := uc.Execute(context.Background(), GetExpenseInput{ExpenseID: row.ID, Scope: scope}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("foreign row reads as absent", func(t *testing.T) {
		scope := valueobject.AccessScope{ActorID: stranger, CanRead: true}
		_, err := uc.Execute(context.Background(), GetExpenseInput{ExpenseID: row.ID, Scope: scope})
		assertRowHidden(t, err)
	})

	t.Run("orphaned row is hidden from restricted scopes", func(t *testing.T) {
		orphan := ledgerRow(t, owner)
		orphan.CreatedBy = nil
		orphanRepo := &fakeExpenseRepo{expense: orphan}
		scope := valueobject.AccessScope{ActorID: owner, CanRead: true}
		_, err := NewGetExpenseUseCase(orphanRepo).Execute(context.Background(),
			GetExpenseInput{ExpenseID: orphan.ID, Scope: scope})
		assertRowHidden(t, err)
	})
}

func TestUpdateExpenseScope(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()
	description := "rebar delivery"

	t.Run("foreign row cannot be changed", func(t *testing.T) {
		row := ledgerRow(t, owner)
		repo := &fakeExpenseRepo{expense: row}
		uc := NewUpdateExpenseUseCase(repo, nil, nil)

		scope := valueobject.AccessScope{ActorID: stranger, CanWrite: true}
		_, err := uc.Execute(context.Background(), UpdateExpenseInput{
			ExpenseID:   row.ID,
			Scope:       scope,
			Description: &description,
		})
		assertRowHidden(t, err)
		if repo.updated {
			t.Errorf("foreign row was written")
		}
	})

	t.Run("owner updates their own row", func(t *testing.T) {
		row := ledgerRow(t, owner)
		repo := &fakeExpenseRepo{expense: row}
		uc := NewUpdateExpenseUseCase(repo, nil, nil)

		scope := valueobject.AccessScope{ActorID: owner, CanWrite: true}
		output, err := uc.Execute(context.Background(), UpdateExpenseInput{
			ExpenseID:   row.ID,
			Scope:       scope,
			Description: &description,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !repo.updated || output.Expense.Description != description {
			t.Errorf("own row update did not land")
		}
	})
}

func TestDeleteExpenseScope(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()

	t.Run("foreign row cannot be deleted", func(t *testing.T) {
		row := ledgerRow(t, owner)
		repo := &fakeExpenseRepo{expense: row}
		uc := NewDeleteExpenseUseCase(repo)

		scope := valueobject.AccessScope{ActorID: stranger, CanWrite: true}
		err := uc.Execute(context.Background(), DeleteExpenseInput{ExpenseID: row.ID, Scope: scope})
		assertRowHidden(t, err)
		if repo.deleted {
			t.Errorf("foreign row was deleted")
		}
	})

	t.Run("full ledger scope deletes any row", func(t *testing.T) {
		row := ledgerRow(t, owner)
		repo := &fakeExpenseRepo{expense: row}
		uc := NewDeleteExpenseUseCase(repo)

		scope := valueobject.AccessScope{ActorID: stranger, CanWrite: true, FullLedger: true}
		if err := uc.Execute(context.Background(), DeleteExpenseInput{ExpenseID: row.ID, Scope: scope}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !repo.deleted {
			t.Errorf("row should have been deleted")
		}
	})
}
