package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/construction-tracker/backend/internal/application/adapter"
	"github.com/construction-tracker/backend/internal/domain/entity"
)

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", s, err)
	}
	return d
}

func seedBuilding(t *testing.T, repo adapter.BuildingRepository, name, budget string) *entity.Building {
	t.Helper()
	building := entity.NewBuilding(name, entity.BuildingStatusStarted, mustDecimal(t, budget), nil, nil, "")
	if err := repo.Create(context.Background(), building); err != nil {
		t.Fatalf("failed to seed building: %v", err)
	}
	return building
}

func newExpense(building *entity.Building, amount string, date time.Time, createdBy uuid.UUID) *entity.Expense {
	d, _ := decimal.NewFromString(amount)
	return entity.NewExpense(building.ID, nil, "materials delivery", d, date, nil, createdBy)
}

func spentOf(t *testing.T, repo adapter.BuildingRepository, id uuid.UUID) decimal.Decimal {
	t.Helper()
	building, err := repo.FindByID(context.Background(), id)
	if err != nil {
		t.Fatalf("failed to reload building: %v", err)
	}
	return building.SpentAmount
}

func TestExpenseRepositoryAggregateMaintenance(t *testing.T) {
	db := openTestDB(t)
	expenses := NewExpenseRepository(db)
	buildings := NewBuildingRepository(db)
	ctx := context.Background()

	actor := uuid.New()
	day := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	site := seedBuilding(t, buildings, "Riverside Tower", "1000000")

	first := newExpense(site, "300000", day, actor)
	if err := expenses.Create(ctx, first); err != nil {
		t.Fatalf("failed to create expense: %v", err)
	}
	second := newExpense(site, "250000", day.AddDate(0, 0, 1), actor)
	if err := expenses.Create(ctx, second); err != nil {
		t.Fatalf("failed to create expense: %v", err)
	}

	if got := spentOf(t, buildings, site.ID); !got.Equal(mustDecimal(t, "550000")) {
		t.Fatalf("spent after creates = %s, want 550000", got)
	}

	t.Run("delete re-sums", func(t *testing.T) {
		if err := expenses.Delete(ctx, second.ID); err != nil {
			t.Fatalf("failed to delete expense: %v", err)
		}
		if got := spentOf(t, buildings, site.ID); !got.Equal(mustDecimal(t, "300000")) {
			t.Errorf("spent after delete = %s, want 300000", got)
		}
	})

	t.Run("amount change re-sums", func(t *testing.T) {
		first.Amount = mustDecimal(t, "120000")
		if err := expenses.Update(ctx, first); err != nil {
			t.Fatalf("failed to update expense: %v", err)
		}
		if got := spentOf(t, buildings, site.ID); !got.Equal(mustDecimal(t, "120000")) {
			t.Errorf("spent after update = %s, want 120000", got)
		}
	})

	t.Run("reassignment re-sums both buildings", func(t *testing.T) {
		other := seedBuilding(t, buildings, "Annex", "0")

		first.BuildingID = other.ID
		if err := expenses.Update(ctx, first); err != nil {
			t.Fatalf("failed to reassign expense: %v", err)
		}
		if got := spentOf(t, buildings, site.ID); !got.IsZero() {
			t.Errorf("old building spent = %s, want 0", got)
		}
		if got := spentOf(t, buildings, other.ID); !got.Equal(mustDecimal(t, "120000")) {
			t.Errorf("new building spent = %s, want 120000", got)
		}
	})

	t.Run("negative amounts contribute as recorded", func(t *testing.T) {
		refund := newExpense(site, "-500", day, actor)
		if err := expenses.Create(ctx, refund); err != nil {
			t.Fatalf("failed to create refund: %v", err)
		}
		if got := spentOf(t, buildings, site.ID); !got.Equal(mustDecimal(t, "-500")) {
			t.Errorf("spent with refund = %s, want -500", got)
		}
	})
}

func TestExpenseRepositoryScanLedger(t *testing.T) {
	db := openTestDB(t)
	expenses := NewExpenseRepository(db)
	buildings := NewBuildingRepository(db)
	ctx := context.Background()

	alice := uuid.New()
	bob := uuid.New()
	site := seedBuilding(t, buildings, "Site A", "100000")
	other := seedBuilding(t, buildings, "Site B", "100000")

	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	for _, exp := range []*entity.Expense{
		newExpense(site, "100", base, alice),
		newExpense(site, "200", base.AddDate(0, 0, 5), bob),
		newExpense(other, "400", base.AddDate(0, 0, 10), alice),
	} {
		if err := expenses.Create(ctx, exp); err != nil {
			t.Fatalf("failed to create expense: %v", err)
		}
	}

	t.Run("unfiltered scan is date ascending", func(t *testing.T) {
		entries, err := expenses.ScanLedger(ctx, adapter.ExpenseFilter{})
		if err != nil {
			t.Fatalf("failed to scan: %v", err)
		}
		if len(entries) != 3 {
			t.Fatalf("expected 3 entries, got %d", len(entries))
		}
		for i := 1; i < len(entries); i++ {
			if entries[i].Date.Before(entries[i-1].Date) {
				t.Errorf("entries out of order at %d", i)
			}
		}
	})

	t.Run("owner filter", func(t *testing.T) {
		entries, err := expenses.ScanLedger(ctx, adapter.ExpenseFilter{CreatedBy: &alice})
		if err != nil {
			t.Fatalf("failed to scan: %v", err)
		}
		if len(entries) != 2 {
			t.Errorf("expected 2 entries for alice, got %d", len(entries))
		}
	})

	t.Run("category filter accepts a slug", func(t *testing.T) {
		categories := NewCategoryRepository(db)
		material := entity.NewExpenseCategory("Material", "material", "package", "#111111", 1, true)
		if err := categories.Create(ctx, material); err != nil {
			t.Fatalf("failed to create category: %v", err)
		}
		tagged := entity.NewExpense(site.ID, &material.ID, "cement", mustDecimal(t, "800"), base, nil, alice)
		if err := expenses.Create(ctx, tagged); err != nil {
			t.Fatalf("failed to create expense: %v", err)
		}

		slug := "material"
		entries, err := expenses.ScanLedger(ctx, adapter.ExpenseFilter{CategorySlug: &slug})
		if err != nil {
			t.Fatalf("failed to scan: %v", err)
		}
		if len(entries) != 1 || !entries[0].Amount.Equal(mustDecimal(t, "800")) {
			t.Errorf("expected only the tagged entry, got %d entries", len(entries))
		}
	})

	t.Run("building and date range filters combine", func(t *testing.T) {
		from := base.AddDate(0, 0, 1)
		entries, err := expenses.ScanLedger(ctx, adapter.ExpenseFilter{
			BuildingID: &site.ID,
			DateFrom:   &from,
		})
		if err != nil {
			t.Fatalf("failed to scan: %v", err)
		}
		if len(entries) != 1 || !entries[0].Amount.Equal(mustDecimal(t, "200")) {
			t.Errorf("expected only the 200 entry, got %d entries", len(entries))
		}
	})
}

func TestExpenseRepositoryFindByFilterPagination(t *testing.T) {
	db := openTestDB(t)
	expenses := NewExpenseRepository(db)
	buildings := NewBuildingRepository(db)
	ctx := context.Background()

	actor := uuid.New()
	site := seedBuilding(t, buildings, "Site A", "100000")
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		if err := expenses.Create(ctx, newExpense(site, "10", base.AddDate(0, 0, i), actor)); err != nil {
			t.Fatalf("failed to create expense: %v", err)
		}
	}

	result, err := expenses.FindByFilter(ctx, adapter.ExpenseFilter{}, adapter.ExpensePagination{Page: 1, Limit: 2})
	if err != nil {
		t.Fatalf("failed to list: %v", err)
	}
	if result.Total != 5 || result.TotalPages != 3 {
		t.Errorf("total = %d pages = %d, want 5/3", result.Total, result.TotalPages)
	}
	if len(result.Expenses) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(result.Expenses))
	}
	// newest first
	if !result.Expenses[0].Expense.Date.After(result.Expenses[1].Expense.Date) {
		t.Errorf("rows are not newest first")
	}
	if result.Expenses[0].Building == nil || result.Expenses[0].Building.ID != site.ID {
		t.Errorf("building reference not resolved")
	}
}
