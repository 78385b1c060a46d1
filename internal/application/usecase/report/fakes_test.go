package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/construction-tracker/backend/internal/application/adapter"
	"github.com/construction-tracker/backend/internal/domain/entity"
	domainerror "github.com/construction-tracker/backend/internal/domain/error"
)

// fakeExpenseRepo serves canned ledger entries and records the filter the
// use case built, so tests can assert on scope resolution.
type fakeExpenseRepo struct {
	entries    []adapter.LedgerEntry
	recent     []*entity.ExpenseWithCategory
	lastFilter adapter.ExpenseFilter
}

func (f *fakeExpenseRepo) Create(ctx context.Context, expense *entity.Expense) error { return nil }

func (f *fakeExpenseRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	return nil, domainerror.ErrExpenseNotFound
}

func (f *fakeExpenseRepo) FindByIDWithRefs(ctx context.Context, id uuid.UUID) (*entity.ExpenseWithCategory, error) {
	return nil, domainerror.ErrExpenseNotFound
}

func (f *fakeExpenseRepo) FindByFilter(ctx context.Context, filter adapter.ExpenseFilter, pagination adapter.ExpensePagination) (*entity.ExpenseListResult, error) {
	return &entity.ExpenseListResult{}, nil
}

func (f *fakeExpenseRepo) Update(ctx context.Context, expense *entity.Expense) error { return nil }

func (f *fakeExpenseRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (f *fakeExpenseRepo) ScanLedger(ctx context.Context, filter adapter.ExpenseFilter) ([]adapter.LedgerEntry, error) {
	f.lastFilter = filter
	matched := make([]adapter.LedgerEntry, 0, len(f.entries))
	for _, entry := range f.entries {
		if filter.BuildingID != nil && entry.BuildingID != *filter.BuildingID {
			continue
		}
		if filter.CategoryID != nil && (entry.CategoryID == nil || *entry.CategoryID != *filter.CategoryID) {
			continue
		}
		if filter.CreatedBy != nil && (entry.CreatedBy == nil || *entry.CreatedBy != *filter.CreatedBy) {
			continue
		}
		if filter.DateFrom != nil && entry.Date.Before(*filter.DateFrom) {
			continue
		}
		if filter.DateTo != nil && entry.Date.After(*filter.DateTo) {
			continue
		}
		matched = append(matched, entry)
	}
	return matched, nil
}

func (f *fakeExpenseRepo) FindRecent(ctx context.Context, filter adapter.ExpenseFilter, limit int) ([]*entity.ExpenseWithCategory, error) {
	if len(f.recent) > limit {
		return f.recent[:limit], nil
	}
	return f.recent, nil
}

func (f *fakeExpenseRepo) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	return 0, nil
}

type fakeBuildingRepo struct {
	buildings []*entity.Building
}

func (f *fakeBuildingRepo) Create(ctx context.Context, building *entity.Building) error { return nil }

func (f *fakeBuildingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Building, error) {
	for _, b := range f.buildings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, domainerror.ErrBuildingNotFound
}

func (f *fakeBuildingRepo) FindAll(ctx context.Context, filter adapter.BuildingFilter) ([]*entity.Building, error) {
	return f.buildings, nil
}

func (f *fakeBuildingRepo) Update(ctx context.Context, building *entity.Building) error { return nil }

func (f *fakeBuildingRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (f *fakeBuildingRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.buildings)), nil
}

type fakeCategoryRepo struct {
	categories []*entity.ExpenseCategory
}

func (f *fakeCategoryRepo) Create(ctx context.Context, category *entity.ExpenseCategory) error {
	return nil
}

func (f *fakeCategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.ExpenseCategory, error) {
	for _, c := range f.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, domainerror.ErrCategoryNotFound
}

func (f *fakeCategoryRepo) FindBySlug(ctx context.Context, slug string) (*entity.ExpenseCategory, error) {
	for _, c := range f.categories {
		if c.Slug == slug {
			return c, nil
		}
	}
	return nil, domainerror.ErrCategoryNotFound
}

func (f *fakeCategoryRepo) FindAll(ctx context.Context, activeOnly bool) ([]*entity.ExpenseCategory, error) {
	if !activeOnly {
		return f.categories, nil
	}
	active := make([]*entity.ExpenseCategory, 0, len(f.categories))
	for _, c := range f.categories {
		if c.Active {
			active = append(active, c)
		}
	}
	return active, nil
}

func (f *fakeCategoryRepo) Update(ctx context.Context, category *entity.ExpenseCategory) error {
	return nil
}

func (f *fakeCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (f *fakeCategoryRepo) Seed(ctx context.Context, categories []*entity.ExpenseCategory) error {
	return nil
}

type fakeUserRepo struct {
	users []*entity.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error { return nil }

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (f *fakeUserRepo) FindAll(ctx context.Context) ([]*entity.User, error) {
	return f.users, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error { return nil }

func (f *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (f *fakeUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, err := f.FindByUsername(ctx, username)
	return err == nil, nil
}

func (f *fakeUserRepo) HasRootOperator(ctx context.Context) (bool, error) {
	for _, u := range f.users {
		if u.IsRootOperator {
			return true, nil
		}
	}
	return false, nil
}

// fixedClock pins Now for deterministic period windows.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

func mustDecimal(t interface{ Fatalf(string, ...any) }, s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", s, err)
	}
	return d
}

func entryOn(building uuid.UUID, category, owner *uuid.UUID, amount string, date time.Time) adapter.LedgerEntry {
	d, _ := decimal.NewFromString(amount)
	return adapter.LedgerEntry{
		ID:         uuid.New(),
		BuildingID: building,
		CategoryID: category,
		CreatedBy:  owner,
		Amount:     d,
		Date:       date,
		CreatedAt:  date,
	}
}
