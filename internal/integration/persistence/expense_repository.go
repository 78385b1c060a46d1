// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/construction-tracker/backend/internal/application/adapter"
	"github.com/construction-tracker/backend/internal/domain/entity"
	domainerror "github.com/construction-tracker/backend/internal/domain/error"
	"github.com/construction-tracker/backend/internal/integration/persistence/model"
)

// recomputeSpentSQL re-derives a building's spent_amount from its expense
// rows in a single statement. Running it inside the same transaction as the
// expense write keeps the aggregate exact under concurrent mutation: the
// subquery re-sums whatever rows are visible when the statement executes,
// and the row update serializes concurrent writers on the building row.
const recomputeSpentSQL = `UPDATE buildings SET spent_amount = (SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE building_id = ?) WHERE id = ?`

// recomputeSpentAmount refreshes one building's aggregate within tx.
func recomputeSpentAmount(tx *gorm.DB, buildingID uuid.UUID) error {
	return tx.Exec(recomputeSpentSQL, buildingID, buildingID).Error
}

// scopeExpenseFilter translates the resolved ledger predicate into query
// conditions. The list endpoint and every report query go through this one
// function, so browse and report views always agree on what is visible.
func scopeExpenseFilter(filter adapter.ExpenseFilter) func(*gorm.DB) *gorm.DB {
	return func(query *gorm.DB) *gorm.DB {
		if filter.BuildingID != nil {
			query = query.Where("building_id = ?", *filter.BuildingID)
		}
		if filter.CategoryID != nil {
			query = query.Where("category_id = ?", *filter.CategoryID)
		}
		if filter.CategorySlug != nil {
			query = query.Where("category_id IN (SELECT id FROM expense_categories WHERE slug = ?)", *filter.CategorySlug)
		}
		if filter.DateFrom != nil {
			query = query.Where("date >= ?", *filter.DateFrom)
		}
		if filter.DateTo != nil {
			query = query.Where("date <= ?", *filter.DateTo)
		}
		if filter.CreatedBy != nil {
			query = query.Where("created_by = ?", *filter.CreatedBy)
		}
		return query
	}
}

// expenseRepository implements the adapter.ExpenseRepository interface.
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository instance.
func NewExpenseRepository(db *gorm.DB) adapter.ExpenseRepository {
	return &expenseRepository{
		db: db,
	}
}

// Create inserts an expense and recomputes the owning building's total in
// one transaction.
func (r *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	expenseModel := model.ExpenseFromEntity(expense)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(expenseModel).Error; err != nil {
			return err
		}
		return recomputeSpentAmount(tx, expenseModel.BuildingID)
	})
}

// FindByID retrieves an expense by its ID.
func (r *expenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	var expenseModel model.ExpenseModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&expenseModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrExpenseNotFound
		}
		return nil, result.Error
	}
	return expenseModel.ToEntity(), nil
}

// FindByIDWithRefs retrieves an expense with its category and building.
func (r *expenseRepository) FindByIDWithRefs(ctx context.Context, id uuid.UUID) (*entity.ExpenseWithCategory, error) {
	var expenseModel model.ExpenseModel
	result := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Building").
		Where("id = ?", id).
		First(&expenseModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrExpenseNotFound
		}
		return nil, result.Error
	}
	return expenseModel.ToEntityWithRefs(), nil
}

// FindByFilter retrieves expenses matching the filter with pagination,
// newest first.
func (r *expenseRepository) FindByFilter(ctx context.Context, filter adapter.ExpenseFilter, pagination adapter.ExpensePagination) (*entity.ExpenseListResult, error) {
	query := r.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Scopes(scopeExpenseFilter(filter))

	var total int64
	countQuery := query.Session(&gorm.Session{})
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (pagination.Page - 1) * pagination.Limit
	totalPages := int((total + int64(pagination.Limit) - 1) / int64(pagination.Limit))
	if totalPages == 0 {
		totalPages = 1
	}

	var expenseModels []model.ExpenseModel
	result := query.
		Preload("Category").
		Preload("Building").
		Order("date DESC, created_at DESC").
		Offset(offset).
		Limit(pagination.Limit).
		Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}

	expenses := make([]*entity.ExpenseWithCategory, len(expenseModels))
	for i, em := range expenseModels {
		expenses[i] = em.ToEntityWithRefs()
	}

	return &entity.ExpenseListResult{
		Expenses:   expenses,
		Total:      total,
		Page:       pagination.Page,
		Limit:      pagination.Limit,
		TotalPages: totalPages,
	}, nil
}

// Update persists an expense and recomputes the affected building totals in
// one transaction. When the expense moved to another building both the old
// and the new building are refreshed.
func (r *expenseRepository) Update(ctx context.Context, expense *entity.Expense) error {
	expenseModel := model.ExpenseFromEntity(expense)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current model.ExpenseModel
		if err := tx.Select("building_id").Where("id = ?", expenseModel.ID).First(&current).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerror.ErrExpenseNotFound
			}
			return err
		}

		if err := tx.Save(expenseModel).Error; err != nil {
			return err
		}

		if err := recomputeSpentAmount(tx, expenseModel.BuildingID); err != nil {
			return err
		}
		if current.BuildingID != expenseModel.BuildingID {
			return recomputeSpentAmount(tx, current.BuildingID)
		}
		return nil
	})
}

// Delete removes an expense and recomputes the owning building's total in
// one transaction.
func (r *expenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current model.ExpenseModel
		if err := tx.Select("building_id").Where("id = ?", id).First(&current).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerror.ErrExpenseNotFound
			}
			return err
		}

		if err := tx.Where("id = ?", id).Delete(&model.ExpenseModel{}).Error; err != nil {
			return err
		}
		return recomputeSpentAmount(tx, current.BuildingID)
	})
}

// ScanLedger returns every ledger entry matching the filter, date ascending.
func (r *expenseRepository) ScanLedger(ctx context.Context, filter adapter.ExpenseFilter) ([]adapter.LedgerEntry, error) {
	var expenseModels []model.ExpenseModel
	result := r.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Scopes(scopeExpenseFilter(filter)).
		Order("date ASC, created_at ASC").
		Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]adapter.LedgerEntry, len(expenseModels))
	for i, em := range expenseModels {
		entries[i] = adapter.LedgerEntry{
			ID:          em.ID,
			BuildingID:  em.BuildingID,
			CategoryID:  em.CategoryID,
			CreatedBy:   em.CreatedBy,
			Description: em.Description,
			Amount:      em.Amount,
			Date:        em.Date,
			CreatedAt:   em.CreatedAt,
		}
	}
	return entries, nil
}

// FindRecent returns the most recently created expenses matching the filter.
func (r *expenseRepository) FindRecent(ctx context.Context, filter adapter.ExpenseFilter, limit int) ([]*entity.ExpenseWithCategory, error) {
	var expenseModels []model.ExpenseModel
	result := r.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Scopes(scopeExpenseFilter(filter)).
		Preload("Category").
		Preload("Building").
		Order("created_at DESC").
		Limit(limit).
		Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}

	expenses := make([]*entity.ExpenseWithCategory, len(expenseModels))
	for i, em := range expenseModels {
		expenses[i] = em.ToEntityWithRefs()
	}
	return expenses, nil
}

// CountByCategory returns the number of expenses referencing a category.
func (r *expenseRepository) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Where("category_id = ?", categoryID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}
