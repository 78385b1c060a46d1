package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/construction-tracker/backend/internal/application/adapter"
	"github.com/construction-tracker/backend/internal/domain/entity"
	domainerror "github.com/construction-tracker/backend/internal/domain/error"
	"github.com/construction-tracker/backend/internal/integration/persistence/model"
)

// pqUniqueViolation is the postgres error code for unique index conflicts.
const pqUniqueViolation = "23505"

// isUniqueViolation reports whether err is a unique index conflict, either
// translated by gorm or raw from the postgres driver.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation
}

// categoryRepository implements the adapter.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance.
func NewCategoryRepository(db *gorm.DB) adapter.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// Create creates a new category in the database.
func (r *categoryRepository) Create(ctx context.Context, category *entity.ExpenseCategory) error {
	categoryModel := model.CategoryFromEntity(category)
	if err := r.db.WithContext(ctx).Create(categoryModel).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerror.ErrCategorySlugExists
		}
		return err
	}
	return nil
}

// FindByID retrieves a category by its ID.
func (r *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ExpenseCategory, error) {
	var categoryModel model.ExpenseCategoryModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCategoryNotFound
		}
		return nil, result.Error
	}
	return categoryModel.ToEntity(), nil
}

// FindBySlug retrieves a category by its slug.
func (r *categoryRepository) FindBySlug(ctx context.Context, slug string) (*entity.ExpenseCategory, error) {
	var categoryModel model.ExpenseCategoryModel
	result := r.db.WithContext(ctx).Where("slug = ?", slug).First(&categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCategoryNotFound
		}
		return nil, result.Error
	}
	return categoryModel.ToEntity(), nil
}

// FindAll retrieves categories ordered by display order, ties broken by name.
func (r *categoryRepository) FindAll(ctx context.Context, activeOnly bool) ([]*entity.ExpenseCategory, error) {
	query := r.db.WithContext(ctx).Model(&model.ExpenseCategoryModel{})
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	var categoryModels []model.ExpenseCategoryModel
	result := query.Order("display_order ASC, name ASC").Find(&categoryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	categories := make([]*entity.ExpenseCategory, len(categoryModels))
	for i, cm := range categoryModels {
		categories[i] = cm.ToEntity()
	}
	return categories, nil
}

// Update updates an existing category in the database.
func (r *categoryRepository) Update(ctx context.Context, category *entity.ExpenseCategory) error {
	categoryModel := model.CategoryFromEntity(category)
	result := r.db.WithContext(ctx).
		Model(&model.ExpenseCategoryModel{}).
		Where("id = ?", categoryModel.ID).
		Select("Name", "Slug", "Icon", "Color", "DisplayOrder", "Active", "UpdatedAt").
		Updates(categoryModel)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domainerror.ErrCategorySlugExists
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrCategoryNotFound
	}
	return nil
}

// Delete removes a category. The reference check and the delete run in one
// transaction so a concurrent expense insert cannot slip between them and
// orphan its reference.
func (r *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var references int64
		if err := tx.Model(&model.ExpenseModel{}).Where("category_id = ?", id).Count(&references).Error; err != nil {
			return err
		}
		if references > 0 {
			return domainerror.ErrCategoryInUse
		}

		result := tx.Where("id = ?", id).Delete(&model.ExpenseCategoryModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrCategoryNotFound
		}
		return nil
	})
}

// Seed inserts the given categories when the directory is empty.
func (r *categoryRepository) Seed(ctx context.Context, categories []*entity.ExpenseCategory) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.ExpenseCategoryModel{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		for _, category := range categories {
			if err := tx.Create(model.CategoryFromEntity(category)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
