package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/construction-tracker/backend/internal/application/adapter"
	"github.com/construction-tracker/backend/internal/domain/entity"
	domainerror "github.com/construction-tracker/backend/internal/domain/error"
	"github.com/construction-tracker/backend/internal/integration/persistence/model"
)

// buildingRepository implements the adapter.BuildingRepository interface.
type buildingRepository struct {
	db *gorm.DB
}

// NewBuildingRepository creates a new building repository instance.
func NewBuildingRepository(db *gorm.DB) adapter.BuildingRepository {
	return &buildingRepository{
		db: db,
	}
}

// Create creates a new building in the database.
func (r *buildingRepository) Create(ctx context.Context, building *entity.Building) error {
	buildingModel := model.BuildingFromEntity(building)
	return r.db.WithContext(ctx).Create(buildingModel).Error
}

// FindByID retrieves a building by its ID.
func (r *buildingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Building, error) {
	var buildingModel model.BuildingModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&buildingModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBuildingNotFound
		}
		return nil, result.Error
	}
	return buildingModel.ToEntity(), nil
}

// FindAll retrieves buildings matching the filter, newest first.
func (r *buildingRepository) FindAll(ctx context.Context, filter adapter.BuildingFilter) ([]*entity.Building, error) {
	query := r.db.WithContext(ctx).Model(&model.BuildingModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.Search != "" {
		searchPattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ?", searchPattern)
	}

	var buildingModels []model.BuildingModel
	result := query.Order("created_at DESC").Find(&buildingModels)
	if result.Error != nil {
		return nil, result.Error
	}

	buildings := make([]*entity.Building, len(buildingModels))
	for i, bm := range buildingModels {
		buildings[i] = bm.ToEntity()
	}
	return buildings, nil
}

// Update updates an existing building. SpentAmount is excluded: the expense
// repository is the only writer of that column.
func (r *buildingRepository) Update(ctx context.Context, building *entity.Building) error {
	buildingModel := model.BuildingFromEntity(building)
	result := r.db.WithContext(ctx).
		Model(&model.BuildingModel{}).
		Where("id = ?", buildingModel.ID).
		Select("Name", "Status", "Budget", "StartDate", "EndDate", "Description", "UpdatedAt").
		Updates(buildingModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrBuildingNotFound
	}
	return nil
}

// Delete removes a building and its expenses in one transaction. No
// recompute is needed: the aggregate row disappears with the building.
func (r *buildingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("building_id = ?", id).Delete(&model.ExpenseModel{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&model.BuildingModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrBuildingNotFound
		}
		return nil
	})
}

// Count returns the number of buildings.
func (r *buildingRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.BuildingModel{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}
