// Package building contains building-related use cases.
package building

import (
	"context"
	"fmt"

	"github.com/construction-tracker/backend/internal/application/adapter"
	"github.com/construction-tracker/backend/internal/domain/entity"
	domainerror "github.com/construction-tracker/backend/internal/domain/error"
)

// ListBuildingsInput represents the input for listing buildings.
type ListBuildingsInput struct {
	Status *entity.BuildingStatus
	Search string
}

// ListBuildingsOutput represents the output of listing buildings.
type ListBuildingsOutput struct {
	Buildings []*entity.Building
}

// ListBuildingsUseCase handles building listing logic.
type ListBuildingsUseCase struct {
	buildingRepo adapter.BuildingRepository
}

// NewListBuildingsUseCase creates a new ListBuildingsUseCase instance.
func NewListBuildingsUseCase(buildingRepo adapter.BuildingRepository) *ListBuildingsUseCase {
	return &ListBuildingsUseCase{
		buildingRepo: buildingRepo,
	}
}

// Execute retrieves buildings matching the filter.
func (uc *ListBuildingsUseCase) Execute(ctx context.Context, input ListBuildingsInput) (*ListBuildingsOutput, error) {
	if input.Status != nil && !entity.IsValidBuildingStatus(*input.Status) {
		return nil, domainerror.NewBuildingError(
			domainerror.ErrCodeInvalidBuildingStatus,
			"status must be 'new', 'started' or 'finished'",
			domainerror.ErrInvalidBuildingStatus,
		)
	}

	buildings, err := uc.buildingRepo.FindAll(ctx, adapter.BuildingFilter{
		Status: input.Status,
		Search: input.Search,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list buildings: %w", err)
	}

	return &ListBuildingsOutput{
		Buildings: buildings,
	}, nil
}
