// Package building contains building-related use cases.
package building

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/construction-tracker/backend/internal/application/adapter"
	"github.com/construction-tracker/backend/internal/domain/entity"
	domainerror "github.com/construction-tracker/backend/internal/domain/error"
)

// GetBuildingInput represents the input for retrieving a building.
type GetBuildingInput struct {
	BuildingID uuid.UUID
}

// GetBuildingOutput represents the output of retrieving a building.
type GetBuildingOutput struct {
	Building *entity.Building
}

// GetBuildingUseCase handles building retrieval logic.
type GetBuildingUseCase struct {
	buildingRepo adapter.BuildingRepository
}

// NewGetBuildingUseCase creates a new GetBuildingUseCase instance.
func NewGetBuildingUseCase(buildingRepo adapter.BuildingRepository) *GetBuildingUseCase {
	return &GetBuildingUseCase{
		buildingRepo: buildingRepo,
	}
}

// Execute retrieves the building.
func (uc *GetBuildingUseCase) Execute(ctx context.Context, input GetBuildingInput) (*GetBuildingOutput, error) {
	building, err := uc.buildingRepo.FindByID(ctx, input.BuildingID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBuildingNotFound) {
			return nil, domainerror.NewBuildingError(
				domainerror.ErrCodeBuildingNotFound,
				"building not found",
				domainerror.ErrBuildingNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find building: %w", err)
	}

	return &GetBuildingOutput{
		Building: building,
	}, nil
}
