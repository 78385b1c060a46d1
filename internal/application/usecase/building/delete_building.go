// Package building contains building-related use cases.
package building

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/construction-tracker/backend/internal/application/adapter"
	domainerror "github.com/construction-tracker/backend/internal/domain/error"
)

// DeleteBuildingInput represents the input for building deletion.
type DeleteBuildingInput struct {
	BuildingID uuid.UUID
}

// DeleteBuildingOutput represents the output of building deletion.
type DeleteBuildingOutput struct {
	Success bool
}

// DeleteBuildingUseCase handles building deletion logic. Deleting a building
// cascades to its expenses; no aggregate recompute follows because the
// aggregate row is gone with the building.
type DeleteBuildingUseCase struct {
	buildingRepo adapter.BuildingRepository
}

// NewDeleteBuildingUseCase creates a new DeleteBuildingUseCase instance.
func NewDeleteBuildingUseCase(buildingRepo adapter.BuildingRepository) *DeleteBuildingUseCase {
	return &DeleteBuildingUseCase{
		buildingRepo: buildingRepo,
	}
}

// Execute performs the building deletion.
func (uc *DeleteBuildingUseCase) Execute(ctx context.Context, input DeleteBuildingInput) (*DeleteBuildingOutput, error) {
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

	if err := uc.buildingRepo.Delete(ctx, input.BuildingID); err != nil {
		return nil, fmt.Errorf("failed to delete building: %w", err)
	}

	slog.Info("building deleted with its expenses",
		"building_id", building.ID,
		"building_name", building.Name,
	)

	return &DeleteBuildingOutput{
		Success: true,
	}, nil
}
