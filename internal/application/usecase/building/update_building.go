// Package building contains building-related use cases.
package building

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/construction-tracker/backend/internal/application/adapter"
	"github.com/construction-tracker/backend/internal/domain/entity"
	domainerror "github.com/construction-tracker/backend/internal/domain/error"
)

// UpdateBuildingInput represents the input for building update. Nil fields
// are left unchanged. SpentAmount is deliberately absent: it is derived from
// the ledger and never writable by callers.
type UpdateBuildingInput struct {
	BuildingID  uuid.UUID
	Name        *string
	Status      *entity.BuildingStatus
	Budget      *decimal.Decimal
	StartDate   *time.Time
	EndDate     *time.Time
	ClearDates  bool
	Description *string
}

// UpdateBuildingOutput represents the output of building update.
type UpdateBuildingOutput struct {
	Building *entity.Building
}

// UpdateBuildingUseCase handles building update logic.
type UpdateBuildingUseCase struct {
	buildingRepo adapter.BuildingRepository
}

// NewUpdateBuildingUseCase creates a new UpdateBuildingUseCase instance.
func NewUpdateBuildingUseCase(buildingRepo adapter.BuildingRepository) *UpdateBuildingUseCase {
	return &UpdateBuildingUseCase{
		buildingRepo: buildingRepo,
	}
}

// Execute performs the building update.
func (uc *UpdateBuildingUseCase) Execute(ctx context.Context, input UpdateBuildingInput) (*UpdateBuildingOutput, error) {
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

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" || len(name) > MaxBuildingNameLength {
			return nil, domainerror.NewBuildingError(
				domainerror.ErrCodeBuildingNameRequired,
				fmt.Sprintf("building name must be between 1 and %d characters", MaxBuildingNameLength),
				domainerror.ErrBuildingNameRequired,
			)
		}
		building.Name = name
	}

	if input.Status != nil {
		if !entity.IsValidBuildingStatus(*input.Status) {
			return nil, domainerror.NewBuildingError(
				domainerror.ErrCodeInvalidBuildingStatus,
				"status must be 'new', 'started' or 'finished'",
				domainerror.ErrInvalidBuildingStatus,
			)
		}
		building.Status = *input.Status
	}

	if input.Budget != nil {
		if input.Budget.IsNegative() {
			return nil, domainerror.NewBuildingError(
				domainerror.ErrCodeNegativeBudget,
				"budget must not be negative",
				domainerror.ErrNegativeBudget,
			)
		}
		building.Budget = *input.Budget
	}

	if input.ClearDates {
		building.StartDate = nil
		building.EndDate = nil
	}
	if input.StartDate != nil {
		building.StartDate = input.StartDate
	}
	if input.EndDate != nil {
		building.EndDate = input.EndDate
	}
	if input.Description != nil {
		building.Description = *input.Description
	}
	building.UpdatedAt = time.Now().UTC()

	if err := uc.buildingRepo.Update(ctx, building); err != nil {
		return nil, fmt.Errorf("failed to update building: %w", err)
	}

	return &UpdateBuildingOutput{
		Building: building,
	}, nil
}
