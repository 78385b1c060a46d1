// Package building contains building-related use cases.
package building

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/construction-tracker/backend/internal/application/adapter"
	"github.com/construction-tracker/backend/internal/domain/entity"
	domainerror "github.com/construction-tracker/backend/internal/domain/error"
)

// MaxBuildingNameLength is the maximum allowed length for building names.
const MaxBuildingNameLength = 255

// CreateBuildingInput represents the input for building creation.
type CreateBuildingInput struct {
	Name        string
	Status      entity.BuildingStatus
	Budget      decimal.Decimal
	StartDate   *time.Time
	EndDate     *time.Time
	Description string
}

// CreateBuildingOutput represents the output of building creation.
type CreateBuildingOutput struct {
	Building *entity.Building
}

// CreateBuildingUseCase handles building creation logic.
type CreateBuildingUseCase struct {
	buildingRepo adapter.BuildingRepository
}

// NewCreateBuildingUseCase creates a new CreateBuildingUseCase instance.
func NewCreateBuildingUseCase(buildingRepo adapter.BuildingRepository) *CreateBuildingUseCase {
	return &CreateBuildingUseCase{
		buildingRepo: buildingRepo,
	}
}

// Execute performs the building creation.
func (uc *CreateBuildingUseCase) Execute(ctx context.Context, input CreateBuildingInput) (*CreateBuildingOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || len(name) > MaxBuildingNameLength {
		return nil, domainerror.NewBuildingError(
			domainerror.ErrCodeBuildingNameRequired,
			fmt.Sprintf("building name must be between 1 and %d characters", MaxBuildingNameLength),
			domainerror.ErrBuildingNameRequired,
		)
	}

	status := input.Status
	if status == "" {
		status = entity.BuildingStatusNew
	}
	if !entity.IsValidBuildingStatus(status) {
		return nil, domainerror.NewBuildingError(
			domainerror.ErrCodeInvalidBuildingStatus,
			"status must be 'new', 'started' or 'finished'",
			domainerror.ErrInvalidBuildingStatus,
		)
	}

	if input.Budget.IsNegative() {
		return nil, domainerror.NewBuildingError(
			domainerror.ErrCodeNegativeBudget,
			"budget must not be negative",
			domainerror.ErrNegativeBudget,
		)
	}

	building := entity.NewBuilding(name, status, input.Budget, input.StartDate, input.EndDate, input.Description)

	if err := uc.buildingRepo.Create(ctx, building); err != nil {
		return nil, fmt.Errorf("failed to create building: %w", err)
	}

	return &CreateBuildingOutput{
		Building: building,
	}, nil
}
