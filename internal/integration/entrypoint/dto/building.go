package dto

import (
	"time"

	"github.com/construction-tracker/backend/internal/domain/entity"
)

// CreateBuildingRequest represents the request body for building creation.
type CreateBuildingRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=255"`
	Status      string  `json:"status,omitempty" binding:"omitempty,oneof=new started finished"`
	Budget      float64 `json:"budget" binding:"required"`
	StartDate   *string `json:"start_date,omitempty"`
	EndDate     *string `json:"end_date,omitempty"`
	Description string  `json:"description,omitempty" binding:"omitempty,max=2000"`
}

// UpdateBuildingRequest represents the request body for building update.
type UpdateBuildingRequest struct {
	Name        *string  `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Status      *string  `json:"status,omitempty" binding:"omitempty,oneof=new started finished"`
	Budget      *float64 `json:"budget,omitempty"`
	StartDate   *string  `json:"start_date,omitempty"`
	EndDate     *string  `json:"end_date,omitempty"`
	ClearDates  bool     `json:"clear_dates,omitempty"`
	Description *string  `json:"description,omitempty" binding:"omitempty,max=2000"`
}

// BuildingResponse represents a building in API responses. Monetary values
// are rendered as decimal strings.
type BuildingResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Status       string  `json:"status"`
	Budget       string  `json:"budget"`
	SpentAmount  string  `json:"spent_amount"`
	Remaining    string  `json:"remaining"`
	UsagePercent string  `json:"usage_percent"`
	StartDate    *string `json:"start_date,omitempty"`
	EndDate      *string `json:"end_date,omitempty"`
	Description  string  `json:"description,omitempty"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

// BuildingListResponse represents the response body for building listing.
type BuildingListResponse struct {
	Buildings []BuildingResponse `json:"buildings"`
	Total     int                `json:"total"`
}

// ToBuildingResponse converts a Building entity to a BuildingResponse.
func ToBuildingResponse(building *entity.Building) BuildingResponse {
	response := BuildingResponse{
		ID:           building.ID.String(),
		Name:         building.Name,
		Status:       string(building.Status),
		Budget:       building.Budget.String(),
		SpentAmount:  building.SpentAmount.String(),
		Remaining:    building.RemainingBudget().String(),
		UsagePercent: building.UsagePercent().Round(2).String(),
		Description:  building.Description,
		CreatedAt:    building.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    building.UpdatedAt.Format(time.RFC3339),
	}
	if building.StartDate != nil {
		d := building.StartDate.Format("2006-01-02")
		response.StartDate = &d
	}
	if building.EndDate != nil {
		d := building.EndDate.Format("2006-01-02")
		response.EndDate = &d
	}
	return response
}

// ToBuildingListResponse converts building entities to a BuildingListResponse.
func ToBuildingListResponse(buildings []*entity.Building) BuildingListResponse {
	response := BuildingListResponse{
		Buildings: make([]BuildingResponse, len(buildings)),
		Total:     len(buildings),
	}
	for i, building := range buildings {
		response.Buildings[i] = ToBuildingResponse(building)
	}
	return response
}
