// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/construction-tracker/backend/internal/domain/entity"
)

// BuildingModel represents the buildings table in the database.
// SpentAmount is maintained by the expense repository inside each expense
// write transaction; application code never writes it directly.
type BuildingModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Status      string          `gorm:"type:varchar(20);not null;index"`
	Budget      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	SpentAmount decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	StartDate   *time.Time      `gorm:"type:date"`
	EndDate     *time.Time      `gorm:"type:date"`
	Description string          `gorm:"type:text"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the BuildingModel.
func (BuildingModel) TableName() string {
	return "buildings"
}

// ToEntity converts a BuildingModel to a domain Building entity.
func (m *BuildingModel) ToEntity() *entity.Building {
	return &entity.Building{
		ID:          m.ID,
		Name:        m.Name,
		Status:      entity.BuildingStatus(m.Status),
		Budget:      m.Budget,
		SpentAmount: m.SpentAmount,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// BuildingFromEntity converts a domain Building entity to a BuildingModel.
func BuildingFromEntity(building *entity.Building) *BuildingModel {
	return &BuildingModel{
		ID:          building.ID,
		Name:        building.Name,
		Status:      string(building.Status),
		Budget:      building.Budget,
		SpentAmount: building.SpentAmount,
		StartDate:   building.StartDate,
		EndDate:     building.EndDate,
		Description: building.Description,
		CreatedAt:   building.CreatedAt,
		UpdatedAt:   building.UpdatedAt,
	}
}
