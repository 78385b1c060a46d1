// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BuildingStatus represents the construction status of a building.
type BuildingStatus string

const (
	BuildingStatusNew      BuildingStatus = "new"
	BuildingStatusStarted  BuildingStatus = "started"
	BuildingStatusFinished BuildingStatus = "finished"
)

// BuildingStatuses lists every valid building status in display order.
var BuildingStatuses = []BuildingStatus{
	BuildingStatusNew,
	BuildingStatusStarted,
	BuildingStatusFinished,
}

// IsValidBuildingStatus reports whether the given status is a known one.
func IsValidBuildingStatus(status BuildingStatus) bool {
	switch status {
	case BuildingStatusNew, BuildingStatusStarted, BuildingStatusFinished:
		return true
	}
	return false
}

// Building represents a construction project with an allocated budget.
// SpentAmount is derived from the expense ledger by the persistence layer
// and is never set directly by callers.
type Building struct {
	ID          uuid.UUID
	Name        string
	Status      BuildingStatus
	Budget      decimal.Decimal
	SpentAmount decimal.Decimal
	StartDate   *time.Time
	EndDate     *time.Time
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewBuilding creates a new Building entity.
func NewBuilding(name string, status BuildingStatus, budget decimal.Decimal, startDate, endDate *time.Time, description string) *Building {
	now := time.Now().UTC()

	return &Building{
		ID:          uuid.New(),
		Name:        name,
		Status:      status,
		Budget:      budget,
		SpentAmount: decimal.Zero,
		StartDate:   startDate,
		EndDate:     endDate,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// RemainingBudget returns budget minus spent amount. The result may be
// negative: an over-budget building is a valid, observable state.
func (b *Building) RemainingBudget() decimal.Decimal {
	return b.Budget.Sub(b.SpentAmount)
}

// UsagePercent returns spent/budget*100. Returns zero when the budget is
// zero so a freshly created building never divides by zero.
func (b *Building) UsagePercent() decimal.Decimal {
	if b.Budget.IsZero() {
		return decimal.Zero
	}
	return b.SpentAmount.Div(b.Budget).Mul(decimal.NewFromInt(100))
}

// BuildingWithStats represents a building with expense statistics attached.
type BuildingWithStats struct {
	Building     *Building
	ExpenseCount int
	ExpenseTotal decimal.Decimal
}
