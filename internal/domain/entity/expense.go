// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense represents a single expenditure recorded against a building.
// Negative amounts are accepted and treated as corrections/refunds; the
// aggregation layer sums them like any other contribution.
type Expense struct {
	ID          uuid.UUID
	BuildingID  uuid.UUID
	CategoryID  *uuid.UUID // Optional, can be uncategorized
	Description string
	Amount      decimal.Decimal
	Date        time.Time
	ImageURL    *string    // Optional receipt image reference; upload handling is external
	CreatedBy   *uuid.UUID // Set once at creation, nulled if the creator is removed
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewExpense creates a new Expense entity.
func NewExpense(
	buildingID uuid.UUID,
	categoryID *uuid.UUID,
	description string,
	amount decimal.Decimal,
	date time.Time,
	imageURL *string,
	createdBy uuid.UUID,
) *Expense {
	now := time.Now().UTC()
	creator := createdBy

	return &Expense{
		ID:          uuid.New(),
		BuildingID:  buildingID,
		CategoryID:  categoryID,
		Description: description,
		Amount:      amount,
		Date:        date,
		ImageURL:    imageURL,
		CreatedBy:   &creator,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// ExpenseWithCategory represents an expense with its category resolved for display.
type ExpenseWithCategory struct {
	Expense  *Expense
	Category *ExpenseCategory
	Building *Building
}

// ExpenseListResult represents the result of listing expenses.
type ExpenseListResult struct {
	Expenses   []*ExpenseWithCategory
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}
