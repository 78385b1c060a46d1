package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/construction-tracker/backend/internal/domain/entity"
)

// ExpenseModel represents the expenses table in the database. Deleting a
// building removes its expenses; deleting a user keeps the rows and nulls
// created_by.
type ExpenseModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	BuildingID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	CategoryID  *uuid.UUID      `gorm:"type:uuid;index"`
	Description string          `gorm:"type:varchar(500);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date        time.Time       `gorm:"type:date;not null;index"`
	ImageURL    *string         `gorm:"type:varchar(500)"`
	CreatedBy   *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Building *BuildingModel        `gorm:"foreignKey:BuildingID;references:ID;constraint:OnDelete:CASCADE"`
	Category *ExpenseCategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
	Creator  *UserModel            `gorm:"foreignKey:CreatedBy;references:ID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToEntity converts an ExpenseModel to a domain Expense entity.
func (m *ExpenseModel) ToEntity() *entity.Expense {
	return &entity.Expense{
		ID:          m.ID,
		BuildingID:  m.BuildingID,
		CategoryID:  m.CategoryID,
		Description: m.Description,
		Amount:      m.Amount,
		Date:        m.Date,
		ImageURL:    m.ImageURL,
		CreatedBy:   m.CreatedBy,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ToEntityWithRefs converts an ExpenseModel with preloaded relationships to
// an ExpenseWithCategory entity.
func (m *ExpenseModel) ToEntityWithRefs() *entity.ExpenseWithCategory {
	result := &entity.ExpenseWithCategory{
		Expense: m.ToEntity(),
	}
	if m.Category != nil {
		result.Category = m.Category.ToEntity()
	}
	if m.Building != nil {
		result.Building = m.Building.ToEntity()
	}
	return result
}

// ExpenseFromEntity converts a domain Expense entity to an ExpenseModel.
func ExpenseFromEntity(expense *entity.Expense) *ExpenseModel {
	return &ExpenseModel{
		ID:          expense.ID,
		BuildingID:  expense.BuildingID,
		CategoryID:  expense.CategoryID,
		Description: expense.Description,
		Amount:      expense.Amount,
		Date:        expense.Date,
		ImageURL:    expense.ImageURL,
		CreatedBy:   expense.CreatedBy,
		CreatedAt:   expense.CreatedAt,
		UpdatedAt:   expense.UpdatedAt,
	}
}
