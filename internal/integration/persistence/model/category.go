package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/construction-tracker/backend/internal/domain/entity"
)

// ExpenseCategoryModel represents the expense_categories table in the database.
type ExpenseCategoryModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(50);not null"`
	Slug         string    `gorm:"type:varchar(50);not null;uniqueIndex"`
	Icon         string    `gorm:"type:varchar(50);not null"`
	Color        string    `gorm:"type:varchar(7);not null"`
	DisplayOrder int       `gorm:"not null;default:0"`
	Active       bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName returns the table name for the ExpenseCategoryModel.
func (ExpenseCategoryModel) TableName() string {
	return "expense_categories"
}

// ToEntity converts an ExpenseCategoryModel to a domain ExpenseCategory entity.
func (m *ExpenseCategoryModel) ToEntity() *entity.ExpenseCategory {
	return &entity.ExpenseCategory{
		ID:           m.ID,
		Name:         m.Name,
		Slug:         m.Slug,
		Icon:         m.Icon,
		Color:        m.Color,
		DisplayOrder: m.DisplayOrder,
		Active:       m.Active,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// CategoryFromEntity converts a domain ExpenseCategory entity to an ExpenseCategoryModel.
func CategoryFromEntity(category *entity.ExpenseCategory) *ExpenseCategoryModel {
	return &ExpenseCategoryModel{
		ID:           category.ID,
		Name:         category.Name,
		Slug:         category.Slug,
		Icon:         category.Icon,
		Color:        category.Color,
		DisplayOrder: category.DisplayOrder,
		Active:       category.Active,
		CreatedAt:    category.CreatedAt,
		UpdatedAt:    category.UpdatedAt,
	}
}
