package dto

import (
	"time"

	"github.com/construction-tracker/backend/internal/domain/entity"
)

// CreateExpenseRequest represents the request body for expense creation.
type CreateExpenseRequest struct {
	BuildingID  string  `json:"building_id" binding:"required,uuid"`
	CategoryID  *string `json:"category_id,omitempty" binding:"omitempty,uuid"`
	Description string  `json:"description" binding:"required,min=1,max=500"`
	Amount      float64 `json:"amount" binding:"required"`
	Date        *string `json:"date,omitempty"`
	ImageURL    *string `json:"image_url,omitempty" binding:"omitempty,max=2000"`
}

// UpdateExpenseRequest represents the request body for expense update. Nil
// fields are left untouched; ClearCategory detaches the expense from its
// category.
type UpdateExpenseRequest struct {
	BuildingID    *string  `json:"building_id,omitempty" binding:"omitempty,uuid"`
	CategoryID    *string  `json:"category_id,omitempty" binding:"omitempty,uuid"`
	ClearCategory bool     `json:"clear_category,omitempty"`
	Description   *string  `json:"description,omitempty" binding:"omitempty,min=1,max=500"`
	Amount        *float64 `json:"amount,omitempty"`
	Date          *string  `json:"date,omitempty"`
	ImageURL      *string  `json:"image_url,omitempty" binding:"omitempty,max=2000"`
}

// ExpenseResponse represents an expense in API responses.
type ExpenseResponse struct {
	ID          string            `json:"id"`
	BuildingID  string            `json:"building_id"`
	Building    *BuildingSummary  `json:"building,omitempty"`
	CategoryID  *string           `json:"category_id,omitempty"`
	Category    *CategorySummary  `json:"category,omitempty"`
	Description string            `json:"description"`
	Amount      string            `json:"amount"`
	Date        string            `json:"date"`
	ImageURL    *string           `json:"image_url,omitempty"`
	CreatedBy   *string           `json:"created_by,omitempty"`
	CreatedAt   string            `json:"created_at"`
	UpdatedAt   string            `json:"updated_at"`
}

// BuildingSummary is the compact building reference embedded in expense rows.
type BuildingSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CategorySummary is the compact category reference embedded in expense rows.
type CategorySummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// ExpenseListResponse represents the paginated response body for expense listing.
type ExpenseListResponse struct {
	Expenses   []ExpenseResponse `json:"expenses"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
}

// ToExpenseResponse converts an expense with its resolved references to an
// ExpenseResponse.
func ToExpenseResponse(row *entity.ExpenseWithCategory) ExpenseResponse {
	expense := row.Expense

	response := ExpenseResponse{
		ID:          expense.ID.String(),
		BuildingID:  expense.BuildingID.String(),
		Description: expense.Description,
		Amount:      expense.Amount.String(),
		Date:        expense.Date.Format("2006-01-02"),
		ImageURL:    expense.ImageURL,
		CreatedAt:   expense.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   expense.UpdatedAt.Format(time.RFC3339),
	}

	if expense.CategoryID != nil {
		id := expense.CategoryID.String()
		response.CategoryID = &id
	}
	if expense.CreatedBy != nil {
		id := expense.CreatedBy.String()
		response.CreatedBy = &id
	}
	if row.Building != nil {
		response.Building = &BuildingSummary{
			ID:   row.Building.ID.String(),
			Name: row.Building.Name,
		}
	}
	if row.Category != nil {
		response.Category = &CategorySummary{
			ID:   row.Category.ID.String(),
			Name: row.Category.Name,
			Slug: row.Category.Slug,
		}
	}

	return response
}

// ToExpenseListResponse converts a paginated list result to an ExpenseListResponse.
func ToExpenseListResponse(result *entity.ExpenseListResult) ExpenseListResponse {
	expenses := make([]ExpenseResponse, 0, len(result.Expenses))
	for _, row := range result.Expenses {
		expenses = append(expenses, ToExpenseResponse(row))
	}

	return ExpenseListResponse{
		Expenses:   expenses,
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	}
}
