package dto

import (
	"github.com/construction-tracker/backend/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name         string `json:"name" binding:"required,min=1,max=50"`
	Slug         string `json:"slug" binding:"required,min=1,max=50"`
	Icon         string `json:"icon,omitempty" binding:"omitempty,max=50"`
	Color        string `json:"color,omitempty" binding:"omitempty,hexcolor"`
	DisplayOrder int    `json:"display_order,omitempty"`
}

// UpdateCategoryRequest represents the request body for category update.
type UpdateCategoryRequest struct {
	Name         *string `json:"name,omitempty" binding:"omitempty,min=1,max=50"`
	Icon         *string `json:"icon,omitempty" binding:"omitempty,max=50"`
	Color        *string `json:"color,omitempty" binding:"omitempty,hexcolor"`
	DisplayOrder *int    `json:"display_order,omitempty"`
	Active       *bool   `json:"active,omitempty"`
}

// CategoryResponse represents a category in API responses.
type CategoryResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Icon         string `json:"icon"`
	Color        string `json:"color"`
	DisplayOrder int    `json:"display_order"`
	Active       bool   `json:"active"`
}

// CategoryListResponse represents the response body for category listing.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryResponse converts an ExpenseCategory entity to a CategoryResponse.
func ToCategoryResponse(category *entity.ExpenseCategory) CategoryResponse {
	return CategoryResponse{
		ID:           category.ID.String(),
		Name:         category.Name,
		Slug:         category.Slug,
		Icon:         category.Icon,
		Color:        category.Color,
		DisplayOrder: category.DisplayOrder,
		Active:       category.Active,
	}
}

// ToCategoryListResponse converts category entities to a CategoryListResponse.
func ToCategoryListResponse(categories []*entity.ExpenseCategory) CategoryListResponse {
	response := CategoryListResponse{
		Categories: make([]CategoryResponse, len(categories)),
	}
	for i, category := range categories {
		response.Categories[i] = ToCategoryResponse(category)
	}
	return response
}
