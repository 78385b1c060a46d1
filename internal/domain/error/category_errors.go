// Package error defines domain-specific errors for the Construction Tracker application.
package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category is not found in the system.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategorySlugExists is returned when attempting to create a category with an existing slug.
	ErrCategorySlugExists = errors.New("category slug already exists")

	// ErrCategoryInUse is returned when deleting a category that expenses still reference.
	ErrCategoryInUse = errors.New("category is referenced by existing expenses")

	// ErrCategoryNameRequired is returned when the category name is empty.
	ErrCategoryNameRequired = errors.New("category name is required")

	// ErrInvalidCategorySlug is returned when the category slug is empty or malformed.
	ErrInvalidCategorySlug = errors.New("invalid category slug")
)

// CategoryErrorCode defines error codes for category errors.
// Format: CAT-XXYYYY where XX is category and YYYY is specific error.
type CategoryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeCategoryNotFound     CategoryErrorCode = "CAT-010001"
	ErrCodeCategorySlugExists   CategoryErrorCode = "CAT-010002"
	ErrCodeCategoryNameRequired CategoryErrorCode = "CAT-010003"
	ErrCodeInvalidCategorySlug  CategoryErrorCode = "CAT-010004"

	// Conflict errors (02XXXX)
	ErrCodeCategoryInUse CategoryErrorCode = "CAT-020001"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
