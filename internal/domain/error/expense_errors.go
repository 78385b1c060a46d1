// Package error defines domain-specific errors for the Construction Tracker application.
package error

import "errors"

// Expense domain errors.
var (
	// ErrExpenseNotFound is returned when an expense is not found in the system.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrExpenseBuildingNotFound is returned when the referenced building does not exist.
	ErrExpenseBuildingNotFound = errors.New("building not found for expense")

	// ErrExpenseCategoryNotFound is returned when the referenced category does not exist.
	ErrExpenseCategoryNotFound = errors.New("category not found for expense")

	// ErrExpenseDescriptionRequired is returned when the expense description is empty.
	ErrExpenseDescriptionRequired = errors.New("expense description is required")

	// ErrExpenseDescriptionTooLong is returned when the description exceeds the maximum length.
	ErrExpenseDescriptionTooLong = errors.New("expense description too long")
)

// ExpenseErrorCode defines error codes for expense errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExpenseErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeExpenseNotFound            ExpenseErrorCode = "EXP-010001"
	ErrCodeExpenseBuildingNotFound    ExpenseErrorCode = "EXP-010002"
	ErrCodeExpenseCategoryNotFound    ExpenseErrorCode = "EXP-010003"
	ErrCodeExpenseDescriptionRequired ExpenseErrorCode = "EXP-010004"
	ErrCodeExpenseDescriptionTooLong  ExpenseErrorCode = "EXP-010005"
)

// ExpenseError represents an expense error with code and message.
type ExpenseError struct {
	Code    ExpenseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExpenseError) Unwrap() error {
	return e.Err
}

// NewExpenseError creates a new ExpenseError with the given code and message.
func NewExpenseError(code ExpenseErrorCode, message string, err error) *ExpenseError {
	return &ExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
