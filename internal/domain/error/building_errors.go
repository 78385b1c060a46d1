// Package error defines domain-specific errors for the Construction Tracker application.
package error

import "errors"

// Building domain errors.
var (
	// ErrBuildingNotFound is returned when a building is not found in the system.
	ErrBuildingNotFound = errors.New("building not found")

	// ErrInvalidBuildingStatus is returned when the building status is outside the closed set.
	ErrInvalidBuildingStatus = errors.New("invalid building status")

	// ErrNegativeBudget is returned when a building budget is negative.
	ErrNegativeBudget = errors.New("budget must not be negative")

	// ErrBuildingNameRequired is returned when the building name is empty.
	ErrBuildingNameRequired = errors.New("building name is required")
)

// BuildingErrorCode defines error codes for building errors.
// Format: BLD-XXYYYY where XX is category and YYYY is specific error.
type BuildingErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeBuildingNotFound      BuildingErrorCode = "BLD-010001"
	ErrCodeInvalidBuildingStatus BuildingErrorCode = "BLD-010002"
	ErrCodeNegativeBudget        BuildingErrorCode = "BLD-010003"
	ErrCodeBuildingNameRequired  BuildingErrorCode = "BLD-010004"
)

// BuildingError represents a building error with code and message.
type BuildingError struct {
	Code    BuildingErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BuildingError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BuildingError) Unwrap() error {
	return e.Err
}

// NewBuildingError creates a new BuildingError with the given code and message.
func NewBuildingError(code BuildingErrorCode, message string, err error) *BuildingError {
	return &BuildingError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
