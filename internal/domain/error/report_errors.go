// Package error defines domain-specific errors for the Construction Tracker application.
package error

import "errors"

// Report domain errors.
var (
	// ErrInvalidReportPeriod is returned when report period parameters are missing or malformed.
	ErrInvalidReportPeriod = errors.New("invalid report period")

	// ErrInvalidReportMonth is returned when the month parameter is outside 1-12.
	ErrInvalidReportMonth = errors.New("month must be between 1 and 12")
)

// ReportErrorCode defines error codes for report errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidReportPeriod ReportErrorCode = "RPT-010001"
	ErrCodeInvalidReportMonth  ReportErrorCode = "RPT-010002"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
