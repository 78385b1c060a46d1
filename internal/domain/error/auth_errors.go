// Package error defines domain-specific errors for the Construction Tracker application.
package error

import "errors"

// Authentication domain errors.
var (
	// ErrUserNotFound is returned when a user is not found in the system.
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameAlreadyExists is returned when attempting to create a user with an existing username.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrInvalidCredentials is returned when login credentials are invalid.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is returned when a token is invalid or malformed.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a token has expired.
	ErrExpiredToken = errors.New("token has expired")

	// ErrUnauthenticated is returned when no actor identity is present on a request.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrForbidden is returned when the resolved scope does not permit the operation.
	ErrForbidden = errors.New("operation not permitted")

	// ErrWeakPassword is returned when the provided password does not meet requirements.
	ErrWeakPassword = errors.New("password does not meet minimum requirements")

	// ErrInvalidRole is returned when a role outside the closed set is assigned.
	ErrInvalidRole = errors.New("invalid role")

	// ErrRootOperatorImmutable is returned when attempting to delete or demote the root operator.
	ErrRootOperatorImmutable = errors.New("root operator cannot be removed or demoted")

	// ErrInvalidUsername is returned when a username is empty or malformed.
	ErrInvalidUsername = errors.New("invalid username")
)

// AuthErrorCode defines error codes for authentication and authorization errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Login errors (01XXXX)
	ErrCodeInvalidCredentials AuthErrorCode = "AUTH-010001"
	ErrCodeUserNotFound       AuthErrorCode = "AUTH-010002"
	ErrCodeRateLimited        AuthErrorCode = "AUTH-010003"

	// Token errors (02XXXX)
	ErrCodeInvalidToken AuthErrorCode = "AUTH-020001"
	ErrCodeExpiredToken AuthErrorCode = "AUTH-020002"
	ErrCodeMissingToken AuthErrorCode = "AUTH-020003"

	// Authorization errors (03XXXX)
	ErrCodeForbidden       AuthErrorCode = "AUTH-030001"
	ErrCodeUnauthenticated AuthErrorCode = "AUTH-030002"

	// User management errors (04XXXX)
	ErrCodeUsernameExists        AuthErrorCode = "AUTH-040001"
	ErrCodeWeakPassword          AuthErrorCode = "AUTH-040002"
	ErrCodeInvalidRole           AuthErrorCode = "AUTH-040003"
	ErrCodeRootOperatorImmutable AuthErrorCode = "AUTH-040004"
	ErrCodeInvalidUsername       AuthErrorCode = "AUTH-040005"
)

// AuthError represents an authentication error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
