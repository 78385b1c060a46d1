// Package user contains user management use cases. All of them require a
// caller whose access scope grants user management.
package user

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/construction-tracker/backend/internal/application/adapter"
	"github.com/construction-tracker/backend/internal/domain/entity"
	domainerror "github.com/construction-tracker/backend/internal/domain/error"
)

const (
	// MinPasswordLength is the minimum accepted password length.
	MinPasswordLength = 8

	// MaxUsernameLength caps the username length.
	MaxUsernameLength = 150
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9@.+_-]+$`)

// CreateUserInput represents the input for user creation.
type CreateUserInput struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
	Password  string
	Role      entity.Role
}

// CreateUserOutput represents the output of user creation.
type CreateUserOutput struct {
	User *entity.User
}

// CreateUserUseCase handles user creation logic.
type CreateUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
}

// NewCreateUserUseCase creates a new CreateUserUseCase instance.
func NewCreateUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
	}
}

// Execute performs the user creation. Accounts created here are never root
// operators; that flag is only set by startup provisioning.
func (uc *CreateUserUseCase) Execute(ctx context.Context, input CreateUserInput) (*CreateUserOutput, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" || len(username) > MaxUsernameLength || !usernamePattern.MatchString(username) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidUsername,
			"username must contain only letters, digits and @.+-_ characters",
			domainerror.ErrInvalidUsername,
		)
	}

	if !entity.IsValidRole(input.Role) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidRole,
			fmt.Sprintf("role must be one of admin, accountant, viewer, got %q", input.Role),
			domainerror.ErrInvalidRole,
		)
	}

	if err := validatePasswordStrength(input.Password); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeWeakPassword,
			"password does not meet minimum requirements",
			domainerror.ErrWeakPassword,
		)
	}

	exists, err := uc.userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUsernameExists,
			"username already exists",
			domainerror.ErrUsernameAlreadyExists,
		)
	}

	passwordHash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := entity.NewUser(username, input.Email, input.FirstName, input.LastName, passwordHash, input.Role, false)

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &CreateUserOutput{
		User: user,
	}, nil
}

// validatePasswordStrength requires a minimum length plus at least one
// letter and one digit.
func validatePasswordStrength(password string) error {
	if len(password) < MinPasswordLength {
		return domainerror.ErrWeakPassword
	}
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return domainerror.ErrWeakPassword
	}
	return nil
}
