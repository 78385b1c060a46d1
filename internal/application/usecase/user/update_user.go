package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/construction-tracker/backend/internal/application/adapter"
	"github.com/construction-tracker/backend/internal/domain/entity"
	domainerror "github.com/construction-tracker/backend/internal/domain/error"
)

// UpdateUserInput represents the input for user update. Nil fields are left
// unchanged. Usernames are immutable.
type UpdateUserInput struct {
	UserID    uuid.UUID
	Email     *string
	FirstName *string
	LastName  *string
	Password  *string
	Role      *entity.Role
}

// UpdateUserOutput represents the output of user update.
type UpdateUserOutput struct {
	User *entity.User
}

// UpdateUserUseCase handles user update logic.
type UpdateUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewUpdateUserUseCase creates a new UpdateUserUseCase instance.
func NewUpdateUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *UpdateUserUseCase {
	return &UpdateUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute performs the user update. Changing the password revokes every
// refresh token of the account. The root operator's role cannot change.
func (uc *UpdateUserUseCase) Execute(ctx context.Context, input UpdateUserInput) (*UpdateUserOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeUserNotFound,
				"user not found",
				domainerror.ErrUserNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if input.Role != nil {
		if user.IsRootOperator {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeRootOperatorImmutable,
				"the root operator's role cannot be changed",
				domainerror.ErrRootOperatorImmutable,
			)
		}
		if !entity.IsValidRole(*input.Role) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeInvalidRole,
				fmt.Sprintf("role must be one of admin, accountant, viewer, got %q", *input.Role),
				domainerror.ErrInvalidRole,
			)
		}
		user.Role = *input.Role
	}

	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}

	passwordChanged := false
	if input.Password != nil {
		if err := validatePasswordStrength(*input.Password); err != nil {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeWeakPassword,
				"password does not meet minimum requirements",
				domainerror.ErrWeakPassword,
			)
		}
		hash, err := uc.passwordService.HashPassword(*input.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = hash
		passwordChanged = true
	}

	user.UpdatedAt = time.Now().UTC()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	if passwordChanged {
		if err := uc.tokenService.InvalidateAllUserTokens(ctx, user.ID); err != nil {
			return nil, fmt.Errorf("failed to revoke user sessions: %w", err)
		}
	}

	return &UpdateUserOutput{
		User: user,
	}, nil
}
