package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/construction-tracker/backend/internal/application/adapter"
	domainerror "github.com/construction-tracker/backend/internal/domain/error"
)

// DeleteUserInput represents the input for user deletion.
type DeleteUserInput struct {
	UserID uuid.UUID
}

// DeleteUserUseCase handles user deletion logic. Expenses recorded by the
// deleted user survive with their created_by reference cleared.
type DeleteUserUseCase struct {
	userRepo     adapter.UserRepository
	tokenService adapter.TokenService
}

// NewDeleteUserUseCase creates a new DeleteUserUseCase instance.
func NewDeleteUserUseCase(
	userRepo adapter.UserRepository,
	tokenService adapter.TokenService,
) *DeleteUserUseCase {
	return &DeleteUserUseCase{
		userRepo:     userRepo,
		tokenService: tokenService,
	}
}

// Execute performs the user deletion. The root operator cannot be deleted.
func (uc *DeleteUserUseCase) Execute(ctx context.Context, input DeleteUserInput) error {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return domainerror.NewAuthError(
				domainerror.ErrCodeUserNotFound,
				"user not found",
				domainerror.ErrUserNotFound,
			)
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	if user.IsRootOperator {
		return domainerror.NewAuthError(
			domainerror.ErrCodeRootOperatorImmutable,
			"the root operator account cannot be deleted",
			domainerror.ErrRootOperatorImmutable,
		)
	}

	if err := uc.tokenService.InvalidateAllUserTokens(ctx, user.ID); err != nil {
		return fmt.Errorf("failed to revoke user sessions: %w", err)
	}

	if err := uc.userRepo.Delete(ctx, user.ID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	slog.Info("user deleted", "user_id", user.ID, "username", user.Username)

	return nil
}
