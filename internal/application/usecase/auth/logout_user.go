package auth

import (
	"context"

	"github.com/construction-tracker/backend/internal/application/adapter"
)

// LogoutUserInput carries the refresh token to revoke.
type LogoutUserInput struct {
	RefreshToken string
}

// LogoutUserOutput confirms the logout to the client.
type LogoutUserOutput struct {
	Message string
}

// LogoutUserUseCase revokes the session's refresh token. Access tokens stay
// valid until they expire; only the refresh path is cut off.
type LogoutUserUseCase struct {
	tokenService adapter.TokenService
}

// NewLogoutUserUseCase creates a new LogoutUserUseCase instance.
func NewLogoutUserUseCase(tokenService adapter.TokenService) *LogoutUserUseCase {
	return &LogoutUserUseCase{
		tokenService: tokenService,
	}
}

// Execute revokes the presented refresh token. Revocation is idempotent: a
// token that is already invalid logs out just the same.
func (uc *LogoutUserUseCase) Execute(ctx context.Context, input LogoutUserInput) (*LogoutUserOutput, error) {
	_ = uc.tokenService.InvalidateRefreshToken(ctx, input.RefreshToken)

	return &LogoutUserOutput{
		Message: "Successfully logged out",
	}, nil
}
