package auth

import (
	"context"
	"fmt"

	"github.com/construction-tracker/backend/internal/application/adapter"
	domainerror "github.com/construction-tracker/backend/internal/domain/error"
)

// RefreshTokenInput carries the refresh token presented by the client.
type RefreshTokenInput struct {
	RefreshToken string
}

// RefreshTokenOutput carries the freshly issued token pair.
type RefreshTokenOutput struct {
	AccessToken  string
	RefreshToken string
}

// RefreshTokenUseCase exchanges a live refresh token for a new token pair.
// Refresh tokens are single use: the presented token is revoked before the
// replacement pair is issued, so a replayed token fails validation.
type RefreshTokenUseCase struct {
	tokenService adapter.TokenService
}

// NewRefreshTokenUseCase creates a new RefreshTokenUseCase instance.
func NewRefreshTokenUseCase(tokenService adapter.TokenService) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{
		tokenService: tokenService,
	}
}

// Execute validates, revokes and replaces the presented refresh token.
func (uc *RefreshTokenUseCase) Execute(ctx context.Context, input RefreshTokenInput) (*RefreshTokenOutput, error) {
	claims, err := uc.tokenService.ValidateRefreshToken(ctx, input.RefreshToken)
	if err != nil {
		return nil, refreshTokenRejected("invalid or expired refresh token")
	}

	live, err := uc.tokenService.IsRefreshTokenValid(ctx, input.RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to check token validity: %w", err)
	}
	if !live {
		return nil, refreshTokenRejected("refresh token has been revoked")
	}

	if err := uc.tokenService.InvalidateRefreshToken(ctx, input.RefreshToken); err != nil {
		return nil, fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	pair, err := uc.tokenService.GenerateTokenPair(ctx, claims.UserID, claims.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token pair: %w", err)
	}

	return &RefreshTokenOutput{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}

func refreshTokenRejected(message string) error {
	return domainerror.NewAuthError(
		domainerror.ErrCodeInvalidToken,
		message,
		domainerror.ErrInvalidToken,
	)
}
