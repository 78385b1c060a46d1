// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/construction-tracker/backend/internal/application/adapter"
	"github.com/construction-tracker/backend/internal/application/usecase/access"
	"github.com/construction-tracker/backend/internal/domain/entity"
	domainerror "github.com/construction-tracker/backend/internal/domain/error"
	"github.com/construction-tracker/backend/internal/domain/valueobject"
	"github.com/construction-tracker/backend/internal/integration/entrypoint/dto"
)

// ContextKey is a type for context keys.
type ContextKey string

const (
	// UserKey is the context key for the authenticated user entity.
	UserKey ContextKey = "user"
	// ScopeKey is the context key for the actor's resolved access scope.
	ScopeKey ContextKey = "scope"
)

// AuthMiddleware provides JWT authentication middleware. The token carries
// only identity; the role and root flag are read from the user record on
// every request so revoked permissions take effect immediately.
type AuthMiddleware struct {
	tokenService adapter.TokenService
	userRepo     adapter.UserRepository
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(tokenService adapter.TokenService, userRepo adapter.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
		userRepo:     userRepo,
	}
}

// Authenticate returns a Gin middleware handler that enforces JWT
// authentication and stores the user and its access scope on the context.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Authorization header is required",
				Code:  string(domainerror.ErrCodeMissingToken),
			})
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Invalid authorization header format",
				Code:  string(domainerror.ErrCodeInvalidToken),
			})
			c.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == "" {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Token is required",
				Code:  string(domainerror.ErrCodeMissingToken),
			})
			c.Abort()
			return
		}

		claims, err := m.tokenService.ValidateAccessToken(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Invalid or expired token",
				Code:  string(domainerror.ErrCodeInvalidToken),
			})
			c.Abort()
			return
		}

		user, err := m.userRepo.FindByID(c.Request.Context(), claims.UserID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Invalid or expired token",
				Code:  string(domainerror.ErrCodeInvalidToken),
			})
			c.Abort()
			return
		}

		c.Set(string(UserKey), user)
		c.Set(string(ScopeKey), access.ResolveScope(user))

		c.Next()
	}
}

// RequireWrite returns a Gin middleware handler that rejects actors whose
// scope does not allow mutations. Must run after Authenticate.
func (m *AuthMiddleware) RequireWrite() gin.HandlerFunc {
	return func(c *gin.Context) {
		scope, ok := GetScopeFromContext(c)
		if !ok || !scope.CanWrite {
			c.JSON(http.StatusForbidden, dto.ErrorResponse{
				Error: "You do not have permission to perform this action",
				Code:  string(domainerror.ErrCodeForbidden),
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireUserManagement returns a Gin middleware handler that restricts the
// route to the root operator. Must run after Authenticate.
func (m *AuthMiddleware) RequireUserManagement() gin.HandlerFunc {
	return func(c *gin.Context) {
		scope, ok := GetScopeFromContext(c)
		if !ok || !scope.CanManageUsers {
			c.JSON(http.StatusForbidden, dto.ErrorResponse{
				Error: "You do not have permission to perform this action",
				Code:  string(domainerror.ErrCodeForbidden),
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetUserFromContext extracts the authenticated user from the Gin context.
func GetUserFromContext(c *gin.Context) (*entity.User, bool) {
	value, exists := c.Get(string(UserKey))
	if !exists {
		return nil, false
	}
	user, ok := value.(*entity.User)
	return user, ok
}

// GetScopeFromContext extracts the resolved access scope from the Gin context.
func GetScopeFromContext(c *gin.Context) (valueobject.AccessScope, bool) {
	value, exists := c.Get(string(ScopeKey))
	if !exists {
		return valueobject.AccessScope{}, false
	}
	scope, ok := value.(valueobject.AccessScope)
	return scope, ok
}
