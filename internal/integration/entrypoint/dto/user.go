package dto

import (
	"time"

	"github.com/construction-tracker/backend/internal/domain/entity"
)

// CreateUserRequest represents the request body for user creation.
type CreateUserRequest struct {
	Username  string `json:"username" binding:"required,min=1,max=150"`
	Email     string `json:"email,omitempty" binding:"omitempty,email"`
	FirstName string `json:"first_name,omitempty" binding:"omitempty,max=100"`
	LastName  string `json:"last_name,omitempty" binding:"omitempty,max=100"`
	Password  string `json:"password" binding:"required,min=8"`
	Role      string `json:"role" binding:"required,oneof=admin accountant viewer"`
}

// UpdateUserRequest represents the request body for user update.
type UpdateUserRequest struct {
	Email     *string `json:"email,omitempty" binding:"omitempty,email"`
	FirstName *string `json:"first_name,omitempty" binding:"omitempty,max=100"`
	LastName  *string `json:"last_name,omitempty" binding:"omitempty,max=100"`
	Password  *string `json:"password,omitempty" binding:"omitempty,min=8"`
	Role      *string `json:"role,omitempty" binding:"omitempty,oneof=admin accountant viewer"`
}

// UserResponse represents a user in API responses.
type UserResponse struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email,omitempty"`
	FirstName      string `json:"first_name,omitempty"`
	LastName       string `json:"last_name,omitempty"`
	Role           string `json:"role"`
	IsRootOperator bool   `json:"is_root_operator"`
	CreatedAt      string `json:"created_at"`
}

// UserListResponse represents the response body for user listing.
type UserListResponse struct {
	Users []UserResponse `json:"users"`
}

// ToUserResponse converts a User entity to a UserResponse.
func ToUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:             user.ID.String(),
		Username:       user.Username,
		Email:          user.Email,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		Role:           string(user.Role),
		IsRootOperator: user.IsRootOperator,
		CreatedAt:      user.CreatedAt.Format(time.RFC3339),
	}
}

// ToUserListResponse converts user entities to a UserListResponse.
func ToUserListResponse(users []*entity.User) UserListResponse {
	response := UserListResponse{
		Users: make([]UserResponse, len(users)),
	}
	for i, user := range users {
		response.Users[i] = ToUserResponse(user)
	}
	return response
}
