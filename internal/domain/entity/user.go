// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role represents a closed role membership for an actor.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleAccountant Role = "accountant"
	RoleViewer     Role = "viewer"
)

// IsValidRole reports whether the given role is a known one.
func IsValidRole(role Role) bool {
	switch role {
	case RoleAdmin, RoleAccountant, RoleViewer:
		return true
	}
	return false
}

// User represents an actor in the system. IsRootOperator marks the single
// distinguished account with unrestricted access, set at provisioning time.
type User struct {
	ID             uuid.UUID
	Username       string
	Email          string
	FirstName      string
	LastName       string
	PasswordHash   string
	Role           Role
	IsRootOperator bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewUser creates a new User entity.
func NewUser(username, email, firstName, lastName, passwordHash string, role Role, isRootOperator bool) *User {
	now := time.Now().UTC()

	return &User{
		ID:             uuid.New(),
		Username:       username,
		Email:          email,
		FirstName:      firstName,
		LastName:       lastName,
		PasswordHash:   passwordHash,
		Role:           role,
		IsRootOperator: isRootOperator,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
