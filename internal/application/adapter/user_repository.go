// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/construction-tracker/backend/internal/domain/entity"
)

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	// Create creates a new user in the database.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves a user by its username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindAll retrieves all users ordered by creation time descending.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// Update updates an existing user in the database.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user. Expenses created by the user keep their rows
	// with created_by nulled.
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByUsername checks if a user with the given username exists.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// HasRootOperator checks whether a root operator account exists.
	HasRootOperator(ctx context.Context) (bool, error)
}
