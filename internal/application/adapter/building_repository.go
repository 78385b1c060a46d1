// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/construction-tracker/backend/internal/domain/entity"
)

// BuildingFilter narrows building list queries.
type BuildingFilter struct {
	Status *entity.BuildingStatus
	Search string // case-insensitive substring match on the name
}

// BuildingRepository defines the interface for building persistence operations.
type BuildingRepository interface {
	// Create creates a new building in the database.
	Create(ctx context.Context, building *entity.Building) error

	// FindByID retrieves a building by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Building, error)

	// FindAll retrieves buildings matching the filter, newest first.
	FindAll(ctx context.Context, filter BuildingFilter) ([]*entity.Building, error)

	// Update updates an existing building. SpentAmount is excluded: only the
	// aggregate maintainer inside the expense repository writes it.
	Update(ctx context.Context, building *entity.Building) error

	// Delete removes a building and cascades to its expenses.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the total number of buildings.
	Count(ctx context.Context) (int64, error)
}
