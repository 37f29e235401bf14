// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/inventory-tracker/backend/internal/domain/entity"
)

// SourceRepository defines the interface for source persistence operations.
type SourceRepository interface {
	// Create creates a new source in the database.
	Create(ctx context.Context, source *entity.Source) error

	// FindByID retrieves a source by its ID.
	FindByID(ctx context.Context, id int64) (*entity.Source, error)

	// FindAll retrieves all sources ordered by name.
	FindAll(ctx context.Context) ([]entity.Source, error)

	// ExistsByName checks if a source with the given name exists.
	ExistsByName(ctx context.Context, name string) (bool, error)
}
