// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/inventory-tracker/backend/internal/domain/entity"
)

// ItemFilter defines optional filters for listing items.
type ItemFilter struct {
	Status     *entity.ItemStatus
	CategoryID *int64
	SourceID   *int64
}

// ItemRepository defines the interface for item persistence operations.
type ItemRepository interface {
	// Create creates a new item in the database and sets its ID.
	Create(ctx context.Context, item *entity.Item) error

	// FindByID retrieves an item by its ID.
	FindByID(ctx context.Context, id int64) (*entity.Item, error)

	// FindAll retrieves items matching the filter, ordered by ID.
	FindAll(ctx context.Context, filter ItemFilter) ([]entity.Item, error)

	// Update updates an existing item in the database.
	Update(ctx context.Context, item *entity.Item) error

	// Delete removes an item from the database.
	Delete(ctx context.Context, id int64) error
}
