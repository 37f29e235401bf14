package item

import (
	"context"
	"errors"
	"fmt"

	"github.com/inventory-tracker/backend/internal/application/adapter"
	domainerror "github.com/inventory-tracker/backend/internal/domain/error"
)

// DeleteItemUseCase handles item deletion logic.
type DeleteItemUseCase struct {
	itemRepo adapter.ItemRepository
}

// NewDeleteItemUseCase creates a new DeleteItemUseCase instance.
func NewDeleteItemUseCase(itemRepo adapter.ItemRepository) *DeleteItemUseCase {
	return &DeleteItemUseCase{
		itemRepo: itemRepo,
	}
}

// Execute deletes the item with the given ID.
func (uc *DeleteItemUseCase) Execute(ctx context.Context, itemID int64) error {
	if err := uc.itemRepo.Delete(ctx, itemID); err != nil {
		if errors.Is(err, domainerror.ErrItemNotFound) {
			return notFoundError(err)
		}
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return nil
}
