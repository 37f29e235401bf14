package item

import (
	"context"

	"github.com/inventory-tracker/backend/internal/application/adapter"
	"github.com/inventory-tracker/backend/internal/domain/entity"
	domainerror "github.com/inventory-tracker/backend/internal/domain/error"
)

// ListItemsInput represents the input for listing items.
type ListItemsInput struct {
	Status     *entity.ItemStatus
	CategoryID *int64
	SourceID   *int64
}

// ListItemsOutput represents the output of listing items.
type ListItemsOutput struct {
	Items []entity.Item
}

// ListItemsUseCase handles listing items logic.
type ListItemsUseCase struct {
	itemRepo adapter.ItemRepository
}

// NewListItemsUseCase creates a new ListItemsUseCase instance.
func NewListItemsUseCase(itemRepo adapter.ItemRepository) *ListItemsUseCase {
	return &ListItemsUseCase{
		itemRepo: itemRepo,
	}
}

// Execute performs the item listing.
func (uc *ListItemsUseCase) Execute(ctx context.Context, input ListItemsInput) (*ListItemsOutput, error) {
	if input.Status != nil && !isValidStatus(*input.Status) {
		return nil, domainerror.NewItemError(
			domainerror.ErrCodeInvalidItemStatus,
			"status must be 'available' or 'sold'",
			domainerror.ErrInvalidItemStatus,
		)
	}

	items, err := uc.itemRepo.FindAll(ctx, adapter.ItemFilter{
		Status:     input.Status,
		CategoryID: input.CategoryID,
		SourceID:   input.SourceID,
	})
	if err != nil {
		return nil, err
	}

	return &ListItemsOutput{Items: items}, nil
}
