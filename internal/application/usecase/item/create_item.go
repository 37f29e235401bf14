package item

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/inventory-tracker/backend/internal/application/adapter"
	"github.com/inventory-tracker/backend/internal/domain/entity"
)

// CreateItemInput represents the input for item creation.
type CreateItemInput struct {
	Name          string
	PurchasePrice decimal.Decimal
	SellingPrice  decimal.Decimal // Ignored for consignment items
	CategoryID    *int64
	SourceID      *int64
	Status        entity.ItemStatus // Optional, defaults to available
	SoldAt        *string           // Optional, defaults to now when Status is sold

	IsConsignment             bool
	ConsignorAmount           decimal.Decimal
	ConsignmentCommission     decimal.Decimal
	ConsignmentCommissionType entity.CommissionType
}

// CreateItemOutput represents the output of item creation.
type CreateItemOutput struct {
	Item *entity.Item
}

// CreateItemUseCase handles item creation logic.
type CreateItemUseCase struct {
	itemRepo     adapter.ItemRepository
	categoryRepo adapter.CategoryRepository
	sourceRepo   adapter.SourceRepository
	now          func() time.Time
}

// NewCreateItemUseCase creates a new CreateItemUseCase instance.
func NewCreateItemUseCase(
	itemRepo adapter.ItemRepository,
	categoryRepo adapter.CategoryRepository,
	sourceRepo adapter.SourceRepository,
) *CreateItemUseCase {
	return &CreateItemUseCase{
		itemRepo:     itemRepo,
		categoryRepo: categoryRepo,
		sourceRepo:   sourceRepo,
		now:          time.Now,
	}
}

// Execute performs the item creation.
func (uc *CreateItemUseCase) Execute(ctx context.Context, input CreateItemInput) (*CreateItemOutput, error) {
	name, err := normalizeName(input.Name)
	if err != nil {
		return nil, err
	}
	if err := validatePrices(input.PurchasePrice, input.SellingPrice); err != nil {
		return nil, err
	}
	if err := checkReferences(ctx, uc.categoryRepo, uc.sourceRepo, input.CategoryID, input.SourceID); err != nil {
		return nil, err
	}

	item := entity.NewItem(name, input.PurchasePrice, input.SellingPrice, input.CategoryID, input.SourceID)
	item.IsConsignment = input.IsConsignment
	item.ConsignorAmount = input.ConsignorAmount
	item.ConsignmentCommission = input.ConsignmentCommission
	item.ConsignmentCommissionType = input.ConsignmentCommissionType
	if err := applyConsignment(item); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = entity.ItemStatusAvailable
	}
	if err := applyStatus(item, status, input.SoldAt, uc.now().UTC()); err != nil {
		return nil, err
	}

	if err := uc.itemRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	return &CreateItemOutput{
		Item: item,
	}, nil
}
