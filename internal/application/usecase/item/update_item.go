package item

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/inventory-tracker/backend/internal/application/adapter"
	"github.com/inventory-tracker/backend/internal/domain/entity"
)

// UpdateItemInput represents the input for item update. Nil fields are left unchanged.
type UpdateItemInput struct {
	ItemID        int64
	Name          *string
	PurchasePrice *decimal.Decimal
	SellingPrice  *decimal.Decimal
	CategoryID    *int64
	ClearCategory bool // Set to true to remove category
	SourceID      *int64
	ClearSource   bool // Set to true to remove source
	Status        *entity.ItemStatus
	SoldAt        *string

	IsConsignment             *bool
	ConsignorAmount           *decimal.Decimal
	ConsignmentCommission     *decimal.Decimal
	ConsignmentCommissionType *entity.CommissionType
}

// UpdateItemOutput represents the output of item update.
type UpdateItemOutput struct {
	Item *entity.Item
}

// UpdateItemUseCase handles item update logic.
type UpdateItemUseCase struct {
	itemRepo     adapter.ItemRepository
	categoryRepo adapter.CategoryRepository
	sourceRepo   adapter.SourceRepository
	now          func() time.Time
}

// NewUpdateItemUseCase creates a new UpdateItemUseCase instance.
func NewUpdateItemUseCase(
	itemRepo adapter.ItemRepository,
	categoryRepo adapter.CategoryRepository,
	sourceRepo adapter.SourceRepository,
) *UpdateItemUseCase {
	return &UpdateItemUseCase{
		itemRepo:     itemRepo,
		categoryRepo: categoryRepo,
		sourceRepo:   sourceRepo,
		now:          time.Now,
	}
}

// Execute performs the item update.
func (uc *UpdateItemUseCase) Execute(ctx context.Context, input UpdateItemInput) (*UpdateItemOutput, error) {
	item, err := uc.itemRepo.FindByID(ctx, input.ItemID)
	if err != nil {
		return nil, notFoundError(err)
	}

	if input.Name != nil {
		name, err := normalizeName(*input.Name)
		if err != nil {
			return nil, err
		}
		item.Name = name
	}
	if input.PurchasePrice != nil {
		item.PurchasePrice = *input.PurchasePrice
	}
	if input.SellingPrice != nil {
		item.SellingPrice = *input.SellingPrice
	}
	if err := validatePrices(item.PurchasePrice, item.SellingPrice); err != nil {
		return nil, err
	}

	if err := checkReferences(ctx, uc.categoryRepo, uc.sourceRepo, input.CategoryID, input.SourceID); err != nil {
		return nil, err
	}
	if input.ClearCategory {
		item.CategoryID = nil
	} else if input.CategoryID != nil {
		item.CategoryID = input.CategoryID
	}
	if input.ClearSource {
		item.SourceID = nil
	} else if input.SourceID != nil {
		item.SourceID = input.SourceID
	}

	if input.IsConsignment != nil {
		item.IsConsignment = *input.IsConsignment
	}
	if input.ConsignorAmount != nil {
		item.ConsignorAmount = *input.ConsignorAmount
	}
	if input.ConsignmentCommission != nil {
		item.ConsignmentCommission = *input.ConsignmentCommission
	}
	if input.ConsignmentCommissionType != nil {
		item.ConsignmentCommissionType = *input.ConsignmentCommissionType
	}
	if err := applyConsignment(item); err != nil {
		return nil, err
	}

	if input.Status != nil || input.SoldAt != nil {
		status := item.Status
		if input.Status != nil {
			status = *input.Status
		}
		if err := applyStatus(item, status, input.SoldAt, uc.now().UTC()); err != nil {
			return nil, err
		}
	}

	item.UpdatedAt = uc.now().UTC()
	if err := uc.itemRepo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	return &UpdateItemOutput{
		Item: item,
	}, nil
}
