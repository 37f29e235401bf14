package item

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/inventory-tracker/backend/internal/domain/entity"
	"github.com/inventory-tracker/backend/internal/domain/valueobject"
)

// PreviewPriceInput represents the consignment terms to price.
type PreviewPriceInput struct {
	ConsignorAmount decimal.Decimal
	Commission      decimal.Decimal
	CommissionType  entity.CommissionType
}

// PreviewPriceOutput represents the derived price.
type PreviewPriceOutput struct {
	CommissionValue decimal.Decimal
	FinalPrice      decimal.Decimal
}

// PreviewPriceUseCase computes the consignment price shown while editing an item.
// It uses the same formula items are persisted with.
type PreviewPriceUseCase struct{}

// NewPreviewPriceUseCase creates a new PreviewPriceUseCase instance.
func NewPreviewPriceUseCase() *PreviewPriceUseCase {
	return &PreviewPriceUseCase{}
}

// Execute computes the preview.
func (uc *PreviewPriceUseCase) Execute(ctx context.Context, input PreviewPriceInput) (*PreviewPriceOutput, error) {
	probe := &entity.Item{
		IsConsignment:             true,
		ConsignorAmount:           input.ConsignorAmount,
		ConsignmentCommission:     input.Commission,
		ConsignmentCommissionType: input.CommissionType,
	}
	if err := applyConsignment(probe); err != nil {
		return nil, err
	}

	commission, err := valueobject.NewConsignmentTerms(probe).CommissionValue()
	if err != nil {
		return nil, err
	}

	return &PreviewPriceOutput{
		CommissionValue: commission.Round(2),
		FinalPrice:      probe.SellingPrice,
	}, nil
}
