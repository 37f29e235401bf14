// Package valueobject contains domain value objects for the inventory tracker.
package valueobject

import (
	"github.com/shopspring/decimal"

	"github.com/inventory-tracker/backend/internal/domain/entity"
	domainerror "github.com/inventory-tracker/backend/internal/domain/error"
)

// currencyPlaces is the number of decimal places kept for customer-facing prices.
const currencyPlaces = 2

var hundred = decimal.NewFromInt(100)

// ConsignmentTerms describes how a consignment item is priced.
// It is the only place the consignment price formula lives: item persistence and
// the price preview both go through FinalPrice.
type ConsignmentTerms struct {
	ConsignorAmount decimal.Decimal // payout owed to the consignor
	Commission      decimal.Decimal // fixed amount or percentage, depending on Type
	Type            entity.CommissionType
}

// NewConsignmentTerms builds terms from an item's consignment fields.
func NewConsignmentTerms(item *entity.Item) ConsignmentTerms {
	return ConsignmentTerms{
		ConsignorAmount: item.ConsignorAmount,
		Commission:      item.ConsignmentCommission,
		Type:            item.ConsignmentCommissionType,
	}
}

// Validate checks amounts are non-negative and the commission type is known.
func (t ConsignmentTerms) Validate() error {
	if t.ConsignorAmount.IsNegative() || t.Commission.IsNegative() {
		return domainerror.ErrNegativeConsignment
	}
	if t.Type != entity.CommissionTypeAmount && t.Type != entity.CommissionTypePercentage {
		return domainerror.ErrInvalidCommissionType
	}
	return nil
}

// CommissionValue returns the commission in currency units.
func (t ConsignmentTerms) CommissionValue() (decimal.Decimal, error) {
	if err := t.Validate(); err != nil {
		return decimal.Zero, err
	}
	if t.Type == entity.CommissionTypePercentage {
		return t.ConsignorAmount.Mul(t.Commission).Div(hundred), nil
	}
	return t.Commission, nil
}

// FinalPrice returns the customer-facing price: consignor amount plus commission,
// rounded to cents. The selling price equals consignorAmount + commission at cent
// precision; a percentage commission may carry sub-cent digits that are dropped.
func (t ConsignmentTerms) FinalPrice() (decimal.Decimal, error) {
	commission, err := t.CommissionValue()
	if err != nil {
		return decimal.Zero, err
	}
	return t.ConsignorAmount.Add(commission).Round(currencyPlaces), nil
}

// ApplyConsignmentPrice overwrites the selling price of a consignment item with the
// derived price. Non-consignment items are left untouched.
func ApplyConsignmentPrice(item *entity.Item) error {
	if !item.IsConsignment {
		return nil
	}
	price, err := NewConsignmentTerms(item).FinalPrice()
	if err != nil {
		return err
	}
	item.SellingPrice = price
	return nil
}
