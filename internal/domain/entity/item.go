// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemStatus represents the sale status of an inventory item.
type ItemStatus string

const (
	ItemStatusAvailable ItemStatus = "available"
	ItemStatusSold      ItemStatus = "sold"
)

// CommissionType represents how a consignment commission is expressed.
type CommissionType string

const (
	CommissionTypeAmount     CommissionType = "amount"
	CommissionTypePercentage CommissionType = "percentage"
)

// Item represents a tracked inventory item.
type Item struct {
	ID            int64
	Name          string
	Status        ItemStatus
	PurchasePrice decimal.Decimal
	SellingPrice  decimal.Decimal
	CategoryID    *int64
	SourceID      *int64
	// SoldAt is the raw ISO-8601 timestamp as stored. Only set when Status is sold.
	SoldAt *string

	IsConsignment             bool
	ConsignorAmount           decimal.Decimal
	ConsignmentCommission     decimal.Decimal
	ConsignmentCommissionType CommissionType

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewItem creates a new available Item entity.
func NewItem(name string, purchasePrice, sellingPrice decimal.Decimal, categoryID, sourceID *int64) *Item {
	now := time.Now().UTC()

	return &Item{
		Name:          name,
		Status:        ItemStatusAvailable,
		PurchasePrice: purchasePrice,
		SellingPrice:  sellingPrice,
		CategoryID:    categoryID,
		SourceID:      sourceID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// IsSold reports whether the item has been sold.
func (i *Item) IsSold() bool {
	return i.Status == ItemStatusSold
}

// Profit returns selling price minus purchase price.
func (i *Item) Profit() decimal.Decimal {
	return i.SellingPrice.Sub(i.PurchasePrice)
}

// MarkSold flags the item as sold at the given instant.
func (i *Item) MarkSold(at time.Time) {
	soldAt := at.Format(time.RFC3339)
	i.Status = ItemStatusSold
	i.SoldAt = &soldAt
	i.UpdatedAt = time.Now().UTC()
}

// MarkAvailable reverts the item to available and clears the sale timestamp.
func (i *Item) MarkAvailable() {
	i.Status = ItemStatusAvailable
	i.SoldAt = nil
	i.UpdatedAt = time.Now().UTC()
}
