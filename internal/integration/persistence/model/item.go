// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/inventory-tracker/backend/internal/domain/entity"
)

// ItemModel represents the items table in the database.
type ItemModel struct {
	ID            int64           `gorm:"primaryKey;autoIncrement"`
	Name          string          `gorm:"type:varchar(255);not null"`
	Status        string          `gorm:"type:varchar(10);not null;index"`
	PurchasePrice decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	SellingPrice  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CategoryID    *int64          `gorm:"index"`
	SourceID      *int64          `gorm:"index"`
	// SoldAt keeps the timestamp text as written; it is parsed at aggregation time.
	SoldAt *string `gorm:"type:text"`

	IsConsignment             bool            `gorm:"default:false"`
	ConsignorAmount           decimal.Decimal `gorm:"type:decimal(12,2);default:0"`
	ConsignmentCommission     decimal.Decimal `gorm:"type:decimal(12,2);default:0"`
	ConsignmentCommissionType string          `gorm:"type:varchar(10)"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the ItemModel.
func (ItemModel) TableName() string {
	return "items"
}

// ToEntity converts an ItemModel to a domain Item entity.
func (m *ItemModel) ToEntity() entity.Item {
	return entity.Item{
		ID:                        m.ID,
		Name:                      m.Name,
		Status:                    entity.ItemStatus(m.Status),
		PurchasePrice:             m.PurchasePrice,
		SellingPrice:              m.SellingPrice,
		CategoryID:                m.CategoryID,
		SourceID:                  m.SourceID,
		SoldAt:                    m.SoldAt,
		IsConsignment:             m.IsConsignment,
		ConsignorAmount:           m.ConsignorAmount,
		ConsignmentCommission:     m.ConsignmentCommission,
		ConsignmentCommissionType: entity.CommissionType(m.ConsignmentCommissionType),
		CreatedAt:                 m.CreatedAt,
		UpdatedAt:                 m.UpdatedAt,
	}
}

// ItemFromEntity creates an ItemModel from a domain Item entity.
func ItemFromEntity(item *entity.Item) *ItemModel {
	return &ItemModel{
		ID:                        item.ID,
		Name:                      item.Name,
		Status:                    string(item.Status),
		PurchasePrice:             item.PurchasePrice,
		SellingPrice:              item.SellingPrice,
		CategoryID:                item.CategoryID,
		SourceID:                  item.SourceID,
		SoldAt:                    item.SoldAt,
		IsConsignment:             item.IsConsignment,
		ConsignorAmount:           item.ConsignorAmount,
		ConsignmentCommission:     item.ConsignmentCommission,
		ConsignmentCommissionType: string(item.ConsignmentCommissionType),
		CreatedAt:                 item.CreatedAt,
		UpdatedAt:                 item.UpdatedAt,
	}
}
