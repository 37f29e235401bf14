package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/inventory-tracker/backend/internal/application/usecase/item"
	"github.com/inventory-tracker/backend/internal/domain/entity"
)

// CreateItemRequest represents the request body for item creation.
// Amounts accept JSON numbers or strings.
type CreateItemRequest struct {
	Name                      string          `json:"name" binding:"required,min=1,max=255"`
	PurchasePrice             decimal.Decimal `json:"purchase_price"`
	SellingPrice              decimal.Decimal `json:"selling_price"`
	CategoryID                *int64          `json:"category_id,omitempty"`
	SourceID                  *int64          `json:"source_id,omitempty"`
	Status                    string          `json:"status,omitempty" binding:"omitempty,oneof=available sold"`
	SoldAt                    *string         `json:"sold_at,omitempty"`
	IsConsignment             bool            `json:"is_consignment,omitempty"`
	ConsignorAmount           decimal.Decimal `json:"consignor_amount"`
	ConsignmentCommission     decimal.Decimal `json:"consignment_commission"`
	ConsignmentCommissionType string          `json:"consignment_commission_type,omitempty"`
}

// UpdateItemRequest represents the request body for item update.
type UpdateItemRequest struct {
	Name                      *string          `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	PurchasePrice             *decimal.Decimal `json:"purchase_price,omitempty"`
	SellingPrice              *decimal.Decimal `json:"selling_price,omitempty"`
	CategoryID                *int64           `json:"category_id,omitempty"`
	ClearCategory             bool             `json:"clear_category,omitempty"`
	SourceID                  *int64           `json:"source_id,omitempty"`
	ClearSource               bool             `json:"clear_source,omitempty"`
	Status                    *string          `json:"status,omitempty" binding:"omitempty,oneof=available sold"`
	SoldAt                    *string          `json:"sold_at,omitempty"`
	IsConsignment             *bool            `json:"is_consignment,omitempty"`
	ConsignorAmount           *decimal.Decimal `json:"consignor_amount,omitempty"`
	ConsignmentCommission     *decimal.Decimal `json:"consignment_commission,omitempty"`
	ConsignmentCommissionType *string          `json:"consignment_commission_type,omitempty"`
}

// PricePreviewRequest represents the request body for a consignment price preview.
type PricePreviewRequest struct {
	ConsignorAmount decimal.Decimal `json:"consignor_amount"`
	Commission      decimal.Decimal `json:"commission"`
	CommissionType  string          `json:"commission_type" binding:"required"`
}

// PricePreviewResponse represents the derived consignment price.
type PricePreviewResponse struct {
	CommissionValue string `json:"commission_value"`
	FinalPrice      string `json:"final_price"`
}

// ItemResponse represents a single item in API responses.
type ItemResponse struct {
	ID                        int64     `json:"id"`
	Name                      string    `json:"name"`
	Status                    string    `json:"status"`
	PurchasePrice             string    `json:"purchase_price"`
	SellingPrice              string    `json:"selling_price"`
	Profit                    string    `json:"profit"`
	CategoryID                *int64    `json:"category_id"`
	SourceID                  *int64    `json:"source_id"`
	SoldAt                    *string   `json:"sold_at"`
	IsConsignment             bool      `json:"is_consignment"`
	ConsignorAmount           string    `json:"consignor_amount,omitempty"`
	ConsignmentCommission     string    `json:"consignment_commission,omitempty"`
	ConsignmentCommissionType string    `json:"consignment_commission_type,omitempty"`
	CreatedAt                 time.Time `json:"created_at"`
	UpdatedAt                 time.Time `json:"updated_at"`
}

// ItemListResponse represents the response for listing items.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
}

// ToItemResponse converts a domain Item entity to an ItemResponse DTO.
func ToItemResponse(it *entity.Item) ItemResponse {
	response := ItemResponse{
		ID:            it.ID,
		Name:          it.Name,
		Status:        string(it.Status),
		PurchasePrice: it.PurchasePrice.StringFixed(2),
		SellingPrice:  it.SellingPrice.StringFixed(2),
		Profit:        it.Profit().StringFixed(2),
		CategoryID:    it.CategoryID,
		SourceID:      it.SourceID,
		SoldAt:        it.SoldAt,
		IsConsignment: it.IsConsignment,
		CreatedAt:     it.CreatedAt,
		UpdatedAt:     it.UpdatedAt,
	}
	if it.IsConsignment {
		response.ConsignorAmount = it.ConsignorAmount.StringFixed(2)
		response.ConsignmentCommission = it.ConsignmentCommission.String()
		response.ConsignmentCommissionType = string(it.ConsignmentCommissionType)
	}
	return response
}

// ToItemListResponse converts items to an ItemListResponse.
func ToItemListResponse(items []entity.Item) ItemListResponse {
	response := ItemListResponse{
		Items: make([]ItemResponse, len(items)),
	}
	for i := range items {
		response.Items[i] = ToItemResponse(&items[i])
	}
	return response
}

// ToCreateItemInput converts the request to the use case input.
func (r CreateItemRequest) ToCreateItemInput() item.CreateItemInput {
	return item.CreateItemInput{
		Name:                      r.Name,
		PurchasePrice:             r.PurchasePrice,
		SellingPrice:              r.SellingPrice,
		CategoryID:                r.CategoryID,
		SourceID:                  r.SourceID,
		Status:                    entity.ItemStatus(r.Status),
		SoldAt:                    r.SoldAt,
		IsConsignment:             r.IsConsignment,
		ConsignorAmount:           r.ConsignorAmount,
		ConsignmentCommission:     r.ConsignmentCommission,
		ConsignmentCommissionType: entity.CommissionType(r.ConsignmentCommissionType),
	}
}

// ToUpdateItemInput converts the request to the use case input.
func (r UpdateItemRequest) ToUpdateItemInput(itemID int64) item.UpdateItemInput {
	input := item.UpdateItemInput{
		ItemID:                itemID,
		Name:                  r.Name,
		PurchasePrice:         r.PurchasePrice,
		SellingPrice:          r.SellingPrice,
		CategoryID:            r.CategoryID,
		ClearCategory:         r.ClearCategory,
		SourceID:              r.SourceID,
		ClearSource:           r.ClearSource,
		SoldAt:                r.SoldAt,
		IsConsignment:         r.IsConsignment,
		ConsignorAmount:       r.ConsignorAmount,
		ConsignmentCommission: r.ConsignmentCommission,
	}
	if r.Status != nil {
		status := entity.ItemStatus(*r.Status)
		input.Status = &status
	}
	if r.ConsignmentCommissionType != nil {
		commissionType := entity.CommissionType(*r.ConsignmentCommissionType)
		input.ConsignmentCommissionType = &commissionType
	}
	return input
}
