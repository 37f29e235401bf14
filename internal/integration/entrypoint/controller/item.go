package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/inventory-tracker/backend/internal/application/usecase/item"
	"github.com/inventory-tracker/backend/internal/domain/entity"
	domainerror "github.com/inventory-tracker/backend/internal/domain/error"
	"github.com/inventory-tracker/backend/internal/integration/entrypoint/dto"
)

// ItemController handles inventory item endpoints.
type ItemController struct {
	listUseCase    *item.ListItemsUseCase
	createUseCase  *item.CreateItemUseCase
	updateUseCase  *item.UpdateItemUseCase
	deleteUseCase  *item.DeleteItemUseCase
	previewUseCase *item.PreviewPriceUseCase
}

// NewItemController creates a new item controller instance.
func NewItemController(
	listUseCase *item.ListItemsUseCase,
	createUseCase *item.CreateItemUseCase,
	updateUseCase *item.UpdateItemUseCase,
	deleteUseCase *item.DeleteItemUseCase,
	previewUseCase *item.PreviewPriceUseCase,
) *ItemController {
	return &ItemController{
		listUseCase:    listUseCase,
		createUseCase:  createUseCase,
		updateUseCase:  updateUseCase,
		deleteUseCase:  deleteUseCase,
		previewUseCase: previewUseCase,
	}
}

// List handles GET /items requests.
// Optional query parameters: status, category_id, source_id.
func (c *ItemController) List(ctx *gin.Context) {
	var input item.ListItemsInput

	if status := ctx.Query("status"); status != "" {
		s := entity.ItemStatus(status)
		input.Status = &s
	}
	if raw := ctx.Query("category_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.invalidID(ctx, "Invalid category ID format")
			return
		}
		input.CategoryID = &id
	}
	if raw := ctx.Query("source_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.invalidID(ctx, "Invalid source ID format")
			return
		}
		input.SourceID = &id
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleItemError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToItemListResponse(output.Items))
}

// Create handles POST /items requests.
func (c *ItemController) Create(ctx *gin.Context) {
	var req dto.CreateItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeMissingItemFields),
			Details: err.Error(),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), req.ToCreateItemInput())
	if err != nil {
		c.handleItemError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToItemResponse(output.Item))
}

// Update handles PATCH /items/:id requests.
func (c *ItemController) Update(ctx *gin.Context) {
	itemID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		c.invalidID(ctx, "Invalid item ID format")
		return
	}

	var req dto.UpdateItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeMissingItemFields),
			Details: err.Error(),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), req.ToUpdateItemInput(itemID))
	if err != nil {
		c.handleItemError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToItemResponse(output.Item))
}

// Delete handles DELETE /items/:id requests.
func (c *ItemController) Delete(ctx *gin.Context) {
	itemID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		c.invalidID(ctx, "Invalid item ID format")
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), itemID); err != nil {
		c.handleItemError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// PreviewPrice handles POST /items/price-preview requests.
func (c *ItemController) PreviewPrice(ctx *gin.Context) {
	var req dto.PricePreviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingItemFields),
		})
		return
	}

	output, err := c.previewUseCase.Execute(ctx.Request.Context(), item.PreviewPriceInput{
		ConsignorAmount: req.ConsignorAmount,
		Commission:      req.Commission,
		CommissionType:  entity.CommissionType(req.CommissionType),
	})
	if err != nil {
		c.handleItemError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.PricePreviewResponse{
		CommissionValue: output.CommissionValue.StringFixed(2),
		FinalPrice:      output.FinalPrice.StringFixed(2),
	})
}

func (c *ItemController) invalidID(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: message,
		Code:  string(domainerror.ErrCodeInvalidItemID),
	})
}

// handleItemError handles item errors and returns appropriate HTTP responses.
func (c *ItemController) handleItemError(ctx *gin.Context, err error) {
	var itemErr *domainerror.ItemError
	if errors.As(err, &itemErr) {
		ctx.JSON(c.getStatusCodeForItemError(itemErr.Code), dto.ErrorResponse{
			Error: itemErr.Message,
			Code:  string(itemErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForItemError maps item error codes to HTTP status codes.
func (c *ItemController) getStatusCodeForItemError(code domainerror.ItemErrorCode) int {
	switch code {
	case domainerror.ErrCodeItemNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUnknownCategory, domainerror.ErrCodeUnknownSource:
		return http.StatusUnprocessableEntity
	case domainerror.ErrCodeItemNameRequired,
		domainerror.ErrCodeItemNameTooLong,
		domainerror.ErrCodeNegativePrice,
		domainerror.ErrCodeInvalidItemStatus,
		domainerror.ErrCodeInvalidSoldAt,
		domainerror.ErrCodeInvalidCommissionType,
		domainerror.ErrCodeNegativeConsignment,
		domainerror.ErrCodeMissingItemFields,
		domainerror.ErrCodeInvalidItemID:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
