// Package item contains item-related use cases.
package item

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/inventory-tracker/backend/internal/application/adapter"
	"github.com/inventory-tracker/backend/internal/application/usecase/stats"
	"github.com/inventory-tracker/backend/internal/domain/entity"
	domainerror "github.com/inventory-tracker/backend/internal/domain/error"
	"github.com/inventory-tracker/backend/internal/domain/valueobject"
)

// MaxItemNameLength is the maximum allowed length for item names.
const MaxItemNameLength = 255

func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", domainerror.NewItemError(
			domainerror.ErrCodeItemNameRequired,
			"item name is required",
			domainerror.ErrItemNameRequired,
		)
	}
	if len(name) > MaxItemNameLength {
		return "", domainerror.NewItemError(
			domainerror.ErrCodeItemNameTooLong,
			fmt.Sprintf("item name must not exceed %d characters", MaxItemNameLength),
			domainerror.ErrItemNameTooLong,
		)
	}
	return name, nil
}

func validatePrices(prices ...decimal.Decimal) error {
	for _, p := range prices {
		if p.IsNegative() {
			return domainerror.NewItemError(
				domainerror.ErrCodeNegativePrice,
				"purchase and selling prices must not be negative",
				domainerror.ErrNegativePrice,
			)
		}
	}
	return nil
}

func isValidStatus(status entity.ItemStatus) bool {
	return status == entity.ItemStatusAvailable || status == entity.ItemStatusSold
}

// applyStatus moves the item to status. A sold item without an explicit sale
// timestamp is stamped with now.
func applyStatus(item *entity.Item, status entity.ItemStatus, soldAt *string, now time.Time) error {
	if !isValidStatus(status) {
		return domainerror.NewItemError(
			domainerror.ErrCodeInvalidItemStatus,
			"status must be 'available' or 'sold'",
			domainerror.ErrInvalidItemStatus,
		)
	}

	if status == entity.ItemStatusAvailable {
		item.MarkAvailable()
		return nil
	}

	at := now
	if soldAt != nil {
		parsed, err := stats.ParseSoldAt(*soldAt, time.UTC)
		if err != nil {
			return domainerror.NewItemError(
				domainerror.ErrCodeInvalidSoldAt,
				"sold_at must be an ISO-8601 timestamp",
				fmt.Errorf("%w: %w", domainerror.ErrInvalidSoldAt, err),
			)
		}
		at = parsed
	} else if item.IsSold() && item.SoldAt != nil {
		return nil
	}
	item.MarkSold(at)
	return nil
}

// applyConsignment derives the selling price of consignment items.
func applyConsignment(item *entity.Item) error {
	err := valueobject.ApplyConsignmentPrice(item)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domainerror.ErrNegativeConsignment):
		return domainerror.NewItemError(
			domainerror.ErrCodeNegativeConsignment,
			"consignor amount and commission must not be negative",
			err,
		)
	case errors.Is(err, domainerror.ErrInvalidCommissionType):
		return domainerror.NewItemError(
			domainerror.ErrCodeInvalidCommissionType,
			"commission type must be 'amount' or 'percentage'",
			err,
		)
	default:
		return err
	}
}

// checkReferences verifies the referenced category and source exist.
func checkReferences(
	ctx context.Context,
	categoryRepo adapter.CategoryRepository,
	sourceRepo adapter.SourceRepository,
	categoryID, sourceID *int64,
) error {
	if categoryID != nil {
		if _, err := categoryRepo.FindByID(ctx, *categoryID); err != nil {
			if errors.Is(err, domainerror.ErrCategoryNotFound) {
				return domainerror.NewItemError(
					domainerror.ErrCodeUnknownCategory,
					fmt.Sprintf("category %d does not exist", *categoryID),
					err,
				)
			}
			return fmt.Errorf("failed to find category: %w", err)
		}
	}

	if sourceID != nil {
		if _, err := sourceRepo.FindByID(ctx, *sourceID); err != nil {
			if errors.Is(err, domainerror.ErrSourceNotFound) {
				return domainerror.NewItemError(
					domainerror.ErrCodeUnknownSource,
					fmt.Sprintf("source %d does not exist", *sourceID),
					err,
				)
			}
			return fmt.Errorf("failed to find source: %w", err)
		}
	}

	return nil
}

func notFoundError(err error) error {
	if errors.Is(err, domainerror.ErrItemNotFound) {
		return domainerror.NewItemError(
			domainerror.ErrCodeItemNotFound,
			"item not found",
			domainerror.ErrItemNotFound,
		)
	}
	return fmt.Errorf("failed to find item: %w", err)
}
