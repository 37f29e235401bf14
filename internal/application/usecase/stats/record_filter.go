package stats

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/inventory-tracker/backend/internal/domain/entity"
)

// errMissingSoldAt is reported for sold items stored without a sale timestamp.
var errMissingSoldAt = errors.New("sold item has no sold_at")

// soldAtLayouts lists the accepted sale timestamp formats, most specific first.
// Layouts without an offset are read in the period's location.
var soldAtLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// SaleRecord is a sold item with its parsed sale instant.
type SaleRecord struct {
	ItemID  int64
	SoldAt  time.Time
	Revenue decimal.Decimal
	Cost    decimal.Decimal
}

// Profit returns revenue minus cost.
func (r SaleRecord) Profit() decimal.Decimal {
	return r.Revenue.Sub(r.Cost)
}

// ParseSoldAt parses a stored sale timestamp. Offset-less values use loc.
func ParseSoldAt(raw string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range soldAtLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", raw)
}

// FilterSoldRecords returns the sold items whose sale instant lies in [start, end],
// sorted ascending by sale instant. Items with a missing or unparseable sold_at are
// skipped and reported to observer; filtering never fails.
func FilterSoldRecords(items []entity.Item, start, end time.Time, observer AnomalyObserver) []SaleRecord {
	if observer == nil {
		observer = NopObserver
	}
	loc := start.Location()

	records := make([]SaleRecord, 0, len(items))
	for i := range items {
		item := &items[i]
		if !item.IsSold() {
			continue
		}
		if item.SoldAt == nil {
			observer.ObserveAnomaly(newAnomaly(item.ID, "sold_at", "", errMissingSoldAt))
			continue
		}

		soldAt, err := ParseSoldAt(*item.SoldAt, loc)
		if err != nil {
			observer.ObserveAnomaly(newAnomaly(item.ID, "sold_at", *item.SoldAt, err))
			continue
		}
		if soldAt.Before(start) || soldAt.After(end) {
			continue
		}

		records = append(records, SaleRecord{
			ItemID:  item.ID,
			SoldAt:  soldAt,
			Revenue: item.SellingPrice,
			Cost:    item.PurchasePrice,
		})
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].SoldAt.Before(records[j].SoldAt)
	})

	return records
}
