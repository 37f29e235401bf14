package stats

import (
	"github.com/shopspring/decimal"

	"github.com/inventory-tracker/backend/internal/domain/entity"
)

// UncategorizedName labels the roll-up of items without a (known) category.
const UncategorizedName = "Uncategorized"

// UnknownSourceName labels the roll-up of items without a (known) source.
const UnknownSourceName = "Unknown source"

var hundred = decimal.NewFromInt(100)

// ItemPerformance summarizes a single sold item.
type ItemPerformance struct {
	ItemID  int64
	Name    string
	Revenue decimal.Decimal
	Cost    decimal.Decimal
	Profit  decimal.Decimal
	Margin  decimal.Decimal
}

// GroupStats is the roll-up of the items sharing a category or source.
// GroupID is nil for the roll-up of items without a group.
type GroupStats struct {
	GroupID       *int64
	Name          string
	ItemCount     int
	SoldCount     int
	Revenue       decimal.Decimal
	Profit        decimal.Decimal
	AverageMargin decimal.Decimal
}

// Stats is a whole-dataset snapshot.
type Stats struct {
	TotalItems       int
	AvailableItems   int
	SoldItems        int
	ConsignmentItems int

	// Potential totals cover every item, sold or not.
	TotalPurchaseValue decimal.Decimal
	TotalSellingValue  decimal.Decimal
	// PotentialProfit is always TotalSellingValue - TotalPurchaseValue.
	PotentialProfit decimal.Decimal

	// Realized totals cover sold items only.
	TotalRevenue  decimal.Decimal
	TotalSoldCost decimal.Decimal
	TotalProfit   decimal.Decimal
	AverageProfit decimal.Decimal
	AverageMargin decimal.Decimal
	ROI           decimal.Decimal

	BestSellingItem  *ItemPerformance
	WorstSellingItem *ItemPerformance

	Categories []GroupStats
	Sources    []GroupStats
}

// ItemMargin returns (selling - purchase) / selling * 100, or 0 when selling is 0.
func ItemMargin(item *entity.Item) decimal.Decimal {
	return percentOf(item.Profit(), item.SellingPrice)
}

// percentOf returns part / whole * 100, or 0 when whole is 0.
func percentOf(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Mul(hundred).Div(whole)
}

// averageOf returns sum / count, or 0 when count is 0.
func averageOf(sum decimal.Decimal, count int) decimal.Decimal {
	if count == 0 {
		return decimal.Zero
	}
	return sum.Div(decimal.NewFromInt(int64(count)))
}

// CalculateStats computes the whole-dataset snapshot. Inputs are not modified.
func CalculateStats(items []entity.Item, categories []entity.Category, sources []entity.Source) Stats {
	s := Stats{
		TotalItems:         len(items),
		TotalPurchaseValue: decimal.Zero,
		TotalSellingValue:  decimal.Zero,
		TotalRevenue:       decimal.Zero,
		TotalSoldCost:      decimal.Zero,
		TotalProfit:        decimal.Zero,
	}

	marginSum := decimal.Zero
	for i := range items {
		item := &items[i]
		s.TotalPurchaseValue = s.TotalPurchaseValue.Add(item.PurchasePrice)
		s.TotalSellingValue = s.TotalSellingValue.Add(item.SellingPrice)
		if item.IsConsignment {
			s.ConsignmentItems++
		}

		if !item.IsSold() {
			s.AvailableItems++
			continue
		}

		s.SoldItems++
		s.TotalRevenue = s.TotalRevenue.Add(item.SellingPrice)
		s.TotalSoldCost = s.TotalSoldCost.Add(item.PurchasePrice)
		s.TotalProfit = s.TotalProfit.Add(item.Profit())
		marginSum = marginSum.Add(ItemMargin(item))

		profit := item.Profit()
		// Strict comparisons keep the first item encountered on ties.
		if s.BestSellingItem == nil || profit.GreaterThan(s.BestSellingItem.Profit) {
			s.BestSellingItem = newItemPerformance(item)
		}
		if s.WorstSellingItem == nil || profit.LessThan(s.WorstSellingItem.Profit) {
			s.WorstSellingItem = newItemPerformance(item)
		}
	}

	s.PotentialProfit = s.TotalSellingValue.Sub(s.TotalPurchaseValue)
	s.AverageProfit = averageOf(s.TotalProfit, s.SoldItems)
	s.AverageMargin = averageOf(marginSum, s.SoldItems)
	s.ROI = percentOf(s.TotalProfit, s.TotalSoldCost)

	s.Categories = rollUpCategories(items, categories)
	s.Sources = rollUpSources(items, sources)

	return s
}

func newItemPerformance(item *entity.Item) *ItemPerformance {
	return &ItemPerformance{
		ItemID:  item.ID,
		Name:    item.Name,
		Revenue: item.SellingPrice,
		Cost:    item.PurchasePrice,
		Profit:  item.Profit(),
		Margin:  ItemMargin(item),
	}
}

func rollUpCategories(items []entity.Item, categories []entity.Category) []GroupStats {
	groups := make([]groupRef, len(categories))
	for i, c := range categories {
		groups[i] = groupRef{id: c.ID, name: c.Name}
	}
	return rollUp(items, groups, UncategorizedName, func(item *entity.Item) *int64 {
		return item.CategoryID
	})
}

func rollUpSources(items []entity.Item, sources []entity.Source) []GroupStats {
	groups := make([]groupRef, len(sources))
	for i, s := range sources {
		groups[i] = groupRef{id: s.ID, name: s.Name}
	}
	return rollUp(items, groups, UnknownSourceName, func(item *entity.Item) *int64 {
		return item.SourceID
	})
}

type groupRef struct {
	id   int64
	name string
}

// rollUp aggregates items per group in group order. Every group gets an entry, even
// with zero items. Items whose key is nil or unknown are collected into a trailing
// entry named orphanName, present only when such items exist.
func rollUp(items []entity.Item, groups []groupRef, orphanName string, key func(*entity.Item) *int64) []GroupStats {
	result := make([]GroupStats, len(groups))
	index := make(map[int64]int, len(groups))
	for i, g := range groups {
		id := g.id
		result[i] = GroupStats{
			GroupID:       &id,
			Name:          g.name,
			Revenue:       decimal.Zero,
			Profit:        decimal.Zero,
			AverageMargin: decimal.Zero,
		}
		index[g.id] = i
	}

	orphans := GroupStats{
		Name:          orphanName,
		Revenue:       decimal.Zero,
		Profit:        decimal.Zero,
		AverageMargin: decimal.Zero,
	}

	for i := range items {
		item := &items[i]
		target := &orphans
		if id := key(item); id != nil {
			if pos, ok := index[*id]; ok {
				target = &result[pos]
			}
		}

		target.ItemCount++
		if item.IsSold() {
			target.SoldCount++
			target.Revenue = target.Revenue.Add(item.SellingPrice)
			target.Profit = target.Profit.Add(item.Profit())
		}
	}

	for i := range result {
		result[i].AverageMargin = percentOf(result[i].Profit, result[i].Revenue)
	}
	if orphans.ItemCount > 0 {
		orphans.AverageMargin = percentOf(orphans.Profit, orphans.Revenue)
		result = append(result, orphans)
	}

	return result
}
