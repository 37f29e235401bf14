package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/inventory-tracker/backend/internal/application/usecase/stats"
)

// Money and percentages are rendered with two decimals.
const amountPlaces = 2

// ItemPerformanceResponse represents a best or worst selling item.
type ItemPerformanceResponse struct {
	ItemID  int64  `json:"item_id"`
	Name    string `json:"name"`
	Revenue string `json:"revenue"`
	Cost    string `json:"cost"`
	Profit  string `json:"profit"`
	Margin  string `json:"margin"`
}

// GroupStatsResponse represents a category or source roll-up.
type GroupStatsResponse struct {
	ID            *int64 `json:"id"`
	Name          string `json:"name"`
	ItemCount     int    `json:"item_count"`
	SoldCount     int    `json:"sold_count"`
	Revenue       string `json:"revenue"`
	Profit        string `json:"profit"`
	AverageMargin string `json:"average_margin"`
}

// StatsResponse represents the whole-dataset snapshot.
type StatsResponse struct {
	TotalItems         int                      `json:"total_items"`
	AvailableItems     int                      `json:"available_items"`
	SoldItems          int                      `json:"sold_items"`
	ConsignmentItems   int                      `json:"consignment_items"`
	TotalPurchaseValue string                   `json:"total_purchase_value"`
	TotalSellingValue  string                   `json:"total_selling_value"`
	PotentialProfit    string                   `json:"potential_profit"`
	TotalRevenue       string                   `json:"total_revenue"`
	TotalSoldCost      string                   `json:"total_sold_cost"`
	TotalProfit        string                   `json:"total_profit"`
	AverageProfit      string                   `json:"average_profit"`
	AverageMargin      string                   `json:"average_margin"`
	ROI                string                   `json:"roi"`
	BestSellingItem    *ItemPerformanceResponse `json:"best_selling_item"`
	WorstSellingItem   *ItemPerformanceResponse `json:"worst_selling_item"`
	Categories         []GroupStatsResponse     `json:"categories"`
	Sources            []GroupStatsResponse     `json:"sources"`
	Cached             bool                     `json:"cached"`
}

// TimeSeriesPointResponse represents one bucket of a chart series.
type TimeSeriesPointResponse struct {
	Date  string `json:"date"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// PeriodStatsResponse represents chart-ready series for one period.
type PeriodStatsResponse struct {
	Period                string                    `json:"period"`
	Granularity           string                    `json:"granularity"`
	StartDate             string                    `json:"start_date"`
	EndDate               string                    `json:"end_date"`
	ReferenceDate         string                    `json:"reference_date"`
	RevenueSeries         []TimeSeriesPointResponse `json:"revenue_series"`
	ProfitSeries          []TimeSeriesPointResponse `json:"profit_series"`
	DailyRevenue          []TimeSeriesPointResponse `json:"daily_revenue"`
	DailyProfit           []TimeSeriesPointResponse `json:"daily_profit"`
	TotalRevenueForPeriod string                    `json:"total_revenue_for_period"`
	TotalProfitForPeriod  string                    `json:"total_profit_for_period"`
	SalesCount            int                       `json:"sales_count"`
	SkippedRecords        int                       `json:"skipped_records"`
	Cached                bool                      `json:"cached"`
}

func amount(d decimal.Decimal) string {
	return d.StringFixed(amountPlaces)
}

// ToStatsResponse converts a GetStatsOutput to a StatsResponse DTO.
func ToStatsResponse(output *stats.GetStatsOutput) StatsResponse {
	s := output.Stats
	return StatsResponse{
		TotalItems:         s.TotalItems,
		AvailableItems:     s.AvailableItems,
		SoldItems:          s.SoldItems,
		ConsignmentItems:   s.ConsignmentItems,
		TotalPurchaseValue: amount(s.TotalPurchaseValue),
		TotalSellingValue:  amount(s.TotalSellingValue),
		PotentialProfit:    amount(s.PotentialProfit),
		TotalRevenue:       amount(s.TotalRevenue),
		TotalSoldCost:      amount(s.TotalSoldCost),
		TotalProfit:        amount(s.TotalProfit),
		AverageProfit:      amount(s.AverageProfit),
		AverageMargin:      amount(s.AverageMargin),
		ROI:                amount(s.ROI),
		BestSellingItem:    toItemPerformanceResponse(s.BestSellingItem),
		WorstSellingItem:   toItemPerformanceResponse(s.WorstSellingItem),
		Categories:         toGroupStatsResponses(s.Categories),
		Sources:            toGroupStatsResponses(s.Sources),
		Cached:             output.Cached,
	}
}

func toItemPerformanceResponse(p *stats.ItemPerformance) *ItemPerformanceResponse {
	if p == nil {
		return nil
	}
	return &ItemPerformanceResponse{
		ItemID:  p.ItemID,
		Name:    p.Name,
		Revenue: amount(p.Revenue),
		Cost:    amount(p.Cost),
		Profit:  amount(p.Profit),
		Margin:  amount(p.Margin),
	}
}

func toGroupStatsResponses(groups []stats.GroupStats) []GroupStatsResponse {
	out := make([]GroupStatsResponse, len(groups))
	for i, g := range groups {
		out[i] = GroupStatsResponse{
			ID:            g.GroupID,
			Name:          g.Name,
			ItemCount:     g.ItemCount,
			SoldCount:     g.SoldCount,
			Revenue:       amount(g.Revenue),
			Profit:        amount(g.Profit),
			AverageMargin: amount(g.AverageMargin),
		}
	}
	return out
}

// ToPeriodStatsResponse converts a GetPeriodStatsOutput to a PeriodStatsResponse DTO.
func ToPeriodStatsResponse(output *stats.GetPeriodStatsOutput) PeriodStatsResponse {
	p := output.PeriodStats
	return PeriodStatsResponse{
		Period:                string(p.Period),
		Granularity:           string(p.Granularity),
		StartDate:             p.StartDate.Format(time.RFC3339),
		EndDate:               p.EndDate.Format(time.RFC3339),
		ReferenceDate:         p.ReferenceDate.Format(time.RFC3339),
		RevenueSeries:         toSeriesResponse(p.RevenueSeries),
		ProfitSeries:          toSeriesResponse(p.ProfitSeries),
		DailyRevenue:          toSeriesResponse(p.DailyRevenue),
		DailyProfit:           toSeriesResponse(p.DailyProfit),
		TotalRevenueForPeriod: amount(p.TotalRevenueForPeriod),
		TotalProfitForPeriod:  amount(p.TotalProfitForPeriod),
		SalesCount:            p.SalesCount,
		SkippedRecords:        p.SkippedRecords,
		Cached:                output.Cached,
	}
}

func toSeriesResponse(points []stats.TimeSeriesPoint) []TimeSeriesPointResponse {
	out := make([]TimeSeriesPointResponse, len(points))
	for i, p := range points {
		out[i] = TimeSeriesPointResponse{
			Date:  p.Instant.Format("2006-01-02"),
			Label: p.Label,
			Value: amount(p.Value),
		}
	}
	return out
}
