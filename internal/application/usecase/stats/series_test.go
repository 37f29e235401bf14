package stats

import (
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inventory-tracker/backend/internal/domain/entity"
)

func TestBucketSeries_WeekScenario(t *testing.T) {
	period := ResolvePeriod(PeriodWeek, date(2024, 5, 15, 0, 0, 0))
	items := []entity.Item{soldItem(1, "30", "50", "2024-05-14T10:00:00Z")}

	series := BucketSeries(FilterSoldRecords(items, period.Start, period.End, nil), period)

	assert.Equal(t, []string{"0", "50", "50", "50", "50", "50", "50"}, values(series.CumulativeRevenue))
	assert.Equal(t, []string{"0", "50", "0", "0", "0", "0", "0"}, values(series.PeriodicRevenue))
	assert.Equal(t, []string{"0", "20", "20", "20", "20", "20", "20"}, values(series.CumulativeProfit))
	assert.Equal(t, []string{"0", "20", "0", "0", "0", "0", "0"}, values(series.PeriodicProfit))
	assert.Equal(t, "50", series.TotalRevenue.String())
	assert.Equal(t, "20", series.TotalProfit.String())
	assert.Equal(t, 1, series.Consumed)

	for i, p := range series.CumulativeRevenue {
		assert.Equal(t, period.Buckets[i], p.Instant)
	}
}

func TestBucketSeries_EmptyRecords(t *testing.T) {
	for _, kind := range []PeriodKind{PeriodWeek, PeriodMonth, PeriodYear} {
		t.Run(string(kind), func(t *testing.T) {
			period := ResolvePeriod(kind, date(2024, 5, 15, 12, 0, 0))

			series := BucketSeries(nil, period)

			n := len(period.Buckets)
			require.Len(t, series.CumulativeRevenue, n)
			require.Len(t, series.CumulativeProfit, n)
			require.Len(t, series.PeriodicRevenue, n)
			require.Len(t, series.PeriodicProfit, n)
			for i := 0; i < n; i++ {
				assert.True(t, series.CumulativeRevenue[i].Value.IsZero())
				assert.True(t, series.PeriodicProfit[i].Value.IsZero())
			}
			assert.True(t, series.TotalRevenue.IsZero())
		})
	}
}

func TestBucketSeries_RecordAtMidnightBelongsToItsOwnDay(t *testing.T) {
	period := ResolvePeriod(PeriodWeek, date(2024, 5, 15, 0, 0, 0))
	items := []entity.Item{soldItem(1, "0", "10", "2024-05-14T00:00:00Z")}

	series := BucketSeries(FilterSoldRecords(items, period.Start, period.End, nil), period)

	assert.Equal(t, []string{"0", "10", "0", "0", "0", "0", "0"}, values(series.PeriodicRevenue))
}

func TestBucketSeries_YearStopsAtReference(t *testing.T) {
	reference := date(2024, 3, 10, 12, 0, 0)
	period := ResolvePeriod(PeriodYear, reference)

	records := []SaleRecord{
		{ItemID: 1, SoldAt: date(2024, 1, 15, 9, 0, 0), Revenue: dec("10"), Cost: dec("4")},
		{ItemID: 2, SoldAt: date(2024, 2, 29, 23, 59, 59), Revenue: dec("20"), Cost: dec("5")},
		{ItemID: 3, SoldAt: date(2024, 3, 10, 11, 0, 0), Revenue: dec("5"), Cost: dec("1")},
		{ItemID: 4, SoldAt: date(2024, 3, 10, 13, 0, 0), Revenue: dec("7"), Cost: dec("1")},
	}

	series := BucketSeries(records, period)

	assert.Equal(t, []string{"10", "30", "35"}, values(series.CumulativeRevenue))
	assert.Equal(t, []string{"10", "20", "5"}, values(series.PeriodicRevenue))
	assert.Equal(t, []string{"6", "15", "4"}, values(series.PeriodicProfit))
	assert.Equal(t, 3, series.Consumed, "the sale after the reference instant is not counted")
}

func TestBucketSeries_MonthIgnoresSalesAfterReferenceDay(t *testing.T) {
	period := ResolvePeriod(PeriodMonth, date(2024, 5, 15, 12, 0, 0))
	items := []entity.Item{
		soldItem(1, "1", "3", "2024-05-02T10:00:00Z"),
		soldItem(2, "1", "9", "2024-05-20T10:00:00Z"),
	}

	series := BucketSeries(FilterSoldRecords(items, period.Start, period.End, nil), period)

	require.Len(t, series.PeriodicRevenue, 15)
	assert.Equal(t, "3", series.TotalRevenue.String())
	assert.Equal(t, "3", series.CumulativeRevenue[14].Value.String())
}

func TestBucketSeries_IsIdempotent(t *testing.T) {
	period := ResolvePeriod(PeriodMonth, date(2024, 5, 15, 12, 0, 0))
	items := []entity.Item{
		soldItem(1, "1", "3", "2024-05-02T10:00:00Z"),
		soldItem(2, "4", "9", "2024-05-07T10:00:00Z"),
		soldItem(3, "2", "2", "2024-05-07T11:00:00Z"),
	}
	records := FilterSoldRecords(items, period.Start, period.End, nil)

	first := BucketSeries(records, period)
	second := BucketSeries(records, period)

	assert.Equal(t, values(first.CumulativeRevenue), values(second.CumulativeRevenue))
	assert.Equal(t, values(first.CumulativeProfit), values(second.CumulativeProfit))
	assert.Equal(t, values(first.PeriodicRevenue), values(second.PeriodicRevenue))
	assert.Equal(t, values(first.PeriodicProfit), values(second.PeriodicProfit))
	assert.True(t, first.TotalRevenue.Equal(second.TotalRevenue))
}

// TestBucketSeries_TotalsMatchSeries checks, over generated data, that periodic
// values sum to the period total and the cumulative series ends at it.
func TestBucketSeries_TotalsMatchSeries(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	reference := date(2024, 8, 21, 15, 45, 0)

	items := make([]entity.Item, 0, 300)
	for i := 0; i < 300; i++ {
		soldAt := date(2024, 1, 1, 0, 0, 0).Add(time.Duration(rng.Int63n(int64(366 * 24 * time.Hour))))
		buy := decimal.New(rng.Int63n(10000), -2)
		sell := decimal.New(rng.Int63n(20000), -2)
		items = append(items, soldItem(int64(i+1), buy.String(), sell.String(), soldAt.Format(time.RFC3339)))
	}

	for _, kind := range []PeriodKind{PeriodWeek, PeriodMonth, PeriodYear} {
		t.Run(string(kind), func(t *testing.T) {
			result := ComputePeriodStats(items, kind, reference, nil)

			revenueSum := decimal.Zero
			for _, p := range result.DailyRevenue {
				revenueSum = revenueSum.Add(p.Value)
			}
			profitSum := decimal.Zero
			for _, p := range result.DailyProfit {
				profitSum = profitSum.Add(p.Value)
			}

			assert.True(t, revenueSum.Equal(result.TotalRevenueForPeriod))
			assert.True(t, profitSum.Equal(result.TotalProfitForPeriod))
			last := len(result.RevenueSeries) - 1
			assert.True(t, result.RevenueSeries[last].Value.Equal(result.TotalRevenueForPeriod))
			assert.True(t, result.ProfitSeries[last].Value.Equal(result.TotalProfitForPeriod))
		})
	}
}

// BenchmarkBucketSeries exercises the single-pass walk on a large year.
func BenchmarkBucketSeries(b *testing.B) {
	reference := date(2024, 12, 31, 23, 0, 0)
	period := ResolvePeriod(PeriodYear, reference)
	records := make([]SaleRecord, 0, 100000)
	for i := 0; i < 100000; i++ {
		records = append(records, SaleRecord{
			ItemID:  int64(i),
			SoldAt:  period.Start.Add(time.Duration(i) * 5 * time.Minute),
			Revenue: decimal.NewFromInt(10),
			Cost:    decimal.NewFromInt(4),
		})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = BucketSeries(records, period)
	}
}
