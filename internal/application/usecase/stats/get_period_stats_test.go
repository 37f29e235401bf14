package stats

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inventory-tracker/backend/internal/domain/entity"
	domainerror "github.com/inventory-tracker/backend/internal/domain/error"
)

func periodItems() []entity.Item {
	return []entity.Item{
		soldItem(1, "30", "50", "2024-05-14T10:00:00Z"),
		soldItem(2, "5", "15", "2024-05-02T10:00:00Z"),
		soldItem(3, "1", "2", "garbage"),
		availableItem(4, "8", "12"),
	}
}

func TestComputePeriodStats_Week(t *testing.T) {
	recorder := &anomalyRecorder{}

	result := ComputePeriodStats(periodItems(), PeriodWeek, date(2024, 5, 15, 0, 0, 0), recorder)

	assert.Equal(t, PeriodWeek, result.Period)
	assert.Equal(t, GranularityDaily, result.Granularity)
	assert.Equal(t, date(2024, 5, 13, 0, 0, 0), result.StartDate)
	assert.Equal(t, date(2024, 5, 15, 0, 0, 0), result.ReferenceDate)
	assert.Equal(t, []string{"0", "50", "50", "50", "50", "50", "50"}, values(result.RevenueSeries))
	assert.Equal(t, []string{"0", "20", "0", "0", "0", "0", "0"}, values(result.DailyProfit))
	assert.Equal(t, "50", result.TotalRevenueForPeriod.String())
	assert.Equal(t, "20", result.TotalProfitForPeriod.String())
	assert.Equal(t, 1, result.SalesCount)
	assert.Equal(t, 1, result.SkippedRecords)
	assert.Equal(t, []int64{3}, recorder.itemIDs())
	assert.Equal(t, "Mon 13", result.RevenueSeries[0].Label)
}

func TestComputePeriodStats_Month(t *testing.T) {
	result := ComputePeriodStats(periodItems(), PeriodMonth, date(2024, 5, 15, 12, 0, 0), nil)

	require.Len(t, result.DailyRevenue, 15)
	assert.Equal(t, "15", result.DailyRevenue[1].Value.String())
	assert.Equal(t, "50", result.DailyRevenue[13].Value.String())
	assert.Equal(t, "65", result.TotalRevenueForPeriod.String())
	assert.Equal(t, "30", result.TotalProfitForPeriod.String())
	assert.Equal(t, 2, result.SalesCount)
	assert.Equal(t, 1, result.SkippedRecords)
}

func TestComputePeriodStats_NoItems(t *testing.T) {
	result := ComputePeriodStats(nil, PeriodYear, date(2024, 5, 15, 12, 0, 0), nil)

	assert.Equal(t, GranularityMonthly, result.Granularity)
	require.Len(t, result.RevenueSeries, 5)
	assert.True(t, result.TotalRevenueForPeriod.IsZero())
	assert.Equal(t, 0, result.SalesCount)
	assert.Equal(t, 0, result.SkippedRecords)
}

func TestGetPeriodStatsUseCase_Execute(t *testing.T) {
	itemRepo := &fakeItemRepository{items: periodItems()}
	recorder := &anomalyRecorder{}
	uc := NewGetPeriodStatsUseCase(itemRepo, nil, time.Minute, recorder, nil)

	output, err := uc.Execute(context.Background(), GetPeriodStatsInput{
		Period:    PeriodWeek,
		Reference: date(2024, 5, 15, 0, 0, 0),
	})

	require.NoError(t, err)
	assert.False(t, output.Cached)
	assert.Equal(t, "50", output.PeriodStats.TotalRevenueForPeriod.String())
	assert.Equal(t, []int64{3}, recorder.itemIDs())
	assert.Equal(t, 1, itemRepo.calls)
}

func TestGetPeriodStatsUseCase_Execute_DefaultsReferenceToClock(t *testing.T) {
	itemRepo := &fakeItemRepository{items: periodItems()}
	uc := NewGetPeriodStatsUseCase(itemRepo, nil, time.Minute, nil, nil).
		WithClock(func() time.Time { return date(2024, 5, 16, 8, 0, 0) })

	output, err := uc.Execute(context.Background(), GetPeriodStatsInput{Period: PeriodMonth})

	require.NoError(t, err)
	assert.Equal(t, date(2024, 5, 16, 8, 0, 0), output.PeriodStats.ReferenceDate)
	assert.Len(t, output.PeriodStats.DailyRevenue, 16)
}

func TestGetPeriodStatsUseCase_Execute_UsesConfiguredLocation(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	items := []entity.Item{
		// Sunday evening in BRT, Monday in UTC.
		soldItem(1, "0", "10", "2024-05-13T01:00:00Z"),
	}
	uc := NewGetPeriodStatsUseCase(&fakeItemRepository{items: items}, nil, time.Minute, nil, loc)

	output, err := uc.Execute(context.Background(), GetPeriodStatsInput{
		Period:    PeriodWeek,
		Reference: time.Date(2024, 5, 15, 12, 0, 0, 0, loc),
	})

	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 13, 0, 0, 0, 0, loc), output.PeriodStats.StartDate)
	assert.True(t, output.PeriodStats.TotalRevenueForPeriod.IsZero(), "the sale belongs to the previous week locally")
}

func TestGetPeriodStatsUseCase_Execute_UnknownPeriodFallsBackToMonth(t *testing.T) {
	uc := NewGetPeriodStatsUseCase(&fakeItemRepository{items: periodItems()}, nil, time.Minute, nil, nil)

	output, err := uc.Execute(context.Background(), GetPeriodStatsInput{
		Period:    PeriodKind("fortnight"),
		Reference: date(2024, 5, 15, 12, 0, 0),
	})

	require.NoError(t, err)
	assert.Equal(t, PeriodMonth, output.PeriodStats.Period)
	assert.Len(t, output.PeriodStats.DailyRevenue, 15)
}

func TestGetPeriodStatsUseCase_Execute_Cache(t *testing.T) {
	cache := newMemoryCache()
	itemRepo := &fakeItemRepository{items: periodItems()}
	uc := NewGetPeriodStatsUseCase(itemRepo, cache, time.Minute, nil, nil)
	input := GetPeriodStatsInput{Period: PeriodYear, Reference: date(2024, 5, 15, 12, 0, 0)}

	first, err := uc.Execute(context.Background(), input)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), input)
	require.NoError(t, err)

	assert.False(t, first.Cached)
	assert.True(t, second.Cached)
	assert.Equal(t, 1, cache.sets)
	assert.Equal(t, values(first.PeriodStats.RevenueSeries), values(second.PeriodStats.RevenueSeries))
	assert.True(t, first.PeriodStats.TotalProfitForPeriod.Equal(second.PeriodStats.TotalProfitForPeriod))
	assert.Equal(t, first.PeriodStats.SkippedRecords, second.PeriodStats.SkippedRecords)

	other := input
	other.Period = PeriodWeek
	third, err := uc.Execute(context.Background(), other)
	require.NoError(t, err)
	assert.False(t, third.Cached)
	assert.Equal(t, 2, cache.sets)
}

func TestGetPeriodStatsUseCase_Execute_CachesDefaultReference(t *testing.T) {
	cache := newMemoryCache()
	now := date(2024, 5, 16, 8, 0, 12).Add(345 * time.Millisecond)
	uc := NewGetPeriodStatsUseCase(&fakeItemRepository{items: periodItems()}, cache, time.Minute, nil, nil).
		WithClock(func() time.Time { return now })

	first, err := uc.Execute(context.Background(), GetPeriodStatsInput{Period: PeriodMonth})
	require.NoError(t, err)

	now = now.Add(20 * time.Second)
	second, err := uc.Execute(context.Background(), GetPeriodStatsInput{Period: PeriodMonth})
	require.NoError(t, err)

	assert.False(t, first.Cached)
	assert.True(t, second.Cached)
	assert.Equal(t, 1, cache.sets)
	assert.Equal(t, date(2024, 5, 16, 8, 0, 0), second.PeriodStats.ReferenceDate)

	now = now.Add(time.Minute)
	third, err := uc.Execute(context.Background(), GetPeriodStatsInput{Period: PeriodMonth})
	require.NoError(t, err)
	assert.False(t, third.Cached)
	assert.Equal(t, 2, cache.sets)
}

func TestGetPeriodStatsUseCase_Execute_CacheHitDoesNotReportAnomaliesAgain(t *testing.T) {
	recorder := &anomalyRecorder{}
	uc := NewGetPeriodStatsUseCase(&fakeItemRepository{items: periodItems()}, newMemoryCache(), time.Minute, recorder, nil)
	input := GetPeriodStatsInput{Period: PeriodWeek, Reference: date(2024, 5, 15, 0, 0, 0)}

	_, err := uc.Execute(context.Background(), input)
	require.NoError(t, err)
	cached, err := uc.Execute(context.Background(), input)
	require.NoError(t, err)

	assert.True(t, cached.Cached)
	assert.Equal(t, 1, cached.PeriodStats.SkippedRecords)
	assert.Equal(t, []int64{3}, recorder.itemIDs())
}

func TestGetPeriodStatsUseCase_Execute_UpstreamFailure(t *testing.T) {
	dbErr := errors.New("connection reset")
	uc := NewGetPeriodStatsUseCase(&fakeItemRepository{err: dbErr}, newMemoryCache(), time.Minute, nil, nil)

	output, err := uc.Execute(context.Background(), GetPeriodStatsInput{Period: PeriodWeek})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerror.ErrStatsSourceUnavailable)

	var statsErr *domainerror.StatsError
	require.ErrorAs(t, err, &statsErr)
	assert.Equal(t, domainerror.ErrCodeStatsSourceUnavailable, statsErr.Code)
}
