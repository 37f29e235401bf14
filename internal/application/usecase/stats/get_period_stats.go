package stats

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/inventory-tracker/backend/internal/application/adapter"
	"github.com/inventory-tracker/backend/internal/domain/entity"
)

// PeriodStats holds chart-ready series and totals for one period.
type PeriodStats struct {
	Period        PeriodKind
	Granularity   Granularity
	StartDate     time.Time
	EndDate       time.Time
	ReferenceDate time.Time

	// Cumulative series, for trend lines.
	RevenueSeries []TimeSeriesPoint
	ProfitSeries  []TimeSeriesPoint
	// Periodic series, for bars and tooltips.
	DailyRevenue []TimeSeriesPoint
	DailyProfit  []TimeSeriesPoint

	TotalRevenueForPeriod decimal.Decimal
	TotalProfitForPeriod  decimal.Decimal
	SalesCount            int
	SkippedRecords        int
}

// ComputePeriodStats runs the period pipeline: resolve, filter, bucket.
// It is pure apart from the observer calls and safe for concurrent use.
func ComputePeriodStats(items []entity.Item, kind PeriodKind, reference time.Time, observer AnomalyObserver) PeriodStats {
	if observer == nil {
		observer = NopObserver
	}

	skipped := 0
	counting := AnomalyObserverFunc(func(a Anomaly) {
		skipped++
		observer.ObserveAnomaly(a)
	})

	period := ResolvePeriod(kind, reference)
	records := FilterSoldRecords(items, period.Start, period.End, counting)
	series := BucketSeries(records, period)

	return PeriodStats{
		Period:                period.Kind,
		Granularity:           period.Granularity,
		StartDate:             period.Start,
		EndDate:               period.End,
		ReferenceDate:         period.Reference,
		RevenueSeries:         series.CumulativeRevenue,
		ProfitSeries:          series.CumulativeProfit,
		DailyRevenue:          series.PeriodicRevenue,
		DailyProfit:           series.PeriodicProfit,
		TotalRevenueForPeriod: series.TotalRevenue,
		TotalProfitForPeriod:  series.TotalProfit,
		SalesCount:            series.Consumed,
		SkippedRecords:        skipped,
	}
}

// GetPeriodStatsInput represents the input for getting period stats.
type GetPeriodStatsInput struct {
	Period PeriodKind
	// Reference defaults to the use case clock when zero.
	Reference time.Time
}

// GetPeriodStatsOutput represents the output of getting period stats.
type GetPeriodStatsOutput struct {
	PeriodStats PeriodStats
	Cached      bool
}

// GetPeriodStatsUseCase computes period series for the dashboard charts.
type GetPeriodStatsUseCase struct {
	loader   inputLoader
	observer AnomalyObserver
	location *time.Location
	now      func() time.Time
}

// defaultReferencePrecision is applied to the clock when no reference is given.
const defaultReferencePrecision = time.Minute

// NewGetPeriodStatsUseCase creates a new GetPeriodStatsUseCase instance.
// cache may be nil to disable caching; location defaults to UTC.
func NewGetPeriodStatsUseCase(
	itemRepo adapter.ItemRepository,
	cache adapter.StatsCache,
	cacheTTL time.Duration,
	observer AnomalyObserver,
	location *time.Location,
) *GetPeriodStatsUseCase {
	if location == nil {
		location = time.UTC
	}
	return &GetPeriodStatsUseCase{
		loader: inputLoader{
			itemRepo: itemRepo,
			cache:    cache,
			cacheTTL: cacheTTL,
		},
		observer: observer,
		location: location,
		now:      time.Now,
	}
}

// WithClock replaces the clock used when no reference instant is given.
func (uc *GetPeriodStatsUseCase) WithClock(now func() time.Time) *GetPeriodStatsUseCase {
	uc.now = now
	return uc
}

// Execute fetches inputs and computes the period stats.
func (uc *GetPeriodStatsUseCase) Execute(ctx context.Context, input GetPeriodStatsInput) (*GetPeriodStatsOutput, error) {
	if !input.Period.IsKnown() {
		slog.Warn("Unknown stats period, falling back to month", "period", string(input.Period))
	}

	reference := input.Reference
	if reference.IsZero() {
		// Whole minutes keep the cache key stable between default requests.
		reference = uc.now().Truncate(defaultReferencePrecision)
	}
	reference = reference.In(uc.location)

	items, err := uc.loader.loadItems(ctx)
	if err != nil {
		return nil, err
	}

	kind := input.Period.Normalize()
	key := uc.loader.cacheKey("period", items, string(kind), reference.Format(time.RFC3339Nano))
	var cached PeriodStats
	if uc.loader.cached(ctx, key, &cached) {
		return &GetPeriodStatsOutput{PeriodStats: cached, Cached: true}, nil
	}

	result := ComputePeriodStats(items, kind, reference, uc.observer)
	uc.loader.store(ctx, key, result)

	return &GetPeriodStatsOutput{PeriodStats: result}, nil
}
