package stats

import (
	"context"
	"time"

	"github.com/inventory-tracker/backend/internal/application/adapter"
)

// GetStatsOutput represents the output of getting the dataset snapshot.
type GetStatsOutput struct {
	Stats Stats
	// Cached reports whether the snapshot was served from the cache.
	Cached bool
}

// GetStatsUseCase computes the whole-dataset snapshot.
type GetStatsUseCase struct {
	loader inputLoader
}

// NewGetStatsUseCase creates a new GetStatsUseCase instance.
// cache may be nil to disable caching.
func NewGetStatsUseCase(
	itemRepo adapter.ItemRepository,
	categoryRepo adapter.CategoryRepository,
	sourceRepo adapter.SourceRepository,
	cache adapter.StatsCache,
	cacheTTL time.Duration,
) *GetStatsUseCase {
	return &GetStatsUseCase{
		loader: inputLoader{
			itemRepo:     itemRepo,
			categoryRepo: categoryRepo,
			sourceRepo:   sourceRepo,
			cache:        cache,
			cacheTTL:     cacheTTL,
		},
	}
}

// Execute fetches inputs and computes the snapshot.
func (uc *GetStatsUseCase) Execute(ctx context.Context) (*GetStatsOutput, error) {
	inputs, err := uc.loader.load(ctx)
	if err != nil {
		return nil, err
	}

	key := uc.loader.cacheKey("snapshot", inputs)
	var cached Stats
	if uc.loader.cached(ctx, key, &cached) {
		return &GetStatsOutput{Stats: cached, Cached: true}, nil
	}

	snapshot := CalculateStats(inputs.Items, inputs.Categories, inputs.Sources)
	uc.loader.store(ctx, key, snapshot)

	return &GetStatsOutput{Stats: snapshot}, nil
}
