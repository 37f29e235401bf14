package stats

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/inventory-tracker/backend/internal/application/adapter"
	"github.com/inventory-tracker/backend/internal/domain/entity"
	domainerror "github.com/inventory-tracker/backend/internal/domain/error"
)

// Inputs are the collections the engine aggregates over.
type Inputs struct {
	Items      []entity.Item
	Categories []entity.Category
	Sources    []entity.Source
}

// inputLoader fetches engine inputs and fronts the optional cache.
type inputLoader struct {
	itemRepo     adapter.ItemRepository
	categoryRepo adapter.CategoryRepository
	sourceRepo   adapter.SourceRepository
	cache        adapter.StatsCache
	cacheTTL     time.Duration
}

// load fetches items, categories and sources. Any failure aborts the whole
// computation; the engine never works on partial inputs.
func (l *inputLoader) load(ctx context.Context) (*Inputs, error) {
	items, err := l.itemRepo.FindAll(ctx, adapter.ItemFilter{})
	if err != nil {
		return nil, upstreamError("items", err)
	}

	categories, err := l.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, upstreamError("categories", err)
	}

	sources, err := l.sourceRepo.FindAll(ctx)
	if err != nil {
		return nil, upstreamError("sources", err)
	}

	return &Inputs{
		Items:      items,
		Categories: categories,
		Sources:    sources,
	}, nil
}

// loadItems fetches only the items, for computations that ignore grouping.
func (l *inputLoader) loadItems(ctx context.Context) ([]entity.Item, error) {
	items, err := l.itemRepo.FindAll(ctx, adapter.ItemFilter{})
	if err != nil {
		return nil, upstreamError("items", err)
	}
	return items, nil
}

// cached returns the entry stored under key into dest, or reports a miss.
// Cache failures are logged and treated as misses.
func (l *inputLoader) cached(ctx context.Context, key string, dest any) bool {
	if l.cache == nil || key == "" {
		return false
	}
	found, err := l.cache.Get(ctx, key, dest)
	if err != nil {
		slog.Warn("Stats cache read failed", "key", key, "error", err)
		return false
	}
	return found
}

// store saves value under key. Failures are logged and ignored.
func (l *inputLoader) store(ctx context.Context, key string, value any) {
	if l.cache == nil || key == "" {
		return
	}
	if err := l.cache.Set(ctx, key, value, l.cacheTTL); err != nil {
		slog.Warn("Stats cache write failed", "key", key, "error", err)
	}
}

// cacheKey hashes parts, returning "" (cache bypass) when hashing fails.
func (l *inputLoader) cacheKey(kind string, parts ...any) string {
	if l.cache == nil {
		return ""
	}
	key, err := CacheKey(kind, parts...)
	if err != nil {
		slog.Warn("Stats cache key could not be derived", "kind", kind, "error", err)
		return ""
	}
	return key
}

func upstreamError(collection string, err error) error {
	return domainerror.NewStatsError(
		domainerror.ErrCodeStatsSourceUnavailable,
		"failed to fetch "+collection,
		fmt.Errorf("%w: %w", domainerror.ErrStatsSourceUnavailable, err),
	)
}
