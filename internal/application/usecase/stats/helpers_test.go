package stats

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/inventory-tracker/backend/internal/application/adapter"
	"github.com/inventory-tracker/backend/internal/domain/entity"
)

func date(year int, month time.Month, day, hour, min, sec int) time.Time {
	return time.Date(year, month, day, hour, min, sec, 0, time.UTC)
}

func ptr[T any](v T) *T {
	return &v
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func soldItem(id int64, buy, sell, soldAt string) entity.Item {
	return entity.Item{
		ID:            id,
		Name:          "item",
		Status:        entity.ItemStatusSold,
		PurchasePrice: dec(buy),
		SellingPrice:  dec(sell),
		SoldAt:        ptr(soldAt),
	}
}

func availableItem(id int64, buy, sell string) entity.Item {
	return entity.Item{
		ID:            id,
		Name:          "item",
		Status:        entity.ItemStatusAvailable,
		PurchasePrice: dec(buy),
		SellingPrice:  dec(sell),
	}
}

// values renders series values for readable comparisons.
func values(points []TimeSeriesPoint) []string {
	out := make([]string, len(points))
	for i, p := range points {
		out[i] = p.Value.String()
	}
	return out
}

type anomalyRecorder struct {
	mu        sync.Mutex
	anomalies []Anomaly
}

func (r *anomalyRecorder) ObserveAnomaly(a Anomaly) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.anomalies = append(r.anomalies, a)
}

func (r *anomalyRecorder) itemIDs() []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]int64, len(r.anomalies))
	for i, a := range r.anomalies {
		ids[i] = a.ItemID
	}
	return ids
}

type fakeItemRepository struct {
	adapter.ItemRepository
	items []entity.Item
	err   error
	calls int
}

func (f *fakeItemRepository) FindAll(ctx context.Context, filter adapter.ItemFilter) ([]entity.Item, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

type fakeCategoryRepository struct {
	adapter.CategoryRepository
	categories []entity.Category
	err        error
}

func (f *fakeCategoryRepository) FindAll(ctx context.Context) ([]entity.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.categories, nil
}

type fakeSourceRepository struct {
	adapter.SourceRepository
	sources []entity.Source
	err     error
}

func (f *fakeSourceRepository) FindAll(ctx context.Context) ([]entity.Source, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.sources, nil
}

// memoryCache is a JSON round-tripping cache, like the Redis one.
type memoryCache struct {
	entries map[string][]byte
	sets    int
	getErr  error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string][]byte)}
}

func (c *memoryCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	if c.getErr != nil {
		return false, c.getErr
	}
	raw, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *memoryCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.sets++
	c.entries[key] = raw
	return nil
}
