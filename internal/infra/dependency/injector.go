// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/inventory-tracker/backend/config"
	"github.com/inventory-tracker/backend/internal/application/adapter"
	"github.com/inventory-tracker/backend/internal/application/usecase/category"
	"github.com/inventory-tracker/backend/internal/application/usecase/item"
	"github.com/inventory-tracker/backend/internal/application/usecase/source"
	"github.com/inventory-tracker/backend/internal/application/usecase/stats"
	domainerror "github.com/inventory-tracker/backend/internal/domain/error"
	infradb "github.com/inventory-tracker/backend/internal/infra/db"
	"github.com/inventory-tracker/backend/internal/infra/server/router"
	"github.com/inventory-tracker/backend/internal/integration/adapters"
	"github.com/inventory-tracker/backend/internal/integration/cache"
	"github.com/inventory-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/inventory-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/inventory-tracker/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config           *config.Config
	DB               *gorm.DB
	Redis            *redis.Client
	Router           *router.Router
	StatsRateLimiter *middleware.RateLimiter
}

// Option customizes how the injector wires dependencies.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock sets the clock used by period stats when no reference date is given.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// NewInjector creates a new dependency injector with all dependencies wired.
// redisClient may be nil, in which case stats are computed on every request.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, opts ...Option) (*Injector, error) {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	location, err := cfg.Stats.Location()
	if err != nil {
		return nil, domainerror.NewStatsError(domainerror.ErrCodeInvalidTimezone, "invalid stats timezone",
			fmt.Errorf("%w: %w", domainerror.ErrInvalidTimezone, err))
	}

	// Create repositories
	itemRepo := persistence.NewItemRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	sourceRepo := persistence.NewSourceRepository(db)

	// Create adapters/services
	var statsCache adapter.StatsCache
	if cfg.Stats.CacheEnabled && redisClient != nil {
		statsCache = cache.NewRedisStatsCache(redisClient)
	}
	anomalyObserver := adapters.NewAnomalyLogger(slog.Default())

	// Create stats use cases
	getStatsUseCase := stats.NewGetStatsUseCase(itemRepo, categoryRepo, sourceRepo, statsCache, cfg.Stats.CacheTTL)
	getPeriodStatsUseCase := stats.NewGetPeriodStatsUseCase(itemRepo, statsCache, cfg.Stats.CacheTTL, anomalyObserver, location).
		WithClock(o.now)

	// Create item use cases
	listItemsUseCase := item.NewListItemsUseCase(itemRepo)
	createItemUseCase := item.NewCreateItemUseCase(itemRepo, categoryRepo, sourceRepo)
	updateItemUseCase := item.NewUpdateItemUseCase(itemRepo, categoryRepo, sourceRepo)
	deleteItemUseCase := item.NewDeleteItemUseCase(itemRepo)
	previewPriceUseCase := item.NewPreviewPriceUseCase()

	// Create category and source use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	listSourcesUseCase := source.NewListSourcesUseCase(sourceRepo)
	createSourceUseCase := source.NewCreateSourceUseCase(sourceRepo)

	// Create controllers
	healthController := controller.NewHealthController(
		func() bool { return infradb.Ping(db) },
		redisHealthChecker(redisClient),
	)

	statsController := controller.NewStatsController(getStatsUseCase, getPeriodStatsUseCase, location)

	itemController := controller.NewItemController(
		listItemsUseCase,
		createItemUseCase,
		updateItemUseCase,
		deleteItemUseCase,
		previewPriceUseCase,
	)

	categoryController := controller.NewCategoryController(listCategoriesUseCase, createCategoryUseCase)
	sourceController := controller.NewSourceController(listSourcesUseCase, createSourceUseCase)

	// Create middleware
	statsRateLimiter := middleware.NewRateLimiterWithConfig(cfg.Stats.RateLimit, cfg.Stats.RateWindow)

	// Create router
	r := router.NewRouter(
		healthController,
		statsController,
		itemController,
		categoryController,
		sourceController,
		statsRateLimiter,
	)

	return &Injector{
		Config:           cfg,
		DB:               db,
		Redis:            redisClient,
		Router:           r,
		StatsRateLimiter: statsRateLimiter,
	}, nil
}

func redisHealthChecker(client *redis.Client) func() bool {
	if client == nil {
		return nil
	}
	return func() bool {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return client.Ping(ctx).Err() == nil
	}
}
