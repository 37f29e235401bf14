// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/inventory-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/inventory-tracker/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine             *gin.Engine
	healthController   *controller.HealthController
	statsController    *controller.StatsController
	itemController     *controller.ItemController
	categoryController *controller.CategoryController
	sourceController   *controller.SourceController
	statsRateLimiter   *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	statsController *controller.StatsController,
	itemController *controller.ItemController,
	categoryController *controller.CategoryController,
	sourceController *controller.SourceController,
	statsRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:   healthController,
		statsController:    statsController,
		itemController:     itemController,
		categoryController: categoryController,
		sourceController:   sourceController,
		statsRateLimiter:   statsRateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		if r.statsController != nil {
			statsGroup := v1.Group("/stats")
			if r.statsRateLimiter != nil {
				statsGroup.Use(r.statsRateLimiter.Middleware())
			}
			{
				statsGroup.GET("", r.statsController.GetStats)
				statsGroup.GET("/period", r.statsController.GetPeriodStats)
			}
		}

		if r.itemController != nil {
			items := v1.Group("/items")
			{
				items.GET("", r.itemController.List)
				items.POST("", r.itemController.Create)
				items.POST("/price-preview", r.itemController.PreviewPrice)
				items.PATCH("/:id", r.itemController.Update)
				items.DELETE("/:id", r.itemController.Delete)
			}
		}

		if r.categoryController != nil {
			categories := v1.Group("/categories")
			{
				categories.GET("", r.categoryController.List)
				categories.POST("", r.categoryController.Create)
			}
		}

		if r.sourceController != nil {
			sources := v1.Group("/sources")
			{
				sources.GET("", r.sourceController.List)
				sources.POST("", r.sourceController.Create)
			}
		}
	}
}
