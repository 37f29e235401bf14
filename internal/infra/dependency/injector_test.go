package dependency

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/inventory-tracker/backend/config"
	"github.com/inventory-tracker/backend/internal/integration/persistence/model"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Environment: "test"},
		Stats: config.StatsConfig{
			CacheEnabled: true,
			CacheTTL:     time.Minute,
			Timezone:     "UTC",
			RateLimit:    2,
			RateWindow:   time.Minute,
		},
	}
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(model.All()...))
	return db
}

func newTestEngine(t *testing.T, cfg *config.Config, redisClient *redis.Client) *gin.Engine {
	t.Helper()

	now := func() time.Time { return time.Date(2024, 5, 16, 8, 0, 0, 0, time.UTC) }
	injector, err := NewInjector(cfg, newTestDB(t), redisClient, WithClock(now))
	require.NoError(t, err)

	return injector.Router.Setup(cfg.Server.Environment)
}

func serve(engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "192.0.2.1:1234"
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestNewInjector_InvalidTimezone(t *testing.T) {
	cfg := testConfig()
	cfg.Stats.Timezone = "Mars/Olympus_Mons"

	_, err := NewInjector(cfg, newTestDB(t), nil)

	assert.Error(t, err)
}

func TestInjector_HealthWithoutCache(t *testing.T) {
	engine := newTestEngine(t, testConfig(), nil)

	rec := serve(engine, http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "connected", body["database"])
	assert.Equal(t, "disabled", body["cache"])
}

func TestInjector_ItemsFeedStats(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := testConfig()
	cfg.Stats.RateLimit = 0
	engine := newTestEngine(t, cfg, client)

	rec := serve(engine, http.MethodPost, "/api/v1/categories", `{"name":"Lamps"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = serve(engine, http.MethodPost, "/api/v1/items",
		`{"name":"Brass lamp","purchase_price":"10","selling_price":"20","category_id":1,"status":"sold","sold_at":"2024-05-14T10:00:00Z"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = serve(engine, http.MethodGet, "/api/v1/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "20.00", body["total_revenue"])
	assert.Equal(t, "10.00", body["total_profit"])
	assert.Equal(t, false, body["cached"])

	rec = serve(engine, http.MethodGet, "/api/v1/stats", "")
	assert.Equal(t, true, decode(t, rec)["cached"])

	rec = serve(engine, http.MethodGet, "/api/v1/stats/period?period=week", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body = decode(t, rec)
	assert.Equal(t, "20.00", body["total_revenue_for_period"])
	assert.Equal(t, "2024-05-13", body["start_date"].(string)[:10])
}

func TestInjector_StatsAreRateLimited(t *testing.T) {
	engine := newTestEngine(t, testConfig(), nil)

	for i := 0; i < 2; i++ {
		rec := serve(engine, http.MethodGet, "/api/v1/stats", "")
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := serve(engine, http.MethodGet, "/api/v1/stats", "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	// Item routes are not behind the stats limiter.
	rec = serve(engine, http.MethodGet, "/api/v1/items", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestInjector_InvalidReferenceDate(t *testing.T) {
	engine := newTestEngine(t, testConfig(), nil)

	rec := serve(engine, http.MethodGet, "/api/v1/stats/period?reference=15-05-2024", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "STS-010001", decode(t, rec)["code"])
}
