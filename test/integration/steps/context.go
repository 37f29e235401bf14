// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/inventory-tracker/backend/config"
	"github.com/inventory-tracker/backend/internal/infra/dependency"
	"github.com/inventory-tracker/backend/internal/integration/persistence/model"
	"github.com/inventory-tracker/backend/test/integration/mock"
)

// testContext holds the state shared by the steps of one scenario.
type testContext struct {
	uri      string
	headers  map[string]string
	client   *http.Client
	response *response
	db       *mock.Db
	redis    *redis.Client
	timeMock *mock.Time

	categoryIDs map[string]int64
	sourceIDs   map[string]int64
	itemIDs     map[string]int64
	lastItemID  int64
}

type response struct {
	status int
	body   any
}

var (
	// suiteClock is shared because the server is wired only once.
	suiteClock = mock.NewTime()

	serverInit sync.Once
	serverURL  string
	serverErr  error
)

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client:   &http.Client{Timeout: 10 * time.Second},
		timeMock: suiteClock,
		redis:    mock.NewRedis(),
		db: mock.NewDb("inventory_tracker", map[string]any{
			"categories": &model.CategoryModel{},
			"sources":    &model.SourceModel{},
			"items":      &model.ItemModel{},
		}),
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^the current time is "([^"]*)"$`, test.theCurrentTimeIs)

	// Data setup steps
	ctx.Given(`^a category exists with name "([^"]*)"$`, test.aCategoryExistsWithName)
	ctx.Given(`^a source exists with name "([^"]*)"$`, test.aSourceExistsWithName)
	ctx.Given(`^the following items exist:$`, test.theFollowingItemsExist)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should have (\d+) elements$`, test.theResponseFieldShouldHaveElements)

	// Database and cache assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
	ctx.Then(`^the stats cache should contain (\d+) entries$`, test.theStatsCacheShouldContainEntries)
}

func (t *testContext) before() error {
	t.headers = make(map[string]string)
	t.response = nil
	t.categoryIDs = make(map[string]int64)
	t.sourceIDs = make(map[string]int64)
	t.itemIDs = make(map[string]int64)
	t.lastItemID = 0
	t.timeMock.Reset()

	if err := t.db.ClearDB(); err != nil {
		return err
	}
	return mock.ClearRedis(t.redis)
}

// startServer wires the application against the in-memory database and
// Redis once per test run.
func (t *testContext) startServer() error {
	serverInit.Do(func() {
		cfg := config.Load()
		cfg.Server.Environment = "test"
		cfg.Stats.CacheEnabled = true
		cfg.Stats.CacheTTL = time.Minute
		cfg.Stats.Timezone = "UTC"
		cfg.Stats.RateLimit = 1000

		injector, err := dependency.NewInjector(cfg, t.db.DbConn, t.redis, dependency.WithClock(t.timeMock.Now))
		if err != nil {
			serverErr = fmt.Errorf("failed to wire dependencies: %w", err)
			return
		}

		server := httptest.NewServer(injector.Router.Setup(cfg.Server.Environment))
		serverURL = server.URL
	})

	t.uri = serverURL
	return serverErr
}
