// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/finance-tracker/dashboard/config"
	"github.com/finance-tracker/dashboard/internal/application/adapter"
	"github.com/finance-tracker/dashboard/internal/infra/dependency"
	"github.com/finance-tracker/dashboard/internal/integration/persistence"
	"github.com/finance-tracker/dashboard/internal/integration/persistence/model"
	"github.com/finance-tracker/dashboard/test/integration/mock"
)

// testContext holds the state of one scenario.
type testContext struct {
	cfg      *config.Config
	client   *http.Client
	server   *httptest.Server
	injector *dependency.Injector
	kv       adapter.KeyValueStore
	backend  string
	db       *mock.Db
	redis    *redis.Client
	timeMock *mock.Time
	headers  map[string]string
	response *response
	lastID   string
}

type response struct {
	status int
	raw    []byte
	body   any
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client: &http.Client{Timeout: 10 * time.Second},
		db: mock.NewDb(map[string]any{
			"storage_entries": &model.StorageEntryModel{},
		}),
		redis: mock.NewRedis(),
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		test.stopServer()
		return ctx, nil
	})

	// Environment steps
	ctx.Given(`^the storage backend is "([^"]*)"$`, test.theStorageBackendIs)
	ctx.Given(`^the current time is "([^"]*)"$`, test.theCurrentTimeIs)
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^the application is restarted$`, test.theApplicationIsRestarted)

	// Header steps
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should have (\d+) items$`, test.theResponseFieldShouldHaveItems)

	// Storage assertion steps
	ctx.Then(`^the stored "([^"]*)" document should have (\d+) records$`, test.theStoredDocumentShouldHaveRecords)
	ctx.Then(`^the stored "([^"]*)" document field "([^"]*)" should be "([^"]*)"$`, test.theStoredDocumentFieldShouldBe)
	ctx.Then(`^the stored "([^"]*)" document should be "([^"]*)"$`, test.theStoredDocumentShouldBe)
	ctx.Then(`^nothing should be stored under "([^"]*)"$`, test.nothingShouldBeStoredUnder)
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
}

func (t *testContext) before() error {
	t.cfg = config.Load()
	t.cfg.Server.Environment = "test"
	t.cfg.Storage.KeyPrefix = persistence.DefaultKeyPrefix

	t.backend = config.StorageDriverSQLite
	t.kv = nil
	t.timeMock = mock.NewTime()
	t.headers = make(map[string]string)
	t.response = nil
	t.lastID = ""

	if err := t.db.ClearDB(); err != nil {
		return err
	}
	return mock.ClearRedis(t.redis)
}

// storage returns the key/value store of the scenario, creating it on first use.
// The sqlite and redis connections are shared by the suite and never closed here.
func (t *testContext) storage() (adapter.KeyValueStore, error) {
	if t.kv != nil {
		return t.kv, nil
	}

	switch t.backend {
	case config.StorageDriverSQLite:
		t.kv = persistence.NewSQLStore(t.db.DbConn)
	case config.StorageDriverRedis:
		t.kv = persistence.NewRedisStore(t.redis)
	case config.StorageDriverMemory:
		t.kv = persistence.NewMemoryStore()
	default:
		return nil, fmt.Errorf("unsupported storage backend %q", t.backend)
	}
	return t.kv, nil
}

func (t *testContext) startServer() error {
	kv, err := t.storage()
	if err != nil {
		return err
	}

	t.injector = dependency.NewInjector(context.Background(), t.cfg, kv, t.timeMock)
	t.server = httptest.NewServer(t.injector.Router.Setup(t.cfg.Server.Environment))
	return nil
}

func (t *testContext) stopServer() {
	if t.server != nil {
		t.server.Close()
		t.server = nil
	}
	t.injector = nil
}
