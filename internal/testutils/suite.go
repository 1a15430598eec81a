package testutils

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"testing"
	"time"

	"foundation-registry/internal/config"
	"foundation-registry/internal/database"
	"foundation-registry/internal/database/models"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for readiness ping
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// One Postgres container serves every integration suite in the process.
var (
	sharedOnce     sync.Once
	sharedInitErr  error
	sharedPool     *dockertest.Pool
	sharedResource *dockertest.Resource
	sharedDB       *gorm.DB
	sharedConfig   *config.Config
)

// BaseTestSuite hands a suite the shared foundations database and its config
type BaseTestSuite struct {
	suite.Suite
	DB       *gorm.DB
	Config   *config.Config
	pool     *dockertest.Pool
	resource *dockertest.Resource
}

// SetupTestSuite initializes (once) the shared Postgres container and returns a per-suite wrapper.
// Callers must be built with the integration tag; it needs a Docker daemon.
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	sharedOnce.Do(func() { sharedInitErr = initSharedPGContainer() })
	if sharedInitErr != nil {
		t.Fatalf("failed to initialize shared test container: %v", sharedInitErr)
	}
	return &BaseTestSuite{
		DB:       sharedDB,
		Config:   sharedConfig,
		pool:     sharedPool,
		resource: sharedResource,
	}
}

// CleanupSharedContainer closes the shared pool and removes the container.
// Call it from TestMain after m.Run.
func CleanupSharedContainer() {
	if sharedDB != nil {
		_ = database.Close(sharedDB)
		sharedDB = nil
	}
	if sharedPool == nil || sharedResource == nil {
		return
	}
	if err := sharedPool.Purge(sharedResource); err != nil {
		log.Printf("postgres container %s left behind: %v", sharedResource.Container.Name, err)
	}
	sharedPool, sharedResource = nil, nil
}

func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite empties the table; the container outlives the suite.
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB empties the foundations table and restarts its identity sequence.
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil || !s.DB.Migrator().HasTable("foundations") {
		return
	}
	s.DB.Exec(`TRUNCATE TABLE "foundations" RESTART IDENTITY`)
}

const (
	pgUser     = "registry"
	pgPassword = "registry"
	pgDatabase = "foundations_test"
)

// initSharedPGContainer starts postgres:15-alpine and opens the store against it
func initSharedPGContainer() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("docker unavailable: %w", err)
	}
	pool.MaxWait = 2 * time.Minute

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("start postgres: %w", err)
	}
	sharedPool, sharedResource = pool, resource

	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable",
		pgUser, pgPassword, resource.GetPort("5432/tcp"), pgDatabase)

	// The server accepts TCP before it accepts logins, so ping through pgx first
	err = pool.Retry(func() error {
		std, err := sql.Open("pgx", dsn)
		if err != nil {
			return err
		}
		defer std.Close()
		return std.Ping()
	})
	if err != nil {
		return fmt.Errorf("postgres never became ready: %w", err)
	}

	// Creates the foundations table and idx_foundations_tax_id
	sharedDB, err = database.Initialize(database.DriverPostgres, dsn, nil)
	if err != nil {
		return fmt.Errorf("open foundation store: %w", err)
	}
	if err := requireFoundationsIndex(sharedDB); err != nil {
		return err
	}

	sharedConfig = &config.Config{
		DatabaseDriver: database.DriverPostgres,
		DatabaseURL:    dsn,
		Port:           "8080",
		LogLevel:       "debug",
		Environment:    "test",
		StrictFields:   true,
	}
	return nil
}

// requireFoundationsIndex fails fast when migration did not create the unique tax ID index.
func requireFoundationsIndex(db *gorm.DB) error {
	if !db.Migrator().HasIndex(&models.Foundation{}, "idx_foundations_tax_id") {
		return fmt.Errorf("foundations table is missing idx_foundations_tax_id")
	}
	return nil
}
