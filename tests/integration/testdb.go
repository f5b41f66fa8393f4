// Package integration runs the CRM backend against a real PostgreSQL
// database started with testcontainers. Tests skip under -short.
package integration

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	gormlogger "gorm.io/gorm/logger"

	"github.com/crm/backend/internal/infrastructure/config"
	"github.com/crm/backend/internal/infrastructure/logger"
	"github.com/crm/backend/internal/infrastructure/migration"
	"github.com/crm/backend/internal/infrastructure/persistence"
)

const (
	postgresImage    = "postgres:16-alpine"
	postgresDB       = "crm_test"
	postgresUser     = "postgres"
	postgresPassword = "crm-test"
)

// One container serves the whole package; every TestDB truncates the
// customers table before handing it out.
var (
	containerMu sync.Mutex
	container   *tcpostgres.PostgresContainer
	containerDB config.DatabaseConfig
)

// TestDB is a migrated PostgreSQL database opened through the same
// persistence layer the server uses.
type TestDB struct {
	*persistence.Database
	Config config.DatabaseConfig
	t      *testing.T
}

// NewTestDB returns an empty, migrated database. The connection is closed on
// test cleanup; the container lives until CleanupContainer.
func NewTestDB(t *testing.T) *TestDB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping PostgreSQL integration test in short mode")
	}

	cfg := startContainer(t)

	level := gormlogger.Silent
	if os.Getenv("TEST_DB_DEBUG") != "" {
		level = gormlogger.Info
	}
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg, logger.NewGormLogger(zaptest.NewLogger(t), level))
	require.NoError(t, err, "Failed to connect to database")

	testDB := &TestDB{Database: db, Config: cfg, t: t}
	t.Cleanup(func() {
		_ = testDB.Close()
	})

	testDB.CleanTables()
	return testDB
}

// CleanTables removes every customer row
func (tdb *TestDB) CleanTables() {
	tdb.t.Helper()
	require.NoError(tdb.t, tdb.DB.Exec("TRUNCATE TABLE customers").Error, "Failed to truncate customers")
}

// startContainer starts the shared container and applies the migrations on
// first use
func startContainer(t *testing.T) config.DatabaseConfig {
	t.Helper()

	containerMu.Lock()
	defer containerMu.Unlock()

	if container != nil {
		return containerDB
	}

	ctx := context.Background()
	c, err := tcpostgres.Run(ctx,
		postgresImage,
		tcpostgres.WithDatabase(postgresDB),
		tcpostgres.WithUsername(postgresUser),
		tcpostgres.WithPassword(postgresPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "Failed to start PostgreSQL container")

	host, err := c.Host(ctx)
	require.NoError(t, err)
	port, err := c.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	cfg := config.DatabaseConfig{
		Driver:          config.DriverPostgres,
		Host:            host,
		Port:            port.Int(),
		User:            postgresUser,
		Password:        postgresPassword,
		DBName:          postgresDB,
		SSLMode:         "disable",
		MaxOpenConns:    5,
		MaxIdleConns:    2,
		ConnMaxLifetime: 5,
		ConnMaxIdleTime: 5,
	}

	m, err := migration.NewEmbedded(cfg.DSN(), zap.NewNop())
	require.NoError(t, err, "Failed to create migrator")
	defer func() {
		_ = m.Close()
	}()
	require.NoError(t, m.Up(), "Failed to run migrations")

	container = c
	containerDB = cfg
	return cfg
}

// CleanupContainer terminates the shared container. Call it from TestMain.
func CleanupContainer() {
	containerMu.Lock()
	defer containerMu.Unlock()

	if container == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	_ = container.Terminate(ctx)
	container = nil
}
