package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"

	challengemigrations "github.com/office-olympics/scorekeeper/app/modules/challenge/infrastructure/repositories/migrations"
	playermigrations "github.com/office-olympics/scorekeeper/app/modules/player/infrastructure/repositories/migrations"
	scoremigrations "github.com/office-olympics/scorekeeper/app/modules/score/infrastructure/repositories/migrations"
	"github.com/office-olympics/scorekeeper/db/bundb"
	"github.com/office-olympics/scorekeeper/integration_tests/containers"
)

// TestEnvironment holds the shared resources for integration tests: one
// Postgres container with all migrations applied, reused across tests.
type TestEnvironment struct {
	Ctx           context.Context
	CancelContext context.CancelFunc
	PgContainer   *postgres.PostgresContainer
	DB            *bun.DB
	DBService     *bundb.DBService
}

var (
	sharedEnv *TestEnvironment
	envOnce   sync.Once
	envErr    error
)

// GetOrCreateTestEnv returns the shared test environment, starting the
// container and running migrations on first use.
func GetOrCreateTestEnv(t *testing.T) *TestEnvironment {
	t.Helper()

	envOnce.Do(func() {
		sharedEnv, envErr = newTestEnvironment()
	})
	if envErr != nil {
		t.Fatalf("Failed to create test environment: %v", envErr)
	}
	return sharedEnv
}

// CleanupEnv tears down the shared environment. Call it from TestMain after
// m.Run().
func CleanupEnv() {
	if sharedEnv == nil {
		return
	}
	if sharedEnv.DB != nil {
		sharedEnv.DB.Close()
	}
	if sharedEnv.PgContainer != nil {
		sharedEnv.PgContainer.Terminate(sharedEnv.Ctx)
	}
	sharedEnv.CancelContext()
	sharedEnv = nil
}

func newTestEnvironment() (*TestEnvironment, error) {
	ctx, cancel := context.WithCancel(context.Background())

	pgContainer, connStr, err := containers.SetupPostgresContainer(ctx)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to setup postgres container: %w", err)
	}

	sqlDB := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(connStr)))
	if err := sqlDB.PingContext(ctx); err != nil {
		pgContainer.Terminate(ctx)
		cancel()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db := bundb.BunDB(sqlDB)

	if err := runMigrations(ctx, db); err != nil {
		db.Close()
		pgContainer.Terminate(ctx)
		cancel()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &TestEnvironment{
		Ctx:           ctx,
		CancelContext: cancel,
		PgContainer:   pgContainer,
		DB:            db,
		DBService:     bundb.NewTestDBService(db),
	}, nil
}

// runMigrations applies every module's migration set in dependency order.
func runMigrations(ctx context.Context, db *bun.DB) error {
	sets := []struct {
		name       string
		migrations *migrate.Migrations
	}{
		{"player", playermigrations.Migrations},
		{"challenge", challengemigrations.Migrations},
		{"score", scoremigrations.Migrations},
	}

	for _, set := range sets {
		migrator := migrate.NewMigrator(db, set.migrations)
		if err := migrator.Init(ctx); err != nil {
			return fmt.Errorf("init migrations for %s: %w", set.name, err)
		}
		if _, err := migrator.Migrate(ctx); err != nil {
			return fmt.Errorf("migrate %s: %w", set.name, err)
		}
	}
	return nil
}

// TruncateTables empties the given tables and resets their sequences.
func TruncateTables(ctx context.Context, db *bun.DB, tables ...string) error {
	if len(tables) == 0 {
		return nil
	}
	query := fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", strings.Join(tables, ", "))
	if _, err := db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to truncate tables: %w", err)
	}
	return nil
}
