package bundb

import (
	"context"
	"database/sql"
	"fmt"

	challengedb "github.com/office-olympics/scorekeeper/app/modules/challenge/infrastructure/repositories"
	playerdb "github.com/office-olympics/scorekeeper/app/modules/player/infrastructure/repositories"
	scoredb "github.com/office-olympics/scorekeeper/app/modules/score/infrastructure/repositories"
	"github.com/office-olympics/scorekeeper/config"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

// DBService bundles the per-module repositories over one connection pool.
type DBService struct {
	PlayerDB    *playerdb.PlayerDBImpl
	ChallengeDB *challengedb.ChallengeDBImpl
	ScoreDB     *scoredb.ScoreDBImpl
	db          *bun.DB
}

// GetDB returns the underlying database connection pool.
func (dbService *DBService) GetDB() *bun.DB {
	return dbService.db
}

// Close closes the underlying connection pool.
func (dbService *DBService) Close() error {
	return dbService.db.Close()
}

// NewBunDBService initializes a new DBService with the provided Postgres configuration.
func NewBunDBService(ctx context.Context, cfg config.PostgresConfig) (*DBService, error) {
	sqldb, err := pgConn(ctx, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return newDBService(BunDB(sqldb)), nil
}

// BunDB wraps an existing *sql.DB in a bun handle with the model set
// registered.
func BunDB(sqldb *sql.DB) *bun.DB {
	db := bun.NewDB(sqldb, pgdialect.New())
	db.RegisterModel(
		(*playerdb.Olympics)(nil),
		(*playerdb.Player)(nil),
		(*challengedb.Challenge)(nil),
		(*scoredb.ChallengeScore)(nil),
		(*scoredb.TotalScore)(nil),
	)
	return db
}

// NewTestDBService builds a DBService over an already-open bun handle.
// Used by integration tests that manage the connection themselves.
func NewTestDBService(db *bun.DB) *DBService {
	return newDBService(db)
}

func newDBService(db *bun.DB) *DBService {
	return &DBService{
		PlayerDB:    &playerdb.PlayerDBImpl{DB: db},
		ChallengeDB: &challengedb.ChallengeDBImpl{DB: db},
		ScoreDB:     &scoredb.ScoreDBImpl{DB: db},
		db:          db,
	}
}

func pgConn(ctx context.Context, dsn string) (*sql.DB, error) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))

	if err := sqldb.PingContext(ctx); err != nil {
		sqldb.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return sqldb, nil
}
