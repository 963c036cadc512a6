// Package bundb wires the Postgres connection pool and the module
// repositories behind a single service struct.
package bundb

import (
	"context"
	"database/sql"
	"fmt"

	eventdb "github.com/sports-arena/event-service/app/modules/event/infrastructure/repositories"
	ratingdb "github.com/sports-arena/event-service/app/modules/rating/infrastructure/repositories"
	"github.com/sports-arena/event-service/config"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

// DBService bundles the bun connection pool with the per-module repositories.
type DBService struct {
	EventDB       eventdb.EventRepository
	ParticipantDB eventdb.ParticipantRepository
	RatingDB      ratingdb.Repository
	db            *bun.DB
}

// GetDB returns the underlying database connection pool.
func (dbService *DBService) GetDB() *bun.DB {
	return dbService.db
}

// NewBunDBService initializes a new DBService with the provided Postgres
// configuration. The connection is verified with a ping before any
// repository is handed out.
func NewBunDBService(ctx context.Context, cfg config.PostgresConfig) (*DBService, error) {
	sqldb, err := pgConn(ctx, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db := bunDB(sqldb)

	db.RegisterModel(&eventdb.Event{})
	db.RegisterModel(&eventdb.Participant{})
	db.RegisterModel(&ratingdb.Rating{})

	return &DBService{
		EventDB:       eventdb.NewEventRepository(db),
		ParticipantDB: eventdb.NewParticipantRepository(db),
		RatingDB:      ratingdb.NewRepository(db),
		db:            db,
	}, nil
}

// bunDB returns a new bun.DB for given sql.DB connection pool.
func bunDB(sqldb *sql.DB) *bun.DB {
	return bun.NewDB(sqldb, pgdialect.New())
}

func pgConn(ctx context.Context, dsn string) (*sql.DB, error) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))

	if err := sqldb.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return sqldb, nil
}
