package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/isoron/habit-sync/internal/config"
	"github.com/isoron/habit-sync/internal/logger"
	"github.com/isoron/habit-sync/migrations"
)

// DB is a database/sql handle together with the SQL dialect details the
// record store needs to build queries for it.
type DB struct {
	*sql.DB
	placeholder sq.PlaceholderFormat
	dialect     string
	logger      *logger.Logger
}

// NewDB opens a connection for cfg.Driver and applies pending migrations.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	var (
		db  *DB
		err error
	)

	switch cfg.Driver {
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewDB").Msg("error applying migrations")
		db.Close()
		return nil, err
	}

	return db, nil
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}
