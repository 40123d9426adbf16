package store

import (
	"context"

	"github.com/isoron/habit-sync/internal/config"
	"github.com/isoron/habit-sync/internal/logger"
)

// Storages bundles the persistence layer used by the services.
type Storages struct {
	RecordStore KeyedStore

	db *DB
}

// NewStorages selects a record store backend from cfg: SQL when a DSN is
// configured, the sharded filesystem when a base path is configured, and
// memory otherwise.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	switch {
	case cfg.DB.DSN != "":
		db, err := NewDB(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		log.Info().Str("driver", cfg.DB.Driver).Msg("using sql record store")
		return &Storages{RecordStore: NewSQLStore(db, log), db: db}, nil

	case cfg.Files.BasePath != "":
		fs, err := NewFileStore(cfg.Files.BasePath, log)
		if err != nil {
			log.Err(err).Str("func", "NewStorages").Msg("error preparing file store")
			return nil, err
		}
		log.Info().Str("base_path", cfg.Files.BasePath).Msg("using filesystem record store")
		return &Storages{RecordStore: fs}, nil

	default:
		log.Warn().Msg("no storage configured, records are kept in memory only")
		return &Storages{RecordStore: NewMemoryStore()}, nil
	}
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
