// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/isoron/habit-sync/internal/logger"
	"github.com/isoron/habit-sync/models"
)

// sqlStore is the database/sql implementation of [KeyedStore] backed by the
// "sync_records" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext].
type sqlStore struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLStore constructs a [KeyedStore] on top of an open, migrated
// database.
func NewSQLStore(db *DB, logger *logger.Logger) KeyedStore {
	logger.Debug().Msg("creating sql record store")
	return &sqlStore{
		db:     db,
		logger: logger,
	}
}

// Put upserts the record in a single statement, so a concurrent reader sees
// either the old row or the new one.
func (s *sqlStore) Put(ctx context.Context, key string, data models.SyncData) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertRecordQuery(s.db.placeholder, key, data)
	if err != nil {
		log.Err(err).Str("func", "*sqlStore.Put").Msg("error building upsert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sqlStore.Put").Msg("error executing upsert query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (s *sqlStore) Get(ctx context.Context, key string) (models.SyncData, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectRecordQuery(s.db.placeholder, key)
	if err != nil {
		log.Err(err).Str("func", "*sqlStore.Get").Msg("error building select query")
		return models.SyncData{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var data models.SyncData
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&data.Version, &data.Content)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SyncData{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*sqlStore.Get").Msg("error scanning record")
		return models.SyncData{}, fmt.Errorf("%w: %w", ErrReadingRecord, err)
	}

	return data, nil
}

func (s *sqlStore) Contains(ctx context.Context, key string) bool {
	log := logger.FromContext(ctx)

	query, args, err := buildRecordExistsQuery(s.db.placeholder, key)
	if err != nil {
		log.Err(err).Str("func", "*sqlStore.Contains").Msg("error building exists query")
		return true
	}

	var one int
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&one)
	switch {
	case err == nil:
		return true
	case errors.Is(err, sql.ErrNoRows):
		return false
	default:
		log.Err(err).Str("func", "*sqlStore.Contains").Msg("cannot query record, treating key as taken")
		return true
	}
}
