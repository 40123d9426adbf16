// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/isoron/habit-sync/models"
)

const (
	syncRecordsTable = "sync_records"

	columnSyncKey = "sync_key"
	columnVersion = "version"
	columnContent = "content"

	upsertSyncRecordSuffix = "ON CONFLICT (sync_key) DO UPDATE SET version = excluded.version, content = excluded.content"
)

// buildUpsertRecordQuery builds an INSERT that replaces the version and
// content of an existing row with the same key.
func buildUpsertRecordQuery(ph sq.PlaceholderFormat, key string, data models.SyncData) (string, []any, error) {
	return sq.Insert(syncRecordsTable).
		Columns(columnSyncKey, columnVersion, columnContent).
		Values(key, data.Version, data.Content).
		Suffix(upsertSyncRecordSuffix).
		PlaceholderFormat(ph).
		ToSql()
}

func buildSelectRecordQuery(ph sq.PlaceholderFormat, key string) (string, []any, error) {
	return sq.Select(columnVersion, columnContent).
		From(syncRecordsTable).
		Where(sq.Eq{columnSyncKey: key}).
		PlaceholderFormat(ph).
		ToSql()
}

func buildRecordExistsQuery(ph sq.PlaceholderFormat, key string) (string, []any, error) {
	return sq.Select("1").
		From(syncRecordsTable).
		Where(sq.Eq{columnSyncKey: key}).
		Limit(1).
		PlaceholderFormat(ph).
		ToSql()
}
