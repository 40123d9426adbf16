// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/require"

	"github.com/isoron/habit-sync/models"
)

func Test_buildUpsertRecordQuery(t *testing.T) {
	tests := []struct {
		name        string
		ph          sq.PlaceholderFormat
		wantHolders []string
	}{
		{name: "postgres placeholders", ph: sq.Dollar, wantHolders: []string{"$1", "$2", "$3"}},
		{name: "sqlite placeholders", ph: sq.Question, wantHolders: []string{"VALUES (?,?,?)"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildUpsertRecordQuery(tt.ph, "KEY1", models.SyncData{Version: 3, Content: "body"})
			require.NoError(t, err)

			require.Equal(t, []any{"KEY1", int64(3), "body"}, args)

			q := strings.ToLower(query)
			require.True(t, strings.HasPrefix(q, "insert into sync_records"))
			require.Contains(t, q, "(sync_key,version,content)")
			require.Contains(t, q, "on conflict (sync_key) do update")
			require.Contains(t, q, "version = excluded.version")
			require.Contains(t, q, "content = excluded.content")
			for _, h := range tt.wantHolders {
				require.Contains(t, query, h)
			}
		})
	}
}

func Test_buildSelectRecordQuery(t *testing.T) {
	query, args, err := buildSelectRecordQuery(sq.Dollar, "KEY1")
	require.NoError(t, err)

	require.Equal(t, "SELECT version, content FROM sync_records WHERE sync_key = $1", query)
	require.Equal(t, []any{"KEY1"}, args)
}

func Test_buildRecordExistsQuery(t *testing.T) {
	query, args, err := buildRecordExistsQuery(sq.Question, "KEY1")
	require.NoError(t, err)

	require.Equal(t, "SELECT 1 FROM sync_records WHERE sync_key = ? LIMIT 1", query)
	require.Equal(t, []any{"KEY1"}, args)
}
