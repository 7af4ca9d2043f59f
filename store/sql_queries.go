// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-trust-engine/models"
)

// Query builders for the integrity_entries table. SQLite uses `?`
// placeholders, squirrel's default format.

func buildUpsertEntryQuery(entry models.IntegrityEntry) (string, []any, error) {
	return sq.Insert(entry.TableName()).
		Columns("path", "hash", "registered_at").
		Values(entry.Path, entry.Hash, entry.RegisteredAt).
		Suffix("ON CONFLICT(path) DO UPDATE SET hash = excluded.hash, registered_at = excluded.registered_at").
		ToSql()
}

func buildSelectEntryQuery(path string) (string, []any, error) {
	return sq.Select("path", "hash", "registered_at").
		From(models.IntegrityEntry{}.TableName()).
		Where(sq.Eq{"path": path}).
		ToSql()
}

func buildSelectAllEntriesQuery() (string, []any, error) {
	return sq.Select("path", "hash", "registered_at").
		From(models.IntegrityEntry{}.TableName()).
		OrderBy("path ASC").
		ToSql()
}

func buildDeleteEntryQuery(path string) (string, []any, error) {
	return sq.Delete(models.IntegrityEntry{}.TableName()).
		Where(sq.Eq{"path": path}).
		ToSql()
}

func buildCountEntriesQuery() (string, []any, error) {
	return sq.Select("COUNT(*)").
		From(models.IntegrityEntry{}.TableName()).
		ToSql()
}
