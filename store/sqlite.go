// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-trust-engine/logger"
	"github.com/MKhiriev/go-trust-engine/migrations"
	"github.com/MKhiriev/go-trust-engine/models"
)

// DB wraps the raw database handle together with the logger used for
// structured diagnostics at the persistence layer.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies the embedded goose migrations to the wrapped database.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// sqliteRegistry is the SQLite-backed implementation of
// [IntegrityRegistry]. It is the durable default: the registry must work
// offline on a local file, so a networked database is not an option here.
type sqliteRegistry struct {
	*DB
}

// NewSQLiteRegistry opens (or creates) the SQLite database at path, applies
// migrations and returns a ready registry. ":memory:" and the empty string
// select a non-durable in-memory database.
func NewSQLiteRegistry(path string, log *logger.Logger) (IntegrityRegistry, error) {
	log.Debug().Str("path", path).Msg("creating sqlite integrity registry")

	if path == "" {
		path = ":memory:"
	}

	sqlDB, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if path == ":memory:" {
		// every additional pool connection would see its own empty database
		sqlDB.SetMaxOpenConns(1)
	}
	if err = sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}

	db := &DB{DB: sqlDB, logger: log}
	if err = db.Migrate(); err != nil {
		sqlDB.Close()
		return nil, err
	}

	return &sqliteRegistry{db}, nil
}

// Put implements [IntegrityRegistry] via INSERT ... ON CONFLICT upsert, so
// re-registering a path overwrites its baseline in one statement.
func (r *sqliteRegistry) Put(ctx context.Context, entry models.IntegrityEntry) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertEntryQuery(entry)
	if err != nil {
		log.Err(err).Str("func", "*sqliteRegistry.Put").Msg("error building upsert query")
		return fmt.Errorf("%w: %s", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sqliteRegistry.Put").Msg("error executing upsert statement")
		return fmt.Errorf("%w: %s", ErrExecutingStatement, err)
	}

	return nil
}

// Get implements [IntegrityRegistry].
func (r *sqliteRegistry) Get(ctx context.Context, path string) (models.IntegrityEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectEntryQuery(path)
	if err != nil {
		log.Err(err).Str("func", "*sqliteRegistry.Get").Msg("error building select query")
		return models.IntegrityEntry{}, fmt.Errorf("%w: %s", ErrBuildingSQLQuery, err)
	}

	var entry models.IntegrityEntry
	row := r.DB.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&entry.Path, &entry.Hash, &entry.RegisteredAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.IntegrityEntry{}, ErrEntryNotFound
		}
		log.Err(err).Str("func", "*sqliteRegistry.Get").Msg("error: scanning error")
		return models.IntegrityEntry{}, fmt.Errorf("%w: %s", ErrScanningRow, err)
	}

	return entry, nil
}

// Delete implements [IntegrityRegistry]. Deleting an unknown path succeeds.
func (r *sqliteRegistry) Delete(ctx context.Context, path string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteEntryQuery(path)
	if err != nil {
		log.Err(err).Str("func", "*sqliteRegistry.Delete").Msg("error building delete query")
		return fmt.Errorf("%w: %s", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sqliteRegistry.Delete").Msg("error executing delete statement")
		return fmt.Errorf("%w: %s", ErrExecutingStatement, err)
	}

	return nil
}

// List implements [IntegrityRegistry].
func (r *sqliteRegistry) List(ctx context.Context) ([]models.IntegrityEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllEntriesQuery()
	if err != nil {
		log.Err(err).Str("func", "*sqliteRegistry.List").Msg("error building select query")
		return nil, fmt.Errorf("%w: %s", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sqliteRegistry.List").Msg("error executing select query")
		return nil, fmt.Errorf("%w: %s", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var entries []models.IntegrityEntry
	for rows.Next() {
		var entry models.IntegrityEntry
		if err = rows.Scan(&entry.Path, &entry.Hash, &entry.RegisteredAt); err != nil {
			log.Err(err).Str("func", "*sqliteRegistry.List").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %s", ErrScanningRows, err)
		}
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrScanningRows, err)
	}

	return entries, nil
}

// Count implements [IntegrityRegistry].
func (r *sqliteRegistry) Count(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountEntriesQuery()
	if err != nil {
		log.Err(err).Str("func", "*sqliteRegistry.Count").Msg("error building count query")
		return 0, fmt.Errorf("%w: %s", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "*sqliteRegistry.Count").Msg("error: scanning error")
		return 0, fmt.Errorf("%w: %s", ErrScanningRow, err)
	}

	return count, nil
}

// Close implements [IntegrityRegistry].
func (r *sqliteRegistry) Close() error {
	return r.DB.Close()
}
