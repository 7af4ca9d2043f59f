package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/MKhiriev/go-trust-engine/logger"
	"github.com/MKhiriev/go-trust-engine/models"
)

func newTestSQLiteRegistry(t *testing.T) (*sqliteRegistry, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	reg := &sqliteRegistry{
		DB: &DB{DB: db, logger: l},
	}
	return reg, mock, db
}

func testEntry() models.IntegrityEntry {
	return models.IntegrityEntry{
		Path:         "/docs/contract.pdf",
		Hash:         strings.Repeat("0f", 32),
		RegisteredAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}
}

func TestSQLiteRegistry_Put_Success(t *testing.T) {
	reg, mock, db := newTestSQLiteRegistry(t)
	defer db.Close()

	entry := testEntry()

	mock.ExpectExec("INSERT INTO integrity_entries").
		WithArgs(entry.Path, entry.Hash, entry.RegisteredAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := reg.Put(context.Background(), entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSQLiteRegistry_Put_ExecFailure(t *testing.T) {
	reg, mock, db := newTestSQLiteRegistry(t)
	defer db.Close()

	entry := testEntry()

	mock.ExpectExec("INSERT INTO integrity_entries").
		WillReturnError(errors.New("disk I/O error"))

	err := reg.Put(context.Background(), entry)
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("got %v, want ErrExecutingStatement", err)
	}
}

func TestSQLiteRegistry_Get_Success(t *testing.T) {
	reg, mock, db := newTestSQLiteRegistry(t)
	defer db.Close()

	entry := testEntry()

	rows := sqlmock.
		NewRows([]string{"path", "hash", "registered_at"}).
		AddRow(entry.Path, entry.Hash, entry.RegisteredAt)

	mock.ExpectQuery("SELECT path, hash, registered_at FROM integrity_entries").
		WithArgs(entry.Path).
		WillReturnRows(rows)

	got, err := reg.Get(context.Background(), entry.Path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Hash != entry.Hash {
		t.Errorf("expected hash %s, got %s", entry.Hash, got.Hash)
	}
}

func TestSQLiteRegistry_Get_NotFound(t *testing.T) {
	reg, mock, db := newTestSQLiteRegistry(t)
	defer db.Close()

	mock.ExpectQuery("SELECT path, hash, registered_at FROM integrity_entries").
		WithArgs("/unknown").
		WillReturnRows(sqlmock.NewRows([]string{"path", "hash", "registered_at"}))

	_, err := reg.Get(context.Background(), "/unknown")
	if !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("got %v, want ErrEntryNotFound", err)
	}
}

func TestSQLiteRegistry_Delete_UnknownPathSucceeds(t *testing.T) {
	reg, mock, db := newTestSQLiteRegistry(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM integrity_entries").
		WithArgs("/unknown").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := reg.Delete(context.Background(), "/unknown"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSQLiteRegistry_Count(t *testing.T) {
	reg, mock, db := newTestSQLiteRegistry(t)
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := reg.Count(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 3 {
		t.Errorf("expected count 3, got %d", count)
	}
}

// TestSQLiteRegistry_InMemoryRoundTrip exercises the real driver and the
// embedded migrations end to end against an in-memory database.
func TestSQLiteRegistry_InMemoryRoundTrip(t *testing.T) {
	reg, err := NewSQLiteRegistry(":memory:", logger.Nop())
	if err != nil {
		t.Fatalf("NewSQLiteRegistry error: %v", err)
	}
	defer reg.Close()

	ctx := context.Background()
	entry := testEntry()

	if err := reg.Put(ctx, entry); err != nil {
		t.Fatalf("Put error: %v", err)
	}

	got, err := reg.Get(ctx, entry.Path)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.Hash != entry.Hash {
		t.Errorf("expected hash %s, got %s", entry.Hash, got.Hash)
	}

	// Re-registration overwrites the baseline.
	entry.Hash = strings.Repeat("aa", 32)
	if err := reg.Put(ctx, entry); err != nil {
		t.Fatalf("Put (overwrite) error: %v", err)
	}
	got, err = reg.Get(ctx, entry.Path)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.Hash != entry.Hash {
		t.Errorf("expected overwritten hash %s, got %s", entry.Hash, got.Hash)
	}

	count, err := reg.Count(ctx)
	if err != nil {
		t.Fatalf("Count error: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 monitored path after overwrite, got %d", count)
	}

	if err := reg.Delete(ctx, entry.Path); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, err := reg.Get(ctx, entry.Path); !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("got %v after delete, want ErrEntryNotFound", err)
	}
}

func TestSQLiteRegistry_InMemoryParallelPuts(t *testing.T) {
	reg, err := NewSQLiteRegistry(":memory:", logger.Nop())
	if err != nil {
		t.Fatalf("NewSQLiteRegistry error: %v", err)
	}
	defer reg.Close()

	// Parallel callers must all land in the same database; a pool that
	// hands out fresh in-memory connections would lose the schema.
	ctx := context.Background()
	const writers = 8

	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			entry := models.IntegrityEntry{
				Path:         fmt.Sprintf("/docs/report-%d.pdf", i),
				Hash:         strings.Repeat("0f", 32),
				RegisteredAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
			}
			errs <- reg.Put(ctx, entry)
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatalf("parallel Put error: %v", err)
		}
	}

	count, err := reg.Count(ctx)
	if err != nil {
		t.Fatalf("Count error: %v", err)
	}
	if count != writers {
		t.Errorf("expected %d monitored paths, got %d", writers, count)
	}
}
