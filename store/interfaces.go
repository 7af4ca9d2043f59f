package store

//go:generate mockgen -source=interfaces.go -destination=../mock/integrity_registry_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-trust-engine/models"
)

// IntegrityRegistry persists the monitoring baselines: one
// [models.IntegrityEntry] per monitored path. It is injected into the
// integrity scanner so tests (and embedded deployments) can substitute an
// in-memory implementation for the durable SQLite one.
//
// Put overwrites an existing baseline for the same path — re-registration
// is an explicit "trust this new state" operation, not a merge.
type IntegrityRegistry interface {
	// Put stores or replaces the baseline for entry.Path.
	Put(ctx context.Context, entry models.IntegrityEntry) error

	// Get returns the baseline for path, or [ErrEntryNotFound].
	Get(ctx context.Context, path string) (models.IntegrityEntry, error)

	// Delete removes the baseline for path. Deleting an unknown path is
	// not an error: monitoring is simply already stopped.
	Delete(ctx context.Context, path string) error

	// List returns all baselines ordered by path.
	List(ctx context.Context) ([]models.IntegrityEntry, error)

	// Count returns the number of monitored paths.
	Count(ctx context.Context) (int, error)

	// Close releases the underlying resources. The registry must not be
	// used afterwards.
	Close() error
}
