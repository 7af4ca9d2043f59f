package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/MKhiriev/go-trust-engine/models"
)

type memoryRegistry struct {
	path     string
	inMemory bool

	mu      sync.RWMutex
	entries map[string]models.IntegrityEntry
}

type memoryPersistedState struct {
	Entries map[string]models.IntegrityEntry `json:"entries"`
}

// NewMemoryRegistry returns a purely in-memory [IntegrityRegistry].
// Intended for tests and for callers that manage persistence themselves.
func NewMemoryRegistry() IntegrityRegistry {
	return &memoryRegistry{
		inMemory: true,
		entries:  make(map[string]models.IntegrityEntry),
	}
}

// NewFileRegistry returns an [IntegrityRegistry] that keeps all entries in
// memory and mirrors every mutation to a JSON file at path. A lightweight
// alternative to the SQLite registry for small monitored sets.
func NewFileRegistry(path string) (IntegrityRegistry, error) {
	r := &memoryRegistry{
		path:    path,
		entries: make(map[string]models.IntegrityEntry),
	}
	if err := r.load(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *memoryRegistry) load() error {
	if r.inMemory {
		return nil
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read registry file: %w", err)
	}

	var st memoryPersistedState
	if err = json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("decode registry file: %w", err)
	}

	if st.Entries == nil {
		st.Entries = make(map[string]models.IntegrityEntry)
	}
	r.entries = st.Entries

	return nil
}

// persist is called with r.mu held.
func (r *memoryRegistry) persist() error {
	if r.inMemory {
		return nil
	}

	dir := filepath.Dir(r.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create registry dir: %w", err)
		}
	}

	state := memoryPersistedState{Entries: r.entries}
	payload, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode registry: %w", err)
	}

	if err = os.WriteFile(r.path, payload, 0o600); err != nil {
		return fmt.Errorf("write registry file: %w", err)
	}

	return nil
}

func (r *memoryRegistry) Put(_ context.Context, entry models.IntegrityEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[entry.Path] = entry
	return r.persist()
}

func (r *memoryRegistry) Get(_ context.Context, path string) (models.IntegrityEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[path]
	if !ok {
		return models.IntegrityEntry{}, ErrEntryNotFound
	}
	return entry, nil
}

func (r *memoryRegistry) Delete(_ context.Context, path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, path)
	return r.persist()
}

func (r *memoryRegistry) List(_ context.Context) ([]models.IntegrityEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]models.IntegrityEntry, 0, len(r.entries))
	for _, entry := range r.entries {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })

	return entries, nil
}

func (r *memoryRegistry) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries), nil
}

func (r *memoryRegistry) Close() error {
	return nil
}
