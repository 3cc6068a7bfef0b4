// This file implements the backend lifecycle: attach, detach, and the
// shared transaction and error-wrapping helpers used by the stores.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/atelier-tools/shelf/pkg/types"
)

// DatabaseFileName is the index file created inside the data directory.
const DatabaseFileName = "shelf.db"

// Compile-time interface check: Backend must implement Library.
var _ types.Library = (*Backend)(nil)

// Backend implements the Library interface over a single SQLite file.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB

	elements  *elementStore
	relations *relationStore
	settings  *settingsStore
}

// NewBackend creates a new SQLite backend instance. The backend is not
// attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{}
}

// Attach opens (or creates) the index file under config.DataDir,
// applies the schema, and seeds the reference data.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return storageErr("creating data dir", err)
	}

	dbPath := filepath.Join(dataDir, DatabaseFileName)
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return storageErr("opening database", err)
	}

	// WAL keeps readers off the writer's lock, so a concurrent reader
	// sees either the pre- or post-state of a transaction, never a
	// half-applied one.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return storageErr("enabling WAL", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return storageErr("setting busy timeout", err)
	}

	// One connection serializes writers in-process; SQLite serializes
	// the rest at the file level.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return storageErr("creating schema", err)
		}
	}
	for _, ddl := range indexDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return storageErr("creating indexes", err)
		}
	}

	if err := seedReferenceData(db); err != nil {
		db.Close()
		return storageErr("seeding reference data", err)
	}

	b.db = db
	b.config = config
	b.attached = true
	b.elements = &elementStore{backend: b}
	b.relations = &relationStore{backend: b}
	b.settings = &settingsStore{backend: b}

	return nil
}

// Detach closes the database. Idempotent. After Detach, store
// operations return ErrDetached.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil // idempotent
	}

	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return storageErr("closing database", err)
		}
		b.db = nil
	}

	b.attached = false
	b.elements = nil
	b.relations = nil
	b.settings = nil

	return nil
}

// Elements returns the element registry store.
func (b *Backend) Elements() (types.ElementStore, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.attached {
		return nil, types.ErrDetached
	}
	return b.elements, nil
}

// Relations returns the dependency, version, tag, thumbnail, and
// metadata store.
func (b *Backend) Relations() (types.RelationStore, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.attached {
		return nil, types.ErrDetached
	}
	return b.relations, nil
}

// Settings returns the settings blob store.
func (b *Backend) Settings() (types.SettingsStore, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.attached {
		return nil, types.ErrDetached
	}
	return b.settings, nil
}

// conn returns the open database handle, or ErrDetached.
func (b *Backend) conn() (*sql.DB, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.attached || b.db == nil {
		return nil, types.ErrDetached
	}
	return b.db, nil
}

// NewInstanceID generates a fresh globally unique instance id. UUID v7
// keeps ids roughly time-ordered; v4 is the fallback.
func NewInstanceID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// storageErr wraps an engine or filesystem failure so that
// errors.Is(err, types.ErrStorageUnavailable) holds while the cause
// text is preserved.
func storageErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", types.ErrStorageUnavailable, op, err)
}
