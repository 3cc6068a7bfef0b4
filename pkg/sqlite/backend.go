// Package sqlite provides the public API for the SQLite shelf backend.
// It exposes the factory function while keeping implementation details
// internal.
package sqlite

import (
	"github.com/atelier-tools/shelf/internal/sqlite"
	"github.com/atelier-tools/shelf/pkg/types"
)

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
//
// Example:
//
//	lib := sqlite.NewBackend()
//	err := lib.Attach(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".shelf-db",
//	})
//	defer lib.Detach()
func NewBackend() types.Library {
	return sqlite.NewBackend()
}

// NewInstanceID generates a fresh globally unique instance id for
// element creation.
func NewInstanceID() string {
	return sqlite.NewInstanceID()
}
