// This file declares the relation store and the identifier resolution
// helpers shared by its dependency, version, tag, thumbnail, and
// metadata accessors. Every row the store owns is a weak reference to
// an element; the element store's cascade tears them down.
package sqlite

import (
	"database/sql"

	"github.com/atelier-tools/shelf/pkg/types"
)

var _ types.RelationStore = (*relationStore)(nil)

type relationStore struct {
	backend *Backend
}

// resolveInstanceID maps an identifier to the element's instance id.
func (rs *relationStore) resolveInstanceID(db *sql.DB, identifier string) (string, error) {
	if identifier == "" {
		return "", types.ErrInvalidIdentifier
	}
	var instanceID string
	err := db.QueryRow("SELECT uuid FROM elements WHERE identifier = ?", identifier).Scan(&instanceID)
	if err == sql.ErrNoRows {
		return "", types.ErrNotFound
	}
	if err != nil {
		return "", storageErr("resolving identifier", err)
	}
	return instanceID, nil
}

// resolveRowID maps an identifier to the element's surrogate row id,
// the key the tag link table uses.
func (rs *relationStore) resolveRowID(db *sql.DB, identifier string) (int64, error) {
	if identifier == "" {
		return 0, types.ErrInvalidIdentifier
	}
	var rowID int64
	err := db.QueryRow("SELECT id FROM elements WHERE identifier = ?", identifier).Scan(&rowID)
	if err == sql.ErrNoRows {
		return 0, types.ErrNotFound
	}
	if err != nil {
		return 0, storageErr("resolving identifier", err)
	}
	return rowID, nil
}

// notFoundOr maps sql.ErrNoRows to ErrNotFound and wraps anything else.
func notFoundOr(err error, op string) error {
	if err == sql.ErrNoRows {
		return types.ErrNotFound
	}
	return storageErr(op, err)
}
