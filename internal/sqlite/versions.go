// This file implements the version slot accessors. The versions table
// holds at most one row per element; creation is dedup-guarded on the
// display name across the WHOLE table.
package sqlite

import (
	"database/sql"

	"github.com/atelier-tools/shelf/pkg/types"
)

// SetLatestVersion fills (or replaces) the element's version slot.
//
// The dedup key is the display name globally: if ANY element already
// holds a version with this display name, the call is a silent no-op
// and the original row keeps its comment and author (first write wins).
// Two different elements can therefore never hold versions with the
// same display name; callers who expected per-element scoping will find
// this surprising, but downstream behavior depends on the global scope.
//
// An instance id that resolves to no element is a constraint violation:
// the caller handed us a dangling reference.
func (rs *relationStore) SetLatestVersion(instanceID, label, displayName, comment, author string) error {
	if instanceID == "" {
		return types.ErrInvalidInstanceID
	}
	db, err := rs.backend.conn()
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return storageErr("beginning transaction", err)
	}
	defer tx.Rollback()

	var one int
	err = tx.QueryRow("SELECT 1 FROM elements WHERE uuid = ?", instanceID).Scan(&one)
	if err == sql.ErrNoRows {
		return types.ErrConstraintViolation
	}
	if err != nil {
		return storageErr("checking element", err)
	}

	err = tx.QueryRow("SELECT 1 FROM versions WHERE name = ?", displayName).Scan(&one)
	if err == nil {
		return nil // dedup: display name taken, silent no-op
	}
	if err != sql.ErrNoRows {
		return storageErr("checking display name", err)
	}

	// REPLACE empties the element's slot before filling it; the uuid
	// primary key keeps it at one row per element.
	_, err = tx.Exec(
		"INSERT OR REPLACE INTO versions (uuid, version, name, comment, user) VALUES (?, ?, ?, ?, ?)",
		instanceID, label, displayName, comment, author,
	)
	if err != nil {
		return storageErr("inserting version", err)
	}

	if err := tx.Commit(); err != nil {
		return storageErr("committing version", err)
	}
	return nil
}

// LatestVersion returns the element's stored version. The ordering and
// limit are defensive; the primary key already forces at most one row.
func (rs *relationStore) LatestVersion(identifier string) (*types.Version, error) {
	db, err := rs.backend.conn()
	if err != nil {
		return nil, err
	}
	instanceID, err := rs.resolveInstanceID(db, identifier)
	if err != nil {
		return nil, err
	}

	var v types.Version
	err = db.QueryRow(
		"SELECT uuid, version, name, comment, user FROM versions WHERE uuid = ? ORDER BY version DESC LIMIT 1",
		instanceID,
	).Scan(&v.InstanceID, &v.Label, &v.DisplayName, &v.Comment, &v.Author)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, storageErr("getting version", err)
	}
	return &v, nil
}
