// This file implements the metadata accessors: at most one opaque
// payload row per element. The store never parses the payload.
package sqlite

import (
	"database/sql"

	"github.com/atelier-tools/shelf/pkg/types"
)

// SetMetadata upserts the element's metadata row.
func (rs *relationStore) SetMetadata(identifier, version, payload string) error {
	db, err := rs.backend.conn()
	if err != nil {
		return err
	}
	instanceID, err := rs.resolveInstanceID(db, identifier)
	if err != nil {
		return err
	}

	_, err = db.Exec(
		"INSERT OR REPLACE INTO metadata (uuid, version, data) VALUES (?, ?, ?)",
		instanceID, version, payload,
	)
	if err != nil {
		return storageErr("storing metadata", err)
	}
	return nil
}

// Metadata returns the element's metadata row.
func (rs *relationStore) Metadata(identifier string) (*types.Metadata, error) {
	db, err := rs.backend.conn()
	if err != nil {
		return nil, err
	}
	instanceID, err := rs.resolveInstanceID(db, identifier)
	if err != nil {
		return nil, err
	}

	var m types.Metadata
	err = db.QueryRow("SELECT uuid, version, data FROM metadata WHERE uuid = ?", instanceID).
		Scan(&m.InstanceID, &m.Version, &m.Payload)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, storageErr("getting metadata", err)
	}
	return &m, nil
}
