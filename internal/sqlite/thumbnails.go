// This file implements the thumbnail accessors: at most one image blob
// per element, keyed by instance id. The store never generates or
// decodes images; it keeps the bytes a generator hands it.
package sqlite

import (
	"database/sql"

	"github.com/atelier-tools/shelf/pkg/types"
)

// SetThumbnail stores the element's thumbnail, replacing any previous one.
func (rs *relationStore) SetThumbnail(identifier string, image []byte) error {
	db, err := rs.backend.conn()
	if err != nil {
		return err
	}
	instanceID, err := rs.resolveInstanceID(db, identifier)
	if err != nil {
		return err
	}

	_, err = db.Exec("INSERT OR REPLACE INTO thumbnails (uuid, image) VALUES (?, ?)", instanceID, image)
	if err != nil {
		return storageErr("storing thumbnail", err)
	}
	return nil
}

// Thumbnail returns the stored image bytes.
func (rs *relationStore) Thumbnail(identifier string) ([]byte, error) {
	db, err := rs.backend.conn()
	if err != nil {
		return nil, err
	}
	instanceID, err := rs.resolveInstanceID(db, identifier)
	if err != nil {
		return nil, err
	}

	var image []byte
	err = db.QueryRow("SELECT image FROM thumbnails WHERE uuid = ?", instanceID).Scan(&image)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, storageErr("getting thumbnail", err)
	}
	return image, nil
}
