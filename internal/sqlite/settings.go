// This file implements the settings store: one mutable row holding one
// serialized configuration object, independent of the element tables.
package sqlite

import (
	"database/sql"

	"github.com/atelier-tools/shelf/pkg/types"
)

var _ types.SettingsStore = (*settingsStore)(nil)

type settingsStore struct {
	backend *Backend
}

// Get returns the settings blob. The row is seeded at schema creation,
// so a missing row means the file was tampered with; report it as a
// storage failure rather than inventing a value.
func (ss *settingsStore) Get() (string, error) {
	db, err := ss.backend.conn()
	if err != nil {
		return "", err
	}

	var value string
	err = db.QueryRow("SELECT value FROM settings WHERE id = 1").Scan(&value)
	if err == sql.ErrNoRows {
		return "", storageErr("settings row missing", err)
	}
	if err != nil {
		return "", storageErr("getting settings", err)
	}
	return value, nil
}

// Set replaces the settings blob. The value is opaque; parsing and
// validation belong to the settings collaborator.
func (ss *settingsStore) Set(value string) error {
	db, err := ss.backend.conn()
	if err != nil {
		return err
	}

	_, err = db.Exec("INSERT OR REPLACE INTO settings (id, value) VALUES (1, ?)", value)
	if err != nil {
		return storageErr("storing settings", err)
	}
	return nil
}
