// This file seeds the static reference data on backend attach: the
// fields dictionary and the settings singleton.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/atelier-tools/shelf/pkg/types"
)

// seedField describes one fields row created at schema creation.
type seedField struct {
	name      string
	sortable  bool
	groupable bool
}

// seedFields enumerates the element attributes a presentation layer may
// sort or group by. Purely declarative; the store never mutates them.
var seedFields = []seedField{
	{types.FieldUUID, false, false},
	{types.FieldName, true, false},
	{types.FieldDirectory, true, true},
	{types.FieldType, true, true},
	{types.FieldExtension, true, true},
	{types.FieldFolder, true, false},
	{types.FieldModified, true, false},
	{types.FieldUser, true, true},
	{types.FieldCtime, true, false},
}

// emptySettings is the initial settings blob: an empty serialized
// object. The row is created once and never deleted.
const emptySettings = "{}"

// seedReferenceData populates the fields table and the settings
// singleton if empty. Idempotent across attaches to an existing file.
func seedReferenceData(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM fields").Scan(&count); err != nil {
		return fmt.Errorf("counting fields: %w", err)
	}
	if count == 0 {
		for _, f := range seedFields {
			_, err := db.Exec(
				"INSERT INTO fields (name, sortable, groupable) VALUES (?, ?, ?)",
				f.name, boolToInt(f.sortable), boolToInt(f.groupable),
			)
			if err != nil {
				return fmt.Errorf("seeding field %s: %w", f.name, err)
			}
		}
	}

	_, err := db.Exec(
		"INSERT OR IGNORE INTO settings (id, value) VALUES (1, ?)",
		emptySettings,
	)
	if err != nil {
		return fmt.Errorf("seeding settings: %w", err)
	}

	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
