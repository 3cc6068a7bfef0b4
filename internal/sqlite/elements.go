// This file implements the element registry store: atomic creation with
// duplicate checks, partial attribute updates, filtered listing, and
// the cascading delete that tears down every referencing relation row
// together with the element.
package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/atelier-tools/shelf/pkg/types"
)

var _ types.ElementStore = (*elementStore)(nil)

type elementStore struct {
	backend *Backend
}

const elementColumns = "id, identifier, uuid, name, directory, type, extension, folder, user, modified, ctime, metadata"

// Create registers a new element. The duplicate checks run inside the
// insert transaction so no concurrent creation can slip between check
// and insert; the UNIQUE indexes are the backstop either way.
func (es *elementStore) Create(identifier, instanceID string, attrs types.ElementAttrs) (*types.Element, error) {
	if identifier == "" {
		return nil, types.ErrInvalidIdentifier
	}
	if instanceID == "" {
		return nil, types.ErrInvalidInstanceID
	}

	db, err := es.backend.conn()
	if err != nil {
		return nil, err
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, storageErr("beginning transaction", err)
	}
	defer tx.Rollback()

	var one int
	err = tx.QueryRow("SELECT 1 FROM elements WHERE identifier = ?", identifier).Scan(&one)
	if err == nil {
		return nil, types.ErrDuplicateIdentifier
	}
	if err != sql.ErrNoRows {
		return nil, storageErr("checking identifier", err)
	}
	err = tx.QueryRow("SELECT 1 FROM elements WHERE uuid = ?", instanceID).Scan(&one)
	if err == nil {
		return nil, types.ErrDuplicateInstanceID
	}
	if err != sql.ErrNoRows {
		return nil, storageErr("checking instance id", err)
	}

	el := &types.Element{
		Identifier: identifier,
		InstanceID: instanceID,
	}
	applyAttrs(el, attrs)

	res, err := tx.Exec(
		`INSERT INTO elements (identifier, uuid, name, directory, type, extension, folder, user, modified, ctime, metadata)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		el.Identifier, el.InstanceID, el.Name, el.Directory, el.Type, el.Extension,
		boolToInt(el.Folder), el.Owner, formatModified(el.ModifiedAt), el.CreatedAt, el.Metadata,
	)
	if err != nil {
		return nil, mapUniqueError(err)
	}
	el.ID, err = res.LastInsertId()
	if err != nil {
		return nil, storageErr("reading element row id", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, storageErr("committing element", err)
	}

	return el, nil
}

// GetByIdentifier returns the element with the given identifier.
func (es *elementStore) GetByIdentifier(identifier string) (*types.Element, error) {
	if identifier == "" {
		return nil, types.ErrInvalidIdentifier
	}
	db, err := es.backend.conn()
	if err != nil {
		return nil, err
	}
	row := db.QueryRow("SELECT "+elementColumns+" FROM elements WHERE identifier = ?", identifier)
	return hydrateElement(row)
}

// GetByInstanceID returns the element with the given instance id.
func (es *elementStore) GetByInstanceID(instanceID string) (*types.Element, error) {
	if instanceID == "" {
		return nil, types.ErrInvalidInstanceID
	}
	db, err := es.backend.conn()
	if err != nil {
		return nil, err
	}
	row := db.QueryRow("SELECT "+elementColumns+" FROM elements WHERE uuid = ?", instanceID)
	return hydrateElement(row)
}

// UpdateAttributes updates only the supplied fields. Identifier and
// instance id are immutable and not part of the attrs type at all.
func (es *elementStore) UpdateAttributes(identifier string, attrs types.ElementAttrs) error {
	if identifier == "" {
		return types.ErrInvalidIdentifier
	}
	db, err := es.backend.conn()
	if err != nil {
		return err
	}

	if attrs.Empty() {
		// Empty update is a successful no-op, but the element must exist.
		var one int
		err := db.QueryRow("SELECT 1 FROM elements WHERE identifier = ?", identifier).Scan(&one)
		if err == sql.ErrNoRows {
			return types.ErrNotFound
		}
		if err != nil {
			return storageErr("checking element existence", err)
		}
		return nil
	}

	var sets []string
	var args []any
	add := func(col string, v any) {
		sets = append(sets, col+" = ?")
		args = append(args, v)
	}
	if attrs.Name != nil {
		add("name", *attrs.Name)
	}
	if attrs.Directory != nil {
		add("directory", *attrs.Directory)
	}
	if attrs.Type != nil {
		add("type", *attrs.Type)
	}
	if attrs.Extension != nil {
		add("extension", *attrs.Extension)
	}
	if attrs.Folder != nil {
		add("folder", boolToInt(*attrs.Folder))
	}
	if attrs.Owner != nil {
		add("user", *attrs.Owner)
	}
	if attrs.ModifiedAt != nil {
		add("modified", formatModified(*attrs.ModifiedAt))
	}
	if attrs.CreatedAt != nil {
		add("ctime", *attrs.CreatedAt)
	}
	if attrs.Metadata != nil {
		add("metadata", *attrs.Metadata)
	}

	args = append(args, identifier)
	res, err := db.Exec("UPDATE elements SET "+strings.Join(sets, ", ")+" WHERE identifier = ?", args...)
	if err != nil {
		return storageErr("updating element", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return storageErr("reading update result", err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}

// Delete removes the element and every referencing row as one atomic
// unit: tag links by surrogate id, dependency edges where the element
// is source or target, then the thumbnail, metadata, and version rows,
// and finally the element itself. Either all deletions become visible
// or none do.
func (es *elementStore) Delete(identifier string) error {
	if identifier == "" {
		return types.ErrInvalidIdentifier
	}
	db, err := es.backend.conn()
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return storageErr("beginning transaction", err)
	}
	defer tx.Rollback()

	var rowID int64
	var instanceID string
	err = tx.QueryRow("SELECT id, uuid FROM elements WHERE identifier = ?", identifier).Scan(&rowID, &instanceID)
	if err == sql.ErrNoRows {
		return types.ErrNotFound
	}
	if err != nil {
		return storageErr("resolving element", err)
	}

	cascade := []struct {
		stmt string
		args []any
	}{
		{"DELETE FROM map_tags WHERE element_id = ?", []any{rowID}},
		// An element may be a dependency of others and a dependent of
		// others at the same time; both directions are purged.
		{"DELETE FROM map_dependencies WHERE source_uuid = ? OR target_uuid = ?", []any{instanceID, instanceID}},
		{"DELETE FROM thumbnails WHERE uuid = ?", []any{instanceID}},
		{"DELETE FROM metadata WHERE uuid = ?", []any{instanceID}},
		{"DELETE FROM versions WHERE uuid = ?", []any{instanceID}},
		{"DELETE FROM elements WHERE id = ?", []any{rowID}},
	}
	for _, step := range cascade {
		if _, err := tx.Exec(step.stmt, step.args...); err != nil {
			return storageErr("cascading delete", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return storageErr("committing delete", err)
	}
	return nil
}

// List returns elements matching the filter, ordered by identifier.
func (es *elementStore) List(filter types.ElementFilter) ([]*types.Element, error) {
	db, err := es.backend.conn()
	if err != nil {
		return nil, err
	}

	query := "SELECT " + elementColumns + " FROM elements"
	var conditions []string
	var args []any
	if filter.Directory != "" {
		conditions = append(conditions, "directory = ?")
		args = append(args, filter.Directory)
	}
	if filter.Type != "" {
		conditions = append(conditions, "type = ?")
		args = append(args, filter.Type)
	}
	if filter.Folder != nil {
		conditions = append(conditions, "folder = ?")
		args = append(args, boolToInt(*filter.Folder))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY identifier ASC"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET %d", filter.Offset)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, storageErr("listing elements", err)
	}
	defer rows.Close()

	results := []*types.Element{}
	for rows.Next() {
		el, err := scanElement(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating element: %w", err)
		}
		results = append(results, el)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterating elements", err)
	}
	return results, nil
}

// Fields enumerates the static sort/group field descriptors.
func (es *elementStore) Fields() ([]types.Field, error) {
	db, err := es.backend.conn()
	if err != nil {
		return nil, err
	}
	rows, err := db.Query("SELECT id, name, sortable, groupable FROM fields ORDER BY id ASC")
	if err != nil {
		return nil, storageErr("querying fields", err)
	}
	defer rows.Close()

	var fields []types.Field
	for rows.Next() {
		var f types.Field
		var sortable, groupable int
		if err := rows.Scan(&f.ID, &f.Name, &sortable, &groupable); err != nil {
			return nil, fmt.Errorf("scanning field: %w", err)
		}
		f.Sortable = sortable != 0
		f.Groupable = groupable != 0
		fields = append(fields, f)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterating fields", err)
	}
	return fields, nil
}

// applyAttrs copies set attrs onto the element, leaving the rest zero.
func applyAttrs(el *types.Element, attrs types.ElementAttrs) {
	if attrs.Name != nil {
		el.Name = *attrs.Name
	}
	if attrs.Directory != nil {
		el.Directory = *attrs.Directory
	}
	if attrs.Type != nil {
		el.Type = *attrs.Type
	}
	if attrs.Extension != nil {
		el.Extension = *attrs.Extension
	}
	if attrs.Folder != nil {
		el.Folder = *attrs.Folder
	}
	if attrs.Owner != nil {
		el.Owner = *attrs.Owner
	}
	if attrs.ModifiedAt != nil {
		el.ModifiedAt = *attrs.ModifiedAt
	}
	if attrs.CreatedAt != nil {
		el.CreatedAt = *attrs.CreatedAt
	}
	if attrs.Metadata != nil {
		el.Metadata = *attrs.Metadata
	}
}

// scanner abstracts sql.Row and sql.Rows for the shared hydrate path.
type rowScanner interface {
	Scan(dest ...any) error
}

func hydrateElement(row *sql.Row) (*types.Element, error) {
	el, err := scanElement(row)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, storageErr("getting element", err)
	}
	return el, nil
}

func scanElement(r rowScanner) (*types.Element, error) {
	var el types.Element
	var folder int
	var modified string
	if err := r.Scan(
		&el.ID, &el.Identifier, &el.InstanceID, &el.Name, &el.Directory,
		&el.Type, &el.Extension, &folder, &el.Owner, &modified,
		&el.CreatedAt, &el.Metadata,
	); err != nil {
		return nil, err
	}
	el.Folder = folder != 0
	if modified != "" {
		t, err := time.Parse(time.RFC3339, modified)
		if err != nil {
			return nil, fmt.Errorf("parsing modified: %w", err)
		}
		el.ModifiedAt = t
	}
	return &el, nil
}

func formatModified(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// mapUniqueError converts a UNIQUE index failure into the matching
// duplicate sentinel. Reached only if a concurrent writer got past the
// in-transaction checks.
func mapUniqueError(err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "elements.identifier"):
		return types.ErrDuplicateIdentifier
	case strings.Contains(msg, "elements.uuid"):
		return types.ErrDuplicateInstanceID
	default:
		return storageErr("inserting element", err)
	}
}
