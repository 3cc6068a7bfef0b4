// This file implements the tag accessors: a tag dictionary joined to
// elements many-to-many through map_tags, keyed by the element's
// surrogate row id.
package sqlite

import (
	"fmt"

	"github.com/atelier-tools/shelf/pkg/types"
)

// AddTag links a tag to an element, creating the dictionary entry on
// first use. Linking the same tag twice is a no-op.
func (rs *relationStore) AddTag(identifier, tag string) error {
	if tag == "" {
		return types.ErrInvalidTag
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

	var rowID int64
	if err := tx.QueryRow("SELECT id FROM elements WHERE identifier = ?", identifier).Scan(&rowID); err != nil {
		return notFoundOr(err, "resolving element")
	}

	if _, err := tx.Exec("INSERT OR IGNORE INTO tags (tag) VALUES (?)", tag); err != nil {
		return storageErr("inserting tag", err)
	}
	var tagID int64
	if err := tx.QueryRow("SELECT id FROM tags WHERE tag = ?", tag).Scan(&tagID); err != nil {
		return storageErr("resolving tag", err)
	}
	if _, err := tx.Exec("INSERT OR IGNORE INTO map_tags (element_id, tag_id) VALUES (?, ?)", rowID, tagID); err != nil {
		return storageErr("linking tag", err)
	}

	if err := tx.Commit(); err != nil {
		return storageErr("committing tag", err)
	}
	return nil
}

// RemoveTag unlinks a tag from an element. The dictionary entry stays;
// an unlinked tag is not an error.
func (rs *relationStore) RemoveTag(identifier, tag string) error {
	if tag == "" {
		return types.ErrInvalidTag
	}
	db, err := rs.backend.conn()
	if err != nil {
		return err
	}

	rowID, err := rs.resolveRowID(db, identifier)
	if err != nil {
		return err
	}

	_, err = db.Exec(
		"DELETE FROM map_tags WHERE element_id = ? AND tag_id = (SELECT id FROM tags WHERE tag = ?)",
		rowID, tag,
	)
	if err != nil {
		return storageErr("unlinking tag", err)
	}
	return nil
}

// Tags lists the element's tags in dictionary order.
func (rs *relationStore) Tags(identifier string) ([]string, error) {
	db, err := rs.backend.conn()
	if err != nil {
		return nil, err
	}
	rowID, err := rs.resolveRowID(db, identifier)
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(
		`SELECT t.tag FROM map_tags m JOIN tags t ON t.id = m.tag_id
         WHERE m.element_id = ? ORDER BY t.tag ASC`,
		rowID,
	)
	if err != nil {
		return nil, storageErr("querying tags", err)
	}
	defer rows.Close()

	tags := []string{}
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, fmt.Errorf("scanning tag: %w", err)
		}
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterating tags", err)
	}
	return tags, nil
}
