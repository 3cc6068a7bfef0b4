// This file implements the dependency edge accessors: a directed edge
// set over element instance ids, one-hop queries in both directions.
package sqlite

import (
	"fmt"

	"github.com/atelier-tools/shelf/pkg/types"
)

// AddDependency records "source requires target" with a descriptive
// label. Both identifiers must resolve. Re-adding an existing edge
// silently overwrites its label; the composite key makes INSERT OR
// REPLACE an idempotent upsert, not an error.
func (rs *relationStore) AddDependency(sourceIdentifier, targetIdentifier, label string) error {
	db, err := rs.backend.conn()
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return storageErr("beginning transaction", err)
	}
	defer tx.Rollback()

	var sourceID, targetID string
	if err := tx.QueryRow("SELECT uuid FROM elements WHERE identifier = ?", sourceIdentifier).Scan(&sourceID); err != nil {
		return notFoundOr(err, "resolving source")
	}
	if err := tx.QueryRow("SELECT uuid FROM elements WHERE identifier = ?", targetIdentifier).Scan(&targetID); err != nil {
		return notFoundOr(err, "resolving target")
	}

	_, err = tx.Exec(
		"INSERT OR REPLACE INTO map_dependencies (source_uuid, target_uuid, name) VALUES (?, ?, ?)",
		sourceID, targetID, label,
	)
	if err != nil {
		return storageErr("inserting dependency", err)
	}

	if err := tx.Commit(); err != nil {
		return storageErr("committing dependency", err)
	}
	return nil
}

// RemoveDependency deletes the edge between the two elements. A missing
// edge is not an error; a missing element is.
func (rs *relationStore) RemoveDependency(sourceIdentifier, targetIdentifier string) error {
	db, err := rs.backend.conn()
	if err != nil {
		return err
	}

	sourceID, err := rs.resolveInstanceID(db, sourceIdentifier)
	if err != nil {
		return err
	}
	targetID, err := rs.resolveInstanceID(db, targetIdentifier)
	if err != nil {
		return err
	}

	_, err = db.Exec(
		"DELETE FROM map_dependencies WHERE source_uuid = ? AND target_uuid = ?",
		sourceID, targetID,
	)
	if err != nil {
		return storageErr("deleting dependency", err)
	}
	return nil
}

// DirectDependencies lists the one-hop requirements of an element:
// every edge where it is the source, joined back to the target's
// identifier. No transitive walk, no cycle guarantee.
func (rs *relationStore) DirectDependencies(identifier string) ([]types.Dependency, error) {
	return rs.oneHop(identifier,
		`SELECT e.identifier, d.name
         FROM map_dependencies d
         JOIN elements e ON e.uuid = d.target_uuid
         WHERE d.source_uuid = ?`)
}

// Dependents lists the elements that directly require this one: the
// symmetric one-hop query over edges where it is the target.
func (rs *relationStore) Dependents(identifier string) ([]types.Dependency, error) {
	return rs.oneHop(identifier,
		`SELECT e.identifier, d.name
         FROM map_dependencies d
         JOIN elements e ON e.uuid = d.source_uuid
         WHERE d.target_uuid = ?`)
}

func (rs *relationStore) oneHop(identifier, query string) ([]types.Dependency, error) {
	db, err := rs.backend.conn()
	if err != nil {
		return nil, err
	}
	instanceID, err := rs.resolveInstanceID(db, identifier)
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(query, instanceID)
	if err != nil {
		return nil, storageErr("querying dependencies", err)
	}
	defer rows.Close()

	deps := []types.Dependency{}
	for rows.Next() {
		var d types.Dependency
		if err := rows.Scan(&d.Identifier, &d.Label); err != nil {
			return nil, fmt.Errorf("scanning dependency: %w", err)
		}
		deps = append(deps, d)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterating dependencies", err)
	}
	return deps, nil
}
