// Package sqlite implements the SQLite storage backend for shelf.
package sqlite

// Schema DDL for all tables. Referential integrity between elements and
// the relation tables is enforced by the application-level cascade in
// elements.go, not by engine foreign keys, so the guarantee holds
// regardless of the engine's foreign_keys setting.
const (
	createFields = `CREATE TABLE IF NOT EXISTS fields (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE,
    sortable INTEGER NOT NULL DEFAULT 0,
    groupable INTEGER NOT NULL DEFAULT 0
);`

	createElements = `CREATE TABLE IF NOT EXISTS elements (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    identifier TEXT NOT NULL UNIQUE,
    uuid TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL DEFAULT '',
    directory TEXT NOT NULL DEFAULT '',
    type TEXT NOT NULL DEFAULT '',
    extension TEXT NOT NULL DEFAULT '',
    folder INTEGER NOT NULL DEFAULT 0,
    user TEXT NOT NULL DEFAULT '',
    modified TEXT NOT NULL DEFAULT '',
    ctime INTEGER NOT NULL DEFAULT 0,
    metadata TEXT NOT NULL DEFAULT ''
);`

	createMapDependencies = `CREATE TABLE IF NOT EXISTS map_dependencies (
    source_uuid TEXT NOT NULL,
    target_uuid TEXT NOT NULL,
    name TEXT NOT NULL DEFAULT '',
    PRIMARY KEY (source_uuid, target_uuid)
);`

	createTags = `CREATE TABLE IF NOT EXISTS tags (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    tag TEXT NOT NULL UNIQUE
);`

	createMapTags = `CREATE TABLE IF NOT EXISTS map_tags (
    element_id INTEGER NOT NULL,
    tag_id INTEGER NOT NULL,
    PRIMARY KEY (element_id, tag_id)
);`

	// One row per element; the name column carries the globally unique
	// display name used by the dedup-guarded insert.
	createVersions = `CREATE TABLE IF NOT EXISTS versions (
    uuid TEXT PRIMARY KEY,
    version TEXT NOT NULL DEFAULT '',
    name TEXT NOT NULL DEFAULT '',
    comment TEXT NOT NULL DEFAULT '',
    user TEXT NOT NULL DEFAULT ''
);`

	createThumbnails = `CREATE TABLE IF NOT EXISTS thumbnails (
    uuid TEXT PRIMARY KEY,
    image BLOB
);`

	createMetadata = `CREATE TABLE IF NOT EXISTS metadata (
    uuid TEXT PRIMARY KEY,
    version TEXT NOT NULL DEFAULT '',
    data TEXT NOT NULL DEFAULT ''
);`

	createSettings = `CREATE TABLE IF NOT EXISTS settings (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    value TEXT NOT NULL
);`
)

// Index DDL for common queries.
const (
	idxElementsDirectory  = `CREATE INDEX IF NOT EXISTS idx_elements_directory ON elements(directory);`
	idxElementsType       = `CREATE INDEX IF NOT EXISTS idx_elements_type ON elements(type);`
	idxDependenciesTarget = `CREATE INDEX IF NOT EXISTS idx_map_dependencies_target ON map_dependencies(target_uuid);`
	idxMapTagsTag         = `CREATE INDEX IF NOT EXISTS idx_map_tags_tag ON map_tags(tag_id);`
	idxVersionsName       = `CREATE INDEX IF NOT EXISTS idx_versions_name ON versions(name);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createFields,
	createElements,
	createMapDependencies,
	createTags,
	createMapTags,
	createVersions,
	createThumbnails,
	createMetadata,
	createSettings,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxElementsDirectory,
	idxElementsType,
	idxDependenciesTarget,
	idxMapTagsTag,
	idxVersionsName,
}
