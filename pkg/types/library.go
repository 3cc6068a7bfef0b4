package types

// Library is the top-level access point for one shelf index file.
// Callers attach to a backend, use the three stores, and detach when
// done. Control flow between stores goes through element identifiers:
// the element store resolves an identifier to an instance id, and the
// relation store joins on that id.
type Library interface {
	// Attach connects to the backend described by config, creating the
	// data directory and schema as needed. Returns ErrAlreadyAttached
	// if called while attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent. After Detach,
	// store operations return ErrDetached.
	Detach() error

	// Elements returns the element registry store.
	Elements() (ElementStore, error)

	// Relations returns the dependency, version, tag, thumbnail, and
	// metadata store.
	Relations() (RelationStore, error)

	// Settings returns the settings blob store.
	Settings() (SettingsStore, error)
}

// ElementStore owns the elements table. It is the only writer of
// identifier/instance-id pairs.
type ElementStore interface {
	// Create registers a new element. Fails with ErrDuplicateIdentifier
	// or ErrDuplicateInstanceID if either key is taken; the checks are
	// atomic with the insert.
	Create(identifier, instanceID string, attrs ElementAttrs) (*Element, error)

	// GetByIdentifier returns the element with the given identifier,
	// or ErrNotFound.
	GetByIdentifier(identifier string) (*Element, error)

	// GetByInstanceID returns the element with the given instance id,
	// or ErrNotFound.
	GetByInstanceID(instanceID string) (*Element, error)

	// UpdateAttributes updates only the supplied fields. Empty attrs is
	// a successful no-op. Never touches identifier or instance id.
	UpdateAttributes(identifier string, attrs ElementAttrs) error

	// Delete removes the element and every row referencing it in the
	// relation tables, as one atomic unit. A second call for the same
	// identifier reports ErrNotFound.
	Delete(identifier string) error

	// List returns elements matching the filter, ordered by identifier.
	List(filter ElementFilter) ([]*Element, error)

	// Fields enumerates the static sort/group field descriptors.
	Fields() ([]Field, error)
}

// RelationStore owns every table that references an element: dependency
// edges, the version slot, tags, thumbnails, and metadata. All of its
// rows are weak references torn down by ElementStore.Delete.
type RelationStore interface {
	// AddDependency records "source requires target". Re-adding an
	// existing edge silently overwrites its label.
	AddDependency(sourceIdentifier, targetIdentifier, label string) error

	// RemoveDependency deletes the edge between the two elements, if
	// present. Returns ErrNotFound only when an identifier is unknown.
	RemoveDependency(sourceIdentifier, targetIdentifier string) error

	// DirectDependencies lists the one-hop requirements of an element.
	DirectDependencies(identifier string) ([]Dependency, error)

	// Dependents lists the elements that directly require this one.
	Dependents(identifier string) ([]Dependency, error)

	// SetLatestVersion fills the element's version slot. The insert is
	// dedup-guarded on displayName globally across all elements: if any
	// element already holds a version with that display name the call
	// is a silent no-op (first write wins). An unknown instance id is
	// ErrConstraintViolation.
	SetLatestVersion(instanceID, label, displayName, comment, author string) error

	// LatestVersion returns the element's stored version, or
	// ErrNotFound if the element is absent or its slot is empty.
	LatestVersion(identifier string) (*Version, error)

	AddTag(identifier, tag string) error
	RemoveTag(identifier, tag string) error
	Tags(identifier string) ([]string, error)

	// SetThumbnail stores the element's thumbnail image bytes,
	// replacing any previous one.
	SetThumbnail(identifier string, image []byte) error

	// Thumbnail returns the stored image bytes, or ErrNotFound when
	// the element is absent or has no thumbnail.
	Thumbnail(identifier string) ([]byte, error)

	// SetMetadata upserts the element's metadata row.
	SetMetadata(identifier, version, payload string) error

	// Metadata returns the element's metadata row, or ErrNotFound when
	// the element is absent or has none.
	Metadata(identifier string) (*Metadata, error)
}

// SettingsStore is the singleton settings blob, independent of the
// element tables. The value is opaque to the store.
type SettingsStore interface {
	Get() (string, error)
	Set(value string) error
}
