package types

import "time"

// Element is the canonical registry entry for one indexed asset.
//
// Identifier is the caller-facing key (a path-like string, unique across
// the library). InstanceID is a globally unique surrogate that stays
// stable across identifier renames; every relation table references an
// element through it. Both are immutable after creation.
type Element struct {
	// ID is the internal surrogate row id. Tag links reference it.
	ID int64

	// Identifier is the logical, human-meaningful key. Unique.
	Identifier string

	// InstanceID is the globally unique instance key. Unique.
	InstanceID string

	Name      string
	Directory string
	Type      string
	Extension string
	Folder    bool
	Owner     string

	// ModifiedAt is the last filesystem modification time recorded by
	// the scanner or the caller.
	ModifiedAt time.Time

	// CreatedAt is the creation time as an integer epoch, exactly as
	// handed to the store.
	CreatedAt int64

	// Metadata is an opaque blob owned by external collaborators. The
	// store never interprets it.
	Metadata string
}

// ElementAttrs carries descriptive fields for Create and
// UpdateAttributes. Nil pointers mean "leave unchanged" on update and
// "zero value" on create. Identifier and InstanceID are deliberately
// absent; they cannot be changed through attrs.
type ElementAttrs struct {
	Name       *string
	Directory  *string
	Type       *string
	Extension  *string
	Folder     *bool
	Owner      *string
	ModifiedAt *time.Time
	CreatedAt  *int64
	Metadata   *string
}

// Empty reports whether no attribute is set.
func (a ElementAttrs) Empty() bool {
	return a.Name == nil && a.Directory == nil && a.Type == nil &&
		a.Extension == nil && a.Folder == nil && a.Owner == nil &&
		a.ModifiedAt == nil && a.CreatedAt == nil && a.Metadata == nil
}

// ElementFilter narrows List results. Zero values are ignored.
type ElementFilter struct {
	Directory string
	Type      string
	Folder    *bool
	Limit     int
	Offset    int
}
