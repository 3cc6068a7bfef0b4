package types

// Version is the single current-version slot of an element. The
// persisted table is named "versions" for layout compatibility, but it
// holds at most one row per element; there is no multi-version history.
type Version struct {
	// InstanceID of the owning element.
	InstanceID string

	// Label is the version label, e.g. "v003".
	Label string

	// DisplayName is the dedup key for version creation. Uniqueness is
	// global across all elements, not per element.
	DisplayName string

	Comment string
	Author  string
}
