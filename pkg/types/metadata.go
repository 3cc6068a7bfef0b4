package types

// Metadata is the per-element opaque payload row. At most one per
// element. The store does not parse or validate the payload.
type Metadata struct {
	InstanceID string
	Version    string
	Payload    string
}
