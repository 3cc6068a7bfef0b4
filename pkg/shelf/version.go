// Package shelf carries project-level metadata.
package shelf

// Version is the shelf release version.
const Version = "0.2.0"
