// Package types defines the Library and store interfaces, entity types,
// and standard errors for the shelf index.
package types
