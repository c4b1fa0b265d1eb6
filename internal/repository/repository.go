package repository

import (
	"context"
	"fmt"
)

// Store defines the interface for namespace data persistence. Keys are
// opaque namespace-derived names; values are whole serialized documents.
// Reads of missing keys return a not-found error, never partial data.
type Store interface {
	// Read returns the full document stored under key.
	Read(ctx context.Context, key string) ([]byte, error)

	// Write replaces the document stored under key.
	Write(ctx context.Context, key string, data []byte) error

	// Delete removes the document stored under key.
	Delete(ctx context.Context, key string) error

	// Exists reports whether a document is stored under key.
	Exists(ctx context.Context, key string) (bool, error)

	// Utility
	Close() error
}

// Locator is implemented by backends whose documents live at filesystem
// paths. The edit and path commands need real files to point at.
type Locator interface {
	// Path returns the absolute path of the document stored under key.
	Path(key string) string

	// Dir returns the directory all documents live in.
	Dir() string
}

// EntriesKey returns the storage key of a namespace's entry collection.
func EntriesKey(namespace string) string {
	return fmt.Sprintf("%s.yaml", namespace)
}

// MarkerKey returns the storage key of a namespace's clock-in marker.
func MarkerKey(namespace string) string {
	return fmt.Sprintf("%s-clockin.yaml", namespace)
}
