package store

import (
	"context"
	"errors"
)

var (
	NotFoundError = errors.New("document not found")
)

// Document is a single record within a collection. Data holds the raw
// document fields as they exist in the store.
type Document struct {
	ID   string
	Data map[string]interface{}
}

// Client encapsulates the logic to access documents in a schemaless,
// per-collection document database. All mutating operations are best-effort:
// there is no retry policy, and callers surface failures without rolling back
// any state they already changed.
type Client interface {
	// Get returns the document with the given ID, or NotFoundError.
	Get(ctx context.Context, collection, id string) (*Document, error)
	// Query returns every document whose fields equal all of the provided
	// filter values. Results are in store iteration order.
	Query(ctx context.Context, collection string, filters map[string]interface{}) ([]*Document, error)
	// Create adds a new document with a generated ID and returns the ID.
	Create(ctx context.Context, collection string, data map[string]interface{}) (string, error)
	// Set writes a full document body under the given ID, overwriting any
	// existing document.
	Set(ctx context.Context, collection, id string, data map[string]interface{}) error
	// Patch merges the named fields into the document. Nested map fields are
	// merged key-by-key, not replaced wholesale; fields not named are left
	// untouched.
	Patch(ctx context.Context, collection, id string, partial map[string]interface{}) error
	// ClearField removes exactly the named field (dotted paths address nested
	// fields) without touching siblings.
	ClearField(ctx context.Context, collection, id, fieldPath string) error
	// Delete removes the document. Deleting a missing document is not an error.
	Delete(ctx context.Context, collection, id string) error
}
