package store

import (
	"context"
	"encoding/json"
	"errors"
)

// Logical collections. The set is fixed; both backends persist exactly
// these four namespaces.
const (
	CollectionProducts     = "products"
	CollectionTransactions = "transactions"
	CollectionSettings     = "settings"
	CollectionReviews      = "reviews"
)

var (
	// ErrNotFound means the id (or query) matched nothing.
	ErrNotFound = errors.New("record not found")
	// ErrUnavailable means the backend could not be reached. Callers must
	// fail closed; there is no fallback to the other backend mid-session.
	ErrUnavailable = errors.New("storage backend unavailable")
	// ErrCorrupt means locally persisted data no longer deserializes.
	// Recovery requires clearing the store, so treat it as fatal.
	ErrCorrupt = errors.New("corrupt collection data")
)

// Backend is the uniform document store both the local and the remote
// implementation satisfy. It is chosen once at startup and injected;
// repositories never switch backends at runtime.
//
// Documents are raw JSON so the store stays agnostic of entity types.
// Put injects/overwrites the document's "id" field with the given id.
type Backend interface {
	List(ctx context.Context, collection string) ([]json.RawMessage, error)
	Get(ctx context.Context, collection, id string) (json.RawMessage, error)
	Put(ctx context.Context, collection, id string, doc any) error
	// Patch shallow-merges fields into an existing document. Missing
	// document is ErrNotFound.
	Patch(ctx context.Context, collection, id string, fields map[string]any) error
	Delete(ctx context.Context, collection, id string) error
	// Query returns documents whose field equals value.
	Query(ctx context.Context, collection, field string, value any) ([]json.RawMessage, error)
}
