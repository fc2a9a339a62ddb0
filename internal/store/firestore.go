package store

import (
	"context"
	"encoding/json"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreStore is the remote document backend: four top-level
// collections, each document keyed by the entity id (settings uses the
// fixed id "general"). There is no transaction spanning documents; each
// call is an independent round trip. Transport and permission failures
// surface as ErrUnavailable so callers fail closed instead of falling
// back to the local store.
type FirestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) List(ctx context.Context, collection string) ([]json.RawMessage, error) {
	return s.collect(s.client.Collection(collection).Documents(ctx))
}

func (s *FirestoreStore) Get(ctx context.Context, collection, id string) (json.RawMessage, error) {
	snap, err := s.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		return nil, wrapFirestoreErr(err)
	}
	return encodeSnapshot(snap.Data())
}

func (s *FirestoreStore) Put(ctx context.Context, collection, id string, doc any) error {
	if _, err := s.client.Collection(collection).Doc(id).Set(ctx, doc); err != nil {
		return wrapFirestoreErr(err)
	}
	return nil
}

func (s *FirestoreStore) Patch(ctx context.Context, collection, id string, fields map[string]any) error {
	// Update (not MergeAll Set) so patching a missing document reports
	// ErrNotFound instead of creating a stray document.
	updates := make([]firestore.Update, 0, len(fields))
	for k, v := range fields {
		updates = append(updates, firestore.Update{Path: k, Value: v})
	}
	if _, err := s.client.Collection(collection).Doc(id).Update(ctx, updates); err != nil {
		return wrapFirestoreErr(err)
	}
	return nil
}

func (s *FirestoreStore) Delete(ctx context.Context, collection, id string) error {
	if _, err := s.client.Collection(collection).Doc(id).Delete(ctx); err != nil {
		return wrapFirestoreErr(err)
	}
	return nil
}

func (s *FirestoreStore) Query(ctx context.Context, collection, field string, value any) ([]json.RawMessage, error) {
	return s.collect(s.client.Collection(collection).Where(field, "==", value).Documents(ctx))
}

func (s *FirestoreStore) collect(iter *firestore.DocumentIterator) ([]json.RawMessage, error) {
	defer iter.Stop()

	var docs []json.RawMessage
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, wrapFirestoreErr(err)
		}
		doc, err := encodeSnapshot(snap.Data())
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func encodeSnapshot(data map[string]any) (json.RawMessage, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return raw, nil
}

func wrapFirestoreErr(err error) error {
	if status.Code(err) == codes.NotFound {
		return ErrNotFound
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}
