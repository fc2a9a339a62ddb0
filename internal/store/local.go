package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// collectionRow is one persisted collection: the whole serialized array
// (or the bare settings object) under its namespace key. This mirrors
// the original device-storage layout of one blob per collection.
type collectionRow struct {
	Name string         `gorm:"primaryKey;size:64"`
	Data datatypes.JSON `gorm:"not null"`
}

func (collectionRow) TableName() string {
	return "collections"
}

// LocalStore persists every collection as a single JSON blob in an
// embedded SQLite database. Every mutation is a whole-blob
// read-modify-write; a process mutex serializes those, which is strictly
// stronger than the original's accepted last-writer-wins.
type LocalStore struct {
	db *gorm.DB
	mu sync.Mutex
}

func NewLocalStore(db *gorm.DB) (*LocalStore, error) {
	if err := db.AutoMigrate(&collectionRow{}); err != nil {
		return nil, fmt.Errorf("migrate collections table: %w", err)
	}
	return &LocalStore{db: db}, nil
}

func (s *LocalStore) List(ctx context.Context, collection string) ([]json.RawMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx, collection)
}

func (s *LocalStore) Get(ctx context.Context, collection, id string) (json.RawMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs, err := s.load(ctx, collection)
	if err != nil {
		return nil, err
	}
	for _, doc := range docs {
		if docID(doc) == id {
			return doc, nil
		}
	}
	return nil, ErrNotFound
}

func (s *LocalStore) Put(ctx context.Context, collection, id string, doc any) error {
	raw, err := encodeDoc(id, doc)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	docs, err := s.load(ctx, collection)
	if err != nil {
		return err
	}
	replaced := false
	for i := range docs {
		if docID(docs[i]) == id {
			docs[i] = raw
			replaced = true
			break
		}
	}
	if !replaced {
		// Newest first, matching the original's prepend-on-create.
		docs = append([]json.RawMessage{raw}, docs...)
	}
	return s.save(ctx, collection, docs)
}

func (s *LocalStore) Patch(ctx context.Context, collection, id string, fields map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs, err := s.load(ctx, collection)
	if err != nil {
		return err
	}
	for i := range docs {
		if docID(docs[i]) != id {
			continue
		}
		var m map[string]any
		if err := json.Unmarshal(docs[i], &m); err != nil {
			return fmt.Errorf("%w: %s/%s: %v", ErrCorrupt, collection, id, err)
		}
		for k, v := range fields {
			m[k] = v
		}
		merged, err := json.Marshal(m)
		if err != nil {
			return fmt.Errorf("re-encode %s/%s: %w", collection, id, err)
		}
		docs[i] = merged
		return s.save(ctx, collection, docs)
	}
	return ErrNotFound
}

func (s *LocalStore) Delete(ctx context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs, err := s.load(ctx, collection)
	if err != nil {
		return err
	}
	kept := docs[:0]
	for _, doc := range docs {
		if docID(doc) != id {
			kept = append(kept, doc)
		}
	}
	return s.save(ctx, collection, kept)
}

func (s *LocalStore) Query(ctx context.Context, collection, field string, value any) ([]json.RawMessage, error) {
	want, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("encode query value: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	docs, err := s.load(ctx, collection)
	if err != nil {
		return nil, err
	}

	// Linear scan; there is no indexing at this layer.
	var matches []json.RawMessage
	for _, doc := range docs {
		var m map[string]json.RawMessage
		if err := json.Unmarshal(doc, &m); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, collection, err)
		}
		if got, ok := m[field]; ok && bytes.Equal(got, want) {
			matches = append(matches, doc)
		}
	}
	return matches, nil
}

// load reads and deserializes a full collection. Missing row means the
// collection was never written, which is an empty collection.
func (s *LocalStore) load(ctx context.Context, collection string) ([]json.RawMessage, error) {
	var row collectionRow
	err := s.db.WithContext(ctx).First(&row, "name = ?", collection).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if collection == CollectionSettings {
		// Settings is a bare object, not an array.
		if len(row.Data) == 0 {
			return nil, nil
		}
		return []json.RawMessage{json.RawMessage(row.Data)}, nil
	}

	var docs []json.RawMessage
	if err := json.Unmarshal(row.Data, &docs); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, collection, err)
	}
	return docs, nil
}

func (s *LocalStore) save(ctx context.Context, collection string, docs []json.RawMessage) error {
	var data []byte
	if collection == CollectionSettings {
		if len(docs) == 0 {
			data = []byte("{}")
		} else {
			data = docs[len(docs)-1]
		}
	} else {
		if docs == nil {
			docs = []json.RawMessage{}
		}
		var err error
		data, err = json.Marshal(docs)
		if err != nil {
			return fmt.Errorf("encode %s: %w", collection, err)
		}
	}

	row := collectionRow{Name: collection, Data: datatypes.JSON(data)}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// encodeDoc serializes doc and stamps the given id into it so the blob
// stays addressable on its own.
func encodeDoc(id string, doc any) (json.RawMessage, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("document must be a JSON object: %w", err)
	}
	m["id"] = id
	return json.Marshal(m)
}

func docID(doc json.RawMessage) string {
	var probe struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(doc, &probe); err != nil {
		return ""
	}
	return probe.ID
}
