// Package memory implements the document store in process with gocloud memdocstore.
// It backs local development and tests.
package memory

import (
	"context"
	"io"
	"sort"
	"sync"
	"time"

	"mallconsole/internal/domain/repository"
	"mallconsole/internal/errors"

	"github.com/google/uuid"
	"gocloud.dev/docstore"
	"gocloud.dev/docstore/memdocstore"
	"gocloud.dev/gcerrors"
)

const (
	keyField      = "id"
	revisionField = docstore.DefaultRevisionField
)

// DocumentStore keeps one memdocstore collection per collection name.
type DocumentStore struct {
	mu          sync.Mutex
	collections map[string]*docstore.Collection
	now         func() time.Time
}

var _ repository.DocumentStore = (*DocumentStore)(nil)

// NewDocumentStore creates an empty store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		collections: make(map[string]*docstore.Collection),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *DocumentStore) collection(name string) (*docstore.Collection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if coll, ok := s.collections[name]; ok {
		return coll, nil
	}

	coll, err := memdocstore.OpenCollection(keyField, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open collection %s", name)
	}
	s.collections[name] = coll

	return coll, nil
}

func (s *DocumentStore) List(ctx context.Context, collection string) ([]repository.Document, error) {
	return s.Query(ctx, collection)
}

func (s *DocumentStore) Get(ctx context.Context, collection, id string) (*repository.Document, error) {
	coll, err := s.collection(collection)
	if err != nil {
		return nil, err
	}

	doc := map[string]any{keyField: id}
	if err := coll.Get(ctx, doc); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, repository.ErrDocumentNotFound
		}

		return nil, errors.Wrapf(err, "failed to get %s/%s", collection, id)
	}
	result := toDocument(doc)

	return &result, nil
}

func (s *DocumentStore) Add(ctx context.Context, collection string, fields map[string]any) (string, error) {
	coll, err := s.collection(collection)
	if err != nil {
		return "", err
	}

	id := uuid.New().String()
	doc := s.encode(fields)
	doc[keyField] = id
	if err := coll.Create(ctx, doc); err != nil {
		return "", errors.Wrapf(err, "failed to add to %s", collection)
	}

	return id, nil
}

func (s *DocumentStore) Set(ctx context.Context, collection, id string, fields map[string]any) error {
	coll, err := s.collection(collection)
	if err != nil {
		return err
	}

	doc := s.encode(fields)
	doc[keyField] = id
	if err := coll.Put(ctx, doc); err != nil {
		return errors.Wrapf(err, "failed to set %s/%s", collection, id)
	}

	return nil
}

func (s *DocumentStore) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	coll, err := s.collection(collection)
	if err != nil {
		return err
	}

	mods := docstore.Mods{}
	for name, value := range s.encode(fields) {
		mods[docstore.FieldPath(name)] = value
	}
	if len(mods) == 0 {
		return nil
	}

	if err := coll.Update(ctx, map[string]any{keyField: id}, mods); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return repository.ErrDocumentNotFound
		}

		return errors.Wrapf(err, "failed to update %s/%s", collection, id)
	}

	return nil
}

func (s *DocumentStore) Delete(ctx context.Context, collection, id string) error {
	coll, err := s.collection(collection)
	if err != nil {
		return err
	}

	if err := coll.Delete(ctx, map[string]any{keyField: id}); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "failed to delete %s/%s", collection, id)
	}

	return nil
}

// Query returns matching documents ordered by creation time, then id.
// Filters are evaluated here because memdocstore only compares numbers, strings and times.
func (s *DocumentStore) Query(ctx context.Context, collection string, filters ...repository.Filter) ([]repository.Document, error) {
	coll, err := s.collection(collection)
	if err != nil {
		return nil, err
	}

	iter := coll.Query().Get(ctx)
	defer iter.Stop()

	var docs []repository.Document
	for {
		doc := map[string]any{}
		err := iter.Next(ctx, doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to query %s", collection)
		}

		result := toDocument(doc)
		if matches(result.Fields, filters) {
			docs = append(docs, result)
		}
	}

	sort.SliceStable(docs, func(i, j int) bool {
		ti, _ := docs[i].Fields["createdAt"].(time.Time)
		tj, _ := docs[j].Fields["createdAt"].(time.Time)
		if !ti.Equal(tj) {
			return ti.Before(tj)
		}

		return docs[i].ID < docs[j].ID
	})

	return docs, nil
}

// Close releases every collection.
func (s *DocumentStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error
	for name, coll := range s.collections {
		if err := coll.Close(); err != nil {
			errs = append(errs, errors.Wrapf(err, "failed to close collection %s", name))
		}
		delete(s.collections, name)
	}

	return errors.Join(errs...)
}

func (s *DocumentStore) encode(fields map[string]any) map[string]any {
	doc := make(map[string]any, len(fields)+1)
	for name, value := range fields {
		if value == repository.ServerTimestamp {
			doc[name] = s.now()
			continue
		}
		doc[name] = value
	}

	return doc
}

func toDocument(doc map[string]any) repository.Document {
	id, _ := doc[keyField].(string)
	fields := make(map[string]any, len(doc))
	for name, value := range doc {
		if name == keyField || name == revisionField {
			continue
		}
		fields[name] = value
	}

	return repository.Document{ID: id, Fields: fields}
}

func matches(fields map[string]any, filters []repository.Filter) bool {
	for _, f := range filters {
		if fields[f.Field] != f.Value {
			return false
		}
	}

	return true
}
