// Package firestore implements the document store on Cloud Firestore.
package firestore

import (
	"context"

	"mallconsole/internal/domain/repository"
	"mallconsole/internal/errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type documentStore struct {
	client *firestore.Client
}

// NewDocumentStore wraps a Firestore client.
func NewDocumentStore(client *firestore.Client) repository.DocumentStore {
	return &documentStore{client: client}
}

func (s *documentStore) List(ctx context.Context, collection string) ([]repository.Document, error) {
	snaps, err := s.client.Collection(collection).Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s", collection)
	}

	return toDocuments(snaps), nil
}

func (s *documentStore) Get(ctx context.Context, collection, id string) (*repository.Document, error) {
	snap, err := s.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrDocumentNotFound
		}

		return nil, errors.Wrapf(err, "failed to get %s/%s", collection, id)
	}

	return &repository.Document{ID: snap.Ref.ID, Fields: snap.Data()}, nil
}

func (s *documentStore) Add(ctx context.Context, collection string, fields map[string]any) (string, error) {
	ref, _, err := s.client.Collection(collection).Add(ctx, encodeFields(fields))
	if err != nil {
		return "", errors.Wrapf(err, "failed to add to %s", collection)
	}

	return ref.ID, nil
}

func (s *documentStore) Set(ctx context.Context, collection, id string, fields map[string]any) error {
	if _, err := s.client.Collection(collection).Doc(id).Set(ctx, encodeFields(fields)); err != nil {
		return errors.Wrapf(err, "failed to set %s/%s", collection, id)
	}

	return nil
}

func (s *documentStore) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	updates := make([]firestore.Update, 0, len(fields))
	for name, value := range encodeFields(fields) {
		updates = append(updates, firestore.Update{FieldPath: firestore.FieldPath{name}, Value: value})
	}

	if _, err := s.client.Collection(collection).Doc(id).Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrDocumentNotFound
		}

		return errors.Wrapf(err, "failed to update %s/%s", collection, id)
	}

	return nil
}

func (s *documentStore) Delete(ctx context.Context, collection, id string) error {
	if _, err := s.client.Collection(collection).Doc(id).Delete(ctx); err != nil {
		return errors.Wrapf(err, "failed to delete %s/%s", collection, id)
	}

	return nil
}

func (s *documentStore) Query(ctx context.Context, collection string, filters ...repository.Filter) ([]repository.Document, error) {
	query := s.client.Collection(collection).Query
	for _, f := range filters {
		query = query.Where(f.Field, "==", f.Value)
	}

	snaps, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to query %s", collection)
	}

	return toDocuments(snaps), nil
}

func toDocuments(snaps []*firestore.DocumentSnapshot) []repository.Document {
	docs := make([]repository.Document, 0, len(snaps))
	for _, snap := range snaps {
		docs = append(docs, repository.Document{ID: snap.Ref.ID, Fields: snap.Data()})
	}

	return docs
}

// encodeFields swaps store sentinels for their Firestore counterparts.
func encodeFields(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for name, value := range fields {
		if value == repository.ServerTimestamp {
			out[name] = firestore.ServerTimestamp
			continue
		}
		out[name] = value
	}

	return out
}
