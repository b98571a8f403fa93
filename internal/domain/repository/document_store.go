// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"github.com/pkg/errors"
)

// Collection names of the mall directory.
const (
	CollectionShops    = "shops"
	CollectionProducts = "products"
	CollectionOffers   = "offers"
	CollectionUsers    = "users"
)

// Domain-specific errors for document persistence.
var (
	// ErrDocumentNotFound is returned when a document id has no match.
	ErrDocumentNotFound = errors.New("document not found")
)

// Sentinel marks a field value the store resolves at write time.
type Sentinel int

const (
	// ServerTimestamp is replaced by the store's own clock when written.
	ServerTimestamp Sentinel = iota + 1
)

// Document is one stored record. ID is assigned by the store.
type Document struct {
	ID     string
	Fields map[string]any
}

// Filter is an equality condition evaluated by the store.
type Filter struct {
	Field string
	Value any
}

// Eq builds an equality filter.
func Eq(field string, value any) Filter {
	return Filter{Field: field, Value: value}
}

// DocumentStore defines the document database operations used by the console.
type DocumentStore interface {
	// List returns every document of a collection in storage order.
	List(ctx context.Context, collection string) ([]Document, error)

	// Get returns one document or ErrDocumentNotFound.
	Get(ctx context.Context, collection, id string) (*Document, error)

	// Add stores a new document and returns the id assigned to it.
	Add(ctx context.Context, collection string, fields map[string]any) (string, error)

	// Set writes a document under a caller-chosen id, replacing any previous content.
	Set(ctx context.Context, collection, id string, fields map[string]any) error

	// Update merges fields into an existing document.
	Update(ctx context.Context, collection, id string, fields map[string]any) error

	// Delete removes a document by id.
	Delete(ctx context.Context, collection, id string) error

	// Query returns the documents matching every filter.
	Query(ctx context.Context, collection string, filters ...Filter) ([]Document, error)
}
