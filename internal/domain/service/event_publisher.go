package service

import (
	"context"
	"time"
)

// CatalogAction names the mutation behind a CatalogEvent.
type CatalogAction string

const (
	CatalogActionCreated CatalogAction = "created"
	CatalogActionUpdated CatalogAction = "updated"
	CatalogActionDeleted CatalogAction = "deleted"
)

// CatalogEvent is emitted after a shop, product or offer has been changed
type CatalogEvent struct {
	RequestID  string        `json:"request_id,omitempty"` // For distributed tracing
	Collection string        `json:"collection"`
	DocumentID string        `json:"document_id"`
	Action     CatalogAction `json:"action"`
	OccurredAt time.Time     `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishCatalogEvent publishes a catalog change for downstream consumers
	PublishCatalogEvent(ctx context.Context, event *CatalogEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
