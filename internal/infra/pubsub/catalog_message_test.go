package pubsub

import (
	"context"
	"testing"

	"mallconsole/config"
	"mallconsole/internal/domain/constants"
	"mallconsole/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalogMessage(t *testing.T) {
	msg, err := newCatalogMessage(&service.CatalogEvent{
		Collection: "products", DocumentID: "p1", Action: service.CatalogActionCreated,
	})
	require.NoError(t, err)

	assert.Equal(t, "catalog.products.created", msg.eventType)
	assert.Equal(t, "products/p1", msg.orderingKey)
	assert.Equal(t, map[string]string{
		attrEventType:  "catalog.products.created",
		attrCollection: "products",
		attrDocumentID: "p1",
	}, msg.attributes)
	assert.JSONEq(t, `{"collection":"products","document_id":"p1","action":"created","occurred_at":"0001-01-01T00:00:00Z"}`, string(msg.data))
}

func TestTopicRouter(t *testing.T) {
	router := newTopicRouter(&config.PubSubConfig{
		TopicID: "catalog",
		Topics:  map[string]string{"offers": "offer-changes", "shops": "", "products": "catalog"},
	})

	assert.Equal(t, "offer-changes", router.topic("offers"))
	assert.Equal(t, "catalog", router.topic("shops"))
	assert.Equal(t, "catalog", router.topic("products"))
	assert.Equal(t, []string{"catalog", "offer-changes"}, router.topics())

	assert.Equal(t, defaultCatalogTopic, newTopicRouter(&config.PubSubConfig{}).topic("shops"))
}

func TestNewPublisher_Selection(t *testing.T) {
	ctx := context.Background()
	logger := newDiscardLogger()

	publisher, err := newPublisher(ctx, nil, logger)
	require.NoError(t, err)
	assert.IsType(t, &noopPublisher{}, publisher)
	assert.NoError(t, publisher.PublishCatalogEvent(ctx, &service.CatalogEvent{Collection: "shops"}))

	publisher, err = newPublisher(ctx, &config.PubSubConfig{
		Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8085/events",
	}, logger)
	require.NoError(t, err)
	assert.IsType(t, &localHTTPPublisher{}, publisher)

	tests := []struct {
		name string
		cfg  *config.PubSubConfig
		want string
	}{
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, want: "localEndpoint"},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}, want: "projectId"},
		{name: "unknown provider", cfg: &config.PubSubConfig{Provider: "kafka"}, want: "unknown pubsub provider"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newPublisher(ctx, tt.cfg, logger)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
