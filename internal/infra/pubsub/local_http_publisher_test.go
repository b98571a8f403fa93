package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mallconsole/config"
	"mallconsole/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishCatalogEvent(t *testing.T) {
	var (
		received  pushEnvelope
		requestID string
		eventType string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		eventType = r.Header.Get(headerEventType)
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			w.WriteHeader(http.StatusBadRequest)

			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	router := newTopicRouter(&config.PubSubConfig{Topics: map[string]string{"offers": "catalog-offers"}})
	publisher := newLocalHTTPPublisher(server.URL, router, newDiscardLogger())
	event := &service.CatalogEvent{
		RequestID:  "req-1",
		Collection: "offers",
		DocumentID: "o1",
		Action:     service.CatalogActionUpdated,
		OccurredAt: time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC),
	}

	require.NoError(t, publisher.PublishCatalogEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "catalog.offers.updated", eventType)
	assert.Equal(t, "projects/local/subscriptions/catalog-offers-push", received.Subscription)
	assert.Equal(t, "offers/o1", received.Message.OrderingKey)
	assert.NotEmpty(t, received.Message.MessageID)
	assert.Equal(t, "req-1", received.Message.Attributes[attrRequestID])

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.CatalogEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, *event, decoded)
	assert.NoError(t, publisher.Close())
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := newLocalHTTPPublisher(server.URL, newTopicRouter(&config.PubSubConfig{}), newDiscardLogger())
	err := publisher.PublishCatalogEvent(context.Background(), &service.CatalogEvent{
		Collection: "shops", DocumentID: "s1", Action: service.CatalogActionDeleted,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog.shops.deleted")
	assert.Contains(t, err.Error(), "500")
}
