package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"mallconsole/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	localPushTimeout = 10 * time.Second
	headerEventType  = "X-Catalog-Event"
)

// pushEnvelope is the body Pub/Sub sends to a push subscription.
type pushEnvelope struct {
	Message      pushMessage `json:"message"`
	Subscription string      `json:"subscription"`
}

type pushMessage struct {
	Data        string            `json:"data"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	MessageID   string            `json:"messageId"`
	OrderingKey string            `json:"orderingKey,omitempty"`
	PublishTime string            `json:"publishTime"`
}

// localHTTPPublisher delivers catalog events straight to a push endpoint, the
// way a push subscription would, for development without Pub/Sub.
// Deliveries are sent one at a time so per-document order is kept.
type localHTTPPublisher struct {
	endpoint   string
	router     topicRouter
	httpClient *http.Client
	logger     *slog.Logger
	now        func() time.Time

	mu sync.Mutex
}

// newLocalHTTPPublisher creates a publisher pushing to endpoint.
func newLocalHTTPPublisher(endpoint string, router topicRouter, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:   endpoint,
		router:     router,
		httpClient: &http.Client{Timeout: localPushTimeout},
		logger:     logger,
		now:        time.Now,
	}
}

func localSubscription(topic string) string {
	return "projects/local/subscriptions/" + topic + "-push"
}

func (p *localHTTPPublisher) PublishCatalogEvent(ctx context.Context, event *service.CatalogEvent) error {
	msg, err := newCatalogMessage(event)
	if err != nil {
		return err
	}

	body, err := json.Marshal(pushEnvelope{
		Subscription: localSubscription(p.router.topic(event.Collection)),
		Message: pushMessage{
			Data:        base64.StdEncoding.EncodeToString(msg.data),
			Attributes:  msg.attributes,
			MessageID:   uuid.New().String(),
			OrderingKey: msg.orderingKey,
			PublishTime: p.now().UTC().Format(time.RFC3339Nano),
		},
	})
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(headerEventType, msg.eventType)
	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "push %s", msg.eventType)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("push %s: endpoint answered %d", msg.eventType, resp.StatusCode)
	}
	p.logger.Debug("Catalog event pushed", slog.String("event_type", msg.eventType), slog.String("endpoint", p.endpoint))

	return nil
}

func (p *localHTTPPublisher) Close() error {
	p.httpClient.CloseIdleConnections()

	return nil
}
