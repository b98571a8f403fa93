package pubsub

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"mallconsole/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePublisher sends catalog events to Cloud Pub/Sub with message ordering
// enabled, one publisher per topic.
type googlePublisher struct {
	client *pubsub.Client
	router topicRouter
	logger *slog.Logger

	mu         sync.Mutex
	publishers map[string]*pubsub.Publisher
}

// newGooglePublisher connects to projectID and checks that every routed topic exists.
func newGooglePublisher(ctx context.Context, projectID string, router topicRouter, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "create pubsub client")
	}

	for _, topic := range router.topics() {
		name := fmt.Sprintf("projects/%s/topics/%s", projectID, topic)
		if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: name}); err != nil {
			_ = client.Close()

			return nil, errors.Wrapf(err, "catalog topic %s", topic)
		}
	}

	return &googlePublisher{
		client:     client,
		router:     router,
		logger:     logger,
		publishers: make(map[string]*pubsub.Publisher),
	}, nil
}

func (p *googlePublisher) publisherFor(topic string) *pubsub.Publisher {
	p.mu.Lock()
	defer p.mu.Unlock()

	pub, ok := p.publishers[topic]
	if !ok {
		pub = p.client.Publisher(topic)
		pub.EnableMessageOrdering = true
		p.publishers[topic] = pub
	}

	return pub
}

// PublishCatalogEvent waits until Pub/Sub has accepted the message.
func (p *googlePublisher) PublishCatalogEvent(ctx context.Context, event *service.CatalogEvent) error {
	msg, err := newCatalogMessage(event)
	if err != nil {
		return err
	}

	topic := p.router.topic(event.Collection)
	pub := p.publisherFor(topic)
	serverID, err := pub.Publish(ctx, &pubsub.Message{
		Data:        msg.data,
		Attributes:  msg.attributes,
		OrderingKey: msg.orderingKey,
	}).Get(ctx)
	if err != nil {
		// a failed publish pauses its ordering key until resumed
		pub.ResumePublish(msg.orderingKey)

		return errors.Wrapf(err, "publish %s to %s", msg.eventType, topic)
	}

	p.logger.Debug("Catalog event published",
		slog.String("event_type", msg.eventType),
		slog.String("topic", topic),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close flushes every topic publisher and closes the client.
func (p *googlePublisher) Close() error {
	p.mu.Lock()
	for topic, pub := range p.publishers {
		pub.Stop()
		delete(p.publishers, topic)
	}
	p.mu.Unlock()

	return errors.WithStack(p.client.Close())
}
