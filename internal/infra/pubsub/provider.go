// Package pubsub publishes catalog change events for downstream consumers.
package pubsub

import (
	"context"
	"log/slog"

	"mallconsole/config"
	"mallconsole/internal/domain/constants"
	"mallconsole/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher drops events when no provider is configured.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishCatalogEvent(_ context.Context, event *service.CatalogEvent) error {
	p.logger.Debug("Catalog event dropped",
		slog.String("collection", event.Collection),
		slog.String("document_id", event.DocumentID),
		slog.String("action", string(event.Action)),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher builds the publisher named by pubsub.provider and flushes it on shutdown.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	publisher, err := newPublisher(params.Ctx, params.Config.PubSub, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}

func newPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg == nil || cfg.Provider == "" {
		logger.Info("Catalog events disabled")

		return &noopPublisher{logger: logger}, nil
	}

	router := newTopicRouter(cfg)
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("pubsub.localEndpoint is required for the local provider")
		}
		logger.Info("Pushing catalog events to local endpoint", slog.String("endpoint", cfg.LocalEndpoint))

		return newLocalHTTPPublisher(cfg.LocalEndpoint, router, logger), nil

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("pubsub.projectId is required for the google provider")
		}
		logger.Info("Publishing catalog events to Pub/Sub",
			slog.String("project_id", cfg.ProjectID),
			slog.Any("topics", router.topics()),
		)

		return newGooglePublisher(ctx, cfg.ProjectID, router, logger)

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}
}

// Module provides the catalog event publisher
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
