// Package pubsub publishes dispatch pass reports to a message topic.
package pubsub

import (
	"context"
	"log/slog"

	"habitrack/config"
	"habitrack/internal/domain/constants"
	"habitrack/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher is used when pubsub.provider is empty.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishDispatchReport(_ context.Context, event *service.DispatchReportEvent) error {
	p.logger.Debug("[NoopPubSub] Dispatch report not published",
		slog.String("time_of_day", event.TimeOfDay),
		slog.Int("matched", event.Matched),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// busyPassPublisher drops reports of passes that matched no reminder. Most
// minutes of the day have none, and consumers only care about real work.
type busyPassPublisher struct {
	next service.EventPublisher
}

func (p *busyPassPublisher) PublishDispatchReport(ctx context.Context, event *service.DispatchReportEvent) error {
	if event == nil || event.Matched == 0 {
		return nil
	}

	return p.next.PublishDispatchReport(ctx, event)
}

func (p *busyPassPublisher) Close() error {
	return p.next.Close()
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher creates the dispatch report publisher selected by
// pubsub.provider and closes it on shutdown. Unless pubsub.publishEmptyPasses is
// set, passes without matches are not published.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, dispatch reports are not published")

		return &noopPublisher{logger: logger}, nil
	}

	publisher, err := newProviderPublisher(params.Ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			logger.Info("Closing dispatch report publisher")

			return publisher.Close()
		},
	})

	if !cfg.PublishEmptyPasses {
		publisher = &busyPassPublisher{next: publisher}
	}

	return publisher, nil
}

func newProviderPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Publishing dispatch reports over local HTTP",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("project ID and topic ID are required for google provider")
		}
		logger.Info("Publishing dispatch reports to Google Pub/Sub",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}
}
