package pubsub

import (
	"context"
	"log/slog"

	"suiteprop/internal/domain/service"
)

// noopPublisher is a no-op implementation when Pub/Sub is disabled
type noopPublisher struct {
	logger *slog.Logger
}

// NewNoopPublisher returns a publisher that only logs.
func NewNoopPublisher(logger *slog.Logger) service.EventPublisher {
	return &noopPublisher{logger: logger}
}

func (p *noopPublisher) PublishMaintenanceRequested(ctx context.Context, event *service.MaintenanceRequestedEvent) error {
	if err := validateEvent(event); err != nil {
		return err
	}

	p.logger.DebugContext(ctx, "[NoopPubSub] Event publishing disabled, skipping",
		slog.String("maintenance_request_id", event.Request.ID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}
