// Package service defines interfaces for stateless domain services.
// Implementations live under internal/infra.
package service

import (
	"context"

	"suiteprop/internal/domain/entity"
)

// MaintenanceRequestedEvent is published when a resident submits a repair ticket.
// Whatever owns the ticket store consumes it; this service never writes tickets back.
type MaintenanceRequestedEvent struct {
	RequestID string                     `json:"request_id,omitempty"` // For distributed tracing
	Request   *entity.MaintenanceRequest `json:"maintenance_request"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishMaintenanceRequested publishes a submitted repair ticket.
	PublishMaintenanceRequested(ctx context.Context, event *MaintenanceRequestedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
