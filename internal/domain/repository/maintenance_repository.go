package repository

import (
	"context"

	"suiteprop/internal/domain/entity"
)

// MaintenanceRequestRepository defines the read operations for repair tickets.
type MaintenanceRequestRepository interface {
	// List returns the tickets visible in scope, in insertion order.
	List(ctx context.Context, scope entity.Scope) ([]*entity.MaintenanceRequest, error)
}
