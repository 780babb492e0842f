package repository

import (
	"context"

	"suiteprop/internal/domain/entity"
)

// LeaseRepository defines the read operations for leases.
type LeaseRepository interface {
	// List returns the leases visible in scope, in insertion order.
	List(ctx context.Context, scope entity.Scope) ([]*entity.Lease, error)
}
