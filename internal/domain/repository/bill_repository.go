package repository

import (
	"context"

	"suiteprop/internal/domain/entity"
)

// BillRepository defines the read operations for bills.
type BillRepository interface {
	// List returns the bills visible in scope, in insertion order.
	List(ctx context.Context, scope entity.Scope) ([]*entity.Bill, error)
}
