package repository

import (
	"context"
	"errors"

	"suiteprop/internal/domain/entity"
)

// ErrUnitNotFound is returned when a unit lookup has no match.
var ErrUnitNotFound = errors.New("unit not found")

// UnitRepository defines the read operations for units.
type UnitRepository interface {
	FindByID(ctx context.Context, id string) (*entity.Unit, error)

	// List returns the units visible in scope, in insertion order.
	// A unit is owned by its resident.
	List(ctx context.Context, scope entity.Scope) ([]*entity.Unit, error)
}
