// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"suiteprop/internal/domain/entity"
)

// ErrUserNotFound is returned when a user lookup has no match.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the read operations for user accounts.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByEmail retrieves a single user by exact, case-sensitive email match.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// ListByRole returns every user with the given role in insertion order.
	ListByRole(ctx context.Context, role entity.Role) ([]*entity.User, error)
}
