package usecase

import (
	"context"

	"suiteprop/internal/domain/entity"
)

// MaintenanceUsecase accepts repair tickets from residents.
type MaintenanceUsecase interface {
	// Submit builds a pending ticket for the resident's unit and publishes it.
	// The directory itself is not changed.
	Submit(ctx context.Context, session entity.Session, input *SubmitMaintenanceInput) (*entity.MaintenanceRequest, error)
}

// --- Input DTOs ---

// SubmitMaintenanceInput defines the data a resident provides for a ticket.
type SubmitMaintenanceInput struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description" validate:"required,max=4000"`
	Priority    string `json:"priority" validate:"required,oneof=low medium high emergency"`
}
