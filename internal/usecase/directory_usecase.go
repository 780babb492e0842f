// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"suiteprop/internal/domain/entity"
)

// DirectoryUsecase answers role-scoped queries over the property directory.
//
// The ...VisibleTo methods resolve the caller by id. The ...ForSession methods
// take an already authenticated session. Both apply the same scope rule and
// never report absence as an error.
type DirectoryUsecase interface {
	FindUserByEmail(ctx context.Context, email string) (*entity.User, error)

	UnitsVisibleTo(ctx context.Context, userID string) ([]*entity.Unit, error)
	BillsVisibleTo(ctx context.Context, userID string) ([]*entity.Bill, error)
	MaintenanceRequestsVisibleTo(ctx context.Context, userID string) ([]*entity.MaintenanceRequest, error)
	LeaseVisibleTo(ctx context.Context, userID string) (*entity.Lease, error)

	UnitsForSession(ctx context.Context, session entity.Session) ([]*entity.Unit, error)
	BillsForSession(ctx context.Context, session entity.Session) ([]*entity.Bill, error)
	MaintenanceRequestsForSession(ctx context.Context, session entity.Session) ([]*entity.MaintenanceRequest, error)
	LeaseForSession(ctx context.Context, session entity.Session) (*entity.Lease, error)

	// ResidentUnit derives a resident's unit from the units' occupancy edge.
	ResidentUnit(ctx context.Context, residentID string) (*entity.Unit, error)

	// Enrich* attach the referenced unit and resident. Nil inputs yield nil
	// and are dropped from batches.
	EnrichBill(ctx context.Context, bill *entity.Bill) (*entity.EnrichedBill, error)
	EnrichBills(ctx context.Context, bills []*entity.Bill) ([]*entity.EnrichedBill, error)
	EnrichMaintenanceRequest(ctx context.Context, request *entity.MaintenanceRequest) (*entity.EnrichedMaintenanceRequest, error)
	EnrichMaintenanceRequests(ctx context.Context, requests []*entity.MaintenanceRequest) ([]*entity.EnrichedMaintenanceRequest, error)
}
