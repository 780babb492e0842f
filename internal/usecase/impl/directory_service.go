// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"suiteprop/internal/domain/entity"
	"suiteprop/internal/domain/repository"
	"suiteprop/internal/errors"
	"suiteprop/internal/usecase"
)

// directoryService implements the DirectoryUsecase interface.
type directoryService struct {
	repos  repository.RepositoryFactory
	logger *slog.Logger
}

// NewDirectoryService is the constructor for directoryService.
func NewDirectoryService(repos repository.RepositoryFactory, logger *slog.Logger) usecase.DirectoryUsecase {
	return &directoryService{
		repos:  repos,
		logger: logger,
	}
}

// FindUserByEmail returns nil without an error when no user has the email.
func (srv *directoryService) FindUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, err := srv.repos.NewUserRepository().FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return user, nil
}

// scopeOf resolves userID to the scope it is allowed to see.
func (srv *directoryService) scopeOf(ctx context.Context, userID string) (entity.Scope, error) {
	user, err := srv.repos.NewUserRepository().FindByID(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return entity.Scope{}, errors.Wrap(err, "failed to resolve caller")
	}

	return entity.ScopeFor(user, userID), nil
}

func (srv *directoryService) UnitsVisibleTo(ctx context.Context, userID string) ([]*entity.Unit, error) {
	scope, err := srv.scopeOf(ctx, userID)
	if err != nil {
		return nil, err
	}

	return srv.units(ctx, scope)
}

func (srv *directoryService) BillsVisibleTo(ctx context.Context, userID string) ([]*entity.Bill, error) {
	scope, err := srv.scopeOf(ctx, userID)
	if err != nil {
		return nil, err
	}

	return srv.bills(ctx, scope)
}

func (srv *directoryService) MaintenanceRequestsVisibleTo(ctx context.Context, userID string) ([]*entity.MaintenanceRequest, error) {
	scope, err := srv.scopeOf(ctx, userID)
	if err != nil {
		return nil, err
	}

	return srv.maintenanceRequests(ctx, scope)
}

func (srv *directoryService) LeaseVisibleTo(ctx context.Context, userID string) (*entity.Lease, error) {
	scope, err := srv.scopeOf(ctx, userID)
	if err != nil {
		return nil, err
	}

	return srv.lease(ctx, scope)
}

func (srv *directoryService) UnitsForSession(ctx context.Context, session entity.Session) ([]*entity.Unit, error) {
	return srv.units(ctx, session.Scope())
}

func (srv *directoryService) BillsForSession(ctx context.Context, session entity.Session) ([]*entity.Bill, error) {
	return srv.bills(ctx, session.Scope())
}

func (srv *directoryService) MaintenanceRequestsForSession(ctx context.Context, session entity.Session) ([]*entity.MaintenanceRequest, error) {
	return srv.maintenanceRequests(ctx, session.Scope())
}

func (srv *directoryService) LeaseForSession(ctx context.Context, session entity.Session) (*entity.Lease, error) {
	return srv.lease(ctx, session.Scope())
}

// ResidentUnit returns the first unit occupied by residentID, or nil.
func (srv *directoryService) ResidentUnit(ctx context.Context, residentID string) (*entity.Unit, error) {
	units, err := srv.units(ctx, entity.Scope{OwnerID: residentID})
	if err != nil {
		return nil, err
	}
	if len(units) == 0 {
		return nil, nil
	}

	return units[0], nil
}

func (srv *directoryService) units(ctx context.Context, scope entity.Scope) ([]*entity.Unit, error) {
	units, err := srv.repos.NewUnitRepository().List(ctx, scope)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list units")
	}

	return units, nil
}

func (srv *directoryService) bills(ctx context.Context, scope entity.Scope) ([]*entity.Bill, error) {
	bills, err := srv.repos.NewBillRepository().List(ctx, scope)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bills")
	}

	return bills, nil
}

func (srv *directoryService) maintenanceRequests(ctx context.Context, scope entity.Scope) ([]*entity.MaintenanceRequest, error) {
	requests, err := srv.repos.NewMaintenanceRequestRepository().List(ctx, scope)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list maintenance requests")
	}

	return requests, nil
}

// lease returns the first visible lease of a resident scope. Leases are
// resident-only, so admin scope always yields nil.
func (srv *directoryService) lease(ctx context.Context, scope entity.Scope) (*entity.Lease, error) {
	if scope.Admin {
		return nil, nil
	}

	leases, err := srv.repos.NewLeaseRepository().List(ctx, scope)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list leases")
	}
	if len(leases) == 0 {
		return nil, nil
	}
	if len(leases) > 1 {
		srv.logger.WarnContext(ctx, "Resident has more than one lease, using the first",
			slog.String("residentID", scope.OwnerID),
			slog.Int("leases", len(leases)),
		)
	}

	return leases[0], nil
}

// EnrichBill resolves the unit and resident of bill. A nil bill enriches to nil.
func (srv *directoryService) EnrichBill(ctx context.Context, bill *entity.Bill) (*entity.EnrichedBill, error) {
	if bill == nil {
		return nil, nil
	}

	enriched, err := srv.EnrichBills(ctx, []*entity.Bill{bill})
	if err != nil {
		return nil, err
	}

	return enriched[0], nil
}

func (srv *directoryService) EnrichBills(ctx context.Context, bills []*entity.Bill) ([]*entity.EnrichedBill, error) {
	refs := newReferenceResolver(srv.repos)
	out := make([]*entity.EnrichedBill, 0, len(bills))

	for _, bill := range bills {
		if bill == nil {
			continue
		}
		unit, resident, err := refs.resolve(ctx, bill.UnitID, bill.ResidentID)
		if err != nil {
			return nil, err
		}
		out = append(out, &entity.EnrichedBill{Bill: bill, Unit: unit, Resident: resident})
	}

	return out, nil
}

func (srv *directoryService) EnrichMaintenanceRequest(ctx context.Context, request *entity.MaintenanceRequest) (*entity.EnrichedMaintenanceRequest, error) {
	if request == nil {
		return nil, nil
	}

	enriched, err := srv.EnrichMaintenanceRequests(ctx, []*entity.MaintenanceRequest{request})
	if err != nil {
		return nil, err
	}

	return enriched[0], nil
}

func (srv *directoryService) EnrichMaintenanceRequests(ctx context.Context, requests []*entity.MaintenanceRequest) ([]*entity.EnrichedMaintenanceRequest, error) {
	refs := newReferenceResolver(srv.repos)
	out := make([]*entity.EnrichedMaintenanceRequest, 0, len(requests))

	for _, request := range requests {
		if request == nil {
			continue
		}
		unit, resident, err := refs.resolve(ctx, request.UnitID, request.ResidentID)
		if err != nil {
			return nil, err
		}
		out = append(out, &entity.EnrichedMaintenanceRequest{MaintenanceRequest: request, Unit: unit, Resident: resident})
	}

	return out, nil
}

// referenceResolver looks up units and users by id, remembering misses too,
// so enriching a list costs one lookup per distinct id.
type referenceResolver struct {
	units     repository.UnitRepository
	users     repository.UserRepository
	unitCache map[string]*entity.Unit
	userCache map[string]*entity.User
}

func newReferenceResolver(repos repository.RepositoryFactory) *referenceResolver {
	return &referenceResolver{
		units:     repos.NewUnitRepository(),
		users:     repos.NewUserRepository(),
		unitCache: make(map[string]*entity.Unit),
		userCache: make(map[string]*entity.User),
	}
}

// resolve returns nil for ids with no matching record.
func (r *referenceResolver) resolve(ctx context.Context, unitID, residentID string) (*entity.Unit, *entity.User, error) {
	unit, ok := r.unitCache[unitID]
	if !ok {
		found, err := r.units.FindByID(ctx, unitID)
		if err != nil && !errors.Is(err, repository.ErrUnitNotFound) {
			return nil, nil, errors.Wrap(err, "failed to resolve unit")
		}
		unit = found
		r.unitCache[unitID] = found
	}

	resident, ok := r.userCache[residentID]
	if !ok {
		found, err := r.users.FindByID(ctx, residentID)
		if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
			return nil, nil, errors.Wrap(err, "failed to resolve resident")
		}
		resident = found
		r.userCache[residentID] = found
	}

	return unit, resident, nil
}
