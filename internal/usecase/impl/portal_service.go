package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"suiteprop/internal/domain/entity"
	domainerrors "suiteprop/internal/domain/errors"
	"suiteprop/internal/domain/repository"
	"suiteprop/internal/errors"
	"suiteprop/internal/usecase"
)

const recentItemsLimit = 3

// portalService implements the PortalUsecase interface.
type portalService struct {
	directory usecase.DirectoryUsecase
	revenue   usecase.RevenueUsecase
	repos     repository.RepositoryFactory
	months    int
	logger    *slog.Logger
}

// NewPortalService is the constructor for portalService. revenueMonths is the
// chart length on the admin dashboard.
func NewPortalService(
	directory usecase.DirectoryUsecase,
	revenue usecase.RevenueUsecase,
	repos repository.RepositoryFactory,
	revenueMonths int,
	logger *slog.Logger,
) usecase.PortalUsecase {
	return &portalService{
		directory: directory,
		revenue:   revenue,
		repos:     repos,
		months:    revenueMonths,
		logger:    logger,
	}
}

func requireAdmin(session entity.Session) error {
	if !session.IsAdmin() {
		return errors.Wrap(domainerrors.ErrForbidden, "admin scope required")
	}

	return nil
}

func requireResident(session entity.Session) error {
	if session.IsAdmin() {
		return errors.Wrap(domainerrors.ErrForbidden, "resident portal only")
	}

	return nil
}

func (srv *portalService) AdminSummary(ctx context.Context, session entity.Session, ref time.Time) (*usecase.AdminSummary, error) {
	if err := requireAdmin(session); err != nil {
		return nil, err
	}

	units, err := srv.directory.UnitsForSession(ctx, session)
	if err != nil {
		return nil, err
	}
	bills, err := srv.directory.BillsForSession(ctx, session)
	if err != nil {
		return nil, err
	}
	requests, err := srv.directory.MaintenanceRequestsForSession(ctx, session)
	if err != nil {
		return nil, err
	}
	residents, err := srv.repos.NewUserRepository().ListByRole(ctx, entity.RoleResident)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list residents")
	}
	series, err := srv.revenue.MonthlyRentSeries(ctx, ref, srv.months)
	if err != nil {
		return nil, err
	}

	summary := &usecase.AdminSummary{
		Units:     countUnits(units),
		Residents: len(residents),
		Revenue:   series,
	}
	for _, bill := range bills {
		switch bill.Status {
		case entity.BillStatusPending:
			summary.PendingBills++
		case entity.BillStatusOverdue:
			summary.OverdueBills++
		}
	}
	for _, request := range requests {
		switch request.Status {
		case entity.MaintenanceStatusPending:
			summary.PendingMaintenance++
		case entity.MaintenanceStatusInProgress:
			summary.InProgressMaintenance++
		}
	}

	return summary, nil
}

func countUnits(units []*entity.Unit) usecase.UnitCounts {
	counts := usecase.UnitCounts{Total: len(units)}
	for _, unit := range units {
		switch unit.Status {
		case entity.UnitStatusOccupied:
			counts.Occupied++
		case entity.UnitStatusVacant:
			counts.Vacant++
		case entity.UnitStatusMaintenance:
			counts.Maintenance++
		}
	}

	return counts
}

func (srv *portalService) ResidentSummary(ctx context.Context, session entity.Session) (*usecase.ResidentSummary, error) {
	if err := requireResident(session); err != nil {
		return nil, err
	}

	unit, err := srv.directory.ResidentUnit(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	bills, err := srv.directory.BillsForSession(ctx, session)
	if err != nil {
		return nil, err
	}
	requests, err := srv.directory.MaintenanceRequestsForSession(ctx, session)
	if err != nil {
		return nil, err
	}
	lease, err := srv.directory.LeaseForSession(ctx, session)
	if err != nil {
		return nil, err
	}

	summary := &usecase.ResidentSummary{Unit: unit, Lease: lease}
	for _, bill := range bills {
		switch bill.Status {
		case entity.BillStatusPending:
			summary.Bills.Pending++
		case entity.BillStatusOverdue:
			summary.Bills.Overdue++
		case entity.BillStatusPaid:
			summary.Bills.Paid++
		}
		if bill.Status.IsOutstanding() {
			summary.TotalOwed += bill.Amount
		}
	}
	for _, request := range requests {
		if request.Status.IsOpen() {
			summary.OpenMaintenance++
		}
	}

	if summary.RecentBills, err = srv.directory.EnrichBills(ctx, firstN(bills, recentItemsLimit)); err != nil {
		return nil, err
	}
	if summary.RecentRequests, err = srv.directory.EnrichMaintenanceRequests(ctx, firstN(requests, recentItemsLimit)); err != nil {
		return nil, err
	}

	return summary, nil
}

func firstN[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}

	return items
}

func (srv *portalService) ResidentRoster(ctx context.Context, session entity.Session, filter usecase.RosterFilter) ([]*usecase.RosterEntry, error) {
	if err := requireAdmin(session); err != nil {
		return nil, err
	}

	residents, err := srv.repos.NewUserRepository().ListByRole(ctx, entity.RoleResident)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list residents")
	}

	roster := make([]*usecase.RosterEntry, 0, len(residents))
	for _, resident := range residents {
		entry, err := srv.rosterEntry(ctx, resident)
		if err != nil {
			return nil, err
		}
		if matchesRosterFilter(entry, filter) {
			roster = append(roster, entry)
		}
	}

	return roster, nil
}

func (srv *portalService) rosterEntry(ctx context.Context, resident *entity.User) (*usecase.RosterEntry, error) {
	residentSession := entity.SessionOf(resident)

	unit, err := srv.directory.ResidentUnit(ctx, resident.ID)
	if err != nil {
		return nil, err
	}
	bills, err := srv.directory.BillsForSession(ctx, residentSession)
	if err != nil {
		return nil, err
	}
	requests, err := srv.directory.MaintenanceRequestsForSession(ctx, residentSession)
	if err != nil {
		return nil, err
	}

	entry := &usecase.RosterEntry{
		User:                resident,
		Unit:                unit,
		Bills:               bills,
		MaintenanceRequests: requests,
		TotalBills:          len(bills),
	}
	for _, bill := range bills {
		if bill.Status == entity.BillStatusOverdue {
			entry.OverdueBills++
		}
	}
	for _, request := range requests {
		if request.Status == entity.MaintenanceStatusPending {
			entry.PendingMaintenance++
		}
	}

	return entry, nil
}

func matchesRosterFilter(entry *usecase.RosterEntry, filter usecase.RosterFilter) bool {
	switch filter.Status {
	case "", usecase.FilterAll:
	case usecase.RosterFilterWithBills:
		if entry.OverdueBills == 0 {
			return false
		}
	case usecase.RosterFilterWithMaintenance:
		if entry.PendingMaintenance == 0 {
			return false
		}
	default:
		return false
	}

	fields := []string{entry.Name, entry.Email}
	if entry.Unit != nil {
		fields = append(fields, entry.Unit.Address)
	}

	return containsFold(filter.Search, fields...)
}

func (srv *portalService) ListBills(ctx context.Context, session entity.Session, filter usecase.BillFilter) ([]*entity.EnrichedBill, error) {
	bills, err := srv.directory.BillsForSession(ctx, session)
	if err != nil {
		return nil, err
	}
	enriched, err := srv.directory.EnrichBills(ctx, bills)
	if err != nil {
		return nil, err
	}

	return filterSlice(enriched, func(b *entity.EnrichedBill) bool {
		return matchesOption(filter.Status, string(b.Status)) &&
			matchesOption(filter.Type, string(b.Type)) &&
			(containsFold(filter.Search, b.Description, residentName(b.Resident), unitAddress(b.Unit)) ||
				strings.Contains(strconv.FormatFloat(b.Amount, 'f', -1, 64), strings.TrimSpace(filter.Search)))
	}), nil
}

func (srv *portalService) ListMaintenanceRequests(ctx context.Context, session entity.Session, filter usecase.MaintenanceFilter) ([]*entity.EnrichedMaintenanceRequest, error) {
	requests, err := srv.directory.MaintenanceRequestsForSession(ctx, session)
	if err != nil {
		return nil, err
	}
	enriched, err := srv.directory.EnrichMaintenanceRequests(ctx, requests)
	if err != nil {
		return nil, err
	}

	return filterSlice(enriched, func(r *entity.EnrichedMaintenanceRequest) bool {
		return matchesOption(filter.Status, string(r.Status)) &&
			matchesOption(filter.Priority, string(r.Priority)) &&
			containsFold(filter.Search, r.Title, r.Description, residentName(r.Resident), unitAddress(r.Unit))
	}), nil
}

func (srv *portalService) ListDocuments(ctx context.Context, session entity.Session, filter usecase.DocumentFilter) ([]*entity.Document, error) {
	if err := requireAdmin(session); err != nil {
		return nil, err
	}

	documents, err := srv.repos.NewDocumentRepository().List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list documents")
	}

	return filterSlice(documents, func(d *entity.Document) bool {
		return (isFilterAll(filter.Type) || strings.EqualFold(filter.Type, string(d.Type))) &&
			containsFold(filter.Search, d.Name)
	}), nil
}

// --- filter helpers ---

func isFilterAll(value string) bool {
	value = strings.TrimSpace(value)

	return value == "" || value == usecase.FilterAll
}

func matchesOption(filter, value string) bool {
	return isFilterAll(filter) || filter == value
}

// containsFold reports whether any field contains term, ignoring case.
// An empty term matches everything.
func containsFold(term string, fields ...string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}

	return false
}

func filterSlice[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}

	return out
}

func residentName(u *entity.User) string {
	if u == nil {
		return ""
	}

	return u.Name
}

func unitAddress(u *entity.Unit) string {
	if u == nil {
		return ""
	}

	return u.Address
}
