package usecase

import (
	"context"
	"time"

	"suiteprop/internal/domain/entity"
)

// FilterAll disables a list filter. An empty value does the same.
const FilterAll = "all"

// Roster filters.
const (
	RosterFilterWithBills       = "with-bills"
	RosterFilterWithMaintenance = "with-maintenance"
)

// PortalUsecase composes the read models the two portals display.
type PortalUsecase interface {
	AdminSummary(ctx context.Context, session entity.Session, ref time.Time) (*AdminSummary, error)
	ResidentSummary(ctx context.Context, session entity.Session) (*ResidentSummary, error)
	ResidentRoster(ctx context.Context, session entity.Session, filter RosterFilter) ([]*RosterEntry, error)

	ListBills(ctx context.Context, session entity.Session, filter BillFilter) ([]*entity.EnrichedBill, error)
	ListMaintenanceRequests(ctx context.Context, session entity.Session, filter MaintenanceFilter) ([]*entity.EnrichedMaintenanceRequest, error)
	ListDocuments(ctx context.Context, session entity.Session, filter DocumentFilter) ([]*entity.Document, error)
}

// --- Filters ---

// BillFilter narrows a bill list. Search matches description, resident name,
// unit address and amount.
type BillFilter struct {
	Status string `query:"status"`
	Type   string `query:"type"`
	Search string `query:"search"`
}

// MaintenanceFilter narrows a ticket list. Search matches title, description,
// resident name and unit address.
type MaintenanceFilter struct {
	Status   string `query:"status"`
	Priority string `query:"priority"`
	Search   string `query:"search"`
}

// DocumentFilter narrows the document list. Type matches case-insensitively.
type DocumentFilter struct {
	Type   string `query:"type"`
	Search string `query:"search"`
}

// RosterFilter narrows the resident roster. Search matches name, email and unit address.
type RosterFilter struct {
	Status string `query:"status"`
	Search string `query:"search"`
}

// --- Output DTOs ---

// UnitCounts breaks units down by status.
type UnitCounts struct {
	Total       int `json:"total"`
	Occupied    int `json:"occupied"`
	Vacant      int `json:"vacant"`
	Maintenance int `json:"maintenance"`
}

// AdminSummary is the admin dashboard.
type AdminSummary struct {
	Units                 UnitCounts            `json:"units"`
	Residents             int                   `json:"residents"`
	PendingBills          int                   `json:"pendingBills"`
	OverdueBills          int                   `json:"overdueBills"`
	PendingMaintenance    int                   `json:"pendingMaintenance"`
	InProgressMaintenance int                   `json:"inProgressMaintenance"`
	Revenue               []entity.RevenuePoint `json:"revenue"`
}

// BillCounts breaks bills down by status.
type BillCounts struct {
	Pending int `json:"pending"`
	Overdue int `json:"overdue"`
	Paid    int `json:"paid"`
}

// ResidentSummary is the resident dashboard.
type ResidentSummary struct {
	Unit            *entity.Unit                         `json:"unit"`
	Bills           BillCounts                           `json:"bills"`
	TotalOwed       float64                              `json:"totalOwed"` // pending + overdue
	OpenMaintenance int                                  `json:"openMaintenance"`
	Lease           *entity.Lease                        `json:"lease"`
	RecentBills     []*entity.EnrichedBill               `json:"recentBills"`
	RecentRequests  []*entity.EnrichedMaintenanceRequest `json:"recentRequests"`
}

// RosterEntry is one resident with everything attached to them.
type RosterEntry struct {
	*entity.User
	Unit                *entity.Unit                 `json:"unit"`
	Bills               []*entity.Bill               `json:"bills"`
	MaintenanceRequests []*entity.MaintenanceRequest `json:"maintenanceRequests"`
	TotalBills          int                          `json:"totalBills"`
	OverdueBills        int                          `json:"overdueBills"`
	PendingMaintenance  int                          `json:"pendingMaintenance"`
}
