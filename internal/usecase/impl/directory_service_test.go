package impl

import (
	"context"
	"testing"

	"suiteprop/internal/domain/entity"
	"suiteprop/internal/infra/persistence/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestDirectory(store *memory.Store) *directoryService {
	return NewDirectoryService(store, newDiscardLogger()).(*directoryService)
}

func unitIDs(units []*entity.Unit) []string {
	return collectIDs(units, func(u *entity.Unit) string { return u.ID })
}

func billIDs(bills []*entity.Bill) []string {
	return collectIDs(bills, func(b *entity.Bill) string { return b.ID })
}

func TestDirectoryService_FindUserByEmail(t *testing.T) {
	srv := newTestDirectory(memory.NewSeedStore())
	ctx := context.Background()

	admin, err := srv.FindUserByEmail(ctx, "admin@demo.com")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, "admin-1", admin.ID)
	assert.Equal(t, entity.RoleAdmin, admin.Role)

	nobody, err := srv.FindUserByEmail(ctx, "nobody@x.com")
	require.NoError(t, err)
	assert.Nil(t, nobody)

	upper, err := srv.FindUserByEmail(ctx, "JOHN.DOE@demo.com")
	require.NoError(t, err)
	assert.Nil(t, upper)
}

func TestDirectoryService_UnitsVisibleTo(t *testing.T) {
	srv := newTestDirectory(memory.NewSeedStore())
	ctx := context.Background()

	tests := []struct {
		userID string
		want   []string
	}{
		{userID: "admin-1", want: []string{"unit-1", "unit-2", "unit-3", "unit-4"}},
		{userID: "resident-1", want: []string{"unit-1"}},
		{userID: "resident-2", want: []string{"unit-2"}},
		{userID: "ghost", want: []string{}},
		{userID: "", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.userID, func(t *testing.T) {
			units, err := srv.UnitsVisibleTo(ctx, tt.userID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, unitIDs(units))
		})
	}
}

func TestDirectoryService_ResidentScopeMatchesOwnership(t *testing.T) {
	data := memory.SeedDataset()
	srv := newTestDirectory(memory.NewStore(data))
	ctx := context.Background()

	for _, user := range data.Users {
		if user.Role != entity.RoleResident {
			continue
		}

		var want []string
		for _, unit := range data.Units {
			if unit.ResidentID == user.ID {
				want = append(want, unit.ID)
			}
		}

		units, err := srv.UnitsVisibleTo(ctx, user.ID)
		require.NoError(t, err)
		assert.ElementsMatch(t, want, unitIDs(units), user.ID)
	}
}

func TestDirectoryService_UnknownRoleFailsClosed(t *testing.T) {
	data := memory.SeedDataset()
	data.Users = append(data.Users,
		&entity.User{ID: "ops-1", Email: "ops@demo.com", Role: entity.Role("superuser")},
		&entity.User{ID: "ops-2", Email: "ops2@demo.com", Role: entity.Role("ADMIN")},
	)
	data.Bills = append(data.Bills, &entity.Bill{ID: "bill-ops", ResidentID: "ops-1", Type: entity.BillTypeOther})
	srv := newTestDirectory(memory.NewStore(data))
	ctx := context.Background()

	bills, err := srv.BillsVisibleTo(ctx, "ops-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"bill-ops"}, billIDs(bills))

	units, err := srv.UnitsVisibleTo(ctx, "ops-2")
	require.NoError(t, err)
	assert.Empty(t, units)

	lease, err := srv.LeaseVisibleTo(ctx, "ops-2")
	require.NoError(t, err)
	assert.Nil(t, lease)
}

func TestDirectoryService_BillsVisibleTo(t *testing.T) {
	srv := newTestDirectory(memory.NewSeedStore())
	ctx := context.Background()

	bills, err := srv.BillsVisibleTo(ctx, "resident-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"bill-1", "bill-2"}, billIDs(bills))

	all, err := srv.BillsVisibleTo(ctx, "admin-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"bill-1", "bill-2", "bill-3"}, billIDs(all))
}

func TestDirectoryService_MaintenanceRequestsVisibleTo(t *testing.T) {
	srv := newTestDirectory(memory.NewSeedStore())
	ctx := context.Background()

	requests, err := srv.MaintenanceRequestsVisibleTo(ctx, "resident-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"mr-1", "mr-3"}, collectIDs(requests, func(m *entity.MaintenanceRequest) string { return m.ID }))

	none, err := srv.MaintenanceRequestsVisibleTo(ctx, "ghost")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestDirectoryService_LeaseVisibleTo(t *testing.T) {
	srv := newTestDirectory(memory.NewSeedStore())
	ctx := context.Background()

	adminLease, err := srv.LeaseVisibleTo(ctx, "admin-1")
	require.NoError(t, err)
	assert.Nil(t, adminLease)

	lease, err := srv.LeaseVisibleTo(ctx, "resident-2")
	require.NoError(t, err)
	require.NotNil(t, lease)
	assert.Equal(t, "lease-2", lease.ID)
	assert.Equal(t, "Small pets allowed with deposit", lease.Terms[0])

	ghost, err := srv.LeaseVisibleTo(ctx, "ghost")
	require.NoError(t, err)
	assert.Nil(t, ghost)
}

func TestDirectoryService_LeaseVisibleTo_FirstInCollectionOrder(t *testing.T) {
	data := memory.SeedDataset()
	data.Leases = append(data.Leases, &entity.Lease{ID: "lease-3", ResidentID: "resident-1", Status: entity.LeaseStatusExpired})
	srv := newTestDirectory(memory.NewStore(data))

	lease, err := srv.LeaseVisibleTo(context.Background(), "resident-1")
	require.NoError(t, err)
	assert.Equal(t, "lease-1", lease.ID)
}

func TestDirectoryService_ResultsAreCopies(t *testing.T) {
	srv := newTestDirectory(memory.NewSeedStore())
	ctx := context.Background()

	bills, err := srv.BillsVisibleTo(ctx, "resident-1")
	require.NoError(t, err)
	bills[1].Status = entity.BillStatusPaid

	again, err := srv.BillsVisibleTo(ctx, "resident-1")
	require.NoError(t, err)
	assert.Equal(t, entity.BillStatusPending, again[1].Status)
}

func TestDirectoryService_EnrichBill(t *testing.T) {
	store := memory.NewSeedStore()
	srv := newTestDirectory(store)
	ctx := context.Background()

	bills, err := srv.BillsVisibleTo(ctx, "admin-1")
	require.NoError(t, err)

	for _, bill := range bills {
		enriched, err := srv.EnrichBill(ctx, bill)
		require.NoError(t, err)
		require.NotNil(t, enriched.Unit, bill.ID)
		require.NotNil(t, enriched.Resident, bill.ID)

		unit, err := store.NewUnitRepository().FindByID(ctx, bill.UnitID)
		require.NoError(t, err)
		assert.Equal(t, unit, enriched.Unit)
		assert.Equal(t, bill.ResidentID, enriched.Resident.ID)
		assert.Same(t, bill, enriched.Bill)
	}
}

func TestDirectoryService_EnrichDanglingReferences(t *testing.T) {
	srv := newTestDirectory(memory.NewSeedStore())
	ctx := context.Background()

	enriched, err := srv.EnrichBill(ctx, &entity.Bill{ID: "bill-x", UnitID: "unit-404", ResidentID: "resident-404"})
	require.NoError(t, err)
	assert.Nil(t, enriched.Unit)
	assert.Nil(t, enriched.Resident)

	mixed, err := srv.EnrichMaintenanceRequest(ctx, &entity.MaintenanceRequest{ID: "mr-x", UnitID: "unit-3", ResidentID: "resident-404"})
	require.NoError(t, err)
	require.NotNil(t, mixed.Unit)
	assert.Equal(t, "789 Pine Street", mixed.Unit.Address)
	assert.Nil(t, mixed.Resident)
}

func TestDirectoryService_EnrichNil(t *testing.T) {
	srv := newTestDirectory(memory.NewSeedStore())
	ctx := context.Background()

	bill, err := srv.EnrichBill(ctx, nil)
	require.NoError(t, err)
	assert.Nil(t, bill)

	request, err := srv.EnrichMaintenanceRequest(ctx, nil)
	require.NoError(t, err)
	assert.Nil(t, request)

	bills, err := srv.EnrichBills(ctx, []*entity.Bill{nil, {ID: "bill-x", UnitID: "unit-1"}})
	require.NoError(t, err)
	require.Len(t, bills, 1)
	assert.Equal(t, "bill-x", bills[0].ID)
}

func TestDirectoryService_ResidentUnit(t *testing.T) {
	srv := newTestDirectory(memory.NewSeedStore())
	ctx := context.Background()

	unit, err := srv.ResidentUnit(ctx, "resident-2")
	require.NoError(t, err)
	assert.Equal(t, "unit-2", unit.ID)

	none, err := srv.ResidentUnit(ctx, "admin-1")
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestDirectoryService_StoreFailure(t *testing.T) {
	bills := &mockBillRepository{}
	bills.On("List", mock.Anything, entity.Scope{OwnerID: "resident-1"}).Return(nil, assert.AnError)
	srv := newTestDirectory(nil)
	srv.repos = brokenRepos{Store: memory.NewSeedStore(), bills: bills}

	_, err := srv.BillsVisibleTo(context.Background(), "resident-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "failed to list bills")
	bills.AssertExpectations(t)
}
