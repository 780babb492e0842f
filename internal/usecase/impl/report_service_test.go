package impl

import (
	"context"
	"testing"
	"time"

	"suiteprop/internal/domain/entity"
	domainerrors "suiteprop/internal/domain/errors"
	"suiteprop/internal/infra/persistence/memory"
	"suiteprop/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestReport(store *memory.Store, qrcodes *mockQRCodeService, exporter *mockBillExporter) *reportService {
	logger := newDiscardLogger()
	directory := NewDirectoryService(store, logger)
	portal := NewPortalService(directory, NewRevenueService(store, fixedRandom{}, logger), store, 12, logger)
	srv := NewReportService(directory, portal, qrcodes, exporter, logger).(*reportService)
	srv.now = func() time.Time { return fixedNow }

	return srv
}

func TestReportService_LeaseQRCode(t *testing.T) {
	store := memory.NewSeedStore()
	qrcodes := &mockQRCodeService{}
	qrcodes.On("GenerateLeaseQR", mock.MatchedBy(func(l *entity.Lease) bool { return l.ID == "lease-1" })).
		Return([]byte("png"), nil)
	srv := newTestReport(store, qrcodes, &mockBillExporter{})

	png, err := srv.LeaseQRCode(context.Background(), seedSession(t, store, "resident-1"))
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
	qrcodes.AssertExpectations(t)
}

func TestReportService_LeaseQRCodeWithoutLease(t *testing.T) {
	store := memory.NewSeedStore()
	qrcodes := &mockQRCodeService{}
	srv := newTestReport(store, qrcodes, &mockBillExporter{})

	_, err := srv.LeaseQRCode(context.Background(), seedSession(t, store, "admin-1"))
	require.ErrorIs(t, err, domainerrors.ErrLeaseNotFound)
	qrcodes.AssertNotCalled(t, "GenerateLeaseQR", mock.Anything)
}

func TestReportService_ExportBills(t *testing.T) {
	store := memory.NewSeedStore()
	exporter := &mockBillExporter{}
	exporter.On("ExportBills", mock.Anything, mock.MatchedBy(func(bills []*entity.EnrichedBill) bool {
		return len(bills) == 2 && bills[0].ID == "bill-1" && bills[1].ID == "bill-3"
	})).Return([]byte("xlsx-bytes"), nil)
	srv := newTestReport(store, &mockQRCodeService{}, exporter)

	file, err := srv.ExportBills(context.Background(), seedSession(t, store, "admin-1"), usecase.BillFilter{Type: "rent"})
	require.NoError(t, err)

	assert.Equal(t, "bills-20240315.xlsx", file.Name)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", file.ContentType)
	assert.Equal(t, []byte("xlsx-bytes"), file.Content)
	exporter.AssertExpectations(t)
}

func TestReportService_ExportBillsRequiresAdmin(t *testing.T) {
	store := memory.NewSeedStore()
	exporter := &mockBillExporter{}
	srv := newTestReport(store, &mockQRCodeService{}, exporter)

	file, err := srv.ExportBills(context.Background(), seedSession(t, store, "resident-1"), usecase.BillFilter{})
	require.ErrorIs(t, err, domainerrors.ErrForbidden)
	assert.Nil(t, file)
	exporter.AssertNotCalled(t, "ExportBills", mock.Anything, mock.Anything)
}

func TestReportService_ExportBillsFailure(t *testing.T) {
	store := memory.NewSeedStore()
	exporter := &mockBillExporter{}
	exporter.On("ExportBills", mock.Anything, mock.Anything).Return(nil, assert.AnError)
	srv := newTestReport(store, &mockQRCodeService{}, exporter)

	_, err := srv.ExportBills(context.Background(), seedSession(t, store, "admin-1"), usecase.BillFilter{})
	require.ErrorIs(t, err, assert.AnError)
}
