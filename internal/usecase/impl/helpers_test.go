package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"suiteprop/internal/domain/entity"
	"suiteprop/internal/domain/repository"
	"suiteprop/internal/domain/service"
	"suiteprop/internal/infra/persistence/memory"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fixedRandom always draws the same value, clamped to the requested bound.
type fixedRandom struct {
	value int
}

func (r fixedRandom) IntN(n int) int {
	return r.value % n
}

func seedSession(t *testing.T, store *memory.Store, userID string) entity.Session {
	t.Helper()

	user, err := store.NewUserRepository().FindByID(context.Background(), userID)
	require.NoError(t, err)

	return entity.SessionOf(user)
}

func collectIDs[T any](items []T, id func(T) string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, id(item))
	}

	return out
}

var fixedNow = time.Date(2024, time.March, 15, 9, 30, 0, 0, time.UTC)

// --- testify mocks ---

// brokenRepos serves the seed dataset except for the bill repository.
type brokenRepos struct {
	*memory.Store
	bills repository.BillRepository
}

func (r brokenRepos) NewBillRepository() repository.BillRepository {
	return r.bills
}

type mockBillRepository struct {
	mock.Mock
}

func (m *mockBillRepository) List(ctx context.Context, scope entity.Scope) ([]*entity.Bill, error) {
	args := m.Called(ctx, scope)
	bills, _ := args.Get(0).([]*entity.Bill)

	return bills, args.Error(1)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) GenerateAccessToken(session entity.Session) (string, error) {
	args := m.Called(session)

	return args.String(0), args.Error(1)
}

func (m *mockTokenService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	claims, _ := args.Get(0).(*service.Claims)

	return claims, args.Error(1)
}

func (m *mockTokenService) AccessTokenTTL() time.Duration {
	return m.Called().Get(0).(time.Duration)
}

type mockEventPublisher struct {
	mock.Mock
}

func (m *mockEventPublisher) PublishMaintenanceRequested(ctx context.Context, event *service.MaintenanceRequestedEvent) error {
	return m.Called(ctx, event).Error(0)
}

func (m *mockEventPublisher) Close() error {
	return m.Called().Error(0)
}

type mockQRCodeService struct {
	mock.Mock
}

func (m *mockQRCodeService) GenerateLeaseQR(lease *entity.Lease) ([]byte, error) {
	args := m.Called(lease)
	png, _ := args.Get(0).([]byte)

	return png, args.Error(1)
}

func (m *mockQRCodeService) ParseLeaseQR(qrData string) (*service.LeaseQRData, error) {
	args := m.Called(qrData)
	data, _ := args.Get(0).(*service.LeaseQRData)

	return data, args.Error(1)
}

type mockBillExporter struct {
	mock.Mock
}

func (m *mockBillExporter) ExportBills(ctx context.Context, bills []*entity.EnrichedBill) ([]byte, error) {
	args := m.Called(ctx, bills)
	content, _ := args.Get(0).([]byte)

	return content, args.Error(1)
}

func (m *mockBillExporter) ContentType() string { return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" }

func (m *mockBillExporter) FileExtension() string { return "xlsx" }
