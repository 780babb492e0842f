package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"suiteprop/internal/delivery/api/response"
	deliverycontext "suiteprop/internal/delivery/context"
	"suiteprop/internal/domain/entity"
	domainerrors "suiteprop/internal/domain/errors"
	"suiteprop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSessionUsecase struct {
	mock.Mock
}

func (m *mockSessionUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginResult, error) {
	args := m.Called(ctx, input)
	result, _ := args.Get(0).(*usecase.LoginResult)

	return result, args.Error(1)
}

func (m *mockSessionUsecase) Authenticate(ctx context.Context, accessToken string) (entity.Session, error) {
	args := m.Called(ctx, accessToken)

	return args.Get(0).(entity.Session), args.Error(1)
}

func (m *mockSessionUsecase) Navigation(session entity.Session) []entity.NavItem {
	return m.Called(session).Get(0).([]entity.NavItem)
}

var (
	adminSession    = entity.Session{UserID: "admin-1", Role: entity.RoleAdmin}
	residentSession = entity.Session{UserID: "resident-1", Role: entity.RoleResident}
)

func newContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/units", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body.Error.Code
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	sessions := &mockSessionUsecase{}
	sessions.On("Authenticate", mock.Anything, "good").Return(residentSession, nil)
	sessions.On("Authenticate", mock.Anything, "expired").Return(entity.Session{}, errors.Wrap(domainerrors.ErrUnauthorized, "token expired"))
	mw := NewAuthMiddleware(sessions)

	tests := []struct {
		name     string
		header   string
		wantCode int
		wantErr  string
	}{
		{name: "valid", header: "Bearer good", wantCode: http.StatusNoContent},
		{name: "missing", header: "", wantCode: http.StatusUnauthorized, wantErr: "MISSING_TOKEN"},
		{name: "not bearer", header: "Basic abc", wantCode: http.StatusUnauthorized, wantErr: "INVALID_TOKEN_FORMAT"},
		{name: "empty bearer", header: "Bearer  ", wantCode: http.StatusUnauthorized, wantErr: "INVALID_TOKEN_FORMAT"},
		{name: "rejected", header: "Bearer expired", wantCode: http.StatusUnauthorized, wantErr: "UNAUTHORIZED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext(tt.header)

			require.NoError(t, mw.Authenticate(okHandler)(c))
			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantErr != "" {
				assert.Equal(t, tt.wantErr, errorCode(t, rec))

				return
			}
			session, ok := deliverycontext.GetSession(c)
			require.True(t, ok)
			assert.Equal(t, residentSession, session)
		})
	}
}

func TestAuthMiddleware_StoreFailurePropagates(t *testing.T) {
	sessions := &mockSessionUsecase{}
	sessions.On("Authenticate", mock.Anything, "tok").Return(entity.Session{}, assert.AnError)
	mw := NewAuthMiddleware(sessions)

	c, _ := newContext("Bearer tok")
	err := mw.Authenticate(okHandler)(c)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestAuthMiddleware_PortalGuards(t *testing.T) {
	mw := NewAuthMiddleware(&mockSessionUsecase{})

	tests := []struct {
		name     string
		guard    echo.MiddlewareFunc
		session  *entity.Session
		wantCode int
	}{
		{name: "admin on admin", guard: mw.RequireAdmin, session: &adminSession, wantCode: http.StatusNoContent},
		{name: "resident on admin", guard: mw.RequireAdmin, session: &residentSession, wantCode: http.StatusForbidden},
		{name: "resident on resident", guard: mw.RequireResident, session: &residentSession, wantCode: http.StatusNoContent},
		{name: "admin on resident", guard: mw.RequireResident, session: &adminSession, wantCode: http.StatusForbidden},
		{name: "unknown role on resident", guard: mw.RequireResident, session: &entity.Session{UserID: "x", Role: "ops"}, wantCode: http.StatusNoContent},
		{name: "no session", guard: mw.RequireAdmin, wantCode: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext("")
			if tt.session != nil {
				deliverycontext.SetSession(c, *tt.session)
			}

			require.NoError(t, tt.guard(okHandler)(c))
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	var logs bytes.Buffer
	mw := NewErrorMiddleware(slog.New(slog.NewJSONHandler(&logs, nil)))

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantErr  string
		wantLog  bool
	}{
		{name: "app error", err: errors.Wrap(domainerrors.ErrForbidden, "admin only"), wantCode: http.StatusForbidden, wantErr: "FORBIDDEN"},
		{name: "lease missing", err: domainerrors.ErrLeaseNotFound, wantCode: http.StatusNotFound, wantErr: "LEASE_NOT_FOUND"},
		{name: "echo error", err: echo.ErrMethodNotAllowed, wantCode: http.StatusMethodNotAllowed, wantErr: "HTTP_ERROR"},
		{name: "internal app error", err: domainerrors.ErrInternalError, wantCode: http.StatusInternalServerError, wantErr: "INTERNAL_ERROR", wantLog: true},
		{name: "unknown", err: assert.AnError, wantCode: http.StatusInternalServerError, wantErr: "INTERNAL_ERROR", wantLog: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs.Reset()
			c, rec := newContext("")

			mw.HandleHTTPError(tt.err, c)
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantErr, errorCode(t, rec))
			assert.Equal(t, tt.wantLog, logs.Len() > 0)
		})
	}
}
