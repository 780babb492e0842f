package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "suiteprop/internal/delivery/context"
	domainerrors "suiteprop/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	deliverycontext.SetRequestID(c, "req-1")

	return c, rec
}

func TestSuccess(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Success(c, http.StatusOK, map[string]int{"count": 3}))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"count":3},"meta":{"request_id":"req-1"}}`, rec.Body.String())
}

func TestError_DropsDetails(t *testing.T) {
	tests := []struct {
		status      int
		wantDetails bool
	}{
		{http.StatusBadRequest, true},
		{http.StatusNotFound, true},
		{http.StatusUnauthorized, false},
		{http.StatusForbidden, false},
		{http.StatusInternalServerError, false},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			c, rec := newContext()
			require.NoError(t, Error(c, tt.status, "CODE", "message", "extra"))

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "CODE", body.Error.Code)
			assert.Equal(t, tt.wantDetails, body.Error.Details != nil)
			assert.Equal(t, "req-1", body.Meta.RequestID)
		})
	}
}

func TestHandleAppError(t *testing.T) {
	c, rec := newContext()

	err := domainerrors.ErrValidationFailed.WithDetails("title is required")
	require.NoError(t, HandleAppError(c, err))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":{"code":"VALIDATION_FAILED","message":"`+domainerrors.ErrValidationFailed.Message()+`","details":"title is required"},"meta":{"request_id":"req-1"}}`, rec.Body.String())

	c, _ = newContext()
	assert.ErrorIs(t, HandleAppError(c, assert.AnError), assert.AnError)
}
