// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"suiteprop/internal/delivery/api/response"
	deliverycontext "suiteprop/internal/delivery/context"
	"suiteprop/internal/domain/entity"
	domainerrors "suiteprop/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HealthCheck reports that the process is serving.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// currentSession returns the session the auth middleware stored on c.
func currentSession(c echo.Context) (entity.Session, error) {
	session, ok := deliverycontext.GetSession(c)
	if !ok {
		return entity.Session{}, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	return session, nil
}

// bindAndValidate binds the request into input and runs the echo validator.
// Failures are AppErrors for the central error handler.
func bindAndValidate(c echo.Context, input any) error {
	if err := c.Bind(input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	return c.Validate(input)
}
