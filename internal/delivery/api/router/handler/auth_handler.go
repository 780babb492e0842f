package handler

import (
	"log/slog"
	"net/http"

	"suiteprop/internal/delivery/api/response"
	"suiteprop/internal/domain/entity"
	"suiteprop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler serves sign in and the caller's own session.
type AuthHandler struct {
	sessions usecase.SessionUsecase
	logger   *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(sessions usecase.SessionUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{sessions: sessions, logger: logger}
}

// MeResponse describes the signed-in caller and their portal menu.
type MeResponse struct {
	Session    entity.Session   `json:"session"`
	Navigation []entity.NavItem `json:"navigation"`
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	output, err := h.sessions.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output)
}

// Me handles GET /api/v1/me.
func (h *AuthHandler) Me(c echo.Context) error {
	session, err := currentSession(c)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, MeResponse{
		Session:    session,
		Navigation: h.sessions.Navigation(session),
	})
}
