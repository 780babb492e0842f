package middleware

import (
	"strings"

	"suiteprop/internal/delivery/api/response"
	deliverycontext "suiteprop/internal/delivery/context"
	"suiteprop/internal/usecase"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware resolves the bearer token into a session.
type AuthMiddleware struct {
	sessions usecase.SessionUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(sessions usecase.SessionUsecase) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// Authenticate rejects requests without a valid access token and stores the
// caller's session on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, bearerPrefix)
		if tokenString == authHeader || strings.TrimSpace(tokenString) == "" {
			return response.Unauthorized(c, "INVALID_TOKEN_FORMAT", "Invalid token format, must be Bearer token")
		}

		session, err := m.sessions.Authenticate(c.Request().Context(), tokenString)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		deliverycontext.SetSession(c, session)

		return next(c)
	}
}

// RequireAdmin only lets admin sessions through. Use after Authenticate.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		session, ok := deliverycontext.GetSession(c)
		if !ok {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
		}
		if !session.IsAdmin() {
			return response.Forbidden(c, "FORBIDDEN", "Permission denied: admin portal only")
		}

		return next(c)
	}
}

// RequireResident lets every non-admin session through. Use after Authenticate.
func (m *AuthMiddleware) RequireResident(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		session, ok := deliverycontext.GetSession(c)
		if !ok {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
		}
		if session.IsAdmin() {
			return response.Forbidden(c, "FORBIDDEN", "Permission denied: resident portal only")
		}

		return next(c)
	}
}
