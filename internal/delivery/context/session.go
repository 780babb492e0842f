package context

import (
	"suiteprop/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// SetSession stores the authenticated session on c.
func SetSession(c echo.Context, session entity.Session) {
	c.Set(string(KeySession), session)
}

// GetSession returns the session stored by the auth middleware.
func GetSession(c echo.Context) (entity.Session, bool) {
	session, ok := c.Get(string(KeySession)).(entity.Session)

	return session, ok && session.UserID != ""
}
