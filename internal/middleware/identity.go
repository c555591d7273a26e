package middleware

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/diegogutti007/sistema-golden-backend/internal/model"
)

const identityKey = "identity"

// IdentityFrom returns the identity stored by JWTAuth. ok is false on public
// routes.
func IdentityFrom(c echo.Context) (model.Identity, bool) {
	id, ok := c.Get(identityKey).(model.Identity)
	return id, ok
}

// userID returns the caller's id as a string, or "guest" when the request is
// not authenticated.
func userID(c echo.Context) string {
	if id, ok := IdentityFrom(c); ok && id.UserID > 0 {
		return strconv.FormatInt(id.UserID, 10)
	}
	return "guest"
}
