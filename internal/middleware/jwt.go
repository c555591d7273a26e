package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/diegogutti007/sistema-golden-backend/internal/model"
	"github.com/diegogutti007/sistema-golden-backend/internal/service"
)

// TokenVerifier decodes a raw bearer token into the acting user.
type TokenVerifier interface {
	VerifyToken(raw string) (model.Identity, error)
}

// JWTAuth returns an Echo middleware that validates the Bearer session token
// and stores the identity it carries in the request context. Requests whose
// path is in public pass through untouched. A missing token is answered with
// 401, any other token failure with 403.
//
// Handlers read the caller via IdentityFrom(c); the plain "user_id" and
// "role" keys are set as well for middleware further down the chain.
func JWTAuth(verifier TokenVerifier, public ...string) echo.MiddlewareFunc {
	allowed := make(map[string]bool, len(public))
	for _, p := range public {
		allowed[p] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if allowed[c.Request().URL.Path] || c.Request().Method == http.MethodOptions {
				return next(c)
			}

			raw := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			id, err := verifier.VerifyToken(raw)
			if err != nil {
				return c.JSON(service.StatusOf(err), echo.Map{
					"success": false,
					"error":   service.MessageOf(err),
				})
			}

			c.Set(identityKey, id)
			c.Set("user_id", id.UserID)
			c.Set("username", id.Username)
			c.Set("role", id.Role)
			return next(c)
		}
	}
}

// bearerToken strips the "Bearer " scheme. Anything else yields "".
func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
