package handler

import (
	"context"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/diegogutti007/sistema-golden-backend/internal/middleware"
	"github.com/diegogutti007/sistema-golden-backend/internal/model"
	"github.com/diegogutti007/sistema-golden-backend/internal/service"
)

// requestTimeout bounds the store work of a single request.
const requestTimeout = 10 * time.Second

func requestContext(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), requestTimeout)
}

// writeError answers with the status and client message of err. The cause
// is handed to the request logger only.
func writeError(c echo.Context, err error) error {
	c.Set(middleware.ErrorCauseKey, err)
	msg := service.MessageOf(err)
	return c.JSON(service.StatusOf(err), echo.Map{
		"success": false,
		"error":   msg,
		"message": msg,
	})
}

// dbError wraps a read failure in a 500 with msg as the client message.
func dbError(c echo.Context, msg string, err error) error {
	return writeError(c, service.UnknownError(msg, err))
}

func badRequest(c echo.Context, msg string) error {
	return writeError(c, service.ValidationError(msg))
}

// identity returns the caller set by the auth middleware.
func identity(c echo.Context) (model.Identity, error) {
	id, ok := middleware.IdentityFrom(c)
	if !ok || id.UserID <= 0 {
		return model.Identity{}, service.UnauthorizedError(service.MsgTokenRequired)
	}
	return id, nil
}

// pathID parses a positive integer path parameter.
func pathID(c echo.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func queryInt(c echo.Context, name string, def int) int {
	n, err := strconv.Atoi(c.QueryParam(name))
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func respond(c echo.Context, status int, body echo.Map) error {
	body["success"] = true
	return c.JSON(status, body)
}

