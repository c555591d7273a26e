package router // package router defines how HTTP routes are registered for the API

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/diegogutti007/sistema-golden-backend/internal/handler"
	"github.com/diegogutti007/sistema-golden-backend/internal/metrics"
	"github.com/diegogutti007/sistema-golden-backend/internal/middleware"
)

// Paths under /api that answer without a session token.
var publicPaths = []string{
	"/api/test",
	"/api/auth/login",
	"/api/auth/check-table",
}

// Handlers bundles the HTTP handlers the routes dispatch to.
type Handlers struct {
	Health       *handler.HealthHandler
	Auth         *handler.AuthHandler
	Sales        *handler.SaleHandler
	Expenses     *handler.ExpenseHandler
	Appointments *handler.AppointmentHandler
	Clients      *handler.ClientHandler
	Employees    *handler.EmployeeHandler
	Lookups      *handler.LookupHandler
	Commissions  *handler.CommissionHandler
}

// Guards holds the middleware applied to selected routes. Cache and
// LoginLimit may be nil.
type Guards struct {
	Verifier   middleware.TokenVerifier
	Cache      echo.MiddlewareFunc
	LoginLimit echo.MiddlewareFunc
}

// Register wires every route of the API onto e.
func Register(e *echo.Echo, h Handlers, g Guards) {
	RegisterRoutes(e, h.Health)

	api := e.Group("/api", middleware.JWTAuth(g.Verifier, publicPaths...))
	api.GET("/test", h.Health.Test)
	RegisterAuth(api, h.Auth, g.LoginLimit)
	RegisterLedger(api, h.Sales, h.Expenses)
	RegisterAgenda(api, h.Appointments, h.Clients, h.Employees)
	RegisterCatalogs(api, h.Lookups, h.Employees, g.Cache)
	RegisterCommissions(api, h.Commissions)
}

// RegisterRoutes registers routes that live outside /api and never require
// authentication.
func RegisterRoutes(e *echo.Echo, hh *handler.HealthHandler) {
	e.GET("/", hh.Root)
	e.GET("/health", hh.Health)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
}

// RegisterAuth registers login and the account endpoints of the signed in
// user. Login is the only route behind the rate limiter.
func RegisterAuth(api *echo.Group, a *handler.AuthHandler, limit echo.MiddlewareFunc) {
	g := api.Group("/auth")
	g.POST("/login", a.Login, optional(limit)...)
	g.GET("/check-table", a.CheckTable)
	g.POST("/cambiar-password", a.ChangePassword)
	g.GET("/perfil", a.Profile)
	g.PUT("/perfil", a.UpdateProfile)
	g.GET("/users", a.Users, middleware.RequireRole("admin"))
}

func optional(mw ...echo.MiddlewareFunc) []echo.MiddlewareFunc {
	out := mw[:0]
	for _, m := range mw {
		if m != nil {
			out = append(out, m)
		}
	}
	return out
}

// ErrorHandler renders errors that reach Echo without a response in the
// same JSON envelope the handlers use.
func ErrorHandler(log *logrus.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		var he *echo.HTTPError
		if !errors.As(err, &he) {
			log.WithError(err).WithField("path", c.Request().URL.Path).Error("unhandled error")
			he = echo.NewHTTPError(http.StatusInternalServerError, "Error interno del servidor")
		}

		body := echo.Map{"success": false}
		switch he.Code {
		case http.StatusNotFound:
			body["error"] = "Ruta no encontrada"
			body["path"] = c.Request().URL.Path
			body["method"] = c.Request().Method
		case http.StatusMethodNotAllowed:
			body["error"] = "Método no permitido"
		default:
			msg, ok := he.Message.(string)
			if !ok || he.Code >= http.StatusInternalServerError {
				msg = http.StatusText(he.Code)
				if he.Code == http.StatusInternalServerError {
					msg = "Error interno del servidor"
				}
			}
			body["error"] = msg
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(he.Code)
		} else {
			err = c.JSON(he.Code, body)
		}
		if err != nil {
			log.WithError(err).Warn("failed to write error response")
		}
	}
}
