package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/diegogutti007/sistema-golden-backend/internal/middleware"
)

// Pinger reports store reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the unauthenticated service endpoints.
type HealthHandler struct {
	DB  Pinger
	Now func() time.Time
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{DB: db, Now: time.Now}
}

// Root handles GET /.
func (h *HealthHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"message":   "Backend Sistema Golden funcionando",
		"status":    "online",
		"timestamp": h.Now().UTC().Format(time.RFC3339),
	})
}

// Health handles GET /health. It pings the store but never reports how the
// store is reached.
func (h *HealthHandler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	if err := h.DB.Ping(ctx); err != nil {
		c.Set(middleware.ErrorCauseKey, err)
		return c.JSON(http.StatusServiceUnavailable, echo.Map{
			"status":   "degraded",
			"database": echo.Map{"connected": false},
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"status":   "healthy",
		"database": echo.Map{"connected": true},
		"message":  "Backend funcionando correctamente",
	})
}

// Test handles GET /api/test.
func (h *HealthHandler) Test(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"success":   true,
		"message":   "Servidor funcionando correctamente",
		"timestamp": h.Now().UTC().Format(time.RFC3339),
	})
}
