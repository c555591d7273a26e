package router

import (
	"github.com/labstack/echo/v4"

	"github.com/diegogutti007/sistema-golden-backend/internal/handler"
)

// RegisterLedger registers the money-moving endpoints: sales and expenses.
func RegisterLedger(api *echo.Group, s *handler.SaleHandler, x *handler.ExpenseHandler) {
	api.POST("/ventas", s.Create)
	api.GET("/venta", s.List)
	api.GET("/venta/:id", s.Detail)
	api.DELETE("/venta/:id", s.Delete)
	api.GET("/estadisticas/ventas", s.Stats)

	api.GET("/gastos", x.List)
	api.POST("/gastos", x.Create)
	api.PUT("/gastos/:id", x.Update)
	api.DELETE("/gastos/:id", x.Delete)
}

// RegisterAgenda registers appointments, clients and employee maintenance.
func RegisterAgenda(api *echo.Group, a *handler.AppointmentHandler, cl *handler.ClientHandler, em *handler.EmployeeHandler) {
	api.GET("/citas", a.List)
	api.POST("/citas", a.Create)
	api.PUT("/citas/:id", a.Update)
	api.DELETE("/citas/:id", a.Delete)
	api.GET("/citascombo", a.Options)

	api.GET("/clientes", cl.List)
	api.POST("/clientes", cl.Create)

	api.GET("/listaempleado", em.List)
	api.POST("/empleado", em.Create)
	api.PUT("/empleado/:id", em.Update)
	api.DELETE("/empleado/:id", em.Delete)
}

// RegisterCatalogs registers the read-only lists behind the response cache.
func RegisterCatalogs(api *echo.Group, l *handler.LookupHandler, em *handler.EmployeeHandler, cache echo.MiddlewareFunc) {
	mw := optional(cache)
	api.GET("/tipo-empleado", em.Types, mw...)
	api.GET("/cargo-empleado", em.Positions, mw...)
	api.GET("/categorias", l.Categories(), mw...)
	api.GET("/periodos", l.Periods(), mw...)
	api.GET("/tipo_pago", l.PaymentTypes(), mw...)
	api.GET("/tipos_pago", l.PaymentTypes(), mw...)
	api.GET("/tipos_venta", l.SaleTypes(), mw...)
	api.GET("/articulos", l.Articles(), mw...)
}

// RegisterCommissions registers the commission reports.
func RegisterCommissions(api *echo.Group, h *handler.CommissionHandler) {
	api.GET("/comisiones", h.Summary)
	api.GET("/comisiones/exportar", h.Export)
	api.GET("/comisiones/:empId", h.Detail)
}
