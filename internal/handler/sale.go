package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/diegogutti007/sistema-golden-backend/internal/model"
	"github.com/diegogutti007/sistema-golden-backend/internal/repository"
	"github.com/diegogutti007/sistema-golden-backend/internal/service"
)

const defaultSalePageSize = 8

// SaleHandler serves sale registration, deletion and the sale listings.
type SaleHandler struct {
	Sales *service.SaleService
	Repo  *repository.SaleRepo
}

func NewSaleHandler(sales *service.SaleService, repo *repository.SaleRepo) *SaleHandler {
	return &SaleHandler{Sales: sales, Repo: repo}
}

// Create handles POST /api/ventas.
func (h *SaleHandler) Create(c echo.Context) error {
	who, err := identity(c)
	if err != nil {
		return writeError(c, err)
	}
	var req model.SaleRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Faltan datos en la venta.")
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	res, err := h.Sales.Create(ctx, who, req)
	if err != nil {
		return writeError(c, err)
	}
	msg := "Venta registrada correctamente"
	if res.AppointmentCompleted {
		msg = "Venta registrada y cita completada correctamente"
	}
	return respond(c, http.StatusCreated, echo.Map{"message": msg, "ventaID": res.ID})
}

// Delete handles DELETE /api/venta/:id.
func (h *SaleHandler) Delete(c echo.Context) error {
	who, err := identity(c)
	if err != nil {
		return writeError(c, err)
	}
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "ID de venta inválido")
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.Sales.Delete(ctx, who, id); err != nil {
		return writeError(c, err)
	}
	return respond(c, http.StatusOK, echo.Map{"message": "Venta eliminada correctamente"})
}

// List handles GET /api/venta?page&limit&search.
func (h *SaleHandler) List(c echo.Context) error {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", defaultSalePageSize)
	ctx, cancel := requestContext(c)
	defer cancel()

	sales, total, err := h.Repo.List(ctx, strings.TrimSpace(c.QueryParam("search")), limit, (page-1)*limit)
	if err != nil {
		return dbError(c, "Error al obtener ventas", err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"ventas":       sales,
		"total":        total,
		"totalPaginas": (total + limit - 1) / limit,
	})
}

// Detail handles GET /api/venta/:id.
func (h *SaleHandler) Detail(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "ID de venta inválido")
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	d, err := h.Repo.GetDetail(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return writeError(c, service.NotFoundError("Venta no encontrada"))
	}
	if err != nil {
		return dbError(c, "Error al obtener la venta", err)
	}
	return c.JSON(http.StatusOK, d)
}

// Stats handles GET /api/estadisticas/ventas?search&fechaInicio&fechaFin.
func (h *SaleHandler) Stats(c echo.Context) error {
	f := repository.SaleStatsFilter{
		Search: strings.TrimSpace(c.QueryParam("search")),
		From:   strings.TrimSpace(c.QueryParam("fechaInicio")),
		To:     strings.TrimSpace(c.QueryParam("fechaFin")),
	}
	for _, d := range []string{f.From, f.To} {
		if _, _, err := model.ParseDate(d); err != nil {
			return badRequest(c, "Rango de fechas inválido")
		}
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	stats, err := h.Repo.Stats(ctx, f, model.SaleStatusPaid, model.SaleStatusCancelled)
	if err != nil {
		return dbError(c, "Error al obtener estadísticas", err)
	}
	return c.JSON(http.StatusOK, stats)
}
