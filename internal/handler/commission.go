package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/diegogutti007/sistema-golden-backend/internal/model"
	"github.com/diegogutti007/sistema-golden-backend/internal/repository"
	"github.com/diegogutti007/sistema-golden-backend/internal/report"
	"github.com/diegogutti007/sistema-golden-backend/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// CommissionHandler serves the commission reports.
type CommissionHandler struct {
	Repo *repository.CommissionRepo
}

func NewCommissionHandler(repo *repository.CommissionRepo) *CommissionHandler {
	return &CommissionHandler{Repo: repo}
}

// dateRange reads fechaInicio and fechaFin; both are required.
func dateRange(c echo.Context) (from, to string, err error) {
	from = strings.TrimSpace(c.QueryParam("fechaInicio"))
	to = strings.TrimSpace(c.QueryParam("fechaFin"))
	if from == "" || to == "" {
		return "", "", service.ValidationError("Debe enviar fechaInicio y fechaFin")
	}
	for _, d := range []string{from, to} {
		if _, _, err := model.ParseDate(d); err != nil {
			return "", "", service.ValidationError("Rango de fechas inválido")
		}
	}
	return from, to, nil
}

// Summary handles GET /api/comisiones.
func (h *CommissionHandler) Summary(c echo.Context) error {
	from, to, err := dateRange(c)
	if err != nil {
		return writeError(c, err)
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	rows, err := h.Repo.Summary(ctx, from, to)
	if err != nil {
		return dbError(c, "Error al obtener comisiones", err)
	}
	return c.JSON(http.StatusOK, rows)
}

// Detail handles GET /api/comisiones/:empId.
func (h *CommissionHandler) Detail(c echo.Context) error {
	empID, ok := pathID(c, "empId")
	if !ok {
		return badRequest(c, "ID de empleado inválido")
	}
	from, to, err := dateRange(c)
	if err != nil {
		return writeError(c, err)
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	lines, err := h.Repo.Detail(ctx, empID, from, to)
	if err != nil {
		return dbError(c, "Error al obtener detalle de comisiones", err)
	}
	return c.JSON(http.StatusOK, lines)
}

// Export handles GET /api/comisiones/exportar: the summary as an .xlsx file.
func (h *CommissionHandler) Export(c echo.Context) error {
	from, to, err := dateRange(c)
	if err != nil {
		return writeError(c, err)
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	rows, err := h.Repo.Summary(ctx, from, to)
	if err != nil {
		return dbError(c, "Error al obtener comisiones", err)
	}

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, xlsxContentType)
	res.Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="comisiones_%s_%s.xlsx"`, from, to))
	res.WriteHeader(http.StatusOK)
	return report.WriteCommissions(res, rows, from, to)
}
