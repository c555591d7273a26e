package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/diegogutti007/sistema-golden-backend/internal/repository"
)

// LookupHandler serves the catalogs the front end fills its selects with.
type LookupHandler struct {
	Repo *repository.LookupRepo
}

func NewLookupHandler(repo *repository.LookupRepo) *LookupHandler {
	return &LookupHandler{Repo: repo}
}

// list adapts a catalog query into a handler answering with a JSON array.
func list[T any](fetch func(context.Context) ([]T, error), msg string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := requestContext(c)
		defer cancel()

		items, err := fetch(ctx)
		if err != nil {
			return dbError(c, msg, err)
		}
		return c.JSON(http.StatusOK, items)
	}
}

// Categories handles GET /api/categorias.
func (h *LookupHandler) Categories() echo.HandlerFunc {
	return list(h.Repo.Categories, "Error al obtener categorías")
}

// Periods handles GET /api/periodos.
func (h *LookupHandler) Periods() echo.HandlerFunc {
	return list(h.Repo.Periods, "Error al obtener periodos")
}

// PaymentTypes handles GET /api/tipo_pago and /api/tipos_pago.
func (h *LookupHandler) PaymentTypes() echo.HandlerFunc {
	return list(h.Repo.PaymentTypes, "Error al obtener tipos de pago")
}

// SaleTypes handles GET /api/tipos_venta.
func (h *LookupHandler) SaleTypes() echo.HandlerFunc {
	return list(h.Repo.SaleTypes, "Error al obtener tipos de venta")
}

// Articles handles GET /api/articulos.
func (h *LookupHandler) Articles() echo.HandlerFunc {
	return list(h.Repo.Articles, "Error al obtener artículos")
}
