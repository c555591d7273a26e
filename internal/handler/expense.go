package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/diegogutti007/sistema-golden-backend/internal/model"
	"github.com/diegogutti007/sistema-golden-backend/internal/repository"
	"github.com/diegogutti007/sistema-golden-backend/internal/service"
)

// ExpenseHandler serves the expense endpoints.
type ExpenseHandler struct {
	Expenses *service.ExpenseService
	Repo     *repository.ExpenseRepo
}

func NewExpenseHandler(expenses *service.ExpenseService, repo *repository.ExpenseRepo) *ExpenseHandler {
	return &ExpenseHandler{Expenses: expenses, Repo: repo}
}

// Create handles POST /api/gastos.
func (h *ExpenseHandler) Create(c echo.Context) error {
	who, err := identity(c)
	if err != nil {
		return writeError(c, err)
	}
	var req model.ExpenseRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Faltan campos obligatorios")
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	id, err := h.Expenses.Create(ctx, who, req)
	if err != nil {
		return writeError(c, err)
	}
	return respond(c, http.StatusCreated, echo.Map{"message": "Gasto registrado correctamente", "gasto_id": id})
}

// Update handles PUT /api/gastos/:id.
func (h *ExpenseHandler) Update(c echo.Context) error {
	who, err := identity(c)
	if err != nil {
		return writeError(c, err)
	}
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "ID de gasto inválido")
	}
	var req model.ExpenseRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Faltan campos obligatorios")
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.Expenses.Update(ctx, who, id, req); err != nil {
		return writeError(c, err)
	}
	return respond(c, http.StatusOK, echo.Map{"message": "Gasto actualizado correctamente", "gasto_id": id})
}

// Delete handles DELETE /api/gastos/:id.
func (h *ExpenseHandler) Delete(c echo.Context) error {
	who, err := identity(c)
	if err != nil {
		return writeError(c, err)
	}
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "ID de gasto inválido")
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.Expenses.Delete(ctx, who, id); err != nil {
		return writeError(c, err)
	}
	return respond(c, http.StatusOK, echo.Map{"message": "Gasto eliminado correctamente"})
}

// List handles GET /api/gastos.
func (h *ExpenseHandler) List(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	list, err := h.Repo.List(ctx)
	if err != nil {
		return dbError(c, "Error al obtener gastos", err)
	}
	return c.JSON(http.StatusOK, list)
}
