package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/diegogutti007/sistema-golden-backend/internal/model"
	"github.com/diegogutti007/sistema-golden-backend/internal/repository"
)

// ClientHandler serves the client list and registration.
type ClientHandler struct {
	Repo *repository.ClientRepo
}

func NewClientHandler(repo *repository.ClientRepo) *ClientHandler {
	return &ClientHandler{Repo: repo}
}

// List handles GET /api/clientes.
func (h *ClientHandler) List(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	list, err := h.Repo.List(ctx)
	if err != nil {
		return dbError(c, "Error al obtener clientes", err)
	}
	return c.JSON(http.StatusOK, list)
}

// Create handles POST /api/clientes.
func (h *ClientHandler) Create(c echo.Context) error {
	var req model.ClientRequest
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.LastName) == "" {
		return badRequest(c, "Nombre y Apellido son obligatorios")
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	id, err := h.Repo.Create(ctx, strings.TrimSpace(req.FirstName), strings.TrimSpace(req.LastName),
		model.NullString(req.Phone), model.NullString(req.Email))
	if err != nil {
		return dbError(c, "Error al registrar el cliente", err)
	}
	return respond(c, http.StatusCreated, echo.Map{"message": "Cliente registrado con éxito", "ClienteID": id})
}
