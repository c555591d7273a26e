package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/diegogutti007/sistema-golden-backend/internal/model"
	"github.com/diegogutti007/sistema-golden-backend/internal/repository"
	"github.com/diegogutti007/sistema-golden-backend/internal/service"
)

const msgEmployeeFields = "Todos los campos excepto fecha_renuncia son requeridos"

// EmployeeHandler serves staff maintenance and its catalogs.
type EmployeeHandler struct {
	Repo *repository.EmployeeRepo
}

func NewEmployeeHandler(repo *repository.EmployeeRepo) *EmployeeHandler {
	return &EmployeeHandler{Repo: repo}
}

func employeeRecord(req model.EmployeeRequest) (repository.EmployeeRecord, error) {
	if err := service.Validate(req); err != nil {
		return repository.EmployeeRecord{}, service.ValidationError(msgEmployeeFields)
	}
	birth, _, err := model.ParseDate(req.BirthDate)
	if err != nil {
		return repository.EmployeeRecord{}, service.ValidationError("La fecha de nacimiento no es válida")
	}
	hired, _, err := model.ParseDate(req.HireDate)
	if err != nil {
		return repository.EmployeeRecord{}, service.ValidationError("La fecha de ingreso no es válida")
	}
	resigned, ok, err := model.ParseDate(req.ResignDate)
	if err != nil {
		return repository.EmployeeRecord{}, service.ValidationError("La fecha de renuncia no es válida")
	}
	return repository.EmployeeRecord{
		FirstNames: strings.TrimSpace(req.FirstNames),
		LastNames:  strings.TrimSpace(req.LastNames),
		DocumentID: strings.TrimSpace(req.DocumentID),
		TypeID:     req.TypeID.Int64(),
		PositionID: req.PositionID.Int64(),
		BirthDate:  birth,
		HireDate:   hired,
		ResignDate: sql.NullTime{Time: resigned, Valid: ok},
		Address:    model.NullString(req.Address),
		Salary:     req.Salary.Round(2),
	}, nil
}

// List handles GET /api/listaempleado.
func (h *EmployeeHandler) List(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	list, err := h.Repo.List(ctx)
	if err != nil {
		return dbError(c, "Error al obtener empleados", err)
	}
	return c.JSON(http.StatusOK, list)
}

// Create handles POST /api/empleado.
func (h *EmployeeHandler) Create(c echo.Context) error {
	var req model.EmployeeRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, msgEmployeeFields)
	}
	rec, err := employeeRecord(req)
	if err != nil {
		return writeError(c, err)
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	id, err := h.Repo.Create(ctx, rec)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return writeError(c, service.ConflictError("Ya existe un empleado con ese documento"))
		}
		return dbError(c, "Error al registrar empleado", err)
	}
	return respond(c, http.StatusCreated, echo.Map{"message": "Empleado registrado correctamente", "id": id})
}

// Update handles PUT /api/empleado/:id.
func (h *EmployeeHandler) Update(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "ID de empleado inválido")
	}
	var req model.EmployeeRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, msgEmployeeFields)
	}
	rec, err := employeeRecord(req)
	if err != nil {
		return writeError(c, err)
	}
	rec.ID = id
	ctx, cancel := requestContext(c)
	defer cancel()

	switch err := h.Repo.Update(ctx, rec); {
	case errors.Is(err, repository.ErrNotFound):
		return writeError(c, service.NotFoundError("Empleado no encontrado"))
	case errors.Is(err, repository.ErrDuplicate):
		return writeError(c, service.ConflictError("Ya existe un empleado con ese documento"))
	case err != nil:
		return dbError(c, "Error al actualizar empleado", err)
	}
	return respond(c, http.StatusOK, echo.Map{"message": "Empleado actualizado correctamente", "empleadoId": id})
}

// Delete handles DELETE /api/empleado/:id.
func (h *EmployeeHandler) Delete(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "ID de empleado inválido")
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	switch err := h.Repo.Delete(ctx, id); {
	case errors.Is(err, repository.ErrNotFound):
		return writeError(c, service.NotFoundError("Empleado no encontrado"))
	case errors.Is(err, repository.ErrReferenced):
		return writeError(c, service.ConflictError("El empleado tiene ventas o citas registradas"))
	case err != nil:
		return dbError(c, "Error al eliminar empleado", err)
	}
	return respond(c, http.StatusOK, echo.Map{"message": "Empleado eliminado correctamente"})
}

// Types handles GET /api/tipo-empleado.
func (h *EmployeeHandler) Types(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	list, err := h.Repo.Types(ctx)
	if err != nil {
		return dbError(c, "Error en la consulta", err)
	}
	return c.JSON(http.StatusOK, list)
}

// Positions handles GET /api/cargo-empleado.
func (h *EmployeeHandler) Positions(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	list, err := h.Repo.Positions(ctx)
	if err != nil {
		return dbError(c, "Error en la consulta", err)
	}
	return c.JSON(http.StatusOK, list)
}
