package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/diegogutti007/sistema-golden-backend/internal/model"
	"github.com/diegogutti007/sistema-golden-backend/internal/repository"
	"github.com/diegogutti007/sistema-golden-backend/internal/service"
)

// Calendar colours by appointment state.
const (
	colorCancelled = "#f87171"
	colorCompleted = "#34d399"
	colorDefault   = "#60a5fa"
)

// AppointmentHandler serves the calendar and the appointment picker.
type AppointmentHandler struct {
	Repo *repository.AppointmentRepo
}

func NewAppointmentHandler(repo *repository.AppointmentRepo) *AppointmentHandler {
	return &AppointmentHandler{Repo: repo}
}

type calendarProps struct {
	ClientName   *string `json:"clienteNombre"`
	EmployeeName *string `json:"empleadoNombre"`
	Status       *string `json:"estado"`
	ClientID     *int64  `json:"clienteID"`
	EmployeeID   *int64  `json:"EmpId"`
}

type calendarEvent struct {
	ID          int64         `json:"id"`
	Title       string        `json:"title"`
	Description *string       `json:"descripcion"`
	Start       time.Time     `json:"start"`
	End         time.Time     `json:"end"`
	Color       string        `json:"backgroundColor"`
	Props       calendarProps `json:"extendedProps"`
}

func toCalendarEvent(r repository.AppointmentRow) calendarEvent {
	title := "Cita sin título"
	switch {
	case r.Title != nil && strings.TrimSpace(*r.Title) != "":
		title = *r.Title
	case r.ClientName != nil && *r.ClientName != "":
		title = *r.ClientName
	}
	color := colorDefault
	if r.Status != nil {
		switch *r.Status {
		case model.AppointmentCancelled:
			color = colorCancelled
		case model.AppointmentCompleted:
			color = colorCompleted
		}
	}
	return calendarEvent{
		ID:          r.ID,
		Title:       title,
		Description: r.Description,
		Start:       r.Start,
		End:         r.End,
		Color:       color,
		Props: calendarProps{
			ClientName:   r.ClientName,
			EmployeeName: r.EmployeeName,
			Status:       r.Status,
			ClientID:     r.ClientID,
			EmployeeID:   r.EmployeeID,
		},
	}
}

// List handles GET /api/citas.
func (h *AppointmentHandler) List(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	rows, err := h.Repo.List(ctx)
	if err != nil {
		return dbError(c, "Error al obtener citas", err)
	}
	events := make([]calendarEvent, 0, len(rows))
	for _, r := range rows {
		events = append(events, toCalendarEvent(r))
	}
	return c.JSON(http.StatusOK, events)
}

// appointmentRecord validates req and maps it to the writable columns.
func appointmentRecord(req model.AppointmentRequest) (repository.AppointmentRecord, error) {
	if err := service.Validate(req); err != nil {
		return repository.AppointmentRecord{}, err
	}
	start, _, err := model.ParseDate(req.Start)
	if err != nil {
		return repository.AppointmentRecord{}, service.ValidationError("La fecha de inicio no es válida")
	}
	end, _, err := model.ParseDate(req.End)
	if err != nil {
		return repository.AppointmentRecord{}, service.ValidationError("La fecha de fin no es válida")
	}
	if end.Before(start) {
		return repository.AppointmentRecord{}, service.ValidationError("La fecha de fin debe ser posterior a la de inicio")
	}
	status := strings.TrimSpace(req.Status)
	if status == "" {
		status = model.AppointmentScheduled
	}
	return repository.AppointmentRecord{
		ClientID:    req.ClientID.NullInt64(),
		EmployeeID:  req.EmployeeID.NullInt64(),
		Title:       model.NullString(req.Title),
		Description: model.NullString(req.Description),
		Start:       start,
		End:         end,
		Status:      status,
	}, nil
}

// Create handles POST /api/citas.
func (h *AppointmentHandler) Create(c echo.Context) error {
	var req model.AppointmentRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Datos de cita inválidos")
	}
	rec, err := appointmentRecord(req)
	if err != nil {
		return writeError(c, err)
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	id, err := h.Repo.Create(ctx, rec)
	if err != nil {
		return dbError(c, "Error al crear cita", err)
	}
	return respond(c, http.StatusCreated, echo.Map{"message": "Cita creada correctamente", "CitaID": id})
}

// Update handles PUT /api/citas/:id.
func (h *AppointmentHandler) Update(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "ID de cita inválido")
	}
	var req model.AppointmentRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Datos de cita inválidos")
	}
	rec, err := appointmentRecord(req)
	if err != nil {
		return writeError(c, err)
	}
	rec.ID = id
	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.Repo.Update(ctx, rec); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return writeError(c, service.NotFoundError("Cita no encontrada"))
		}
		return dbError(c, "Error al actualizar cita", err)
	}
	return respond(c, http.StatusOK, echo.Map{"message": "Cita actualizada correctamente"})
}

// Delete handles DELETE /api/citas/:id.
func (h *AppointmentHandler) Delete(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "ID de cita inválido")
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return writeError(c, service.NotFoundError("Cita no encontrada"))
		}
		return dbError(c, "Error al eliminar cita", err)
	}
	return respond(c, http.StatusOK, echo.Map{"message": "Cita eliminada correctamente"})
}

// Options handles GET /api/citascombo?search: appointments not yet sold.
func (h *AppointmentHandler) Options(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	opts, err := h.Repo.ListUnsold(ctx, strings.TrimSpace(c.QueryParam("search")))
	if err != nil {
		return dbError(c, "Error al obtener citas", err)
	}
	return c.JSON(http.StatusOK, opts)
}
