package model

// Appointment states stored in citas.Estado. A sale that references an
// appointment moves it to AppointmentCompleted; the move is one way.
const (
	AppointmentScheduled = "Programada"
	AppointmentCompleted = "Completada"
	AppointmentCancelled = "Cancelada"
)

// AppointmentRequest is the body of POST/PUT /api/citas.
type AppointmentRequest struct {
	ClientID    FlexInt `json:"ClienteID" validate:"gte=0"`
	EmployeeID  FlexInt `json:"EmpId" validate:"gte=0"`
	Title       string  `json:"Titulo"`
	Description string  `json:"Descripcion"`
	Start       string  `json:"FechaInicio" validate:"required"`
	End         string  `json:"FechaFin" validate:"required"`
	Status      string  `json:"Estado"`
}

// ClientRequest is the body of POST /api/clientes.
type ClientRequest struct {
	FirstName string `json:"Nombre" validate:"required"`
	LastName  string `json:"Apellido" validate:"required"`
	Phone     string `json:"Telefono"`
	Email     string `json:"Email"`
}
