package model

import "github.com/shopspring/decimal"

// EmployeeRequest is the body of POST /api/empleado and PUT /api/empleado/:id.
// Every field but the resignation date and address is required.
type EmployeeRequest struct {
	FirstNames  string          `json:"nombres" validate:"required"`
	LastNames   string          `json:"apellidos" validate:"required"`
	DocumentID  string          `json:"docId" validate:"required"`
	TypeID      FlexInt         `json:"tipo_EmpId" validate:"gt=0"`
	PositionID  FlexInt         `json:"cargo_EmpId" validate:"gt=0"`
	BirthDate   string          `json:"fechaNacimiento" validate:"required"`
	HireDate    string          `json:"fechaIngreso" validate:"required"`
	ResignDate  string          `json:"fechaRenuncia"`
	Address     string          `json:"direccion"`
	Salary      decimal.Decimal `json:"sueldo" validate:"gt=0"`
}
