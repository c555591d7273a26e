package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// EmployeeRepo manages salon staff and their type and position catalogs.
type EmployeeRepo struct {
	db *sql.DB
}

func NewEmployeeRepo(db *sql.DB) *EmployeeRepo { return &EmployeeRepo{db: db} }

// EmployeeRecord holds the writable columns of Empleado.
type EmployeeRecord struct {
	ID         int64
	FirstNames string
	LastNames  string
	DocumentID string
	TypeID     int64
	PositionID int64
	BirthDate  time.Time
	HireDate   time.Time
	ResignDate sql.NullTime
	Address    sql.NullString
	Salary     decimal.Decimal
}

// EmployeeView is an employee joined with type and position.
type EmployeeView struct {
	ID                  int64           `json:"EmpId"`
	FirstNames          string          `json:"Nombres"`
	LastNames           string          `json:"Apellidos"`
	DocumentID          *string         `json:"DocID"`
	Address             *string         `json:"Direccion"`
	BirthDate           *time.Time      `json:"FechaNacimiento"`
	Salary              decimal.Decimal `json:"Sueldo"`
	HireDate            *time.Time      `json:"fecha_ingreso"`
	ResignDate          *time.Time      `json:"fecha_renuncia"`
	TypeID              int64           `json:"Tipo_EmpId"`
	TypeDescription     string          `json:"TipoEmpleado"`
	Commission          decimal.Decimal `json:"Comision"`
	PositionID          int64           `json:"Cargo_EmpId"`
	PositionDescription string          `json:"Descripcion"`
}

// EmployeeType is a row of tipo_empleado. Commission is a percentage.
type EmployeeType struct {
	ID          int64           `json:"Tipo_EmpId"`
	Description string          `json:"Descripcion"`
	Commission  decimal.Decimal `json:"Comision"`
}

// Position is a row of Cargo_Empleado.
type Position struct {
	ID          int64  `json:"Cargo_EmpId"`
	Description string `json:"Descripcion"`
}

// List returns every employee ordered by hire date.
func (r *EmployeeRepo) List(ctx context.Context) ([]EmployeeView, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT e.EmpId, e.Nombres, e.Apellidos, e.DocID, e.Direccion, e.FechaNacimiento, COALESCE(e.Sueldo, 0),
		       e.fecha_ingreso, e.fecha_renuncia, t.Tipo_EmpId, t.Descripcion, COALESCE(t.Comision, 0),
		       c.Cargo_EmpId, c.Descripcion
		FROM Empleado e
		JOIN tipo_empleado t ON e.Tipo_EmpId = t.Tipo_EmpId
		JOIN Cargo_Empleado c ON e.Cargo_EmpId = c.Cargo_EmpId
		ORDER BY e.fecha_ingreso`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]EmployeeView, 0)
	for rows.Next() {
		var e EmployeeView
		if err := rows.Scan(&e.ID, &e.FirstNames, &e.LastNames, &e.DocumentID, &e.Address, &e.BirthDate, &e.Salary,
			&e.HireDate, &e.ResignDate, &e.TypeID, &e.TypeDescription, &e.Commission,
			&e.PositionID, &e.PositionDescription); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Create inserts an employee and returns its id.
func (r *EmployeeRepo) Create(ctx context.Context, e EmployeeRecord) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO Empleado (Nombres, Apellidos, DocID, Tipo_EmpId, Cargo_EmpId, FechaNacimiento, fecha_ingreso, fecha_renuncia, Direccion, Sueldo)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.FirstNames, e.LastNames, e.DocumentID, e.TypeID, e.PositionID, e.BirthDate, e.HireDate, e.ResignDate, e.Address, e.Salary)
	if err != nil {
		if isDuplicate(err) {
			return 0, ErrDuplicate
		}
		return 0, err
	}
	return res.LastInsertId()
}

// Update overwrites an employee. ErrNotFound when the id does not exist.
func (r *EmployeeRepo) Update(ctx context.Context, e EmployeeRecord) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE Empleado
		 SET Nombres = ?, Apellidos = ?, DocID = ?, Tipo_EmpId = ?, Cargo_EmpId = ?,
		     FechaNacimiento = ?, fecha_ingreso = ?, fecha_renuncia = ?, Direccion = ?, Sueldo = ?
		 WHERE EmpId = ?`,
		e.FirstNames, e.LastNames, e.DocumentID, e.TypeID, e.PositionID,
		e.BirthDate, e.HireDate, e.ResignDate, e.Address, e.Salary, e.ID)
	if err != nil {
		if isDuplicate(err) {
			return ErrDuplicate
		}
		return err
	}
	return requireAffected(res)
}

// Delete removes an employee. ErrReferenced when sales or appointments still
// point at them, ErrNotFound when the id does not exist.
func (r *EmployeeRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM Empleado WHERE EmpId = ?", id)
	if err != nil {
		if isReferenced(err) {
			return ErrReferenced
		}
		return err
	}
	return requireAffected(res)
}

// Types lists employee types with their commission percentage.
func (r *EmployeeRepo) Types(ctx context.Context) ([]EmployeeType, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT Tipo_EmpId, Descripcion, COALESCE(Comision, 0) FROM tipo_empleado ORDER BY Tipo_EmpId")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]EmployeeType, 0)
	for rows.Next() {
		var t EmployeeType
		if err := rows.Scan(&t.ID, &t.Description, &t.Commission); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// Positions lists job positions.
func (r *EmployeeRepo) Positions(ctx context.Context) ([]Position, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT Cargo_EmpId, Descripcion FROM Cargo_Empleado ORDER BY Cargo_EmpId")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Position, 0)
	for rows.Next() {
		var p Position
		if err := rows.Scan(&p.ID, &p.Description); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
