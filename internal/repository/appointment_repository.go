package repository

import (
	"context"
	"database/sql"
	"time"
)

// AppointmentRepo manages the citas table.
type AppointmentRepo struct {
	db *sql.DB
}

func NewAppointmentRepo(db *sql.DB) *AppointmentRepo { return &AppointmentRepo{db: db} }

// AppointmentRecord holds the writable columns of citas.
type AppointmentRecord struct {
	ID          int64
	ClientID    sql.NullInt64
	EmployeeID  sql.NullInt64
	Title       sql.NullString
	Description sql.NullString
	Start       time.Time
	End         time.Time
	Status      string
}

// AppointmentRow is an appointment joined with client and employee names.
type AppointmentRow struct {
	ID           int64
	ClientID     *int64
	EmployeeID   *int64
	Title        *string
	Description  *string
	Start        time.Time
	End          time.Time
	Status       *string
	ClientName   *string
	EmployeeName *string
}

// CompleteTx marks an appointment completed on behalf of saleID inside the
// sale transaction. ErrNotFound means no such appointment, ErrCancelled
// means it was cancelled, and ErrConflict means a different sale already
// references it. A row that is already completed but unsold is accepted.
func (r *AppointmentRepo) CompleteTx(ctx context.Context, tx *sql.Tx, id, saleID int64, completed, cancelled string) error {
	var status sql.NullString
	err := tx.QueryRowContext(ctx, "SELECT Estado FROM citas WHERE CitaID = ? FOR UPDATE", id).Scan(&status)
	if err != nil {
		return notFound(err)
	}
	if status.Valid && status.String == cancelled {
		return ErrCancelled
	}

	var sold int
	err = tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM venta WHERE CitaID = ? AND VentaID <> ?", id, saleID).Scan(&sold)
	if err != nil {
		return err
	}
	if sold > 0 {
		return ErrConflict
	}

	_, err = tx.ExecContext(ctx, "UPDATE citas SET Estado = ? WHERE CitaID = ?", completed, id)
	return err
}

// List returns every appointment ordered by start time.
func (r *AppointmentRepo) List(ctx context.Context) ([]AppointmentRow, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT c.CitaID, c.ClienteID, c.EmpId, c.Titulo, c.Descripcion, c.FechaInicio, c.FechaFin, c.Estado,
		       CONCAT(p.Nombre, ' ', p.Apellido), CONCAT(e.Nombres, ' ', e.Apellidos)
		FROM citas c
		LEFT JOIN cliente p ON c.ClienteID = p.ClienteID
		LEFT JOIN Empleado e ON c.EmpId = e.EmpId
		ORDER BY c.FechaInicio`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]AppointmentRow, 0)
	for rows.Next() {
		var a AppointmentRow
		if err := rows.Scan(&a.ID, &a.ClientID, &a.EmployeeID, &a.Title, &a.Description,
			&a.Start, &a.End, &a.Status, &a.ClientName, &a.EmployeeName); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Create inserts an appointment and returns its id.
func (r *AppointmentRepo) Create(ctx context.Context, a AppointmentRecord) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO citas (ClienteID, EmpId, Titulo, Descripcion, FechaInicio, FechaFin, Estado)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.ClientID, a.EmployeeID, a.Title, a.Description, a.Start, a.End, a.Status)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Update overwrites an appointment. ErrNotFound when the id does not exist.
func (r *AppointmentRepo) Update(ctx context.Context, a AppointmentRecord) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE citas SET ClienteID = ?, EmpId = ?, Titulo = ?, Descripcion = ?, FechaInicio = ?, FechaFin = ?, Estado = ?
		 WHERE CitaID = ?`,
		a.ClientID, a.EmployeeID, a.Title, a.Description, a.Start, a.End, a.Status, a.ID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// Delete removes an appointment. ErrNotFound when the id does not exist.
func (r *AppointmentRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM citas WHERE CitaID = ?", id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// AppointmentOption is an entry of the appointment picker used when
// registering a sale.
type AppointmentOption struct {
	ID       int64  `json:"CitaID"`
	Label    string `json:"nombre"`
	ClientID *int64 `json:"ClienteID"`
}

// ListUnsold returns up to 15 appointments no sale references yet, whose
// client id matches search. The label reads like "5 May. 14:30 - Manicure".
func (r *AppointmentRepo) ListUnsold(ctx context.Context, search string) ([]AppointmentOption, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT DISTINCT c.CitaID,
		       CONCAT(DAY(c.FechaInicio), ' ',
		              ELT(MONTH(c.FechaInicio), 'Ene.', 'Feb.', 'Mar.', 'Abr.', 'May.', 'Jun.',
		                  'Jul.', 'Ago.', 'Sep.', 'Oct.', 'Nov.', 'Dic.'),
		              ' ', DATE_FORMAT(c.FechaInicio, '%H:%i'), ' - ', COALESCE(c.Titulo, '')),
		       c.ClienteID
		FROM citas c
		LEFT JOIN venta v ON c.CitaID = v.CitaID
		WHERE v.VentaID IS NULL AND c.ClienteID LIKE ?
		LIMIT 15`, "%"+search+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]AppointmentOption, 0)
	for rows.Next() {
		var o AppointmentOption
		if err := rows.Scan(&o.ID, &o.Label, &o.ClientID); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
