package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseRepo reads and writes expenses and their payment breakdown.
type ExpenseRepo struct {
	db *sql.DB
}

func NewExpenseRepo(db *sql.DB) *ExpenseRepo { return &ExpenseRepo{db: db} }

// ExpenseRecord mirrors a row of gastos.
type ExpenseRecord struct {
	ID          int64
	Description string
	Amount      decimal.Decimal
	CategoryID  int64
	PeriodID    int64
	Date        sql.NullTime // on update, NULL keeps the stored date
	Notes       sql.NullString
	EmployeeID  sql.NullInt64
	UserID      int64
}

// ExpensePaymentRecord mirrors a row of gasto_tipo_pago.
type ExpensePaymentRecord struct {
	ExpenseID     int64
	PaymentTypeID int64
	Amount        decimal.Decimal
}

// CreateTx inserts the expense header and fills rec.ID.
func (r *ExpenseRepo) CreateTx(ctx context.Context, tx *sql.Tx, rec *ExpenseRecord) error {
	const q = `INSERT INTO gastos (descripcion, monto, categoria_id, periodo_id, fecha_gasto, observaciones, EmpId, usuario_id)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, q, rec.Description, rec.Amount, rec.CategoryID, rec.PeriodID,
		rec.Date, rec.Notes, rec.EmployeeID, rec.UserID)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	rec.ID = id
	return nil
}

// CreatePaymentTx inserts one payment row.
func (r *ExpenseRepo) CreatePaymentTx(ctx context.Context, tx *sql.Tx, p ExpensePaymentRecord) error {
	_, err := tx.ExecContext(ctx,
		"INSERT INTO gasto_tipo_pago (gasto_id, tipo_pago_id, monto) VALUES (?, ?, ?)",
		p.ExpenseID, p.PaymentTypeID, p.Amount)
	return err
}

// Exists reports whether the expense is stored.
func (r *ExpenseRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var ok bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM gastos WHERE gasto_id = ?)", id).Scan(&ok)
	return ok, err
}

// LockTx takes a row lock on the expense. ErrNotFound when it does not exist.
func (r *ExpenseRepo) LockTx(ctx context.Context, tx *sql.Tx, id int64) error {
	var got int64
	err := tx.QueryRowContext(ctx, "SELECT gasto_id FROM gastos WHERE gasto_id = ? FOR UPDATE", id).Scan(&got)
	return notFound(err)
}

// UpdateTx overwrites the header columns. The owning user is not changed.
func (r *ExpenseRepo) UpdateTx(ctx context.Context, tx *sql.Tx, rec ExpenseRecord) error {
	const q = `UPDATE gastos
	           SET descripcion = ?, monto = ?, categoria_id = ?, periodo_id = ?, fecha_gasto = COALESCE(?, fecha_gasto),
	               observaciones = ?, EmpId = ?
	           WHERE gasto_id = ?`
	res, err := tx.ExecContext(ctx, q, rec.Description, rec.Amount, rec.CategoryID, rec.PeriodID,
		rec.Date, rec.Notes, rec.EmployeeID, rec.ID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// DeletePaymentsTx removes every payment row of the expense.
func (r *ExpenseRepo) DeletePaymentsTx(ctx context.Context, tx *sql.Tx, id int64) error {
	_, err := tx.ExecContext(ctx, "DELETE FROM gasto_tipo_pago WHERE gasto_id = ?", id)
	return err
}

// DeleteTx removes the header. ErrNotFound when no row matched.
func (r *ExpenseRepo) DeleteTx(ctx context.Context, tx *sql.Tx, id int64) error {
	res, err := tx.ExecContext(ctx, "DELETE FROM gastos WHERE gasto_id = ?", id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// ExpenseView is one row of the expense list.
type ExpenseView struct {
	ID           int64           `json:"gasto_id"`
	Description  string          `json:"descripcion"`
	Amount       decimal.Decimal `json:"monto"`
	Date         *time.Time      `json:"fecha_gasto"`
	Notes        *string         `json:"observaciones"`
	CategoryID   int64           `json:"categoria_id"`
	CategoryName *string         `json:"categoria_nombre"`
	PeriodID     int64           `json:"periodo_id"`
	PeriodName   *string         `json:"periodo_nombre"`
	EmployeeID   *int64          `json:"EmpId"`
	EmployeeName *string         `json:"empleado_nombre"`
	UserName     *string         `json:"usuario_nombre"`
}

// List returns all expenses, newest first.
func (r *ExpenseRepo) List(ctx context.Context) ([]ExpenseView, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT g.gasto_id, g.descripcion, g.monto, g.fecha_gasto, g.observaciones,
		       g.categoria_id, c.nombre, g.periodo_id, p.nombre,
		       g.EmpId, CONCAT(e.Nombres, ' ', e.Apellidos), CONCAT(u.nombre, ' ', u.apellido)
		FROM gastos g
		LEFT JOIN categoria_gasto c ON g.categoria_id = c.categoria_id
		LEFT JOIN periodo p ON g.periodo_id = p.periodo_id
		LEFT JOIN Empleado e ON g.EmpId = e.EmpId
		LEFT JOIN usuario u ON g.usuario_id = u.usuario_id
		ORDER BY g.gasto_id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ExpenseView, 0)
	for rows.Next() {
		var v ExpenseView
		if err := rows.Scan(&v.ID, &v.Description, &v.Amount, &v.Date, &v.Notes,
			&v.CategoryID, &v.CategoryName, &v.PeriodID, &v.PeriodName,
			&v.EmployeeID, &v.EmployeeName, &v.UserName); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
