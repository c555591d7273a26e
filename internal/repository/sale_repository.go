package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// SaleRepo reads and writes sales with their line items and payments.
// Writes take the caller's transaction; the caller commits or rolls back.
type SaleRepo struct {
	db *sql.DB
}

func NewSaleRepo(db *sql.DB) *SaleRepo { return &SaleRepo{db: db} }

// SaleRecord mirrors a row of venta.
type SaleRecord struct {
	ID            int64
	ClientID      int64
	Date          time.Time
	Total         decimal.Decimal
	AppointmentID sql.NullInt64
	Notes         sql.NullString
	UserID        int64
	Status        string
}

// SaleLineRecord mirrors a row of venta_detalle.
type SaleLineRecord struct {
	SaleID     int64
	ArticleID  int64
	Quantity   int64
	UnitPrice  decimal.Decimal
	EmployeeID sql.NullInt64
}

// SalePaymentRecord mirrors a row of venta_tipo_pago.
type SalePaymentRecord struct {
	SaleID        int64
	PaymentTypeID int64
	Amount        decimal.Decimal
}

// CreateTx inserts the sale header and fills rec.ID.
func (r *SaleRepo) CreateTx(ctx context.Context, tx *sql.Tx, rec *SaleRecord) error {
	const q = `INSERT INTO venta (ClienteID, FechaVenta, Total, CitaID, Observaciones, usuario_id, Estado)
	           VALUES (?, ?, ?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, q, rec.ClientID, rec.Date, rec.Total, rec.AppointmentID, rec.Notes, rec.UserID, rec.Status)
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

// CreateLinesBulkTx inserts all line items in one statement.
func (r *SaleRepo) CreateLinesBulkTx(ctx context.Context, tx *sql.Tx, lines []SaleLineRecord) error {
	if len(lines) == 0 {
		return nil
	}
	var sb strings.Builder
	sb.WriteString("INSERT INTO venta_detalle (VentaID, ArticuloID, Cantidad, PrecioUnitario, EmpID) VALUES ")
	args := make([]any, 0, len(lines)*5)
	for i, l := range lines {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(?, ?, ?, ?, ?)")
		args = append(args, l.SaleID, l.ArticleID, l.Quantity, l.UnitPrice, l.EmployeeID)
	}
	_, err := tx.ExecContext(ctx, sb.String(), args...)
	return err
}

// CreatePaymentsBulkTx inserts all payment rows in one statement.
func (r *SaleRepo) CreatePaymentsBulkTx(ctx context.Context, tx *sql.Tx, pays []SalePaymentRecord) error {
	if len(pays) == 0 {
		return nil
	}
	var sb strings.Builder
	sb.WriteString("INSERT INTO venta_tipo_pago (VentaID, tipo_pago_id, monto) VALUES ")
	args := make([]any, 0, len(pays)*3)
	for i, p := range pays {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(?, ?, ?)")
		args = append(args, p.SaleID, p.PaymentTypeID, p.Amount)
	}
	_, err := tx.ExecContext(ctx, sb.String(), args...)
	return err
}

// DeletePaymentsTx removes the payment rows of a sale.
func (r *SaleRepo) DeletePaymentsTx(ctx context.Context, tx *sql.Tx, saleID int64) error {
	_, err := tx.ExecContext(ctx, "DELETE FROM venta_tipo_pago WHERE VentaID = ?", saleID)
	return err
}

// DeleteLinesTx removes the line items of a sale.
func (r *SaleRepo) DeleteLinesTx(ctx context.Context, tx *sql.Tx, saleID int64) error {
	_, err := tx.ExecContext(ctx, "DELETE FROM venta_detalle WHERE VentaID = ?", saleID)
	return err
}

// DeleteTx removes the header. ErrNotFound when no row matched.
func (r *SaleRepo) DeleteTx(ctx context.Context, tx *sql.Tx, saleID int64) error {
	res, err := tx.ExecContext(ctx, "DELETE FROM venta WHERE VentaID = ?", saleID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// SaleSummary is one row of the paginated sales list.
type SaleSummary struct {
	ID         int64           `json:"VentaID"`
	ClientID   int64           `json:"ClienteID"`
	ClientName string          `json:"ClienteNombre"`
	Date       time.Time       `json:"FechaVenta"`
	Total      decimal.Decimal `json:"Total"`
	Status     string          `json:"Estado"`
	Notes      *string         `json:"Observaciones"`
}

// List returns one page of sales, newest first, matching search against the
// client's full name or the sale date, together with the total match count.
func (r *SaleRepo) List(ctx context.Context, search string, limit, offset int) ([]SaleSummary, int, error) {
	like := "%" + search + "%"
	const where = `FROM venta v
	               JOIN cliente c ON v.ClienteID = c.ClienteID
	               WHERE CONCAT(c.Nombre, ' ', c.Apellido) LIKE ? OR v.FechaVenta LIKE ?`

	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) "+where, like, like).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT v.VentaID, v.ClienteID, CONCAT(c.Nombre, ' ', c.Apellido), v.FechaVenta, v.Total,
		        COALESCE(v.Estado, ''), v.Observaciones `+where+`
		 ORDER BY v.VentaID DESC LIMIT ? OFFSET ?`,
		like, like, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]SaleSummary, 0, limit)
	for rows.Next() {
		var s SaleSummary
		if err := rows.Scan(&s.ID, &s.ClientID, &s.ClientName, &s.Date, &s.Total, &s.Status, &s.Notes); err != nil {
			return nil, 0, err
		}
		out = append(out, s)
	}
	return out, total, rows.Err()
}

// SaleLineView is a line item with its article name.
type SaleLineView struct {
	ArticleID   int64           `json:"ArticuloID"`
	ArticleName string          `json:"ArticuloNombre"`
	Quantity    int64           `json:"Cantidad"`
	UnitPrice   decimal.Decimal `json:"PrecioUnitario"`
	Amount      decimal.Decimal `json:"Importe"`
	EmployeeID  *int64          `json:"EmpID"`
}

// SalePaymentView is a payment with its payment type name.
type SalePaymentView struct {
	ID          int64           `json:"venta_pago_id"`
	PaymentType string          `json:"TipoPago"`
	Amount      decimal.Decimal `json:"monto"`
}

// SaleDetail is a sale header with its children.
type SaleDetail struct {
	Sale     SaleSummary       `json:"venta"`
	Lines    []SaleLineView    `json:"detalles"`
	Payments []SalePaymentView `json:"pagos"`
}

// GetDetail loads one sale with its line items and payments.
func (r *SaleRepo) GetDetail(ctx context.Context, saleID int64) (SaleDetail, error) {
	var d SaleDetail
	s := &d.Sale
	err := r.db.QueryRowContext(ctx,
		`SELECT v.VentaID, v.ClienteID, COALESCE(CONCAT(c.Nombre, ' ', c.Apellido), ''), v.FechaVenta, v.Total,
		        COALESCE(v.Estado, ''), v.Observaciones
		 FROM venta v
		 LEFT JOIN cliente c ON v.ClienteID = c.ClienteID
		 WHERE v.VentaID = ?`, saleID).
		Scan(&s.ID, &s.ClientID, &s.ClientName, &s.Date, &s.Total, &s.Status, &s.Notes)
	if err != nil {
		return d, notFound(err)
	}

	lines, err := r.db.QueryContext(ctx,
		`SELECT d.ArticuloID, a.Nombre, d.Cantidad, d.PrecioUnitario, d.Cantidad * d.PrecioUnitario, d.EmpID
		 FROM venta_detalle d
		 JOIN Articulo a ON d.ArticuloID = a.ArticuloID
		 WHERE d.VentaID = ?`, saleID)
	if err != nil {
		return d, err
	}
	defer lines.Close()
	d.Lines = make([]SaleLineView, 0)
	for lines.Next() {
		var l SaleLineView
		if err := lines.Scan(&l.ArticleID, &l.ArticleName, &l.Quantity, &l.UnitPrice, &l.Amount, &l.EmployeeID); err != nil {
			return d, err
		}
		d.Lines = append(d.Lines, l)
	}
	if err := lines.Err(); err != nil {
		return d, err
	}

	pays, err := r.db.QueryContext(ctx,
		`SELECT vp.venta_pago_id, tp.nombre, vp.monto
		 FROM venta_tipo_pago vp
		 JOIN tipo_pago tp ON vp.tipo_pago_id = tp.tipo_pago_id
		 WHERE vp.VentaID = ?`, saleID)
	if err != nil {
		return d, err
	}
	defer pays.Close()
	d.Payments = make([]SalePaymentView, 0)
	for pays.Next() {
		var p SalePaymentView
		if err := pays.Scan(&p.ID, &p.PaymentType, &p.Amount); err != nil {
			return d, err
		}
		d.Payments = append(d.Payments, p)
	}
	return d, pays.Err()
}

// SaleStatsFilter narrows the statistics query. Empty fields are ignored.
type SaleStatsFilter struct {
	Search string
	From   string
	To     string
}

// SaleStats aggregates sales by status.
type SaleStats struct {
	Total     decimal.Decimal `json:"totalVentas"`
	Paid      int64           `json:"ventasPagadas"`
	Cancelled int64           `json:"ventasAnuladas"`
	Count     int64           `json:"totalRegistros"`
}

// Stats sums totals and counts sales per status.
func (r *SaleRepo) Stats(ctx context.Context, f SaleStatsFilter, paidStatus, cancelledStatus string) (SaleStats, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT COALESCE(SUM(Total), 0),
	                       COUNT(CASE WHEN Estado = ? THEN 1 END),
	                       COUNT(CASE WHEN Estado = ? THEN 1 END),
	                       COUNT(*)
	                FROM venta WHERE 1=1`)
	args := []any{paidStatus, cancelledStatus}
	if s := strings.TrimSpace(f.Search); s != "" {
		sb.WriteString(" AND (ClienteID IN (SELECT ClienteID FROM cliente WHERE Nombre LIKE ?) OR VentaID LIKE ?)")
		args = append(args, "%"+s+"%", "%"+s+"%")
	}
	if from := strings.TrimSpace(f.From); from != "" {
		sb.WriteString(" AND DATE(FechaVenta) >= ?")
		args = append(args, from)
	}
	if to := strings.TrimSpace(f.To); to != "" {
		sb.WriteString(" AND DATE(FechaVenta) <= ?")
		args = append(args, to)
	}

	var st SaleStats
	err := r.db.QueryRowContext(ctx, sb.String(), args...).Scan(&st.Total, &st.Paid, &st.Cancelled, &st.Count)
	return st, err
}
