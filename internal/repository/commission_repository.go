package repository

import (
	"context"
	"database/sql"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// CommissionRepo aggregates sold line items per employee.
type CommissionRepo struct {
	db *sql.DB
}

func NewCommissionRepo(db *sql.DB) *CommissionRepo { return &CommissionRepo{db: db} }

// CommissionSummary is one employee's sales and commission in a date range.
type CommissionSummary struct {
	EmployeeID   int64           `json:"EmpId"`
	Employee     string          `json:"Empleado"`
	Position     *string         `json:"Cargo"`
	EmployeeType *string         `json:"TipoEmpleado"`
	Percentage   decimal.Decimal `json:"Porcentaje"`
	TotalSales   decimal.Decimal `json:"TotalVentas"`
	Commission   decimal.Decimal `json:"TotalComision"`
}

// CommissionLine is one line item an employee performed.
type CommissionLine struct {
	SaleID    int64           `json:"VentaID"`
	Date      time.Time       `json:"FechaVenta"`
	Article   string          `json:"Articulo"`
	Quantity  int64           `json:"Cantidad"`
	UnitPrice decimal.Decimal `json:"PrecioUnitario"`
	Amount    decimal.Decimal `json:"Importe"`
}

var hundred = decimal.NewFromInt(100)

// Summary returns, per employee with sales between from and to inclusive,
// the sum of line amounts and the commission owed, highest first. The
// commission is rounded to cents.
func (r *CommissionRepo) Summary(ctx context.Context, from, to string) ([]CommissionSummary, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT e.EmpId, CONCAT(e.Nombres, ' ', e.Apellidos), ce.Descripcion, te.Descripcion,
		       COALESCE(te.Comision, 0), COALESCE(SUM(vd.Cantidad * vd.PrecioUnitario), 0)
		FROM Empleado e
		LEFT JOIN tipo_empleado te ON e.Tipo_EmpId = te.Tipo_EmpId
		LEFT JOIN Cargo_Empleado ce ON e.Cargo_EmpId = ce.Cargo_EmpId
		JOIN venta_detalle vd ON e.EmpId = vd.EmpID
		JOIN venta v ON vd.VentaID = v.VentaID
		WHERE DATE(v.FechaVenta) BETWEEN ? AND ?
		GROUP BY e.EmpId, e.Nombres, e.Apellidos, ce.Descripcion, te.Descripcion, te.Comision`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]CommissionSummary, 0)
	for rows.Next() {
		var s CommissionSummary
		if err := rows.Scan(&s.EmployeeID, &s.Employee, &s.Position, &s.EmployeeType, &s.Percentage, &s.TotalSales); err != nil {
			return nil, err
		}
		s.Commission = s.TotalSales.Mul(s.Percentage).Div(hundred).Round(2)
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	sortByCommission(out)
	return out, nil
}

func sortByCommission(s []CommissionSummary) {
	sort.SliceStable(s, func(i, j int) bool { return s[i].Commission.GreaterThan(s[j].Commission) })
}

// Detail lists the line items an employee performed between from and to.
func (r *CommissionRepo) Detail(ctx context.Context, employeeID int64, from, to string) ([]CommissionLine, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT v.VentaID, v.FechaVenta, a.Nombre, vd.Cantidad, vd.PrecioUnitario, vd.Cantidad * vd.PrecioUnitario
		FROM venta_detalle vd
		JOIN venta v ON vd.VentaID = v.VentaID
		JOIN Articulo a ON vd.ArticuloID = a.ArticuloID
		WHERE vd.EmpID = ? AND DATE(v.FechaVenta) BETWEEN ? AND ?
		ORDER BY v.FechaVenta DESC`, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]CommissionLine, 0)
	for rows.Next() {
		var l CommissionLine
		if err := rows.Scan(&l.SaleID, &l.Date, &l.Article, &l.Quantity, &l.UnitPrice, &l.Amount); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
