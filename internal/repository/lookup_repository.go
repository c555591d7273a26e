package repository

import (
	"context"
	"database/sql"
	"strconv"
	"strings"
)

// LookupRepo serves the small catalogs the front end fills its selects from.
type LookupRepo struct {
	db *sql.DB
}

func NewLookupRepo(db *sql.DB) *LookupRepo { return &LookupRepo{db: db} }

type Category struct {
	ID   int64  `json:"categoria_id"`
	Name string `json:"nombre"`
}

type Period struct {
	ID   int64  `json:"periodo_id"`
	Name string `json:"nombre"`
}

type PaymentType struct {
	ID   int64  `json:"tipo_pago_id"`
	Name string `json:"nombre"`
}

type SaleType struct {
	ID          int64  `json:"Tipo_VentaID"`
	Description string `json:"Descripcion"`
}

func (r *LookupRepo) Categories(ctx context.Context) ([]Category, error) {
	return listPairs(ctx, r.db, "SELECT categoria_id, nombre FROM categoria_gasto ORDER BY nombre",
		func(id int64, name string) Category { return Category{ID: id, Name: name} })
}

// Periods are ordered most recent first.
func (r *LookupRepo) Periods(ctx context.Context) ([]Period, error) {
	return listPairs(ctx, r.db, "SELECT periodo_id, nombre FROM periodo ORDER BY fecha_inicio DESC",
		func(id int64, name string) Period { return Period{ID: id, Name: name} })
}

func (r *LookupRepo) PaymentTypes(ctx context.Context) ([]PaymentType, error) {
	return listPairs(ctx, r.db, "SELECT tipo_pago_id, nombre FROM tipo_pago ORDER BY nombre",
		func(id int64, name string) PaymentType { return PaymentType{ID: id, Name: name} })
}

func (r *LookupRepo) SaleTypes(ctx context.Context) ([]SaleType, error) {
	return listPairs(ctx, r.db, "SELECT Tipo_VentaID, Descripcion FROM tipo_venta",
		func(id int64, name string) SaleType { return SaleType{ID: id, Description: name} })
}

// Articles returns the article catalog with every column it has; the
// catalog is maintained outside this service and its shape varies.
func (r *LookupRepo) Articles(ctx context.Context) ([]map[string]any, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT * FROM Articulo")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMaps(rows)
}

func listPairs[T any](ctx context.Context, db *sql.DB, q string, mk func(int64, string) T) ([]T, error) {
	rows, err := db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		var (
			id   int64
			name sql.NullString
		)
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		out = append(out, mk(id, name.String))
	}
	return out, rows.Err()
}

// scanMaps reads arbitrary rows into column-keyed maps. Integer columns
// become numbers; text and decimals stay strings.
func scanMaps(rows *sql.Rows) ([]map[string]any, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	types, err := rows.ColumnTypes()
	if err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0)
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		m := make(map[string]any, len(cols))
		for i, c := range cols {
			m[c] = normalize(vals[i], types[i].DatabaseTypeName())
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func normalize(v any, dbType string) any {
	b, ok := v.([]byte)
	if !ok {
		return v
	}
	s := string(b)
	if strings.Contains(dbType, "INT") {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n
		}
	}
	return s
}
