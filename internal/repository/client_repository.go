package repository

import (
	"context"
	"database/sql"
)

// Client is a row of the cliente table.
type Client struct {
	ID        int64   `json:"ClienteID"`
	FirstName string  `json:"Nombre"`
	LastName  string  `json:"Apellido"`
	Phone     *string `json:"Telefono"`
	Email     *string `json:"Email"`
}

// ClientRepo manages salon clients.
type ClientRepo struct {
	db *sql.DB
}

func NewClientRepo(db *sql.DB) *ClientRepo { return &ClientRepo{db: db} }

// List returns every client.
func (r *ClientRepo) List(ctx context.Context) ([]Client, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT ClienteID, Nombre, Apellido, Telefono, Email FROM cliente ORDER BY ClienteID")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Client, 0)
	for rows.Next() {
		var c Client
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Phone, &c.Email); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Create inserts a client and returns its id.
func (r *ClientRepo) Create(ctx context.Context, firstName, lastName string, phone, email sql.NullString) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO cliente (Nombre, Apellido, Telefono, Email) VALUES (?, ?, ?, ?)",
		firstName, lastName, phone, email)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
