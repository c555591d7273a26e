package repository

import (
	"context"
	"database/sql"

	"github.com/diegogutti007/sistema-golden-backend/internal/model"
)

// UserRepo persists accounts of the `usuario` table.
type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{db: db} }

const userColumns = `usuario_id, COALESCE(nombre,''), COALESCE(apellido,''), usuario, COALESCE(correo,''),
	contrasena, COALESCE(rol,''), COALESCE(estado,''), COALESCE(telefono,''), COALESCE(direccion,'')`

func scanUser(row interface{ Scan(...any) error }) (model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Username, &u.Email,
		&u.PasswordHash, &u.Role, &u.Status, &u.Phone, &u.Address)
	return u, err
}

// GetByUsername fetches a user by exact, case-sensitive username.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (model.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM usuario WHERE BINARY usuario = ? LIMIT 1", username))
	return u, notFound(err)
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (model.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM usuario WHERE usuario_id = ? LIMIT 1", id))
	return u, notFound(err)
}

// List returns every account without password hashes.
func (r *UserRepo) List(ctx context.Context) ([]model.Profile, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+userColumns+" FROM usuario ORDER BY usuario_id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Profile, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u.Profile())
	}
	return out, rows.Err()
}

// Create inserts an account with an already hashed password and returns its id.
func (r *UserRepo) Create(ctx context.Context, u model.User) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO usuario (nombre, apellido, usuario, correo, contrasena, rol, estado)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		u.FirstName, u.LastName, u.Username, u.Email, u.PasswordHash, u.Role, u.Status)
	if err != nil {
		if isDuplicate(err) {
			return 0, ErrDuplicate
		}
		return 0, err
	}
	return res.LastInsertId()
}

// UpdatePassword stores a new hash for the user id.
func (r *UserRepo) UpdatePassword(ctx context.Context, id int64, hash string) error {
	res, err := r.db.ExecContext(ctx, "UPDATE usuario SET contrasena = ? WHERE usuario_id = ?", hash, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// UpdatePasswordByUsername stores a new hash for the named account.
func (r *UserRepo) UpdatePasswordByUsername(ctx context.Context, username, hash string) error {
	res, err := r.db.ExecContext(ctx, "UPDATE usuario SET contrasena = ? WHERE BINARY usuario = ?", hash, username)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// UpdateProfile changes the editable profile columns.
func (r *UserRepo) UpdateProfile(ctx context.Context, id int64, p model.ProfileUpdate) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE usuario SET nombre = ?, apellido = ?, correo = ?, telefono = ?, direccion = ?
		 WHERE usuario_id = ?`,
		p.FirstName, p.LastName, p.Email, model.NullString(p.Phone), model.NullString(p.Address), id)
	if err != nil {
		if isDuplicate(err) {
			return ErrDuplicate
		}
		return err
	}
	return requireAffected(res)
}

// TableExists reports whether the usuario table is present.
func (r *UserRepo) TableExists(ctx context.Context) (bool, error) {
	rows, err := r.db.QueryContext(ctx, "SHOW TABLES LIKE 'usuario'")
	if err != nil {
		return false, err
	}
	defer rows.Close()
	found := rows.Next()
	return found, rows.Err()
}
