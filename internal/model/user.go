package model

// User represents a row of the `usuario` table. PasswordHash holds the
// bcrypt hash and must never leave the service layer; handlers respond with
// Profile instead.
type User struct {
	ID           int64  // usuario.usuario_id
	FirstName    string // usuario.nombre
	LastName     string // usuario.apellido
	Username     string // usuario.usuario
	Email        string // usuario.correo
	PasswordHash string // usuario.contrasena
	Role         string // usuario.rol
	Status       string // usuario.estado ("activo" | "inactivo")
	Phone        string // usuario.telefono
	Address      string // usuario.direccion
}

// UserStatusActive is the only estado value that may log in.
const UserStatusActive = "activo"

// IsActive reports whether the account may authenticate.
func (u User) IsActive() bool { return u.Status == UserStatusActive }

// Profile is the sanitized, client-facing view of a User.
type Profile struct {
	ID        int64  `json:"usuario_id"`
	FirstName string `json:"nombre"`
	LastName  string `json:"apellido"`
	Username  string `json:"usuario"`
	Email     string `json:"correo"`
	Role      string `json:"rol"`
	Status    string `json:"estado"`
	Phone     string `json:"telefono,omitempty"`
	Address   string `json:"direccion,omitempty"`
}

// Profile strips the password hash.
func (u User) Profile() Profile {
	return Profile{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		Status:    u.Status,
		Phone:     u.Phone,
		Address:   u.Address,
	}
}

// Identity is the acting user decoded from a verified session token.
type Identity struct {
	UserID   int64
	Username string
	Role     string
}

// ProfileUpdate carries the editable profile fields.
type ProfileUpdate struct {
	FirstName string `json:"nombre" validate:"required"`
	LastName  string `json:"apellido" validate:"required"`
	Email     string `json:"correo" validate:"required,email"`
	Phone     string `json:"telefono"`
	Address   string `json:"direccion"`
}
