package service

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/diegogutti007/sistema-golden-backend/internal/model"
	"github.com/diegogutti007/sistema-golden-backend/internal/repository"
	"github.com/diegogutti007/sistema-golden-backend/internal/utils"
)

// Client-facing authentication messages.
const (
	MsgBadCredentials = "Usuario o contraseña incorrectos"
	MsgTokenRequired  = "Token de acceso requerido"
	MsgTokenInvalid   = "Token inválido o expirado"
)

// AuthConfig configures token issuing and password hashing.
type AuthConfig struct {
	Secret     string
	TokenTTL   time.Duration
	BcryptCost int
}

// AuthService authenticates users and manages their credentials.
type AuthService struct {
	users *repository.UserRepo
	cfg   AuthConfig
	log   *logrus.Logger
	now   func() time.Time

	// compared against when the username is unknown, so both failure paths
	// spend one bcrypt comparison
	dummyHash string
}

func NewAuthService(users *repository.UserRepo, cfg AuthConfig, log *logrus.Logger) *AuthService {
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 24 * time.Hour
	}
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = utils.DefaultBcryptCost
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	dummy, err := utils.HashPassword("golden-placeholder", cfg.BcryptCost)
	if err != nil {
		log.WithError(err).Warn("auth: placeholder hash failed")
	}
	return &AuthService{users: users, cfg: cfg, log: log, now: time.Now, dummyHash: dummy}
}

// LoginResult is returned by a successful Login.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      model.Profile
}

// Login checks the credentials and issues a session token. Unknown users,
// inactive accounts and wrong passwords fail identically.
func (s *AuthService) Login(ctx context.Context, username, password string) (LoginResult, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return LoginResult{}, ValidationError("Usuario y contraseña son requeridos")
	}

	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.VerifyPassword(s.dummyHash, password)
			s.log.WithField("module", "auth").Info("login rejected")
			return LoginResult{}, InvalidCredentialsError(MsgBadCredentials)
		}
		return LoginResult{}, UnknownError("Error en el servidor", err)
	}

	passwordOK := utils.VerifyPassword(u.PasswordHash, password)
	if !passwordOK || !u.IsActive() {
		s.log.WithFields(logrus.Fields{"module": "auth", "user_id": u.ID}).Info("login rejected")
		return LoginResult{}, InvalidCredentialsError(MsgBadCredentials)
	}

	tok, err := utils.NewSessionToken(s.cfg.Secret,
		model.Identity{UserID: u.ID, Username: u.Username, Role: u.Role}, s.cfg.TokenTTL, s.now())
	if err != nil {
		return LoginResult{}, UnknownError("Error en el servidor", err)
	}
	s.log.WithFields(logrus.Fields{"module": "auth", "user_id": u.ID}).Info("login ok")
	return LoginResult{Token: tok.Token, ExpiresAt: tok.Exp, User: u.Profile()}, nil
}

// VerifyToken decodes a bearer token. An empty token is Unauthorized; any
// other failure is Forbidden.
func (s *AuthService) VerifyToken(raw string) (model.Identity, error) {
	if strings.TrimSpace(raw) == "" {
		return model.Identity{}, UnauthorizedError(MsgTokenRequired)
	}
	id, err := utils.ParseSessionToken(s.cfg.Secret, raw, s.now())
	if err != nil {
		return model.Identity{}, newError(KindForbidden, MsgTokenInvalid, err)
	}
	return id, nil
}

// ChangePassword replaces the acting user's password after re-checking the
// current one. The session token stays valid.
func (s *AuthService) ChangePassword(ctx context.Context, who model.Identity, current, next string) error {
	if current == "" || next == "" {
		return ValidationError("La contraseña actual y la nueva contraseña son requeridas")
	}
	if utf8.RuneCountInString(next) < utils.MinPasswordLength {
		return ValidationError("La nueva contraseña debe tener al menos 6 caracteres")
	}

	u, err := s.users.GetByID(ctx, who.UserID)
	if err != nil {
		return fromRepo(err, "Usuario no encontrado")
	}
	if !utils.VerifyPassword(u.PasswordHash, current) {
		return InvalidCredentialsError("La contraseña actual es incorrecta")
	}

	hash, err := utils.HashPassword(next, s.cfg.BcryptCost)
	if err != nil {
		return UnknownError("Error al actualizar contraseña", err)
	}
	if err := s.users.UpdatePassword(ctx, u.ID, hash); err != nil {
		return fromRepo(err, "Usuario no encontrado")
	}
	s.log.WithFields(logrus.Fields{"module": "auth", "user_id": u.ID}).Info("password changed")
	return nil
}

// Profile returns the acting user's profile.
func (s *AuthService) Profile(ctx context.Context, userID int64) (model.Profile, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return model.Profile{}, fromRepo(err, "Usuario no encontrado")
	}
	return u.Profile(), nil
}

// UpdateProfile edits the acting user's profile and returns the stored result.
func (s *AuthService) UpdateProfile(ctx context.Context, userID int64, upd model.ProfileUpdate) (model.Profile, error) {
	if strings.TrimSpace(upd.FirstName) == "" || strings.TrimSpace(upd.LastName) == "" || strings.TrimSpace(upd.Email) == "" {
		return model.Profile{}, ValidationError("Nombre, apellido y correo son requeridos")
	}
	if err := Validate(upd); err != nil {
		return model.Profile{}, err
	}
	if err := s.users.UpdateProfile(ctx, userID, upd); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return model.Profile{}, ConflictError("El correo electrónico ya está en uso")
		}
		return model.Profile{}, fromRepo(err, "Usuario no encontrado")
	}
	return s.Profile(ctx, userID)
}

// Users lists every account without password hashes.
func (s *AuthService) Users(ctx context.Context) ([]model.Profile, error) {
	list, err := s.users.List(ctx)
	if err != nil {
		return nil, UnknownError("Error al obtener usuarios", err)
	}
	return list, nil
}

// TableExists reports whether the user table has been created.
func (s *AuthService) TableExists(ctx context.Context) (bool, error) {
	ok, err := s.users.TableExists(ctx)
	if err != nil {
		return false, UnknownError("Error verificando tabla", err)
	}
	return ok, nil
}
