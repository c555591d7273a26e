package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/diegogutti007/sistema-golden-backend/internal/model"
	"github.com/diegogutti007/sistema-golden-backend/internal/service"
)

// AuthHandler serves login, password and profile endpoints.
type AuthHandler struct {
	Auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{Auth: auth}
}

type loginReq struct {
	Username string `json:"usuario"`
	Password string `json:"contrasena"`
}

type changePasswordReq struct {
	Current string `json:"passwordActual"`
	Next    string `json:"nuevoPassword"`
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Usuario y contraseña son requeridos")
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	res, err := h.Auth.Login(ctx, req.Username, req.Password)
	if err != nil {
		return writeError(c, err)
	}
	return respond(c, http.StatusOK, echo.Map{
		"message": "Login exitoso",
		"token":   res.Token,
		"expira":  res.ExpiresAt,
		"user":    res.User,
	})
}

// ChangePassword handles POST /api/auth/cambiar-password.
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	who, err := identity(c)
	if err != nil {
		return writeError(c, err)
	}
	var req changePasswordReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "La contraseña actual y la nueva contraseña son requeridas")
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.Auth.ChangePassword(ctx, who, req.Current, req.Next); err != nil {
		return writeError(c, err)
	}
	return respond(c, http.StatusOK, echo.Map{"message": "Contraseña actualizada exitosamente"})
}

// Profile handles GET /api/auth/perfil.
func (h *AuthHandler) Profile(c echo.Context) error {
	who, err := identity(c)
	if err != nil {
		return writeError(c, err)
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	p, err := h.Auth.Profile(ctx, who.UserID)
	if err != nil {
		return writeError(c, err)
	}
	return respond(c, http.StatusOK, echo.Map{"user": p})
}

// UpdateProfile handles PUT /api/auth/perfil.
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	who, err := identity(c)
	if err != nil {
		return writeError(c, err)
	}
	var req model.ProfileUpdate
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Nombre, apellido y correo son requeridos")
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	p, err := h.Auth.UpdateProfile(ctx, who.UserID, req)
	if err != nil {
		return writeError(c, err)
	}
	return respond(c, http.StatusOK, echo.Map{"message": "Perfil actualizado exitosamente", "user": p})
}

// Users handles GET /api/auth/users.
func (h *AuthHandler) Users(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	users, err := h.Auth.Users(ctx)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"users": users})
}

// CheckTable handles GET /api/auth/check-table.
func (h *AuthHandler) CheckTable(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	exists, err := h.Auth.TableExists(ctx)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"tableExists": exists})
}
