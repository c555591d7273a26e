package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diegogutti007/sistema-golden-backend/internal/model"
	"github.com/diegogutti007/sistema-golden-backend/internal/repository"
	"github.com/diegogutti007/sistema-golden-backend/internal/utils"
)

var userCols = []string{"usuario_id", "nombre", "apellido", "usuario", "correo", "contrasena", "rol", "estado", "telefono", "direccion"}

func newAuth(t *testing.T) (*AuthService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	svc := NewAuthService(repository.NewUserRepo(db),
		AuthConfig{Secret: "test-secret", TokenTTL: time.Hour, BcryptCost: 4}, quietLogger())
	return svc, mock
}

func hashed(t *testing.T, plain string) string {
	t.Helper()
	h, err := utils.HashPassword(plain, 4)
	require.NoError(t, err)
	return h
}

func userRow(hash, status string) *sqlmock.Rows {
	return sqlmock.NewRows(userCols).
		AddRow(int64(7), "Diego", "Gutierrez", "dgutierrez", "diego@golden.pe", hash, "admin", status, "", "")
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	svc, mock := newAuth(t)
	mock.ExpectQuery("WHERE BINARY usuario = \\?").WithArgs("dgutierrez").
		WillReturnRows(userRow(hashed(t, "secreto1"), "activo"))

	res, err := svc.Login(context.Background(), "dgutierrez", "secreto1")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, int64(7), res.User.ID)
	assert.Equal(t, "admin", res.User.Role)

	id, err := svc.VerifyToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, model.Identity{UserID: 7, Username: "dgutierrez", Role: "admin"}, id)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, mock := newAuth(t)
	hash := hashed(t, "secreto1")

	mock.ExpectQuery("FROM usuario").WithArgs("nadie").WillReturnRows(sqlmock.NewRows(userCols))
	mock.ExpectQuery("FROM usuario").WithArgs("dgutierrez").WillReturnRows(userRow(hash, "activo"))
	mock.ExpectQuery("FROM usuario").WithArgs("dgutierrez").WillReturnRows(userRow(hash, "inactivo"))

	_, unknown := svc.Login(context.Background(), "nadie", "secreto1")
	_, wrong := svc.Login(context.Background(), "dgutierrez", "otra")
	_, inactive := svc.Login(context.Background(), "dgutierrez", "secreto1")

	for _, err := range []error{unknown, wrong, inactive} {
		require.Error(t, err)
		assert.Equal(t, KindInvalidCredentials, KindOf(err))
		assert.Equal(t, http.StatusUnauthorized, StatusOf(err))
		assert.Equal(t, MsgBadCredentials, MessageOf(err))
	}
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginRequiresBothFields(t *testing.T) {
	svc, mock := newAuth(t)
	_, err := svc.Login(context.Background(), "  ", "x")
	assert.Equal(t, KindValidation, KindOf(err))
	_, err = svc.Login(context.Background(), "dgutierrez", "")
	assert.Equal(t, KindValidation, KindOf(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginStoreFailureIsServerError(t *testing.T) {
	svc, mock := newAuth(t)
	mock.ExpectQuery("FROM usuario").WillReturnError(errors.New("bad connection"))

	_, err := svc.Login(context.Background(), "dgutierrez", "secreto1")
	assert.Equal(t, http.StatusInternalServerError, StatusOf(err))
	assert.Equal(t, "Error en el servidor", MessageOf(err))
}

func TestVerifyToken(t *testing.T) {
	svc, _ := newAuth(t)

	_, err := svc.VerifyToken("")
	assert.Equal(t, http.StatusUnauthorized, StatusOf(err))
	assert.Equal(t, MsgTokenRequired, MessageOf(err))

	_, err = svc.VerifyToken("not.a.token")
	assert.Equal(t, http.StatusForbidden, StatusOf(err))
	assert.Equal(t, MsgTokenInvalid, MessageOf(err))

	other := NewAuthService(nil, AuthConfig{Secret: "another", BcryptCost: 4}, quietLogger())
	tok, err := utils.NewSessionToken("another", model.Identity{UserID: 1, Username: "x", Role: "admin"}, time.Hour, time.Now())
	require.NoError(t, err)
	_, err = other.VerifyToken(tok.Token)
	require.NoError(t, err)
	_, err = svc.VerifyToken(tok.Token)
	assert.Equal(t, KindForbidden, KindOf(err))
}

func TestVerifyTokenExpired(t *testing.T) {
	svc, _ := newAuth(t)
	issued := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	tok, err := utils.NewSessionToken("test-secret", model.Identity{UserID: 7, Username: "dgutierrez", Role: "admin"}, time.Hour, issued)
	require.NoError(t, err)

	svc.now = func() time.Time { return issued.Add(2 * time.Hour) }
	_, err = svc.VerifyToken(tok.Token)
	assert.Equal(t, KindForbidden, KindOf(err))
}

func TestChangePassword(t *testing.T) {
	who := model.Identity{UserID: 7, Username: "dgutierrez", Role: "admin"}

	t.Run("short password rejected before store", func(t *testing.T) {
		svc, mock := newAuth(t)
		err := svc.ChangePassword(context.Background(), who, "secreto1", "abc")
		assert.Equal(t, KindValidation, KindOf(err))
		assert.Equal(t, "La nueva contraseña debe tener al menos 6 caracteres", MessageOf(err))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("wrong current password", func(t *testing.T) {
		svc, mock := newAuth(t)
		mock.ExpectQuery("WHERE usuario_id = \\?").WithArgs(int64(7)).WillReturnRows(userRow(hashed(t, "secreto1"), "activo"))
		err := svc.ChangePassword(context.Background(), who, "equivocada", "nueva123")
		assert.Equal(t, http.StatusUnauthorized, StatusOf(err))
		assert.Equal(t, "La contraseña actual es incorrecta", MessageOf(err))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("stores new hash", func(t *testing.T) {
		svc, mock := newAuth(t)
		mock.ExpectQuery("WHERE usuario_id = \\?").WithArgs(int64(7)).WillReturnRows(userRow(hashed(t, "secreto1"), "activo"))
		mock.ExpectExec("UPDATE usuario SET contrasena").WithArgs(sqlmock.AnyArg(), int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		require.NoError(t, svc.ChangePassword(context.Background(), who, "secreto1", "nueva123"))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing user", func(t *testing.T) {
		svc, mock := newAuth(t)
		mock.ExpectQuery("WHERE usuario_id = \\?").WillReturnRows(sqlmock.NewRows(userCols))
		err := svc.ChangePassword(context.Background(), who, "secreto1", "nueva123")
		assert.Equal(t, http.StatusNotFound, StatusOf(err))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateProfileDuplicateEmail(t *testing.T) {
	svc, mock := newAuth(t)
	mock.ExpectExec("UPDATE usuario").WillReturnError(repository.ErrDuplicate)

	_, err := svc.UpdateProfile(context.Background(), 7, model.ProfileUpdate{
		FirstName: "Diego", LastName: "Gutierrez", Email: "otro@golden.pe",
	})
	assert.Equal(t, http.StatusConflict, StatusOf(err))
	assert.Equal(t, "El correo electrónico ya está en uso", MessageOf(err))
}

func TestUpdateProfileValidatesEmail(t *testing.T) {
	svc, mock := newAuth(t)
	_, err := svc.UpdateProfile(context.Background(), 7, model.ProfileUpdate{
		FirstName: "Diego", LastName: "Gutierrez", Email: "no-es-correo",
	})
	assert.Equal(t, "El campo correo no es un correo válido", MessageOf(err))
	require.NoError(t, mock.ExpectationsWereMet())
}
