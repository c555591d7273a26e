// Package service holds the business operations of the back office:
// authentication and the transactional writes for sales and expenses.
package service

import (
	"errors"
	"net/http"

	"github.com/diegogutti007/sistema-golden-backend/internal/repository"
)

// Kind classifies a failure for the HTTP layer.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindInvalidCredentials
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindConnection
	KindTransaction
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "ValidationError"
	case KindInvalidCredentials:
		return "InvalidCredentials"
	case KindUnauthorized:
		return "Unauthorized"
	case KindForbidden:
		return "Forbidden"
	case KindNotFound:
		return "NotFoundError"
	case KindConflict:
		return "ConflictError"
	case KindConnection:
		return "ConnectionError"
	case KindTransaction:
		return "TransactionError"
	default:
		return "UnknownError"
	}
}

// Error is a typed failure. Message is safe to show to the client; Err is
// the underlying cause and is only logged.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Kind.String() + ": " + e.Message + ": " + e.Err.Error()
	}
	return e.Kind.String() + ": " + e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func newError(k Kind, msg string, err error) *Error { return &Error{Kind: k, Message: msg, Err: err} }

func ValidationError(msg string) *Error         { return newError(KindValidation, msg, nil) }
func InvalidCredentialsError(msg string) *Error { return newError(KindInvalidCredentials, msg, nil) }
func UnauthorizedError(msg string) *Error       { return newError(KindUnauthorized, msg, nil) }
func ForbiddenError(msg string) *Error          { return newError(KindForbidden, msg, nil) }
func NotFoundError(msg string) *Error           { return newError(KindNotFound, msg, nil) }
func ConflictError(msg string) *Error           { return newError(KindConflict, msg, nil) }

func ConnectionError(msg string, err error) *Error  { return newError(KindConnection, msg, err) }
func TransactionError(msg string, err error) *Error { return newError(KindTransaction, msg, err) }
func UnknownError(msg string, err error) *Error     { return newError(KindUnknown, msg, err) }

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// StatusOf maps err to an HTTP status.
func StatusOf(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindInvalidCredentials, KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// MessageOf returns the client-facing message of err.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return "Error interno del servidor"
}

// fromRepo translates repository sentinels, using msg as the client message
// for not-found and conflict cases. Anything else is an Unknown error.
func fromRepo(err error, msg string) error {
	var e *Error
	switch {
	case err == nil:
		return nil
	case errors.As(err, &e):
		return err
	case errors.Is(err, repository.ErrNotFound):
		return newError(KindNotFound, msg, err)
	case errors.Is(err, repository.ErrConflict), errors.Is(err, repository.ErrDuplicate),
		errors.Is(err, repository.ErrReferenced):
		return newError(KindConflict, msg, err)
	default:
		return newError(KindUnknown, "Error en la base de datos", err)
	}
}
