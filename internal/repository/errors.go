// Package repository holds the SQL data access for the salon back office.
// These sentinel values let the service layer tell failure scenarios apart
// without inspecting driver errors.
package repository

import (
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"
)

// ErrNotFound is returned when the referenced row does not exist.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when a write cannot proceed because of the
// current state of a row, such as attaching an appointment that another
// sale already consumed.
var ErrConflict = errors.New("conflict")

// ErrCancelled is returned when a cancelled appointment is attached to a sale.
var ErrCancelled = errors.New("appointment cancelled")

// ErrDuplicate is returned when a unique key would be violated.
var ErrDuplicate = errors.New("duplicate entry")

// ErrReferenced is returned when a row cannot be deleted because other
// rows still point at it.
var ErrReferenced = errors.New("row is referenced")

const (
	mysqlDuplicateEntry  = 1062 // ER_DUP_ENTRY
	mysqlRowIsReferenced = 1451 // ER_ROW_IS_REFERENCED_2
)

func mysqlCode(err error) uint16 {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number
	}
	return 0
}

func isDuplicate(err error) bool { return mysqlCode(err) == mysqlDuplicateEntry }

func isReferenced(err error) bool { return mysqlCode(err) == mysqlRowIsReferenced }

// notFound maps sql.ErrNoRows to ErrNotFound.
func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// requireAffected turns a zero row count into ErrNotFound.
func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
