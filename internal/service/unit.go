package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/diegogutti007/sistema-golden-backend/internal/database"
	"github.com/diegogutti007/sistema-golden-backend/internal/metrics"
	"github.com/diegogutti007/sistema-golden-backend/internal/queue"
)

// EventPublisher receives ledger events after a unit commits.
type EventPublisher interface {
	Publish(ctx context.Context, ev queue.LedgerEvent) error
}

const publishTimeout = 3 * time.Second

// unitRunner executes a header-plus-children write as one transaction on a
// dedicated connection.
type unitRunner struct {
	gw  *database.Gateway
	log *logrus.Logger
	pub EventPublisher
	now func() time.Time
}

func newUnitRunner(gw *database.Gateway, log *logrus.Logger, pub EventPublisher) unitRunner {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return unitRunner{gw: gw, log: log, pub: pub, now: time.Now}
}

// run checks out a connection, begins a transaction, calls fn and commits.
// Any failure in fn rolls back and is returned as is, unless the rollback
// itself fails. The connection goes back to the pool on every path.
func (u unitRunner) run(ctx context.Context, name string, fn func(tx *sql.Tx) error) error {
	start := time.Now()
	entry := u.log.WithField("unit", name)

	conn, err := u.gw.Conn(ctx)
	if err != nil {
		entry.WithError(err).Error("acquire connection failed")
		metrics.RecordUnit(name, metrics.OutcomeFailed, time.Since(start))
		return ConnectionError("Error de conexión a la base de datos", err)
	}
	defer conn.Close()

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		entry.WithError(err).Error("begin transaction failed")
		metrics.RecordUnit(name, metrics.OutcomeFailed, time.Since(start))
		return TransactionError("Error al iniciar transacción", err)
	}

	if err := fn(tx); err != nil {
		metrics.RecordUnit(name, metrics.OutcomeRolledBack, time.Since(start))
		if rbErr := tx.Rollback(); rbErr != nil {
			entry.WithError(rbErr).WithField("cause", err.Error()).Error("rollback failed")
			return TransactionError("Error al revertir transacción", errors.Join(err, rbErr))
		}
		if KindOf(err) == KindUnknown {
			err = TransactionError("Error en la transacción", err)
		}
		logFailure(entry, err)
		return err
	}

	if err := tx.Commit(); err != nil {
		metrics.RecordUnit(name, metrics.OutcomeRolledBack, time.Since(start))
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			entry.WithError(rbErr).Error("rollback after commit failure failed")
		}
		entry.WithError(err).Error("commit failed")
		return TransactionError("Error al confirmar transacción", err)
	}

	metrics.RecordUnit(name, metrics.OutcomeCommitted, time.Since(start))
	entry.WithField("duration_ms", time.Since(start).Milliseconds()).Debug("unit committed")
	return nil
}

// reject records a unit refused by static validation.
func (u unitRunner) reject(name string, err error) error {
	metrics.RecordUnit(name, metrics.OutcomeRejected, 0)
	u.log.WithField("unit", name).WithField("reason", MessageOf(err)).Info("unit rejected")
	return err
}

// publish delivers ev without holding up the caller for long; failures are
// logged only, since the store is already committed.
func (u unitRunner) publish(ctx context.Context, ev queue.LedgerEvent) {
	if u.pub == nil {
		return
	}
	pctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := u.pub.Publish(pctx, ev); err != nil {
		u.log.WithError(err).WithField("event", ev.Type).Warn("ledger event not published")
	}
}

func logFailure(entry *logrus.Entry, err error) {
	switch KindOf(err) {
	case KindNotFound, KindConflict, KindValidation:
		entry.WithField("reason", MessageOf(err)).Info("unit rolled back")
	default:
		entry.WithError(err).Error("unit rolled back")
	}
}
