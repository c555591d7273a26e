package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/diegogutti007/sistema-golden-backend/internal/database"
	"github.com/diegogutti007/sistema-golden-backend/internal/model"
	"github.com/diegogutti007/sistema-golden-backend/internal/queue"
	"github.com/diegogutti007/sistema-golden-backend/internal/repository"
)

const (
	unitExpenseCreate = "gasto.crear"
	unitExpenseUpdate = "gasto.actualizar"
	unitExpenseDelete = "gasto.eliminar"
)

const MsgExpenseSumMismatch = "La suma de los montos por tipo de pago no coincide con el monto total"

// ExpenseService writes expenses with their payment breakdown.
type ExpenseService struct {
	unit     unitRunner
	expenses *repository.ExpenseRepo
}

func NewExpenseService(gw *database.Gateway, log *logrus.Logger, pub EventPublisher) *ExpenseService {
	return &ExpenseService{
		unit:     newUnitRunner(gw, log, pub),
		expenses: repository.NewExpenseRepo(gw.DB()),
	}
}

// record validates req and maps it to a header row. No store access.
func (s *ExpenseService) record(req model.ExpenseRequest) (repository.ExpenseRecord, error) {
	if strings.TrimSpace(req.Description) == "" || !req.Amount.IsPositive() || req.CategoryID <= 0 || req.PeriodID <= 0 {
		return repository.ExpenseRecord{}, ValidationError("Faltan campos obligatorios")
	}
	if len(req.Payments) == 0 {
		return repository.ExpenseRecord{}, ValidationError("Debe incluir al menos un tipo de pago")
	}
	if err := Validate(req); err != nil {
		return repository.ExpenseRecord{}, err
	}
	date, ok, err := model.ParseDate(req.Date)
	if err != nil {
		return repository.ExpenseRecord{}, ValidationError("La fecha del gasto no es válida")
	}
	if !partsMatchTotal(req.PaymentAmounts(), req.Amount) {
		return repository.ExpenseRecord{}, ValidationError(MsgExpenseSumMismatch)
	}
	return repository.ExpenseRecord{
		Description: strings.TrimSpace(req.Description),
		Amount:      cents(req.Amount),
		CategoryID:  req.CategoryID.Int64(),
		PeriodID:    req.PeriodID.Int64(),
		Date:        sql.NullTime{Time: date, Valid: ok},
		Notes:       model.NullString(req.Notes),
		EmployeeID:  req.EmployeeID.NullInt64(),
	}, nil
}

func (s *ExpenseService) insertPayments(ctx context.Context, tx *sql.Tx, id int64, req model.ExpenseRequest) ([]queue.LedgerPayment, error) {
	pays := make([]queue.LedgerPayment, 0, len(req.Payments))
	for _, p := range req.Payments {
		rec := repository.ExpensePaymentRecord{ExpenseID: id, PaymentTypeID: p.PaymentTypeID.Int64(), Amount: cents(p.Amount)}
		if err := s.expenses.CreatePaymentTx(ctx, tx, rec); err != nil {
			return nil, TransactionError("Error al registrar tipos de pago", err)
		}
		pays = append(pays, queue.LedgerPayment{PaymentTypeID: rec.PaymentTypeID, Amount: rec.Amount})
	}
	return pays, nil
}

// Create stores a new expense owned by the acting user together with its
// payments. A failing payment insert removes the header as well.
func (s *ExpenseService) Create(ctx context.Context, who model.Identity, req model.ExpenseRequest) (int64, error) {
	rec, err := s.record(req)
	if err != nil {
		return 0, s.unit.reject(unitExpenseCreate, err)
	}
	if !rec.Date.Valid {
		rec.Date = sql.NullTime{Time: s.unit.now().UTC(), Valid: true}
	}
	rec.UserID = who.UserID

	var pays []queue.LedgerPayment
	err = s.unit.run(ctx, unitExpenseCreate, func(tx *sql.Tx) error {
		if err := s.expenses.CreateTx(ctx, tx, &rec); err != nil {
			return TransactionError("Error al registrar gasto", err)
		}
		var err error
		pays, err = s.insertPayments(ctx, tx, rec.ID, req)
		return err
	})
	if err != nil {
		return 0, err
	}

	s.unit.publish(ctx, queue.NewLedgerEvent(queue.ExpenseRegistered, rec.ID, who.UserID, rec.Amount, pays, s.unit.now()))
	return rec.ID, nil
}

// Update overwrites an existing expense and replaces its payments wholesale.
// A missing expense is reported before the body is validated; the row is
// locked again inside the unit in case it was deleted in between.
func (s *ExpenseService) Update(ctx context.Context, who model.Identity, id int64, req model.ExpenseRequest) error {
	if id <= 0 {
		return s.unit.reject(unitExpenseUpdate, ValidationError("ID de gasto inválido"))
	}
	exists, err := s.expenses.Exists(ctx, id)
	if err != nil {
		return s.unit.reject(unitExpenseUpdate, ConnectionError("Error al verificar gasto", err))
	}
	if !exists {
		return s.unit.reject(unitExpenseUpdate, NotFoundError("Gasto no encontrado"))
	}
	rec, err := s.record(req)
	if err != nil {
		return s.unit.reject(unitExpenseUpdate, err)
	}
	rec.ID = id

	var pays []queue.LedgerPayment
	err = s.unit.run(ctx, unitExpenseUpdate, func(tx *sql.Tx) error {
		if err := s.expenses.LockTx(ctx, tx, id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return NotFoundError("Gasto no encontrado")
			}
			return TransactionError("Error al verificar gasto", err)
		}
		if err := s.expenses.UpdateTx(ctx, tx, rec); err != nil {
			return TransactionError("Error al actualizar gasto", err)
		}
		if err := s.expenses.DeletePaymentsTx(ctx, tx, id); err != nil {
			return TransactionError("Error al eliminar tipos de pago", err)
		}
		var err error
		pays, err = s.insertPayments(ctx, tx, id, req)
		return err
	})
	if err != nil {
		return err
	}

	s.unit.publish(ctx, queue.NewLedgerEvent(queue.ExpenseUpdated, id, who.UserID, rec.Amount, pays, s.unit.now()))
	return nil
}

// Delete removes an expense and its payments.
func (s *ExpenseService) Delete(ctx context.Context, who model.Identity, id int64) error {
	if id <= 0 {
		return s.unit.reject(unitExpenseDelete, ValidationError("ID de gasto inválido"))
	}
	err := s.unit.run(ctx, unitExpenseDelete, func(tx *sql.Tx) error {
		if err := s.expenses.DeletePaymentsTx(ctx, tx, id); err != nil {
			return TransactionError("Error al eliminar tipos de pago", err)
		}
		if err := s.expenses.DeleteTx(ctx, tx, id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return NotFoundError("Gasto no encontrado")
			}
			return TransactionError("Error al eliminar gasto", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.unit.publish(ctx, queue.NewLedgerEvent(queue.ExpenseDeleted, id, who.UserID, decimal.Zero, nil, s.unit.now()))
	return nil
}
