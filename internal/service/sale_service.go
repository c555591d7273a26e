package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/diegogutti007/sistema-golden-backend/internal/database"
	"github.com/diegogutti007/sistema-golden-backend/internal/model"
	"github.com/diegogutti007/sistema-golden-backend/internal/queue"
	"github.com/diegogutti007/sistema-golden-backend/internal/repository"
)

const (
	unitSaleCreate = "venta.crear"
	unitSaleDelete = "venta.eliminar"
)

// SaleService registers and deletes sales as single transactions.
type SaleService struct {
	unit         unitRunner
	sales        *repository.SaleRepo
	appointments *repository.AppointmentRepo
}

func NewSaleService(gw *database.Gateway, log *logrus.Logger, pub EventPublisher) *SaleService {
	return &SaleService{
		unit:         newUnitRunner(gw, log, pub),
		sales:        repository.NewSaleRepo(gw.DB()),
		appointments: repository.NewAppointmentRepo(gw.DB()),
	}
}

// SaleCreated describes a registered sale.
type SaleCreated struct {
	ID                   int64
	AppointmentCompleted bool
}

// Create validates req and writes the sale header, its line items, its
// payments and, when the sale comes from an appointment, completes that
// appointment. Either everything is stored or nothing is.
func (s *SaleService) Create(ctx context.Context, who model.Identity, req model.SaleRequest) (SaleCreated, error) {
	date, err := s.check(req)
	if err != nil {
		return SaleCreated{}, s.unit.reject(unitSaleCreate, err)
	}

	rec := repository.SaleRecord{
		ClientID:      req.ClientID.Int64(),
		Date:          date,
		Total:         cents(req.Total),
		AppointmentID: req.AppointmentID.NullInt64(),
		Notes:         model.NullString(req.Notes),
		UserID:        who.UserID,
		Status:        model.SaleStatusPaid,
	}
	pays := make([]queue.LedgerPayment, 0, len(req.Payments))

	err = s.unit.run(ctx, unitSaleCreate, func(tx *sql.Tx) error {
		if err := s.sales.CreateTx(ctx, tx, &rec); err != nil {
			return TransactionError("Error al registrar venta.", err)
		}

		lines := make([]repository.SaleLineRecord, 0, len(req.Lines))
		for _, l := range req.Lines {
			lines = append(lines, repository.SaleLineRecord{
				SaleID:     rec.ID,
				ArticleID:  l.ArticleID.Int64(),
				Quantity:   l.Quantity.Int64(),
				UnitPrice:  cents(l.UnitPrice),
				EmployeeID: l.EmployeeID.NullInt64(),
			})
		}
		if err := s.sales.CreateLinesBulkTx(ctx, tx, lines); err != nil {
			return TransactionError("Error al registrar detalles de venta.", err)
		}

		payRecs := make([]repository.SalePaymentRecord, 0, len(req.Payments))
		for _, p := range req.Payments {
			payRecs = append(payRecs, repository.SalePaymentRecord{
				SaleID:        rec.ID,
				PaymentTypeID: p.PaymentTypeID.Int64(),
				Amount:        cents(p.Amount),
			})
			pays = append(pays, queue.LedgerPayment{PaymentTypeID: p.PaymentTypeID.Int64(), Amount: cents(p.Amount)})
		}
		if err := s.sales.CreatePaymentsBulkTx(ctx, tx, payRecs); err != nil {
			return TransactionError("Error al registrar pagos.", err)
		}

		if rec.AppointmentID.Valid {
			err := s.appointments.CompleteTx(ctx, tx, rec.AppointmentID.Int64, rec.ID,
				model.AppointmentCompleted, model.AppointmentCancelled)
			switch {
			case errors.Is(err, repository.ErrNotFound):
				return ConflictError("La cita no existe")
			case errors.Is(err, repository.ErrCancelled):
				return ConflictError("La cita está cancelada y no puede registrarse en una venta")
			case errors.Is(err, repository.ErrConflict):
				return ConflictError("La cita ya fue registrada en otra venta")
			case err != nil:
				return TransactionError("Error al actualizar estado de la cita.", err)
			}
		}
		return nil
	})
	if err != nil {
		return SaleCreated{}, err
	}

	s.unit.publish(ctx, queue.NewLedgerEvent(queue.SaleRegistered, rec.ID, who.UserID, rec.Total, pays, s.unit.now()))
	return SaleCreated{ID: rec.ID, AppointmentCompleted: rec.AppointmentID.Valid}, nil
}

func (s *SaleService) check(req model.SaleRequest) (time.Time, error) {
	if req.ClientID <= 0 || len(req.Lines) == 0 || len(req.Payments) == 0 {
		return time.Time{}, ValidationError("Faltan datos en la venta.")
	}
	if err := Validate(req); err != nil {
		return time.Time{}, err
	}
	date, ok, err := model.ParseDate(req.Date)
	if err != nil {
		return time.Time{}, ValidationError("La fecha de venta no es válida")
	}
	if !ok {
		date = s.unit.now().UTC()
	}
	if !partsMatchTotal(req.PaymentAmounts(), req.Total) {
		return time.Time{}, ValidationError("La suma de los montos por tipo de pago no coincide con el total de la venta")
	}
	return date, nil
}

// Delete removes a sale's payments, line items and header, in that order,
// in one transaction.
func (s *SaleService) Delete(ctx context.Context, who model.Identity, id int64) error {
	if id <= 0 {
		return s.unit.reject(unitSaleDelete, ValidationError("ID de venta inválido"))
	}
	err := s.unit.run(ctx, unitSaleDelete, func(tx *sql.Tx) error {
		if err := s.sales.DeletePaymentsTx(ctx, tx, id); err != nil {
			return TransactionError("Error al eliminar pagos", err)
		}
		if err := s.sales.DeleteLinesTx(ctx, tx, id); err != nil {
			return TransactionError("Error al eliminar detalles", err)
		}
		if err := s.sales.DeleteTx(ctx, tx, id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return NotFoundError("Venta no encontrada")
			}
			return TransactionError("Error al eliminar venta", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.unit.publish(ctx, queue.NewLedgerEvent(queue.SaleDeleted, id, who.UserID, decimal.Zero, nil, s.unit.now()))
	return nil
}
