package service

import (
	"context"
	"errors"
	"io"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diegogutti007/sistema-golden-backend/internal/database"
	"github.com/diegogutti007/sistema-golden-backend/internal/model"
	"github.com/diegogutti007/sistema-golden-backend/internal/queue"
)

var actor = model.Identity{UserID: 3, Username: "caja", Role: "admin"}

type recordingPublisher struct {
	mu     sync.Mutex
	events []queue.LedgerEvent
}

func (p *recordingPublisher) Publish(_ context.Context, ev queue.LedgerEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return nil
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newGateway(t *testing.T) (*database.Gateway, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return database.New(db), mock
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func rentExpense(payments ...string) model.ExpenseRequest {
	req := model.ExpenseRequest{
		Description: "Rent",
		Amount:      dec("100"),
		CategoryID:  1,
		PeriodID:    1,
	}
	for i, p := range payments {
		req.Payments = append(req.Payments, model.ExpensePayment{PaymentTypeID: model.FlexInt(i + 1), Amount: dec(p)})
	}
	return req
}

// ---- expenses ----

func TestExpenseCreateStoresHeaderAndPayments(t *testing.T) {
	gw, mock := newGateway(t)
	pub := &recordingPublisher{}
	svc := NewExpenseService(gw, quietLogger(), pub)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO gastos").
		WithArgs("Rent", sqlmock.AnyArg(), int64(1), int64(1), sqlmock.AnyArg(), nil, nil, int64(3)).
		WillReturnResult(sqlmock.NewResult(12, 1))
	mock.ExpectExec("INSERT INTO gasto_tipo_pago").WithArgs(int64(12), int64(1), "60").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO gasto_tipo_pago").WithArgs(int64(12), int64(2), "40").
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	id, err := svc.Create(context.Background(), actor, rentExpense("60", "40"))
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)
	require.NoError(t, mock.ExpectationsWereMet())

	require.Len(t, pub.events, 1)
	ev := pub.events[0]
	assert.Equal(t, queue.ExpenseRegistered, ev.Type)
	assert.Equal(t, int64(12), ev.EntityID)
	require.Len(t, ev.Payments, 2)
	assert.True(t, ev.Payments[0].Amount.Add(ev.Payments[1].Amount).Equal(dec("100")))
}

func TestExpenseSumMismatchRejectedWithoutTouchingStore(t *testing.T) {
	gw, mock := newGateway(t)
	svc := NewExpenseService(gw, quietLogger(), nil)

	for i := 0; i < 2; i++ {
		_, err := svc.Create(context.Background(), actor, rentExpense("60", "30"))
		require.Error(t, err)
		assert.Equal(t, KindValidation, KindOf(err))
		assert.Equal(t, http.StatusBadRequest, StatusOf(err))
		assert.Equal(t, MsgExpenseSumMismatch, MessageOf(err))
	}
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseStaticValidation(t *testing.T) {
	gw, mock := newGateway(t)
	svc := NewExpenseService(gw, quietLogger(), nil)

	cases := []struct {
		name string
		req  model.ExpenseRequest
		msg  string
	}{
		{"blank description", func() model.ExpenseRequest { r := rentExpense("100"); r.Description = "  "; return r }(), "Faltan campos obligatorios"},
		{"no category", func() model.ExpenseRequest { r := rentExpense("100"); r.CategoryID = 0; return r }(), "Faltan campos obligatorios"},
		{"no payments", rentExpense(), "Debe incluir al menos un tipo de pago"},
		{"zero payment", rentExpense("100", "0"), "El campo pagos[1].monto debe ser mayor que 0"},
		{"bad date", func() model.ExpenseRequest { r := rentExpense("100"); r.Date = "31/12/2024"; return r }(), "La fecha del gasto no es válida"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), actor, tc.req)
			require.Error(t, err)
			assert.Equal(t, KindValidation, KindOf(err))
			assert.Equal(t, tc.msg, MessageOf(err))
		})
	}
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseCreateRollsBackWhenPaymentFails(t *testing.T) {
	gw, mock := newGateway(t)
	pub := &recordingPublisher{}
	svc := NewExpenseService(gw, quietLogger(), pub)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO gastos").WillReturnResult(sqlmock.NewResult(12, 1))
	mock.ExpectExec("INSERT INTO gasto_tipo_pago").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO gasto_tipo_pago").WillReturnError(errors.New("fk tipo_pago"))
	mock.ExpectRollback()

	_, err := svc.Create(context.Background(), actor, rentExpense("60", "40"))
	require.Error(t, err)
	assert.Equal(t, KindTransaction, KindOf(err))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(err))
	require.NoError(t, mock.ExpectationsWereMet())
	assert.Empty(t, pub.events)
}

func TestExpenseUpdateReplacesPayments(t *testing.T) {
	gw, mock := newGateway(t)
	pub := &recordingPublisher{}
	svc := NewExpenseService(gw, quietLogger(), pub)

	expectExpenseExists(mock, 12, true)
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT gasto_id FROM gastos WHERE gasto_id = \\? FOR UPDATE").WithArgs(int64(12)).
		WillReturnRows(sqlmock.NewRows([]string{"gasto_id"}).AddRow(12))
	mock.ExpectExec("UPDATE gastos").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM gasto_tipo_pago WHERE gasto_id").WithArgs(int64(12)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("INSERT INTO gasto_tipo_pago").WithArgs(int64(12), int64(1), "100").
		WillReturnResult(sqlmock.NewResult(9, 1))
	mock.ExpectCommit()

	require.NoError(t, svc.Update(context.Background(), actor, 12, rentExpense("100")))
	require.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, []string{queue.ExpenseUpdated}, pub.types())
}

func expectExpenseExists(mock sqlmock.Sqlmock, id int64, ok bool) {
	mock.ExpectQuery("SELECT EXISTS").WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"e"}).AddRow(ok))
}

func TestExpenseUpdateMissing(t *testing.T) {
	gw, mock := newGateway(t)
	svc := NewExpenseService(gw, quietLogger(), nil)

	expectExpenseExists(mock, 99, false)

	err := svc.Update(context.Background(), actor, 99, rentExpense("100"))
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.Equal(t, http.StatusNotFound, StatusOf(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseUpdateMissingWinsOverInvalidBody(t *testing.T) {
	gw, mock := newGateway(t)
	svc := NewExpenseService(gw, quietLogger(), nil)

	expectExpenseExists(mock, 99, false)

	err := svc.Update(context.Background(), actor, 99, rentExpense("10"))
	assert.Equal(t, http.StatusNotFound, StatusOf(err))
	assert.Equal(t, "Gasto no encontrado", MessageOf(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseUpdateDeletedAfterCheck(t *testing.T) {
	gw, mock := newGateway(t)
	svc := NewExpenseService(gw, quietLogger(), nil)

	expectExpenseExists(mock, 99, true)
	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").WithArgs(int64(99)).WillReturnRows(sqlmock.NewRows([]string{"gasto_id"}))
	mock.ExpectRollback()

	err := svc.Update(context.Background(), actor, 99, rentExpense("100"))
	assert.Equal(t, KindNotFound, KindOf(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseUpdateValidatesBeforeUnit(t *testing.T) {
	gw, mock := newGateway(t)
	svc := NewExpenseService(gw, quietLogger(), nil)

	expectExpenseExists(mock, 12, true)

	err := svc.Update(context.Background(), actor, 12, rentExpense("10"))
	assert.Equal(t, KindValidation, KindOf(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseDelete(t *testing.T) {
	gw, mock := newGateway(t)
	svc := NewExpenseService(gw, quietLogger(), nil)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM gasto_tipo_pago").WithArgs(int64(5)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM gastos").WithArgs(int64(5)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := svc.Delete(context.Background(), actor, 5)
	assert.Equal(t, KindNotFound, KindOf(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

// ---- sales ----

func saleRequest() model.SaleRequest {
	return model.SaleRequest{
		ClientID: 4,
		Date:     "2024-05-01",
		Total:    dec("150.50"),
		Lines: []model.SaleLine{
			{ArticleID: 1, Quantity: 1, UnitPrice: dec("100"), EmployeeID: 2},
			{ArticleID: 2, Quantity: 1, UnitPrice: dec("50.50")},
		},
		Payments: []model.SalePayment{
			{PaymentTypeID: 1, Amount: dec("100")},
			{PaymentTypeID: 2, Amount: dec("50.50")},
		},
	}
}

func TestSaleCreateCompletesAppointment(t *testing.T) {
	gw, mock := newGateway(t)
	pub := &recordingPublisher{}
	svc := NewSaleService(gw, quietLogger(), pub)
	req := saleRequest()
	req.AppointmentID = 9

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO venta \\(").
		WithArgs(int64(4), time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), "150.5", int64(9), nil, int64(3), "Pagada").
		WillReturnResult(sqlmock.NewResult(31, 1))
	mock.ExpectExec("INSERT INTO venta_detalle").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("INSERT INTO venta_tipo_pago").WillReturnResult(sqlmock.NewResult(0, 2))
	expectAppointmentStatus(mock, 9, "Programada")
	expectAppointmentSales(mock, 9, 31, 0)
	mock.ExpectExec("UPDATE citas SET Estado").WithArgs("Completada", int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	got, err := svc.Create(context.Background(), actor, req)
	require.NoError(t, err)
	assert.Equal(t, SaleCreated{ID: 31, AppointmentCompleted: true}, got)
	require.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, []string{queue.SaleRegistered}, pub.types())
}

func TestSaleCreateWithoutAppointmentSkipsUpdate(t *testing.T) {
	gw, mock := newGateway(t)
	svc := NewSaleService(gw, quietLogger(), nil)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO venta \\(").WillReturnResult(sqlmock.NewResult(32, 1))
	mock.ExpectExec("INSERT INTO venta_detalle").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("INSERT INTO venta_tipo_pago").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	got, err := svc.Create(context.Background(), actor, saleRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(32), got.ID)
	assert.False(t, got.AppointmentCompleted)
	require.NoError(t, mock.ExpectationsWereMet())
}

func expectAppointmentStatus(mock sqlmock.Sqlmock, id int64, status string) {
	mock.ExpectQuery("SELECT Estado FROM citas").WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"Estado"}).AddRow(status))
}

func expectAppointmentSales(mock sqlmock.Sqlmock, id, saleID int64, n int) {
	mock.ExpectQuery("SELECT COUNT").WithArgs(id, saleID).
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(n))
}

func expectSaleRows(mock sqlmock.Sqlmock, saleID int64) {
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO venta \\(").WillReturnResult(sqlmock.NewResult(saleID, 1))
	mock.ExpectExec("INSERT INTO venta_detalle").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("INSERT INTO venta_tipo_pago").WillReturnResult(sqlmock.NewResult(0, 2))
}

func TestSaleCreateAppointmentAlreadySold(t *testing.T) {
	gw, mock := newGateway(t)
	svc := NewSaleService(gw, quietLogger(), nil)
	req := saleRequest()
	req.AppointmentID = 9

	expectSaleRows(mock, 33)
	expectAppointmentStatus(mock, 9, "Completada")
	expectAppointmentSales(mock, 9, 33, 1)
	mock.ExpectRollback()

	_, err := svc.Create(context.Background(), actor, req)
	assert.Equal(t, KindConflict, KindOf(err))
	assert.Equal(t, http.StatusConflict, StatusOf(err))
	assert.Equal(t, "La cita ya fue registrada en otra venta", MessageOf(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaleCreateAppointmentCompletedByHandButUnsold(t *testing.T) {
	gw, mock := newGateway(t)
	svc := NewSaleService(gw, quietLogger(), nil)
	req := saleRequest()
	req.AppointmentID = 9

	expectSaleRows(mock, 34)
	expectAppointmentStatus(mock, 9, "Completada")
	expectAppointmentSales(mock, 9, 34, 0)
	mock.ExpectExec("UPDATE citas SET Estado").WithArgs("Completada", int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	got, err := svc.Create(context.Background(), actor, req)
	require.NoError(t, err)
	assert.Equal(t, SaleCreated{ID: 34, AppointmentCompleted: true}, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaleCreateCancelledAppointment(t *testing.T) {
	gw, mock := newGateway(t)
	svc := NewSaleService(gw, quietLogger(), nil)
	req := saleRequest()
	req.AppointmentID = 9

	expectSaleRows(mock, 35)
	expectAppointmentStatus(mock, 9, "Cancelada")
	mock.ExpectRollback()

	_, err := svc.Create(context.Background(), actor, req)
	assert.Equal(t, http.StatusConflict, StatusOf(err))
	assert.Equal(t, "La cita está cancelada y no puede registrarse en una venta", MessageOf(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaleCreateMissingAppointment(t *testing.T) {
	gw, mock := newGateway(t)
	svc := NewSaleService(gw, quietLogger(), nil)
	req := saleRequest()
	req.AppointmentID = 9

	expectSaleRows(mock, 36)
	mock.ExpectQuery("SELECT Estado FROM citas").WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"Estado"}))
	mock.ExpectRollback()

	_, err := svc.Create(context.Background(), actor, req)
	assert.Equal(t, KindConflict, KindOf(err))
	assert.Equal(t, "La cita no existe", MessageOf(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaleLineSubtotalsNeedNotMatchTotal(t *testing.T) {
	gw, mock := newGateway(t)
	svc := NewSaleService(gw, quietLogger(), nil)
	req := saleRequest()
	req.Lines[0].UnitPrice = dec("999")

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO venta \\(").WillReturnResult(sqlmock.NewResult(34, 1))
	mock.ExpectExec("INSERT INTO venta_detalle").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("INSERT INTO venta_tipo_pago").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	_, err := svc.Create(context.Background(), actor, req)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaleCreateRejectsIncompleteRequests(t *testing.T) {
	gw, mock := newGateway(t)
	svc := NewSaleService(gw, quietLogger(), nil)

	noLines := saleRequest()
	noLines.Lines = nil
	noClient := saleRequest()
	noClient.ClientID = 0
	shortPaid := saleRequest()
	shortPaid.Payments[1].Amount = dec("40")
	withinCent := saleRequest()
	withinCent.Total = dec("150.51")

	for _, req := range []model.SaleRequest{noLines, noClient} {
		_, err := svc.Create(context.Background(), actor, req)
		assert.Equal(t, "Faltan datos en la venta.", MessageOf(err))
		assert.Equal(t, http.StatusBadRequest, StatusOf(err))
	}
	_, err := svc.Create(context.Background(), actor, shortPaid)
	assert.Equal(t, KindValidation, KindOf(err))
	require.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO venta \\(").WillReturnResult(sqlmock.NewResult(35, 1))
	mock.ExpectExec("INSERT INTO venta_detalle").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("INSERT INTO venta_tipo_pago").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()
	_, err = svc.Create(context.Background(), actor, withinCent)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaleDeleteRemovesChildrenFirst(t *testing.T) {
	gw, mock := newGateway(t)
	pub := &recordingPublisher{}
	svc := NewSaleService(gw, quietLogger(), pub)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM venta_tipo_pago WHERE VentaID").WithArgs(int64(31)).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM venta_detalle WHERE VentaID").WithArgs(int64(31)).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM venta WHERE VentaID").WithArgs(int64(31)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, svc.Delete(context.Background(), actor, 31))
	require.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, []string{queue.SaleDeleted}, pub.types())
}

func TestSaleDeleteRollsBackOnFailure(t *testing.T) {
	gw, mock := newGateway(t)
	svc := NewSaleService(gw, quietLogger(), nil)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM venta_tipo_pago").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM venta_detalle").WillReturnError(errors.New("lock wait timeout"))
	mock.ExpectRollback()

	err := svc.Delete(context.Background(), actor, 31)
	assert.Equal(t, KindTransaction, KindOf(err))
	assert.Equal(t, "Error al eliminar detalles", MessageOf(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

// ---- unit runner ----

func TestUnitConnectionError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectClose()
	require.NoError(t, db.Close())

	svc := NewSaleService(database.New(db), quietLogger(), nil)
	err = svc.Delete(context.Background(), actor, 1)
	assert.Equal(t, KindConnection, KindOf(err))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(err))
}

func TestUnitBeginFailure(t *testing.T) {
	gw, mock := newGateway(t)
	svc := NewSaleService(gw, quietLogger(), nil)
	mock.ExpectBegin().WillReturnError(errors.New("too many connections"))

	err := svc.Delete(context.Background(), actor, 1)
	assert.Equal(t, KindTransaction, KindOf(err))
	assert.Equal(t, "Error al iniciar transacción", MessageOf(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUnitRollbackFailureSurfacesTransactionError(t *testing.T) {
	gw, mock := newGateway(t)
	svc := NewSaleService(gw, quietLogger(), nil)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM venta_tipo_pago").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM venta_detalle").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM venta WHERE").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback().WillReturnError(errors.New("connection lost"))

	err := svc.Delete(context.Background(), actor, 1)
	assert.Equal(t, KindTransaction, KindOf(err))
	assert.Equal(t, "Error al revertir transacción", MessageOf(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUnitCommitFailure(t *testing.T) {
	gw, mock := newGateway(t)
	pub := &recordingPublisher{}
	svc := NewExpenseService(gw, quietLogger(), pub)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO gastos").WillReturnResult(sqlmock.NewResult(12, 1))
	mock.ExpectExec("INSERT INTO gasto_tipo_pago").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit().WillReturnError(errors.New("deadlock"))

	_, err := svc.Create(context.Background(), actor, rentExpense("100"))
	assert.Equal(t, KindTransaction, KindOf(err))
	assert.Equal(t, "Error al confirmar transacción", MessageOf(err))
	require.NoError(t, mock.ExpectationsWereMet())
	assert.Empty(t, pub.events)
}

func TestUnitReleasesConnection(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	svc := NewExpenseService(database.New(db), quietLogger(), nil)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM gasto_tipo_pago").WillReturnError(errors.New("boom"))
	mock.ExpectRollback()

	require.Error(t, svc.Delete(context.Background(), actor, 1))
	assert.Equal(t, 0, db.Stats().InUse)
}
