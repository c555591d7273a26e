// Package queue carries ledger events for committed sales and expenses over
// RabbitMQ: a publisher used after each commit and a background consumer
// that appends them to a ledger log.
package queue

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerQueue is the durable queue every ledger event goes to.
const LedgerQueue = "golden.ledger"

// Ledger event types.
const (
	SaleRegistered    = "venta.registrada"
	SaleDeleted       = "venta.eliminada"
	ExpenseRegistered = "gasto.registrado"
	ExpenseUpdated    = "gasto.actualizado"
	ExpenseDeleted    = "gasto.eliminado"
)

// LedgerPayment is one payment slice of a ledger event.
type LedgerPayment struct {
	PaymentTypeID int64           `json:"tipo_pago_id"`
	Amount        decimal.Decimal `json:"monto"`
}

// LedgerEvent records a committed money movement. Consumers get enough to
// audit the movement without reading the store.
type LedgerEvent struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	EntityID   int64           `json:"entity_id"`
	UserID     int64           `json:"user_id"`
	Total      decimal.Decimal `json:"total"`
	Payments   []LedgerPayment `json:"payments,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// NewLedgerEvent stamps a fresh event id.
func NewLedgerEvent(typ string, entityID, userID int64, total decimal.Decimal, payments []LedgerPayment, at time.Time) LedgerEvent {
	return LedgerEvent{
		ID:         uuid.NewString(),
		Type:       typ,
		EntityID:   entityID,
		UserID:     userID,
		Total:      total,
		Payments:   payments,
		OccurredAt: at.UTC(),
	}
}

// LogLine renders the event as one line of the ledger log.
func (e LedgerEvent) LogLine() string {
	pays := make([]string, 0, len(e.Payments))
	for _, p := range e.Payments {
		pays = append(pays, fmt.Sprintf("%d:%s", p.PaymentTypeID, p.Amount.StringFixed(2)))
	}
	return fmt.Sprintf("[%s] %s | id=%s | entity_id=%d | user_id=%d | total=%s | pagos=[%s]\n",
		e.OccurredAt.Format(time.RFC3339), e.Type, e.ID, e.EntityID, e.UserID,
		e.Total.StringFixed(2), strings.Join(pays, ","))
}
