package model

import "github.com/shopspring/decimal"

// Sale states stored in venta.Estado. New sales are always written as
// SaleStatusPaid; the other values are set by tools outside this service.
const (
	SaleStatusPaid      = "Pagada"
	SaleStatusCancelled = "Anulada"
)

// SaleLine is one article sold, attributed to the employee who performed it
// for commission purposes.
type SaleLine struct {
	ArticleID  FlexInt         `json:"ArticuloID" validate:"gt=0"`
	Quantity   FlexInt         `json:"Cantidad" validate:"gt=0"`
	UnitPrice  decimal.Decimal `json:"PrecioUnitario" validate:"gte=0"`
	EmployeeID FlexInt         `json:"EmpID" validate:"gte=0"`
}

// SalePayment is one slice of the sale total paid with a payment method.
type SalePayment struct {
	PaymentTypeID FlexInt         `json:"TipoPagoID" validate:"gt=0"`
	Amount        decimal.Decimal `json:"Monto" validate:"gt=0"`
}

// SaleRequest is the body of POST /api/ventas.
type SaleRequest struct {
	ClientID      FlexInt         `json:"ClienteID" validate:"gt=0"`
	Lines         []SaleLine      `json:"Detalles" validate:"required,min=1,dive"`
	Payments      []SalePayment   `json:"Pagos" validate:"required,min=1,dive"`
	Date          string          `json:"FechaVenta"`
	Total         decimal.Decimal `json:"Total" validate:"gte=0"`
	AppointmentID FlexInt         `json:"CitaID" validate:"gte=0"`
	Notes         string          `json:"Observaciones"`
}

// PaymentAmounts lists the payment amounts in request order.
func (r SaleRequest) PaymentAmounts() []decimal.Decimal {
	out := make([]decimal.Decimal, 0, len(r.Payments))
	for _, p := range r.Payments {
		out = append(out, p.Amount)
	}
	return out
}
