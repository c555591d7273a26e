package model

import "github.com/shopspring/decimal"

// ExpensePayment is one slice of an expense paid with a payment method.
type ExpensePayment struct {
	PaymentTypeID FlexInt         `json:"tipo_pago_id" validate:"gt=0"`
	Amount        decimal.Decimal `json:"monto" validate:"gt=0"`
}

// ExpenseRequest is the body of POST /api/gastos and PUT /api/gastos/:id.
type ExpenseRequest struct {
	Description string           `json:"descripcion" validate:"required"`
	Amount      decimal.Decimal  `json:"monto" validate:"gt=0"`
	CategoryID  FlexInt          `json:"categoria_id" validate:"gt=0"`
	PeriodID    FlexInt          `json:"periodo_id" validate:"gt=0"`
	Payments    []ExpensePayment `json:"pagos" validate:"required,min=1,dive"`
	Date        string           `json:"fecha_gasto"`
	Notes       string           `json:"observaciones"`
	EmployeeID  FlexInt          `json:"EmpId" validate:"gte=0"`
}

// PaymentAmounts lists the payment amounts in request order.
func (r ExpenseRequest) PaymentAmounts() []decimal.Decimal {
	out := make([]decimal.Decimal, 0, len(r.Payments))
	for _, p := range r.Payments {
		out = append(out, p.Amount)
	}
	return out
}
