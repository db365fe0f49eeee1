package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago de tesorería.
const (
	PaymentCash = "CASH"
	PaymentBank = "BANK"
)

// ValidPaymentMethod indica si el método de pago pertenece a la enumeración.
func ValidPaymentMethod(m string) bool {
	return m == PaymentCash || m == PaymentBank
}

// TreasuryTransaction movimiento de caja/banco (T###).
// Por convención exactamente uno de Credit (entrada) o Debit (salida) es distinto
// de cero. No se guarda saldo acumulado: el saldo de tesorería se deriva siempre
// como suma(Credit) - suma(Debit) sobre todos los movimientos.
type TreasuryTransaction struct {
	ID            string          `json:"id"`
	Date          time.Time       `json:"date"`
	Credit        decimal.Decimal `json:"credit"`
	Debit         decimal.Decimal `json:"debit"`
	PaymentMethod string          `json:"payment_method"`
	Description   string          `json:"description"`
	InvoiceNumber string          `json:"invoice_number,omitempty"`
	Source        SourceRef       `json:"source"`
}
