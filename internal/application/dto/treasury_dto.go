package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferRequest transferencia IN/OUT contra un tercero.
type TransferRequest struct {
	Kind          string          `json:"kind"` // customer | supplier | employee
	Code          string          `json:"code"`
	Amount        decimal.Decimal `json:"amount"`
	Direction     string          `json:"direction"` // IN | OUT
	Date          time.Time       `json:"date"`
	PaymentMethod string          `json:"payment_method"`
	Notes         string          `json:"notes,omitempty"`
}

// ExpenseRequest gasto: débito de tesorería contra la caja, sin tercero.
type ExpenseRequest struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
	Date   time.Time       `json:"date"`
	Notes  string          `json:"notes,omitempty"`
}

// OpeningBalanceRequest crédito inicial para sembrar la caja, sin tercero.
type OpeningBalanceRequest struct {
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date"`
	PaymentMethod string          `json:"payment_method"`
	Notes         string          `json:"notes,omitempty"`
}

// TreasuryBalanceResponse saldo derivado de tesorería.
type TreasuryBalanceResponse struct {
	Balance decimal.Decimal `json:"balance"`
}
