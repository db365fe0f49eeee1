package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de documento origen de un movimiento de ledger.
const (
	SourceInvoice    = "INVOICE"
	SourcePurchase   = "PURCHASE"
	SourceCollection = "COLLECTION"
	SourceTransfer   = "TRANSFER"
	SourceExpense    = "EXPENSE"
	SourceOpening    = "OPENING"
	SourceManual     = "MANUAL"
)

// SourceRef referencia estructurada del documento que originó un movimiento.
// Reemplaza el enlace por texto libre: la descripción queda solo para mostrar.
type SourceRef struct {
	Kind string `json:"kind"`
	ID   string `json:"id"`
}

// HistoryEntry línea del historial de un tercero: un cambio firmado sobre su saldo.
// Amount es exactamente el delta aplicado al balance (invariante del ledger).
type HistoryEntry struct {
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Source      SourceRef       `json:"source"`
}
