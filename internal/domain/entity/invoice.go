package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Prefijos de numeración de documentos.
const (
	PrefixInvoice  = "N"
	PrefixPurchase = "R"
	PrefixTreasury = "T"
)

// LineItem línea de una factura de venta o de compra.
// Total = Quantity * Price; se fija al registrar la línea y no se revalida en lectura.
type LineItem struct {
	ProductCode string          `json:"product_code"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Total       decimal.Decimal `json:"total"`
}

// Invoice factura de venta (N###).
// PreviousBalance y CurrentBalance son instantáneas del saldo del cliente tomadas
// al guardar, para impresión; nunca se recalculan después.
type Invoice struct {
	ID              string          `json:"id"`
	Date            time.Time       `json:"date"`
	CustomerCode    string          `json:"customer_code"`
	CustomerName    string          `json:"customer_name"`
	Items           []LineItem      `json:"items"`
	Total           decimal.Decimal `json:"total"`
	PreviousBalance decimal.Decimal `json:"previous_balance"`
	CurrentBalance  decimal.Decimal `json:"current_balance"`
}

// Purchase factura de compra a proveedor (R###). Misma forma que Invoice pero
// referida al proveedor; las instantáneas de saldo son las del proveedor.
type Purchase struct {
	ID              string          `json:"id"`
	Date            time.Time       `json:"date"`
	SupplierCode    string          `json:"supplier_code"`
	SupplierName    string          `json:"supplier_name"`
	Items           []LineItem      `json:"items"`
	Total           decimal.Decimal `json:"total"`
	PreviousBalance decimal.Decimal `json:"previous_balance"`
	CurrentBalance  decimal.Decimal `json:"current_balance"`
}
