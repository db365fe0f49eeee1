package dto

import "github.com/shopspring/decimal"

// DashboardResponse resumen para el tablero: saldo de caja, cartera por cobrar y
// por pagar, valorización del inventario y conteos.
type DashboardResponse struct {
	TreasuryBalance decimal.Decimal `json:"treasury_balance"`
	Receivables     decimal.Decimal `json:"receivables"` // deuda de clientes (positiva)
	Payables        decimal.Decimal `json:"payables"`    // deuda a proveedores (positiva)
	StockValue      decimal.Decimal `json:"stock_value"` // suma de qty * avg_cost
	CustomerCount   int             `json:"customer_count"`
	SupplierCount   int             `json:"supplier_count"`
	ProductCount    int             `json:"product_count"`
	InvoiceCount    int             `json:"invoice_count"`
}
