package dto

import "github.com/shopspring/decimal"

// CreateProductRequest alta manual de producto.
type CreateProductRequest struct {
	Code     string          `json:"code"`
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	AvgCost  decimal.Decimal `json:"avg_cost"`
	Price    decimal.Decimal `json:"price"`
}

// UpdateProductRequest edición de producto. Quantity y AvgCost se editan aquí
// solo de forma manual; las compras y ventas los mueven por el motor de ledger.
type UpdateProductRequest struct {
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	AvgCost  decimal.Decimal `json:"avg_cost"`
	Price    decimal.Decimal `json:"price"`
}
