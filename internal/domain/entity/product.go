package entity

import "github.com/shopspring/decimal"

// Product artículo del inventario.
// AvgCost es el costo promedio ponderado y solo se recalcula al agregar o editar
// una compra. Price es el precio de venta, independiente del costo; únicamente se
// deriva (AvgCost * 1.2) al auto-crear un producto desde una línea de compra con
// código desconocido.
type Product struct {
	Code     string          `json:"code"`
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	AvgCost  decimal.Decimal `json:"avg_cost"`
	Price    decimal.Decimal `json:"price"`
}
