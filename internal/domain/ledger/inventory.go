package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-pyme/internal/domain/entity"
)

// Margen aplicado al costo para el precio de venta inicial de un producto
// auto-creado desde una línea de compra.
var defaultMarkup = decimal.NewFromFloat(1.2)

// WeightedAverage costo promedio ponderado entre el stock existente y una
// entrada nueva. Divisor cero (o negativo) devuelve cero.
func WeightedAverage(qty, avgCost, inQty, inCost decimal.Decimal) decimal.Decimal {
	sum := qty.Add(inQty)
	if sum.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	num := qty.Mul(avgCost).Add(inQty.Mul(inCost))
	return num.Div(sum)
}

// Receive entrada de stock por una línea de compra: suma cantidad y recalcula el
// costo promedio ponderado. Price no se toca.
func Receive(p entity.Product, qty, unitCost decimal.Decimal) entity.Product {
	p.AvgCost = WeightedAverage(p.Quantity, p.AvgCost, qty, unitCost)
	p.Quantity = p.Quantity.Add(qty)
	return p
}

// RevertReceive deshace el efecto de una línea de compra sobre el inventario:
// resta la cantidad y despeja el costo promedio previo. Si la cantidad revertida
// queda en cero o menos, el costo cae a cero (guarda de división).
func RevertReceive(p entity.Product, qty, unitCost decimal.Decimal) entity.Product {
	reverted := p.Quantity.Sub(qty)
	if reverted.GreaterThan(decimal.Zero) {
		p.AvgCost = p.Quantity.Mul(p.AvgCost).Sub(qty.Mul(unitCost)).Div(reverted)
	} else {
		p.AvgCost = decimal.Zero
	}
	p.Quantity = reverted
	return p
}

// Deduct salida de stock por una línea de venta: solo resta cantidad, el costo
// promedio no cambia. No valida suficiencia: esa es precondición del orquestador.
func Deduct(p entity.Product, qty decimal.Decimal) entity.Product {
	p.Quantity = p.Quantity.Sub(qty)
	return p
}

// Restore repone stock de una línea de venta revertida (edición de factura).
func Restore(p entity.Product, qty decimal.Decimal) entity.Product {
	p.Quantity = p.Quantity.Add(qty)
	return p
}

// NewProductFromLine crea el producto referenciado por una línea de compra con
// código desconocido: stock y costo de la línea, precio = costo * 1.2.
func NewProductFromLine(code, name string, qty, unitCost decimal.Decimal) entity.Product {
	return entity.Product{
		Code:     code,
		Name:     name,
		Quantity: qty,
		AvgCost:  unitCost,
		Price:    unitCost.Mul(defaultMarkup),
	}
}
