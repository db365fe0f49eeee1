// Package ledger implementa el motor de propagación de saldos: funciones puras
// que, dado el estado actual de una cuenta y los hechos de una transacción,
// calculan el nuevo saldo y la línea de historial a anexar. Sin I/O; los casos
// de uso leen y escriben los snapshots a través de los puertos de repositorio.
package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-pyme/internal/domain/entity"
)

// Direction sentido de una transferencia de tesorería contra un tercero.
type Direction string

const (
	DirectionIn  Direction = "IN"  // entra dinero al negocio
	DirectionOut Direction = "OUT" // sale dinero del negocio
)

// Valid indica si el sentido es IN u OUT.
func (d Direction) Valid() bool {
	return d == DirectionIn || d == DirectionOut
}

// TransferDelta delta firmado de una transferencia sobre el saldo del tercero.
// La regla es la misma para cliente, proveedor y empleado: IN suma, OUT resta.
func TransferDelta(dir Direction, amount decimal.Decimal) decimal.Decimal {
	if dir == DirectionOut {
		return amount.Neg()
	}
	return amount
}

// apply anexa la línea y mueve el saldo por el mismo delta. Copia el historial
// para que el snapshot de entrada no quede compartido con el de salida.
func apply(p entity.Party, e entity.HistoryEntry) entity.Party {
	history := make([]entity.HistoryEntry, len(p.History), len(p.History)+1)
	copy(history, p.History)
	p.History = append(history, e)
	p.Balance = p.Balance.Add(e.Amount)
	return p
}

// ApplySale registra una venta a crédito sobre el cliente: el saldo baja por el
// total de la factura (negativo = nos debe).
func ApplySale(customer entity.Party, invoiceID string, total decimal.Decimal, date time.Time) (entity.Party, entity.HistoryEntry) {
	e := entity.HistoryEntry{
		Date:        date,
		Description: fmt.Sprintf("Factura de venta %s", invoiceID),
		Amount:      total.Neg(),
		Source:      entity.SourceRef{Kind: entity.SourceInvoice, ID: invoiceID},
	}
	return apply(customer, e), e
}

// ApplyPurchase registra una compra sobre el proveedor: el saldo sube por el
// total (positivo = le debemos).
func ApplyPurchase(supplier entity.Party, purchaseID string, total decimal.Decimal, date time.Time) (entity.Party, entity.HistoryEntry) {
	e := entity.HistoryEntry{
		Date:        date,
		Description: fmt.Sprintf("Factura de compra %s", purchaseID),
		Amount:      total,
		Source:      entity.SourceRef{Kind: entity.SourcePurchase, ID: purchaseID},
	}
	return apply(supplier, e), e
}

// ApplyCollection registra un cobro en efectivo al cliente: el saldo sube por el
// monto recibido.
func ApplyCollection(customer entity.Party, collectionID string, amount decimal.Decimal, date time.Time) (entity.Party, entity.HistoryEntry) {
	e := entity.HistoryEntry{
		Date:        date,
		Description: "Abono recibido",
		Amount:      amount,
		Source:      entity.SourceRef{Kind: entity.SourceCollection, ID: collectionID},
	}
	return apply(customer, e), e
}

// ApplyTransfer registra una transferencia IN/OUT sobre cualquier tercero con el
// signo de TransferDelta.
func ApplyTransfer(p entity.Party, transferID string, dir Direction, amount decimal.Decimal, date time.Time, notes string) (entity.Party, entity.HistoryEntry) {
	desc := "Transferencia entrada"
	if dir == DirectionOut {
		desc = "Transferencia salida"
	}
	if notes != "" {
		desc = desc + ": " + notes
	}
	e := entity.HistoryEntry{
		Date:        date,
		Description: desc,
		Amount:      TransferDelta(dir, amount),
		Source:      entity.SourceRef{Kind: entity.SourceTransfer, ID: transferID},
	}
	return apply(p, e), e
}

// ApplyInvoiceEdit ajusta el saldo del cliente al editar una factura: se aplica
// solo el delta de deuda (totalAnterior - totalNuevo), no una reversión completa,
// y se anexa exactamente una línea con ese delta.
func ApplyInvoiceEdit(customer entity.Party, invoiceID string, oldTotal, newTotal decimal.Decimal, date time.Time) (entity.Party, entity.HistoryEntry) {
	e := entity.HistoryEntry{
		Date:        date,
		Description: fmt.Sprintf("Ajuste por edición de factura %s", invoiceID),
		Amount:      oldTotal.Sub(newTotal),
		Source:      entity.SourceRef{Kind: entity.SourceInvoice, ID: invoiceID},
	}
	return apply(customer, e), e
}

// ApplyPurchaseEdit ajusta el saldo del proveedor al editar una compra: delta
// (totalNuevo - totalAnterior) en una sola línea.
func ApplyPurchaseEdit(supplier entity.Party, purchaseID string, oldTotal, newTotal decimal.Decimal, date time.Time) (entity.Party, entity.HistoryEntry) {
	e := entity.HistoryEntry{
		Date:        date,
		Description: fmt.Sprintf("Ajuste por edición de compra %s", purchaseID),
		Amount:      newTotal.Sub(oldTotal),
		Source:      entity.SourceRef{Kind: entity.SourcePurchase, ID: purchaseID},
	}
	return apply(supplier, e), e
}

// ClearLedger deja la cuenta en cero: saldo 0, apertura 0 e historial vacío.
// Irreversible.
func ClearLedger(p entity.Party) entity.Party {
	p.Balance = decimal.Zero
	p.OpeningBalance = decimal.Zero
	p.History = nil
	return p
}
