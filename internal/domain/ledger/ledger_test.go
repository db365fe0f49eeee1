package ledger_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-pyme/internal/domain/entity"
	"github.com/jhoicas/gestion-pyme/internal/domain/ledger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func testDate() time.Time {
	return time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
}

func customerWithBalance(balance string) entity.Party {
	return entity.Party{
		Code:    "C001",
		Kind:    entity.KindCustomer,
		Name:    "Cliente Uno",
		Balance: dec(balance),
	}
}

// checkInvariant verifica que Balance == OpeningBalance + suma del historial.
func checkInvariant(t *testing.T, p entity.Party) {
	t.Helper()
	sum := p.OpeningBalance
	for _, e := range p.History {
		sum = sum.Add(e.Amount)
	}
	assert.True(t, p.Balance.Equal(sum),
		"invariante roto: balance %s != apertura + historial %s", p.Balance, sum)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ventas, compras y cobros
// ──────────────────────────────────────────────────────────────────────────────

// Una venta a crédito baja el saldo del cliente por el total de la factura y
// anexa exactamente una línea con ese delta.
func TestApplySale_BajaSaldoDelCliente(t *testing.T) {
	customer := customerWithBalance("0")

	updated, entry := ledger.ApplySale(customer, "N001", dec("150.50"), testDate())

	assert.True(t, updated.Balance.Equal(dec("-150.50")), "el saldo debe quedar en -150.50")
	require.Len(t, updated.History, 1)
	assert.True(t, entry.Amount.Equal(dec("-150.50")), "la línea debe llevar el delta aplicado")
	assert.Equal(t, entity.SourceInvoice, entry.Source.Kind)
	assert.Equal(t, "N001", entry.Source.ID)
	checkInvariant(t, updated)
}

// El snapshot de entrada no se muta: el motor devuelve copias.
func TestApplySale_NoMutaElSnapshotDeEntrada(t *testing.T) {
	customer := customerWithBalance("0")

	_, _ = ledger.ApplySale(customer, "N001", dec("100"), testDate())

	assert.True(t, customer.Balance.IsZero(), "el snapshot original no debe cambiar")
	assert.Empty(t, customer.History)
}

func TestApplyPurchase_SubeSaldoDelProveedor(t *testing.T) {
	supplier := entity.Party{Code: "S001", Kind: entity.KindSupplier, Balance: dec("20")}

	updated, entry := ledger.ApplyPurchase(supplier, "R003", dec("80"), testDate())

	assert.True(t, updated.Balance.Equal(dec("100")), "20 + 80 = 100 (le debemos)")
	assert.True(t, entry.Amount.Equal(dec("80")))
	assert.Equal(t, entity.SourcePurchase, entry.Source.Kind)
	checkInvariant(t, updated)
}

func TestApplyCollection_SubeSaldoDelCliente(t *testing.T) {
	customer := customerWithBalance("-200")

	updated, entry := ledger.ApplyCollection(customer, "abc-123", dec("120"), testDate())

	assert.True(t, updated.Balance.Equal(dec("-80")), "-200 + 120 = -80")
	assert.True(t, entry.Amount.Equal(dec("120")))
	assert.Equal(t, entity.SourceCollection, entry.Source.Kind)
	checkInvariant(t, updated)
}

// ──────────────────────────────────────────────────────────────────────────────
// Transferencias: misma regla de signo para los tres tipos de tercero
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyTransfer_SignosPorSentido(t *testing.T) {
	cases := []struct {
		name     string
		kind     entity.PartyKind
		dir      ledger.Direction
		expected string
	}{
		{"cliente IN suma", entity.KindCustomer, ledger.DirectionIn, "50"},
		{"cliente OUT resta", entity.KindCustomer, ledger.DirectionOut, "-50"},
		{"proveedor IN suma", entity.KindSupplier, ledger.DirectionIn, "50"},
		{"proveedor OUT resta", entity.KindSupplier, ledger.DirectionOut, "-50"},
		{"empleado IN suma", entity.KindEmployee, ledger.DirectionIn, "50"},
		{"empleado OUT resta", entity.KindEmployee, ledger.DirectionOut, "-50"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := entity.Party{Code: "X001", Kind: tc.kind}

			updated, entry := ledger.ApplyTransfer(p, "t-1", tc.dir, dec("50"), testDate(), "")

			assert.True(t, updated.Balance.Equal(dec(tc.expected)),
				"saldo esperado %s, obtenido %s", tc.expected, updated.Balance)
			assert.True(t, entry.Amount.Equal(dec(tc.expected)))
			checkInvariant(t, updated)
		})
	}
}

func TestApplyTransfer_NotasEnDescripcion(t *testing.T) {
	p := entity.Party{Code: "E001", Kind: entity.KindEmployee}

	_, entry := ledger.ApplyTransfer(p, "t-2", ledger.DirectionOut, dec("10"), testDate(), "anticipo")

	assert.Contains(t, entry.Description, "anticipo")
	assert.Equal(t, entity.SourceTransfer, entry.Source.Kind)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ediciones: ajuste por diferencia, nunca reversión completa
// ──────────────────────────────────────────────────────────────────────────────

// Editar una factura aplica una sola línea con delta (totalAnterior - totalNuevo).
func TestApplyInvoiceEdit_DeltaDeDeuda(t *testing.T) {
	// Venta original de 100 dejó el saldo en -100.
	customer := customerWithBalance("-100")

	// La factura se corrige de 100 a 70: el cliente debe 30 menos.
	updated, entry := ledger.ApplyInvoiceEdit(customer, "N002", dec("100"), dec("70"), testDate())

	assert.True(t, entry.Amount.Equal(dec("30")), "delta = 100 - 70")
	assert.True(t, updated.Balance.Equal(dec("-70")), "el saldo final refleja la factura corregida")
	require.Len(t, updated.History, 1, "una sola línea de ajuste, no reversión + reaplicación")
	checkInvariant(t, updated)
}

// Edición de compra: el delta corre al revés (totalNuevo - totalAnterior).
func TestApplyPurchaseEdit_DeltaInvertido(t *testing.T) {
	supplier := entity.Party{Code: "S001", Kind: entity.KindSupplier, Balance: dec("100")}

	updated, entry := ledger.ApplyPurchaseEdit(supplier, "R001", dec("100"), dec("130"), testDate())

	assert.True(t, entry.Amount.Equal(dec("30")), "delta = 130 - 100")
	assert.True(t, updated.Balance.Equal(dec("130")))
	checkInvariant(t, updated)
}

// Editar sin cambiar el total anexa una línea de delta cero y no mueve el saldo.
func TestApplyInvoiceEdit_SinCambioDeTotal(t *testing.T) {
	customer := customerWithBalance("-100")

	updated, entry := ledger.ApplyInvoiceEdit(customer, "N002", dec("100"), dec("100"), testDate())

	assert.True(t, entry.Amount.IsZero())
	assert.True(t, updated.Balance.Equal(dec("-100")))
	checkInvariant(t, updated)
}

// ──────────────────────────────────────────────────────────────────────────────
// ClearLedger y saldo de apertura
// ──────────────────────────────────────────────────────────────────────────────

func TestClearLedger_DejaLaCuentaEnCero(t *testing.T) {
	p := entity.Party{
		Code:           "C001",
		Kind:           entity.KindCustomer,
		OpeningBalance: dec("-40"),
		Balance:        dec("-90"),
		History: []entity.HistoryEntry{
			{Description: "Factura de venta N001", Amount: dec("-50")},
		},
	}

	cleared := ledger.ClearLedger(p)

	assert.True(t, cleared.Balance.IsZero())
	assert.True(t, cleared.OpeningBalance.IsZero())
	assert.Empty(t, cleared.History)
	checkInvariant(t, cleared)
}

// El saldo de apertura no es una línea del historial pero sí parte del invariante.
func TestInvariante_AperturaSinLineaDeHistorial(t *testing.T) {
	p := entity.Party{
		Code:           "C002",
		Kind:           entity.KindCustomer,
		OpeningBalance: dec("-500"),
		Balance:        dec("-500"),
	}
	checkInvariant(t, p)

	updated, _ := ledger.ApplyCollection(p, "c-1", dec("200"), testDate())
	assert.True(t, updated.Balance.Equal(dec("-300")))
	checkInvariant(t, updated)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tesorería
// ──────────────────────────────────────────────────────────────────────────────

// El saldo de tesorería se deriva siempre como suma(Credit) - suma(Debit).
func TestTreasuryBalance_DerivadoDeMovimientos(t *testing.T) {
	txs := []entity.TreasuryTransaction{
		{ID: "T001", Credit: dec("1000")},
		{ID: "T002", Debit: dec("250")},
		{ID: "T003", Credit: dec("100.50")},
		{ID: "T004", Debit: dec("0.50")},
	}

	balance := ledger.TreasuryBalance(txs)

	assert.True(t, balance.Equal(dec("850")), "1000 - 250 + 100.50 - 0.50 = 850")
}

func TestTreasuryBalance_SinMovimientos(t *testing.T) {
	assert.True(t, ledger.TreasuryBalance(nil).IsZero())
}
