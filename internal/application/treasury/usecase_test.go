package treasury_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-pyme/internal/application/dto"
	"github.com/jhoicas/gestion-pyme/internal/application/treasury"
	"github.com/jhoicas/gestion-pyme/internal/domain"
	"github.com/jhoicas/gestion-pyme/internal/domain/entity"
	"github.com/jhoicas/gestion-pyme/internal/infrastructure/memory"
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

func newFixture(t *testing.T) (*treasury.UseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	uc := treasury.NewUseCase(&memory.TreasuryTxRunner{Store: store}, store.Treasury())
	return uc, store
}

func seedParty(t *testing.T, store *memory.Store, kind entity.PartyKind, code, balance string) {
	t.Helper()
	require.NoError(t, store.Parties().Create(&entity.Party{
		Code:    code,
		Kind:    kind,
		Name:    "Tercero " + code,
		Balance: dec(balance),
	}))
}

func transfer(kind entity.PartyKind, code, direction, amount string) dto.TransferRequest {
	return dto.TransferRequest{
		Kind:      string(kind),
		Code:      code,
		Amount:    dec(amount),
		Direction: direction,
		Date:      time.Date(2025, 5, 2, 9, 0, 0, 0, time.UTC),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Transferencias
// ──────────────────────────────────────────────────────────────────────────────

// IN suma al saldo del tercero y acredita la caja; OUT resta y debita. La misma
// regla aplica a clientes, proveedores y empleados.
func TestAddTransfer_SignosYMovimientoDeCaja(t *testing.T) {
	cases := []struct {
		name            string
		kind            entity.PartyKind
		direction       string
		expectedBalance string
	}{
		{"cliente IN", entity.KindCustomer, "IN", "50"},
		{"cliente OUT", entity.KindCustomer, "OUT", "-50"},
		{"proveedor IN", entity.KindSupplier, "IN", "50"},
		{"proveedor OUT", entity.KindSupplier, "OUT", "-50"},
		{"empleado IN", entity.KindEmployee, "IN", "50"},
		{"empleado OUT", entity.KindEmployee, "OUT", "-50"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, store := newFixture(t)
			seedParty(t, store, tc.kind, "X001", "0")

			require.NoError(t, uc.AddTransfer(context.Background(), transfer(tc.kind, "X001", tc.direction, "50")))

			party, _ := store.Parties().GetByCode(tc.kind, "X001")
			assert.True(t, party.Balance.Equal(dec(tc.expectedBalance)))
			require.Len(t, party.History, 1)

			txs, _ := store.Treasury().List()
			require.Len(t, txs, 1)
			assert.Equal(t, "T001", txs[0].ID)
			if tc.direction == "IN" {
				assert.True(t, txs[0].Credit.Equal(dec("50")), "IN acredita la caja")
				assert.True(t, txs[0].Debit.IsZero())
			} else {
				assert.True(t, txs[0].Debit.Equal(dec("50")), "OUT debita la caja")
				assert.True(t, txs[0].Credit.IsZero())
			}
		})
	}
}

// La línea de historial y el movimiento de tesorería comparten el mismo id de
// origen: la transferencia es rastreable de punta a punta.
func TestAddTransfer_OrigenCompartido(t *testing.T) {
	uc, store := newFixture(t)
	seedParty(t, store, entity.KindEmployee, "E001", "0")

	require.NoError(t, uc.AddTransfer(context.Background(), transfer(entity.KindEmployee, "E001", "OUT", "30")))

	party, _ := store.Parties().GetByCode(entity.KindEmployee, "E001")
	txs, _ := store.Treasury().List()
	require.Len(t, party.History, 1)
	require.Len(t, txs, 1)
	assert.Equal(t, entity.SourceTransfer, party.History[0].Source.Kind)
	assert.Equal(t, party.History[0].Source.ID, txs[0].Source.ID,
		"historial y tesorería apuntan al mismo id de transferencia")
	assert.NotEmpty(t, txs[0].Source.ID)
}

func TestAddTransfer_DefaultEfectivo(t *testing.T) {
	uc, store := newFixture(t)
	seedParty(t, store, entity.KindCustomer, "C001", "0")

	require.NoError(t, uc.AddTransfer(context.Background(), transfer(entity.KindCustomer, "C001", "IN", "10")))

	txs, _ := store.Treasury().List()
	require.Len(t, txs, 1)
	assert.Equal(t, entity.PaymentCash, txs[0].PaymentMethod)
}

func TestAddTransfer_TerceroInexistente(t *testing.T) {
	uc, store := newFixture(t)

	err := uc.AddTransfer(context.Background(), transfer(entity.KindCustomer, "C404", "IN", "10"))

	assert.ErrorIs(t, err, domain.ErrNotFound)
	txs, _ := store.Treasury().List()
	assert.Empty(t, txs, "nada se escribe si el tercero no existe")
}

func TestAddTransfer_Validaciones(t *testing.T) {
	uc, store := newFixture(t)
	seedParty(t, store, entity.KindCustomer, "C001", "0")

	cases := []struct {
		name string
		req  dto.TransferRequest
	}{
		{"sentido inválido", transfer(entity.KindCustomer, "C001", "SIDEWAYS", "10")},
		{"tipo inválido", dto.TransferRequest{Kind: "alien", Code: "C001", Amount: dec("10"), Direction: "IN"}},
		{"monto cero", transfer(entity.KindCustomer, "C001", "IN", "0")},
		{"monto negativo", transfer(entity.KindCustomer, "C001", "IN", "-5")},
		{"código vacío", transfer(entity.KindCustomer, "", "IN", "10")},
		{"método de pago inválido", func() dto.TransferRequest {
			r := transfer(entity.KindCustomer, "C001", "IN", "10")
			r.PaymentMethod = "CHEQUE"
			return r
		}()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, uc.AddTransfer(context.Background(), tc.req), domain.ErrInvalidInput)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Gastos y saldo de apertura
// ──────────────────────────────────────────────────────────────────────────────

func TestAddExpense_DebitaLaCaja(t *testing.T) {
	uc, store := newFixture(t)

	require.NoError(t, uc.AddExpense(context.Background(), dto.ExpenseRequest{
		Name:   "Alquiler",
		Amount: dec("300"),
		Notes:  "local marzo",
	}))

	txs, _ := store.Treasury().List()
	require.Len(t, txs, 1)
	assert.Equal(t, "T001", txs[0].ID)
	assert.True(t, txs[0].Debit.Equal(dec("300")))
	assert.Equal(t, entity.PaymentCash, txs[0].PaymentMethod, "los gastos salen siempre de caja")
	assert.Equal(t, "Gasto: Alquiler - local marzo", txs[0].Description)
	assert.Equal(t, entity.SourceExpense, txs[0].Source.Kind)
}

func TestAddExpense_Validaciones(t *testing.T) {
	uc, _ := newFixture(t)

	assert.ErrorIs(t, uc.AddExpense(context.Background(), dto.ExpenseRequest{Amount: dec("10")}), domain.ErrInvalidInput)
	assert.ErrorIs(t, uc.AddExpense(context.Background(), dto.ExpenseRequest{Name: "Luz", Amount: dec("0")}), domain.ErrInvalidInput)
}

func TestAddOpeningBalance_AcreditaLaCaja(t *testing.T) {
	uc, store := newFixture(t)

	require.NoError(t, uc.AddOpeningBalance(context.Background(), dto.OpeningBalanceRequest{
		Amount:        dec("1000"),
		PaymentMethod: entity.PaymentBank,
	}))

	txs, _ := store.Treasury().List()
	require.Len(t, txs, 1)
	assert.True(t, txs[0].Credit.Equal(dec("1000")))
	assert.Equal(t, entity.PaymentBank, txs[0].PaymentMethod)
	assert.Equal(t, entity.SourceOpening, txs[0].Source.Kind)
}

// ──────────────────────────────────────────────────────────────────────────────
// Saldo derivado y limpieza
// ──────────────────────────────────────────────────────────────────────────────

// El saldo nunca se almacena: se deriva de los movimientos cada vez.
func TestBalance_DerivadoDeMovimientos(t *testing.T) {
	uc, store := newFixture(t)
	seedParty(t, store, entity.KindCustomer, "C001", "0")

	require.NoError(t, uc.AddOpeningBalance(context.Background(), dto.OpeningBalanceRequest{Amount: dec("1000")}))
	require.NoError(t, uc.AddExpense(context.Background(), dto.ExpenseRequest{Name: "Luz", Amount: dec("250")}))
	require.NoError(t, uc.AddTransfer(context.Background(), transfer(entity.KindCustomer, "C001", "IN", "100.50")))

	balance, err := uc.Balance(context.Background())
	require.NoError(t, err)
	assert.True(t, balance.Equal(dec("850.50")), "1000 - 250 + 100.50")

	txs, _ := uc.List(context.Background())
	require.Len(t, txs, 3)
	assert.Equal(t, []string{"T001", "T002", "T003"}, []string{txs[0].ID, txs[1].ID, txs[2].ID},
		"numeración secuencial en orden de alta")
}

// Limpiar la tesorería no toca los saldos de terceros.
func TestClearTreasury_NoTocaTerceros(t *testing.T) {
	uc, store := newFixture(t)
	seedParty(t, store, entity.KindCustomer, "C001", "0")
	require.NoError(t, uc.AddTransfer(context.Background(), transfer(entity.KindCustomer, "C001", "IN", "75")))

	require.NoError(t, uc.ClearTreasury(context.Background()))

	balance, err := uc.Balance(context.Background())
	require.NoError(t, err)
	assert.True(t, balance.IsZero())

	party, _ := store.Parties().GetByCode(entity.KindCustomer, "C001")
	assert.True(t, party.Balance.Equal(dec("75")), "el saldo del cliente sobrevive a la limpieza")
	assert.Len(t, party.History, 1)
}
