package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-pyme/internal/application/dto"
	"github.com/jhoicas/gestion-pyme/internal/application/usecase"
	"github.com/jhoicas/gestion-pyme/internal/domain"
	"github.com/jhoicas/gestion-pyme/internal/domain/entity"
	"github.com/jhoicas/gestion-pyme/internal/infrastructure/memory"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func newPartyUC(t *testing.T) (*usecase.PartyUseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	return usecase.NewPartyUseCase(store.Parties()), store
}

// ──────────────────────────────────────────────────────────────────────────────
// Códigos secuenciales
// ──────────────────────────────────────────────────────────────────────────────

func TestPartyNextCode_PorTipo(t *testing.T) {
	uc, store := newPartyUC(t)

	code, err := uc.NextCode(entity.KindCustomer)
	require.NoError(t, err)
	assert.Equal(t, "C001", code, "colección vacía arranca en 001")

	require.NoError(t, store.Parties().Create(&entity.Party{Code: "C001", Kind: entity.KindCustomer, Name: "Uno"}))
	require.NoError(t, store.Parties().Create(&entity.Party{Code: "C005", Kind: entity.KindCustomer, Name: "Cinco"}))

	code, err = uc.NextCode(entity.KindCustomer)
	require.NoError(t, err)
	assert.Equal(t, "C006", code, "los huecos no se rellenan")

	code, err = uc.NextCode(entity.KindSupplier)
	require.NoError(t, err)
	assert.Equal(t, "S001", code, "cada tipo numera por separado")
}

// ──────────────────────────────────────────────────────────────────────────────
// Alta
// ──────────────────────────────────────────────────────────────────────────────

func TestPartyCreate_CodigoAutomaticoYApertura(t *testing.T) {
	uc, _ := newPartyUC(t)

	party, err := uc.Create(entity.KindCustomer, dto.CreatePartyRequest{
		Name:           "Cliente Nuevo",
		OpeningBalance: dec("-300"),
	})
	require.NoError(t, err)

	assert.Equal(t, "C001", party.Code)
	assert.True(t, party.Balance.Equal(dec("-300")), "la apertura fija el saldo")
	assert.True(t, party.OpeningBalance.Equal(dec("-300")))
	assert.Empty(t, party.History, "la apertura no genera línea de historial")
}

func TestPartyCreate_CodigoDuplicado(t *testing.T) {
	uc, _ := newPartyUC(t)
	_, err := uc.Create(entity.KindCustomer, dto.CreatePartyRequest{Code: "C009", Name: "Uno"})
	require.NoError(t, err)

	_, err = uc.Create(entity.KindCustomer, dto.CreatePartyRequest{Code: "C009", Name: "Dos"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestPartyCreate_NombreObligatorio(t *testing.T) {
	uc, _ := newPartyUC(t)
	_, err := uc.Create(entity.KindCustomer, dto.CreatePartyRequest{Code: "C001"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Filtro de nombre
// ──────────────────────────────────────────────────────────────────────────────

// El filtro ignora mayúsculas y acentos: "jose" encuentra a "José".
func TestPartyList_FiltroInsensibleAAcentos(t *testing.T) {
	uc, _ := newPartyUC(t)
	for _, name := range []string{"José Pérez", "María López", "Pedro Gómez"} {
		_, err := uc.Create(entity.KindCustomer, dto.CreatePartyRequest{Name: name})
		require.NoError(t, err)
	}

	found, err := uc.List(entity.KindCustomer, "jose")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "José Pérez", found[0].Name)

	found, err = uc.List(entity.KindCustomer, "PÉREZ")
	require.NoError(t, err)
	assert.Len(t, found, 1)

	all, err := uc.List(entity.KindCustomer, "")
	require.NoError(t, err)
	assert.Len(t, all, 3, "filtro vacío lista todo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Renombrado (re-clave)
// ──────────────────────────────────────────────────────────────────────────────

// Cambiar el código re-clava la cuenta conservando saldo e historial.
func TestPartyUpdate_RenombreConservaLedger(t *testing.T) {
	uc, store := newPartyUC(t)
	require.NoError(t, store.Parties().Create(&entity.Party{
		Code:    "C001",
		Kind:    entity.KindCustomer,
		Name:    "Cliente Uno",
		Balance: dec("-80"),
		History: []entity.HistoryEntry{{Description: "Factura de venta N001", Amount: dec("-80")}},
	}))

	updated, err := uc.Update(entity.KindCustomer, "C001", dto.UpdatePartyRequest{NewCode: "C100"})
	require.NoError(t, err)
	assert.Equal(t, "C100", updated.Code)

	old, _ := store.Parties().GetByCode(entity.KindCustomer, "C001")
	assert.Nil(t, old, "el código anterior desaparece")

	moved, _ := store.Parties().GetByCode(entity.KindCustomer, "C100")
	require.NotNil(t, moved)
	assert.True(t, moved.Balance.Equal(dec("-80")), "el saldo viaja con la cuenta")
	assert.Len(t, moved.History, 1, "el historial viaja con la cuenta")
}

func TestPartyUpdate_RenombreACodigoOcupado(t *testing.T) {
	uc, _ := newPartyUC(t)
	_, err := uc.Create(entity.KindCustomer, dto.CreatePartyRequest{Code: "C001", Name: "Uno"})
	require.NoError(t, err)
	_, err = uc.Create(entity.KindCustomer, dto.CreatePartyRequest{Code: "C002", Name: "Dos"})
	require.NoError(t, err)

	_, err = uc.Update(entity.KindCustomer, "C001", dto.UpdatePartyRequest{NewCode: "C002"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// Los campos de empleado solo se tocan en empleados.
func TestPartyUpdate_CamposDeEmpleado(t *testing.T) {
	uc, store := newPartyUC(t)
	_, err := uc.Create(entity.KindEmployee, dto.CreatePartyRequest{
		Code: "E001", Name: "Ana", Role: "Vendedora", Salary: dec("900"),
	})
	require.NoError(t, err)

	_, err = uc.Update(entity.KindEmployee, "E001", dto.UpdatePartyRequest{Salary: dec("1000")})
	require.NoError(t, err)

	employee, _ := store.Parties().GetByCode(entity.KindEmployee, "E001")
	assert.True(t, employee.Salary.Equal(dec("1000")))
	assert.Equal(t, "Vendedora", employee.Role, "rol vacío no pisa el existente")
}

// ──────────────────────────────────────────────────────────────────────────────
// ClearLedger y borrado
// ──────────────────────────────────────────────────────────────────────────────

func TestPartyClearLedger_CuentaEnCero(t *testing.T) {
	uc, store := newPartyUC(t)
	require.NoError(t, store.Parties().Create(&entity.Party{
		Code:           "C001",
		Kind:           entity.KindCustomer,
		Name:           "Cliente Uno",
		OpeningBalance: dec("-40"),
		Balance:        dec("-90"),
		History:        []entity.HistoryEntry{{Amount: dec("-50")}},
	}))

	require.NoError(t, uc.ClearLedger(entity.KindCustomer, "C001"))

	cleared, _ := store.Parties().GetByCode(entity.KindCustomer, "C001")
	assert.True(t, cleared.Balance.IsZero())
	assert.True(t, cleared.OpeningBalance.IsZero())
	assert.Empty(t, cleared.History)
	assert.Equal(t, "Cliente Uno", cleared.Name, "solo se limpia el ledger, no la identidad")
}

func TestPartyDelete_Inexistente(t *testing.T) {
	uc, _ := newPartyUC(t)
	assert.ErrorIs(t, uc.Delete(entity.KindCustomer, "C404"), domain.ErrNotFound)
}
