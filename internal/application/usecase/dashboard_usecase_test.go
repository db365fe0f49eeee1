package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-pyme/internal/application/usecase"
	"github.com/jhoicas/gestion-pyme/internal/domain/entity"
	"github.com/jhoicas/gestion-pyme/internal/infrastructure/memory"
)

func newDashboardUC(t *testing.T) (*usecase.DashboardUseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	uc := usecase.NewDashboardUseCase(store.Parties(), store.Products(), store.Invoices(), store.Treasury())
	return uc, store
}

// Cartera por cobrar = deuda de clientes con el signo volteado; por pagar =
// saldos positivos de proveedores. Los saldos a favor no se mezclan.
func TestDashboardSummary_CarteraPorSigno(t *testing.T) {
	uc, store := newDashboardUC(t)
	parties := []entity.Party{
		{Code: "C001", Kind: entity.KindCustomer, Name: "Debe", Balance: dec("-150")},
		{Code: "C002", Kind: entity.KindCustomer, Name: "Debe más", Balance: dec("-50")},
		{Code: "C003", Kind: entity.KindCustomer, Name: "A favor", Balance: dec("30")},
		{Code: "S001", Kind: entity.KindSupplier, Name: "Le debemos", Balance: dec("200")},
		{Code: "S002", Kind: entity.KindSupplier, Name: "Nos debe", Balance: dec("-80")},
	}
	for i := range parties {
		require.NoError(t, store.Parties().Create(&parties[i]))
	}

	summary, err := uc.Summary()
	require.NoError(t, err)

	assert.True(t, summary.Receivables.Equal(dec("200")), "150 + 50; el saldo a favor no resta")
	assert.True(t, summary.Payables.Equal(dec("200")), "solo saldos positivos de proveedor")
	assert.Equal(t, 3, summary.CustomerCount)
	assert.Equal(t, 2, summary.SupplierCount)
}

func TestDashboardSummary_ValorizacionDeInventario(t *testing.T) {
	uc, store := newDashboardUC(t)
	products := []entity.Product{
		{Code: "P001", Name: "Uno", Quantity: dec("10"), AvgCost: dec("5")},
		{Code: "P002", Name: "Dos", Quantity: dec("3"), AvgCost: dec("2.50")},
	}
	for i := range products {
		require.NoError(t, store.Products().Create(&products[i]))
	}
	require.NoError(t, store.Treasury().Create(&entity.TreasuryTransaction{ID: "T001", Credit: dec("1000")}))
	require.NoError(t, store.Treasury().Create(&entity.TreasuryTransaction{ID: "T002", Debit: dec("400")}))

	summary, err := uc.Summary()
	require.NoError(t, err)

	assert.True(t, summary.StockValue.Equal(dec("57.50")), "10*5 + 3*2.50")
	assert.True(t, summary.TreasuryBalance.Equal(dec("600")), "derivado: 1000 - 400")
	assert.Equal(t, 2, summary.ProductCount)
}

func TestDashboardSummary_Vacio(t *testing.T) {
	uc, _ := newDashboardUC(t)

	summary, err := uc.Summary()
	require.NoError(t, err)

	assert.True(t, summary.Receivables.IsZero())
	assert.True(t, summary.Payables.IsZero())
	assert.True(t, summary.StockValue.IsZero())
	assert.True(t, summary.TreasuryBalance.IsZero())
	assert.Zero(t, summary.InvoiceCount)
}
