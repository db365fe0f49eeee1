package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-pyme/internal/application/dto"
	"github.com/jhoicas/gestion-pyme/internal/domain/entity"
	"github.com/jhoicas/gestion-pyme/internal/domain/ledger"
	"github.com/jhoicas/gestion-pyme/internal/domain/repository"
)

// DashboardUseCase resumen para el tablero: saldo de caja, cartera y
// valorización del inventario, derivados en vivo de los repositorios.
type DashboardUseCase struct {
	partyRepo    repository.PartyRepository
	productRepo  repository.ProductRepository
	invoiceRepo  repository.InvoiceRepository
	treasuryRepo repository.TreasuryRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	partyRepo repository.PartyRepository,
	productRepo repository.ProductRepository,
	invoiceRepo repository.InvoiceRepository,
	treasuryRepo repository.TreasuryRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		partyRepo:    partyRepo,
		productRepo:  productRepo,
		invoiceRepo:  invoiceRepo,
		treasuryRepo: treasuryRepo,
	}
}

// Summary calcula el resumen. Cartera por cobrar = deuda de clientes (saldos
// negativos, con el signo volteado); por pagar = saldos positivos de proveedores.
func (uc *DashboardUseCase) Summary() (*dto.DashboardResponse, error) {
	customers, err := uc.partyRepo.ListByKind(entity.KindCustomer)
	if err != nil {
		return nil, err
	}
	suppliers, err := uc.partyRepo.ListByKind(entity.KindSupplier)
	if err != nil {
		return nil, err
	}
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	invoices, err := uc.invoiceRepo.List()
	if err != nil {
		return nil, err
	}
	txList, err := uc.treasuryRepo.List()
	if err != nil {
		return nil, err
	}

	receivables := decimal.Zero
	for _, c := range customers {
		if c.Balance.LessThan(decimal.Zero) {
			receivables = receivables.Sub(c.Balance)
		}
	}
	payables := decimal.Zero
	for _, s := range suppliers {
		if s.Balance.GreaterThan(decimal.Zero) {
			payables = payables.Add(s.Balance)
		}
	}
	stockValue := decimal.Zero
	for _, p := range products {
		stockValue = stockValue.Add(p.Quantity.Mul(p.AvgCost))
	}
	txs := make([]entity.TreasuryTransaction, 0, len(txList))
	for _, tx := range txList {
		txs = append(txs, *tx)
	}

	return &dto.DashboardResponse{
		TreasuryBalance: ledger.TreasuryBalance(txs),
		Receivables:     receivables,
		Payables:        payables,
		StockValue:      stockValue,
		CustomerCount:   len(customers),
		SupplierCount:   len(suppliers),
		ProductCount:    len(products),
		InvoiceCount:    len(invoices),
	}, nil
}
