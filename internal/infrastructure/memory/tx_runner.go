package memory

import (
	"context"

	"github.com/jhoicas/gestion-pyme/internal/application/purchasing"
	"github.com/jhoicas/gestion-pyme/internal/application/sales"
	"github.com/jhoicas/gestion-pyme/internal/application/treasury"
	"github.com/jhoicas/gestion-pyme/internal/domain/repository"
)

// Runners secuenciales: ejecutan la función con los repositorios del store, sin
// transacción. Un error a mitad de camino deja escrito lo anterior (contrato
// base de los puertos TxRunner).

var (
	_ sales.TxRunner      = (*SalesTxRunner)(nil)
	_ purchasing.TxRunner = (*PurchasingTxRunner)(nil)
	_ treasury.TxRunner   = (*TreasuryTxRunner)(nil)
)

// SalesTxRunner runner de ventas sobre el store en memoria.
type SalesTxRunner struct{ Store *Store }

// Run ejecuta fn con los repositorios del store.
func (r *SalesTxRunner) Run(ctx context.Context, fn func(
	parties repository.PartyRepository,
	products repository.ProductRepository,
	invoices repository.InvoiceRepository,
	treasury repository.TreasuryRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(r.Store.Parties(), r.Store.Products(), r.Store.Invoices(), r.Store.Treasury())
}

// PurchasingTxRunner runner de compras sobre el store en memoria.
type PurchasingTxRunner struct{ Store *Store }

// Run ejecuta fn con los repositorios del store.
func (r *PurchasingTxRunner) Run(ctx context.Context, fn func(
	parties repository.PartyRepository,
	products repository.ProductRepository,
	purchases repository.PurchaseRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(r.Store.Parties(), r.Store.Products(), r.Store.Purchases())
}

// TreasuryTxRunner runner de tesorería sobre el store en memoria.
type TreasuryTxRunner struct{ Store *Store }

// Run ejecuta fn con los repositorios del store.
func (r *TreasuryTxRunner) Run(ctx context.Context, fn func(
	parties repository.PartyRepository,
	treasury repository.TreasuryRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(r.Store.Parties(), r.Store.Treasury())
}
