package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/gestion-pyme/internal/application/purchasing"
	"github.com/jhoicas/gestion-pyme/internal/application/sales"
	"github.com/jhoicas/gestion-pyme/internal/application/treasury"
	"github.com/jhoicas/gestion-pyme/internal/domain/repository"
)

// Runners transaccionales: cada Run abre una transacción, construye repos atados
// a la tx y hace Commit o Rollback. Es el único backend donde una operación
// multi-escritura (venta = cliente + producto + factura) es atómica.

var (
	_ sales.TxRunner      = (*SalesTxRunner)(nil)
	_ purchasing.TxRunner = (*PurchasingTxRunner)(nil)
	_ treasury.TxRunner   = (*TreasuryTxRunner)(nil)
)

// SalesTxRunner runner de ventas sobre PostgreSQL.
type SalesTxRunner struct {
	pool *pgxpool.Pool
}

// NewSalesTxRunner construye el runner con el pool.
func NewSalesTxRunner(pool *pgxpool.Pool) *SalesTxRunner {
	return &SalesTxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *SalesTxRunner) Run(ctx context.Context, fn func(
	parties repository.PartyRepository,
	products repository.ProductRepository,
	invoices repository.InvoiceRepository,
	treasuryRepo repository.TreasuryRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewPartyRepository(tx), NewProductRepository(tx),
		NewInvoiceRepository(tx), NewTreasuryRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// PurchasingTxRunner runner de compras sobre PostgreSQL.
type PurchasingTxRunner struct {
	pool *pgxpool.Pool
}

// NewPurchasingTxRunner construye el runner con el pool.
func NewPurchasingTxRunner(pool *pgxpool.Pool) *PurchasingTxRunner {
	return &PurchasingTxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *PurchasingTxRunner) Run(ctx context.Context, fn func(
	parties repository.PartyRepository,
	products repository.ProductRepository,
	purchases repository.PurchaseRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewPartyRepository(tx), NewProductRepository(tx), NewPurchaseRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// TreasuryTxRunner runner de tesorería sobre PostgreSQL.
type TreasuryTxRunner struct {
	pool *pgxpool.Pool
}

// NewTreasuryTxRunner construye el runner con el pool.
func NewTreasuryTxRunner(pool *pgxpool.Pool) *TreasuryTxRunner {
	return &TreasuryTxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TreasuryTxRunner) Run(ctx context.Context, fn func(
	parties repository.PartyRepository,
	treasuryRepo repository.TreasuryRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewPartyRepository(tx), NewTreasuryRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
