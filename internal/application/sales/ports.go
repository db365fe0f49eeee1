package sales

import (
	"context"

	"github.com/jhoicas/gestion-pyme/internal/domain/repository"
)

// TxRunner ejecuta una función con los repositorios que tocan las operaciones de
// venta. El adaptador de PostgreSQL la envuelve en una transacción (commit
// atómico multi-escritura); los adaptadores locales ejecutan las escrituras en
// secuencia, que es el contrato base: un fallo a mitad de operación se reporta y
// no se revierte lo ya escrito.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		parties repository.PartyRepository,
		products repository.ProductRepository,
		invoices repository.InvoiceRepository,
		treasury repository.TreasuryRepository,
	) error) error
}
