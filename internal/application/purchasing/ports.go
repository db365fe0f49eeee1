package purchasing

import (
	"context"

	"github.com/jhoicas/gestion-pyme/internal/domain/repository"
)

// TxRunner ejecuta una función con los repositorios que tocan las operaciones de
// compra. PostgreSQL la envuelve en una transacción; los adaptadores locales
// ejecutan las escrituras en secuencia (contrato base, sin rollback).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		parties repository.PartyRepository,
		products repository.ProductRepository,
		purchases repository.PurchaseRepository,
	) error) error
}
