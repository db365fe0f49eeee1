package treasury

import (
	"context"

	"github.com/jhoicas/gestion-pyme/internal/domain/repository"
)

// TxRunner ejecuta una función con los repositorios que tocan las operaciones de
// tesorería (transferencias escriben tercero + movimiento).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		parties repository.PartyRepository,
		treasury repository.TreasuryRepository,
	) error) error
}
