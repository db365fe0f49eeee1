package repository

import "github.com/jhoicas/gestion-pyme/internal/domain/entity"

// TreasuryRepository puerto de persistencia para movimientos de tesorería.
// List ordena por id ascendente (la UI depende de este contrato).
type TreasuryRepository interface {
	Create(tx *entity.TreasuryTransaction) error
	List() ([]*entity.TreasuryTransaction, error)
	DeleteAll() error
}
