package repository

import "github.com/jhoicas/gestion-pyme/internal/domain/entity"

// PartyRepository puerto de persistencia para las cuentas de terceros
// (clientes, proveedores y empleados, parametrizado por tipo).
// GetByCode devuelve (nil, nil) si el código no existe.
type PartyRepository interface {
	Create(party *entity.Party) error
	GetByCode(kind entity.PartyKind, code string) (*entity.Party, error)
	Update(party *entity.Party) error
	Delete(kind entity.PartyKind, code string) error
	ListByKind(kind entity.PartyKind) ([]*entity.Party, error)
}
