package repository

import "github.com/jhoicas/gestion-pyme/internal/domain/entity"

// ProductRepository puerto de persistencia para Product.
// GetByCode devuelve (nil, nil) si el código no existe.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByCode(code string) (*entity.Product, error)
	Update(product *entity.Product) error
	Delete(code string) error
	List() ([]*entity.Product, error)
}
