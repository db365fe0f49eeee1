package usecase

import (
	"github.com/jhoicas/gestion-pyme/internal/application/dto"
	"github.com/jhoicas/gestion-pyme/internal/domain"
	"github.com/jhoicas/gestion-pyme/internal/domain/entity"
	"github.com/jhoicas/gestion-pyme/internal/domain/repository"
	"github.com/jhoicas/gestion-pyme/pkg/textutil"
)

// ProductUseCase reglas de negocio para productos. Las compras y ventas mueven
// Quantity/AvgCost por el motor de ledger; aquí solo la edición manual.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create alta manual de producto.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*entity.Product, error) {
	if in.Code == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if existing, err := uc.repo.GetByCode(in.Code); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrDuplicate
	}
	product := &entity.Product{
		Code:     in.Code,
		Name:     in.Name,
		Quantity: in.Quantity,
		AvgCost:  in.AvgCost,
		Price:    in.Price,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Get obtiene un producto por código.
func (uc *ProductUseCase) Get(code string) (*entity.Product, error) {
	product, err := uc.repo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

// List lista productos; el filtro de nombre es insensible a mayúsculas y acentos.
func (uc *ProductUseCase) List(nameFilter string) ([]*entity.Product, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	if nameFilter == "" {
		return list, nil
	}
	needle := textutil.Fold(nameFilter)
	filtered := make([]*entity.Product, 0, len(list))
	for _, p := range list {
		if textutil.Contains(p.Name, needle) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// Update edición manual de producto (nombre, stock, costo, precio).
func (uc *ProductUseCase) Update(code string, in dto.UpdateProductRequest) (*entity.Product, error) {
	product, err := uc.repo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		product.Name = in.Name
	}
	product.Quantity = in.Quantity
	product.AvgCost = in.AvgCost
	product.Price = in.Price
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete elimina el producto; las facturas que lo referencian quedan intactas.
func (uc *ProductUseCase) Delete(code string) error {
	product, err := uc.repo.GetByCode(code)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(code)
}
