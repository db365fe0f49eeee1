package repository

import "github.com/jhoicas/gestion-pyme/internal/domain/entity"

// InvoiceRepository puerto de persistencia para facturas de venta.
// List ordena por fecha descendente (la UI depende de este contrato).
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	GetByID(id string) (*entity.Invoice, error)
	Update(invoice *entity.Invoice) error
	Delete(id string) error
	List() ([]*entity.Invoice, error)
	DeleteAll() error
}

// PurchaseRepository puerto de persistencia para facturas de compra.
// List ordena por fecha descendente.
type PurchaseRepository interface {
	Create(purchase *entity.Purchase) error
	GetByID(id string) (*entity.Purchase, error)
	Update(purchase *entity.Purchase) error
	Delete(id string) error
	List() ([]*entity.Purchase, error)
}
