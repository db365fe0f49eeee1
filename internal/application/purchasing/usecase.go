package purchasing

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-pyme/internal/application/dto"
	"github.com/jhoicas/gestion-pyme/internal/domain"
	"github.com/jhoicas/gestion-pyme/internal/domain/codes"
	"github.com/jhoicas/gestion-pyme/internal/domain/entity"
	"github.com/jhoicas/gestion-pyme/internal/domain/ledger"
	"github.com/jhoicas/gestion-pyme/internal/domain/repository"
)

// UseCase orquesta las compras a proveedor: entrada de stock con recálculo del
// costo promedio ponderado y movimiento del saldo del proveedor.
type UseCase struct {
	txRunner     TxRunner
	purchaseRepo repository.PurchaseRepository
	partyRepo    repository.PartyRepository
	productRepo  repository.ProductRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	purchaseRepo repository.PurchaseRepository,
	partyRepo repository.PartyRepository,
	productRepo repository.ProductRepository,
) *UseCase {
	return &UseCase{
		txRunner:     txRunner,
		purchaseRepo: purchaseRepo,
		partyRepo:    partyRepo,
		productRepo:  productRepo,
	}
}

func buildItems(in []dto.LineItemRequest) ([]entity.LineItem, decimal.Decimal, error) {
	if len(in) == 0 {
		return nil, decimal.Zero, domain.ErrInvalidInput
	}
	items := make([]entity.LineItem, 0, len(in))
	total := decimal.Zero
	for _, line := range in {
		if line.ProductCode == "" || !line.Quantity.GreaterThan(decimal.Zero) || line.Price.LessThan(decimal.Zero) {
			return nil, decimal.Zero, domain.ErrInvalidInput
		}
		lineTotal := line.Quantity.Mul(line.Price)
		items = append(items, entity.LineItem{
			ProductCode: line.ProductCode,
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			Price:       line.Price,
			Total:       lineTotal,
		})
		total = total.Add(lineTotal)
	}
	return items, total, nil
}

// NextPurchaseID siguiente número de compra (R###).
func (uc *UseCase) NextPurchaseID(ctx context.Context) (string, error) {
	existing, err := uc.purchaseRepo.List()
	if err != nil {
		return "", err
	}
	ids := make([]string, 0, len(existing))
	for _, p := range existing {
		ids = append(ids, p.ID)
	}
	return codes.Next(entity.PrefixPurchase, ids), nil
}

// receiveLine aplica una línea de compra al inventario: producto existente suma
// stock y recalcula costo promedio; código desconocido crea el producto con
// precio = costo * 1.2.
func receiveLine(products repository.ProductRepository, item entity.LineItem) error {
	product, err := products.GetByCode(item.ProductCode)
	if err != nil {
		return err
	}
	if product == nil {
		fresh := ledger.NewProductFromLine(item.ProductCode, item.ProductName, item.Quantity, item.Price)
		return products.Create(&fresh)
	}
	received := ledger.Receive(*product, item.Quantity, item.Price)
	return products.Update(&received)
}

// AddPurchase registra una compra: entrada de inventario por línea y saldo del
// proveedor +total. Un código de proveedor no registrado deja el inventario y el
// documento igual, pero no crea asiento de ledger (sin auto-aprovisionamiento).
func (uc *UseCase) AddPurchase(ctx context.Context, in dto.CreatePurchaseRequest) (*entity.Purchase, error) {
	if in.SupplierCode == "" {
		return nil, domain.ErrInvalidInput
	}
	items, total, err := buildItems(in.Items)
	if err != nil {
		return nil, err
	}

	id := in.ID
	if id == "" {
		if id, err = uc.NextPurchaseID(ctx); err != nil {
			return nil, err
		}
	} else if existing, err := uc.purchaseRepo.GetByID(id); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrDuplicate
	}

	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}

	var purchase *entity.Purchase
	err = uc.txRunner.Run(ctx, func(
		parties repository.PartyRepository,
		products repository.ProductRepository,
		purchases repository.PurchaseRepository,
	) error {
		for _, item := range items {
			if err := receiveLine(products, item); err != nil {
				return err
			}
		}

		var prev, current decimal.Decimal
		supplier, err := parties.GetByCode(entity.KindSupplier, in.SupplierCode)
		if err != nil {
			return err
		}
		if supplier != nil {
			prev = supplier.Balance
			updated, _ := ledger.ApplyPurchase(*supplier, id, total, date)
			current = updated.Balance
			if err := parties.Update(&updated); err != nil {
				return err
			}
		}

		purchase = &entity.Purchase{
			ID:              id,
			Date:            date,
			SupplierCode:    in.SupplierCode,
			SupplierName:    in.SupplierName,
			Items:           items,
			Total:           total,
			PreviousBalance: prev,
			CurrentBalance:  current,
		}
		return purchases.Create(purchase)
	})
	if err != nil {
		return nil, err
	}
	return purchase, nil
}

// UpdatePurchase edita una compra: primero revierte el efecto de TODAS las
// líneas viejas sobre el inventario, luego aplica TODAS las nuevas con la
// fórmula de entrada (el orden importa). El saldo del proveedor se ajusta solo
// por el delta (totalNuevo - totalAnterior) en una línea de historial.
func (uc *UseCase) UpdatePurchase(ctx context.Context, id string, in dto.UpdatePurchaseRequest) (*entity.Purchase, error) {
	old, err := uc.purchaseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if old == nil {
		return nil, domain.ErrNotFound
	}
	if in.SupplierCode != "" && in.SupplierCode != old.SupplierCode {
		return nil, domain.ErrInvalidInput // la compra no cambia de proveedor
	}
	items, total, err := buildItems(in.Items)
	if err != nil {
		return nil, err
	}
	date := in.Date
	if date.IsZero() {
		date = old.Date
	}
	name := in.SupplierName
	if name == "" {
		name = old.SupplierName
	}

	var purchase *entity.Purchase
	err = uc.txRunner.Run(ctx, func(
		parties repository.PartyRepository,
		products repository.ProductRepository,
		purchases repository.PurchaseRepository,
	) error {
		for _, item := range old.Items {
			product, err := products.GetByCode(item.ProductCode)
			if err != nil {
				return err
			}
			if product == nil {
				continue // producto borrado después de la compra original
			}
			reverted := ledger.RevertReceive(*product, item.Quantity, item.Price)
			if err := products.Update(&reverted); err != nil {
				return err
			}
		}
		for _, item := range items {
			if err := receiveLine(products, item); err != nil {
				return err
			}
		}

		prev, current := old.PreviousBalance, old.CurrentBalance
		supplier, err := parties.GetByCode(entity.KindSupplier, old.SupplierCode)
		if err != nil {
			return err
		}
		if supplier != nil {
			prev = supplier.Balance
			updated, _ := ledger.ApplyPurchaseEdit(*supplier, id, old.Total, total, date)
			current = updated.Balance
			if err := parties.Update(&updated); err != nil {
				return err
			}
		}

		purchase = &entity.Purchase{
			ID:              id,
			Date:            date,
			SupplierCode:    old.SupplierCode,
			SupplierName:    name,
			Items:           items,
			Total:           total,
			PreviousBalance: prev,
			CurrentBalance:  current,
		}
		return purchases.Update(purchase)
	})
	if err != nil {
		return nil, err
	}
	return purchase, nil
}

// DeletePurchase elimina solo el registro: no revierte inventario ni saldo del
// proveedor (comportamiento documentado del sistema).
func (uc *UseCase) DeletePurchase(ctx context.Context, id string) error {
	existing, err := uc.purchaseRepo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	return uc.purchaseRepo.Delete(id)
}

// GetPurchase obtiene una compra por id.
func (uc *UseCase) GetPurchase(ctx context.Context, id string) (*entity.Purchase, error) {
	purchase, err := uc.purchaseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, domain.ErrNotFound
	}
	return purchase, nil
}

// ListPurchases lista compras en orden de fecha descendente.
func (uc *UseCase) ListPurchases(ctx context.Context) ([]*entity.Purchase, error) {
	return uc.purchaseRepo.List()
}
