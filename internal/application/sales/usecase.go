package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-pyme/internal/application/dto"
	"github.com/jhoicas/gestion-pyme/internal/domain"
	"github.com/jhoicas/gestion-pyme/internal/domain/codes"
	"github.com/jhoicas/gestion-pyme/internal/domain/entity"
	"github.com/jhoicas/gestion-pyme/internal/domain/ledger"
	"github.com/jhoicas/gestion-pyme/internal/domain/repository"
)

// UseCase orquesta las operaciones de venta: facturas y cobros. Cada operación
// carga snapshots, llama al motor de ledger y escribe los resultados por los
// puertos dentro del TxRunner.
type UseCase struct {
	txRunner    TxRunner
	invoiceRepo repository.InvoiceRepository
	partyRepo   repository.PartyRepository
	productRepo repository.ProductRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	invoiceRepo repository.InvoiceRepository,
	partyRepo repository.PartyRepository,
	productRepo repository.ProductRepository,
) *UseCase {
	return &UseCase{
		txRunner:    txRunner,
		invoiceRepo: invoiceRepo,
		partyRepo:   partyRepo,
		productRepo: productRepo,
	}
}

// buildItems valida las líneas y fija Total = Quantity * Price por línea.
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

// NextInvoiceID siguiente número de factura (N###).
func (uc *UseCase) NextInvoiceID(ctx context.Context) (string, error) {
	existing, err := uc.invoiceRepo.List()
	if err != nil {
		return "", err
	}
	ids := make([]string, 0, len(existing))
	for _, inv := range existing {
		ids = append(ids, inv.ID)
	}
	return codes.Next(entity.PrefixInvoice, ids), nil
}

// AddInvoice registra una venta a crédito: valida, descuenta stock por línea,
// mueve el saldo del cliente y guarda la factura con las instantáneas de saldo.
// Cliente con código desconocido se auto-aprovisiona con la deuda de la factura
// como saldo de apertura (sin línea de historial).
func (uc *UseCase) AddInvoice(ctx context.Context, in dto.CreateInvoiceRequest) (*entity.Invoice, error) {
	if in.CustomerCode == "" {
		return nil, domain.ErrInvalidInput
	}
	items, total, err := buildItems(in.Items)
	if err != nil {
		return nil, err
	}

	id := in.ID
	if id == "" {
		if id, err = uc.NextInvoiceID(ctx); err != nil {
			return nil, err
		}
	} else if existing, err := uc.invoiceRepo.GetByID(id); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrDuplicate
	}

	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}

	var invoice *entity.Invoice
	err = uc.txRunner.Run(ctx, func(
		parties repository.PartyRepository,
		products repository.ProductRepository,
		invoices repository.InvoiceRepository,
		_ repository.TreasuryRepository,
	) error {
		// Suficiencia de stock como precondición dura; el motor por sí solo
		// dejaría el producto en negativo.
		loaded := make(map[string]*entity.Product, len(items))
		for _, item := range items {
			product, err := products.GetByCode(item.ProductCode)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			if product.Quantity.LessThan(item.Quantity) {
				return domain.ErrInsufficientStock
			}
			loaded[item.ProductCode] = product
		}
		for _, item := range items {
			updated := ledger.Deduct(*loaded[item.ProductCode], item.Quantity)
			*loaded[item.ProductCode] = updated
			if err := products.Update(loaded[item.ProductCode]); err != nil {
				return err
			}
		}

		customer, err := parties.GetByCode(entity.KindCustomer, in.CustomerCode)
		if err != nil {
			return err
		}
		var prev, current decimal.Decimal
		if customer == nil {
			// Auto-aprovisionamiento: la deuda queda como saldo de apertura.
			fresh := entity.Party{
				Code:           in.CustomerCode,
				Kind:           entity.KindCustomer,
				Name:           in.CustomerName,
				OpeningBalance: total.Neg(),
				Balance:        total.Neg(),
			}
			if err := parties.Create(&fresh); err != nil {
				return err
			}
			prev, current = decimal.Zero, fresh.Balance
		} else {
			prev = customer.Balance
			updated, _ := ledger.ApplySale(*customer, id, total, date)
			current = updated.Balance
			if err := parties.Update(&updated); err != nil {
				return err
			}
		}

		invoice = &entity.Invoice{
			ID:              id,
			Date:            date,
			CustomerCode:    in.CustomerCode,
			CustomerName:    in.CustomerName,
			Items:           items,
			Total:           total,
			PreviousBalance: prev,
			CurrentBalance:  current,
		}
		return invoices.Create(invoice)
	})
	if err != nil {
		return nil, err
	}
	return invoice, nil
}

// UpdateInvoice edita una factura existente tomando la versión anterior como
// base de reversión: repone el stock de las líneas viejas, descuenta las nuevas
// y ajusta el saldo del cliente solo por el delta de deuda (una línea de
// historial). El registro se sobreescribe en sitio (mismo id).
func (uc *UseCase) UpdateInvoice(ctx context.Context, id string, in dto.UpdateInvoiceRequest) (*entity.Invoice, error) {
	old, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if old == nil {
		return nil, domain.ErrNotFound
	}
	if in.CustomerCode != "" && in.CustomerCode != old.CustomerCode {
		return nil, domain.ErrInvalidInput // la factura no cambia de cliente
	}
	items, total, err := buildItems(in.Items)
	if err != nil {
		return nil, err
	}
	date := in.Date
	if date.IsZero() {
		date = old.Date
	}
	name := in.CustomerName
	if name == "" {
		name = old.CustomerName
	}

	var invoice *entity.Invoice
	err = uc.txRunner.Run(ctx, func(
		parties repository.PartyRepository,
		products repository.ProductRepository,
		invoices repository.InvoiceRepository,
		_ repository.TreasuryRepository,
	) error {
		// Primero reponer TODAS las líneas viejas, luego descontar las nuevas;
		// la suficiencia se evalúa contra el estado ya repuesto.
		for _, item := range old.Items {
			product, err := products.GetByCode(item.ProductCode)
			if err != nil {
				return err
			}
			if product == nil {
				continue // producto borrado después de la factura original
			}
			restored := ledger.Restore(*product, item.Quantity)
			if err := products.Update(&restored); err != nil {
				return err
			}
		}
		for _, item := range items {
			product, err := products.GetByCode(item.ProductCode)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			if product.Quantity.LessThan(item.Quantity) {
				return domain.ErrInsufficientStock
			}
			deducted := ledger.Deduct(*product, item.Quantity)
			if err := products.Update(&deducted); err != nil {
				return err
			}
		}

		prev, current := old.PreviousBalance, old.CurrentBalance
		customer, err := parties.GetByCode(entity.KindCustomer, old.CustomerCode)
		if err != nil {
			return err
		}
		if customer != nil {
			prev = customer.Balance
			updated, _ := ledger.ApplyInvoiceEdit(*customer, id, old.Total, total, date)
			current = updated.Balance
			if err := parties.Update(&updated); err != nil {
				return err
			}
		}

		invoice = &entity.Invoice{
			ID:              id,
			Date:            date,
			CustomerCode:    old.CustomerCode,
			CustomerName:    name,
			Items:           items,
			Total:           total,
			PreviousBalance: prev,
			CurrentBalance:  current,
		}
		return invoices.Update(invoice)
	})
	if err != nil {
		return nil, err
	}
	return invoice, nil
}

// DeleteInvoice elimina solo el registro: no repone stock ni revierte el saldo
// del cliente (comportamiento documentado del sistema).
func (uc *UseCase) DeleteInvoice(ctx context.Context, id string) error {
	existing, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	return uc.invoiceRepo.Delete(id)
}

// ClearAllInvoices vacía la colección completa de facturas sin tocar saldos ni
// inventario. Irreversible.
func (uc *UseCase) ClearAllInvoices(ctx context.Context) error {
	return uc.invoiceRepo.DeleteAll()
}

// GetInvoice obtiene una factura por id.
func (uc *UseCase) GetInvoice(ctx context.Context, id string) (*entity.Invoice, error) {
	invoice, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	return invoice, nil
}

// ListInvoices lista facturas en orden de fecha descendente (contrato del puerto).
func (uc *UseCase) ListInvoices(ctx context.Context) ([]*entity.Invoice, error) {
	return uc.invoiceRepo.List()
}

// AddCollection registra un cobro: sube el saldo del cliente con una línea de
// historial y anexa un crédito en tesorería. Ambos asientos comparten la misma
// referencia de origen.
func (uc *UseCase) AddCollection(ctx context.Context, in dto.CollectionRequest) error {
	if in.CustomerCode == "" || !in.Amount.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	method := in.PaymentMethod
	if method == "" {
		method = entity.PaymentCash
	}
	if !entity.ValidPaymentMethod(method) {
		return domain.ErrInvalidInput
	}
	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}
	collectionID := uuid.New().String()

	return uc.txRunner.Run(ctx, func(
		parties repository.PartyRepository,
		_ repository.ProductRepository,
		_ repository.InvoiceRepository,
		treasury repository.TreasuryRepository,
	) error {
		customer, err := parties.GetByCode(entity.KindCustomer, in.CustomerCode)
		if err != nil {
			return err
		}
		if customer == nil {
			return domain.ErrNotFound
		}
		updated, _ := ledger.ApplyCollection(*customer, collectionID, in.Amount, date)
		if err := parties.Update(&updated); err != nil {
			return err
		}

		txs, err := treasury.List()
		if err != nil {
			return err
		}
		ids := make([]string, 0, len(txs))
		for _, tx := range txs {
			ids = append(ids, tx.ID)
		}
		return treasury.Create(&entity.TreasuryTransaction{
			ID:            codes.Next(entity.PrefixTreasury, ids),
			Date:          date,
			Credit:        in.Amount,
			PaymentMethod: method,
			Description:   fmt.Sprintf("Abono de cliente %s", in.CustomerCode),
			InvoiceNumber: in.InvoiceID,
			Source:        entity.SourceRef{Kind: entity.SourceCollection, ID: collectionID},
		})
	})
}
