package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/gestion-pyme/internal/domain"
	"github.com/jhoicas/gestion-pyme/internal/domain/entity"
	"github.com/jhoicas/gestion-pyme/internal/domain/repository"
)

var (
	_ repository.InvoiceRepository  = (*InvoiceRepo)(nil)
	_ repository.PurchaseRepository = (*PurchaseRepo)(nil)
)

// InvoiceRepo implementación del puerto InvoiceRepository sobre PostgreSQL
// (usable con pool o tx). Las líneas se guardan como jsonb en la fila.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persiste una factura de venta.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	items, err := json.Marshal(invoice.Items)
	if err != nil {
		return fmt.Errorf("marshal items: %w", err)
	}
	query := `
		INSERT INTO invoices (id, date, customer_code, customer_name, items, total, previous_balance, current_balance)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = r.q.Exec(context.Background(), query,
		invoice.ID, invoice.Date, invoice.CustomerCode, invoice.CustomerName,
		items, invoice.Total, invoice.PreviousBalance, invoice.CurrentBalance,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// GetByID obtiene una factura por id. Devuelve (nil, nil) si no existe.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	query := `
		SELECT id, date, customer_code, customer_name, items, total, previous_balance, current_balance
		FROM invoices WHERE id = $1`
	inv, err := scanInvoice(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return inv, nil
}

// Update reemplaza una factura existente.
func (r *InvoiceRepo) Update(invoice *entity.Invoice) error {
	items, err := json.Marshal(invoice.Items)
	if err != nil {
		return fmt.Errorf("marshal items: %w", err)
	}
	query := `
		UPDATE invoices SET date = $2, customer_code = $3, customer_name = $4, items = $5,
			total = $6, previous_balance = $7, current_balance = $8
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.Date, invoice.CustomerCode, invoice.CustomerName,
		items, invoice.Total, invoice.PreviousBalance, invoice.CurrentBalance,
	)
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una factura por id.
func (r *InvoiceRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista facturas por fecha descendente (a igual fecha, id descendente).
func (r *InvoiceRepo) List() ([]*entity.Invoice, error) {
	query := `
		SELECT id, date, customer_code, customer_name, items, total, previous_balance, current_balance
		FROM invoices ORDER BY date DESC, id DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

// DeleteAll vacía la tabla de facturas.
func (r *InvoiceRepo) DeleteAll() error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM invoices`); err != nil {
		return fmt.Errorf("delete all invoices: %w", err)
	}
	return nil
}

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var inv entity.Invoice
	var items []byte
	if err := row.Scan(&inv.ID, &inv.Date, &inv.CustomerCode, &inv.CustomerName,
		&items, &inv.Total, &inv.PreviousBalance, &inv.CurrentBalance); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &inv.Items); err != nil {
		return nil, fmt.Errorf("unmarshal items: %w", err)
	}
	return &inv, nil
}

// PurchaseRepo implementación del puerto PurchaseRepository sobre PostgreSQL
// (usable con pool o tx).
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

// Create persiste una factura de compra.
func (r *PurchaseRepo) Create(purchase *entity.Purchase) error {
	items, err := json.Marshal(purchase.Items)
	if err != nil {
		return fmt.Errorf("marshal items: %w", err)
	}
	query := `
		INSERT INTO purchases (id, date, supplier_code, supplier_name, items, total, previous_balance, current_balance)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = r.q.Exec(context.Background(), query,
		purchase.ID, purchase.Date, purchase.SupplierCode, purchase.SupplierName,
		items, purchase.Total, purchase.PreviousBalance, purchase.CurrentBalance,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert purchase: %w", err)
	}
	return nil
}

// GetByID obtiene una compra por id. Devuelve (nil, nil) si no existe.
func (r *PurchaseRepo) GetByID(id string) (*entity.Purchase, error) {
	query := `
		SELECT id, date, supplier_code, supplier_name, items, total, previous_balance, current_balance
		FROM purchases WHERE id = $1`
	p, err := scanPurchase(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase: %w", err)
	}
	return p, nil
}

// Update reemplaza una compra existente.
func (r *PurchaseRepo) Update(purchase *entity.Purchase) error {
	items, err := json.Marshal(purchase.Items)
	if err != nil {
		return fmt.Errorf("marshal items: %w", err)
	}
	query := `
		UPDATE purchases SET date = $2, supplier_code = $3, supplier_name = $4, items = $5,
			total = $6, previous_balance = $7, current_balance = $8
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		purchase.ID, purchase.Date, purchase.SupplierCode, purchase.SupplierName,
		items, purchase.Total, purchase.PreviousBalance, purchase.CurrentBalance,
	)
	if err != nil {
		return fmt.Errorf("update purchase: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una compra por id.
func (r *PurchaseRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM purchases WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete purchase: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista compras por fecha descendente (a igual fecha, id descendente).
func (r *PurchaseRepo) List() ([]*entity.Purchase, error) {
	query := `
		SELECT id, date, supplier_code, supplier_name, items, total, previous_balance, current_balance
		FROM purchases ORDER BY date DESC, id DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()
	var list []*entity.Purchase
	for rows.Next() {
		p, err := scanPurchase(rows)
		if err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func scanPurchase(row pgx.Row) (*entity.Purchase, error) {
	var p entity.Purchase
	var items []byte
	if err := row.Scan(&p.ID, &p.Date, &p.SupplierCode, &p.SupplierName,
		&items, &p.Total, &p.PreviousBalance, &p.CurrentBalance); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &p.Items); err != nil {
		return nil, fmt.Errorf("unmarshal items: %w", err)
	}
	return &p, nil
}
