package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/gestion-pyme/internal/domain"
	"github.com/jhoicas/gestion-pyme/internal/domain/entity"
	"github.com/jhoicas/gestion-pyme/internal/domain/repository"
)

var _ repository.TreasuryRepository = (*TreasuryRepo)(nil)

// TreasuryRepo implementación del puerto TreasuryRepository sobre PostgreSQL
// (usable con pool o tx).
type TreasuryRepo struct {
	q Querier
}

// NewTreasuryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTreasuryRepository(q Querier) *TreasuryRepo {
	return &TreasuryRepo{q: q}
}

// Create persiste un movimiento de tesorería.
func (r *TreasuryRepo) Create(tx *entity.TreasuryTransaction) error {
	source, err := json.Marshal(tx.Source)
	if err != nil {
		return fmt.Errorf("marshal source: %w", err)
	}
	query := `
		INSERT INTO treasury_transactions (id, date, credit, debit, payment_method, description, invoice_number, source)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = r.q.Exec(context.Background(), query,
		tx.ID, tx.Date, tx.Credit, tx.Debit, tx.PaymentMethod,
		tx.Description, tx.InvoiceNumber, source,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert treasury transaction: %w", err)
	}
	return nil
}

// List lista los movimientos por id ascendente.
func (r *TreasuryRepo) List() ([]*entity.TreasuryTransaction, error) {
	query := `
		SELECT id, date, credit, debit, payment_method, description, invoice_number, source
		FROM treasury_transactions ORDER BY id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list treasury transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.TreasuryTransaction
	for rows.Next() {
		var tx entity.TreasuryTransaction
		var source []byte
		if err := rows.Scan(&tx.ID, &tx.Date, &tx.Credit, &tx.Debit, &tx.PaymentMethod,
			&tx.Description, &tx.InvoiceNumber, &source); err != nil {
			return nil, fmt.Errorf("scan treasury transaction: %w", err)
		}
		if err := json.Unmarshal(source, &tx.Source); err != nil {
			return nil, fmt.Errorf("unmarshal source: %w", err)
		}
		list = append(list, &tx)
	}
	return list, rows.Err()
}

// DeleteAll vacía la tabla de movimientos.
func (r *TreasuryRepo) DeleteAll() error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM treasury_transactions`); err != nil {
		return fmt.Errorf("delete all treasury transactions: %w", err)
	}
	return nil
}
