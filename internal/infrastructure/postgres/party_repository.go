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

var _ repository.PartyRepository = (*PartyRepo)(nil)

// PartyRepo implementación del puerto PartyRepository sobre PostgreSQL (usable con pool o tx).
// El historial se guarda como jsonb en la misma fila: el agregado completo viaja junto.
type PartyRepo struct {
	q Querier
}

// NewPartyRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPartyRepository(q Querier) *PartyRepo {
	return &PartyRepo{q: q}
}

// Create persiste un nuevo tercero.
func (r *PartyRepo) Create(party *entity.Party) error {
	history, err := json.Marshal(party.History)
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}
	query := `
		INSERT INTO parties (kind, code, name, opening_balance, balance, history, role, salary)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = r.q.Exec(context.Background(), query,
		party.Kind, party.Code, party.Name, party.OpeningBalance, party.Balance,
		history, party.Role, party.Salary,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert party: %w", err)
	}
	return nil
}

// GetByCode obtiene un tercero por tipo y código. Devuelve (nil, nil) si no existe.
func (r *PartyRepo) GetByCode(kind entity.PartyKind, code string) (*entity.Party, error) {
	query := `
		SELECT kind, code, name, opening_balance, balance, history, role, salary
		FROM parties WHERE kind = $1 AND code = $2`
	p, err := scanParty(r.q.QueryRow(context.Background(), query, kind, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get party: %w", err)
	}
	return p, nil
}

// Update actualiza un tercero existente (saldo e historial incluidos).
func (r *PartyRepo) Update(party *entity.Party) error {
	history, err := json.Marshal(party.History)
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}
	query := `
		UPDATE parties SET name = $3, opening_balance = $4, balance = $5, history = $6, role = $7, salary = $8
		WHERE kind = $1 AND code = $2`
	cmd, err := r.q.Exec(context.Background(), query,
		party.Kind, party.Code, party.Name, party.OpeningBalance, party.Balance,
		history, party.Role, party.Salary,
	)
	if err != nil {
		return fmt.Errorf("update party: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un tercero por tipo y código.
func (r *PartyRepo) Delete(kind entity.PartyKind, code string) error {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM parties WHERE kind = $1 AND code = $2`, kind, code)
	if err != nil {
		return fmt.Errorf("delete party: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByKind lista los terceros de un tipo ordenados por código.
func (r *PartyRepo) ListByKind(kind entity.PartyKind) ([]*entity.Party, error) {
	query := `
		SELECT kind, code, name, opening_balance, balance, history, role, salary
		FROM parties WHERE kind = $1 ORDER BY code`
	rows, err := r.q.Query(context.Background(), query, kind)
	if err != nil {
		return nil, fmt.Errorf("list parties: %w", err)
	}
	defer rows.Close()
	var list []*entity.Party
	for rows.Next() {
		p, err := scanParty(rows)
		if err != nil {
			return nil, fmt.Errorf("scan party: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func scanParty(row pgx.Row) (*entity.Party, error) {
	var p entity.Party
	var history []byte
	if err := row.Scan(&p.Kind, &p.Code, &p.Name, &p.OpeningBalance, &p.Balance,
		&history, &p.Role, &p.Salary); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(history, &p.History); err != nil {
		return nil, fmt.Errorf("unmarshal history: %w", err)
	}
	return &p, nil
}
