package treasury

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

// UseCase orquesta los movimientos de caja: transferencias contra terceros,
// gastos, saldo de apertura y limpieza de tesorería.
type UseCase struct {
	txRunner     TxRunner
	treasuryRepo repository.TreasuryRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner TxRunner, treasuryRepo repository.TreasuryRepository) *UseCase {
	return &UseCase{txRunner: txRunner, treasuryRepo: treasuryRepo}
}

// nextID siguiente id de movimiento (T###) sobre el repositorio dado.
func nextID(treasury repository.TreasuryRepository) (string, error) {
	txs, err := treasury.List()
	if err != nil {
		return "", err
	}
	ids := make([]string, 0, len(txs))
	for _, tx := range txs {
		ids = append(ids, tx.ID)
	}
	return codes.Next(entity.PrefixTreasury, ids), nil
}

// AddTransfer registra una transferencia IN/OUT contra un tercero: una línea en
// su historial con el signo de la regla (IN suma, OUT resta, para los tres
// tipos) y un movimiento de tesorería (crédito si IN, débito si OUT).
func (uc *UseCase) AddTransfer(ctx context.Context, in dto.TransferRequest) error {
	kind := entity.PartyKind(in.Kind)
	dir := ledger.Direction(in.Direction)
	if !kind.Valid() || !dir.Valid() || in.Code == "" || !in.Amount.GreaterThan(decimal.Zero) {
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
	transferID := uuid.New().String()

	return uc.txRunner.Run(ctx, func(
		parties repository.PartyRepository,
		treasury repository.TreasuryRepository,
	) error {
		party, err := parties.GetByCode(kind, in.Code)
		if err != nil {
			return err
		}
		if party == nil {
			return domain.ErrNotFound
		}
		updated, _ := ledger.ApplyTransfer(*party, transferID, dir, in.Amount, date, in.Notes)
		if err := parties.Update(&updated); err != nil {
			return err
		}

		id, err := nextID(treasury)
		if err != nil {
			return err
		}
		tx := &entity.TreasuryTransaction{
			ID:            id,
			Date:          date,
			PaymentMethod: method,
			Description:   fmt.Sprintf("Transferencia %s %s %s", in.Direction, in.Kind, in.Code),
			Source:        entity.SourceRef{Kind: entity.SourceTransfer, ID: transferID},
		}
		if dir == ledger.DirectionIn {
			tx.Credit = in.Amount
		} else {
			tx.Debit = in.Amount
		}
		return treasury.Create(tx)
	})
}

// AddExpense registra un gasto: débito contra la caja, sin tercero.
func (uc *UseCase) AddExpense(ctx context.Context, in dto.ExpenseRequest) error {
	if in.Name == "" || !in.Amount.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}
	desc := "Gasto: " + in.Name
	if in.Notes != "" {
		desc += " - " + in.Notes
	}
	id, err := nextID(uc.treasuryRepo)
	if err != nil {
		return err
	}
	return uc.treasuryRepo.Create(&entity.TreasuryTransaction{
		ID:            id,
		Date:          date,
		Debit:         in.Amount,
		PaymentMethod: entity.PaymentCash, // los gastos salen siempre de caja
		Description:   desc,
		Source:        entity.SourceRef{Kind: entity.SourceExpense, ID: uuid.New().String()},
	})
}

// AddOpeningBalance siembra la caja con un crédito inicial, sin tercero.
func (uc *UseCase) AddOpeningBalance(ctx context.Context, in dto.OpeningBalanceRequest) error {
	if !in.Amount.GreaterThan(decimal.Zero) {
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
	desc := "Saldo de apertura"
	if in.Notes != "" {
		desc += ": " + in.Notes
	}
	id, err := nextID(uc.treasuryRepo)
	if err != nil {
		return err
	}
	return uc.treasuryRepo.Create(&entity.TreasuryTransaction{
		ID:            id,
		Date:          date,
		Credit:        in.Amount,
		PaymentMethod: method,
		Description:   desc,
		Source:        entity.SourceRef{Kind: entity.SourceOpening, ID: uuid.New().String()},
	})
}

// ClearTreasury elimina todos los movimientos de tesorería. Irreversible.
func (uc *UseCase) ClearTreasury(ctx context.Context) error {
	return uc.treasuryRepo.DeleteAll()
}

// List movimientos en orden de id ascendente (contrato del puerto).
func (uc *UseCase) List(ctx context.Context) ([]*entity.TreasuryTransaction, error) {
	return uc.treasuryRepo.List()
}

// Balance saldo derivado: suma(Credit) - suma(Debit).
func (uc *UseCase) Balance(ctx context.Context) (decimal.Decimal, error) {
	list, err := uc.treasuryRepo.List()
	if err != nil {
		return decimal.Zero, err
	}
	txs := make([]entity.TreasuryTransaction, 0, len(list))
	for _, tx := range list {
		txs = append(txs, *tx)
	}
	return ledger.TreasuryBalance(txs), nil
}
