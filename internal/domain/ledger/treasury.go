package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-pyme/internal/domain/entity"
)

// TreasuryBalance saldo de tesorería derivado: suma(Credit) - suma(Debit) sobre
// todos los movimientos, independiente del orden de inserción. Nunca se
// materializa como saldo acumulado por fila.
func TreasuryBalance(txs []entity.TreasuryTransaction) decimal.Decimal {
	balance := decimal.Zero
	for _, tx := range txs {
		balance = balance.Add(tx.Credit).Sub(tx.Debit)
	}
	return balance
}
