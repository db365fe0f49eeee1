package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate crea las tablas si no existen. El modelo es semi-documental: los
// agregados (historial del tercero, ítems de factura) viven como jsonb dentro
// de la fila del documento, igual que en el backend local.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS parties (
			kind            TEXT    NOT NULL,
			code            TEXT    NOT NULL,
			name            TEXT    NOT NULL,
			opening_balance NUMERIC NOT NULL DEFAULT 0,
			balance         NUMERIC NOT NULL DEFAULT 0,
			history         JSONB   NOT NULL DEFAULT '[]',
			role            TEXT    NOT NULL DEFAULT '',
			salary          NUMERIC NOT NULL DEFAULT 0,
			PRIMARY KEY (kind, code)
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			code     TEXT PRIMARY KEY,
			name     TEXT    NOT NULL,
			quantity NUMERIC NOT NULL DEFAULT 0,
			avg_cost NUMERIC NOT NULL DEFAULT 0,
			price    NUMERIC NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS invoices (
			id               TEXT PRIMARY KEY,
			date             TIMESTAMPTZ NOT NULL,
			customer_code    TEXT    NOT NULL,
			customer_name    TEXT    NOT NULL,
			items            JSONB   NOT NULL DEFAULT '[]',
			total            NUMERIC NOT NULL DEFAULT 0,
			previous_balance NUMERIC NOT NULL DEFAULT 0,
			current_balance  NUMERIC NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS purchases (
			id               TEXT PRIMARY KEY,
			date             TIMESTAMPTZ NOT NULL,
			supplier_code    TEXT    NOT NULL,
			supplier_name    TEXT    NOT NULL,
			items            JSONB   NOT NULL DEFAULT '[]',
			total            NUMERIC NOT NULL DEFAULT 0,
			previous_balance NUMERIC NOT NULL DEFAULT 0,
			current_balance  NUMERIC NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS treasury_transactions (
			id             TEXT PRIMARY KEY,
			date           TIMESTAMPTZ NOT NULL,
			credit         NUMERIC NOT NULL DEFAULT 0,
			debit          NUMERIC NOT NULL DEFAULT 0,
			payment_method TEXT    NOT NULL,
			description    TEXT    NOT NULL DEFAULT '',
			invoice_number TEXT    NOT NULL DEFAULT '',
			source         JSONB   NOT NULL DEFAULT '{}'
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			id            TEXT PRIMARY KEY,
			username      TEXT    NOT NULL UNIQUE,
			password_hash TEXT    NOT NULL,
			full_name     TEXT    NOT NULL DEFAULT '',
			role          TEXT    NOT NULL DEFAULT 'USER',
			permissions   JSONB   NOT NULL DEFAULT '{}',
			created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS settings (
			key   TEXT PRIMARY KEY,
			value BYTEA NOT NULL
		)`,
	}
	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
