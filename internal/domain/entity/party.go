package entity

import "github.com/shopspring/decimal"

// PartyKind clasifica la cuenta corriente de un tercero.
type PartyKind string

const (
	KindCustomer PartyKind = "customer"
	KindSupplier PartyKind = "supplier"
	KindEmployee PartyKind = "employee"
)

// Prefijos de código por tipo de tercero.
const (
	PrefixCustomer = "C"
	PrefixSupplier = "S"
	PrefixEmployee = "E"
)

// CodePrefix devuelve el prefijo de código secuencial del tipo.
func (k PartyKind) CodePrefix() string {
	switch k {
	case KindSupplier:
		return PrefixSupplier
	case KindEmployee:
		return PrefixEmployee
	default:
		return PrefixCustomer
	}
}

// Valid indica si el tipo es uno de los tres soportados.
func (k PartyKind) Valid() bool {
	return k == KindCustomer || k == KindSupplier || k == KindEmployee
}

// Party cuenta corriente de un tercero (cliente, proveedor o empleado).
//
// Convención de signos del saldo:
//   - cliente:   negativo = nos debe; positivo = le debemos.
//   - proveedor: positivo = le debemos; negativo = nos debe.
//   - empleado:  negativo = le debemos (salario pendiente); positivo = anticipo a su cargo.
//
// Invariante: Balance == OpeningBalance + suma de History[i].Amount, en todo momento.
// El saldo de apertura se fija al crear y NO es una línea del historial.
type Party struct {
	Code           string          `json:"code"`
	Kind           PartyKind       `json:"kind"`
	Name           string          `json:"name"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	Balance        decimal.Decimal `json:"balance"`
	History        []HistoryEntry  `json:"history"`

	// Solo empleados; informativos, no participan en el cálculo del saldo.
	Role   string          `json:"role,omitempty"`
	Salary decimal.Decimal `json:"salary,omitempty"`
}
