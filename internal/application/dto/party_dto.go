package dto

import "github.com/shopspring/decimal"

// CreatePartyRequest alta de cliente/proveedor/empleado. Code vacío = asignar el
// siguiente código de la colección. OpeningBalance fija el saldo inicial y no
// genera línea de historial.
type CreatePartyRequest struct {
	Code           string          `json:"code"`
	Name           string          `json:"name"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`

	// Solo empleados.
	Role   string          `json:"role"`
	Salary decimal.Decimal `json:"salary"`
}

// UpdatePartyRequest edición de un tercero. NewCode distinto de vacío renombra
// (re-clave): se borra el código anterior y se escribe el nuevo conservando
// saldo e historial.
type UpdatePartyRequest struct {
	NewCode string          `json:"new_code"`
	Name    string          `json:"name"`
	Role    string          `json:"role"`
	Salary  decimal.Decimal `json:"salary"`
}
