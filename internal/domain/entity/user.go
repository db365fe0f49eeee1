package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// Permissions banderas de acceso por módulo y por acción sensible.
type Permissions struct {
	Dashboard         bool `json:"dashboard"`
	Sales             bool `json:"sales"`
	Warehouse         bool `json:"warehouse"`
	Financial         bool `json:"financial"`
	Admin             bool `json:"admin"`
	CanDeleteLedgers  bool `json:"can_delete_ledgers"`
	CanEditWarehouse  bool `json:"can_edit_warehouse"`
	CanManageTreasury bool `json:"can_manage_treasury"`
	CanEditPurchases  bool `json:"can_edit_purchases"`
}

// AllPermissions conjunto con todas las banderas activas.
func AllPermissions() Permissions {
	return Permissions{
		Dashboard:         true,
		Sales:             true,
		Warehouse:         true,
		Financial:         true,
		Admin:             true,
		CanDeleteLedgers:  true,
		CanEditWarehouse:  true,
		CanManageTreasury: true,
		CanEditPurchases:  true,
	}
}

// User usuario del sistema.
type User struct {
	ID           string      `json:"id"`
	Username     string      `json:"username"`
	PasswordHash string      `json:"-"`
	FullName     string      `json:"full_name"`
	Role         string      `json:"role"` // ADMIN | USER
	Permissions  Permissions `json:"permissions"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// EffectivePermissions permisos vigentes del usuario: ADMIN implica todas las
// banderas sin importar lo almacenado; se calcula en cada lectura, nunca se
// parchea sobre el registro guardado.
func (u *User) EffectivePermissions() Permissions {
	if u.Role == RoleAdmin {
		return AllPermissions()
	}
	return u.Permissions
}
