package dto

import "github.com/jhoicas/gestion-pyme/internal/domain/entity"

// CreateUserRequest alta de usuario (solo admin).
type CreateUserRequest struct {
	Username    string             `json:"username"`
	Password    string             `json:"password"`
	FullName    string             `json:"full_name"`
	Role        string             `json:"role"`
	Permissions entity.Permissions `json:"permissions"`
}

// UpdateUserRequest edición de usuario; Password vacío conserva la contraseña.
type UpdateUserRequest struct {
	Password    string             `json:"password"`
	FullName    string             `json:"full_name"`
	Role        string             `json:"role"`
	Permissions entity.Permissions `json:"permissions"`
}
