package dto

import "github.com/jhoicas/gestion-pyme/internal/domain/entity"

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse token JWT + usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse usuario sin hash de contraseña; Permissions ya son las efectivas
// (ADMIN implica todas).
type UserResponse struct {
	ID          string             `json:"id"`
	Username    string             `json:"username"`
	FullName    string             `json:"full_name"`
	Role        string             `json:"role"`
	Permissions entity.Permissions `json:"permissions"`
}
