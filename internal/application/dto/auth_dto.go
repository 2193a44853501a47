package dto

import "time"

// RegisterRequest entrada para registro: username, password y rol inicial.
type RegisterRequest struct {
	Username    string `json:"username" validate:"required,max=50"`
	Password    string `json:"password" validate:"required,min=8"`
	DisplayName string `json:"display_name" validate:"omitempty,max=100"`
	RoleID      int    `json:"role_id" validate:"required,oneof=1 2 3"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID          int64     `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	RoleID      int       `json:"role_id"`
	RoleName    string    `json:"role_name"`
	CreatedAt   time.Time `json:"created_at"`
}

// LoginResponse salida con token JWT firmado (expira en una hora).
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UpdateRoleRequest entrada para cambiar el rol de un usuario (solo Administrador).
type UpdateRoleRequest struct {
	RoleID int `json:"role_id" validate:"required,oneof=1 2 3"`
}
