package entity

import "time"

// User representa un usuario del sistema.
type User struct {
	ID           int64
	RoleID       Role
	Username     string // único, máx 50
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	DisplayName  string // máx 100
	CreatedAt    time.Time
}
