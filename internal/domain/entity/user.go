package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin   = "ADMIN"
	RoleManager = "MANAGER"
	RoleStaff   = "STAFF"
)

// Estados de cuenta.
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// IsValidRole indica si role es uno de los roles del sistema.
func IsValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleManager, RoleStaff:
		return true
	}
	return false
}

// User representa un usuario que opera el inventario.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // bcrypt hash
	Role         string // ADMIN, MANAGER, STAFF
	IsSuperuser  bool   // sin restricciones de rol
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
