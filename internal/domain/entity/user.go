package entity

import "time"

// Role rol cerrado de un usuario. Se valida en el borde (DTO -> entidad),
// no con comparaciones de strings dispersas.
type Role string

// Roles válidos para User.
const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
)

// Valid indica si el rol es uno de los valores cerrados.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleManager
}

// User representa un usuario del sistema. Puede ser manager de cero o más Outlets.
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         Role
	CreatedAt    time.Time
}
