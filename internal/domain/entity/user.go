package entity

import "time"

// Roles de cuenta válidos para User. El rol es texto libre heredado del sistema
// anterior; la clasificación de visibilidad la hace el paquete scope, no este campo.
const (
	RoleAdmin      = "ADMIN"
	RoleSuperAdmin = "SUPER ADMIN"
	RoleRRHH       = "JEFE_RRHH"
)

// User representa una cuenta de acceso al sistema. Cada cuenta apunta al registro
// de empleado del titular (EmployeeID), del que se toman cargo, sede y unidad.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // etiqueta libre: "ADMIN", "JEFE_RRHH", "SUPERVISOR", ...
	EmployeeID   string
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
