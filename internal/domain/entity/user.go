package entity

import "time"

// Roles válidos para User.
const (
	RoleUser              = "user"
	RoleAdmin             = "admin"
	RoleProjectManager    = "project_manager"
	RoleWarehouseOperator = "warehouse_operator"
)

// User representa un usuario del sistema.
// ManagedWarehouses solo aplica a project_manager.
type User struct {
	ID                string
	Username          string // único
	PasswordHash      string // bcrypt hash, nunca plano en dominio después de persistir
	Role              string // user, admin, project_manager, warehouse_operator
	CostCenter        string // opcional
	Permissions       []string
	ManagedWarehouses []string
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
