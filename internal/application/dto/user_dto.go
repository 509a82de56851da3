package dto

import "time"

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse token + usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// CreateUserRequest alta de usuario (solo admin).
type CreateUserRequest struct {
	Username          string   `json:"username"`
	Password          string   `json:"password"`
	Role              string   `json:"role"`
	CostCenter        string   `json:"cost_center"`
	Permissions       []string `json:"permissions"`
	ManagedWarehouses []string `json:"managed_warehouses"`
}

// UpdateUserRequest actualización parcial de usuario.
type UpdateUserRequest struct {
	Password          *string   `json:"password"`
	Role              *string   `json:"role"`
	CostCenter        *string   `json:"cost_center"`
	ManagedWarehouses *[]string `json:"managed_warehouses"`
}

// SetPermissionsRequest reemplaza la lista de permisos del usuario.
type SetPermissionsRequest struct {
	Permissions []string `json:"permissions"`
}

// UserResponse representación pública de un usuario (sin hash).
type UserResponse struct {
	ID                string    `json:"id"`
	Username          string    `json:"username"`
	Role              string    `json:"role"`
	CostCenter        string    `json:"cost_center,omitempty"`
	Permissions       []string  `json:"permissions,omitempty"`
	ManagedWarehouses []string  `json:"managed_warehouses,omitempty"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// UserListResponse listado paginado de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
