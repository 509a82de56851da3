package dto

import "time"

// CreateWarehouseRequest alta manual de bodega (las de un centro de costo
// nuevo se crean por el bootstrap de /cost-centers).
type CreateWarehouseRequest struct {
	Name              string `json:"name"`
	CostCenter        string `json:"cost_center"`
	WarehouseType     string `json:"warehouse_type"`
	SubWarehouseType  string `json:"sub_warehouse_type"`
	ParentWarehouseID string `json:"parent_warehouse_id"`
	Location          string `json:"location"`
}

// UpdateWarehouseRequest actualización parcial de bodega.
type UpdateWarehouseRequest struct {
	Name     *string `json:"name"`
	Location *string `json:"location"`
}

// WarehouseResponse representación pública de una bodega.
type WarehouseResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	CostCenter        string    `json:"cost_center"`
	WarehouseType     string    `json:"warehouse_type"`
	SubWarehouseType  string    `json:"sub_warehouse_type,omitempty"`
	ParentWarehouseID string    `json:"parent_warehouse_id,omitempty"`
	Location          string    `json:"location,omitempty"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// WarehouseListResponse listado paginado de bodegas.
type WarehouseListResponse struct {
	Items []WarehouseResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}

// CreateCostCenterRequest aprovisionamiento de un centro de costo:
// crea la bodega principal y las cuatro secundarias fijas.
type CreateCostCenterRequest struct {
	CostCenter string `json:"cost_center"`
	Location   string `json:"location"`
}

// CostCenterResponse resultado del bootstrap: las bodegas del centro de costo.
type CostCenterResponse struct {
	CostCenter string              `json:"cost_center"`
	Warehouses []WarehouseResponse `json:"warehouses"`
}
