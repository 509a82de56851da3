package entity

import "time"

// Tipos de bodega.
const (
	WarehouseTypeMain = "main"
	WarehouseTypeSub  = "sub"
)

// Subtipos fijos de bodega secundaria; se crean juntos al aprovisionar un centro de costo.
const (
	SubWarehouseUM2        = "um2"
	SubWarehousePlataforma = "plataforma"
	SubWarehousePEM        = "pem"
	SubWarehouseIntegrador = "integrador"
)

// SubWarehouseTypes subtipos en el orden de creación.
var SubWarehouseTypes = []string{
	SubWarehouseUM2,
	SubWarehousePlataforma,
	SubWarehousePEM,
	SubWarehouseIntegrador,
}

// Warehouse representa una bodega donde se almacena inventario.
// Cada centro de costo tiene exactamente una bodega principal; las secundarias
// apuntan a ella vía ParentWarehouseID.
type Warehouse struct {
	ID                string
	Name              string
	CostCenter        string
	WarehouseType     string // main | sub
	SubWarehouseType  string // solo cuando WarehouseType == sub
	ParentWarehouseID string // bodega principal dueña (solo sub)
	Location          string
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
