package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// MovementFilter filtros para listar movimientos.
type MovementFilter struct {
	ProductID       string
	WarehouseID     string
	Type            string
	TransferOrderID string
	Limit           int
	Offset          int
}

// InventoryMovementRepository puerto del libro mayor de inventario (append-only).
type InventoryMovementRepository interface {
	Create(movement *entity.InventoryMovement) error
	GetByID(id string) (*entity.InventoryMovement, error)
	List(filter MovementFilter) ([]*entity.InventoryMovement, error)
}
