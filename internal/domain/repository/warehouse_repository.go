package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// WarehouseRepository define el puerto de persistencia para Warehouse (DIP).
type WarehouseRepository interface {
	Create(warehouse *entity.Warehouse) error
	GetByID(id string) (*entity.Warehouse, error)
	// GetMainByCostCenter devuelve la bodega principal del centro de costo, o nil.
	GetMainByCostCenter(costCenter string) (*entity.Warehouse, error)
	ListByCostCenter(costCenter string) ([]*entity.Warehouse, error)
	Update(warehouse *entity.Warehouse) error
	SoftDelete(id string) error
	List(limit, offset int) ([]*entity.Warehouse, error)
}
