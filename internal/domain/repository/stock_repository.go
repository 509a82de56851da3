package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// StockItem fila de inventario con los datos de producto y bodega que
// acompañan las consultas de saldo (listados, stock bajo, export).
type StockItem struct {
	ProductID     string
	ProductName   string
	SKU           string
	WarehouseID   string
	WarehouseName string
	Quantity      int64
	MinStock      int64
	MaxStock      int64
}

// StockRepository puerto del saldo materializado por (producto, bodega).
type StockRepository interface {
	// Get devuelve el saldo actual; cero si no existe fila.
	Get(productID, warehouseID string) (*entity.Stock, error)
	// GetForUpdate obtiene el saldo y bloquea la fila (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción.
	GetForUpdate(productID, warehouseID string) (*entity.Stock, error)
	Upsert(stock *entity.Stock) error
	ListAll() ([]*StockItem, error)
	ListByWarehouse(warehouseID string) ([]*StockItem, error)
	ListByProduct(productID string) ([]*StockItem, error)
	// LowStock pares (producto, bodega) con saldo <= min_stock del producto.
	LowStock() ([]*StockItem, error)
}
