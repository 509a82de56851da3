package entity

import "time"

// Stock representa el saldo actual de un producto en una bodega (vista materializada).
// Se recalcula dentro de la misma transacción que inserta el movimiento; nunca baja de cero.
type Stock struct {
	ProductID   string
	WarehouseID string
	Quantity    int64
	UpdatedAt   time.Time
}
