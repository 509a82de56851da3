package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	MovementTypeIN  = "in"  // entrada
	MovementTypeOUT = "out" // salida
)

// InventoryMovement representa una entrada del libro mayor de inventario (append-only).
// La suma de entradas menos salidas por (producto, bodega), con piso en cero,
// debe coincidir con Stock.Quantity para ese par.
type InventoryMovement struct {
	ID              string
	ProductID       string
	WarehouseID     string
	Type            string // in | out
	Quantity        int64  // siempre positivo
	AppliedPrice    *decimal.Decimal
	SerialNumbers   []string
	Reason          string
	TransferOrderID string // referencia inversa cuando lo generó una orden de traslado
	CreatedBy       string
	CreatedAt       time.Time
}
