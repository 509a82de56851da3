package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest registro directo de un movimiento de inventario.
// SerialNumbers es obligatorio (exactamente quantity distintos) cuando el
// producto exige serie y el movimiento es de entrada.
type RegisterMovementRequest struct {
	ProductID     string           `json:"product_id"`
	WarehouseID   string           `json:"warehouse_id"`
	Type          string           `json:"type"` // in | out
	Quantity      int64            `json:"quantity"`
	AppliedPrice  *decimal.Decimal `json:"applied_price"`
	SerialNumbers []string         `json:"serial_numbers"`
	Reason        string           `json:"reason"`
}

// StockEntryRequest entrada de stock (movimiento "in" con precio aplicado).
type StockEntryRequest struct {
	ProductID     string           `json:"product_id"`
	WarehouseID   string           `json:"warehouse_id"`
	Quantity      int64            `json:"quantity"`
	Price         *decimal.Decimal `json:"price"`
	SerialNumbers []string         `json:"serial_numbers"`
	Reason        string           `json:"reason"`
}

// ProductEntryRequest entrada de producto: además del movimiento "in",
// fija el precio del producto para el mes en curso.
type ProductEntryRequest struct {
	ProductID     string          `json:"product_id"`
	WarehouseID   string          `json:"warehouse_id"`
	Quantity      int64           `json:"quantity"`
	Price         decimal.Decimal `json:"price"`
	SerialNumbers []string        `json:"serial_numbers"`
	Reason        string          `json:"reason"`
}

// MovementResponse representación pública de un movimiento.
type MovementResponse struct {
	ID              string           `json:"id"`
	ProductID       string           `json:"product_id"`
	WarehouseID     string           `json:"warehouse_id"`
	Type            string           `json:"type"`
	Quantity        int64            `json:"quantity"`
	AppliedPrice    *decimal.Decimal `json:"applied_price,omitempty"`
	SerialNumbers   []string         `json:"serial_numbers,omitempty"`
	Reason          string           `json:"reason,omitempty"`
	TransferOrderID string           `json:"transfer_order_id,omitempty"`
	CreatedBy       string           `json:"created_by,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
}

// MovementListResponse listado de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// StockItemResponse saldo de un producto en una bodega con datos de contexto.
type StockItemResponse struct {
	ProductID     string `json:"product_id"`
	ProductName   string `json:"product_name"`
	SKU           string `json:"sku"`
	WarehouseID   string `json:"warehouse_id"`
	WarehouseName string `json:"warehouse_name"`
	Quantity      int64  `json:"quantity"`
	MinStock      int64  `json:"min_stock"`
	MaxStock      int64  `json:"max_stock"`
}

// InventoryListResponse listado de saldos.
type InventoryListResponse struct {
	Items []StockItemResponse `json:"items"`
}
