package dto

import "time"

// CreateTransferOrderRequest solicitud de traslado entre bodegas.
type CreateTransferOrderRequest struct {
	ProductID              string `json:"product_id"`
	Quantity               int64  `json:"quantity"`
	SourceWarehouseID      string `json:"source_warehouse_id"`
	DestinationWarehouseID string `json:"destination_warehouse_id"`
	CostCenter             string `json:"cost_center"`
	Notes                  string `json:"notes"`
}

// SetTransferStatusRequest decisión sobre una orden pendiente.
type SetTransferStatusRequest struct {
	Status string `json:"status"` // approved | rejected
}

// TransferOrderResponse representación pública de una orden de traslado.
type TransferOrderResponse struct {
	ID                     string    `json:"id"`
	OrderNumber            string    `json:"order_number"`
	OrderDate              string    `json:"order_date"` // YYYY-MM-DD
	ProductID              string    `json:"product_id"`
	Quantity               int64     `json:"quantity"`
	SourceWarehouseID      string    `json:"source_warehouse_id"`
	DestinationWarehouseID string    `json:"destination_warehouse_id"`
	CostCenter             string    `json:"cost_center"`
	RequesterID            string    `json:"requester_id"`
	ProjectManagerID       string    `json:"project_manager_id,omitempty"`
	Status                 string    `json:"status"`
	Notes                  string    `json:"notes,omitempty"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// TransferOrderListResponse listado de órdenes.
type TransferOrderListResponse struct {
	Items []TransferOrderResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}
