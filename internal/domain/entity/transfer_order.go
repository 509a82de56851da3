package entity

import "time"

// Estados de una orden de traslado. Aprobada o rechazada es terminal.
const (
	TransferStatusPending  = "pending"
	TransferStatusApproved = "approved"
	TransferStatusRejected = "rejected"
)

// TransferOrder solicitud de traslado de stock de un producto entre dos bodegas,
// sujeta a aprobación. Al aprobarse emite dos movimientos: salida en origen y
// entrada en destino, ambos referenciando la orden.
type TransferOrder struct {
	ID                     string
	OrderNumber            string // formato OT-NNN, secuencial por día
	OrderDate              time.Time
	ProductID              string
	Quantity               int64
	SourceWarehouseID      string
	DestinationWarehouseID string
	CostCenter             string
	RequesterID            string
	ProjectManagerID       string // quien decide; vacío mientras está pendiente
	Status                 string // pending | approved | rejected
	Notes                  string
	CreatedAt              time.Time
	UpdatedAt              time.Time
}
