package entity

import "time"

// Estados de una unidad serializada.
const (
	SerialStatusActive  = "active"
	SerialStatusSold    = "sold"
	SerialStatusDamaged = "damaged"
)

// ProductSerial una unidad física con número de serie.
// (ProductID, SerialNumber) es único; MovementID referencia la entrada que la creó.
type ProductSerial struct {
	ID           string
	ProductID    string
	SerialNumber string
	MovementID   string
	Status       string // active | sold | damaged
	CreatedAt    time.Time
}
