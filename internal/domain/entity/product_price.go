package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductPrice precio de un producto para un (año, mes) concreto.
// El precio vigente es la fila del mes actual; se conserva el histórico por mes.
type ProductPrice struct {
	ProductID string
	Year      int
	Month     int // 1..12
	Price     decimal.Decimal
	UpdatedAt time.Time
}
