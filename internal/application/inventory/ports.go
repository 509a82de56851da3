package inventory

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la inserción en el libro mayor,
// el alta de seriales y la actualización del saldo materializado sean atómicas.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.InventoryMovementRepository,
		stockRepo repository.StockRepository,
		serialRepo repository.ProductSerialRepository,
	) error) error
}

// Metrics contadores de operación del motor de inventario.
type Metrics interface {
	MovementApplied(movementType string)
}

// ReportGenerator genera el archivo de exportación del inventario (XLSX).
type ReportGenerator interface {
	InventoryReport(items []*repository.StockItem) ([]byte, error)
}

// NopMetrics implementación vacía para tests y para correr sin métricas.
type NopMetrics struct{}

func (NopMetrics) MovementApplied(string) {}
