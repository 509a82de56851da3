package transfer

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// TxRunner transacción para el flujo de órdenes de traslado. Creación y
// decisión corren con todos los repositorios atados a la misma tx: el
// consecutivo diario, la orden y los dos movimientos que emite la aprobación
// se confirman o revierten juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		orderRepo repository.TransferOrderRepository,
		counterRepo repository.TransferCounterRepository,
		movRepo repository.InventoryMovementRepository,
		stockRepo repository.StockRepository,
		serialRepo repository.ProductSerialRepository,
	) error) error
}

// Metrics contadores de decisiones sobre órdenes.
type Metrics interface {
	TransferDecided(status string)
}

// NopMetrics implementación vacía para tests y para correr sin métricas.
type NopMetrics struct{}

func (NopMetrics) TransferDecided(string) {}
