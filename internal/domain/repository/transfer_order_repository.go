package repository

import (
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// TransferOrderRepository puerto de persistencia para órdenes de traslado.
type TransferOrderRepository interface {
	Create(order *entity.TransferOrder) error
	GetByID(id string) (*entity.TransferOrder, error)
	// GetByIDForUpdate bloquea la fila de la orden (SELECT FOR UPDATE) para
	// decidirla exactamente una vez. Solo dentro de una transacción.
	GetByIDForUpdate(id string) (*entity.TransferOrder, error)
	Update(order *entity.TransferOrder) error
	List(status string, limit, offset int) ([]*entity.TransferOrder, error)
}

// TransferCounterRepository consecutivo diario de órdenes de traslado.
// Reemplaza el conteo por escaneo de filas: el número sale de un contador
// por día actualizado de forma atómica (upsert con RETURNING).
type TransferCounterRepository interface {
	NextNumber(day time.Time) (int, error)
}
