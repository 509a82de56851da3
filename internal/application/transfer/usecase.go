package transfer

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/ledger"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	domtransfer "github.com/jhoicas/almacen-api/internal/domain/transfer"
)

// UseCase flujo de órdenes de traslado: pending -> approved|rejected (terminal).
// La aprobación emite la salida en origen y la entrada en destino dentro de la
// misma transacción que decide la orden.
type UseCase struct {
	txRunner      TxRunner
	orderRepo     repository.TransferOrderRepository
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	stockRepo     repository.StockRepository
	metrics       Metrics
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	orderRepo repository.TransferOrderRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	stockRepo repository.StockRepository,
	metrics Metrics,
) *UseCase {
	if metrics == nil {
		metrics = NopMetrics{}
	}
	return &UseCase{
		txRunner:      txRunner,
		orderRepo:     orderRepo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		stockRepo:     stockRepo,
		metrics:       metrics,
	}
}

// CreateInput solicitud de traslado.
type CreateInput struct {
	ProductID              string
	Quantity               int64
	SourceWarehouseID      string
	DestinationWarehouseID string
	CostCenter             string
	RequesterID            string
	Notes                  string
}

// Create valida la solicitud, asigna el consecutivo diario OT-NNN desde el
// contador atómico y persiste la orden en estado pending.
func (uc *UseCase) Create(ctx context.Context, input CreateInput) (*entity.TransferOrder, error) {
	if input.ProductID == "" || input.SourceWarehouseID == "" || input.DestinationWarehouseID == "" {
		return nil, domain.ErrInvalidInput
	}
	if input.Quantity <= 0 || input.SourceWarehouseID == input.DestinationWarehouseID {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive {
		return nil, domain.ErrNotFound
	}
	source, err := uc.warehouseRepo.GetByID(input.SourceWarehouseID)
	if err != nil {
		return nil, err
	}
	dest, err := uc.warehouseRepo.GetByID(input.DestinationWarehouseID)
	if err != nil {
		return nil, err
	}
	if source == nil || dest == nil || !source.IsActive || !dest.IsActive {
		return nil, domain.ErrNotFound
	}

	// La cantidad solicitada no puede exceder el saldo actual en origen.
	// Se reverifica bajo bloqueo al aprobar.
	stock, err := uc.stockRepo.Get(input.ProductID, input.SourceWarehouseID)
	if err != nil {
		return nil, err
	}
	if stock.Quantity < input.Quantity {
		return nil, domain.ErrInsufficientStock
	}

	costCenter := input.CostCenter
	if costCenter == "" {
		costCenter = source.CostCenter
	}

	now := time.Now()
	order := &entity.TransferOrder{
		ID:                     uuid.New().String(),
		OrderDate:              now,
		ProductID:              input.ProductID,
		Quantity:               input.Quantity,
		SourceWarehouseID:      input.SourceWarehouseID,
		DestinationWarehouseID: input.DestinationWarehouseID,
		CostCenter:             costCenter,
		RequesterID:            input.RequesterID,
		Status:                 entity.TransferStatusPending,
		Notes:                  input.Notes,
		CreatedAt:              now,
		UpdatedAt:              now,
	}

	err = uc.txRunner.Run(ctx, func(
		orderRepo repository.TransferOrderRepository,
		counterRepo repository.TransferCounterRepository,
		_ repository.InventoryMovementRepository,
		_ repository.StockRepository,
		_ repository.ProductSerialRepository,
	) error {
		n, err := counterRepo.NextNumber(now)
		if err != nil {
			return err
		}
		order.OrderNumber = domtransfer.FormatOrderNumber(n)
		return orderRepo.Create(order)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// SetStatus decide una orden pendiente. newStatus debe ser approved o
// rejected; cualquier otro valor es entrada inválida. Una orden ya decidida
// no admite una segunda transición (ErrConflict). Al aprobar se emiten los
// dos movimientos (salida en origen, entrada en destino) con el saldo de
// origen bloqueado y reverificado.
func (uc *UseCase) SetStatus(ctx context.Context, orderID, newStatus, projectManagerID string) (*entity.TransferOrder, error) {
	if !domtransfer.IsDecision(newStatus) {
		return nil, domain.ErrInvalidInput
	}

	var decided *entity.TransferOrder
	err := uc.txRunner.Run(ctx, func(
		orderRepo repository.TransferOrderRepository,
		_ repository.TransferCounterRepository,
		movRepo repository.InventoryMovementRepository,
		stockRepo repository.StockRepository,
		_ repository.ProductSerialRepository,
	) error {
		order, err := orderRepo.GetByIDForUpdate(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if !domtransfer.CanTransition(order.Status, newStatus) {
			return domain.ErrConflict
		}

		now := time.Now()
		// El decisor se fija antes de emitir movimientos: los dos asientos
		// de la aprobación llevan su ID en created_by.
		order.ProjectManagerID = projectManagerID
		if newStatus == entity.TransferStatusApproved {
			if err := uc.applyApproval(movRepo, stockRepo, order, now); err != nil {
				return err
			}
		}

		order.Status = newStatus
		order.UpdatedAt = now
		if err := orderRepo.Update(order); err != nil {
			return err
		}
		decided = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.TransferDecided(newStatus)
	return decided, nil
}

// applyApproval emite los dos movimientos del traslado dentro de la tx de la
// decisión: salida en origen y entrada en destino, ambas referenciando la orden.
func (uc *UseCase) applyApproval(
	movRepo repository.InventoryMovementRepository,
	stockRepo repository.StockRepository,
	order *entity.TransferOrder,
	now time.Time,
) error {
	// Reverifica el saldo de origen bajo bloqueo: dos aprobaciones
	// concurrentes contra el mismo stock se serializan en esta fila.
	source, err := stockRepo.GetForUpdate(order.ProductID, order.SourceWarehouseID)
	if err != nil {
		return err
	}
	if source.Quantity < order.Quantity {
		return domain.ErrInsufficientStock
	}

	reason := "traslado " + order.OrderNumber

	outMov := &entity.InventoryMovement{
		ID:              uuid.New().String(),
		ProductID:       order.ProductID,
		WarehouseID:     order.SourceWarehouseID,
		Type:            entity.MovementTypeOUT,
		Quantity:        order.Quantity,
		Reason:          reason,
		TransferOrderID: order.ID,
		CreatedBy:       order.ProjectManagerID,
		CreatedAt:       now,
	}
	if err := movRepo.Create(outMov); err != nil {
		return err
	}
	source.Quantity = ledger.Apply(source.Quantity, entity.MovementTypeOUT, order.Quantity)
	source.UpdatedAt = now
	if err := stockRepo.Upsert(source); err != nil {
		return err
	}

	dest, err := stockRepo.GetForUpdate(order.ProductID, order.DestinationWarehouseID)
	if err != nil {
		return err
	}
	inMov := &entity.InventoryMovement{
		ID:              uuid.New().String(),
		ProductID:       order.ProductID,
		WarehouseID:     order.DestinationWarehouseID,
		Type:            entity.MovementTypeIN,
		Quantity:        order.Quantity,
		Reason:          reason,
		TransferOrderID: order.ID,
		CreatedBy:       order.ProjectManagerID,
		CreatedAt:       now,
	}
	if err := movRepo.Create(inMov); err != nil {
		return err
	}
	// Los traslados no alteran seriales: las unidades conservan su registro.
	dest.Quantity = ledger.Apply(dest.Quantity, entity.MovementTypeIN, order.Quantity)
	dest.UpdatedAt = now
	return stockRepo.Upsert(dest)
}

// GetByID obtiene una orden.
func (uc *UseCase) GetByID(id string) (*entity.TransferOrder, error) {
	return uc.orderRepo.GetByID(id)
}

// List lista órdenes, opcionalmente filtradas por estado.
func (uc *UseCase) List(status string, limit, offset int) ([]*entity.TransferOrder, error) {
	if status != "" && status != entity.TransferStatusPending && !domtransfer.IsDecision(status) {
		return nil, domain.ErrInvalidInput
	}
	return uc.orderRepo.List(status, limit, offset)
}
