package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/ledger"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// UseCase motor del libro mayor de inventario: aplica movimientos de forma
// transaccional (bloqueo de fila con SELECT FOR UPDATE) y mantiene el saldo
// materializado por (producto, bodega) sincronizado con el libro.
type UseCase struct {
	txRunner      TxRunner
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	stockRepo     repository.StockRepository
	priceRepo     repository.ProductPriceRepository
	movementRepo  repository.InventoryMovementRepository
	reports       ReportGenerator
	metrics       Metrics
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	stockRepo repository.StockRepository,
	priceRepo repository.ProductPriceRepository,
	movementRepo repository.InventoryMovementRepository,
	reports ReportGenerator,
	metrics Metrics,
) *UseCase {
	if metrics == nil {
		metrics = NopMetrics{}
	}
	return &UseCase{
		txRunner:      txRunner,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		stockRepo:     stockRepo,
		priceRepo:     priceRepo,
		movementRepo:  movementRepo,
		reports:       reports,
		metrics:       metrics,
	}
}

// MovementInput entrada para aplicar un movimiento de inventario.
// SerialNumbers es obligatorio en entradas de productos con RequiresSerial.
type MovementInput struct {
	ProductID       string
	WarehouseID     string
	Type            string // in | out
	Quantity        int64
	AppliedPrice    *decimal.Decimal
	SerialNumbers   []string
	Reason          string
	TransferOrderID string
	UserID          string
}

// ApplyMovement inserta el movimiento, registra los seriales (si aplica) y
// recalcula el saldo materializado, todo dentro de una transacción con la
// fila de stock bloqueada. Las salidas tienen piso en cero: nunca dejan el
// saldo almacenado negativo.
func (uc *UseCase) ApplyMovement(ctx context.Context, input MovementInput) (*entity.InventoryMovement, error) {
	if input.ProductID == "" || input.WarehouseID == "" || input.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if input.Type != entity.MovementTypeIN && input.Type != entity.MovementTypeOUT {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive {
		return nil, domain.ErrNotFound
	}
	warehouse, err := uc.warehouseRepo.GetByID(input.WarehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil || !warehouse.IsActive {
		return nil, domain.ErrNotFound
	}

	// Toda entrada de un producto serializado exige exactamente quantity
	// seriales distintos; un producto sin serie no acepta seriales.
	needsSerials := product.RequiresSerial && input.Type == entity.MovementTypeIN
	if needsSerials && !ledger.ValidateSerials(input.Quantity, input.SerialNumbers) {
		return nil, domain.ErrInvalidInput
	}
	if !product.RequiresSerial && len(input.SerialNumbers) > 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	mov := &entity.InventoryMovement{
		ID:              uuid.New().String(),
		ProductID:       input.ProductID,
		WarehouseID:     input.WarehouseID,
		Type:            input.Type,
		Quantity:        input.Quantity,
		AppliedPrice:    input.AppliedPrice,
		SerialNumbers:   input.SerialNumbers,
		Reason:          input.Reason,
		TransferOrderID: input.TransferOrderID,
		CreatedBy:       input.UserID,
		CreatedAt:       now,
	}

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.InventoryMovementRepository,
		stockRepo repository.StockRepository,
		serialRepo repository.ProductSerialRepository,
	) error {
		return ApplyInTx(movRepo, stockRepo, serialRepo, mov, needsSerials, now)
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.MovementApplied(input.Type)
	return mov, nil
}

// ApplyInTx aplica un movimiento usando repositorios ya atados a una
// transacción del caller (lo comparte el flujo de aprobación de traslados).
func ApplyInTx(
	movRepo repository.InventoryMovementRepository,
	stockRepo repository.StockRepository,
	serialRepo repository.ProductSerialRepository,
	mov *entity.InventoryMovement,
	registerSerials bool,
	now time.Time,
) error {
	// Bloquea la fila de stock para serializar movimientos concurrentes
	// sobre el mismo (producto, bodega).
	stock, err := stockRepo.GetForUpdate(mov.ProductID, mov.WarehouseID)
	if err != nil {
		return err
	}

	if registerSerials {
		used, err := serialRepo.UsedSerials(mov.ProductID, mov.SerialNumbers)
		if err != nil {
			return err
		}
		if len(used) > 0 {
			return domain.ErrSerialAlreadyUsed
		}
	}

	if err := movRepo.Create(mov); err != nil {
		return err
	}

	if registerSerials {
		serials := make([]*entity.ProductSerial, 0, len(mov.SerialNumbers))
		for _, sn := range mov.SerialNumbers {
			serials = append(serials, &entity.ProductSerial{
				ID:           uuid.New().String(),
				ProductID:    mov.ProductID,
				SerialNumber: sn,
				MovementID:   mov.ID,
				Status:       entity.SerialStatusActive,
				CreatedAt:    now,
			})
		}
		if err := serialRepo.CreateBatch(serials); err != nil {
			return err
		}
	}

	stock.Quantity = ledger.Apply(stock.Quantity, mov.Type, mov.Quantity)
	stock.UpdatedAt = now
	return stockRepo.Upsert(stock)
}

// GetMovement obtiene un movimiento del libro por ID; nil si no existe.
func (uc *UseCase) GetMovement(id string) (*entity.InventoryMovement, error) {
	return uc.movementRepo.GetByID(id)
}

// ListMovements consulta el libro con los filtros dados.
func (uc *UseCase) ListMovements(filter repository.MovementFilter) ([]*entity.InventoryMovement, error) {
	if filter.Type != "" && filter.Type != entity.MovementTypeIN && filter.Type != entity.MovementTypeOUT {
		return nil, domain.ErrInvalidInput
	}
	return uc.movementRepo.List(filter)
}

// CurrentQuantity saldo actual de un producto en una bodega (cero si no hay fila).
func (uc *UseCase) CurrentQuantity(productID, warehouseID string) (int64, error) {
	stock, err := uc.stockRepo.Get(productID, warehouseID)
	if err != nil {
		return 0, err
	}
	return stock.Quantity, nil
}

// ListAll saldos de todos los pares (producto, bodega).
func (uc *UseCase) ListAll() ([]*repository.StockItem, error) {
	return uc.stockRepo.ListAll()
}

// ListByWarehouse saldos de una bodega.
func (uc *UseCase) ListByWarehouse(warehouseID string) ([]*repository.StockItem, error) {
	return uc.stockRepo.ListByWarehouse(warehouseID)
}

// ListByProduct saldos de un producto en todas las bodegas.
func (uc *UseCase) ListByProduct(productID string) ([]*repository.StockItem, error) {
	return uc.stockRepo.ListByProduct(productID)
}

// LowStock pares con saldo en o por debajo del mínimo del producto.
func (uc *UseCase) LowStock() ([]*repository.StockItem, error) {
	return uc.stockRepo.LowStock()
}

// ExportInventory genera el XLSX con el inventario actual.
func (uc *UseCase) ExportInventory() ([]byte, error) {
	items, err := uc.stockRepo.ListAll()
	if err != nil {
		return nil, err
	}
	return uc.reports.InventoryReport(items)
}

// StockEntry entrada de stock: movimiento "in" con el precio aplicado.
func (uc *UseCase) StockEntry(ctx context.Context, userID string, productID, warehouseID string, quantity int64, price *decimal.Decimal, serials []string, reason string) (*entity.InventoryMovement, error) {
	if reason == "" {
		reason = "entrada de stock"
	}
	return uc.ApplyMovement(ctx, MovementInput{
		ProductID:     productID,
		WarehouseID:   warehouseID,
		Type:          entity.MovementTypeIN,
		Quantity:      quantity,
		AppliedPrice:  price,
		SerialNumbers: serials,
		Reason:        reason,
		UserID:        userID,
	})
}

// ProductEntry entrada de producto: además del movimiento "in" fija el precio
// del producto para el (año, mes) en curso.
func (uc *UseCase) ProductEntry(ctx context.Context, userID string, productID, warehouseID string, quantity int64, price decimal.Decimal, serials []string, reason string) (*entity.InventoryMovement, error) {
	if price.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if reason == "" {
		reason = "entrada de producto"
	}
	mov, err := uc.ApplyMovement(ctx, MovementInput{
		ProductID:     productID,
		WarehouseID:   warehouseID,
		Type:          entity.MovementTypeIN,
		Quantity:      quantity,
		AppliedPrice:  &price,
		SerialNumbers: serials,
		Reason:        reason,
		UserID:        userID,
	})
	if err != nil {
		return nil, err
	}
	now := time.Now()
	err = uc.priceRepo.Upsert(&entity.ProductPrice{
		ProductID: productID,
		Year:      now.Year(),
		Month:     int(now.Month()),
		Price:     price,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}
