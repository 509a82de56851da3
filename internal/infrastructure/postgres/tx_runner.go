package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/almacen-api/internal/application/costcenter"
	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/application/transfer"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// Ensure TxRunner implements los puertos transaccionales de la aplicación.
var _ inventory.TxRunner = (*TxRunner)(nil)
var _ transfer.TxRunner = (*TransferTxRunner)(nil)
var _ costcenter.TxRunner = (*CostCenterTxRunner)(nil)

// TxRunner ejecuta callbacks del motor de inventario dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.InventoryMovementRepository,
	stockRepo repository.StockRepository,
	serialRepo repository.ProductSerialRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	movRepo := NewInventoryMovementRepository(tx)
	stockRepo := NewStockRepository(tx)
	serialRepo := NewProductSerialRepository(tx)

	if err := fn(movRepo, stockRepo, serialRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// TransferTxRunner transacción del flujo de órdenes de traslado: orden,
// consecutivo diario y movimientos comparten la misma tx.
type TransferTxRunner struct {
	pool *pgxpool.Pool
}

// NewTransferTxRunner construye el runner con el pool.
func NewTransferTxRunner(pool *pgxpool.Pool) *TransferTxRunner {
	return &TransferTxRunner{pool: pool}
}

// Run inicia una transacción con los repos del flujo de traslado.
func (r *TransferTxRunner) Run(ctx context.Context, fn func(
	orderRepo repository.TransferOrderRepository,
	counterRepo repository.TransferCounterRepository,
	movRepo repository.InventoryMovementRepository,
	stockRepo repository.StockRepository,
	serialRepo repository.ProductSerialRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	orderRepo := NewTransferOrderRepository(tx)
	counterRepo := NewTransferCounterRepository(tx)
	movRepo := NewInventoryMovementRepository(tx)
	stockRepo := NewStockRepository(tx)
	serialRepo := NewProductSerialRepository(tx)

	if err := fn(orderRepo, counterRepo, movRepo, stockRepo, serialRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// CostCenterTxRunner transacción del bootstrap de centros de costo: la
// principal y las cuatro secundarias se crean juntas o ninguna.
type CostCenterTxRunner struct {
	pool *pgxpool.Pool
}

// NewCostCenterTxRunner construye el runner con el pool.
func NewCostCenterTxRunner(pool *pgxpool.Pool) *CostCenterTxRunner {
	return &CostCenterTxRunner{pool: pool}
}

// Run inicia una transacción con el repo de bodegas atado a la tx.
func (r *CostCenterTxRunner) Run(ctx context.Context, fn func(warehouseRepo repository.WarehouseRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewWarehouseRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
