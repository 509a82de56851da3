package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo saldo materializado por (producto, bodega) sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene el saldo actual de un producto en una bodega; cero si no hay fila.
func (r *StockRepo) Get(productID, warehouseID string) (*entity.Stock, error) {
	query := `
		SELECT product_id, warehouse_id, quantity, updated_at
		FROM stock WHERE product_id = $1 AND warehouse_id = $2`
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, productID, warehouseID).Scan(
		&s.ProductID, &s.WarehouseID, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.Stock{ProductID: productID, WarehouseID: warehouseID}, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// GetForUpdate obtiene el saldo y bloquea la fila (SELECT FOR UPDATE).
func (r *StockRepo) GetForUpdate(productID, warehouseID string) (*entity.Stock, error) {
	query := `
		SELECT product_id, warehouse_id, quantity, updated_at
		FROM stock WHERE product_id = $1 AND warehouse_id = $2
		FOR UPDATE`
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, productID, warehouseID).Scan(
		&s.ProductID, &s.WarehouseID, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.Stock{ProductID: productID, WarehouseID: warehouseID}, nil
		}
		return nil, fmt.Errorf("get stock for update: %w", err)
	}
	return &s, nil
}

// Upsert inserta o actualiza el saldo (por producto y bodega).
func (r *StockRepo) Upsert(stock *entity.Stock) error {
	query := `
		INSERT INTO stock (product_id, warehouse_id, quantity, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (product_id, warehouse_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, stock.ProductID, stock.WarehouseID, stock.Quantity)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}

const stockItemSelect = `
	SELECT s.product_id, p.name, p.sku, s.warehouse_id, w.name, s.quantity, p.min_stock, p.max_stock
	FROM stock s
	JOIN products p ON p.id = s.product_id
	JOIN warehouses w ON w.id = s.warehouse_id`

// ListAll saldos de todos los pares (producto, bodega) activos.
func (r *StockRepo) ListAll() ([]*repository.StockItem, error) {
	query := stockItemSelect + `
	WHERE p.is_active = true AND w.is_active = true
	ORDER BY w.name, p.name`
	return r.queryItems(query)
}

// ListByWarehouse saldos de una bodega.
func (r *StockRepo) ListByWarehouse(warehouseID string) ([]*repository.StockItem, error) {
	query := stockItemSelect + `
	WHERE s.warehouse_id = $1 AND p.is_active = true
	ORDER BY p.name`
	return r.queryItems(query, warehouseID)
}

// ListByProduct saldos de un producto en todas las bodegas.
func (r *StockRepo) ListByProduct(productID string) ([]*repository.StockItem, error) {
	query := stockItemSelect + `
	WHERE s.product_id = $1 AND w.is_active = true
	ORDER BY w.name`
	return r.queryItems(query, productID)
}

// LowStock pares con saldo en o por debajo del mínimo del producto.
func (r *StockRepo) LowStock() ([]*repository.StockItem, error) {
	query := stockItemSelect + `
	WHERE s.quantity <= p.min_stock AND p.is_active = true AND w.is_active = true
	ORDER BY s.quantity`
	return r.queryItems(query)
}

func (r *StockRepo) queryItems(query string, args ...any) ([]*repository.StockItem, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()
	var list []*repository.StockItem
	for rows.Next() {
		var it repository.StockItem
		if err := rows.Scan(&it.ProductID, &it.ProductName, &it.SKU, &it.WarehouseID,
			&it.WarehouseName, &it.Quantity, &it.MinStock, &it.MaxStock); err != nil {
			return nil, fmt.Errorf("scan stock item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}
