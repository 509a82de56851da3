package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implementación del puerto WarehouseRepository sobre PostgreSQL (usable con pool o tx).
type WarehouseRepo struct {
	q Querier
}

// NewWarehouseRepository construye el adaptador de persistencia para bodegas. Pasar pool o tx (Querier).
func NewWarehouseRepository(q Querier) *WarehouseRepo {
	return &WarehouseRepo{q: q}
}

const warehouseColumns = `id, name, cost_center, warehouse_type, sub_warehouse_type, parent_warehouse_id, location, is_active, created_at, updated_at`

// Create persiste una nueva bodega. El índice único parcial de principal por
// centro de costo convierte el doble bootstrap en ErrDuplicate.
func (r *WarehouseRepo) Create(warehouse *entity.Warehouse) error {
	query := `
		INSERT INTO warehouses (` + warehouseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	subType := (*string)(nil)
	if warehouse.SubWarehouseType != "" {
		subType = &warehouse.SubWarehouseType
	}
	parentID := (*string)(nil)
	if warehouse.ParentWarehouseID != "" {
		parentID = &warehouse.ParentWarehouseID
	}
	_, err := r.q.Exec(context.Background(), query,
		warehouse.ID, warehouse.Name, warehouse.CostCenter, warehouse.WarehouseType,
		subType, parentID, warehouse.Location, warehouse.IsActive,
		warehouse.CreatedAt, warehouse.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert warehouse: %w", err)
	}
	return nil
}

func scanWarehouse(row pgx.Row) (*entity.Warehouse, error) {
	var w entity.Warehouse
	var subType, parentID *string
	err := row.Scan(
		&w.ID, &w.Name, &w.CostCenter, &w.WarehouseType, &subType, &parentID,
		&w.Location, &w.IsActive, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan warehouse: %w", err)
	}
	if subType != nil {
		w.SubWarehouseType = *subType
	}
	if parentID != nil {
		w.ParentWarehouseID = *parentID
	}
	return &w, nil
}

// GetByID obtiene una bodega por ID.
func (r *WarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	query := `SELECT ` + warehouseColumns + ` FROM warehouses WHERE id = $1`
	return scanWarehouse(r.q.QueryRow(context.Background(), query, id))
}

// GetMainByCostCenter devuelve la bodega principal activa del centro de costo, o nil.
func (r *WarehouseRepo) GetMainByCostCenter(costCenter string) (*entity.Warehouse, error) {
	query := `
		SELECT ` + warehouseColumns + ` FROM warehouses
		WHERE cost_center = $1 AND warehouse_type = $2 AND is_active = true`
	return scanWarehouse(r.q.QueryRow(context.Background(), query, costCenter, entity.WarehouseTypeMain))
}

// ListByCostCenter bodegas activas de un centro de costo (principal primero).
func (r *WarehouseRepo) ListByCostCenter(costCenter string) ([]*entity.Warehouse, error) {
	query := `
		SELECT ` + warehouseColumns + ` FROM warehouses
		WHERE cost_center = $1 AND is_active = true
		ORDER BY warehouse_type, sub_warehouse_type`
	rows, err := r.q.Query(context.Background(), query, costCenter)
	if err != nil {
		return nil, fmt.Errorf("list warehouses by cost center: %w", err)
	}
	defer rows.Close()
	return collectWarehouses(rows)
}

// Update actualiza una bodega existente.
func (r *WarehouseRepo) Update(warehouse *entity.Warehouse) error {
	query := `
		UPDATE warehouses SET name = $2, location = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		warehouse.ID, warehouse.Name, warehouse.Location, warehouse.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update warehouse: %w", err)
	}
	return nil
}

// SoftDelete baja lógica: is_active = false.
func (r *WarehouseRepo) SoftDelete(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE warehouses SET is_active = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("soft delete warehouse: %w", err)
	}
	return nil
}

// List lista bodegas activas con paginación.
func (r *WarehouseRepo) List(limit, offset int) ([]*entity.Warehouse, error) {
	query := `
		SELECT ` + warehouseColumns + ` FROM warehouses
		WHERE is_active = true ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	defer rows.Close()
	return collectWarehouses(rows)
}

func collectWarehouses(rows pgx.Rows) ([]*entity.Warehouse, error) {
	var list []*entity.Warehouse
	for rows.Next() {
		var w entity.Warehouse
		var subType, parentID *string
		if err := rows.Scan(&w.ID, &w.Name, &w.CostCenter, &w.WarehouseType, &subType, &parentID,
			&w.Location, &w.IsActive, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan warehouse: %w", err)
		}
		if subType != nil {
			w.SubWarehouseType = *subType
		}
		if parentID != nil {
			w.ParentWarehouseID = *parentID
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}
